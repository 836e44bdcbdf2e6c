package request

import "time"

type Status string

const (
	StatusOpen      Status = "open"
	StatusCompleted Status = "completed"
)

// Request is an assistance request posted by a PIN. Status only ever
// moves open -> completed; acceptance is an orthogonal attribute, so a
// request can be open-and-accepted. Both counters are derived and only
// change through atomic updates in the repository.
type Request struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	PinID          uint       `gorm:"not null;index" json:"pin_id"`
	Title          string     `gorm:"size:120;not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	CategoryID     *uint      `gorm:"index" json:"category_id"`
	Status         Status     `gorm:"size:20;not null;default:'open';index" json:"status"`
	AcceptedByID   *uint      `json:"accepted_by_id"`
	AcceptedAt     *time.Time `json:"accepted_at"`
	ViewsCount     int        `gorm:"not null;default:0" json:"views_count"`
	ShortlistCount int        `gorm:"not null;default:0" json:"shortlist_count"`
	CreatedAt      time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *Request) IsOpen() bool {
	return r.Status == StatusOpen
}
