package history

import "time"

// ServiceHistory is the append-only completion log: exactly one row per
// request transition into completed. Rows survive deletion of the
// request or category they reference.
type ServiceHistory struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CsrID         *uint     `gorm:"index" json:"csr_id"`
	PinID         uint      `gorm:"not null;index" json:"pin_id"`
	RequestID     uint      `gorm:"not null;index" json:"request_id"`
	CategoryID    *uint     `json:"category_id"`
	DateCompleted time.Time `gorm:"not null;index" json:"date_completed"`
}

// Filter narrows history listings; zero values mean "no constraint".
type Filter struct {
	CategoryID *uint
	Start      *time.Time
	End        *time.Time
}
