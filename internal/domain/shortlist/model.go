package shortlist

import (
	"time"

	"github.com/kaiwenliu/careconnect-go/internal/domain/request"
)

// Shortlist is a CSR's bookmark on a request. At most one row per
// (csr, request) pair, enforced by the composite unique index.
type Shortlist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CsrID     uint      `gorm:"not null;uniqueIndex:idx_shortlist_csr_request" json:"csr_id"`
	RequestID uint      `gorm:"not null;uniqueIndex:idx_shortlist_csr_request" json:"request_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	Request *request.Request `gorm:"foreignKey:RequestID" json:"request,omitempty"`
}
