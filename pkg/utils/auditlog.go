package utils

import (
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/kaiwenliu/careconnect-go/internal/domain/audit"
	"github.com/kaiwenliu/careconnect-go/internal/repository"
)

// AuditEntry carries everything one audit row needs. Before and After
// are marshalled at write time; nil means no payload.
type AuditEntry struct {
	UserID       uint
	IP           string
	UserAgent    string
	Action       string
	ResourceType string
	ResourceID   string
	Before       interface{}
	After        interface{}
	Description  string
}

// LogAuditWithConsole reads the caller identity from the gin context
// synchronously, then hands the write to a goroutine. Callers must not
// wrap it in another `go`: the context is recycled once the handler
// returns.
var LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repo repository.AuditRepo) {
	userID, _ := GetUserIDFromContext(c)
	entry := AuditEntry{
		UserID:       userID,
		IP:           c.ClientIP(),
		UserAgent:    c.GetHeader("User-Agent"),
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Before:       oldData,
		After:        newData,
		Description:  msg,
	}
	go func() {
		if err := LogAudit(entry, repo); err != nil {
			log.Printf("audit write failed: %v", err)
		}
	}()
}

var LogAudit = func(e AuditEntry, repo repository.AuditRepo) error {
	return repo.CreateAuditLog(&audit.AuditLog{
		UserID:       e.UserID,
		Action:       e.Action,
		ResourceType: e.ResourceType,
		ResourceID:   e.ResourceID,
		OldData:      marshalAuditPayload(e.Before),
		NewData:      marshalAuditPayload(e.After),
		IPAddress:    e.IP,
		UserAgent:    e.UserAgent,
		Description:  e.Description,
	})
}

func marshalAuditPayload(v interface{}) []byte {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("audit payload marshal failed: %v", err)
		return nil
	}
	return data
}
