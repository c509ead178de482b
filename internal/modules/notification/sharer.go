package notification

import (
	"context"
	"path/filepath"
	"time"

	"caminora/internal/domain"
	"caminora/internal/modules/report"
)

type documentEvent struct {
	Type     string    `json:"type"`
	Title    string    `json:"title"`
	FileName string    `json:"file_name"`
	MimeType string    `json:"mime_type"`
	SentAt   time.Time `json:"sent_at"`
}

// DocumentSharer delivers generated documents to every connected admin
// socket. Non-admin connections never receive document events. With no
// admin connected it reports report.ErrSharingUnavailable so the façade
// falls back to the saved-path message.
type DocumentSharer struct {
	hub *Hub
}

func NewDocumentSharer(hub *Hub) *DocumentSharer {
	return &DocumentSharer{hub: hub}
}

func (d *DocumentSharer) Share(ctx context.Context, filePath string, title string) error {
	ids := d.hub.ConnectedByRole(string(domain.RoleAdmin))
	if len(ids) == 0 {
		return report.ErrSharingUnavailable
	}

	ev := documentEvent{
		Type:     "document_ready",
		Title:    title,
		FileName: filepath.Base(filePath),
		MimeType: "application/pdf",
		SentAt:   time.Now(),
	}

	delivered := false
	for _, id := range ids {
		if d.hub.SendToUser(id, ev) {
			delivered = true
		}
	}
	if !delivered {
		return report.ErrSharingUnavailable
	}
	return nil
}
