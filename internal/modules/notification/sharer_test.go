package notification

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"caminora/internal/modules/report"
	jwtsvc "caminora/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func TestDocumentSharer_NoConnections(t *testing.T) {
	sharer := NewDocumentSharer(NewHub())

	err := sharer.Share(context.Background(), "/tmp/documents/factura_1.html", "Factura reserva #1")
	assert.ErrorIs(t, err, report.ErrSharingUnavailable)
}

func TestDocumentSharer_AdminSocketGone(t *testing.T) {
	// A registered admin whose socket is gone counts as undeliverable.
	hub := NewHub()
	hub.Register(42, "admin", nil)

	sharer := NewDocumentSharer(hub)

	err := sharer.Share(context.Background(), "/tmp/documents/factura_1.html", "Factura reserva #1")
	assert.ErrorIs(t, err, report.ErrSharingUnavailable)
}

func TestDocumentSharer_ClientSocketsDoNotReceiveDocuments(t *testing.T) {
	hub := NewHub()
	j := jwtsvc.New("test-secret", time.Hour)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(hub, j).RegisterRoutes(r.Group("/"))

	srv := httptest.NewServer(r)
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/notifications/ws?token="

	waitOnline := func(userID int64) {
		for i := 0; i < 100; i++ {
			if hub.IsOnline(userID) {
				return
			}
			time.Sleep(10 * time.Millisecond)
		}
		t.Fatalf("user %d never registered", userID)
	}

	clientToken, err := j.GenerateToken(5, "client")
	assert.NoError(t, err)
	clientConn, _, err := websocket.DefaultDialer.Dial(wsURL+clientToken, nil)
	assert.NoError(t, err)
	defer clientConn.Close()
	waitOnline(5)

	sharer := NewDocumentSharer(hub)

	// only a client is online: sharing is unavailable and the client
	// socket must not see the document event
	err = sharer.Share(context.Background(), "/docs/factura_42.html", "Factura reserva #42")
	assert.ErrorIs(t, err, report.ErrSharingUnavailable)

	_ = clientConn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err = clientConn.ReadMessage()
	assert.Error(t, err)

	// once an admin connects, delivery targets the admin socket
	adminToken, err := j.GenerateToken(1, "admin")
	assert.NoError(t, err)
	adminConn, _, err := websocket.DefaultDialer.Dial(wsURL+adminToken, nil)
	assert.NoError(t, err)
	defer adminConn.Close()
	waitOnline(1)

	err = sharer.Share(context.Background(), "/docs/factura_42.html", "Factura reserva #42")
	assert.NoError(t, err)

	var ev map[string]any
	_ = adminConn.SetReadDeadline(time.Now().Add(time.Second))
	assert.NoError(t, adminConn.ReadJSON(&ev))
	assert.Equal(t, "document_ready", ev["type"])
	assert.Equal(t, "factura_42.html", ev["file_name"])
}

func TestHub_ConnectedByRole(t *testing.T) {
	hub := NewHub()
	assert.Empty(t, hub.ConnectedUsers())

	hub.Register(1, "admin", nil)
	hub.Register(2, "client", nil)
	hub.Register(3, "host", nil)

	assert.Len(t, hub.ConnectedUsers(), 3)
	assert.Equal(t, []int64{1}, hub.ConnectedByRole("admin"))
	assert.True(t, hub.IsOnline(1))
	assert.False(t, hub.IsOnline(4))
}
