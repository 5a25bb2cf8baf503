package listener

import (
	"context"
	"io"
	"log/slog"

	"github.com/pixil98/go-adventure/internal/session"
)

// ConnectionManager hands accepted connections to the session layer.
// Line endings are normalized here so sessions only ever see \n.
type ConnectionManager struct {
	sessions *session.Manager
}

func NewConnectionManager(sessions *session.Manager) *ConnectionManager {
	return &ConnectionManager{
		sessions: sessions,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	if err := m.sessions.RunSession(ctx, newCRLFReadWriter(conn)); err != nil {
		slog.WarnContext(ctx, "adventure session", "error", err)
	}
}
