package listener

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/pixil98/go-adventure/internal/actions"
	"github.com/pixil98/go-adventure/internal/cache"
	"github.com/pixil98/go-adventure/internal/session"
)

const httpShutdownTimeout = 5 * time.Second

// HttpListener serves the JSON API: apply an action, inspect the cache,
// and a health probe.
type HttpListener struct {
	port     uint16
	sessions *session.Manager
	games    *cache.GameCache
}

func NewHttpListener(port uint16, sessions *session.Manager, games *cache.GameCache) *HttpListener {
	return &HttpListener{
		port:     port,
		sessions: sessions,
		games:    games,
	}
}

func (l *HttpListener) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/adventure", l.handleAdventure)
	mux.HandleFunc("GET /api/cache", l.handleCache)
	mux.HandleFunc("GET /api/health", l.handleHealth)

	svr := &http.Server{
		Addr:    fmt.Sprintf(":%d", l.port),
		Handler: mux,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
		defer cancel()
		if err := svr.Shutdown(shutdownCtx); err != nil {
			slog.WarnContext(shutdownCtx, "http shutdown", "error", err)
		}
	}()

	slog.InfoContext(ctx, "http listener starting", "port", l.port)

	err := svr.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serving http on port %d: %w", l.port, err)
	}
	return nil
}

type adventureRequest struct {
	User    string `json:"user"`
	Command string `json:"command"`
}

type adventureResponse struct {
	Response string `json:"response"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (l *HttpListener) handleAdventure(w http.ResponseWriter, r *http.Request) {
	var req adventureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.User == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "user is required"})
		return
	}
	if req.Command == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "command is required"})
		return
	}

	msg, err := l.sessions.Do(r.Context(), req.User, req.Command)

	// Input the adventure rejects is still a successful exchange; the
	// in-game message is the response.
	var userErr *actions.UserError
	if errors.As(err, &userErr) {
		writeJSON(w, http.StatusOK, adventureResponse{Response: userErr.Message})
		return
	}
	if errors.Is(err, cache.ErrCacheUnavailable) {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "game storage unavailable"})
		return
	}
	if err != nil {
		slog.WarnContext(r.Context(), "adventure request failed", "user", req.User, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, adventureResponse{Response: msg})
}

func (l *HttpListener) handleCache(w http.ResponseWriter, r *http.Request) {
	status, err := l.games.Status(r.Context())
	if errors.Is(err, cache.ErrCacheUnavailable) {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "game storage unavailable"})
		return
	}
	if err != nil {
		slog.WarnContext(r.Context(), "cache status failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, status)
}

func (l *HttpListener) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encoding response", "error", err)
	}
}
