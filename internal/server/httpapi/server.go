// Package httpapi exposes the service over HTTP/JSON. Handlers are thin:
// they decode the request, call the relevant service and translate sentinel
// errors into status codes. All business rules live below this layer.
package httpapi

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/dkireev/filedepot/internal/logging"
	"github.com/dkireev/filedepot/internal/server/auth"
	"github.com/dkireev/filedepot/internal/server/files"
	"github.com/dkireev/filedepot/internal/server/sessions"
	"github.com/dkireev/filedepot/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address  string
	logger   logging.Logger
	users    *users.Service
	files    *files.Service
	gate     *auth.Gate
	sessions sessions.Store
	db       *sql.DB
}

func NewServer(address string, l logging.Logger, us *users.Service, fs *files.Service,
	gate *auth.Gate, store sessions.Store, db *sql.DB) *Server {
	return &Server{
		address:  address,
		logger:   l.With("module", "http_server"),
		users:    us,
		files:    fs,
		gate:     gate,
		sessions: store,
		db:       db,
	}
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /status", s.handleStatus)
	mux.HandleFunc("GET /stats", s.handleStats)

	mux.HandleFunc("POST /users", s.handleRegister)
	mux.HandleFunc("GET /connect", s.handleConnect)
	mux.HandleFunc("GET /disconnect", s.handleDisconnect)
	mux.HandleFunc("GET /users/me", s.handleMe)

	mux.HandleFunc("POST /files", s.handleCreateFile)
	mux.HandleFunc("GET /files", s.handleListFiles)
	mux.HandleFunc("GET /files/{id}", s.handleGetFile)
	mux.HandleFunc("PUT /files/{id}/publish", s.handlePublish)
	mux.HandleFunc("PUT /files/{id}/unpublish", s.handleUnpublish)
	mux.HandleFunc("GET /files/{id}/data", s.handleFileData)

	return mux
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
