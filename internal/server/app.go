// Package server initializes and runs the file storage service: it wires the
// repositories, session store, blob store and HTTP endpoint together and
// handles graceful shutdown. All external connections are established once
// here and injected into the components that use them.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dkireev/filedepot/internal/logging"
	"github.com/dkireev/filedepot/internal/server/auth"
	"github.com/dkireev/filedepot/internal/server/blob"
	"github.com/dkireev/filedepot/internal/server/config"
	"github.com/dkireev/filedepot/internal/server/files"
	"github.com/dkireev/filedepot/internal/server/httpapi"
	"github.com/dkireev/filedepot/internal/server/sessions"
	"github.com/dkireev/filedepot/internal/server/shared/db"
	"github.com/dkireev/filedepot/internal/server/users"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	repos    db.RepositoryManager
	sessions sessions.Store
	server   *httpapi.Server
}

func newBlobStore(ctx context.Context, cfg *config.Config) (blob.Store, error) {
	switch cfg.BlobBackend {
	case config.BlobBackendS3:
		return blob.NewS3Store(ctx, blob.S3Options{
			RootUser:     cfg.S3RootUser,
			RootPassword: cfg.S3RootPassword,
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
		})
	default:
		return blob.NewFilesystemStore(cfg.StoragePath)
	}
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewDefault()

	rm, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	store := sessions.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	sm := sessions.NewManager(store, cfg.SessionTTL)

	blobs, err := newBlobStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	us := users.NewService(rm.Users(), sm, logger)
	fs := files.NewService(rm.Files(), blobs, cfg.PageSize)
	gate := auth.NewGate(sm, rm.Users())

	srv := httpapi.NewServer(cfg.EndpointAddr, logger, us, fs, gate, store, rm.Conn())

	return &App{
		config:   cfg,
		logger:   logger,
		repos:    rm,
		sessions: store,
		server:   srv,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.Close(ctx)
}

// Close releases the long-lived store connections in reverse construction
// order.
func (app *App) Close(ctx context.Context) {
	if err := app.sessions.Close(); err != nil {
		app.logger.Error(ctx, "session store close error", "error", err.Error())
	}
	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
