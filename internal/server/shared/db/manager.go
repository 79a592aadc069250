package db

import (
	"context"
	"database/sql"

	"github.com/dkireev/filedepot/internal/server/files"
	"github.com/dkireev/filedepot/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Files() files.Repository
	Close() error
}
