package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dkireev/filedepot/internal/dbx"
	"github.com/dkireev/filedepot/internal/shared"
)

// PostgresRepository implements file metadata storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const fileColumns = `id, user_id, name, type, is_public, parent_id, local_path`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanFile maps a row onto a File, normalizing NULL parent_id to the root
// sentinel and NULL local_path (folders) to an empty string.
func scanFile(row rowScanner) (*File, error) {
	var (
		f         File
		parentID  sql.NullString
		localPath sql.NullString
	)
	if err := row.Scan(&f.ID, &f.UserID, &f.Name, &f.Type, &f.IsPublic, &parentID, &localPath); err != nil {
		return nil, err
	}
	f.ParentID = RootParentID
	if parentID.Valid {
		f.ParentID = parentID.String
	}
	f.LocalPath = localPath.String
	return &f, nil
}

// parentArg converts the root sentinel to NULL for storage.
func parentArg(parentID string) any {
	if parentID == "" || parentID == RootParentID {
		return nil
	}
	return parentID
}

// wrapLookupErr maps "no row" and malformed-uuid errors to ErrorNotFound so
// a bogus id behaves like an absent record instead of a server fault.
func wrapLookupErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return shared.ErrorNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "22P02" {
		return shared.ErrorNotFound
	}
	return fmt.Errorf("db error: %w", err)
}

func (r *PostgresRepository) Create(ctx context.Context, file *File) (*File, error) {

	query :=
		`INSERT INTO files (user_id, name, type, is_public, parent_id, local_path)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	var localPath any
	if file.LocalPath != "" {
		localPath = file.LocalPath
	}

	err := r.db.QueryRowContext(ctx, query,
		file.UserID, file.Name, file.Type, file.IsPublic, parentArg(file.ParentID), localPath).Scan(&file.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	if file.ParentID == "" {
		file.ParentID = RootParentID
	}

	return file, nil
}

func (r *PostgresRepository) GetFolder(ctx context.Context, id string) (*File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE id = $1 AND type = 'folder'`

	f, err := scanFile(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, wrapLookupErr(err)
	}
	return f, nil
}

func (r *PostgresRepository) GetVisible(ctx context.Context, requesterID, id string) (*File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE id = $1 AND (user_id = $2 OR is_public = true)`

	f, err := scanFile(r.db.QueryRowContext(ctx, query, id, requesterID))
	if err != nil {
		return nil, wrapLookupErr(err)
	}
	return f, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID, parentID string, limit, offset int) ([]*File, error) {
	query := `SELECT ` + fileColumns + ` FROM files
		 WHERE user_id = $1 AND parent_id IS NOT DISTINCT FROM $2
		 ORDER BY seq
		 LIMIT $3 OFFSET $4
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, parentArg(parentID), limit, offset)
	if err != nil {
		return nil, wrapLookupErr(err)
	}
	defer rows.Close()

	result := make([]*File, 0, limit)
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) SetVisibility(ctx context.Context, userID, id string, public bool) (*File, error) {
	query := `UPDATE files SET is_public = $3
		 WHERE id = $1 AND user_id = $2
		 RETURNING ` + fileColumns

	f, err := scanFile(r.db.QueryRowContext(ctx, query, id, userID, public))
	if err != nil {
		return nil, wrapLookupErr(err)
	}
	return f, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM files`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
