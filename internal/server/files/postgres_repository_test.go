package files

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dkireev/filedepot/internal/shared"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func fileRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "name", "type", "is_public", "parent_id", "local_path"})
}

func TestCreate_RootFolder(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+files\s*\(user_id,\s*name,\s*type,\s*is_public,\s*parent_id,\s*local_path\)`).
		WithArgs("u-1", "docs", KindFolder, false, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("f-1"))

	got, err := repo.Create(context.Background(), &File{
		UserID:   "u-1",
		Name:     "docs",
		Type:     KindFolder,
		ParentID: RootParentID,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "f-1" || got.ParentID != RootParentID {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestCreate_FileUnderParent(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+files`).
		WithArgs("u-1", "note.txt", KindFile, true, "p-1", "/tmp/files_manager/abc").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("f-2"))

	got, err := repo.Create(context.Background(), &File{
		UserID:    "u-1",
		Name:      "note.txt",
		Type:      KindFile,
		IsPublic:  true,
		ParentID:  "p-1",
		LocalPath: "/tmp/files_manager/abc",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "f-2" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestGetFolder_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+.*\s+FROM\s+files\s+WHERE\s+id\s*=\s*\$1\s+AND\s+type\s*=\s*'folder'`).
		WithArgs("p-1").
		WillReturnRows(fileRows().AddRow("p-1", "u-1", "docs", KindFolder, false, nil, nil))

	got, err := repo.GetFolder(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("GetFolder error: %v", err)
	}
	if got.Type != KindFolder || got.ParentID != RootParentID || got.LocalPath != "" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestGetFolder_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+.*\s+FROM\s+files`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetFolder(context.Background(), "ghost")
	if !errors.Is(err, shared.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestGetFolder_MalformedIDBehavesLikeAbsent(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+.*\s+FROM\s+files`).
		WithArgs("not-a-uuid").
		WillReturnError(&pgconn.PgError{Code: "22P02"})

	_, err := repo.GetFolder(context.Background(), "not-a-uuid")
	if !errors.Is(err, shared.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestGetVisible_ScopesByOwnerOrPublic(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+.*\s+FROM\s+files\s+WHERE\s+id\s*=\s*\$1\s+AND\s+\(user_id\s*=\s*\$2\s+OR\s+is_public\s*=\s*true\)`).
		WithArgs("f-1", "u-2").
		WillReturnRows(fileRows().AddRow("f-1", "u-1", "shared.txt", KindFile, true, nil, "/blobs/1"))

	got, err := repo.GetVisible(context.Background(), "u-2", "f-1")
	if err != nil {
		t.Fatalf("GetVisible error: %v", err)
	}
	if !got.IsPublic || got.LocalPath != "/blobs/1" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestList_UsesLimitAndOffset(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+.*\s+FROM\s+files\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+parent_id\s+IS\s+NOT\s+DISTINCT\s+FROM\s+\$2\s+ORDER\s+BY\s+seq\s+LIMIT\s+\$3\s+OFFSET\s+\$4`).
		WithArgs("u-1", nil, 20, 40).
		WillReturnRows(fileRows().
			AddRow("f-1", "u-1", "a.txt", KindFile, false, nil, "/blobs/1").
			AddRow("f-2", "u-1", "b.txt", KindFile, false, nil, "/blobs/2"))

	got, err := repo.List(context.Background(), "u-1", RootParentID, 20, 40)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "f-1" || got[1].ID != "f-2" {
		t.Fatalf("unexpected listing: %+v", got)
	}
}

func TestList_EmptyResultIsNotAnError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+.*\s+FROM\s+files`).
		WithArgs("u-1", "p-1", 20, 0).
		WillReturnRows(fileRows())

	got, err := repo.List(context.Background(), "u-1", "p-1", 20, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestSetVisibility_ReturnsUpdatedRecord(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)UPDATE\s+files\s+SET\s+is_public\s*=\s*\$3\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s+RETURNING`).
		WithArgs("f-1", "u-1", true).
		WillReturnRows(fileRows().AddRow("f-1", "u-1", "a.txt", KindFile, true, nil, "/blobs/1"))

	got, err := repo.SetVisibility(context.Background(), "u-1", "f-1", true)
	if err != nil {
		t.Fatalf("SetVisibility error: %v", err)
	}
	if !got.IsPublic {
		t.Fatal("expected IsPublic=true")
	}
}

func TestSetVisibility_NotOwned(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE\s+files\s+SET\s+is_public`).
		WithArgs("f-1", "u-2", true).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.SetVisibility(context.Background(), "u-2", "f-1", true)
	if !errors.Is(err, shared.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestCount(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+count\(\*\)\s+FROM\s+files`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3, got %d", n)
	}
}
