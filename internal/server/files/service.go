package files

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkireev/filedepot/internal/server/blob"
	"github.com/dkireev/filedepot/internal/shared"
)

// Service validates, creates, queries and mutates file metadata records,
// delegating byte payloads to the blob store.
type Service struct {
	repo     Repository
	blobs    blob.Store
	pageSize int
}

func NewService(repo Repository, blobs blob.Store, pageSize int) *Service {
	return &Service{
		repo:     repo,
		blobs:    blobs,
		pageSize: pageSize,
	}
}

// Create validates the request and inserts a new metadata record. Checks are
// applied in order and the first failure wins: name present, kind valid,
// content present for non-folders, parent resolves to an existing folder.
// For non-folder kinds the payload is persisted to the blob store before the
// metadata insert, so a failed blob write leaves no record behind.
//
// An absent parent reference silently normalizes to the root sentinel; a
// present one that does not resolve to a folder is a validation error.
func (s *Service) Create(ctx context.Context, ownerID, name, kind, parentID string, isPublic bool, data []byte) (*File, error) {

	if name == "" {
		return nil, shared.ErrorMissingName
	}
	if !ValidKind(kind) {
		return nil, shared.ErrorMissingType
	}
	if kind != KindFolder && len(data) == 0 {
		return nil, shared.ErrorMissingData
	}

	if parentID == "" {
		parentID = RootParentID
	}
	if parentID != RootParentID {
		if _, err := s.repo.GetFolder(ctx, parentID); err != nil {
			if errors.Is(err, shared.ErrorNotFound) {
				return nil, shared.ErrorParentNotFound
			}
			return nil, err
		}
	}

	file := &File{
		UserID:   ownerID,
		Name:     name,
		Type:     kind,
		IsPublic: isPublic,
		ParentID: parentID,
	}

	if kind != KindFolder {
		path, err := s.blobs.Write(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("content write: %w", err)
		}
		file.LocalPath = path
	}

	return s.repo.Create(ctx, file)
}

// Get returns the record if it is owned by requesterID or public. Anything
// else, including absence, is shared.ErrorNotFound.
func (s *Service) Get(ctx context.Context, requesterID, id string) (*File, error) {
	return s.repo.GetVisible(ctx, requesterID, id)
}

// List returns one page of records owned by ownerID under parentID, in
// insertion order. Out-of-range pages yield an empty slice.
func (s *Service) List(ctx context.Context, ownerID, parentID string, page int) ([]*File, error) {
	if parentID == "" {
		parentID = RootParentID
	}
	if page < 0 {
		page = 0
	}
	return s.repo.List(ctx, ownerID, parentID, s.pageSize, page*s.pageSize)
}

// SetVisibility toggles the visibility flag of an owned record and returns
// the post-mutation record. The operation is idempotent.
func (s *Service) SetVisibility(ctx context.Context, ownerID, id string, public bool) (*File, error) {
	return s.repo.SetVisibility(ctx, ownerID, id, public)
}

// Content reads the stored payload of a file or image record, applying the
// same visibility scoping as Get. Folders carry no content.
func (s *Service) Content(ctx context.Context, requesterID, id string) ([]byte, *File, error) {
	file, err := s.repo.GetVisible(ctx, requesterID, id)
	if err != nil {
		return nil, nil, err
	}

	if file.Type == KindFolder {
		return nil, nil, shared.ErrorFolderHasNoData
	}

	data, err := s.blobs.Read(ctx, file.LocalPath)
	if err != nil {
		return nil, nil, err
	}
	return data, file, nil
}

// Count reports the number of stored records.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
