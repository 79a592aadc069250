package files

import (
	"context"
)

type Repository interface {
	// Create inserts a new record and returns it with the server-assigned id.
	Create(ctx context.Context, file *File) (*File, error)

	// GetFolder returns the record only if it exists and is a folder,
	// regardless of owner. Used to validate parent references.
	GetFolder(ctx context.Context, id string) (*File, error)

	// GetVisible returns the record only if it exists and is either owned by
	// requesterID or public. A private record of another owner is
	// indistinguishable from an absent one.
	GetVisible(ctx context.Context, requesterID, id string) (*File, error)

	// List returns up to limit records owned by userID under parentID,
	// skipping offset records, in insertion order.
	List(ctx context.Context, userID, parentID string, limit, offset int) ([]*File, error)

	// SetVisibility updates the visibility flag of an owned record and
	// returns the post-mutation record.
	SetVisibility(ctx context.Context, userID, id string, public bool) (*File, error)

	// Count reports the total number of stored records.
	Count(ctx context.Context) (int64, error)
}
