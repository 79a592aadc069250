// Package blob persists opaque byte payloads addressed by generated paths.
// The path returned by Write is stored verbatim in the file metadata record
// and is the only handle needed to read the content back.
package blob

import "context"

type Store interface {
	// Write persists data under a freshly generated opaque path.
	Write(ctx context.Context, data []byte) (string, error)

	// Read returns the payload stored under path. A missing payload is
	// reported as shared.ErrorNotFound.
	Read(ctx context.Context, path string) ([]byte, error)
}
