package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where exported report files end up. The only
// implementation today is local disk; the interface keeps the report
// service ignorant of that.
type FileStorage interface {
	// Save writes the file and returns the storage path/key.
	Save(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Open retrieves a stored file for reading.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// URL returns the public URL for a stored file.
	URL(ctx context.Context, path string) (string, error)

	// Exists reports whether the file is present.
	Exists(ctx context.Context, path string) (bool, error)
}
