package ingest

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Local is a filesystem data source that opens one flight file from disk.
type Local struct{ path string }

// NewLocal returns a Local source bound to the provided path.
func NewLocal(path string) *Local { return &Local{path: path} }

// Open opens the configured path for reading. If the context is already
// canceled, Open returns its error without touching the filesystem.
// Filesystem errors are wrapped with the path while still permitting
// errors.Is checks (e.g. errors.Is(err, os.ErrNotExist)).
func (l *Local) Open(ctx context.Context) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", l.path, err)
	}
	return f, nil
}

// File ingests a single local file.
func File(ctx context.Context, path string) (Result, error) {
	rc, err := NewLocal(path).Open(ctx)
	if err != nil {
		return Result{}, err
	}
	defer rc.Close()
	return Ingest(rc)
}
