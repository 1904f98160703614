package filestore

import (
	"context"
	"time"
)

// Store persists uploads under collision-free names and purges stale files.
type Store interface {
	// EnsureDirs creates the upload and output directories if absent.
	EnsureDirs() error

	// Persist writes data to the upload directory as
	// {base}_{sessionID}_{rand}{ext} and returns the path.
	Persist(ctx context.Context, data []byte, originName, sessionID string) (string, error)

	// OutputPath returns a fresh converted_{stem}_{sessionID}_{rand}.docx path
	// in the output directory. Nothing is created.
	OutputPath(originName, sessionID string) string

	// CleanupStale removes regular files older than maxAge from the upload and
	// output directories. Every failure is ignored; it returns how many files
	// were removed.
	CleanupStale(ctx context.Context, maxAge time.Duration) int
}
