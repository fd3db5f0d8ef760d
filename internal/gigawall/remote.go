package gigawall

import (
	"context"

	"gigawall/internal/model"
)

// RemoteRepository is the deployment target for project files. The real
// implementation talks to the GitHub content API; tests use an in-memory one.
type RemoteRepository interface {
	// GetRepository fetches the repository's metadata. It doubles as the
	// existence/authorization check performed before any deploy.
	GetRepository(ctx context.Context) (*model.Repository, error)

	// UploadFile creates or overwrites a single file. The implementation
	// must first check for an existing revision and carry its version token
	// forward so that repeated uploads to the same path always succeed.
	UploadFile(ctx context.Context, path string, content []byte, message string) error

	// Dispatch fires a repository_dispatch event with the given event type.
	Dispatch(ctx context.Context, eventType string) error
}

// FileSource reads project files by their repository-relative path.
type FileSource interface {
	Read(path string) ([]byte, error)
}
