package remote

import (
	"context"
	"fmt"
	"sync"

	"gigawall/internal/gigawall"
	"gigawall/internal/model"
)

// MemoryRepository is an in-memory implementation of the RemoteRepository
// interface. It is useful for tests and for dry-running deploys without a
// GitHub repository. Safe for concurrent use.
type MemoryRepository struct {
	mu         sync.Mutex
	repo       model.Repository
	files      map[string][]byte
	revisions  map[string]int // per-path write count, stands in for the sha
	uploads    []string       // paths in upload order, failures included
	dispatches []string
	uploadErr  map[string]error
	repoErr    error
}

// NewMemoryRepository creates an empty in-memory repository with the given
// metadata.
func NewMemoryRepository(repo model.Repository) *MemoryRepository {
	return &MemoryRepository{
		repo:      repo,
		files:     make(map[string][]byte),
		revisions: make(map[string]int),
		uploadErr: make(map[string]error),
	}
}

// GetRepository returns the configured metadata.
func (m *MemoryRepository) GetRepository(_ context.Context) (*model.Repository, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.repoErr != nil {
		return nil, m.repoErr
	}
	repo := m.repo
	return &repo, nil
}

// UploadFile stores content at path, bumping the path's revision. A second
// upload to the same path overwrites the first, matching the remote API's
// create-or-update semantics.
func (m *MemoryRepository) UploadFile(_ context.Context, path string, content []byte, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.uploads = append(m.uploads, path)
	if err := m.uploadErr[path]; err != nil {
		return err
	}

	m.files[path] = append([]byte(nil), content...)
	m.revisions[path]++
	return nil
}

// Dispatch records the event type.
func (m *MemoryRepository) Dispatch(_ context.Context, eventType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dispatches = append(m.dispatches, eventType)
	return nil
}

// FailUpload makes future uploads to path fail with the given message.
func (m *MemoryRepository) FailUpload(path, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploadErr[path] = fmt.Errorf("%s", message)
}

// FailRepository makes GetRepository fail with the given message.
func (m *MemoryRepository) FailRepository(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.repoErr = fmt.Errorf("%s", message)
}

// File returns the stored content at path.
func (m *MemoryRepository) File(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path]
	return data, ok
}

// Revision returns how many times path has been written.
func (m *MemoryRepository) Revision(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.revisions[path]
}

// Uploads returns every attempted upload path in call order.
func (m *MemoryRepository) Uploads() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.uploads...)
}

// Dispatches returns the fired event types in call order.
func (m *MemoryRepository) Dispatches() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.dispatches...)
}

// Compile-time check that MemoryRepository implements the interface.
var _ gigawall.RemoteRepository = (*MemoryRepository)(nil)
