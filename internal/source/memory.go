package source

import (
	"fmt"
	"sync"

	"gigawall/internal/gigawall"
)

// MemoryFileSource serves project files from an in-memory map. Use in tests.
type MemoryFileSource struct {
	mu    sync.Mutex
	files map[string][]byte
}

func NewMemoryFileSource() *MemoryFileSource {
	return &MemoryFileSource{files: make(map[string][]byte)}
}

// Add registers a file at the given relative path.
func (s *MemoryFileSource) Add(path string, content []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = append([]byte(nil), content...)
}

// Read returns the bytes of the file at path.
func (s *MemoryFileSource) Read(path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("project file not found: %s", path)
	}
	return append([]byte(nil), data...), nil
}

var _ gigawall.FileSource = (*MemoryFileSource)(nil)
