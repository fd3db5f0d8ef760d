// Package source reads portal project files for deployment.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gigawall/internal/gigawall"
)

// OSFileSource reads project files from a directory tree on disk.
type OSFileSource struct {
	root string
}

// NewOSFileSource creates a file source rooted at the given project dir.
func NewOSFileSource(root string) *OSFileSource {
	return &OSFileSource{root: root}
}

// Read returns the bytes of the project file at the given relative path.
// Paths may not escape the project root.
func (s *OSFileSource) Read(path string) ([]byte, error) {
	clean := filepath.Clean(path)
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("path escapes project root: %s", path)
	}

	data, err := os.ReadFile(filepath.Join(s.root, clean))
	if err != nil {
		return nil, fmt.Errorf("reading project file %s: %w", path, err)
	}
	return data, nil
}

var _ gigawall.FileSource = (*OSFileSource)(nil)
