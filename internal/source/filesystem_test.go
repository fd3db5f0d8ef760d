package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSource(t *testing.T) {
	t.Run("reads files relative to the project root", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		if err := os.MkdirAll(filepath.Join(root, "pages"), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(root, "pages", "Dashboard.tsx"), []byte("export {}"), 0644); err != nil {
			t.Fatal(err)
		}

		s := NewOSFileSource(root)
		data, err := s.Read("pages/Dashboard.tsx")
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if string(data) != "export {}" {
			t.Errorf("data = %q", data)
		}
	})

	t.Run("rejects paths escaping the root", func(t *testing.T) {
		t.Parallel()
		s := NewOSFileSource(t.TempDir())

		for _, path := range []string{"../secret", "/etc/passwd", "a/../../secret"} {
			if _, err := s.Read(path); err == nil {
				t.Errorf("Read(%q) error = nil, want escape error", path)
			}
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()
		s := NewOSFileSource(t.TempDir())

		if _, err := s.Read("index.html"); err == nil {
			t.Error("Read() error = nil, want not exist")
		}
	})
}

func TestMemoryFileSource(t *testing.T) {
	t.Parallel()

	s := NewMemoryFileSource()
	s.Add("index.html", []byte("<html>"))

	data, err := s.Read("index.html")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(data) != "<html>" {
		t.Errorf("data = %q", data)
	}

	if _, err := s.Read("missing.ts"); err == nil {
		t.Error("Read() error = nil for missing file")
	}
}
