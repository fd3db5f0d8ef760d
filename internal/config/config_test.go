package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := NewConfig("/tmp/gigawall")
	cfg.Profile.DisplayName = "Lena"
	cfg.Database.Type = "memory"
	cfg.Remote.Type = "memory"

	var buf bytes.Buffer
	m := &Manager{}
	if err := m.Write(&buf, cfg); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := m.Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got.BaseDir != cfg.BaseDir || got.DataDir != cfg.DataDir || got.ProjectDir != cfg.ProjectDir {
		t.Errorf("paths = %+v, want %+v", got, cfg)
	}
	if got.Profile.DisplayName != "Lena" {
		t.Errorf("DisplayName = %s, want Lena", got.Profile.DisplayName)
	}
	if got.Database.Type != "memory" || got.Remote.Type != "memory" {
		t.Errorf("backends = %s/%s, want memory/memory", got.Database.Type, got.Remote.Type)
	}
}

func TestReadInvalidConfig(t *testing.T) {
	t.Parallel()

	m := &Manager{}
	if _, err := m.Read(strings.NewReader("this is not [valid toml")); err == nil {
		t.Error("Read() error = nil, want decode error")
	}
}

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := NewConfig("/home/x/.local/share/gigawall")

	if cfg.DataDir != filepath.Join(cfg.BaseDir, "data") {
		t.Errorf("DataDir = %s", cfg.DataDir)
	}
	if cfg.Database.Type != "sqlite" {
		t.Errorf("Database.Type = %s, want sqlite", cfg.Database.Type)
	}
	if cfg.Remote.Type != "github" {
		t.Errorf("Remote.Type = %s, want github", cfg.Remote.Type)
	}
	if cfg.Profile.UserID == "" {
		t.Error("default profile must have a user id")
	}
}

func TestInit(t *testing.T) {
	t.Run("creates the file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "gigawall.toml")

		if err := Init(path, NewConfig(t.TempDir())); err != nil {
			t.Fatalf("Init() error = %v", err)
		}

		cfg, err := ReadFromFile(path)
		if err != nil {
			t.Fatalf("ReadFromFile() error = %v", err)
		}
		if cfg.Database.Type != "sqlite" {
			t.Errorf("Database.Type = %s", cfg.Database.Type)
		}
	})

	t.Run("refuses to overwrite an existing file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "gigawall.toml")

		if err := Init(path, NewConfig(t.TempDir())); err != nil {
			t.Fatalf("Init() error = %v", err)
		}
		if err := Init(path, NewConfig(t.TempDir())); err == nil {
			t.Error("second Init() error = nil, want already exists")
		}
	})
}
