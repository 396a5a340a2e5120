package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFilePath(t *testing.T) {
	t.Run("default under home", func(t *testing.T) {
		t.Setenv("SKILLFORGE_HOME", "")
		t.Setenv("HOME", "/home/dev")
		want := filepath.Join("/home/dev", ".skillforge", "config.yaml")
		if got := FilePath(); got != want {
			t.Errorf("FilePath() = %q, want %q", got, want)
		}
	})

	t.Run("workspace override", func(t *testing.T) {
		t.Setenv("SKILLFORGE_HOME", "/ws")
		want := filepath.Join("/ws", "config.yaml")
		if got := FilePath(); got != want {
			t.Errorf("FilePath() = %q, want %q", got, want)
		}
	})
}

func TestSetAndGet(t *testing.T) {
	t.Setenv("SKILLFORGE_HOME", filepath.Join(t.TempDir(), ".skillforge"))
	Load()

	// Set creates the config directory and file on first use.
	if err := Set("catalog_repo", "https://git.example.test/catalog.git"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if got := Get("catalog_repo"); got != "https://git.example.test/catalog.git" {
		t.Errorf("Get() = %q", got)
	}

	data, err := os.ReadFile(FilePath())
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "catalog_repo") {
		t.Errorf("config file = %q", data)
	}
}

func TestGetUnsetKey(t *testing.T) {
	if got := Get("definitely-not-set"); got != "" {
		t.Errorf("Get() = %q, want empty", got)
	}
}
