package workspace

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestRoot(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv("SKILLFORGE_HOME", "/custom/home")
		root, err := Root()
		if err != nil {
			t.Fatal(err)
		}
		if root != "/custom/home" {
			t.Errorf("Root() = %q", root)
		}
	})

	t.Run("default under home", func(t *testing.T) {
		t.Setenv("SKILLFORGE_HOME", "")
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("no home directory in this environment")
		}
		root, err := Root()
		if err != nil {
			t.Fatal(err)
		}
		if root != filepath.Join(home, ".skillforge") {
			t.Errorf("Root() = %q", root)
		}
	})
}

func TestDerivedPaths(t *testing.T) {
	t.Setenv("SKILLFORGE_HOME", "/ws")
	t.Setenv("SKILLFORGE_TEMPLATES", "")
	t.Setenv("SKILLFORGE_CATALOG", "")

	tests := []struct {
		name string
		got  func() (string, error)
		want string
	}{
		{"templates", TemplatesRoot, "/ws/templates"},
		{"template dir", func() (string, error) { return TemplateDir("vite-react") }, "/ws/templates/vite-react"},
		{"dep cache", func() (string, error) { return DepCacheDir("vite-react") }, "/ws/cache/deps/vite-react"},
		{"skills", SkillsRoot, "/ws/skills"},
		{"catalog repo", CatalogRepoRoot, "/ws/catalog-repo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			if err != nil {
				t.Fatal(err)
			}
			if got != filepath.FromSlash(tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTemplatesRootOverride(t *testing.T) {
	t.Setenv("SKILLFORGE_TEMPLATES", "/elsewhere/templates")
	got, err := TemplatesRoot()
	if err != nil {
		t.Fatal(err)
	}
	if got != "/elsewhere/templates" {
		t.Errorf("TemplatesRoot() = %q", got)
	}
}

func TestProjectsRoot(t *testing.T) {
	t.Run("PROJECT_PATH honored verbatim", func(t *testing.T) {
		t.Setenv("PROJECT_PATH", "/srv/projects")
		got, err := ProjectsRoot()
		if err != nil {
			t.Fatal(err)
		}
		if got != "/srv/projects" {
			t.Errorf("ProjectsRoot() = %q", got)
		}
	})

	t.Run("defaults to working directory", func(t *testing.T) {
		t.Setenv("PROJECT_PATH", "")
		cwd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		got, err := ProjectsRoot()
		if err != nil {
			t.Fatal(err)
		}
		if got != cwd {
			t.Errorf("ProjectsRoot() = %q, want %q", got, cwd)
		}
	})
}

func TestStagingRoot(t *testing.T) {
	t.Setenv("TEMP_PATH", "/fast/tmp")
	if got := StagingRoot(); got != "/fast/tmp" {
		t.Errorf("StagingRoot() = %q", got)
	}

	t.Setenv("TEMP_PATH", "")
	if got := StagingRoot(); got != os.TempDir() {
		t.Errorf("StagingRoot() = %q, want system temp", got)
	}
}

func TestCatalogExists(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SKILLFORGE_CATALOG", filepath.Join(dir, "missing"))
	ok, err := CatalogExists()
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("CatalogExists() should be false before cloning")
	}

	t.Setenv("SKILLFORGE_CATALOG", dir)
	ok, err = CatalogExists()
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("CatalogExists() should be true for an existing directory")
	}
}

func TestInitGlobal(t *testing.T) {
	root := t.TempDir()
	t.Setenv("SKILLFORGE_HOME", root)
	t.Setenv("SKILLFORGE_TEMPLATES", "")

	if err := InitGlobal(io.Discard); err != nil {
		t.Fatalf("InitGlobal() error: %v", err)
	}

	for _, rel := range []string{TemplatesDir, filepath.Join(CacheDir, DepsDir), SkillsDir} {
		if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
			t.Errorf("missing workspace directory %s: %v", rel, err)
		}
	}

	// Second run is a no-op, not an error.
	if err := InitGlobal(io.Discard); err != nil {
		t.Fatalf("repeated InitGlobal() error: %v", err)
	}
}
