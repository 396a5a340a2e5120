package template

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestPackExtractRoundTrip(t *testing.T) {
	src := t.TempDir()
	files := map[string]string{
		"index.html":      "<title>app</title>",
		"src/main.jsx":    "export default 1",
		"public/icon.svg": "<svg/>",
		"package.json":    `{"name":"app"}`,
	}
	for name, content := range files {
		path := filepath.Join(src, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	// These are never packed.
	if err := os.MkdirAll(filepath.Join(src, "node_modules", "react"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "node_modules", "react", "index.js"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, ".DS_Store"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	archive := filepath.Join(t.TempDir(), "app.zip")
	if err := Pack(src, archive); err != nil {
		t.Fatalf("Pack() error: %v", err)
	}

	dest := t.TempDir()
	if err := Extract(archive, dest); err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	for name, want := range files {
		got, err := os.ReadFile(filepath.Join(dest, filepath.FromSlash(name)))
		if err != nil {
			t.Fatalf("missing extracted file %s: %v", name, err)
		}
		if string(got) != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}

	if _, err := os.Stat(filepath.Join(dest, "node_modules")); !os.IsNotExist(err) {
		t.Error("node_modules should not be packed")
	}
	if _, err := os.Stat(filepath.Join(dest, ".DS_Store")); !os.IsNotExist(err) {
		t.Error(".DS_Store should not be packed")
	}
}

func TestExtractEmptyArchive(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "empty.zip")
	out, err := os.Create(archive)
	if err != nil {
		t.Fatal(err)
	}
	if err := zip.NewWriter(out).Close(); err != nil {
		t.Fatal(err)
	}
	if err := out.Close(); err != nil {
		t.Fatal(err)
	}

	if err := Extract(archive, t.TempDir()); err == nil {
		t.Fatal("Extract() should reject an empty archive")
	}
}

func TestNestedRoot(t *testing.T) {
	t.Run("single wrapper directory", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(dir, "starter-main"), 0755); err != nil {
			t.Fatal(err)
		}
		nested, ok := NestedRoot(dir)
		if !ok {
			t.Fatal("NestedRoot() should detect the wrapper")
		}
		if nested != filepath.Join(dir, "starter-main") {
			t.Errorf("NestedRoot() = %q", nested)
		}
	})

	t.Run("flat layout", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, ok := NestedRoot(dir); ok {
			t.Error("a flat tree has no nested root")
		}
	})

	t.Run("multiple entries", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(dir, "src"), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, ok := NestedRoot(dir); ok {
			t.Error("multiple top-level entries mean no wrapper")
		}
	})
}

func TestExtractRejectsEscapingEntries(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "evil.zip")
	out, err := os.Create(archive)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(out)
	w, err := zw.Create("../outside.txt")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := out.Close(); err != nil {
		t.Fatal(err)
	}

	if err := Extract(archive, t.TempDir()); err == nil {
		t.Fatal("Extract() should reject entries escaping the destination")
	}
}
