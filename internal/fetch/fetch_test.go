package fetch

import (
	"archive/zip"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// templateZip builds an archive with info.md, template.yaml and one source
// file, the shape a published template carries.
func templateZip(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entries := map[string]string{
		"info.md":       "# astro-blog\nPost-install notes.\n",
		"template.yaml": "name: astro-blog\ntype: template\nversion: 1.0.0\ndescription: Astro blog starter\n",
		"index.html":    "<title>Astro</title>",
	}
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestFetch(t *testing.T) {
	t.Setenv("SKILLFORGE_TEMPLATES", t.TempDir())

	archive := templateZip(t)
	sum := sha256.Sum256(archive)

	mux := http.NewServeMux()
	mux.HandleFunc("/templates/astro-blog.zip", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "skillforge" {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}
		w.Write(archive)
	})
	mux.HandleFunc("/templates/checksums.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "%s  astro-blog.zip\nabcdef  other.zip\n", hex.EncodeToString(sum[:]))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	var out bytes.Buffer
	dir, err := New().Fetch(Options{
		URL:          srv.URL + "/templates/astro-blog.zip",
		ChecksumsURL: srv.URL + "/templates/checksums.txt",
		Out:          &out,
	})
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}

	for _, rel := range []string{"astro-blog.zip", "info.md", "template.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
			t.Errorf("store missing %s: %v", rel, err)
		}
	}
	if !strings.Contains(out.String(), "100%") {
		t.Errorf("progress output = %q", out.String())
	}
}

func TestFetchChecksumMismatch(t *testing.T) {
	t.Setenv("SKILLFORGE_TEMPLATES", t.TempDir())

	archive := templateZip(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/astro-blog.zip", func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	})
	mux.HandleFunc("/checksums.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, strings.Repeat("0", 64)+"  astro-blog.zip\n")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := New().Fetch(Options{
		URL:          srv.URL + "/astro-blog.zip",
		ChecksumsURL: srv.URL + "/checksums.txt",
	})
	if err == nil || !strings.Contains(err.Error(), "checksum mismatch") {
		t.Fatalf("Fetch() error = %v, want checksum mismatch", err)
	}

	// The bad archive must not remain in the store.
	dir, _ := os.ReadDir(os.Getenv("SKILLFORGE_TEMPLATES"))
	for _, entry := range dir {
		matches, _ := filepath.Glob(filepath.Join(os.Getenv("SKILLFORGE_TEMPLATES"), entry.Name(), "*.zip"))
		if len(matches) != 0 {
			t.Errorf("bad archive left behind: %v", matches)
		}
	}
}

func TestFetchMissingInfoDocument(t *testing.T) {
	t.Setenv("SKILLFORGE_TEMPLATES", t.TempDir())

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("index.html")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("<title>x</title>")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(buf.Bytes())
	}))
	defer srv.Close()

	_, err = New().Fetch(Options{URL: srv.URL + "/bare.zip"})
	if err == nil || !strings.Contains(err.Error(), "info.md") {
		t.Fatalf("Fetch() error = %v, want missing info.md", err)
	}
}

func TestFetchHTTPError(t *testing.T) {
	t.Setenv("SKILLFORGE_TEMPLATES", t.TempDir())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := New().Fetch(Options{URL: srv.URL + "/gone.zip"})
	if err == nil || !strings.Contains(err.Error(), "status 404") {
		t.Fatalf("Fetch() error = %v, want status 404", err)
	}
}

func TestFetchNameOverride(t *testing.T) {
	t.Setenv("SKILLFORGE_TEMPLATES", t.TempDir())

	archive := templateZip(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	}))
	defer srv.Close()

	dir, err := New().Fetch(Options{
		URL:  srv.URL + "/download",
		Name: "my-blog",
	})
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if filepath.Base(dir) != "my-blog" {
		t.Errorf("store dir = %q", dir)
	}
	if _, err := os.Stat(filepath.Join(dir, "my-blog.zip")); err != nil {
		t.Errorf("archive should be named after the template: %v", err)
	}
}

func TestTemplateNameFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://example.test/templates/astro-blog.zip", "astro-blog"},
		{"https://example.test/astro-blog.zip/", "astro-blog"},
		{"https://example.test/astro-blog", "astro-blog"},
	}
	for _, tt := range tests {
		if got := templateNameFromURL(tt.url); got != tt.want {
			t.Errorf("templateNameFromURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
