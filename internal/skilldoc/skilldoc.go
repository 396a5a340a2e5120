// Package skilldoc manages the embedded skill documents: markdown operating
// procedures an agent follows to drive external document toolchains. The CLI
// lists, shows, and installs them; it never interprets their content.
package skilldoc

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/skillforge-labs/skillforge/internal/manifest"
)

const (
	docFile           = "SKILL.md"
	frontMatterMarker = "---"
)

// Doc is one skill document with its parsed front matter.
type Doc struct {
	Name     string
	Manifest *manifest.SkillManifest
	Body     string // procedure markdown, front matter stripped
	Raw      string // full document as embedded
}

// Names returns the available skill names, sorted.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(docsFS, "docs")
	if err != nil {
		return nil, fmt.Errorf("reading embedded skills: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Load returns the named skill document.
func Load(name string) (*Doc, error) {
	raw, err := fs.ReadFile(docsFS, "docs/"+name+"/"+docFile)
	if err != nil {
		return nil, fmt.Errorf("unknown skill: %s", name)
	}

	fm, body, err := splitFrontMatter(raw)
	if err != nil {
		return nil, fmt.Errorf("skill %s: %w", name, err)
	}

	m, err := manifest.ParseSkillBytes(fm)
	if err != nil {
		return nil, fmt.Errorf("skill %s: %w", name, err)
	}

	return &Doc{
		Name:     name,
		Manifest: m,
		Body:     string(body),
		Raw:      string(raw),
	}, nil
}

// LoadAll returns every embedded skill document.
func LoadAll() ([]*Doc, error) {
	names, err := Names()
	if err != nil {
		return nil, err
	}

	docs := make([]*Doc, 0, len(names))
	for _, name := range names {
		d, err := Load(name)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// Install writes the embedded skill documents under destDir, one directory
// per skill. Existing files are preserved so user customizations survive
// upgrades. It returns the names of files written.
func Install(destDir string) ([]string, error) {
	var written []string

	err := fs.WalkDir(docsFS, "docs", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "docs" {
			return nil
		}

		rel, relErr := filepath.Rel("docs", filepath.FromSlash(path))
		if relErr != nil {
			return relErr
		}
		destPath := filepath.Join(destDir, rel)

		if d.IsDir() {
			return os.MkdirAll(destPath, 0755)
		}

		// Preserve existing files (user customizations).
		if _, statErr := os.Stat(destPath); statErr == nil {
			return nil
		}

		content, readErr := fs.ReadFile(docsFS, path)
		if readErr != nil {
			return fmt.Errorf("reading embedded file %s: %w", path, readErr)
		}
		if writeErr := os.WriteFile(destPath, content, 0644); writeErr != nil {
			return writeErr
		}
		written = append(written, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return written, nil
}

// splitFrontMatter splits a document into its YAML front matter and body.
func splitFrontMatter(raw []byte) (frontMatter, body []byte, err error) {
	marker := []byte(frontMatterMarker + "\n")
	if !bytes.HasPrefix(raw, marker) {
		return nil, nil, fmt.Errorf("document has no front matter")
	}

	rest := raw[len(marker):]
	end := bytes.Index(rest, []byte("\n"+frontMatterMarker))
	if end < 0 {
		return nil, nil, fmt.Errorf("unterminated front matter")
	}

	frontMatter = rest[:end]
	body = rest[end+len(frontMatterMarker)+1:]
	body = bytes.TrimPrefix(body, []byte("\n"))
	return frontMatter, body, nil
}
