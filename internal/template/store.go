package template

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/skillforge-labs/skillforge/internal/manifest"
	"github.com/skillforge-labs/skillforge/internal/workspace"
)

// DefaultName is the template used when "webapp new" is invoked without an
// explicit template argument.
const DefaultName = "vite-react"

// Template represents one entry in the template store.
type Template struct {
	Name        string
	Dir         string // absolute path to templates/<name>/
	ArchivePath string // absolute path to <name>.zip
	InfoPath    string // absolute path to info.md
	RefDir      string // absolute path to ref/ (may not exist)
	Manifest    *manifest.TemplateManifest // nil if no template.yaml
}

// IsDefault reports whether this is the default template.
func (t *Template) IsDefault() bool {
	return t.Name == DefaultName
}

// List returns all templates in the store that have both an archive and an
// info document, sorted by name. Entries missing either file are skipped:
// archive plus info.md is the existence gate for a usable template.
func List() ([]*Template, error) {
	root, err := workspace.TemplatesRoot()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading template store %s: %w", root, err)
	}

	var templates []*Template
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		t, err := load(filepath.Join(root, entry.Name()), entry.Name())
		if err != nil {
			continue
		}
		templates = append(templates, t)
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Name < templates[j].Name
	})
	return templates, nil
}

// Resolve returns the named template. An unknown name yields an error that
// lists the available templates so the caller can print it verbatim.
func Resolve(name string) (*Template, error) {
	dir, err := workspace.TemplateDir(name)
	if err != nil {
		return nil, err
	}

	t, err := load(dir, name)
	if err == nil {
		return t, nil
	}

	available, listErr := List()
	if listErr != nil || len(available) == 0 {
		return nil, fmt.Errorf("template %q not found (no templates installed)", name)
	}

	names := make([]string, len(available))
	for i, a := range available {
		names[i] = a.Name
	}
	return nil, fmt.Errorf("template %q not found; available templates: %s",
		name, strings.Join(names, ", "))
}

// load builds a Template from a store directory, verifying the archive and
// info document exist.
func load(dir, name string) (*Template, error) {
	archive := filepath.Join(dir, name+".zip")
	if _, err := os.Stat(archive); err != nil {
		return nil, fmt.Errorf("template %q has no archive at %s", name, archive)
	}

	info := filepath.Join(dir, workspace.InfoFile)
	if _, err := os.Stat(info); err != nil {
		return nil, fmt.Errorf("template %q has no info document at %s", name, info)
	}

	t := &Template{
		Name:        name,
		Dir:         dir,
		ArchivePath: archive,
		InfoPath:    info,
		RefDir:      filepath.Join(dir, workspace.RefDir),
	}

	// template.yaml is optional; parse it when present.
	manifestPath := filepath.Join(dir, workspace.ManifestFile)
	if _, err := os.Stat(manifestPath); err == nil {
		m, err := manifest.ParseTemplate(manifestPath)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", name, err)
		}
		t.Manifest = m
	}

	return t, nil
}

// Info returns the contents of the template's info document.
func (t *Template) Info() (string, error) {
	data, err := os.ReadFile(t.InfoPath)
	if err != nil {
		return "", fmt.Errorf("reading info document: %w", err)
	}
	return string(data), nil
}
