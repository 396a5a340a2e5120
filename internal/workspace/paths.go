package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skillforge-labs/skillforge/internal/branding"
)

// Directory and file name constants for the workspace convention.
const (
	TemplatesDir = "templates"
	CacheDir     = "cache"
	DepsDir      = "deps"
	SkillsDir    = "skills"

	// Per-template store files.
	InfoFile     = "info.md"
	ManifestFile = "template.yaml"
	RefDir       = "ref"

	// Catalog directory for end-user mode.
	CatalogRepoDir = "catalog-repo"
)

// Permission constants.
const (
	DirPermNormal os.FileMode = 0755
	FilePermNorm  os.FileMode = 0644
)

// Root returns the workspace root directory.
// It checks the SKILLFORGE_HOME environment variable first,
// then falls back to ~/.skillforge.
func Root() (string, error) {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

// TemplatesRoot returns the template store directory.
// It checks SKILLFORGE_TEMPLATES first, then <root>/templates.
func TemplatesRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("TEMPLATES")); v != "" {
		return v, nil
	}
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, TemplatesDir), nil
}

// TemplateDir returns the store directory for a named template.
func TemplateDir(name string) (string, error) {
	root, err := TemplatesRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, name), nil
}

// DepCacheDir returns the dependency cache directory for a template,
// e.g. <root>/cache/deps/vite-react.
func DepCacheDir(template string) (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, CacheDir, DepsDir, template), nil
}

// SkillsRoot returns the installed skill documents directory.
func SkillsRoot() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, SkillsDir), nil
}

// CatalogRepoRoot returns the path to the catalog git repo directory.
// Checks SKILLFORGE_CATALOG first, then falls back to <root>/catalog-repo.
func CatalogRepoRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("CATALOG")); v != "" {
		return v, nil
	}
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, CatalogRepoDir), nil
}

// CatalogExists reports whether the catalog repo has been cloned.
func CatalogExists() (bool, error) {
	dir, err := CatalogRepoRoot()
	if err != nil {
		return false, err
	}
	info, err := os.Stat(dir)
	if err != nil {
		return false, nil
	}
	return info.IsDir(), nil
}

// ProjectsRoot returns the parent directory for scaffolded projects.
// The PROJECT_PATH override is honored verbatim (it predates the
// SKILLFORGE_* family and is kept for script compatibility); the default
// is the current working directory.
func ProjectsRoot() (string, error) {
	if v := os.Getenv("PROJECT_PATH"); v != "" {
		return v, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return cwd, nil
}

// StagingRoot returns the parent directory for staging extractions.
// The TEMP_PATH override is honored verbatim; the default is the
// system temp directory.
func StagingRoot() string {
	if v := os.Getenv("TEMP_PATH"); v != "" {
		return v
	}
	return os.TempDir()
}
