package workspace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// InitGlobal creates the workspace directory structure.
// It prints progress messages to w. Existing items are skipped with a message.
func InitGlobal(w io.Writer) error {
	root, err := Root()
	if err != nil {
		return err
	}

	if err := ensureDir(w, root, DirPermNormal); err != nil {
		return err
	}

	templates, err := TemplatesRoot()
	if err != nil {
		return err
	}
	if err := ensureDir(w, templates, DirPermNormal); err != nil {
		return err
	}

	if err := ensureDir(w, filepath.Join(root, CacheDir, DepsDir), DirPermNormal); err != nil {
		return err
	}

	skills, err := SkillsRoot()
	if err != nil {
		return err
	}
	if err := ensureDir(w, skills, DirPermNormal); err != nil {
		return err
	}

	return nil
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(w io.Writer, path string, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	if err := os.Chmod(path, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [OK] created %s\n", path)
	return nil
}
