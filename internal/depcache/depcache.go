package depcache

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/joho/godotenv"
)

// cachedEntries are the artifacts of a resolved npm install that the cache
// carries between scaffold runs.
var cachedEntries = []string{"node_modules", "package-lock.json"}

// Install runs npm install in the given directory. Output is discarded; the
// first failing step aborts the run. A template .env file next to
// package.json, when present, supplies extra environment for the install
// (registry mirrors, proxy settings).
func Install(dir string, w io.Writer) error {
	npmPath, err := exec.LookPath("npm")
	if err != nil {
		return fmt.Errorf("npm is required but was not found on PATH")
	}

	env := os.Environ()
	envFile := filepath.Join(dir, ".env")
	if vars, err := godotenv.Read(envFile); err == nil {
		for k, v := range vars {
			env = append(env, k+"="+v)
		}
	}

	fmt.Fprintf(w, "Installing dependencies in %s...\n", dir)

	cmd := exec.Command(npmPath, "install", "--prefer-offline")
	cmd.Dir = dir
	cmd.Env = env
	cmd.Stdout = io.Discard
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("npm install in %s: %w", dir, err)
	}
	return nil
}

// Populate copies the resolved dependency tree from a template's reference
// directory into the shared cache. Any previous cache content for the
// template is replaced.
func Populate(refDir, cacheDir string) error {
	if _, err := os.Stat(filepath.Join(refDir, "node_modules")); err != nil {
		return fmt.Errorf("no resolved dependencies in %s; run install first", refDir)
	}

	if err := os.RemoveAll(cacheDir); err != nil {
		return fmt.Errorf("clearing cache %s: %w", cacheDir, err)
	}
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return fmt.Errorf("creating cache %s: %w", cacheDir, err)
	}

	for _, entry := range cachedEntries {
		src := filepath.Join(refDir, entry)
		if _, err := os.Stat(src); err != nil {
			continue
		}
		if err := copyPath(src, filepath.Join(cacheDir, entry)); err != nil {
			return fmt.Errorf("caching %s: %w", entry, err)
		}
	}
	return nil
}

// Overlay copies the cached dependency tree into a scaffolded project.
// Returns false (and no error) when the cache does not exist yet or holds
// nothing, so callers can tell the user to prepare it.
func Overlay(cacheDir, projectDir string) (bool, error) {
	info, err := os.Stat(cacheDir)
	if err != nil || !info.IsDir() {
		return false, nil
	}

	entries, err := os.ReadDir(cacheDir)
	if err != nil {
		return false, fmt.Errorf("reading cache %s: %w", cacheDir, err)
	}
	if len(entries) == 0 {
		return false, nil
	}

	for _, entry := range entries {
		src := filepath.Join(cacheDir, entry.Name())
		dst := filepath.Join(projectDir, entry.Name())
		if err := copyPath(src, dst); err != nil {
			return false, fmt.Errorf("overlaying %s: %w", entry.Name(), err)
		}
	}
	return true, nil
}

// copyPath copies a file or directory tree from src to dst.
func copyPath(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return copyDir(src, dst, info.Mode())
	}
	return copyFile(src, dst, info.Mode())
}

func copyDir(src, dst string, mode os.FileMode) error {
	if err := os.MkdirAll(dst, mode); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			info, err := entry.Info()
			if err != nil {
				return err
			}
			if err := copyDir(srcPath, dstPath, info.Mode()); err != nil {
				return err
			}
		} else if entry.Type().IsRegular() {
			info, err := entry.Info()
			if err != nil {
				return err
			}
			if err := copyFile(srcPath, dstPath, info.Mode()); err != nil {
				return err
			}
		}
		// Symlinks and other special files are skipped.
	}

	return nil
}

func copyFile(src, dst string, mode os.FileMode) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, mode)
}
