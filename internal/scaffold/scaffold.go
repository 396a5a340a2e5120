package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/skillforge-labs/skillforge/internal/depcache"
	"github.com/skillforge-labs/skillforge/internal/template"
)

// excludedNames are entries never copied from staging into the project.
var excludedNames = map[string]bool{
	"node_modules": true,
	".git":         true,
	".DS_Store":    true,
}

// Options configures a single scaffold run.
type Options struct {
	ProjectName string             // becomes the directory name and page title
	Template    *template.Template // resolved template store entry
	OutputDir   string             // project directory to create/top up
	StagingDir  string             // extraction target; recreated fresh
	CacheDir    string             // dependency cache for this template
	Out         io.Writer          // progress output
}

// Result holds the outcome of a scaffold run.
type Result struct {
	OutputDir string
	Files     int
	UsedCache bool
	Warnings  []string
}

// Run produces a project directory from a template archive:
// extract into staging, rewrite the page title, copy into the output
// directory, then either overlay the dependency cache (default template)
// or resolve dependencies fresh (any other template).
//
// The output directory is not cleaned first; re-running against the same
// path tops up its contents.
func Run(opts Options) (*Result, error) {
	if opts.ProjectName == "" {
		return nil, fmt.Errorf("project name is required")
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	// Staging is recreated fresh on every run.
	if err := os.RemoveAll(opts.StagingDir); err != nil {
		return nil, fmt.Errorf("clearing staging directory: %w", err)
	}
	if err := template.Extract(opts.Template.ArchivePath, opts.StagingDir); err != nil {
		return nil, err
	}
	defer os.RemoveAll(opts.StagingDir)

	if err := rewriteTitle(opts); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}

	result := &Result{OutputDir: opts.OutputDir}

	copied, err := copyTree(opts.StagingDir, opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("copying project files: %w", err)
	}
	result.Files = copied

	if opts.Template.IsDefault() {
		used, err := depcache.Overlay(opts.CacheDir, opts.OutputDir)
		if err != nil {
			return nil, err
		}
		result.UsedCache = used
		if !used {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("dependency cache for %q is empty; run 'skillforge webapp prepare'", opts.Template.Name))
		}
	} else {
		if err := depcache.Install(opts.OutputDir, out); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// rewriteTitle replaces the <title> text of the template's entry page with
// the project name. The file defaults to index.html and can be overridden
// by the template manifest.
func rewriteTitle(opts Options) error {
	titleFile := "index.html"
	if m := opts.Template.Manifest; m != nil && m.TitleFile != "" {
		titleFile = m.TitleFile
	}

	htmlPath := filepath.Join(opts.StagingDir, titleFile)
	if _, err := os.Stat(htmlPath); err != nil {
		// Some archives nest everything under a single top-level directory.
		if nested, ok := template.NestedRoot(opts.StagingDir); ok {
			htmlPath = filepath.Join(nested, titleFile)
		}
	}
	if _, err := os.Stat(htmlPath); err != nil {
		return fmt.Errorf("template has no %s to retitle", titleFile)
	}

	return template.RewriteTitle(htmlPath, opts.ProjectName)
}

// copyTree copies src into dst, skipping excluded entries, and returns the
// number of files copied. If src holds a single top-level directory, its
// contents are copied instead so projects are not nested one level deep.
func copyTree(src, dst string) (int, error) {
	if nested, ok := template.NestedRoot(src); ok {
		src = nested
	}

	count := 0
	err := filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if excludedNames[d.Name()] && path != src {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, info.Mode()); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}
