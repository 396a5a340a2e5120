package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skillforge-labs/skillforge/internal/branding"
	"github.com/skillforge-labs/skillforge/internal/depcache"
	"github.com/skillforge-labs/skillforge/internal/scaffold"
	"github.com/skillforge-labs/skillforge/internal/template"
	"github.com/skillforge-labs/skillforge/internal/toolchain"
	"github.com/skillforge-labs/skillforge/internal/ui"
	"github.com/skillforge-labs/skillforge/internal/workspace"
	"github.com/spf13/cobra"
)

var webappOutputDir string

func init() {
	webappNewCmd.Flags().StringVar(&webappOutputDir, "output-dir", "", "Project directory (default: <projects root>/<project-name>)")
	webappCmd.AddCommand(webappNewCmd)
	webappCmd.AddCommand(webappPrepareCmd)
	rootCmd.AddCommand(webappCmd)
}

var webappCmd = &cobra.Command{
	Use:   "webapp",
	Short: "Scaffold web applications from stored templates",
}

var webappNewCmd = &cobra.Command{
	Use:   "new <project-name> [template]",
	Short: "Create a web-app project from a template",
	Long: `Create a runnable web-app project from a stored template.

The template archive is extracted to a staging directory, the page title is
rewritten to the project name, and the tree is copied into the project
directory. For the default template the shared dependency cache is overlaid;
any other template gets a fresh dependency install and its info document is
printed between banner lines.

An existing project directory is not cleaned first; re-running tops up its
contents.

Environment:
  PROJECT_PATH  parent directory for new projects (default: cwd)
  TEMP_PATH     parent directory for staging extraction (default: system temp)`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectName := args[0]
		templateName := template.DefaultName
		if len(args) == 2 {
			templateName = args[1]
		}

		// The scaffolder's only hard tool requirement.
		if err := toolchain.Require("npm"); err != nil {
			return err
		}

		tmpl, err := template.Resolve(templateName)
		if err != nil {
			return err
		}

		outputDir := webappOutputDir
		if outputDir == "" {
			projectsRoot, err := workspace.ProjectsRoot()
			if err != nil {
				return err
			}
			outputDir = filepath.Join(projectsRoot, projectName)
		}

		cacheDir, err := workspace.DepCacheDir(tmpl.Name)
		if err != nil {
			return err
		}

		result, err := scaffold.Run(scaffold.Options{
			ProjectName: projectName,
			Template:    tmpl,
			OutputDir:   outputDir,
			StagingDir:  filepath.Join(workspace.StagingRoot(), branding.CLIName()+"-staging-"+projectName),
			CacheDir:    cacheDir,
			Out:         os.Stdout,
		})
		if err != nil {
			return err
		}

		info, err := tmpl.Info()
		if err != nil {
			return err
		}
		if tmpl.IsDefault() {
			fmt.Print(info)
		} else {
			ui.Banner(os.Stdout, info)
		}

		for _, w := range result.Warnings {
			ui.Warnf(os.Stderr, "Warning: %s", w)
		}
		ui.Successf(os.Stdout, "Created %s (%d files)", result.OutputDir, result.Files)
		return nil
	},
}

var webappPrepareCmd = &cobra.Command{
	Use:   "prepare [template]",
	Short: "Resolve a template's dependencies into the shared cache",
	Long: `Install a template's package dependencies once, against the template's
reference copy, and publish the resolved tree into the shared dependency
cache that later "webapp new" runs overlay.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		templateName := template.DefaultName
		if len(args) == 1 {
			templateName = args[0]
		}

		if err := toolchain.Require("npm"); err != nil {
			return err
		}

		tmpl, err := template.Resolve(templateName)
		if err != nil {
			return err
		}

		refDir := tmpl.RefDir
		if _, err := os.Stat(refDir); err != nil {
			// No unpacked reference copy yet; extract the archive to make one.
			if err := template.Extract(tmpl.ArchivePath, refDir); err != nil {
				return err
			}
		}

		// Archives that wrap everything in one top-level directory are
		// installed inside it, where package.json actually lives.
		installDir := refDir
		if nested, ok := template.NestedRoot(refDir); ok {
			installDir = nested
		}

		if err := depcache.Install(installDir, os.Stdout); err != nil {
			return err
		}

		cacheDir, err := workspace.DepCacheDir(tmpl.Name)
		if err != nil {
			return err
		}
		if err := depcache.Populate(installDir, cacheDir); err != nil {
			return err
		}

		ui.Successf(os.Stdout, "Dependency cache for %q is ready at %s", tmpl.Name, cacheDir)
		return nil
	},
}
