package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skillforge-labs/skillforge/internal/fetch"
	"github.com/skillforge-labs/skillforge/internal/manifest"
	"github.com/skillforge-labs/skillforge/internal/template"
	"github.com/skillforge-labs/skillforge/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	fetchName      string
	fetchChecksums string
	packName       string
)

func init() {
	templateFetchCmd.Flags().StringVar(&fetchName, "name", "", "Template name (default: derived from the URL)")
	templateFetchCmd.Flags().StringVar(&fetchChecksums, "checksums", "", "URL of a sha256 checksums.txt to verify against")
	templatePackCmd.Flags().StringVar(&packName, "name", "", "Template name (default: the directory name)")

	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateInfoCmd)
	templateCmd.AddCommand(templateFetchCmd)
	templateCmd.AddCommand(templatePackCmd)
	rootCmd.AddCommand(templateCmd)
}

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage the web-app template store",
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		templates, err := template.List()
		if err != nil {
			return err
		}
		if len(templates) == 0 {
			fmt.Println("No templates installed. Run 'skillforge template fetch <url>' or 'skillforge catalog update'.")
			return nil
		}

		for _, t := range templates {
			marker := " "
			if t.IsDefault() {
				marker = "*"
			}
			desc := ""
			if t.Manifest != nil {
				desc = t.Manifest.Description
			}
			fmt.Printf("%s %-20s %s\n", marker, t.Name, desc)
		}
		return nil
	},
}

var templateInfoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Print a template's info document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tmpl, err := template.Resolve(args[0])
		if err != nil {
			return err
		}
		info, err := tmpl.Info()
		if err != nil {
			return err
		}
		fmt.Print(info)
		return nil
	},
}

var templateFetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Download a template archive into the store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := fetch.New().Fetch(fetch.Options{
			URL:          args[0],
			Name:         fetchName,
			ChecksumsURL: fetchChecksums,
			Out:          os.Stderr,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Template installed at %s\n", dir)
		return nil
	},
}

var templatePackCmd = &cobra.Command{
	Use:   "pack <dir>",
	Short: "Pack a project directory into a store template",
	Long: `Zip a project directory into the template store. The directory must
contain an info.md; a template.yaml is validated when present.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		srcDir := args[0]
		name := packName
		if name == "" {
			name = filepath.Base(filepath.Clean(srcDir))
		}

		infoPath := filepath.Join(srcDir, workspace.InfoFile)
		if _, err := os.Stat(infoPath); err != nil {
			return fmt.Errorf("%s has no %s; every template ships an info document", srcDir, workspace.InfoFile)
		}

		manifestPath := filepath.Join(srcDir, workspace.ManifestFile)
		if _, err := os.Stat(manifestPath); err == nil {
			result, err := manifest.ValidateFile(manifestPath)
			if err != nil {
				return err
			}
			if !result.Valid {
				for _, issue := range result.Issues {
					fmt.Fprintf(os.Stderr, "  %s: %s\n", issue.Path, issue.Message)
				}
				return fmt.Errorf("%s failed validation", manifestPath)
			}
		}

		destDir, err := workspace.TemplateDir(name)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(destDir, workspace.DirPermNormal); err != nil {
			return fmt.Errorf("creating template directory: %w", err)
		}

		archivePath := filepath.Join(destDir, name+".zip")
		if err := template.Pack(srcDir, archivePath); err != nil {
			return err
		}

		// The store keeps metadata next to the archive.
		for _, f := range []string{workspace.InfoFile, workspace.ManifestFile} {
			data, err := os.ReadFile(filepath.Join(srcDir, f))
			if err != nil {
				continue
			}
			if err := os.WriteFile(filepath.Join(destDir, f), data, workspace.FilePermNorm); err != nil {
				return err
			}
		}

		fmt.Printf("Packed %s into %s\n", srcDir, archivePath)
		return nil
	},
}
