package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/skillforge-labs/skillforge/internal/catalog"
	"github.com/skillforge-labs/skillforge/internal/linker"
	"github.com/skillforge-labs/skillforge/internal/template"
	"github.com/skillforge-labs/skillforge/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	initGlobal bool
	initTools  string
)

func init() {
	initCmd.Flags().BoolVar(&initGlobal, "global", false, "Initialize the global workspace (~/.skillforge/)")
	initCmd.Flags().StringVar(&initTools, "tools", "claude-code,codex,opencode", "Comma-separated list of agent tools to configure")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize Skillforge configuration",
	Long: `Initialize the Skillforge configuration.

Without flags, creates a project-level .skillforge/project.yaml in the
current directory. With --global, initializes the workspace under
~/.skillforge/ and clones the template catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if initGlobal {
			return runGlobalInit()
		}
		return runProjectInit()
	},
}

func runGlobalInit() error {
	root, err := workspace.Root()
	if err != nil {
		return err
	}
	fmt.Printf("Initializing workspace at %s\n", root)

	if err := workspace.InitGlobal(os.Stdout); err != nil {
		return fmt.Errorf("initializing workspace: %w", err)
	}

	fmt.Println("\nWorkspace initialized successfully.")

	// Clone the catalog if not already present (end-user mode only).
	if workspace.DetectMode() == workspace.ModeEndUser {
		exists, _ := workspace.CatalogExists()
		if !exists {
			catalogRepoRoot, err := workspace.CatalogRepoRoot()
			if err != nil {
				fmt.Printf("\nWarning: could not determine catalog path: %v\n", err)
				fmt.Println("Run 'skillforge catalog update' later to fetch the catalog.")
				return nil
			}

			fmt.Printf("\nCloning catalog to %s...\n", catalogRepoRoot)
			if err := catalog.Clone(catalogRepoRoot); err != nil {
				fmt.Printf("Warning: catalog clone failed: %v\n", err)
				fmt.Println("Run 'skillforge catalog update' later to retry.")
				return nil // Non-fatal: workspace init still succeeded.
			}
			fmt.Println("Catalog cloned successfully.")
		}
	}

	return nil
}

func runProjectInit() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	configPath := linker.ProjectConfigPath(cwd)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", configPath)
	}

	tools := parseToolsList(initTools)
	if len(tools) == 0 {
		return fmt.Errorf("at least one tool must be specified via --tools")
	}
	for _, t := range tools {
		if _, ok := linker.ParseToolName(t); !ok {
			return fmt.Errorf("unknown tool %q (known: %s)", t, strings.Join(linker.KnownTools(), ", "))
		}
	}

	fmt.Printf("Initializing Skillforge project in %s\n", cwd)
	fmt.Printf("Tools: %s\n", strings.Join(tools, ", "))

	if err := linker.InitProject(cwd, tools, template.DefaultName); err != nil {
		return fmt.Errorf("initializing project: %w", err)
	}

	fmt.Printf("\nProject initialized. Created %s\n", configPath)
	fmt.Println("Use 'skillforge skill link <name>' to link skill documents.")
	return nil
}

func parseToolsList(s string) []string {
	parts := strings.Split(s, ",")
	tools := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			tools = append(tools, trimmed)
		}
	}
	return tools
}
