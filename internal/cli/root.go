package cli

import (
	"fmt"
	"os"

	"github.com/skillforge-labs/skillforge/internal/branding"
	"github.com/skillforge-labs/skillforge/internal/catalog"
	"github.com/skillforge-labs/skillforge/internal/config"
	"github.com/skillforge-labs/skillforge/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds web applications from zipped templates and manages the
skill documents that teach AI coding agents to drive external document
toolchains (Word, Excel, PDF).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Skip the staleness banner for commands that manage their own state.
		name := cmd.Name()
		if name == "init" || name == "catalog" || name == "update" || name == "version" {
			return
		}

		// Catalog freshness check (end-user mode only, no network).
		if workspace.DetectMode() == workspace.ModeEndUser {
			catalogRepoRoot, err := workspace.CatalogRepoRoot()
			if err == nil && catalog.IsStale(catalogRepoRoot, catalog.DefaultMaxAge) {
				exists, _ := workspace.CatalogExists()
				if exists {
					fmt.Fprintf(os.Stderr, "Catalog is more than 7 days old. Run '%s catalog update'.\n", branding.CLIName())
				}
			}
		}
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	config.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
