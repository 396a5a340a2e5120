package cli

import (
	"fmt"

	"github.com/skillforge-labs/skillforge/internal/catalog"
	"github.com/skillforge-labs/skillforge/internal/workspace"
	"github.com/spf13/cobra"
)

func init() {
	catalogCmd.AddCommand(catalogUpdateCmd)
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the template catalog repository",
}

var catalogUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Clone or update the template catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		repoRoot, err := workspace.CatalogRepoRoot()
		if err != nil {
			return err
		}

		fmt.Printf("Updating catalog at %s...\n", repoRoot)
		if err := catalog.Update(repoRoot); err != nil {
			return err
		}
		fmt.Println("Catalog is up to date.")
		return nil
	},
}
