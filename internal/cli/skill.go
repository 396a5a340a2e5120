package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/skillforge-labs/skillforge/internal/linker"
	"github.com/skillforge-labs/skillforge/internal/skilldoc"
	"github.com/skillforge-labs/skillforge/internal/toolchain"
	"github.com/skillforge-labs/skillforge/internal/workspace"
	"github.com/spf13/cobra"
)

func init() {
	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
	skillCmd.AddCommand(skillInstallCmd)
	skillCmd.AddCommand(skillLinkCmd)
	skillCmd.AddCommand(skillUnlinkCmd)
	rootCmd.AddCommand(skillCmd)
}

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage skill documents for agent tools",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available skill documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, err := skilldoc.LoadAll()
		if err != nil {
			return err
		}
		for _, d := range docs {
			fmt.Printf("  %-16s %-8s %s\n", d.Name, d.Manifest.Version, d.Manifest.Description)
		}
		return nil
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a skill document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := skilldoc.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Print(doc.Body)

		// Surface missing external tools next to the document so the
		// operator sees the gap before an agent does.
		var names []string
		minVersions := map[string]string{}
		for _, dep := range doc.Manifest.CLIDependencies {
			names = append(names, dep.Name)
			minVersions[dep.Name] = dep.MinVersion
		}
		if len(names) > 0 {
			for _, s := range toolchain.CheckNamed(context.Background(), names, minVersions) {
				if !s.Available {
					fmt.Fprintf(os.Stderr, "\nNote: %s requires %s, which is not on PATH\n", doc.Name, s.Tool.Name)
				} else if s.Outdated {
					fmt.Fprintf(os.Stderr, "\nNote: %s wants %s >= %s (found %s)\n",
						doc.Name, s.Tool.Name, s.Tool.MinVersion, s.Version)
				}
			}
		}
		return nil
	},
}

var skillInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the embedded skill documents into the workspace",
	Long: `Write the embedded skill documents under ~/.skillforge/skills/.
Existing files are preserved so local edits survive upgrades.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dest, err := workspace.SkillsRoot()
		if err != nil {
			return err
		}
		written, err := skilldoc.Install(dest)
		if err != nil {
			return err
		}
		if len(written) == 0 {
			fmt.Println("All skill documents already installed.")
			return nil
		}
		for _, f := range written {
			fmt.Printf("  installed %s\n", f)
		}
		return nil
	},
}

var skillLinkCmd = &cobra.Command{
	Use:   "link <name>",
	Short: "Link a skill document into the project's agent tools",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		if err := linker.AddSkill(cwd, args[0]); err != nil {
			return err
		}
		config, err := linker.LoadProject(cwd)
		if err != nil {
			return err
		}
		fmt.Printf("Linked %s for %s\n", args[0], strings.Join(config.Tools, ", "))
		return nil
	},
}

var skillUnlinkCmd = &cobra.Command{
	Use:   "unlink <name>",
	Short: "Unlink a skill document from the project's agent tools",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		if err := linker.RemoveSkill(cwd, args[0]); err != nil {
			return err
		}
		fmt.Printf("Unlinked %s\n", args[0])
		return nil
	},
}
