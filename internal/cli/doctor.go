package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/skillforge-labs/skillforge/internal/manifest"
	"github.com/skillforge-labs/skillforge/internal/skilldoc"
	"github.com/skillforge-labs/skillforge/internal/template"
	"github.com/skillforge-labs/skillforge/internal/toolchain"
	"github.com/skillforge-labs/skillforge/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	checkTools    bool
	checkStore    bool
	checkSkills   bool
	checkManifest string
)

func init() {
	doctorCmd.Flags().BoolVar(&checkTools, "check-tools", false, "Verify external toolchain availability")
	doctorCmd.Flags().BoolVar(&checkStore, "check-store", false, "Verify the template store")
	doctorCmd.Flags().BoolVar(&checkSkills, "check-skills", false, "Verify embedded skill documents and their tools")
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a manifest file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the Skillforge installation",
	Long:  `Run diagnostic checks on the workspace, template store, skill documents, and external toolchain.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		anyFlag := checkTools || checkStore || checkSkills || checkManifest != ""

		// If no specific flag, run all checks.
		if !anyFlag {
			runToolsCheck()
			runStoreCheck()
			runSkillsCheck()
			return nil
		}

		if checkTools {
			runToolsCheck()
		}
		if checkStore {
			runStoreCheck()
		}
		if checkSkills {
			runSkillsCheck()
		}
		if checkManifest != "" {
			return runManifestCheck(checkManifest)
		}
		return nil
	},
}

func runToolsCheck() {
	fmt.Println("External toolchain:")
	for _, s := range toolchain.CheckAll(context.Background()) {
		switch {
		case !s.Available:
			fmt.Printf("  [MISS] %s not found on PATH\n", s.Tool.Name)
		case s.Err != nil:
			fmt.Printf("  [WARN] %s: %v\n", s.Tool.Name, s.Err)
		case s.Outdated:
			fmt.Printf("  [WARN] %s %s is older than required %s\n", s.Tool.Name, s.Version, s.Tool.MinVersion)
		case s.Version != "":
			fmt.Printf("  [OK] %s %s\n", s.Tool.Name, s.Version)
		default:
			fmt.Printf("  [OK] %s\n", s.Tool.Name)
		}
	}
}

func runStoreCheck() {
	fmt.Println("Template store:")
	root, err := workspace.TemplatesRoot()
	if err != nil {
		fmt.Printf("  [WARN] cannot resolve store: %v\n", err)
		return
	}
	templates, err := template.List()
	if err != nil {
		fmt.Printf("  [WARN] %v\n", err)
		return
	}
	if len(templates) == 0 {
		fmt.Printf("  [WARN] no templates in %s\n", root)
		return
	}
	hasDefault := false
	for _, t := range templates {
		fmt.Printf("  [OK] %s\n", t.Name)
		if t.IsDefault() {
			hasDefault = true
		}
	}
	if !hasDefault {
		fmt.Printf("  [WARN] default template %q is not installed\n", template.DefaultName)
	}

	cacheDir, err := workspace.DepCacheDir(template.DefaultName)
	if err == nil {
		if _, statErr := os.Stat(cacheDir); statErr != nil {
			fmt.Printf("  [WARN] dependency cache is empty; run 'skillforge webapp prepare'\n")
		} else {
			fmt.Printf("  [OK] dependency cache at %s\n", cacheDir)
		}
	}
}

func runSkillsCheck() {
	fmt.Println("Skill documents:")
	docs, err := skilldoc.LoadAll()
	if err != nil {
		fmt.Printf("  [WARN] %v\n", err)
		return
	}
	for _, d := range docs {
		fmt.Printf("  [OK] %s %s\n", d.Name, d.Manifest.Version)
		var names []string
		minVersions := map[string]string{}
		for _, dep := range d.Manifest.CLIDependencies {
			names = append(names, dep.Name)
			minVersions[dep.Name] = dep.MinVersion
		}
		for _, s := range toolchain.CheckNamed(context.Background(), names, minVersions) {
			if !s.Available {
				fmt.Printf("       [MISS] needs %s\n", s.Tool.Name)
			} else if s.Outdated {
				fmt.Printf("       [WARN] needs %s >= %s (found %s)\n", s.Tool.Name, s.Tool.MinVersion, s.Version)
			}
		}
	}
}

func runManifestCheck(path string) error {
	result, err := manifest.ValidateFile(path)
	if err != nil {
		return err
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			fmt.Printf("  %s: %s\n", issue.Path, issue.Message)
		}
		return fmt.Errorf("%s failed validation", path)
	}

	parsed, err := manifest.ParseFile(path)
	if err != nil {
		return err
	}
	switch m := parsed.(type) {
	case *manifest.TemplateManifest:
		fmt.Printf("%s is a valid template manifest (%s %s)\n", path, m.Name, m.Version)
	case *manifest.SkillManifest:
		fmt.Printf("%s is a valid skill manifest (%s %s)\n", path, m.Name, m.Version)
	}
	return nil
}
