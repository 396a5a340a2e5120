// Package linker wires installed skill documents into the discovery
// directories of agent tools (Claude Code, Codex, OpenCode). Skills live
// once under .skillforge/skills/ and each tool gets relative symlinks, so
// links survive a checkout being moved.
package linker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/skillforge-labs/skillforge/internal/platform"
	"github.com/skillforge-labs/skillforge/internal/skilldoc"
)

// AddSkill records a skill in project.yaml, installs its document, and
// relinks every configured tool.
func AddSkill(projectPath, name string) error {
	if _, err := skilldoc.Load(name); err != nil {
		return err
	}

	config, err := LoadProject(projectPath)
	if err != nil {
		return err
	}

	if contains(config.Skills, name) {
		return fmt.Errorf("skill %s is already linked", name)
	}
	config.Skills = append(config.Skills, name)

	if err := SaveProject(projectPath, config); err != nil {
		return err
	}
	return Sync(projectPath)
}

// RemoveSkill removes a skill from project.yaml and relinks.
func RemoveSkill(projectPath, name string) error {
	config, err := LoadProject(projectPath)
	if err != nil {
		return err
	}

	if !contains(config.Skills, name) {
		return fmt.Errorf("skill %s is not currently linked", name)
	}
	config.Skills = remove(config.Skills, name)

	if err := SaveProject(projectPath, config); err != nil {
		return err
	}
	return Sync(projectPath)
}

// Sync installs the active skill documents into .skillforge/skills/ and
// regenerates each tool's symlinks from project.yaml.
func Sync(projectPath string) error {
	config, err := LoadProject(projectPath)
	if err != nil {
		return err
	}

	if _, err := skilldoc.Install(ProjectSkillsDir(projectPath)); err != nil {
		return fmt.Errorf("installing skill documents: %w", err)
	}

	for _, t := range config.Tools {
		tool, ok := ParseToolName(t)
		if !ok {
			return fmt.Errorf("unknown tool in project.yaml: %s (known: %s)",
				t, strings.Join(KnownTools(), ", "))
		}
		if err := linkTool(projectPath, tool, config.Skills); err != nil {
			return fmt.Errorf("linking skills for %s: %w", tool, err)
		}
	}
	return nil
}

// linkTool points a tool's discovery directory at the active skills.
// Stale links for skills no longer active are removed.
func linkTool(projectPath string, tool ToolName, skills []string) error {
	cfg := toolRegistry[tool]
	dir := filepath.Join(projectPath, filepath.FromSlash(cfg.SkillsDir))

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Drop links that point into .skillforge/skills/ but are no longer
	// active. Anything else in the tool dir is the user's: hand-written
	// skills and links to other stores stay untouched.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.Type()&os.ModeSymlink == 0 {
			continue
		}
		if contains(skills, entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !managedLink(path) {
			continue
		}
		if err := platform.RemoveSymlink(path); err != nil {
			return err
		}
	}

	// Relative target from the tool dir back to the project skill store.
	depth := len(strings.Split(cfg.SkillsDir, "/"))
	up := strings.Repeat("../", depth)

	for _, skill := range skills {
		link := filepath.Join(dir, skill)
		target := filepath.Join(filepath.FromSlash(up), projectDir, skillsDir, skill)

		if info, err := os.Lstat(link); err == nil {
			if info.Mode()&os.ModeSymlink == 0 {
				return fmt.Errorf("%s already exists and is not a link; move it aside to link the %s skill", link, skill)
			}
			if err := platform.RemoveSymlink(link); err != nil {
				return err
			}
		}

		if err := platform.CreateSymlink(target, link); err != nil {
			return err
		}
	}
	return nil
}

// managedLink reports whether the symlink at path points into the project's
// .skillforge/skills/ store, i.e. whether this linker created it.
func managedLink(path string) bool {
	target, err := platform.ReadSymlinkTarget(path)
	if err != nil {
		return false
	}
	return strings.Contains(filepath.ToSlash(target), projectDir+"/"+skillsDir+"/")
}

// Unlink removes every tool's skill links for the project.
func Unlink(projectPath string) error {
	config, err := LoadProject(projectPath)
	if err != nil {
		return err
	}

	for _, t := range config.Tools {
		tool, ok := ParseToolName(t)
		if !ok {
			continue
		}
		cfg := toolRegistry[tool]
		dir := filepath.Join(projectPath, filepath.FromSlash(cfg.SkillsDir))
		for _, skill := range config.Skills {
			path := filepath.Join(dir, skill)
			if managedLink(path) {
				platform.RemoveSymlink(path) // best-effort
			}
		}
	}
	return nil
}

func contains(slice []string, val string) bool {
	for _, s := range slice {
		if s == val {
			return true
		}
	}
	return false
}

func remove(slice []string, val string) []string {
	result := make([]string, 0, len(slice))
	for _, s := range slice {
		if s != val {
			result = append(result, s)
		}
	}
	return result
}
