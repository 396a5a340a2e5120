package linker

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

const (
	projectDir  = ".skillforge"
	projectFile = "project.yaml"
	skillsDir   = "skills"
)

// ProjectConfig represents the .skillforge/project.yaml structure.
type ProjectConfig struct {
	Tools    []string `yaml:"tools"`
	Template string   `yaml:"template,omitempty"`
	Skills   []string `yaml:"skills,omitempty"`
}

// ProjectConfigPath returns the full path to .skillforge/project.yaml.
func ProjectConfigPath(projectPath string) string {
	return filepath.Join(projectPath, projectDir, projectFile)
}

// ProjectSkillsDir returns the project-local skill document directory.
func ProjectSkillsDir(projectPath string) string {
	return filepath.Join(projectPath, projectDir, skillsDir)
}

// LoadProject reads and parses .skillforge/project.yaml.
func LoadProject(projectPath string) (*ProjectConfig, error) {
	path := ProjectConfigPath(projectPath)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project config: %w", err)
	}

	var config ProjectConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing project config: %w", err)
	}

	return &config, nil
}

// SaveProject writes the project config to .skillforge/project.yaml.
func SaveProject(projectPath string, config *ProjectConfig) error {
	path := ProjectConfigPath(projectPath)

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling project config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing project config: %w", err)
	}

	return nil
}

// InitProject creates .skillforge/ with project.yaml and the skills
// directory the tool linkers point at.
func InitProject(projectPath string, tools []string, templateName string) error {
	dir := filepath.Join(projectPath, projectDir)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s directory: %w", projectDir, err)
	}
	if err := os.MkdirAll(filepath.Join(dir, skillsDir), 0755); err != nil {
		return fmt.Errorf("creating skills directory: %w", err)
	}

	config := &ProjectConfig{
		Tools:    tools,
		Template: templateName,
	}
	return SaveProject(projectPath, config)
}
