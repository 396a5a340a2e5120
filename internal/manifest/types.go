package manifest

// Type names accepted in the "type" field.
const (
	TypeTemplate = "template"
	TypeSkill    = "skill"
)

// BaseManifest contains fields shared by all manifest types.
type BaseManifest struct {
	Name        string   `yaml:"name" json:"name"`
	Type        string   `yaml:"type" json:"type"`
	Version     string   `yaml:"version" json:"version"`
	Description string   `yaml:"description" json:"description"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Author      string   `yaml:"author,omitempty" json:"author,omitempty"`
}

// TemplateManifest describes a web-app template in the store.
type TemplateManifest struct {
	BaseManifest `yaml:",inline"`
	Archive      string   `yaml:"archive,omitempty" json:"archive,omitempty"`
	TitleFile    string   `yaml:"title_file,omitempty" json:"title_file,omitempty"`
	PostInstall  []string `yaml:"post_install,omitempty" json:"post_install,omitempty"`
}

// SkillManifest describes a skill document: an operating procedure for an
// agent plus the external CLI tools it orchestrates.
type SkillManifest struct {
	BaseManifest    `yaml:",inline"`
	CLIDependencies []CLIDependency `yaml:"cli_dependencies,omitempty" json:"cli_dependencies,omitempty"`
	OutputFormats   []string        `yaml:"output_formats,omitempty" json:"output_formats,omitempty"`
}

// CLIDependency represents an external CLI tool dependency.
type CLIDependency struct {
	Name       string `yaml:"name" json:"name"`
	MinVersion string `yaml:"min_version,omitempty" json:"min_version,omitempty"`
}
