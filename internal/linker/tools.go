package linker

import "sort"

// ToolName identifies a supported agent tool.
type ToolName string

const (
	ToolClaudeCode ToolName = "claude-code"
	ToolCodex      ToolName = "codex"
	ToolOpenCode   ToolName = "opencode"
)

// toolConfig describes where a tool discovers skill documents inside a
// project checkout.
type toolConfig struct {
	SkillsDir string // project-relative discovery directory
}

var toolRegistry = map[ToolName]toolConfig{
	ToolClaudeCode: {SkillsDir: ".claude/skills"},
	ToolCodex:      {SkillsDir: ".codex/skills"},
	ToolOpenCode:   {SkillsDir: ".opencode/skills"},
}

// ParseToolName validates a tool name string.
func ParseToolName(s string) (ToolName, bool) {
	name := ToolName(s)
	_, ok := toolRegistry[name]
	return name, ok
}

// KnownTools returns the supported tool names, sorted.
func KnownTools() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}
