package manifest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// ParseFile reads a manifest file, detects its type, and returns the
// fully typed manifest struct: *TemplateManifest or *SkillManifest.
func ParseFile(path string) (interface{}, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	typeName, err := detectType(data)
	if err != nil {
		return nil, fmt.Errorf("detecting manifest type in %s: %w", path, err)
	}

	switch typeName {
	case TypeTemplate:
		return parseTyped[TemplateManifest](data, path)
	case TypeSkill:
		return parseTyped[SkillManifest](data, path)
	default:
		return nil, fmt.Errorf("unknown manifest type %q in %s", typeName, path)
	}
}

// ParseTemplate reads a manifest file and parses it as a TemplateManifest.
func ParseTemplate(path string) (*TemplateManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseTyped[TemplateManifest](data, path)
}

// ParseSkillBytes parses raw YAML (e.g. front matter already split from a
// skill document) as a SkillManifest.
func ParseSkillBytes(data []byte) (*SkillManifest, error) {
	return parseTyped[SkillManifest](data, "skill front matter")
}

// parseTyped unmarshals YAML data into a typed manifest struct.
func parseTyped[T any](data []byte, path string) (*T, error) {
	var m T
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// detectType unmarshals YAML data into a generic map and extracts the type field.
func detectType(data []byte) (string, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return "", fmt.Errorf("unmarshaling YAML: %w", err)
	}

	typeVal, ok := raw["type"]
	if !ok {
		return "", fmt.Errorf("manifest missing required 'type' field")
	}

	typeName, ok := typeVal.(string)
	if !ok {
		return "", fmt.Errorf("manifest 'type' field is not a string")
	}

	return typeName, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
