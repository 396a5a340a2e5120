// Package manifest parses and validates the YAML manifests that describe
// templates (template.yaml) and skill documents (skill.yaml or front matter).
// Validation runs against an embedded JSON Schema.
package manifest
