package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const templateYAML = `name: vite-react
type: template
version: 1.2.0
description: Vite + React starter
tags:
  - react
  - vite
title_file: index.html
post_install:
  - npm run prepare
`

const skillYAML = `name: docx
type: skill
version: 0.3.1
description: Word document toolchain
cli_dependencies:
  - name: pandoc
    min_version: 3.0.0
  - name: soffice
output_formats:
  - docx
  - pdf
`

func TestParseFile(t *testing.T) {
	t.Run("template", func(t *testing.T) {
		m, err := ParseFile(writeManifest(t, templateYAML))
		if err != nil {
			t.Fatalf("ParseFile() error: %v", err)
		}
		tm, ok := m.(*TemplateManifest)
		if !ok {
			t.Fatalf("ParseFile() returned %T, want *TemplateManifest", m)
		}
		if tm.Name != "vite-react" || tm.Type != TypeTemplate || tm.Version != "1.2.0" {
			t.Errorf("ParseFile() = %+v", tm)
		}
		if tm.TitleFile != "index.html" {
			t.Errorf("TitleFile = %q", tm.TitleFile)
		}
		if len(tm.PostInstall) != 1 {
			t.Errorf("PostInstall = %v", tm.PostInstall)
		}
	})

	t.Run("skill", func(t *testing.T) {
		m, err := ParseFile(writeManifest(t, skillYAML))
		if err != nil {
			t.Fatalf("ParseFile() error: %v", err)
		}
		sm, ok := m.(*SkillManifest)
		if !ok {
			t.Fatalf("ParseFile() returned %T, want *SkillManifest", m)
		}
		if len(sm.CLIDependencies) != 2 {
			t.Fatalf("CLIDependencies = %v", sm.CLIDependencies)
		}
		if sm.CLIDependencies[0].MinVersion != "3.0.0" {
			t.Errorf("pandoc MinVersion = %q", sm.CLIDependencies[0].MinVersion)
		}
	})

	t.Run("missing type", func(t *testing.T) {
		_, err := ParseFile(writeManifest(t, "name: x\nversion: 1.0.0\n"))
		if err == nil || !strings.Contains(err.Error(), "type") {
			t.Fatalf("ParseFile() error = %v, want missing type", err)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := ParseFile(writeManifest(t, "name: x\ntype: widget\nversion: 1.0.0\n"))
		if err == nil || !strings.Contains(err.Error(), "unknown manifest type") {
			t.Fatalf("ParseFile() error = %v", err)
		}
	})
}

func TestParseSkillBytes(t *testing.T) {
	sm, err := ParseSkillBytes([]byte(skillYAML))
	if err != nil {
		t.Fatalf("ParseSkillBytes() error: %v", err)
	}
	if sm.Name != "docx" {
		t.Errorf("Name = %q", sm.Name)
	}
	if len(sm.OutputFormats) != 2 {
		t.Errorf("OutputFormats = %v", sm.OutputFormats)
	}
}

func TestParseFileInvalidYAML(t *testing.T) {
	_, err := ParseFile(writeManifest(t, "name: [unclosed"))
	if err == nil {
		t.Fatal("ParseFile() should fail on malformed YAML")
	}
}
