package linker

import (
	"slices"
	"testing"
)

func TestParseToolName(t *testing.T) {
	for _, name := range []string{"claude-code", "codex", "opencode"} {
		if _, ok := ParseToolName(name); !ok {
			t.Errorf("ParseToolName(%q) should succeed", name)
		}
	}
	if _, ok := ParseToolName("emacs"); ok {
		t.Error("ParseToolName should reject unknown tools")
	}
}

func TestKnownTools(t *testing.T) {
	want := []string{"claude-code", "codex", "opencode"}
	if got := KnownTools(); !slices.Equal(got, want) {
		t.Errorf("KnownTools() = %v, want %v", got, want)
	}
}
