// Package toolchain detects the external tools that templates and skill
// documents delegate to. Nothing here reimplements those tools; the checks
// exist so failures surface before an agent is mid-procedure.
package toolchain

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// Tool describes one external dependency and how to interrogate it.
type Tool struct {
	Name        string
	MinVersion  string   // empty means presence alone satisfies the check
	VersionArgs []string // arguments that print the version
}

// Status is the outcome of checking a single tool.
type Status struct {
	Tool      Tool
	Available bool
	Version   string
	Outdated  bool
	Err       error
}

// Known tools, in the order doctor reports them.
var Known = []Tool{
	{Name: "node", MinVersion: "18.0.0", VersionArgs: []string{"--version"}},
	{Name: "npm", MinVersion: "9.0.0", VersionArgs: []string{"--version"}},
	{Name: "git", VersionArgs: []string{"--version"}},
	{Name: "soffice", VersionArgs: []string{"--version"}},
	{Name: "pandoc", VersionArgs: []string{"--version"}},
}

var versionPattern = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// Lookup returns the known tool definition by name.
func Lookup(name string) (Tool, bool) {
	for _, t := range Known {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

// Require returns an error unless the named tool is on PATH.
// The message is a single line, matching the CLI's error contract.
func Require(name string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s is required but was not found on PATH", name)
	}
	return nil
}

// Check resolves the tool on PATH and, when it declares a minimum version,
// runs it to compare versions.
func Check(ctx context.Context, t Tool) Status {
	s := Status{Tool: t}

	path, err := exec.LookPath(t.Name)
	if err != nil {
		return s
	}
	s.Available = true

	if len(t.VersionArgs) == 0 {
		return s
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, path, t.VersionArgs...).Output()
	if err != nil {
		s.Err = fmt.Errorf("running %s %s: %w", t.Name, strings.Join(t.VersionArgs, " "), err)
		return s
	}

	s.Version = versionPattern.FindString(string(out))
	if s.Version == "" || t.MinVersion == "" {
		return s
	}

	have, err := semver.NewVersion(s.Version)
	if err != nil {
		s.Err = fmt.Errorf("parsing %s version %q: %w", t.Name, s.Version, err)
		return s
	}
	want, err := semver.NewVersion(t.MinVersion)
	if err != nil {
		s.Err = fmt.Errorf("parsing minimum version %q: %w", t.MinVersion, err)
		return s
	}

	s.Outdated = have.LessThan(want)
	return s
}

// CheckAll checks every known tool.
func CheckAll(ctx context.Context) []Status {
	statuses := make([]Status, 0, len(Known))
	for _, t := range Known {
		statuses = append(statuses, Check(ctx, t))
	}
	return statuses
}

// CheckNamed checks the named tools, using the known definition when one
// exists and presence-only otherwise. Skill manifests drive this with their
// cli_dependencies lists.
func CheckNamed(ctx context.Context, names []string, minVersions map[string]string) []Status {
	statuses := make([]Status, 0, len(names))
	for _, name := range names {
		t, ok := Lookup(name)
		if !ok {
			t = Tool{Name: name, VersionArgs: []string{"--version"}}
		}
		if mv, ok := minVersions[name]; ok && mv != "" {
			t.MinVersion = mv
		}
		statuses = append(statuses, Check(ctx, t))
	}
	return statuses
}
