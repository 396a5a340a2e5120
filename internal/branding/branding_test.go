package branding

import "testing"

func TestIdentity(t *testing.T) {
	if CLIName() != "skillforge" {
		t.Errorf("CLIName() = %q", CLIName())
	}
	if HomeDir() != ".skillforge" {
		t.Errorf("HomeDir() = %q", HomeDir())
	}
	if EnvPrefix() != "SKILLFORGE" {
		t.Errorf("EnvPrefix() = %q", EnvPrefix())
	}
	if CatalogRepoURL() == "" {
		t.Error("CatalogRepoURL() should have a default")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("home"); got != "SKILLFORGE_HOME" {
		t.Errorf("EnvVar(home) = %q", got)
	}
	if got := EnvVar("CATALOG_REPO_URL"); got != "SKILLFORGE_CATALOG_REPO_URL" {
		t.Errorf("EnvVar(CATALOG_REPO_URL) = %q", got)
	}
}
