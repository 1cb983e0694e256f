// Package testutil provides common test helpers for the pyctx project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// DefaultProjectDirs lists the env directory names of the built-in table.
var DefaultProjectDirs = []string{
	"economic_indicators",
	"kpi_recommender",
	"portfolio_optimization",
	"product_analytics",
	"roof_maxx_analytics",
}

// TempWorkspace creates a temporary workspace with envs/<p>/bin/activate and
// projects/<p> for every built-in project, and returns the workspace root.
// The tree is automatically cleaned up when the test finishes.
func TempWorkspace(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	for _, name := range DefaultProjectDirs {
		binDir := filepath.Join(root, "envs", name, "bin")
		if err := os.MkdirAll(binDir, 0755); err != nil {
			t.Fatalf("TempWorkspace: mkdir failed: %v", err)
		}
		activate := filepath.Join(binDir, "activate")
		if err := os.WriteFile(activate, []byte("# venv activate stub\n"), 0644); err != nil {
			t.Fatalf("TempWorkspace: write activate failed: %v", err)
		}
		python := filepath.Join(binDir, "python")
		if err := os.WriteFile(python, []byte("#!/bin/sh\necho Python 3.11.0\n"), 0755); err != nil {
			t.Fatalf("TempWorkspace: write python failed: %v", err)
		}
		projectDir := filepath.Join(root, "projects", name)
		if err := os.MkdirAll(projectDir, 0755); err != nil {
			t.Fatalf("TempWorkspace: mkdir project failed: %v", err)
		}
	}
	return root
}

// RemoveProjectDir deletes one project working directory from the workspace,
// simulating the missing-directory condition doctor should flag.
func RemoveProjectDir(t *testing.T, root, name string) {
	t.Helper()

	if err := os.RemoveAll(filepath.Join(root, "projects", name)); err != nil {
		t.Fatalf("RemoveProjectDir: %v", err)
	}
}

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}

// WorkspaceConfig creates a temporary config.toml pointing at the given
// workspace root, using the built-in project table. Returns the config path.
func WorkspaceConfig(t *testing.T, root string) string {
	t.Helper()

	return TempConfigFile(t, "version = 1\nroot = \""+root+"\"\n")
}
