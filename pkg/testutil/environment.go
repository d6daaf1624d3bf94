// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Isolate HOME and XDG directories per test

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestEnvironment is an isolated home plus a target directory to install into.
type TestEnvironment struct {
	HomeDir    string
	ConfigHome string
	StateHome  string
	TargetDir  string
}

// NewTestEnvironment points HOME and the XDG variables at fresh temp dirs.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		HomeDir:    filepath.Join(root, "home"),
		ConfigHome: filepath.Join(root, "home", ".config"),
		StateHome:  filepath.Join(root, "home", ".local", "state"),
		TargetDir:  filepath.Join(root, "target"),
	}

	for _, dir := range []string{env.HomeDir, env.ConfigHome, env.StateHome, env.TargetDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("RED_PANDA_CONFIG", "")

	return env
}

// WriteFile writes content under base, creating parents.
func WriteFile(t *testing.T, base, rel, content string) string {
	t.Helper()
	path := filepath.Join(base, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// ListTree returns every path under root, relative and sorted, skipping .git.
func ListTree(t *testing.T, root string) []string {
	t.Helper()
	var out []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && d.Name() == ".git" {
			return filepath.SkipDir
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel != "." {
			out = append(out, rel)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to walk %s: %v", root, err)
	}
	return out
}
