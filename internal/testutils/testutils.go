package testutils

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTempConfig writes content to a .sigscan.yaml inside a fresh temp
// directory and returns the file path.
func WriteTempConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	// Literal filename (== config.DefaultConfigFile): importing config here
	// would create an import cycle with config's in-package tests.
	path := filepath.Join(dir, ".sigscan.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

// WriteFile writes content to name inside dir, creating parents.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// Chdir switches the working directory for the duration of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()

	origDir, err := os.Getwd()
	if err != nil {
		origDir = os.TempDir()
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(origDir) })
}
