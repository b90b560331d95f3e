package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdir switches the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
}

func TestConfigPathFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no flag", []string{"sigscan", "scan"}, ".sigscan.yaml"},
		{"separate value", []string{"sigscan", "--config", "custom.yaml", "scan"}, "custom.yaml"},
		{"equals form", []string{"sigscan", "--config=custom.yaml"}, "custom.yaml"},
		{"flag without value", []string{"sigscan", "--config"}, ".sigscan.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := configPathFromArgs(tt.args); got != tt.want {
				t.Errorf("configPathFromArgs(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestRunCLI_SyncWritesManifest(t *testing.T) {
	tmp := t.TempDir()

	pkg := `{
  "name": "demo",
  "displayName": "Demo",
  "description": "Demo project",
  "author": {"name": "Falcion", "url": "https://github.com/falcion"},
  "license": "MIT",
  "version": "1.2.3"
}`
	if err := os.WriteFile(filepath.Join(tmp, "package.json"), []byte(pkg), 0644); err != nil {
		t.Fatal(err)
	}

	chdir(t, tmp)

	if err := runCLI([]string{"sigscan", "sync"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmp, "manifest.json"))
	if err != nil {
		t.Fatalf("manifest.json should exist: %v", err)
	}
	if !strings.Contains(string(data), `"version": "1.2.3"`) {
		t.Errorf("manifest missing synced version, got:\n%s", string(data))
	}

	backup, err := os.ReadFile(filepath.Join(tmp, "manifest-backup.json"))
	if err != nil {
		t.Fatalf("manifest-backup.json should exist: %v", err)
	}
	if string(backup) != "{}" {
		t.Errorf("backup should hold the pre-sync manifest, got %q", string(backup))
	}

	if _, err := os.Stat(filepath.Join(tmp, ".env")); err != nil {
		t.Errorf(".env should exist: %v", err)
	}
}

func TestRunCLI_SyncNoDescriptor(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)

	err := runCLI([]string{"sigscan", "sync"})
	if err == nil {
		t.Fatal("expected error for missing descriptor, got nil")
	}
	if !strings.Contains(err.Error(), "no package descriptor") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRunCLI_ScanQuiet(t *testing.T) {
	tmp := t.TempDir()

	if err := os.WriteFile(filepath.Join(tmp, "notes.md"), []byte("FALCION rules\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := runCLI([]string{"sigscan", "scan", "--root", tmp, "--quiet", "--no-interactive"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCLI_InitCreatesFiles(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)

	if err := runCLI([]string{"sigscan", "init"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []string{".env", "manifest.json", ".sigscan.yaml"} {
		if _, err := os.Stat(filepath.Join(tmp, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestRunCLI_ConfigFlag(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("SIGSCAN_ROOT", "")

	cfgPath := filepath.Join(tmp, "custom.yaml")
	if err := os.WriteFile(cfgPath, []byte("root: "+tmp+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmp, "notes.md"), []byte("UNITADE here\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := runCLI([]string{"sigscan", "--config", cfgPath, "scan", "--quiet", "--no-interactive"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
