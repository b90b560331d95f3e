package scan

import (
	"testing"

	"github.com/falcion/sigscan/internal/config"
)

func TestRun_ReturnsCommand(t *testing.T) {
	cmd := Run(config.Default())

	if cmd.Name != "scan" {
		t.Errorf("Name = %q, want %q", cmd.Name, "scan")
	}

	if cmd.Usage == "" {
		t.Error("Usage should not be empty")
	}

	// Verify flags exist
	flagNames := []string{"root", "tokens", "format", "quiet", "no-interactive"}
	for _, name := range flagNames {
		found := false
		for _, flag := range cmd.Flags {
			if flag.Names()[0] == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected flag %q not found", name)
		}
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input string
		want  OutputFormat
	}{
		{"text", FormatText},
		{"json", FormatJSON},
		{"table", FormatTable},
		{"", FormatText},
		{"bogus", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseOutputFormat(tt.input); got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
