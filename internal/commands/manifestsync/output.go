package manifestsync

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/falcion/sigscan/internal/manifest"
	"github.com/falcion/sigscan/internal/printer"
)

// OutputFormat controls how sync results are displayed.
type OutputFormat string

const (
	// FormatText outputs human-readable text.
	FormatText OutputFormat = "text"

	// FormatJSON outputs machine-readable JSON.
	FormatJSON OutputFormat = "json"

	// FormatTable outputs tabular data.
	FormatTable OutputFormat = "table"
)

// ParseOutputFormat converts a string to OutputFormat.
func ParseOutputFormat(s string) OutputFormat {
	switch s {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}

// Formatter handles display of sync results.
type Formatter struct {
	format OutputFormat
}

// NewFormatter creates a new Formatter with the specified output format.
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{format: format}
}

// FormatResult formats the sync result for display.
func (f *Formatter) FormatResult(res *manifest.Result) string {
	switch f.format {
	case FormatJSON:
		return f.formatJSON(res)
	case FormatTable:
		return f.formatTable(res)
	default:
		return f.formatText(res)
	}
}

// formatText formats the result as human-readable text.
func (f *Formatter) formatText(res *manifest.Result) string {
	var sb strings.Builder

	// Header
	sb.WriteString("\n")
	sb.WriteString(printer.Info("Manifest Sync"))
	sb.WriteString("\n")
	sb.WriteString(printer.Faint(strings.Repeat("-", 70)))
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "Descriptor: %s\n", printer.Bold(res.DescriptorPath))
	fmt.Fprintf(&sb, "Manifest: %s\n", printer.Bold(res.ManifestPath))

	if res.CreatedEnv {
		fmt.Fprintf(&sb, "%s\n", printer.Faint("Created .env with default content"))
	}
	if res.CreatedManifest {
		fmt.Fprintf(&sb, "%s\n", printer.Faint("Created empty manifest"))
	}
	sb.WriteString("\n")

	if res.InSync() {
		sb.WriteString(printer.Success("Manifest is in sync with the descriptor."))
		sb.WriteString("\n")
		return sb.String()
	}

	// Differences section
	sb.WriteString(printer.Info("Differences:"))
	sb.WriteString("\n")
	for _, d := range res.Diffs {
		fmt.Fprintf(&sb, "  %s: %q -> %q\n", printer.Highlight(d.Field), d.Current, d.Want)
	}
	sb.WriteString("\n")

	switch {
	case res.DryRun:
		sb.WriteString(printer.Warning(fmt.Sprintf("Dry run: %d field(s) would be updated, nothing written.", len(res.Diffs))))
	case res.Wrote:
		sb.WriteString(printer.Success(fmt.Sprintf("Updated %d field(s). Previous manifest saved to %s.", len(res.Diffs), manifest.BackupFile)))
	}
	sb.WriteString("\n")

	return sb.String()
}

// formatTable formats the field differences as a bordered table.
func (f *Formatter) formatTable(res *manifest.Result) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(printer.Info("Manifest Sync"))
	sb.WriteString("\n\n")

	if !res.InSync() {
		headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
		cellStyle := lipgloss.NewStyle().Padding(0, 1)

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			}).
			Headers("FIELD", "MANIFEST", "DESCRIPTOR")

		for _, d := range res.Diffs {
			t.Row(d.Field, d.Current, d.Want)
		}

		sb.WriteString(t.String())
		sb.WriteString("\n\n")
	}

	sb.WriteString(f.formatSummary(res))
	sb.WriteString("\n")

	return sb.String()
}

// formatJSON formats the result as JSON.
func (f *Formatter) formatJSON(res *manifest.Result) string {
	type jsonDiff struct {
		Field      string `json:"field"`
		Manifest   string `json:"manifest"`
		Descriptor string `json:"descriptor"`
	}

	output := struct {
		Descriptor      string     `json:"descriptor"`
		Manifest        string     `json:"manifest"`
		InSync          bool       `json:"in_sync"`
		DryRun          bool       `json:"dry_run"`
		CreatedEnv      bool       `json:"created_env"`
		CreatedManifest bool       `json:"created_manifest"`
		BackedUp        bool       `json:"backed_up"`
		Wrote           bool       `json:"wrote"`
		Diffs           []jsonDiff `json:"diffs"`
	}{
		Descriptor:      res.DescriptorPath,
		Manifest:        res.ManifestPath,
		InSync:          res.InSync(),
		DryRun:          res.DryRun,
		CreatedEnv:      res.CreatedEnv,
		CreatedManifest: res.CreatedManifest,
		BackedUp:        res.BackedUp,
		Wrote:           res.Wrote,
		Diffs:           make([]jsonDiff, len(res.Diffs)),
	}

	for i, d := range res.Diffs {
		output.Diffs[i] = jsonDiff{
			Field:      d.Field,
			Manifest:   d.Current,
			Descriptor: d.Want,
		}
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting JSON: %v\n", err)
		return ""
	}

	return string(data)
}

// formatSummary returns a summary line for the result.
func (f *Formatter) formatSummary(res *manifest.Result) string {
	if res.InSync() {
		return printer.Success("Manifest is in sync with the descriptor.")
	}

	if res.DryRun {
		return printer.Warning(fmt.Sprintf("Dry run: %d field(s) would be updated, nothing written.", len(res.Diffs)))
	}

	return printer.Success(fmt.Sprintf("Updated %d field(s). Previous manifest saved to %s.", len(res.Diffs), manifest.BackupFile))
}

// PrintResult prints the formatted result to stdout.
func (f *Formatter) PrintResult(res *manifest.Result) {
	fmt.Print(f.FormatResult(res))
}
