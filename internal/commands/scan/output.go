package scan

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/falcion/sigscan/internal/printer"
	"github.com/falcion/sigscan/internal/scanner"
)

// timeRounding keeps summary durations readable.
const timeRounding = time.Millisecond

// Formatter handles display of scan reports.
type Formatter struct {
	format OutputFormat
}

// NewFormatter creates a new Formatter with the specified output format.
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{format: format}
}

// FormatReport formats the scan report for display.
func (f *Formatter) FormatReport(report *scanner.Report) string {
	switch f.format {
	case FormatJSON:
		return f.formatJSON(report)
	case FormatTable:
		return f.formatTable(report)
	default:
		return f.formatText(report)
	}
}

// formatText formats the report as human-readable text.
func (f *Formatter) formatText(report *scanner.Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString("\n")
	sb.WriteString(printer.Info("Scan Results"))
	sb.WriteString("\n")
	sb.WriteString(printer.Faint(strings.Repeat("-", 70)))
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "Root: %s\n", printer.Bold(report.Root))
	fmt.Fprintf(&sb, "Tokens: %s\n", strings.Join(report.Tokens, ", "))
	sb.WriteString("\n")

	// Matches section
	if report.HasMatches() {
		sb.WriteString(printer.Info("Matches:"))
		sb.WriteString("\n")
		for _, m := range report.Matches {
			location := printer.Faint(fmt.Sprintf("%s:%d:", m.Path, m.Line))
			fmt.Fprintf(&sb, "  %s %s\n", location, printer.Highlight(m.Token))
		}
		sb.WriteString("\n")
	}

	// Summary
	sb.WriteString(printer.Faint(strings.Repeat("-", 70)))
	sb.WriteString("\n")
	sb.WriteString(f.formatSummary(report))
	sb.WriteString("\n")

	return sb.String()
}

// formatTable formats the report as a bordered table.
func (f *Formatter) formatTable(report *scanner.Report) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(printer.Info("Scan Results"))
	sb.WriteString("\n\n")

	if report.HasMatches() {
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
			Headers("PATH", "LINE", "TOKEN")

		for _, m := range report.Matches {
			t.Row(m.Path, strconv.Itoa(m.Line), m.Token)
		}

		sb.WriteString(t.String())
		sb.WriteString("\n\n")
	}

	sb.WriteString(f.formatSummary(report))
	sb.WriteString("\n")

	return sb.String()
}

// formatJSON formats the report as JSON.
func (f *Formatter) formatJSON(report *scanner.Report) string {
	type jsonDiagnostic struct {
		Severity string `json:"severity"`
		Code     string `json:"code"`
		Message  string `json:"message"`
		Path     string `json:"path,omitempty"`
	}

	output := struct {
		Root        string           `json:"root"`
		Tokens      []string         `json:"tokens"`
		Matches     []scanner.Match  `json:"matches"`
		Diagnostics []jsonDiagnostic `json:"diagnostics"`
		Summary     struct {
			MatchCount      int   `json:"match_count"`
			DiagnosticCount int   `json:"diagnostic_count"`
			FilesScanned    int   `json:"files_scanned"`
			DirsVisited     int   `json:"dirs_visited"`
			DurationMs      int64 `json:"duration_ms"`
		} `json:"summary"`
	}{
		Root:        report.Root,
		Tokens:      report.Tokens,
		Matches:     report.Matches,
		Diagnostics: make([]jsonDiagnostic, len(report.Diagnostics)),
	}

	if output.Matches == nil {
		output.Matches = []scanner.Match{}
	}

	for i, d := range report.Diagnostics {
		output.Diagnostics[i] = jsonDiagnostic{
			Severity: string(d.Severity),
			Code:     d.Code,
			Message:  d.Message,
			Path:     d.Path,
		}
	}

	output.Summary.MatchCount = len(report.Matches)
	output.Summary.DiagnosticCount = len(report.Diagnostics)
	output.Summary.FilesScanned = report.FilesScanned
	output.Summary.DirsVisited = report.DirsVisited
	output.Summary.DurationMs = report.Duration.Milliseconds()

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting JSON: %v\n", err)
		return ""
	}

	return string(data)
}

// formatSummary returns a summary line for the report.
func (f *Formatter) formatSummary(report *scanner.Report) string {
	parts := []string{
		fmt.Sprintf("%d match(es)", len(report.Matches)),
		fmt.Sprintf("%d file(s)", report.FilesScanned),
		fmt.Sprintf("%d dir(s)", report.DirsVisited),
	}

	if report.HasDiagnostics() {
		parts = append(parts, printer.Warning(fmt.Sprintf("%d diagnostic(s)", len(report.Diagnostics))))
	}

	summary := "Found: " + strings.Join(parts, ", ")

	if report.Duration > 0 {
		summary += fmt.Sprintf(" | Took: %s", report.Duration.Round(timeRounding))
	}

	return summary
}

// PrintReport prints the formatted report to stdout.
func (f *Formatter) PrintReport(report *scanner.Report) {
	fmt.Print(f.FormatReport(report))
}

// printQuietSummary prints a minimal summary of the scan report.
func printQuietSummary(report *scanner.Report) {
	fmt.Printf("Root: %s | Files: %d | Matches: %d", report.Root, report.FilesScanned, len(report.Matches))

	if report.HasDiagnostics() {
		fmt.Printf(" | Diagnostics: %d", len(report.Diagnostics))
	}

	fmt.Println()
}
