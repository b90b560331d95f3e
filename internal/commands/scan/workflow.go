package scan

import (
	"github.com/falcion/sigscan/internal/printer"
	"github.com/falcion/sigscan/internal/scanner"
)

// Workflow drives the interactive token prompt that runs before a scan.
type Workflow struct {
	prompter Prompter
}

// NewWorkflow creates a new workflow handler.
func NewWorkflow(prompter Prompter) *Workflow {
	return &Workflow{prompter: prompter}
}

// CollectTokens offers to extend the token set and returns the final
// list. Declining the prompt keeps base untouched.
func (w *Workflow) CollectTokens(base []string) ([]string, error) {
	customize, err := w.prompter.Confirm(
		"Add custom signature tokens?",
		"Extra tokens are matched case-insensitively alongside the configured set.",
	)
	if err != nil {
		return nil, err
	}

	if !customize {
		return base, nil
	}

	raw, err := w.prompter.Input(
		"Custom tokens",
		"Comma-separated list. Values are uppercased and deduplicated.",
		"ALPHA, BETA",
	)
	if err != nil {
		return nil, err
	}

	extras := scanner.ParseTokenList(raw)
	if len(extras) == 0 {
		printer.PrintFaint("No tokens entered. Scanning with the configured set.")
		return base, nil
	}

	return scanner.MergeTokens(base, extras), nil
}
