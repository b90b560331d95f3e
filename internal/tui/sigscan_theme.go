package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Adaptive colors for the sigscan theme. Amber-leaning palette with
// separate light and dark terminal variants.
var (
	scanGoldPrimary       = lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#f59e0b"}
	scanGoldBright        = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"}
	scanGoldAccent        = lipgloss.AdaptiveColor{Light: "#92400e", Dark: "#fcd34d"}
	scanTextStrong        = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#f9fafb"}
	scanTextNormal        = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#e5e7eb"}
	scanTextMuted         = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	scanTextFaint         = lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6b7280"}
	scanBorderFocused     = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#f59e0b"}
	scanBorderNormal      = lipgloss.AdaptiveColor{Light: "#d1d5db", Dark: "#374151"}
	scanButtonBg          = lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#f59e0b"}
	scanButtonBgBlurred   = lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#374151"}
	scanButtonText        = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#111827"}
	scanButtonTextBlurred = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	scanErrorColor        = lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f87171"}
)

// sigscanTheme builds the default huh theme for sigscan prompts.
func sigscanTheme() *huh.Theme {
	t := huh.ThemeBase()

	f := &t.Focused
	f.Base = f.Base.
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(scanBorderFocused)
	f.Title = f.Title.Foreground(scanGoldPrimary).Bold(true)
	f.Description = f.Description.Foreground(scanTextMuted)
	f.ErrorIndicator = f.ErrorIndicator.Foreground(scanErrorColor)
	f.ErrorMessage = f.ErrorMessage.Foreground(scanErrorColor)
	f.SelectSelector = f.SelectSelector.Foreground(scanGoldBright)
	f.Option = f.Option.Foreground(scanTextNormal)
	f.SelectedOption = f.SelectedOption.Foreground(scanGoldAccent)
	f.UnselectedOption = f.UnselectedOption.Foreground(scanTextNormal)
	f.FocusedButton = f.FocusedButton.
		Foreground(scanButtonText).
		Background(scanButtonBg).
		Bold(true).
		Padding(0, 1)
	f.BlurredButton = f.BlurredButton.
		Foreground(scanButtonTextBlurred).
		Background(scanButtonBgBlurred).
		Padding(0, 1)
	f.TextInput.Cursor = f.TextInput.Cursor.Foreground(scanGoldBright)
	f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(scanTextFaint)
	f.TextInput.Prompt = f.TextInput.Prompt.Foreground(scanGoldBright)
	f.TextInput.Text = f.TextInput.Text.Foreground(scanTextStrong)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(scanBorderNormal)
	t.Blurred.Title = t.Blurred.Title.Foreground(scanTextMuted).Bold(false)

	return t
}
