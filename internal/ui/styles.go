// Package ui holds the terminal presentation layer: Lip Gloss styles, the
// status reporter, and small rendering helpers. The core packages never
// touch the terminal directly.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	PendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	AccentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	MutedStyle   = lipgloss.NewStyle().Faint(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	WarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)

	SelectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	DoneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	HelpStyle     = lipgloss.NewStyle().Faint(true)
)

var (
	BoxChecked   = "☑"
	BoxUnchecked = "☐"
)

// SetTheme switches the marker set. "mono" drops all styling and Unicode
// boxes for plain terminals; anything else keeps the classic look.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "mono":
		plain := lipgloss.NewStyle()
		TitleStyle, SuccessStyle, PendingStyle = plain, plain, plain
		AccentStyle, MutedStyle, ErrorStyle, WarnStyle = plain, plain, plain, plain
		SelectedStyle, DoneStyle, HelpStyle = plain, plain, plain
		BoxChecked, BoxUnchecked = "[x]", "[ ]"
	default: // classic
	}
}
