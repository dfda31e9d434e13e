// Package priority defines the task priority levels and how they are
// validated, ordered, and rendered.
package priority

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Priority is one of the fixed levels a task can carry.
type Priority string

const (
	Low    Priority = "low"
	Medium Priority = "medium"
	High   Priority = "high"
)

// Default is used whenever the user does not supply a priority.
const Default = Medium

// Levels lists the accepted values in rank-neutral, user-facing order.
var Levels = []Priority{Low, Medium, High}

// InvalidError reports a value outside the accepted set.
type InvalidError struct {
	Value string
}

func (e *InvalidError) Error() string {
	accepted := make([]string, len(Levels))
	for i, l := range Levels {
		accepted[i] = string(l)
	}
	return fmt.Sprintf("invalid priority: %s. Must be one of: %s",
		e.Value, strings.Join(accepted, ", "))
}

// Parse normalizes raw input to a canonical level, case-insensitively.
func Parse(raw string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(raw))); p {
	case Low, Medium, High:
		return p, nil
	default:
		return "", &InvalidError{Value: raw}
	}
}

// Valid reports whether p is one of the canonical levels.
func (p Priority) Valid() bool {
	switch p {
	case Low, Medium, High:
		return true
	}
	return false
}

// Rank orders priorities for sorting: high first.
// Unknown values rank as medium so legacy data never panics a sort.
func (p Priority) Rank() int {
	switch p {
	case High:
		return 0
	case Low:
		return 2
	default:
		return 1
	}
}

// Next cycles low -> medium -> high -> low. Used by the interactive list.
func (p Priority) Next() Priority {
	switch p {
	case Low:
		return Medium
	case Medium:
		return High
	default:
		return Low
	}
}

// Marker bundles the visual representation of a level.
type Marker struct {
	Style  lipgloss.Style
	Symbol string
	Icon   string
}

var (
	highStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	lowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	markers = map[Priority]Marker{
		High:   {Style: highStyle, Symbol: "!!!", Icon: "🔴"},
		Medium: {Style: mediumStyle, Symbol: "~~", Icon: "🟡"},
		Low:    {Style: lowStyle, Symbol: "--", Icon: "🟢"},
	}

	// fallback for values outside the enum; validated data never hits this.
	fallbackMarker = Marker{Style: lowStyle, Symbol: "--", Icon: "⭕"}
)

// MarkerFor returns the fixed visual marker for a level.
func MarkerFor(p Priority) Marker {
	if m, ok := markers[p]; ok {
		return m
	}
	return fallbackMarker
}
