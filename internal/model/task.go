// Package model holds the domain types for a project and its tasks.
package model

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"todo/internal/priority"
)

// UntitledName is used when a project has no name of its own.
const UntitledName = "Untitled"

// MaxTitleLen caps task titles (in runes, after trimming).
const MaxTitleLen = 500

// Task is a single unit of work.
//
// Priority holds the raw stored value and may be empty on records written
// before priorities existed; use EffectivePriority for the defaulted view.
// Field order matters: JSON keys must serialize alphabetically.
type Task struct {
	Done     bool   `json:"done"`
	Priority string `json:"priority,omitempty"`
	Title    string `json:"title"`
}

// New builds an open task with a validated title and priority.
func New(title string, p priority.Priority) Task {
	return Task{Done: false, Priority: string(p), Title: title}
}

// EffectivePriority returns the task's priority, defaulting legacy records
// without one to medium. The stored value is left untouched.
func (t Task) EffectivePriority() priority.Priority {
	if t.Priority == "" {
		return priority.Default
	}
	return priority.Priority(t.Priority)
}

// ValidateTitle rejects empty or oversized titles.
func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > MaxTitleLen {
		return fmt.Errorf("title cannot exceed %d characters", MaxTitleLen)
	}
	return nil
}

// Project is the named, ordered collection of tasks persisted to one file.
// Slice order is the canonical 1-based display order.
type Project struct {
	Name  string `json:"name"`
	Todos []Task `json:"todos"`
}

// DisplayName returns the project name, or a placeholder when unset.
func (p Project) DisplayName() string {
	if p.Name == "" {
		return UntitledName
	}
	return p.Name
}

// Clone returns a copy whose task slice can be mutated independently.
func (p Project) Clone() Project {
	out := Project{Name: p.Name}
	if p.Todos != nil {
		out.Todos = make([]Task, len(p.Todos))
		copy(out.Todos, p.Todos)
	}
	return out
}

// SortByPriority returns a new slice ordered so that open tasks precede done
// ones, and within each bucket high sorts before medium before low.
// The sort is stable; the input is not modified.
func SortByPriority(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Done != out[j].Done {
			return !out[i].Done
		}
		return out[i].EffectivePriority().Rank() < out[j].EffectivePriority().Rank()
	})
	return out
}

// Stats counts done and pending tasks.
func Stats(tasks []Task) (done, pending int) {
	for _, t := range tasks {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
