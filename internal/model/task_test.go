package model

import (
	"strings"
	"testing"

	"todo/internal/priority"
)

func TestEffectivePriorityDefaultsToMedium(t *testing.T) {
	legacy := Task{Done: false, Title: "old record"}
	if got := legacy.EffectivePriority(); got != priority.Medium {
		t.Errorf("EffectivePriority() = %q, want medium", got)
	}
	// The stored value must stay empty.
	if legacy.Priority != "" {
		t.Errorf("defaulting must not touch the stored value, got %q", legacy.Priority)
	}

	explicit := Task{Title: "new record", Priority: "high"}
	if got := explicit.EffectivePriority(); got != priority.High {
		t.Errorf("EffectivePriority() = %q, want high", got)
	}
}

func TestValidateTitle(t *testing.T) {
	if err := ValidateTitle("Buy milk"); err != nil {
		t.Errorf("valid title rejected: %v", err)
	}
	if err := ValidateTitle("   "); err == nil {
		t.Error("whitespace-only title accepted")
	}
	if err := ValidateTitle(""); err == nil {
		t.Error("empty title accepted")
	}
	if err := ValidateTitle(strings.Repeat("x", 500)); err != nil {
		t.Errorf("500-char title rejected: %v", err)
	}
	if err := ValidateTitle(strings.Repeat("x", 501)); err == nil {
		t.Error("501-char title accepted")
	}
	// Length counts runes, not bytes.
	if err := ValidateTitle(strings.Repeat("é", 500)); err != nil {
		t.Errorf("500-rune title rejected: %v", err)
	}
}

func TestDisplayName(t *testing.T) {
	if got := (Project{}).DisplayName(); got != UntitledName {
		t.Errorf("DisplayName() = %q, want %q", got, UntitledName)
	}
	if got := (Project{Name: "Fitness"}).DisplayName(); got != "Fitness" {
		t.Errorf("DisplayName() = %q, want Fitness", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := Project{Name: "x", Todos: []Task{{Title: "a"}, {Title: "b"}}}
	c := p.Clone()
	c.Todos[0].Title = "changed"
	c.Todos = append(c.Todos, Task{Title: "c"})
	if p.Todos[0].Title != "a" || len(p.Todos) != 2 {
		t.Error("Clone shares backing storage with the original")
	}
}

func TestSortByPriority(t *testing.T) {
	tasks := []Task{
		{Title: "m", Done: false, Priority: "medium"},
		{Title: "h-done", Done: true, Priority: "high"},
		{Title: "l", Done: false, Priority: "low"},
		{Title: "h", Done: false, Priority: "high"},
	}
	got := SortByPriority(tasks)

	wantOrder := []string{"h", "m", "l", "h-done"}
	for i, w := range wantOrder {
		if got[i].Title != w {
			t.Fatalf("position %d = %q, want %q (full: %+v)", i, got[i].Title, w, got)
		}
	}
	// Input order untouched.
	if tasks[0].Title != "m" {
		t.Error("SortByPriority mutated its input")
	}
}

func TestSortByPriorityIsStable(t *testing.T) {
	tasks := []Task{
		{Title: "first", Priority: "high"},
		{Title: "second", Priority: "high"},
		{Title: "legacy"}, // no priority, ranks as medium
		{Title: "third", Priority: "medium"},
	}
	got := SortByPriority(tasks)
	wantOrder := []string{"first", "second", "legacy", "third"}
	for i, w := range wantOrder {
		if got[i].Title != w {
			t.Fatalf("position %d = %q, want %q", i, got[i].Title, w)
		}
	}
}

func TestStats(t *testing.T) {
	done, pending := Stats([]Task{{Done: true}, {}, {}})
	if done != 1 || pending != 2 {
		t.Errorf("Stats = (%d, %d), want (1, 2)", done, pending)
	}
}
