package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todo/internal/model"
	"todo/internal/priority"
)

func testModel(t *testing.T, tasks []model.Task) modelTUI {
	t.Helper()
	items := make([]list.Item, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, newItem(task))
	}
	m := modelTUI{list: list.New(items, itemDelegate{}, 40, 10), width: 80, height: 24}
	m.ti = textinput.New()
	return m
}

func itemAt(t *testing.T, m tea.Model, i int) listItem {
	t.Helper()
	fm, ok := m.(modelTUI)
	if !ok {
		t.Fatalf("model type %T", m)
	}
	li, ok := fm.list.Items()[i].(listItem)
	if !ok {
		t.Fatalf("item type %T", fm.list.Items()[i])
	}
	return li
}

func TestEditAppliesInlinePriorityFlag(t *testing.T) {
	m := testModel(t, []model.Task{{Title: "Buy milk", Priority: "low"}})
	m.editing = true
	m.editIndex = 0
	m.ti.SetValue("Buy milk --priority=high")

	next, _ := m.updateInput(tea.KeyMsg{Type: tea.KeyEnter})
	li := itemAt(t, next, 0)
	if li.Text != "Buy milk" || li.Prio != priority.High {
		t.Errorf("item = %+v, want title %q prio %q", li, "Buy milk", priority.High)
	}
	if !next.(modelTUI).changed {
		t.Error("edit not marked as a change")
	}
}

func TestEditWithoutFlagKeepsPriority(t *testing.T) {
	m := testModel(t, []model.Task{{Title: "Buy milk", Priority: "low"}})
	m.editing = true
	m.editIndex = 0
	m.ti.SetValue("Buy oat milk")

	next, _ := m.updateInput(tea.KeyMsg{Type: tea.KeyEnter})
	li := itemAt(t, next, 0)
	if li.Text != "Buy oat milk" || li.Prio != priority.Low {
		t.Errorf("item = %+v, want title %q prio %q", li, "Buy oat milk", priority.Low)
	}
}

func TestLegacyItemKeepsPriorityAbsent(t *testing.T) {
	it := newItem(model.Task{Title: "old"})
	if it.Prio != "" {
		t.Errorf("Prio = %q, want empty", it.Prio)
	}
	if it.effective() != priority.Default {
		t.Errorf("effective = %q", it.effective())
	}
	if got := it.task(); got.Priority != "" {
		t.Errorf("round trip materialized priority: %+v", got)
	}
}

func TestToggleKeepsLegacyPriorityAbsent(t *testing.T) {
	m := testModel(t, []model.Task{{Title: "old"}})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")})
	li := itemAt(t, next, 0)
	if !li.Done {
		t.Error("task not toggled")
	}
	if got := li.task(); got.Priority != "" {
		t.Errorf("toggle materialized priority: %+v", got)
	}
}

func TestPriorityCycleDefaultsLegacyToMedium(t *testing.T) {
	m := testModel(t, []model.Task{{Title: "old"}})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	li := itemAt(t, next, 0)
	if li.Prio != priority.High {
		t.Errorf("Prio = %q, want %q (medium cycles to high)", li.Prio, priority.High)
	}
}
