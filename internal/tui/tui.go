// Package tui is the interactive Bubble Tea list over a project file.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todo/internal/model"
	"todo/internal/ops"
	"todo/internal/priority"
	"todo/internal/store/jsonstore"
	"todo/internal/ui"
)

// listItem adapts a task to bubbles/list.Item.
// Prio carries the raw stored value and may be empty on legacy records;
// task() writes it back untouched so absent priorities stay absent.
type listItem struct {
	Text string
	Done bool
	Prio priority.Priority
}

func newItem(t model.Task) listItem {
	return listItem{Text: t.Title, Done: t.Done, Prio: priority.Priority(t.Priority)}
}

func (i listItem) Title() string       { return i.Text }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Text }

// effective is the defaulted view used for display and cycling.
func (i listItem) effective() priority.Priority {
	if i.Prio == "" {
		return priority.Default
	}
	return i.Prio
}

func (i listItem) task() model.Task {
	return model.Task{Done: i.Done, Priority: string(i.Prio), Title: i.Text}
}

// Single-line delegate: priority marker, checkbox, title.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	marker := priority.MarkerFor(it.effective())
	box := ui.MutedStyle.Render(ui.BoxUnchecked)
	text := it.Text
	if it.Done {
		box = ui.SuccessStyle.Render(ui.BoxChecked)
		text = ui.DoneStyle.Render(text)
	}

	line := fmt.Sprintf("%s %s %s",
		marker.Style.Render(fmt.Sprintf("%-3s", marker.Symbol)), box, text)
	prefix := "  "
	if index == m.Index() {
		prefix = ui.SelectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

type modelTUI struct {
	list    list.Model
	changed bool
	name    string // project name, written back unchanged
	width   int
	height  int

	// Inline add / edit
	adding    bool
	editing   bool
	editIndex int
	ti        textinput.Model
	inputErr  string

	// Undo support (single-level, in-session only)
	canUndo   bool
	undoIndex int
	undoItem  *listItem
}

// Run starts the interactive list and persists changes on quit.
func Run(st jsonstore.Store, project model.Project, r *ui.Reporter) error {
	items := make([]list.Item, 0, len(project.Todos))
	for _, t := range project.Todos {
		items = append(items, newItem(t))
	}

	l := list.New(items, itemDelegate{}, 0, 0)

	dn, pn := model.Stats(project.Todos)
	l.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		ui.TitleStyle.Render(project.DisplayName()),
		ui.SuccessStyle.Render("✔"), dn,
		ui.PendingStyle.Render("•"), pn,
		ui.AccentStyle.Render("Total"), len(project.Todos),
	)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.TitleStyle
	l.Styles.HelpStyle = ui.HelpStyle
	l.Styles.PaginationStyle = ui.HelpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	prioBind := key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "priority"))
	undoBind := key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo"))
	extra := func() []key.Binding { return []key.Binding{addBind, editBind, prioBind, undoBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	m := modelTUI{list: l, name: project.Name, width: 80, height: 24}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "New task title (--priority=high works here too)..."
	m.ti.CharLimit = model.MaxTitleLen

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	fm, ok := finalModel.(modelTUI)
	if !ok || !fm.changed {
		return nil
	}

	out := model.Project{Name: fm.name, Todos: make([]model.Task, 0, len(fm.list.Items()))}
	for _, it := range fm.list.Items() {
		if li, ok := it.(listItem); ok {
			out.Todos = append(out.Todos, li.task())
		}
	}
	if err := st.Save(out); err != nil {
		return err
	}
	r.Success("saved")
	return nil
}

func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		return m, nil
	}

	if m.adding || m.editing {
		return m.updateInput(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			i := m.list.Index()
			if i >= 0 && i < len(m.list.Items()) {
				if li, ok := m.list.Items()[i].(listItem); ok {
					li.Done = !li.Done
					m.list.SetItem(i, li)
					m.changed = true
				}
			}
			return m, nil
		case "p":
			i := m.list.Index()
			if i >= 0 && i < len(m.list.Items()) {
				if li, ok := m.list.Items()[i].(listItem); ok {
					li.Prio = li.effective().Next()
					m.list.SetItem(i, li)
					m.changed = true
				}
			}
			return m, nil
		case "d":
			i := m.list.Index()
			if i >= 0 && i < len(m.list.Items()) {
				if li, ok := m.list.Items()[i].(listItem); ok {
					tmp := li
					m.undoItem = &tmp
					m.undoIndex = i
					m.canUndo = true
				}
				m.list.RemoveItem(i)
				m.changed = true
			}
			return m, nil
		case "a":
			m.adding = true
			m.inputErr = ""
			m.ti.SetValue("")
			m.ti.Placeholder = "New task title (--priority=high works here too)..."
			m.ti.Focus()
			return m, nil
		case "e":
			i := m.list.Index()
			if i >= 0 && i < len(m.list.Items()) {
				if li, ok := m.list.Items()[i].(listItem); ok {
					m.editing = true
					m.editIndex = i
					m.inputErr = ""
					m.ti.SetValue(li.Text)
					m.ti.CursorEnd()
					m.ti.Placeholder = "Edit task title..."
					m.ti.Focus()
				}
			}
			return m, nil
		case "u":
			if m.canUndo && m.undoItem != nil {
				idx := m.undoIndex
				if idx < 0 {
					idx = 0
				}
				if idx > len(m.list.Items()) {
					idx = len(m.list.Items())
				}
				m.list.InsertItem(idx, *m.undoItem)
				m.changed = true
				m.canUndo = false
				m.undoItem = nil
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateInput handles key events while the inline add/edit bar is open.
func (m modelTUI) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			raw := m.ti.Value()
			title, prio, err := ops.ExtractPriorityFlag(raw)
			if err != nil {
				m.inputErr = err.Error()
				return m, nil
			}
			if err := model.ValidateTitle(title); err != nil {
				m.inputErr = err.Error()
				return m, nil
			}
			if m.adding {
				m.list.InsertItem(m.list.Index()+1, listItem{Text: title, Done: false, Prio: prio})
			} else if m.editIndex >= 0 && m.editIndex < len(m.list.Items()) {
				if li, ok := m.list.Items()[m.editIndex].(listItem); ok {
					li.Text = title
					// Without an inline flag the edit leaves the priority alone.
					if ops.HasPriorityFlag(raw) {
						li.Prio = prio
					}
					m.list.SetItem(m.editIndex, li)
				}
			}
			m.changed = true
			m.closeInput()
			return m, nil
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *modelTUI) closeInput() {
	m.adding = false
	m.editing = false
	m.inputErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m modelTUI) View() string {
	listHeight := m.height - 4
	if m.adding || m.editing {
		listHeight = m.height - 6
	}
	m.list.SetSize(m.width-2, listHeight)

	content := m.list.View()
	if m.adding || m.editing {
		title := "Add task"
		if m.editing {
			title = "Edit task"
		}
		if m.inputErr != "" {
			title += ": " + ui.ErrorStyle.Render(m.inputErr)
		}
		bar := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	return panelString(content)
}

func panelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}
