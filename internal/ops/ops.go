// Package ops implements the mutating operations as pure functions of
// (current project, input string). Persistence stays with the caller, so
// nothing is written before an operation fully validates.
package ops

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"todo/internal/locate"
	"todo/internal/model"
	"todo/internal/priority"
)

// InputError reports empty or malformed command input.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }

// priorityFlagRe matches an inline --priority=value token anywhere in a
// task description, case-insensitively.
var priorityFlagRe = regexp.MustCompile(`(?i)--priority=(\w+)`)

// HasPriorityFlag reports whether input carries an inline --priority token.
func HasPriorityFlag(input string) bool {
	return priorityFlagRe.MatchString(input)
}

// ExtractPriorityFlag pulls an inline priority override out of a task
// description. The value comes from the first occurrence; every occurrence
// is stripped from the returned title. Without a flag the default applies.
func ExtractPriorityFlag(input string) (title string, p priority.Priority, err error) {
	m := priorityFlagRe.FindStringSubmatch(input)
	if m == nil {
		return strings.TrimSpace(input), priority.Default, nil
	}
	p, err = priority.Parse(m[1])
	if err != nil {
		return "", "", err
	}
	title = strings.TrimSpace(priorityFlagRe.ReplaceAllString(input, ""))
	return title, p, nil
}

// AddResult reports what an append operation created.
type AddResult struct {
	Added []model.Task
}

// Add parses a comma-separated list of task descriptions and appends the
// resulting tasks, in input order, to a copy of the project.
func Add(p model.Project, input string) (model.Project, AddResult, error) {
	var pieces []string
	for _, piece := range strings.Split(input, ",") {
		if piece = strings.TrimSpace(piece); piece != "" {
			pieces = append(pieces, piece)
		}
	}
	if len(pieces) == 0 {
		return model.Project{}, AddResult{}, &InputError{Msg: "no tasks found in input"}
	}

	tasks := make([]model.Task, 0, len(pieces))
	for _, piece := range pieces {
		title, prio, err := ExtractPriorityFlag(piece)
		if err != nil {
			return model.Project{}, AddResult{}, err
		}
		if err := model.ValidateTitle(title); err != nil {
			return model.Project{}, AddResult{}, &InputError{Msg: err.Error()}
		}
		tasks = append(tasks, model.New(title, prio))
	}

	out := p.Clone()
	out.Todos = append(out.Todos, tasks...)
	log.Debug("appended tasks", "count", len(tasks))
	return out, AddResult{Added: tasks}, nil
}

// PrioResult reports a priority change.
type PrioResult struct {
	Position int // 0-based slot in the task list
	Task     model.Task
	Old, New priority.Priority
}

// ChangePriority parses "<identifier> <priority>" (the priority is always
// the final whitespace-separated token), locates the task, and writes a
// copy with only the priority replaced back into the same position.
func ChangePriority(p model.Project, input string) (model.Project, PrioResult, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return model.Project{}, PrioResult{}, &InputError{Msg: "provide a task identifier and a priority"}
	}
	cut := strings.LastIndexFunc(trimmed, unicode.IsSpace)
	if cut < 0 {
		return model.Project{}, PrioResult{}, &InputError{Msg: "provide both a task identifier and a priority"}
	}
	// The separator may be a multi-byte space; skip the whole rune.
	_, sepLen := utf8.DecodeRuneInString(trimmed[cut:])
	identifier := strings.TrimSpace(trimmed[:cut])
	rawPrio := strings.TrimSpace(trimmed[cut+sepLen:])

	pos, task, err := locate.Locate(p.Todos, identifier)
	if err != nil {
		return model.Project{}, PrioResult{}, err
	}
	newPrio, err := priority.Parse(rawPrio)
	if err != nil {
		return model.Project{}, PrioResult{}, err
	}

	updated := task
	updated.Priority = string(newPrio)

	out := p.Clone()
	out.Todos[pos] = updated
	log.Debug("changed priority", "position", pos+1, "old", task.EffectivePriority(), "new", newPrio)
	return out, PrioResult{Position: pos, Task: updated, Old: task.EffectivePriority(), New: newPrio}, nil
}

// ToggleResult reports a completion flip.
type ToggleResult struct {
	Position int
	Task     model.Task
}

// Toggle flips the done flag of the task identifier resolves to.
func Toggle(p model.Project, identifier string) (model.Project, ToggleResult, error) {
	pos, task, err := locate.Locate(p.Todos, identifier)
	if err != nil {
		return model.Project{}, ToggleResult{}, err
	}
	updated := task
	updated.Done = !task.Done

	out := p.Clone()
	out.Todos[pos] = updated
	return out, ToggleResult{Position: pos, Task: updated}, nil
}

// RemoveResult reports a deletion.
type RemoveResult struct {
	Position int
	Task     model.Task
}

// Remove deletes the task identifier resolves to, preserving the order of
// the remainder.
func Remove(p model.Project, identifier string) (model.Project, RemoveResult, error) {
	pos, task, err := locate.Locate(p.Todos, identifier)
	if err != nil {
		return model.Project{}, RemoveResult{}, err
	}
	out := p.Clone()
	out.Todos = append(out.Todos[:pos], out.Todos[pos+1:]...)
	return out, RemoveResult{Position: pos, Task: task}, nil
}
