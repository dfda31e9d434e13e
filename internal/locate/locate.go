// Package locate resolves user-supplied task identifiers.
package locate

import (
	"fmt"
	"strconv"
	"strings"

	"todo/internal/model"
)

// NotFoundError reports an identifier that resolved to no task.
type NotFoundError struct {
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.Identifier)
}

// Locate resolves identifier to a task and its 0-based slot.
//
// An identifier that parses as an integer is a 1-based position; valid only
// within 1..len(tasks). Anything else falls back to the first exact,
// case-insensitive title match in list order. A numeric identifier never
// falls back to title matching.
func Locate(tasks []model.Task, identifier string) (int, model.Task, error) {
	if n, err := strconv.Atoi(identifier); err == nil {
		if n >= 1 && n <= len(tasks) {
			return n - 1, tasks[n-1], nil
		}
		return 0, model.Task{}, &NotFoundError{Identifier: identifier}
	}

	want := strings.ToLower(identifier)
	for i, t := range tasks {
		if strings.ToLower(t.Title) == want {
			return i, t, nil
		}
	}
	return 0, model.Task{}, &NotFoundError{Identifier: identifier}
}

// Match pairs a task with its 1-based display position.
type Match struct {
	Position int
	Task     model.Task
}

// Search enumerates every task whose title contains query,
// case-insensitively, in list order.
func Search(tasks []model.Task, query string) []Match {
	want := strings.ToLower(query)
	var out []Match
	for i, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), want) {
			out = append(out, Match{Position: i + 1, Task: t})
		}
	}
	return out
}
