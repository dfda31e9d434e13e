package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"todo/internal/locate"
	"todo/internal/model"
	"todo/internal/ops"
	"todo/internal/priority"
	"todo/internal/store/jsonstore"
	"todo/internal/tui"
	"todo/internal/ui"
)

// Exit codes: 0 ok, 1 runtime/IO error, 2 usage or user-input error.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Options tune behavior from root flags.
type Options struct {
	File  string // project file path ("" -> todos.json in cwd)
	Group bool   // list grouped by pending/done
	Sort  bool   // list ordered by (done, priority)
	Yes   bool   // skip confirmation prompts
}

// Run dispatches subcommands and returns an exit code.
func Run(args []string, opt Options, r *ui.Reporter) int {
	if len(args) == 0 {
		PrintHelp(r.Out)
		return exitUsage
	}
	cmd, a := args[0], args[1:]
	st := jsonstore.New(opt.File)

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(r.Out)
		return exitOK

	case "init":
		return doInit(st, strings.Join(a, " "), r)

	case "add":
		if len(a) == 0 {
			r.Error("usage: todo add <title>[, <title>...]")
			return exitUsage
		}
		return doAdd(st, strings.Join(a, " "), r)

	case "prio":
		if len(a) == 0 {
			r.Error("usage: todo prio <number|title> <priority>")
			return exitUsage
		}
		return doPrio(st, strings.Join(a, " "), r)

	case "ls":
		return doList(st, opt, r)

	case "done":
		if len(a) == 0 {
			r.Error("usage: todo done <number|title>")
			return exitUsage
		}
		return doToggle(st, strings.Join(a, " "), r)

	case "rm":
		if len(a) == 0 {
			r.Error("usage: todo rm <number|title>")
			return exitUsage
		}
		return doRemove(st, strings.Join(a, " "), opt.Yes, r)

	case "find":
		if len(a) == 0 {
			r.Error("usage: todo find <text>")
			return exitUsage
		}
		return doFind(st, strings.Join(a, " "), r)

	case "check":
		return doCheck(st, r)

	case "ui":
		return doUI(st, r)
	}

	r.Error("unknown subcommand: " + cmd)
	fmt.Fprintln(r.Err)
	PrintHelp(r.Err)
	return exitUsage
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `todo - a tiny task CLI with priorities

Usage:
  todo <subcommand> [args]

Subcommands:
  init [name...]               Create a fresh project file
  add <title>[, <title>...]    Add tasks; inline --priority=<low|medium|high>
  ls                           List tasks
  done <number|title>          Toggle done for a task
  prio <number|title> <prio>   Change a task's priority
  rm <number|title>            Remove a task (asks first)
  find <text>                  List tasks whose title contains text
  check                        Validate the project file structure
  ui                           Interactive list
  help                         Show this help

Examples:
  todo add "Buy milk --priority=high, Do laundry"
  todo prio "Buy milk" low
  todo done 2
`)
}

// -------------- subcommand impls ----------------

func doInit(st jsonstore.Store, name string, r *ui.Reporter) int {
	if st.Exists() {
		r.Error("project file already exists: " + st.Path)
		return exitUsage
	}
	project := model.Project{Name: strings.TrimSpace(name), Todos: []model.Task{}}
	if err := st.Save(project); err != nil {
		r.Error("save: " + err.Error())
		return exitError
	}
	r.Success(fmt.Sprintf("Project %q created (%s)", project.DisplayName(), st.Path))
	return exitOK
}

func doAdd(st jsonstore.Store, input string, r *ui.Reporter) int {
	project, err := st.Load()
	if errors.Is(err, jsonstore.ErrNotFound) {
		if !r.Confirm("No project found. Create one now?") {
			r.Info("Create one with: todo init")
			return exitError
		}
		project = model.Project{Todos: []model.Task{}}
	} else if err != nil {
		r.Error("load: " + err.Error())
		return exitError
	}

	updated, res, err := ops.Add(project, input)
	if err != nil {
		r.Error(err.Error())
		return exitUsage
	}
	if err := st.Save(updated); err != nil {
		r.Error("save: " + err.Error())
		return exitError
	}
	r.Success(fmt.Sprintf("%d task(s) added successfully!", len(res.Added)))
	return exitOK
}

func doPrio(st jsonstore.Store, input string, r *ui.Reporter) int {
	project, code := loadExisting(st, r)
	if code != exitOK {
		return code
	}

	updated, res, err := ops.ChangePriority(project, input)
	if err != nil {
		r.Error(err.Error())
		return exitUsage
	}
	if err := st.Save(updated); err != nil {
		r.Error("save: " + err.Error())
		return exitError
	}
	r.Success(fmt.Sprintf("Priority changed: %s (%s → %s)",
		res.Task.Title,
		strings.ToUpper(string(res.Old)),
		strings.ToUpper(string(res.New))))
	return exitOK
}

func doList(st jsonstore.Store, opt Options, r *ui.Reporter) int {
	project, code := loadExisting(st, r)
	if code != exitOK {
		return code
	}

	tasks := project.Todos
	if opt.Sort {
		tasks = model.SortByPriority(tasks)
	}

	done, pending := model.Stats(tasks)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.TitleStyle.Render(project.DisplayName()),
		ui.SuccessStyle.Render("✔"), done,
		ui.PendingStyle.Render("•"), pending,
		ui.AccentStyle.Render("Total"), len(tasks),
	)

	lines := []string{header, ui.MutedStyle.Render(ui.ProgressBar(done, done+pending, 28)), ""}
	if opt.Group {
		lines = append(lines, groupLines(tasks)...)
	} else {
		lines = append(lines, flatLines(tasks)...)
	}
	ui.Panel(r.Out, lines)
	return exitOK
}

func doToggle(st jsonstore.Store, identifier string, r *ui.Reporter) int {
	project, code := loadExisting(st, r)
	if code != exitOK {
		return code
	}

	updated, res, err := ops.Toggle(project, identifier)
	if err != nil {
		r.Error(err.Error())
		return exitUsage
	}
	if err := st.Save(updated); err != nil {
		r.Error("save: " + err.Error())
		return exitError
	}
	state := "reopened"
	if res.Task.Done {
		state = "completed"
	}
	r.Success(fmt.Sprintf("%s: %s", state, res.Task.Title))
	return exitOK
}

func doRemove(st jsonstore.Store, identifier string, skipConfirm bool, r *ui.Reporter) int {
	project, code := loadExisting(st, r)
	if code != exitOK {
		return code
	}

	// Resolve before prompting so the prompt can name the task.
	_, task, err := locate.Locate(project.Todos, identifier)
	if err != nil {
		r.Error(err.Error())
		return exitUsage
	}
	if !skipConfirm && !r.Confirm(fmt.Sprintf("Delete %q?", task.Title)) {
		r.Info("cancelled")
		return exitOK
	}

	updated, res, err := ops.Remove(project, identifier)
	if err != nil {
		r.Error(err.Error())
		return exitUsage
	}
	if err := st.Save(updated); err != nil {
		r.Error("save: " + err.Error())
		return exitError
	}
	r.Success("removed: " + res.Task.Title)
	return exitOK
}

func doFind(st jsonstore.Store, query string, r *ui.Reporter) int {
	project, code := loadExisting(st, r)
	if code != exitOK {
		return code
	}

	matches := locate.Search(project.Todos, query)
	if len(matches) == 0 {
		r.Info(fmt.Sprintf("no tasks matching %q", query))
		return exitOK
	}
	for _, m := range matches {
		fmt.Fprintln(r.Out, taskLine(m.Position, m.Task))
	}
	return exitOK
}

func doCheck(st jsonstore.Store, r *ui.Reporter) int {
	b, err := os.ReadFile(st.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.Error("project file not found (" + st.Path + ")")
			r.Info("Create one with: todo init")
			return exitError
		}
		r.Error("read: " + err.Error())
		return exitError
	}

	result := jsonstore.ValidateBytes(b)
	for _, w := range result.Warnings {
		r.Warn(w)
	}
	if !result.Valid {
		for _, e := range result.Errors {
			r.Error(e)
		}
		return exitError
	}
	r.Success(st.Path + " is valid")
	return exitOK
}

func doUI(st jsonstore.Store, r *ui.Reporter) int {
	project, code := loadExisting(st, r)
	if code != exitOK {
		return code
	}
	if err := tui.Run(st, project, r); err != nil {
		r.Error("ui: " + err.Error())
		return exitError
	}
	return exitOK
}

// loadExisting loads the project and reports the standard messages for a
// missing or unreadable file.
func loadExisting(st jsonstore.Store, r *ui.Reporter) (model.Project, int) {
	project, err := st.Load()
	if errors.Is(err, jsonstore.ErrNotFound) {
		r.Error("project file not found (" + st.Path + ")")
		r.Info("Create one with: todo init")
		return model.Project{}, exitError
	}
	if err != nil {
		r.Error("load: " + err.Error())
		return model.Project{}, exitError
	}
	return project, exitOK
}

// -------------- rendering helpers --------------

func taskLine(position int, t model.Task) string {
	idx := fmt.Sprintf("%2d.", position)
	m := priority.MarkerFor(t.EffectivePriority())

	box := ui.BoxUnchecked
	title := t.Title
	if len(title) > 80 {
		title = title[:77] + "..."
	}
	if t.Done {
		box = ui.SuccessStyle.Render(ui.BoxChecked)
		title = ui.DoneStyle.Render(title)
	}
	return fmt.Sprintf("%s %s %s %s",
		ui.MutedStyle.Render(idx),
		m.Style.Render(fmt.Sprintf("%-3s", m.Symbol)),
		box, title)
}

func flatLines(tasks []model.Task) []string {
	if len(tasks) == 0 {
		return []string{ui.MutedStyle.Render("no tasks")}
	}
	out := make([]string, 0, len(tasks))
	for i, t := range tasks {
		out = append(out, taskLine(i+1, t))
	}
	return out
}

func groupLines(tasks []model.Task) []string {
	var pend, done []model.Task
	for _, t := range tasks {
		if t.Done {
			done = append(done, t)
		} else {
			pend = append(pend, t)
		}
	}
	var lines []string
	lines = append(lines, ui.AccentStyle.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, ui.MutedStyle.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.AccentStyle.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, ui.MutedStyle.Render("(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
