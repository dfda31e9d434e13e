package locate

import (
	"errors"
	"fmt"
	"testing"

	"todo/internal/model"
)

func sampleTasks() []model.Task {
	return []model.Task{
		{Title: "Buy milk", Priority: "high"},
		{Title: "Do laundry"},
		{Title: "buy milk", Priority: "low"}, // duplicate, different case
	}
}

func TestLocateByPosition(t *testing.T) {
	tasks := sampleTasks()

	pos, task, err := Locate(tasks, "1")
	if err != nil {
		t.Fatalf("Locate(1): %v", err)
	}
	if pos != 0 || task.Title != "Buy milk" {
		t.Errorf("Locate(1) = (%d, %q)", pos, task.Title)
	}

	pos, task, err = Locate(tasks, "3")
	if err != nil {
		t.Fatalf("Locate(3): %v", err)
	}
	if pos != 2 || task.Title != "buy milk" {
		t.Errorf("Locate(3) = (%d, %q)", pos, task.Title)
	}
}

func TestLocatePositionOutOfRange(t *testing.T) {
	tasks := sampleTasks()
	for _, id := range []string{"0", "-1", fmt.Sprint(len(tasks) + 1), "999"} {
		_, _, err := Locate(tasks, id)
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("Locate(%q) = %v, want *NotFoundError", id, err)
			continue
		}
		if nf.Identifier != id {
			t.Errorf("Locate(%q) error carries identifier %q", id, nf.Identifier)
		}
	}
}

func TestLocateByTitleIsCaseInsensitiveFirstMatch(t *testing.T) {
	tasks := sampleTasks()

	pos, task, err := Locate(tasks, "BUY MILK")
	if err != nil {
		t.Fatalf("Locate by title: %v", err)
	}
	// Two tasks match case-insensitively; scan order wins.
	if pos != 0 || task.Priority != "high" {
		t.Errorf("expected first match at slot 0, got (%d, %+v)", pos, task)
	}
}

func TestLocateUnknownTitle(t *testing.T) {
	_, _, err := Locate(sampleTasks(), "Walk the dog")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want *NotFoundError", err)
	}
	if nf.Identifier != "Walk the dog" {
		t.Errorf("identifier = %q", nf.Identifier)
	}
}

func TestLocateNumericIdentifierNeverMatchesTitles(t *testing.T) {
	tasks := []model.Task{{Title: "42"}}
	// "42" parses as a position, which is out of range; the title "42"
	// must not be consulted.
	_, _, err := Locate(tasks, "42")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want *NotFoundError", err)
	}
}

func TestLocateEmptyList(t *testing.T) {
	if _, _, err := Locate(nil, "1"); err == nil {
		t.Error("Locate on empty list should fail")
	}
}

func TestSearchSubstring(t *testing.T) {
	tasks := []model.Task{
		{Title: "Buy milk"},
		{Title: "Buy bread"},
		{Title: "Do laundry"},
	}
	got := Search(tasks, "buy")
	if len(got) != 2 {
		t.Fatalf("Search(buy) = %d matches, want 2", len(got))
	}
	if got[0].Position != 1 || got[1].Position != 2 {
		t.Errorf("positions = %d, %d", got[0].Position, got[1].Position)
	}
	if got[0].Task.Title != "Buy milk" {
		t.Errorf("scan order broken: %q first", got[0].Task.Title)
	}

	if len(Search(tasks, "zzz")) != 0 {
		t.Error("Search should return nothing for a non-matching query")
	}
}
