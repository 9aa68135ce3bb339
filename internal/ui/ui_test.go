package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nvander/taskdeck/internal/task"
)

func newPlainRenderer() (*Renderer, *bytes.Buffer) {
	var out bytes.Buffer
	return NewRenderer(&out, true), &out
}

func TestTagPerImportance(t *testing.T) {
	r, _ := newPlainRenderer()

	tests := []struct {
		importance task.Importance
		want       string
	}{
		{task.ImportanceHigh, "[HIGH]"},
		{task.ImportanceMedium, "[MEDIUM]"},
		{task.ImportanceLow, "[LOW]"},
	}
	for _, tt := range tests {
		if got := r.Tag(tt.importance); got != tt.want {
			t.Errorf("Tag(%s): got %q, want %q", tt.importance, got, tt.want)
		}
	}
}

func TestListingNumbersFromOne(t *testing.T) {
	r, out := newPlainRenderer()
	r.Listing("Your Tasks (High → Medium → Low):", []task.Task{
		{Description: "pay rent", Importance: task.ImportanceHigh},
		{Description: "water plants", Importance: task.ImportanceLow},
	})

	got := out.String()
	if !strings.Contains(got, "Your Tasks (High → Medium → Low):") {
		t.Errorf("missing header:\n%s", got)
	}
	if !strings.Contains(got, "1. [HIGH] pay rent") {
		t.Errorf("missing first line:\n%s", got)
	}
	if !strings.Contains(got, "2. [LOW] water plants") {
		t.Errorf("missing second line:\n%s", got)
	}
}

func TestEmptyState(t *testing.T) {
	r, out := newPlainRenderer()
	r.Empty()

	if !strings.Contains(out.String(), "Your list is empty") {
		t.Errorf("missing empty-state message: %q", out.String())
	}
}

func TestMenuListsAllActions(t *testing.T) {
	r, out := newPlainRenderer()
	r.Menu()

	got := out.String()
	for _, want := range []string{"[1] Add a task", "[2] View tasks", "[3] Delete a task", "[4] Quit"} {
		if !strings.Contains(got, want) {
			t.Errorf("menu missing %q:\n%s", want, got)
		}
	}
}

func TestPromptfHasNoTrailingNewline(t *testing.T) {
	r, out := newPlainRenderer()
	r.Promptf("Enter a choice (1-4): ")

	if got := out.String(); strings.HasSuffix(got, "\n") {
		t.Errorf("prompt ends with newline: %q", got)
	}
}

func TestIsTTYOnBuffer(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("IsTTY(buffer) = true, want false")
	}
}

func TestTUIModelViewListsTasks(t *testing.T) {
	m := newTUIModel("tasks.txt")
	m.tasks = []task.Task{
		{Description: "pay rent", Importance: task.ImportanceHigh},
		{Description: "water plants", Importance: task.ImportanceLow},
	}
	m.counts = map[task.Importance]int{
		task.ImportanceHigh: 1,
		task.ImportanceLow:  1,
	}

	view := m.View()
	if !strings.Contains(view, "pay rent") || !strings.Contains(view, "water plants") {
		t.Errorf("view missing tasks:\n%s", view)
	}

	m.filter = task.ImportanceHigh
	view = m.View()
	if strings.Contains(view, "water plants") {
		t.Errorf("filtered view still shows LOW task:\n%s", view)
	}
	if !strings.Contains(view, "pay rent") {
		t.Errorf("filtered view dropped HIGH task:\n%s", view)
	}
}

func TestTUIModelRefreshMissingFile(t *testing.T) {
	m := newTUIModel(t.TempDir() + "/does-not-exist.txt")
	m.refresh()

	if m.loadErr != nil {
		t.Fatalf("refresh of missing file failed: %v", m.loadErr)
	}
	if len(m.tasks) != 0 {
		t.Errorf("tasks: got %d, want 0", len(m.tasks))
	}
	if !strings.Contains(m.View(), "No tasks.") {
		t.Errorf("view missing empty marker:\n%s", m.View())
	}
}
