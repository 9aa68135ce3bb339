// Package loop runs the interactive session over a task store.
package loop

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nvander/taskdeck/internal/config"
	"github.com/nvander/taskdeck/internal/storage"
	"github.com/nvander/taskdeck/internal/task"
	"github.com/nvander/taskdeck/internal/ui"
)

const listingHeader = "Your Tasks (High → Medium → Low):"

// Loop drives the interactive session: load, menu dispatch, the add and
// delete prompt flows, and the shutdown save. It owns the task store
// for the lifetime of the session.
type Loop struct {
	cfg    *config.Config
	render *ui.Renderer
	logger *log.Logger
	in     *bufio.Scanner
	store  *task.Store
}

// New creates a session loop reading choices from in and rendering to out.
func New(cfg *config.Config, in io.Reader, out io.Writer, logger *log.Logger) *Loop {
	return &Loop{
		cfg:    cfg,
		render: ui.NewRenderer(out, cfg.NoColor),
		logger: logger,
		in:     bufio.NewScanner(in),
	}
}

// Run executes the session. A load failure at startup is returned to
// the caller and is the only fatal condition; every input problem
// inside the loop recovers with a re-prompt or a status message. A save
// failure at shutdown is logged as a warning, not returned.
func (l *Loop) Run(ctx context.Context) error {
	store, err := storage.Load(l.cfg.TaskFile)
	if err != nil {
		return err
	}
	l.store = store

	l.render.Welcome()
	l.viewTasks()

	for ctx.Err() == nil {
		l.render.Menu()
		choice, ok := l.readLine("\nEnter a choice (1-4): ")
		if !ok {
			// EOF on stdin behaves like Quit.
			break
		}
		switch strings.TrimSpace(choice) {
		case "1":
			l.addTask()
		case "2":
			l.viewTasks()
		case "3":
			l.deleteTask()
		case "4":
			l.shutdown()
			return nil
		default:
			l.render.Errorf("Invalid choice. Please select 1, 2, 3, or 4.")
		}
	}

	l.shutdown()
	return nil
}

// shutdown saves the store and prints the farewell. Mandatory on every
// exit path out of the menu.
func (l *Loop) shutdown() {
	l.save()
	l.render.Infof("Goodbye!")
}

// save persists the store. Failures are warnings: in-memory state is
// intact, only the persistence step failed.
func (l *Loop) save() {
	if err := storage.Save(l.cfg.TaskFile, l.store); err != nil {
		l.logger.Warn("could not save tasks", "file", l.cfg.TaskFile, "err", err)
	}
}

// readLine prompts and reads one line of input. The second return value
// is false on EOF.
func (l *Loop) readLine(prompt string) (string, bool) {
	l.render.Promptf("%s", prompt)
	if !l.in.Scan() {
		return "", false
	}
	return l.in.Text(), true
}

func isCancel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "cancel":
		return true
	}
	return false
}

// addTask runs the add flow: description prompt, importance prompt,
// store mutation, save. Cancel at either prompt aborts with no mutation.
func (l *Loop) addTask() {
	description, ok := l.promptDescription()
	if !ok {
		return
	}
	importance, ok := l.promptImportance()
	if !ok {
		return
	}

	if err := l.store.Add(description, importance); err != nil {
		// Both inputs were validated by the prompts, so this is
		// unexpected; surface it and return to the menu.
		l.render.Errorf("Could not add task: %v", err)
		return
	}
	l.save()
	l.render.Added(task.Task{Description: strings.TrimSpace(description), Importance: importance})
}

// promptDescription reads a non-empty task description, re-prompting
// until one is given. Returns false if the user cancels or input ends.
func (l *Loop) promptDescription() (string, bool) {
	for {
		text, ok := l.readLine("Enter a new task (or C to cancel): ")
		if !ok {
			return "", false
		}
		if isCancel(text) {
			l.render.Infof("Canceled. Returning to the main menu.")
			return "", false
		}
		if strings.TrimSpace(text) != "" {
			return text, true
		}
		l.render.Errorf("Task cannot be empty. Try again or C to cancel.")
	}
}

// promptImportance reads an importance level, re-prompting on
// unrecognized input. Returns false if the user cancels or input ends.
func (l *Loop) promptImportance() (task.Importance, bool) {
	for {
		raw, ok := l.readLine("Select importance — [H]igh / [M]edium / [L]ow / [C]ancel: ")
		if !ok {
			return "", false
		}
		if isCancel(raw) {
			l.render.Infof("Canceled. Returning to the main menu.")
			return "", false
		}
		importance, err := task.ParseImportance(raw)
		if err != nil {
			l.render.Errorf("Invalid choice. Please enter H, M, L, or C.")
			continue
		}
		return importance, true
	}
}

// viewTasks renders the sorted listing, or the empty-state message.
func (l *Loop) viewTasks() {
	if l.store.Len() == 0 {
		l.render.Empty()
		return
	}
	l.render.Listing(listingHeader, l.store.Sorted())
}

// deleteTask runs the delete flow: show the sorted listing, read a
// display number, remove the task, save, show what remains.
func (l *Loop) deleteTask() {
	if l.store.Len() == 0 {
		l.render.Errorf("No tasks to delete.")
		return
	}
	l.render.Listing(listingHeader, l.store.Sorted())

	for {
		raw, ok := l.readLine("\nEnter the task number to delete (or C to cancel): ")
		if !ok {
			return
		}
		if isCancel(raw) {
			l.render.Infof("Canceled. Returning to the main menu.")
			return
		}
		number, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			l.render.Errorf("Please enter a valid number, or C to cancel.")
			continue
		}
		removed, err := l.store.Delete(number)
		if err != nil {
			var notFound *task.NotFoundError
			if errors.As(err, &notFound) {
				l.render.Errorf("That task number doesn't exist. Try again or C to cancel.")
				continue
			}
			l.render.Errorf("Could not delete task: %v", err)
			return
		}
		l.save()
		l.render.Deleted(removed)
		break
	}

	if l.store.Len() > 0 {
		l.render.Listing("Remaining tasks (High → Medium → Low):", l.store.Sorted())
	} else {
		l.render.Infof("Your list is now empty.")
	}
}
