// Package storage reads and writes the flat task file.
//
// The file is UTF-8 text with one task per line:
//
//	IMPORTANCE|description
//
// where IMPORTANCE is HIGH, MEDIUM, or LOW. The description is everything
// after the first pipe and may itself contain pipes. There is no header
// and no escaping; a description cannot contain a newline. Blank and
// malformed lines are skipped on load rather than failing the whole file.
package storage

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/nvander/taskdeck/internal/task"
)

// Load reads the task file at path into a store. A missing file yields
// an empty store; that is not an error. Insertion order follows file
// line order.
func Load(path string) (*task.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return task.NewStore(), nil
		}
		return nil, fmt.Errorf("open task file: %w", err)
	}
	defer f.Close()

	var tasks []task.Task
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if t, ok := parseLine(scanner.Text()); ok {
			tasks = append(tasks, t)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	return task.NewStore(tasks...), nil
}

// parseLine parses a single IMPORTANCE|description line. The second
// return value is false for blank or malformed lines.
func parseLine(line string) (task.Task, bool) {
	line = strings.TrimSuffix(line, "\r")
	if strings.TrimSpace(line) == "" {
		return task.Task{}, false
	}
	parts := strings.SplitN(line, "|", 2)
	if len(parts) != 2 {
		return task.Task{}, false
	}
	importance := task.Importance(strings.ToUpper(strings.TrimSpace(parts[0])))
	description := strings.TrimSpace(parts[1])
	if !importance.Valid() || description == "" {
		return task.Task{}, false
	}
	return task.Task{Description: description, Importance: importance}, true
}

// Save writes every task in the store to path in insertion order,
// replacing the previous contents. The file handle is held only for the
// duration of the call.
func Save(path string, store *task.Store) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create task file: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, t := range store.Tasks() {
		if _, err := fmt.Fprintf(w, "%s|%s\n", t.Importance, t.Description); err != nil {
			f.Close()
			return fmt.Errorf("write task file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush task file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close task file: %w", err)
	}
	return nil
}
