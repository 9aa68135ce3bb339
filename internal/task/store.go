package task

import (
	"fmt"
	"sort"
	"strings"
)

// Store is the ordered in-memory task collection for a session.
// Iteration order is insertion order; the display order used for
// delete-by-number is HIGH → MEDIUM → LOW, stable within each level.
type Store struct {
	tasks []Task
}

// NewStore creates a store seeded with the given tasks in order.
func NewStore(tasks ...Task) *Store {
	s := &Store{}
	s.tasks = append(s.tasks, tasks...)
	return s
}

// Len returns the number of tasks in the store.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Add validates and appends a new task.
func (s *Store) Add(description string, importance Importance) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return &ValidationError{
			Field: "description",
			Err:   fmt.Errorf("must not be empty"),
		}
	}
	if !importance.Valid() {
		return &ValidationError{
			Field: "importance",
			Err:   fmt.Errorf("invalid importance %q, must be one of: HIGH, MEDIUM, LOW", importance),
		}
	}
	s.tasks = append(s.tasks, Task{Description: description, Importance: importance})
	return nil
}

// Tasks returns a snapshot of the tasks in insertion order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Sorted returns a snapshot ordered HIGH → MEDIUM → LOW, keeping
// insertion order within each importance level.
func (s *Store) Sorted() []Task {
	idxs := s.sortedIndices()
	out := make([]Task, len(idxs))
	for i, idx := range idxs {
		out[i] = s.tasks[idx]
	}
	return out
}

// Delete removes the task at the given 1-based position in the Sorted
// listing and returns it. The relative order of the remaining tasks is
// unchanged.
func (s *Store) Delete(displayIndex int) (Task, error) {
	idxs := s.sortedIndices()
	if displayIndex < 1 || displayIndex > len(idxs) {
		return Task{}, &NotFoundError{Index: displayIndex, Count: len(idxs)}
	}
	real := idxs[displayIndex-1]
	removed := s.tasks[real]
	s.tasks = append(s.tasks[:real], s.tasks[real+1:]...)
	return removed, nil
}

// sortedIndices returns indices into s.tasks in display order.
func (s *Store) sortedIndices() []int {
	idxs := make([]int, len(s.tasks))
	for i := range idxs {
		idxs[i] = i
	}
	sort.SliceStable(idxs, func(a, b int) bool {
		return s.tasks[idxs[a]].Importance.Rank() < s.tasks[idxs[b]].Importance.Rank()
	})
	return idxs
}
