package store

import (
	"fmt"

	"cropbase/entities"
)

// TaskUpdate is a partial task; nil means leave the field alone.
type TaskUpdate struct {
	Title       *string `json:"title"`
	FieldID     *string `json:"field_id"`
	Field       *string `json:"field"`
	Category    *string `json:"category"`
	DueDate     *string `json:"due_date"`
	Window      *string `json:"window"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	Notes       *string `json:"notes"`
	Blocked     *bool   `json:"blocked"`
	BlockReason *string `json:"block_reason"`
	Overdue     *bool   `json:"overdue"`
	Assignee    *string `json:"assignee"`
	MovedReason *string `json:"moved_reason"`
}

func (s *Store) findTask(id string) *entities.Task {
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID == id {
			return &s.state.Tasks[i]
		}
	}
	return nil
}

func (s *Store) CreateTask(t entities.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Tasks = append(s.state.Tasks, t)
	s.recomputeFieldStats()
	return s.persist()
}

func (s *Store) UpdateTask(id string, upd TaskUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.findTask(id)
	if t == nil {
		return ErrNotFound
	}
	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&t.Title, upd.Title)
	applyString(&t.FieldID, upd.FieldID)
	applyString(&t.Field, upd.Field)
	applyString(&t.Category, upd.Category)
	applyString(&t.DueDate, upd.DueDate)
	applyString(&t.Window, upd.Window)
	applyString(&t.Status, upd.Status)
	applyString(&t.Priority, upd.Priority)
	applyString(&t.Notes, upd.Notes)
	applyString(&t.BlockReason, upd.BlockReason)
	applyString(&t.Assignee, upd.Assignee)
	applyString(&t.MovedReason, upd.MovedReason)
	if upd.Blocked != nil {
		t.Blocked = *upd.Blocked
	}
	if upd.Overdue != nil {
		t.Overdue = *upd.Overdue
	}
	s.recomputeFieldStats()
	return s.persist()
}

func (s *Store) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findTask(id) == nil {
		return ErrNotFound
	}
	out := s.state.Tasks[:0]
	for _, t := range s.state.Tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	s.state.Tasks = out
	s.recomputeFieldStats()
	return s.persist()
}

// MarkTaskDone completes a task and clears its overdue/blocked flags.
// Calling it again on the same id is a no-op beyond the audit entry.
func (s *Store) MarkTaskDone(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.findTask(id)
	if t == nil {
		return ErrNotFound
	}
	t.Status = "done"
	t.Overdue = false
	t.Blocked = false
	s.appendChange("updated", fmt.Sprintf("Task %q marked as done", t.Title), "", id)
	s.recomputeFieldStats()
	return s.persist()
}

func (s *Store) SnoozeTask(id, newDate string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.findTask(id)
	if t == nil {
		return ErrNotFound
	}
	t.DueDate = newDate
	t.Overdue = false
	t.MovedReason = "Snoozed"
	s.appendChange("moved", fmt.Sprintf("Task %q snoozed to %s", t.Title, newDate), "", id)
	s.recomputeFieldStats()
	return s.persist()
}

// BulkMarkTasksDone applies MarkTaskDone's field changes to every
// matching task in one pass and appends a single summary audit entry.
// Ids with no matching task are skipped.
func (s *Store) BulkMarkTasksDone(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	for i := range s.state.Tasks {
		t := &s.state.Tasks[i]
		if want[t.ID] {
			t.Status = "done"
			t.Overdue = false
			t.Blocked = false
		}
	}
	s.appendChange("updated", fmt.Sprintf("%d tasks marked as done", len(ids)), "", "")
	s.recomputeFieldStats()
	return s.persist()
}

func (s *Store) BulkDeleteTasks(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	out := s.state.Tasks[:0]
	for _, t := range s.state.Tasks {
		if !drop[t.ID] {
			out = append(out, t)
		}
	}
	s.state.Tasks = out
	s.recomputeFieldStats()
	return s.persist()
}
