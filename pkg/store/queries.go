package store

import (
	"fmt"
	"sort"
	"time"

	"cropbase/entities"
)

// State returns a copy of the aggregate with the top-level lists
// cloned, so callers can iterate without holding the store lock.
func (s *Store) State() entities.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateCopy()
}

func (s *Store) stateCopy() entities.AppState {
	out := s.state
	out.Fields = append([]entities.Field(nil), s.state.Fields...)
	out.Tasks = append([]entities.Task(nil), s.state.Tasks...)
	out.Notes = append([]entities.Note(nil), s.state.Notes...)
	out.Imports = append([]entities.ImportRecord(nil), s.state.Imports...)
	out.Changes = append([]entities.ChangeItem(nil), s.state.Changes...)
	out.Notifications = append([]entities.Notification(nil), s.state.Notifications...)
	out.MappingTemplates = append([]entities.MappingTemplate(nil), s.state.MappingTemplates...)
	return out
}

func (s *Store) Fields() []entities.Field {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Field(nil), s.state.Fields...)
}

func (s *Store) Field(id string) (entities.Field, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f := s.findField(id); f != nil {
		return *f, true
	}
	return entities.Field{}, false
}

func (s *Store) Tasks() []entities.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Task(nil), s.state.Tasks...)
}

func (s *Store) Task(id string) (entities.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t := s.findTask(id); t != nil {
		return *t, true
	}
	return entities.Task{}, false
}

func (s *Store) FieldTasks(fieldID string) []entities.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entities.Task
	for _, t := range s.state.Tasks {
		if t.FieldID == fieldID {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) Notes() []entities.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Note(nil), s.state.Notes...)
}

func (s *Store) FieldNotes(fieldID string) []entities.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entities.Note
	for _, n := range s.state.Notes {
		if n.FieldID == fieldID {
			out = append(out, n)
		}
	}
	return out
}

func (s *Store) Imports() []entities.ImportRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.ImportRecord(nil), s.state.Imports...)
}

func (s *Store) Changes() []entities.ChangeItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.ChangeItem(nil), s.state.Changes...)
}

func (s *Store) Notifications() []entities.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Notification(nil), s.state.Notifications...)
}

func (s *Store) MappingTemplates() []entities.MappingTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.MappingTemplate(nil), s.state.MappingTemplates...)
}

func (s *Store) AlertSettings() entities.AlertSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.AlertSettings
}

func (s *Store) FarmSettings() entities.FarmSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.FarmSettings
}

func (s *Store) LastImportTime() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.LastImportTime
}

type FarmStats struct {
	ActiveFields int `json:"active_fields"`
	TasksDue24h  int `json:"tasks_due_24h"`
	OverdueTasks int `json:"overdue_tasks"`
	BlockedTasks int `json:"blocked_tasks"`
}

// FarmStatsFor computes the dashboard headline numbers relative to the
// caller-supplied "today" (YYYY-MM-DD). The store itself has no notion
// of now.
func (s *Store) FarmStatsFor(today string) FarmStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := FarmStats{ActiveFields: len(s.state.Fields)}
	ref, refErr := time.Parse("2006-01-02", today)
	for _, t := range s.state.Tasks {
		if t.Status == "done" {
			continue
		}
		if t.Overdue {
			stats.OverdueTasks++
		}
		if t.Blocked {
			stats.BlockedTasks++
		}
		if refErr != nil {
			continue
		}
		due, err := time.Parse("2006-01-02", t.DueDate)
		if err != nil {
			continue
		}
		if diff := due.Sub(ref); diff >= 0 && diff <= 24*time.Hour {
			stats.TasksDue24h++
		}
	}
	return stats
}

type AttentionItem struct {
	Field  entities.Field `json:"field"`
	Reason string         `json:"reason"`
}

// FieldsNeedingAttention lists the top three non-normal fields by
// overdue count with a human-readable reason.
func (s *Store) FieldsNeedingAttention() []AttentionItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	var flagged []entities.Field
	for _, f := range s.state.Fields {
		if f.Status != "normal" {
			flagged = append(flagged, f)
		}
	}
	sort.SliceStable(flagged, func(i, j int) bool { return flagged[i].OverdueCount > flagged[j].OverdueCount })
	if len(flagged) > 3 {
		flagged = flagged[:3]
	}

	out := make([]AttentionItem, 0, len(flagged))
	for _, f := range flagged {
		overdue, blocked := 0, 0
		for _, t := range s.state.Tasks {
			if t.FieldID != f.ID || t.Status == "done" {
				continue
			}
			if t.Overdue {
				overdue++
			}
			if t.Blocked {
				blocked++
			}
		}
		reason := ""
		if overdue > 0 {
			reason = fmt.Sprintf("%d overdue task%s", overdue, plural(overdue))
		}
		if blocked > 0 {
			if reason != "" {
				reason += ", "
			}
			reason += fmt.Sprintf("%d blocked task%s", blocked, plural(blocked))
		}
		if reason == "" {
			reason = "Status: " + f.Status
		}
		out = append(out, AttentionItem{Field: f, Reason: reason})
	}
	return out
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
