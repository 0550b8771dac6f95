package store

import "cropbase/entities"

// FieldUpdate is a partial field; nil means leave alone. Only the
// descriptive fields are settable here: status, overdue count and the
// next-task columns are derived and recomputed right after the merge,
// so the derived values always win.
type FieldUpdate struct {
	Name           *string  `json:"name"`
	Crop           *string  `json:"crop"`
	Variety        *string  `json:"variety"`
	Stage          *string  `json:"stage"`
	Acreage        *float64 `json:"acreage"`
	IrrigationType *string  `json:"irrigation_type"`
	PlantingDate   *string  `json:"planting_date"`
	Status         *string  `json:"status"`
}

func (s *Store) findField(id string) *entities.Field {
	for i := range s.state.Fields {
		if s.state.Fields[i].ID == id {
			return &s.state.Fields[i]
		}
	}
	return nil
}

func (s *Store) CreateField(f entities.Field) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Fields = append(s.state.Fields, f)
	s.recomputeFieldStats()
	return s.persist()
}

func (s *Store) UpdateField(id string, upd FieldUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.findField(id)
	if f == nil {
		return ErrNotFound
	}
	apply := func(dst, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&f.Name, upd.Name)
	apply(&f.Crop, upd.Crop)
	apply(&f.Variety, upd.Variety)
	apply(&f.Stage, upd.Stage)
	apply(&f.IrrigationType, upd.IrrigationType)
	apply(&f.PlantingDate, upd.PlantingDate)
	apply(&f.Status, upd.Status)
	if upd.Acreage != nil {
		f.Acreage = *upd.Acreage
	}
	s.recomputeFieldStats()
	return s.persist()
}

// DeleteField removes the field only. Its tasks stay behind, orphaned;
// they remain reachable by id and are simply skipped by recompute.
func (s *Store) DeleteField(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findField(id) == nil {
		return ErrNotFound
	}
	out := s.state.Fields[:0]
	for _, f := range s.state.Fields {
		if f.ID != id {
			out = append(out, f)
		}
	}
	s.state.Fields = out
	return s.persist()
}

// recomputeFieldStats rebuilds every field's derived columns from the
// task set. Status precedence: overdue > blocked > attention (any
// non-done high/critical task) > watch (sticky) > normal. The field's
// next task is its earliest-due non-done task; due dates are ISO
// strings so string order is date order.
func (s *Store) recomputeFieldStats() {
	for i := range s.state.Fields {
		f := &s.state.Fields[i]
		overdue, blocked, urgent := 0, 0, 0
		var next *entities.Task
		for j := range s.state.Tasks {
			t := &s.state.Tasks[j]
			if t.FieldID != f.ID || t.Status == "done" {
				continue
			}
			if t.Overdue {
				overdue++
			}
			if t.Blocked {
				blocked++
			}
			if t.Priority == "high" || t.Priority == "critical" {
				urgent++
			}
			if next == nil || t.DueDate < next.DueDate {
				next = t
			}
		}

		status := "normal"
		switch {
		case overdue > 0:
			status = "overdue"
		case blocked > 0:
			status = "blocked"
		case urgent > 0:
			status = "attention"
		}
		if f.Status == "watch" && status == "normal" {
			status = "watch"
		}
		f.Status = status
		f.OverdueCount = overdue
		if next != nil {
			f.NextTask, f.NextTaskDue = next.Title, next.DueDate
		} else {
			f.NextTask, f.NextTaskDue = "", ""
		}
	}
}
