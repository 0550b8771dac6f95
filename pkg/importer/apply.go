package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cropbase/entities"
	"cropbase/pkg/store"
)

// Result summarizes one applied import.
type Result struct {
	Record        entities.ImportRecord
	FieldsCreated int
	Skipped       int
}

var dateLayouts = []string{"2006-01-02", "1/2/2006", "01/02/2006", "2006/01/02", "2 Jan 2006"}

func normalizeDate(s string) (string, bool) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format("2006-01-02"), true
		}
	}
	return "", false
}

// Apply creates fields and tasks from a parsed sheet and records the
// outcome: an ImportRecord (success when every row landed, partial when
// some were skipped, failed when none did), an audit entry and a
// notification. Fields are matched by name, case-insensitively, and
// created on first sight. today is the caller's current date
// (YYYY-MM-DD); rows due before it come in flagged overdue.
func Apply(st *store.Store, p *Parsed, today string) (*Result, error) {
	now := time.Now().Format("2006-01-02T15:04:05")

	m, err := DetectMapping(p.Headers)
	if err != nil {
		rec := entities.ImportRecord{
			ID:           st.NextID("import"),
			FileName:     p.FileName,
			UploadedTime: now,
			RowsParsed:   len(p.Rows),
			Status:       "failed",
		}
		if err := st.AddImportRecord(rec); err != nil {
			return nil, err
		}
		notifyErr := st.AddNotification(entities.Notification{
			ID:        st.NextID("notif"),
			Message:   fmt.Sprintf("Import failed: %s (%v)", p.FileName, err),
			Timestamp: now,
			Type:      "error",
		})
		return &Result{Record: rec, Skipped: len(p.Rows)}, notifyErr
	}

	// Field names already in the store count as detected too.
	byName := map[string]string{} // normalized name -> field id
	for _, f := range st.Fields() {
		byName[norm(f.Name)] = f.ID
	}

	res := &Result{}
	seen := map[string]bool{}
	for _, row := range p.Rows {
		name := cell(row, m.Field)
		title := cell(row, m.Title)
		due, dueOK := normalizeDate(cell(row, m.Due))
		if name == "" || title == "" || !dueOK {
			res.Skipped++
			continue
		}
		seen[norm(name)] = true

		fid, ok := byName[norm(name)]
		if !ok {
			fid = st.NextID("field")
			f := entities.Field{
				ID:             fid,
				Name:           name,
				Crop:           cell(row, m.Crop),
				Stage:          cell(row, m.Stage),
				IrrigationType: cell(row, m.Irrigation),
			}
			if acres, err := strconv.ParseFloat(cell(row, m.Acres), 64); err == nil {
				f.Acreage = acres
			}
			if err := st.CreateField(f); err != nil {
				return res, err
			}
			byName[norm(name)] = fid
			res.FieldsCreated++
		}

		task := entities.Task{
			ID:          st.NextID("task"),
			Title:       title,
			FieldID:     fid,
			Field:       name,
			Category:    taskCategory(cell(row, m.Category)),
			DueDate:     due,
			Window:      taskWindow(cell(row, m.Window)),
			Status:      "todo",
			Priority:    taskPriority(cell(row, m.Priority)),
			Notes:       cell(row, m.Notes),
			Overdue:     due < today,
			CreatedFrom: "Import: " + p.FileName,
		}
		if err := st.CreateTask(task); err != nil {
			return res, err
		}
	}

	tasksCreated := len(p.Rows) - res.Skipped
	status := "success"
	switch {
	case tasksCreated == 0:
		status = "failed"
	case res.Skipped > 0:
		status = "partial"
	}
	res.Record = entities.ImportRecord{
		ID:             st.NextID("import"),
		FileName:       p.FileName,
		UploadedTime:   now,
		RowsParsed:     len(p.Rows),
		FieldsDetected: len(seen),
		TasksCreated:   tasksCreated,
		Status:         status,
	}
	if err := st.AddImportRecord(res.Record); err != nil {
		return res, err
	}
	if err := st.AddChangeItem(entities.ChangeItem{
		ID:          st.NextID("change"),
		Type:        "imported",
		Description: fmt.Sprintf("Import added %d new tasks from %s", tasksCreated, p.FileName),
		Timestamp:   now,
	}); err != nil {
		return res, err
	}

	msg, typ := fmt.Sprintf("Import completed: %s", p.FileName), "success"
	if status != "success" {
		msg, typ = fmt.Sprintf("Import %s: %s (%d rows skipped)", status, p.FileName, res.Skipped), "warning"
	}
	if err := st.AddNotification(entities.Notification{
		ID:        st.NextID("notif"),
		Message:   msg,
		Timestamp: now,
		Type:      typ,
	}); err != nil {
		return res, err
	}
	return res, nil
}

// SaveTemplate records the sheet's column layout for reuse.
func SaveTemplate(st *store.Store, p *Parsed) (entities.MappingTemplate, error) {
	created := time.Now().Format("2006-01-02")
	t := entities.MappingTemplate{
		ID:       st.NextID("template"),
		Name:     strings.TrimSuffix(p.FileName, sufOf(p.FileName)) + " Template",
		Created:  created,
		LastUsed: created,
		Source:   p.FileName,
		Columns:  append([]string(nil), p.Headers...),
	}
	return t, st.AddMappingTemplate(t)
}

// TouchMatchingTemplate bumps last_used on the first saved template
// whose column layout matches the sheet's headers.
func TouchMatchingTemplate(st *store.Store, p *Parsed, today string) error {
	for _, t := range st.MappingTemplates() {
		if sameColumns(t.Columns, p.Headers) {
			return st.TouchMappingTemplate(t.ID, today)
		}
	}
	return nil
}

func sameColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if norm(a[i]) != norm(b[i]) {
			return false
		}
	}
	return true
}

func sufOf(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}

func taskPriority(s string) string {
	switch strings.ToLower(s) {
	case "low", "medium", "high", "critical":
		return strings.ToLower(s)
	}
	return "medium"
}

func taskCategory(s string) string {
	switch strings.ToLower(s) {
	case "irrigation", "fertilization", "spray", "scout", "harvest", "maintenance", "planting":
		return strings.ToLower(s)
	}
	return "maintenance"
}

func taskWindow(s string) string {
	switch strings.ToLower(s) {
	case "morning", "afternoon", "night":
		return strings.ToLower(s)
	}
	return ""
}
