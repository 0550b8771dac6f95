// Package export renders uniform flat records as RFC 4180 CSV: header
// row first, values quoted only when they contain a comma, quote or
// newline. An empty table writes nothing at all.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"cropbase/entities"
)

type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
}

func (t Table) Empty() bool { return len(t.Rows) == 0 }

func Write(w io.Writer, t Table) error {
	if t.Empty() {
		return nil
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func Tasks(ts []entities.Task) Table {
	t := Table{
		Name:    "tasks.csv",
		Headers: []string{"id", "title", "field_id", "field", "category", "due_date", "window", "status", "priority", "notes", "blocked", "block_reason", "overdue", "assignee", "created_from", "moved_reason"},
	}
	for _, task := range ts {
		t.Rows = append(t.Rows, []string{
			task.ID, task.Title, task.FieldID, task.Field, task.Category,
			task.DueDate, task.Window, task.Status, task.Priority, task.Notes,
			strconv.FormatBool(task.Blocked), task.BlockReason,
			strconv.FormatBool(task.Overdue), task.Assignee, task.CreatedFrom, task.MovedReason,
		})
	}
	return t
}

func Fields(fs []entities.Field) Table {
	t := Table{
		Name:    "fields.csv",
		Headers: []string{"id", "name", "crop", "variety", "stage", "acreage", "irrigation_type", "planting_date", "status", "next_task", "next_task_due", "overdue_count"},
	}
	for _, f := range fs {
		t.Rows = append(t.Rows, []string{
			f.ID, f.Name, f.Crop, f.Variety, f.Stage,
			strconv.FormatFloat(f.Acreage, 'f', -1, 64),
			f.IrrigationType, f.PlantingDate, f.Status,
			f.NextTask, f.NextTaskDue, strconv.Itoa(f.OverdueCount),
		})
	}
	return t
}
