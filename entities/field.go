package entities

// Field is a cultivated land unit. Status, OverdueCount, NextTask and
// NextTaskDue are derived from the field's tasks and are recomputed by
// the store after any task mutation; they are never set by callers.
type Field struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Crop           string  `json:"crop"`
	Variety        string  `json:"variety,omitempty"`
	Stage          string  `json:"stage"`
	Acreage        float64 `json:"acreage"`
	IrrigationType string  `json:"irrigation_type"`
	PlantingDate   string  `json:"planting_date"`
	Status         string  `json:"status"` // normal|attention|blocked|overdue|watch
	NextTask       string  `json:"next_task,omitempty"`
	NextTaskDue    string  `json:"next_task_due,omitempty"`
	OverdueCount   int     `json:"overdue_count"`
}
