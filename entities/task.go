package entities

// Task is a unit of farm work tied to a Field. Field holds a
// denormalized copy of the field name for list views and exports.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	FieldID     string `json:"field_id"`
	Field       string `json:"field"`
	Category    string `json:"category"` // irrigation|fertilization|spray|scout|harvest|maintenance|planting
	DueDate     string `json:"due_date"`
	Window      string `json:"window,omitempty"` // morning|afternoon|night
	Status      string `json:"status"`           // todo|inprogress|done
	Priority    string `json:"priority"`         // low|medium|high|critical
	Notes       string `json:"notes,omitempty"`
	Blocked     bool   `json:"blocked,omitempty"`
	BlockReason string `json:"block_reason,omitempty"`
	Overdue     bool   `json:"overdue,omitempty"`
	Assignee    string `json:"assignee,omitempty"`
	CreatedFrom string `json:"created_from,omitempty"`
	MovedReason string `json:"moved_reason,omitempty"`
}

type Note struct {
	ID        string   `json:"id"`
	FieldID   string   `json:"field_id"`
	Content   string   `json:"content"`
	Timestamp string   `json:"timestamp"`
	Tags      []string `json:"tags,omitempty"`
	Author    string   `json:"author,omitempty"`
}
