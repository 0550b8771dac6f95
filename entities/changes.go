package entities

// ChangeItem is an append-only audit entry describing a notable state
// transition. Newest entries come first.
type ChangeItem struct {
	ID          string `json:"id"`
	Type        string `json:"type"` // moved|overdue|blocked|imported|updated
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
	FieldID     string `json:"field_id,omitempty"`
	TaskID      string `json:"task_id,omitempty"`
}

type Notification struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
	Type      string `json:"type"` // info|success|warning|error
}
