package entities

type ImportRecord struct {
	ID             string `json:"id"`
	FileName       string `json:"file_name"`
	UploadedTime   string `json:"uploaded_time"`
	RowsParsed     int    `json:"rows_parsed"`
	FieldsDetected int    `json:"fields_detected"`
	TasksCreated   int    `json:"tasks_created"`
	Status         string `json:"status"` // success|partial|failed
}

// MappingTemplate is a saved column mapping for repeated imports of the
// same spreadsheet layout.
type MappingTemplate struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Created  string   `json:"created"`
	LastUsed string   `json:"last_used"`
	Source   string   `json:"source,omitempty"`
	Columns  []string `json:"columns,omitempty"`
}
