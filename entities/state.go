package entities

// AppState is the full aggregate the store owns and persists as one
// snapshot. Changes and Notifications are kept newest first.
type AppState struct {
	Fields              []Field           `json:"fields"`
	Tasks               []Task            `json:"tasks"`
	Notes               []Note            `json:"notes"`
	Imports             []ImportRecord    `json:"imports"`
	Changes             []ChangeItem      `json:"changes"`
	Notifications       []Notification    `json:"notifications"`
	AlertSettings       AlertSettings     `json:"alert_settings"`
	FarmSettings        FarmSettings      `json:"farm_settings"`
	MappingTemplates    []MappingTemplate `json:"mapping_templates"`
	OnboardingDismissed bool              `json:"onboarding_dismissed"`
	LastImportTime      string            `json:"last_import_time"`
}
