package entities

type FieldOverride struct {
	FieldID   string `json:"field_id"`
	FieldName string `json:"field_name"`
	Rule      string `json:"rule"`
}

type AlertSettings struct {
	EmailEnabled       bool            `json:"email_enabled"`
	SMSEnabled         bool            `json:"sms_enabled"`
	Email              string          `json:"email"`
	Phone              string          `json:"phone"`
	OverdueEnabled     bool            `json:"overdue_enabled"`
	OverdueThreshold   string          `json:"overdue_threshold"`
	BlockedEnabled     bool            `json:"blocked_enabled"`
	FreshnessEnabled   bool            `json:"freshness_enabled"`
	FreshnessThreshold string          `json:"freshness_threshold"`
	QuietStart         string          `json:"quiet_start"`
	QuietEnd           string          `json:"quiet_end"`
	FieldOverrides     []FieldOverride `json:"field_overrides"`
}

type FarmSettings struct {
	FarmName string `json:"farm_name"`
	Location string `json:"location"`
	Timezone string `json:"timezone"`
	Units    string `json:"units"` // imperial|metric
	Owner    string `json:"owner,omitempty"`
	Email    string `json:"email,omitempty"`
	Notes    string `json:"notes,omitempty"`
}
