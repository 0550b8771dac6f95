package store

import "cropbase/entities"

func (s *Store) AddNote(n entities.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Notes = append([]entities.Note{n}, s.state.Notes...)
	return s.persist()
}

func (s *Store) DeleteNote(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.state.Notes[:0]
	found := false
	for _, n := range s.state.Notes {
		if n.ID == id {
			found = true
			continue
		}
		out = append(out, n)
	}
	if !found {
		return ErrNotFound
	}
	s.state.Notes = out
	return s.persist()
}

// AddImportRecord prepends the record and moves the last-import marker
// to its upload time.
func (s *Store) AddImportRecord(rec entities.ImportRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Imports = append([]entities.ImportRecord{rec}, s.state.Imports...)
	s.state.LastImportTime = rec.UploadedTime
	return s.persist()
}

func (s *Store) DeleteImportRecord(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.state.Imports[:0]
	found := false
	for _, rec := range s.state.Imports {
		if rec.ID == id {
			found = true
			continue
		}
		out = append(out, rec)
	}
	if !found {
		return ErrNotFound
	}
	s.state.Imports = out
	return s.persist()
}

func (s *Store) AddChangeItem(ch entities.ChangeItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Changes = append([]entities.ChangeItem{ch}, s.state.Changes...)
	return s.persist()
}

func (s *Store) AddNotification(n entities.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Notifications = append([]entities.Notification{n}, s.state.Notifications...)
	return s.persist()
}

func (s *Store) MarkNotificationRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Notifications {
		if s.state.Notifications[i].ID == id {
			s.state.Notifications[i].Read = true
			return s.persist()
		}
	}
	return ErrNotFound
}

func (s *Store) MarkAllNotificationsRead() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Notifications {
		s.state.Notifications[i].Read = true
	}
	return s.persist()
}

func (s *Store) AddMappingTemplate(t entities.MappingTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.MappingTemplates = append(s.state.MappingTemplates, t)
	return s.persist()
}

func (s *Store) DeleteMappingTemplate(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.state.MappingTemplates[:0]
	found := false
	for _, t := range s.state.MappingTemplates {
		if t.ID == id {
			found = true
			continue
		}
		out = append(out, t)
	}
	if !found {
		return ErrNotFound
	}
	s.state.MappingTemplates = out
	return s.persist()
}

// TouchMappingTemplate records a template reuse.
func (s *Store) TouchMappingTemplate(id, lastUsed string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.MappingTemplates {
		if s.state.MappingTemplates[i].ID == id {
			s.state.MappingTemplates[i].LastUsed = lastUsed
			return s.persist()
		}
	}
	return ErrNotFound
}

// AlertSettingsUpdate is a partial settings patch; nil = leave alone.
type AlertSettingsUpdate struct {
	EmailEnabled       *bool                     `json:"email_enabled"`
	SMSEnabled         *bool                     `json:"sms_enabled"`
	Email              *string                   `json:"email"`
	Phone              *string                   `json:"phone"`
	OverdueEnabled     *bool                     `json:"overdue_enabled"`
	OverdueThreshold   *string                   `json:"overdue_threshold"`
	BlockedEnabled     *bool                     `json:"blocked_enabled"`
	FreshnessEnabled   *bool                     `json:"freshness_enabled"`
	FreshnessThreshold *string                   `json:"freshness_threshold"`
	QuietStart         *string                   `json:"quiet_start"`
	QuietEnd           *string                   `json:"quiet_end"`
	FieldOverrides     *[]entities.FieldOverride `json:"field_overrides"`
}

func (s *Store) UpdateAlertSettings(upd AlertSettingsUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := &s.state.AlertSettings
	applyBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	applyStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyBool(&a.EmailEnabled, upd.EmailEnabled)
	applyBool(&a.SMSEnabled, upd.SMSEnabled)
	applyStr(&a.Email, upd.Email)
	applyStr(&a.Phone, upd.Phone)
	applyBool(&a.OverdueEnabled, upd.OverdueEnabled)
	applyStr(&a.OverdueThreshold, upd.OverdueThreshold)
	applyBool(&a.BlockedEnabled, upd.BlockedEnabled)
	applyBool(&a.FreshnessEnabled, upd.FreshnessEnabled)
	applyStr(&a.FreshnessThreshold, upd.FreshnessThreshold)
	applyStr(&a.QuietStart, upd.QuietStart)
	applyStr(&a.QuietEnd, upd.QuietEnd)
	if upd.FieldOverrides != nil {
		a.FieldOverrides = *upd.FieldOverrides
	}
	return s.persist()
}

func (s *Store) ResetAlertSettings() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.AlertSettings = defaultAlertSettings()
	return s.persist()
}

type FarmSettingsUpdate struct {
	FarmName *string `json:"farm_name"`
	Location *string `json:"location"`
	Timezone *string `json:"timezone"`
	Units    *string `json:"units"`
	Owner    *string `json:"owner"`
	Email    *string `json:"email"`
	Notes    *string `json:"notes"`
}

func (s *Store) UpdateFarmSettings(upd FarmSettingsUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := &s.state.FarmSettings
	apply := func(dst, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&f.FarmName, upd.FarmName)
	apply(&f.Location, upd.Location)
	apply(&f.Timezone, upd.Timezone)
	apply(&f.Units, upd.Units)
	apply(&f.Owner, upd.Owner)
	apply(&f.Email, upd.Email)
	apply(&f.Notes, upd.Notes)
	return s.persist()
}

func (s *Store) ResetFarmSettings() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.FarmSettings = defaultFarmSettings()
	return s.persist()
}

func (s *Store) DismissOnboarding() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.OnboardingDismissed = true
	return s.persist()
}

func (s *Store) SetLastImportTime(ts string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.LastImportTime = ts
	return s.persist()
}
