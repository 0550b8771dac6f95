package store

import "cropbase/entities"

// Built-in demo dataset for Aggie Demo Farm. ResetToDemo and any load
// fallback rebuild the state from these records; snapshot decoding also
// uses them as the defaults new schema keys are backfilled from.

func defaultAlertSettings() entities.AlertSettings {
	return entities.AlertSettings{
		EmailEnabled:       true,
		SMSEnabled:         false,
		Email:              "manager@aggiedemo.farm",
		Phone:              "",
		OverdueEnabled:     true,
		OverdueThreshold:   "1",
		BlockedEnabled:     true,
		FreshnessEnabled:   true,
		FreshnessThreshold: "3",
		QuietStart:         "22:00",
		QuietEnd:           "07:00",
		FieldOverrides: []entities.FieldOverride{
			{FieldID: "field-d", FieldName: "Field D - Alfalfa", Rule: "Alert on any task overdue"},
			{FieldID: "field-e", FieldName: "Field E - Orchards", Rule: "Alert on weather blocks only"},
		},
	}
}

func defaultFarmSettings() entities.FarmSettings {
	return entities.FarmSettings{
		FarmName: "Aggie Demo Farm",
		Location: "Central Valley, CA",
		Timezone: "America/Los_Angeles",
		Units:    "imperial",
	}
}

func demoFields() []entities.Field {
	return []entities.Field{
		{ID: "field-a", Name: "Field A", Crop: "Rice", Variety: "CalRose", Stage: "Heading", Acreage: 45, IrrigationType: "Flood irrigation", PlantingDate: "2026-01-15", Status: "attention", NextTask: "Check flood levels", NextTaskDue: "2026-02-14", OverdueCount: 2},
		{ID: "field-b", Name: "Field B", Crop: "Corn", Variety: "Sweet Gold", Stage: "Tasseling", Acreage: 32, IrrigationType: "Drip irrigation", PlantingDate: "2026-01-10", Status: "blocked", NextTask: "Apply nitrogen", NextTaskDue: "2026-02-15", OverdueCount: 0},
		{ID: "field-c", Name: "Field C", Crop: "Tomatoes", Variety: "Roma", Stage: "Vegetative", Acreage: 18, IrrigationType: "Overhead irrigation", PlantingDate: "2026-01-20", Status: "normal", NextTask: "Scout for pests", NextTaskDue: "2026-02-16", OverdueCount: 0},
		{ID: "field-d", Name: "Field D", Crop: "Alfalfa", Stage: "Regrowth", Acreage: 60, IrrigationType: "Pivot", PlantingDate: "2025-11-05", Status: "overdue", NextTask: "Cut hay", NextTaskDue: "2026-02-12", OverdueCount: 3},
		{ID: "field-e", Name: "Field E", Crop: "Orchards", Variety: "Almonds", Stage: "Fruit set", Acreage: 25, IrrigationType: "Micro-sprinkler", PlantingDate: "2023-03-20", Status: "watch", NextTask: "Inspect bloom", NextTaskDue: "2026-02-14", OverdueCount: 1},
		{ID: "field-f", Name: "Field F", Crop: "Wheat", Variety: "Hard Red", Stage: "Tillering", Acreage: 55, IrrigationType: "Drip irrigation", PlantingDate: "2025-12-01", Status: "normal", NextTask: "Monitor soil moisture", NextTaskDue: "2026-02-17", OverdueCount: 0},
	}
}

func demoTasks() []entities.Task {
	return []entities.Task{
		// Today morning
		{ID: "task-1", Title: "Check flood levels", FieldID: "field-a", Field: "Field A", Category: "irrigation", DueDate: "2026-02-14", Window: "morning", Status: "todo", Priority: "high", Notes: "Water level should be 3-4 inches above soil"},
		{ID: "task-2", Title: "Scout for aphids", FieldID: "field-c", Field: "Field C", Category: "scout", DueDate: "2026-02-14", Window: "morning", Status: "todo", Priority: "medium", Notes: "Focus on lower leaves"},
		{ID: "task-3", Title: "Inspect bloom health", FieldID: "field-e", Field: "Field E", Category: "scout", DueDate: "2026-02-14", Window: "morning", Status: "inprogress", Priority: "medium", Notes: "Check for frost damage"},
		// Today afternoon
		{ID: "task-4", Title: "Apply nitrogen fertilizer", FieldID: "field-b", Field: "Field B", Category: "fertilization", DueDate: "2026-02-14", Window: "afternoon", Status: "todo", Priority: "high", Blocked: true, BlockReason: "Wind speed too high", Notes: "Wait for wind to drop below 10mph"},
		{ID: "task-5", Title: "Adjust drip emitters", FieldID: "field-f", Field: "Field F", Category: "irrigation", DueDate: "2026-02-14", Window: "afternoon", Status: "todo", Priority: "medium", Notes: "Zone 3 needs adjustment"},
		{ID: "task-6", Title: "Check pivot rotation", FieldID: "field-d", Field: "Field D", Category: "maintenance", DueDate: "2026-02-14", Window: "afternoon", Status: "todo", Priority: "low", Notes: "Run full cycle test"},
		// Today night
		{ID: "task-7", Title: "Run irrigation cycle", FieldID: "field-c", Field: "Field C", Category: "irrigation", DueDate: "2026-02-14", Window: "night", Status: "todo", Priority: "high", Notes: "4 hour cycle starting 10pm"},
		// Overdue
		{ID: "task-8", Title: "Cut hay - first pass", FieldID: "field-d", Field: "Field D", Category: "harvest", DueDate: "2026-02-12", Status: "todo", Priority: "critical", Overdue: true, Notes: "Weather delayed from Tuesday", MovedReason: "Moved due to rain"},
		{ID: "task-9", Title: "Refill flood basin", FieldID: "field-a", Field: "Field A", Category: "irrigation", DueDate: "2026-02-13", Status: "todo", Priority: "high", Overdue: true, Notes: "Water order confirmed"},
		{ID: "task-10", Title: "Prune damaged branches", FieldID: "field-e", Field: "Field E", Category: "maintenance", DueDate: "2026-02-13", Status: "inprogress", Priority: "medium", Overdue: true, Notes: "North section priority"},
		// Tomorrow
		{ID: "task-11", Title: "Scout for corn borers", FieldID: "field-b", Field: "Field B", Category: "scout", DueDate: "2026-02-15", Window: "morning", Status: "todo", Priority: "medium", Notes: "Sample 20 plants", CreatedFrom: "Import: weekly-plan.xlsx"},
		{ID: "task-12", Title: "Monitor soil moisture", FieldID: "field-f", Field: "Field F", Category: "scout", DueDate: "2026-02-15", Window: "morning", Status: "todo", Priority: "low", Notes: "Check probe readings"},
		{ID: "task-13", Title: "Spray fungicide", FieldID: "field-c", Field: "Field C", Category: "spray", DueDate: "2026-02-15", Window: "afternoon", Status: "todo", Priority: "high", Notes: "Apply before rain forecast", CreatedFrom: "Import: weekly-plan.xlsx"},
		// This week
		{ID: "task-14", Title: "Test soil pH levels", FieldID: "field-a", Field: "Field A", Category: "scout", DueDate: "2026-02-16", Status: "todo", Priority: "low", Notes: "Send samples to lab"},
		{ID: "task-15", Title: "Replace broken sprinkler heads", FieldID: "field-e", Field: "Field E", Category: "maintenance", DueDate: "2026-02-16", Status: "todo", Priority: "medium", Notes: "Order parts first"},
		{ID: "task-16", Title: "Clean filters", FieldID: "field-f", Field: "Field F", Category: "maintenance", DueDate: "2026-02-17", Status: "todo", Priority: "low", Notes: "Monthly maintenance"},
		{ID: "task-17", Title: "Scout for weeds", FieldID: "field-b", Field: "Field B", Category: "scout", DueDate: "2026-02-17", Status: "todo", Priority: "medium", Notes: "Early detection critical"},
		{ID: "task-18", Title: "Harvest tomatoes - test batch", FieldID: "field-c", Field: "Field C", Category: "harvest", DueDate: "2026-02-18", Status: "todo", Priority: "high", Notes: "Sample 100 lbs for market test"},
		{ID: "task-19", Title: "Service pivot motor", FieldID: "field-d", Field: "Field D", Category: "maintenance", DueDate: "2026-02-18", Status: "todo", Priority: "medium", Notes: "Annual service due"},
		{ID: "task-20", Title: "Apply compost", FieldID: "field-e", Field: "Field E", Category: "fertilization", DueDate: "2026-02-19", Status: "todo", Priority: "low", Notes: "2 tons total"},
		// Later
		{ID: "task-21", Title: "Update irrigation schedule", FieldID: "field-a", Field: "Field A", Category: "irrigation", DueDate: "2026-02-20", Status: "todo", Priority: "low", Notes: "Adjust for warmer temps"},
		{ID: "task-22", Title: "Soil amendment application", FieldID: "field-c", Field: "Field C", Category: "fertilization", DueDate: "2026-02-21", Status: "todo", Priority: "medium", Notes: "Calcium boost needed"},
		{ID: "task-23", Title: "Pollination check", FieldID: "field-e", Field: "Field E", Category: "scout", DueDate: "2026-02-22", Status: "todo", Priority: "high", Notes: "Count bee activity"},
		{ID: "task-24", Title: "Calibrate sprayer", FieldID: "field-b", Field: "Field B", Category: "maintenance", DueDate: "2026-02-22", Status: "todo", Priority: "medium", Notes: "Before next application"},
		{ID: "task-25", Title: "Plan crop rotation", FieldID: "field-d", Field: "Field D", Category: "planting", DueDate: "2026-02-23", Status: "todo", Priority: "low", Notes: "Consider legumes next"},
	}
}

func demoNotes() []entities.Note {
	return []entities.Note{
		{ID: "note-1", FieldID: "field-a", Content: "Water level dropped faster than expected. Check for leaks in berm.", Timestamp: "2026-02-13T14:30:00", Tags: []string{"irrigation", "maintenance"}, Author: "Maria"},
		{ID: "note-2", FieldID: "field-a", Content: "pH test shows 6.2, within acceptable range", Timestamp: "2026-02-11T09:15:00", Tags: []string{"soil"}, Author: "Jake"},
		{ID: "note-3", FieldID: "field-b", Content: "Wind advisory through Friday. Postpone any spray applications.", Timestamp: "2026-02-14T07:00:00", Tags: []string{"weather", "spray"}, Author: "System"},
		{ID: "note-4", FieldID: "field-c", Content: "First tomatoes showing color. Harvest in 7-10 days.", Timestamp: "2026-02-13T16:45:00", Tags: []string{"harvest", "scout"}, Author: "Maria"},
		{ID: "note-5", FieldID: "field-c", Content: "Minor aphid pressure on east side. Keep monitoring.", Timestamp: "2026-02-12T10:20:00", Tags: []string{"pest", "scout"}, Author: "Jake"},
		{ID: "note-6", FieldID: "field-d", Content: "Hay cutting delayed 2 days due to rain. Moisture still high.", Timestamp: "2026-02-13T08:00:00", Tags: []string{"harvest", "weather"}, Author: "Maria"},
		{ID: "note-7", FieldID: "field-e", Content: "Bee hives moved into position. Good pollinator activity observed.", Timestamp: "2026-02-10T15:30:00", Tags: []string{"pollination"}, Author: "Jake"},
		{ID: "note-8", FieldID: "field-e", Content: "Light frost damage on 3 trees in NW corner. Minimal impact expected.", Timestamp: "2026-02-09T07:45:00", Tags: []string{"weather", "damage"}, Author: "Maria"},
		{ID: "note-9", FieldID: "field-f", Content: "Drip system zone 3 has low pressure. Scheduled for repair.", Timestamp: "2026-02-13T11:00:00", Tags: []string{"irrigation", "maintenance"}, Author: "Jake"},
	}
}

func demoImports() []entities.ImportRecord {
	return []entities.ImportRecord{
		{ID: "import-1", FileName: "weekly-plan.xlsx", UploadedTime: "2026-02-14T05:00:00", RowsParsed: 48, FieldsDetected: 6, TasksCreated: 12, Status: "success"},
		{ID: "import-2", FileName: "field-notes-feb.csv", UploadedTime: "2026-02-13T18:30:00", RowsParsed: 23, FieldsDetected: 6, TasksCreated: 5, Status: "success"},
		{ID: "import-3", FileName: "irrigation-schedule.xlsx", UploadedTime: "2026-02-12T09:15:00", RowsParsed: 35, FieldsDetected: 5, TasksCreated: 8, Status: "partial"},
		{ID: "import-4", FileName: "january-summary.csv", UploadedTime: "2026-02-01T14:00:00", RowsParsed: 156, FieldsDetected: 6, TasksCreated: 34, Status: "success"},
	}
}

func demoChanges() []entities.ChangeItem {
	return []entities.ChangeItem{
		{ID: "change-1", Type: "moved", Description: `Task "Cut hay - first pass" moved due to rain`, Timestamp: "2026-02-14T06:30:00", FieldID: "field-d", TaskID: "task-8"},
		{ID: "change-2", Type: "blocked", Description: "Spray blocked by wind in Field B", Timestamp: "2026-02-14T07:00:00", FieldID: "field-b", TaskID: "task-4"},
		{ID: "change-3", Type: "imported", Description: "Import added 4 new tasks from weekly-plan.xlsx", Timestamp: "2026-02-14T05:00:00"},
		{ID: "change-4", Type: "overdue", Description: "New overdue task: Refill flood basin", Timestamp: "2026-02-14T00:00:00", FieldID: "field-a", TaskID: "task-9"},
		{ID: "change-5", Type: "updated", Description: "Field C: Irrigation cycle extended by 1 hour", Timestamp: "2026-02-13T22:15:00", FieldID: "field-c"},
	}
}

func buildDemoState() entities.AppState {
	return entities.AppState{
		Fields:  demoFields(),
		Tasks:   demoTasks(),
		Notes:   demoNotes(),
		Imports: demoImports(),
		Changes: demoChanges(),
		Notifications: []entities.Notification{
			{ID: "n1", Message: "Import completed: weekly-plan.xlsx", Timestamp: "2026-02-14T10:00:00", Read: false, Type: "success"},
			{ID: "n2", Message: "3 tasks are now overdue", Timestamp: "2026-02-14T08:00:00", Read: false, Type: "warning"},
			{ID: "n3", Message: "Nitrogen application blocked by wind", Timestamp: "2026-02-14T07:00:00", Read: false, Type: "error"},
		},
		AlertSettings: defaultAlertSettings(),
		FarmSettings:  defaultFarmSettings(),
		MappingTemplates: []entities.MappingTemplate{
			{ID: "template-1", Name: "Weekly Plan Template", Created: "2026-02-01", LastUsed: "2026-02-14"},
			{ID: "template-2", Name: "Field Notes Template", Created: "2026-01-20", LastUsed: "2026-02-13"},
		},
		OnboardingDismissed: false,
		LastImportTime:      "2026-02-14T12:00:00",
	}
}
