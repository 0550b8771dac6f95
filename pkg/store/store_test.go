package store

import (
	"errors"
	"testing"
	"time"

	"cropbase/entities"
)

type memRepo struct {
	data    map[string][]byte
	saveErr error
}

func (m *memRepo) Load(key string) ([]byte, error) { return m.data[key], nil }

func (m *memRepo) Save(key string, p []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if m.data == nil {
		m.data = map[string][]byte{}
	}
	m.data[key] = append([]byte(nil), p...)
	return nil
}

func (m *memRepo) Delete(key string) error {
	delete(m.data, key)
	return nil
}

// newTestStore loads the given state through the real snapshot path.
func newTestStore(t *testing.T, state entities.AppState) (*Store, *memRepo) {
	t.Helper()
	payload, err := encodeSnapshot(state)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	repo := &memRepo{data: map[string][]byte{StorageKey: payload}}
	st, err := New(repo)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return st, repo
}

func task(id, fieldID, due, status, priority string, overdue, blocked bool) entities.Task {
	return entities.Task{
		ID: id, Title: "Task " + id, FieldID: fieldID, Field: "Field",
		Category: "scout", DueDate: due, Status: status, Priority: priority,
		Overdue: overdue, Blocked: blocked,
	}
}

func TestDerivedStatusPrecedence(t *testing.T) {
	tests := []struct {
		name         string
		initial      string // field status before recompute
		tasks        []entities.Task
		wantStatus   string
		wantOverdue  int
		wantNextTask string
	}{
		{
			name:       "no tasks stays normal",
			initial:    "normal",
			wantStatus: "normal",
		},
		{
			name:        "overdue beats blocked",
			initial:     "normal",
			tasks:       []entities.Task{task("t1", "f1", "2026-02-12", "todo", "low", true, false), task("t2", "f1", "2026-02-15", "todo", "low", false, true)},
			wantStatus:  "overdue",
			wantOverdue: 1, wantNextTask: "Task t1",
		},
		{
			name:       "blocked beats attention",
			initial:    "normal",
			tasks:      []entities.Task{task("t1", "f1", "2026-02-15", "todo", "critical", false, true)},
			wantStatus: "blocked", wantNextTask: "Task t1",
		},
		{
			name:       "high priority gives attention",
			initial:    "normal",
			tasks:      []entities.Task{task("t1", "f1", "2026-02-15", "todo", "high", false, false)},
			wantStatus: "attention", wantNextTask: "Task t1",
		},
		{
			name:       "done tasks never count",
			initial:    "normal",
			tasks:      []entities.Task{task("t1", "f1", "2026-02-12", "done", "critical", true, true)},
			wantStatus: "normal",
		},
		{
			name:       "watch is sticky when nothing triggers",
			initial:    "watch",
			tasks:      []entities.Task{task("t1", "f1", "2026-02-15", "todo", "low", false, false)},
			wantStatus: "watch", wantNextTask: "Task t1",
		},
		{
			name:       "watch is overridden by overdue",
			initial:    "watch",
			tasks:      []entities.Task{task("t1", "f1", "2026-02-12", "todo", "low", true, false)},
			wantStatus: "overdue", wantOverdue: 1, wantNextTask: "Task t1",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st, _ := newTestStore(t, entities.AppState{
				Fields: []entities.Field{{ID: "f1", Name: "Field 1", Status: tc.initial}},
				Tasks:  tc.tasks,
			})
			// any task mutation triggers recompute
			if err := st.CreateTask(task("trigger", "other-field", "2026-03-01", "todo", "low", false, false)); err != nil {
				t.Fatalf("create: %v", err)
			}
			f, ok := st.Field("f1")
			if !ok {
				t.Fatal("field f1 missing")
			}
			if f.Status != tc.wantStatus {
				t.Errorf("status = %q, want %q", f.Status, tc.wantStatus)
			}
			if f.OverdueCount != tc.wantOverdue {
				t.Errorf("overdue_count = %d, want %d", f.OverdueCount, tc.wantOverdue)
			}
			if f.NextTask != tc.wantNextTask {
				t.Errorf("next_task = %q, want %q", f.NextTask, tc.wantNextTask)
			}
		})
	}
}

func TestCreateThenComplete(t *testing.T) {
	st, _ := newTestStore(t, entities.AppState{
		Fields: []entities.Field{{ID: "field-a", Name: "Field A", Status: "normal"}},
	})

	tk := task("task-x", "field-a", "2026-02-10", "todo", "medium", true, false)
	if err := st.CreateTask(tk); err != nil {
		t.Fatalf("create: %v", err)
	}
	f, _ := st.Field("field-a")
	if f.Status != "overdue" || f.OverdueCount != 1 {
		t.Fatalf("after create: status=%q overdue=%d, want overdue/1", f.Status, f.OverdueCount)
	}

	if err := st.MarkTaskDone("task-x"); err != nil {
		t.Fatalf("done: %v", err)
	}
	f, _ = st.Field("field-a")
	if f.Status != "normal" || f.OverdueCount != 0 {
		t.Fatalf("after done: status=%q overdue=%d, want normal/0", f.Status, f.OverdueCount)
	}
	if f.NextTask != "" || f.NextTaskDue != "" {
		t.Fatalf("next task should clear, got %q %q", f.NextTask, f.NextTaskDue)
	}
}

func TestMarkTaskDoneIdempotent(t *testing.T) {
	st, _ := newTestStore(t, entities.AppState{
		Fields: []entities.Field{{ID: "f1", Status: "normal"}},
		Tasks:  []entities.Task{task("t1", "f1", "2026-02-12", "todo", "high", true, true)},
	})
	if err := st.MarkTaskDone("t1"); err != nil {
		t.Fatalf("first done: %v", err)
	}
	first, _ := st.Task("t1")
	if err := st.MarkTaskDone("t1"); err != nil {
		t.Fatalf("second done: %v", err)
	}
	second, _ := st.Task("t1")
	if first != second {
		t.Errorf("second call changed the task: %+v vs %+v", first, second)
	}
	if second.Status != "done" || second.Overdue || second.Blocked {
		t.Errorf("task not fully completed: %+v", second)
	}
}

func TestMarkTaskDoneAppendsChange(t *testing.T) {
	st, _ := newTestStore(t, entities.AppState{
		Fields: []entities.Field{{ID: "f1", Status: "normal"}},
		Tasks:  []entities.Task{task("t1", "f1", "2026-02-12", "todo", "low", false, false)},
	})
	st.now = func() time.Time { return time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC) }

	if err := st.MarkTaskDone("t1"); err != nil {
		t.Fatalf("done: %v", err)
	}
	changes := st.Changes()
	if len(changes) != 1 {
		t.Fatalf("want 1 change, got %d", len(changes))
	}
	ch := changes[0]
	if ch.Type != "updated" || ch.TaskID != "t1" {
		t.Errorf("unexpected change: %+v", ch)
	}
	if ch.Description != `Task "Task t1" marked as done` {
		t.Errorf("description = %q", ch.Description)
	}
	if ch.Timestamp != "2026-02-14T09:00:00" {
		t.Errorf("timestamp = %q", ch.Timestamp)
	}
}

func TestSnoozeTask(t *testing.T) {
	st, _ := newTestStore(t, entities.AppState{
		Fields: []entities.Field{{ID: "f1", Status: "normal"}},
		Tasks:  []entities.Task{task("t1", "f1", "2026-02-12", "todo", "low", true, false)},
	})
	if err := st.SnoozeTask("t1", "2026-02-20"); err != nil {
		t.Fatalf("snooze: %v", err)
	}
	tk, _ := st.Task("t1")
	if tk.DueDate != "2026-02-20" || tk.Overdue || tk.MovedReason != "Snoozed" {
		t.Errorf("snoozed task: %+v", tk)
	}
	f, _ := st.Field("f1")
	if f.Status != "normal" || f.OverdueCount != 0 {
		t.Errorf("field after snooze: status=%q overdue=%d", f.Status, f.OverdueCount)
	}
	if ch := st.Changes()[0]; ch.Type != "moved" {
		t.Errorf("change type = %q, want moved", ch.Type)
	}
}

func TestBulkMarkDoneMatchesSingle(t *testing.T) {
	base := entities.AppState{
		Fields: []entities.Field{{ID: "f1", Status: "normal"}},
		Tasks: []entities.Task{
			task("t1", "f1", "2026-02-12", "todo", "high", true, false),
			task("t2", "f1", "2026-02-13", "inprogress", "low", false, true),
			task("t3", "f1", "2026-02-14", "todo", "medium", false, false),
		},
	}
	ids := []string{"t1", "t2", "missing"}

	bulk, _ := newTestStore(t, base)
	if err := bulk.BulkMarkTasksDone(ids); err != nil {
		t.Fatalf("bulk: %v", err)
	}
	single, _ := newTestStore(t, base)
	for _, id := range ids {
		if err := single.MarkTaskDone(id); err != nil && !errors.Is(err, ErrNotFound) {
			t.Fatalf("single %s: %v", id, err)
		}
	}

	bt, stt := bulk.Tasks(), single.Tasks()
	if len(bt) != len(stt) {
		t.Fatalf("task counts differ: %d vs %d", len(bt), len(stt))
	}
	for i := range bt {
		if bt[i] != stt[i] {
			t.Errorf("task %d differs: %+v vs %+v", i, bt[i], stt[i])
		}
	}
	bf, _ := bulk.Field("f1")
	sf, _ := single.Field("f1")
	if bf != sf {
		t.Errorf("fields differ: %+v vs %+v", bf, sf)
	}
	// change-log counts intentionally differ: one summary vs N entries
	if len(bulk.Changes()) != 1 {
		t.Errorf("bulk changes = %d, want 1", len(bulk.Changes()))
	}
}

func TestBulkDeleteTasks(t *testing.T) {
	st, _ := newTestStore(t, entities.AppState{
		Fields: []entities.Field{{ID: "f1", Status: "normal"}},
		Tasks: []entities.Task{
			task("t1", "f1", "2026-02-12", "todo", "low", true, false),
			task("t2", "f1", "2026-02-13", "todo", "low", false, false),
		},
	})
	if err := st.BulkDeleteTasks([]string{"t1", "missing"}); err != nil {
		t.Fatalf("bulk delete: %v", err)
	}
	if got := len(st.Tasks()); got != 1 {
		t.Fatalf("tasks left = %d, want 1", got)
	}
	f, _ := st.Field("f1")
	if f.OverdueCount != 0 || f.Status != "normal" {
		t.Errorf("field after delete: %+v", f)
	}
}

func TestUnknownIDIsErrNotFoundAndNoChange(t *testing.T) {
	st, _ := newTestStore(t, entities.AppState{
		Fields: []entities.Field{{ID: "f1", Status: "normal"}},
		Tasks:  []entities.Task{task("t1", "f1", "2026-02-12", "todo", "low", false, false)},
	})
	before := st.State()

	title := "x"
	ops := map[string]error{
		"UpdateTask":           st.UpdateTask("nope", TaskUpdate{Title: &title}),
		"DeleteTask":           st.DeleteTask("nope"),
		"MarkTaskDone":         st.MarkTaskDone("nope"),
		"SnoozeTask":           st.SnoozeTask("nope", "2026-03-01"),
		"UpdateField":          st.UpdateField("nope", FieldUpdate{Name: &title}),
		"DeleteField":          st.DeleteField("nope"),
		"DeleteNote":           st.DeleteNote("nope"),
		"DeleteImportRecord":   st.DeleteImportRecord("nope"),
		"MarkNotificationRead": st.MarkNotificationRead("nope"),
		"DeleteTemplate":       st.DeleteMappingTemplate("nope"),
	}
	for name, err := range ops {
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("%s: err = %v, want ErrNotFound", name, err)
		}
	}
	after := st.State()
	if len(after.Tasks) != len(before.Tasks) || after.Tasks[0] != before.Tasks[0] {
		t.Errorf("tasks changed by failed ops")
	}
	if len(after.Fields) != len(before.Fields) || after.Fields[0] != before.Fields[0] {
		t.Errorf("fields changed by failed ops")
	}
}

func TestUpdateFieldDerivedAlwaysWins(t *testing.T) {
	st, _ := newTestStore(t, entities.AppState{
		Fields: []entities.Field{{ID: "f1", Name: "Old", Status: "normal"}},
		Tasks:  []entities.Task{task("t1", "f1", "2026-02-12", "todo", "low", true, false)},
	})
	name, status := "New Name", "watch"
	if err := st.UpdateField("f1", FieldUpdate{Name: &name, Status: &status}); err != nil {
		t.Fatalf("update: %v", err)
	}
	f, _ := st.Field("f1")
	if f.Name != "New Name" {
		t.Errorf("name = %q", f.Name)
	}
	// caller asked for watch but an overdue task decides the status
	if f.Status != "overdue" {
		t.Errorf("status = %q, want overdue (derived wins)", f.Status)
	}
}

func TestDeleteFieldLeavesOrphans(t *testing.T) {
	st, _ := newTestStore(t, entities.AppState{
		Fields: []entities.Field{{ID: "f1", Status: "normal"}},
		Tasks:  []entities.Task{task("t1", "f1", "2026-02-12", "todo", "low", false, false)},
	})
	if err := st.DeleteField("f1"); err != nil {
		t.Fatalf("delete field: %v", err)
	}
	if len(st.Fields()) != 0 {
		t.Fatal("field still present")
	}
	if _, ok := st.Task("t1"); !ok {
		t.Fatal("orphaned task should remain")
	}
	if err := st.DeleteTask("t1"); err != nil {
		t.Fatalf("orphan should stay deletable: %v", err)
	}
}

func TestPersistRoundTrip(t *testing.T) {
	st, repo := newTestStore(t, entities.AppState{
		Fields: []entities.Field{{ID: "f1", Name: "Field 1", Status: "normal"}},
	})
	if err := st.CreateTask(task("t1", "f1", "2026-02-14", "todo", "high", false, false)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := st.AddNote(entities.Note{ID: "n1", FieldID: "f1", Content: "berm leak", Timestamp: "2026-02-14T08:00:00"}); err != nil {
		t.Fatalf("note: %v", err)
	}

	reloaded, err := New(repo)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	want, got := st.State(), reloaded.State()
	if len(got.Tasks) != 1 || got.Tasks[0] != want.Tasks[0] {
		t.Errorf("tasks: %+v vs %+v", got.Tasks, want.Tasks)
	}
	if len(got.Fields) != 1 || got.Fields[0] != want.Fields[0] {
		t.Errorf("fields: %+v vs %+v", got.Fields, want.Fields)
	}
	if len(got.Notes) != 1 || got.Notes[0].Content != "berm leak" {
		t.Errorf("notes: %+v", got.Notes)
	}
	if got.AlertSettings.Email != want.AlertSettings.Email {
		t.Errorf("alert settings drifted: %+v vs %+v", got.AlertSettings, want.AlertSettings)
	}
}

func TestPersistFailureKeepsMemoryState(t *testing.T) {
	st, repo := newTestStore(t, entities.AppState{
		Fields: []entities.Field{{ID: "f1", Status: "normal"}},
	})
	repo.saveErr = errors.New("quota exceeded")

	err := st.CreateTask(task("t1", "f1", "2026-02-14", "todo", "low", false, false))
	if err == nil {
		t.Fatal("want persist error surfaced")
	}
	if _, ok := st.Task("t1"); !ok {
		t.Fatal("in-memory state should keep the change")
	}
}

func TestResetToDemo(t *testing.T) {
	st, repo := newTestStore(t, entities.AppState{
		Fields: []entities.Field{{ID: "f1", Status: "normal"}},
	})
	if err := st.CreateTask(task("t1", "f1", "2026-02-14", "todo", "low", false, false)); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := st.ResetToDemo(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, ok := repo.data[StorageKey]; ok {
		t.Fatal("slot should be cleared")
	}
	demo := buildDemoState()
	got := st.State()
	if len(got.Fields) != len(demo.Fields) || len(got.Tasks) != len(demo.Tasks) {
		t.Fatalf("state is not demo: %d fields %d tasks", len(got.Fields), len(got.Tasks))
	}
	if got.Fields[0] != demo.Fields[0] || got.Tasks[0] != demo.Tasks[0] {
		t.Errorf("demo records differ")
	}

	// a reload without further writes also yields the demo dataset
	again, err := New(repo)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(again.State().Tasks) != len(demo.Tasks) {
		t.Errorf("reload after reset is not demo")
	}
}

func TestSettingsMergeAndReset(t *testing.T) {
	st, _ := newTestStore(t, buildDemoState())

	phone := "555-0100"
	sms := true
	if err := st.UpdateAlertSettings(AlertSettingsUpdate{Phone: &phone, SMSEnabled: &sms}); err != nil {
		t.Fatalf("update alerts: %v", err)
	}
	a := st.AlertSettings()
	if a.Phone != "555-0100" || !a.SMSEnabled {
		t.Errorf("patch did not apply: %+v", a)
	}
	if a.Email != "manager@aggiedemo.farm" || !a.EmailEnabled {
		t.Errorf("untouched keys changed: %+v", a)
	}

	if err := st.ResetAlertSettings(); err != nil {
		t.Fatalf("reset alerts: %v", err)
	}
	if got := st.AlertSettings(); got.Phone != "" || got.SMSEnabled {
		t.Errorf("reset did not restore defaults: %+v", got)
	}

	owner := "Maria"
	if err := st.UpdateFarmSettings(FarmSettingsUpdate{Owner: &owner}); err != nil {
		t.Fatalf("update farm: %v", err)
	}
	if got := st.FarmSettings(); got.Owner != "Maria" || got.FarmName != "Aggie Demo Farm" {
		t.Errorf("farm patch: %+v", got)
	}
}

func TestNotifications(t *testing.T) {
	st, _ := newTestStore(t, buildDemoState())
	if err := st.MarkNotificationRead("n2"); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	for _, n := range st.Notifications() {
		if n.ID == "n2" && !n.Read {
			t.Error("n2 still unread")
		}
		if n.ID == "n1" && n.Read {
			t.Error("n1 should stay unread")
		}
	}
	if err := st.MarkAllNotificationsRead(); err != nil {
		t.Fatalf("mark all: %v", err)
	}
	for _, n := range st.Notifications() {
		if !n.Read {
			t.Errorf("%s unread after mark-all", n.ID)
		}
	}
}

func TestAddImportRecordMovesMarker(t *testing.T) {
	st, _ := newTestStore(t, entities.AppState{})
	rec := entities.ImportRecord{ID: "import-9", FileName: "plan.csv", UploadedTime: "2026-02-15T08:00:00", RowsParsed: 3, TasksCreated: 3, Status: "success"}
	if err := st.AddImportRecord(rec); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := st.Imports(); len(got) != 1 || got[0] != rec {
		t.Errorf("imports: %+v", got)
	}
	if st.LastImportTime() != "2026-02-15T08:00:00" {
		t.Errorf("last import time = %q", st.LastImportTime())
	}
}

func TestNextIDMonotonic(t *testing.T) {
	st, _ := newTestStore(t, entities.AppState{})
	seen := map[string]bool{}
	prev := ""
	for i := 0; i < 100; i++ {
		id := st.NextID("task")
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
		if prev != "" && !(len(id) >= len(prev) && id > prev) {
			t.Fatalf("ids not increasing: %s then %s", prev, id)
		}
		prev = id
	}
}

func TestFarmStatsAndAttention(t *testing.T) {
	st, _ := newTestStore(t, buildDemoState())
	// force a recompute so derived columns reflect the task set
	if err := st.BulkDeleteTasks(nil); err != nil {
		t.Fatalf("recompute: %v", err)
	}

	stats := st.FarmStatsFor("2026-02-14")
	if stats.ActiveFields != 6 {
		t.Errorf("active fields = %d", stats.ActiveFields)
	}
	if stats.OverdueTasks != 3 {
		t.Errorf("overdue = %d, want 3", stats.OverdueTasks)
	}
	if stats.BlockedTasks != 1 {
		t.Errorf("blocked = %d, want 1", stats.BlockedTasks)
	}
	// tasks due today or tomorrow and not done: tasks 1-7 plus 11-13
	if stats.TasksDue24h != 10 {
		t.Errorf("due24h = %d, want 10", stats.TasksDue24h)
	}

	// after recompute each of field-a/d/e carries one overdue task, so
	// they outrank the blocked and attention fields
	items := st.FieldsNeedingAttention()
	if len(items) != 3 {
		t.Fatalf("attention items = %d, want 3", len(items))
	}
	if items[0].Field.ID != "field-a" || items[1].Field.ID != "field-d" || items[2].Field.ID != "field-e" {
		t.Errorf("attention order = %s, %s, %s", items[0].Field.ID, items[1].Field.ID, items[2].Field.ID)
	}
	if items[0].Reason != "1 overdue task" {
		t.Errorf("reason = %q", items[0].Reason)
	}
}
