package store

import (
	"encoding/json"
	"fmt"

	"cropbase/entities"
)

// SchemaVersion is bumped whenever the persisted AppState shape changes
// incompatibly; add a migration to migrations for each bump.
const SchemaVersion = 1

type snapshotEnvelope struct {
	SchemaVersion *int            `json:"schema_version"`
	State         json.RawMessage `json:"state"`
}

// migrations rewrites a decoded state from version v-1 to v. Applied in
// order when loading an older envelope. None exist yet for v1.
var migrations = map[int]func(*entities.AppState){}

func encodeSnapshot(state entities.AppState) ([]byte, error) {
	v := SchemaVersion
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	return json.Marshal(snapshotEnvelope{SchemaVersion: &v, State: raw})
}

// decodeSnapshot decodes a slot payload over freshly built defaults so
// keys added to the schema since the snapshot was written are
// backfilled. Payloads without an envelope are legacy full-state dumps
// (version 0) and decode the same way.
func decodeSnapshot(payload []byte) (entities.AppState, error) {
	var env snapshotEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return entities.AppState{}, fmt.Errorf("decode envelope: %w", err)
	}

	state := buildDemoState()
	if env.SchemaVersion == nil {
		if err := json.Unmarshal(payload, &state); err != nil {
			return entities.AppState{}, fmt.Errorf("decode legacy state: %w", err)
		}
		return state, nil
	}

	from := *env.SchemaVersion
	if from > SchemaVersion {
		return entities.AppState{}, fmt.Errorf("snapshot schema v%d is newer than supported v%d", from, SchemaVersion)
	}
	if err := json.Unmarshal(env.State, &state); err != nil {
		return entities.AppState{}, fmt.Errorf("decode state: %w", err)
	}
	for v := from + 1; v <= SchemaVersion; v++ {
		if m, ok := migrations[v]; ok {
			m(&state)
		}
	}
	return state, nil
}
