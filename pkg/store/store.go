package store

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"cropbase/entities"
)

// StorageKey is the single slot the full state snapshot lives under.
const StorageKey = "cropbase-state"

// ErrNotFound is returned by operations that target an id no record has.
// The state is left unchanged in that case.
var ErrNotFound = errors.New("store: record not found")

// SnapshotRepository is the durable slot the store persists into.
// Load returns (nil, nil) when the slot is empty.
type SnapshotRepository interface {
	Load(key string) ([]byte, error)
	Save(key string, payload []byte) error
	Delete(key string) error
}

// Store holds all domain records and applies state transitions through
// a closed set of operations. Every operation that mutates the task set
// leaves the derived per-field statistics consistent before returning,
// then persists the whole aggregate to the snapshot slot.
type Store struct {
	mu    sync.Mutex
	state entities.AppState
	repo  SnapshotRepository
	seq   int64
	now   func() time.Time
}

// New loads the persisted snapshot over built-in defaults. A missing or
// undecodable slot falls back to the demo dataset.
func New(repo SnapshotRepository) (*Store, error) {
	s := &Store{repo: repo, seq: time.Now().UnixMilli(), now: time.Now}
	payload, err := repo.Load(StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if payload == nil {
		s.state = buildDemoState()
		return s, nil
	}
	state, err := decodeSnapshot(payload)
	if err != nil {
		log.Printf("[store] snapshot unreadable, using demo data: %v", err)
		s.state = buildDemoState()
		return s, nil
	}
	s.state = state
	return s, nil
}

// NextID returns "<prefix>-<n>" from a counter seeded with wall-clock
// millis at startup. Uniqueness comes from the increment, not the seed.
func (s *Store) NextID(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextID(prefix)
}

func (s *Store) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func (s *Store) timestamp() string {
	return s.now().Format("2006-01-02T15:04:05")
}

// persist serializes the aggregate into the slot. The in-memory state
// keeps the change even when the write fails; the error is surfaced so
// callers can warn instead of losing the failure silently.
func (s *Store) persist() error {
	payload, err := encodeSnapshot(s.state)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.repo.Save(StorageKey, payload); err != nil {
		log.Printf("[store] persist failed: %v", err)
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}

func (s *Store) appendChange(typ, desc, fieldID, taskID string) {
	ch := entities.ChangeItem{
		ID:          s.nextID("change"),
		Type:        typ,
		Description: desc,
		Timestamp:   s.timestamp(),
		FieldID:     fieldID,
		TaskID:      taskID,
	}
	s.state.Changes = append([]entities.ChangeItem{ch}, s.state.Changes...)
}

// ResetToDemo clears the persisted slot and rebuilds the whole state
// from the built-in demo dataset. Nothing is persisted until the next
// mutation, so a reload right after reset also yields the demo data.
func (s *Store) ResetToDemo() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Delete(StorageKey); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	s.state = buildDemoState()
	return nil
}
