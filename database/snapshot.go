package database

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot is one named slot holding a full serialized state payload.
// The store writes a single fixed key; extra keys cost nothing.
type Snapshot struct {
	Key       string `gorm:"primaryKey"`
	Payload   []byte
	UpdatedAt time.Time
}

type SnapshotRepo struct{ db *gorm.DB }

func NewSnapshotRepo(db *gorm.DB) *SnapshotRepo { return &SnapshotRepo{db} }

// Load returns (nil, nil) when the slot has never been written.
func (r *SnapshotRepo) Load(key string) ([]byte, error) {
	var s Snapshot
	if err := r.db.First(&s, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.Payload, nil
}

func (r *SnapshotRepo) Save(key string, payload []byte) error {
	s := Snapshot{Key: key, Payload: payload, UpdatedAt: time.Now()}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&s).Error
}

func (r *SnapshotRepo) Delete(key string) error {
	return r.db.Delete(&Snapshot{}, "key = ?", key).Error
}
