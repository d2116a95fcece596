package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Entry is one persisted key-value row. Values are opaque text; callers own
// serialization and must treat anything unparsable as absent.
type Entry struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (Entry) TableName() string {
	return "kv_entries"
}

// Store is the browser-storage analogue backing the session layer.
type Store struct {
	database *gorm.DB
}

func New(database *gorm.DB) *Store {
	return &Store{database: database}
}

// Get returns the stored value and whether the key was present.
func (store *Store) Get(key string) (string, bool, error) {
	var entry Entry
	if err := store.database.First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

func (store *Store) Set(key string, value string) error {
	entry := Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	return store.database.Save(&entry).Error
}

func (store *Store) Remove(key string) error {
	return store.database.Delete(&Entry{}, "key = ?", key).Error
}
