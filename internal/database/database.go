package database

import (
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// KVEntry is a generic key/value row used as the local persistence cache.
// The cart lives here as a single JSON document.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     string    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName keeps the table name stable across gorm naming strategies.
func (KVEntry) TableName() string {
	return "kv_entries"
}

// Connect opens (or creates) the local SQLite cache and runs migrations.
func Connect(path string) (*gorm.DB, error) {
	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := conn.AutoMigrate(&KVEntry{}); err != nil {
		return nil, err
	}
	return conn, nil
}

// Get reads a value by key. The boolean reports whether the key exists.
func Get(db *gorm.DB, key string) (string, bool, error) {
	var entry KVEntry
	err := db.First(&entry, "key = ?", key).Error
	if err == gorm.ErrRecordNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set writes a value, inserting or replacing the row.
func Set(db *gorm.DB, key, value string) error {
	entry := KVEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	return db.Save(&entry).Error
}

// Delete removes a key. Deleting a missing key is not an error.
func Delete(db *gorm.DB, key string) error {
	return db.Delete(&KVEntry{}, "key = ?", key).Error
}
