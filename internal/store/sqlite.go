package store

import (
	"os"
	"path/filepath"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Record is one persisted blob. Every value in this system is a JSON
// document, so the column uses the JSON datatype.
type Record struct {
	Key   string         `gorm:"primaryKey;size:64" json:"key"`
	Value datatypes.JSON `json:"value"`
}

func (Record) TableName() string { return "records" }

// SQLiteStore keeps all records in a single local database file. This is
// the default store; it survives restarts like localStorage does.
type SQLiteStore struct {
	db *gorm.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(key string) (string, bool, error) {
	var rec Record
	err := s.db.First(&rec, "key = ?", key).Error
	if err == gorm.ErrRecordNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(rec.Value), true, nil
}

func (s *SQLiteStore) Set(key, value string) error {
	rec := Record{Key: key, Value: datatypes.JSON(value)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
}

func (s *SQLiteStore) Remove(key string) error {
	return s.db.Delete(&Record{}, "key = ?", key).Error
}
