package history

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Entry is one recorded navigation attempt.
type Entry struct {
	ID uint `gorm:"primaryKey"`
	// Path is the destination the user asked for.
	Path string `gorm:"not null"`
	// Outcome is allow, deny or redirect.
	Outcome string `gorm:"not null"`
	// Landed is the destination the user actually ended up on.
	Landed    string
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Store keeps the navigation history in a local sqlite database.
type Store struct {
	db *gorm.DB
}

// Open opens (and migrates) the history database at path.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate history database: %w", err)
	}

	return &Store{db: db}, nil
}

// Record appends one navigation attempt.
func (s *Store) Record(path, outcome, landed string) error {
	entry := Entry{Path: path, Outcome: outcome, Landed: landed}
	if err := s.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to record navigation: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	var entries []Entry
	if err := s.db.Order("id DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to load navigation history: %w", err)
	}
	return entries, nil
}
