// Package database owns the session store: an in-memory sqlite database
// opened through gorm. Nothing in it outlives the process.
package database

import (
	"fmt"

	"assetboard/internal/logger"
	"assetboard/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Manager handles database operations
type Manager struct {
	db *gorm.DB
}

// Options tunes how the store is opened.
type Options struct {
	DSN string
	// Verbose logs every SQL statement through gorm's logger.
	Verbose bool
}

// NewManager opens the sqlite store. An in-memory sqlite database is
// dropped when its last connection closes, so the pool holds a single
// connection open for the life of the process. One connection also
// serialises writers, which shared-cache sqlite would otherwise reject
// with table lock errors.
func NewManager(opts Options) (*Manager, error) {
	level := gormlogger.Warn
	if opts.Verbose {
		level = gormlogger.Info
	}

	db, err := gorm.Open(sqlite.Open(opts.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	// sqlite ignores ON DELETE CASCADE unless foreign keys are switched on.
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &Manager{db: db}, nil
}

// Migrate creates the session, dataset and record tables.
func (m *Manager) Migrate() error {
	logger.Get().Info("Migrating session store...")
	if err := m.db.AutoMigrate(&models.Session{}, &models.Dataset{}, &models.AssetRecord{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Get().Info("Session store ready")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close releases the pool, which discards an in-memory database.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
