// Package store persists a local history of import and export runs in a
// relational database, so recurring sync jobs can be audited after the fact.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Run statuses.
const (
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// TaskRun records a single import, export or sync run.
type TaskRun struct {
	ID         string `gorm:"primaryKey"`
	Kind       string `gorm:"index"` // import, export, sync
	Status     string `gorm:"index"`
	DataSet    string
	Period     string
	OrgUnit    string
	Imported   int
	Updated    int
	Ignored    int
	Deleted    int
	Message    string
	StartedAt  time.Time
	FinishedAt *time.Time
}

// Store wraps the task-history database.
type Store struct {
	db *gorm.DB
}

// Open connects to the database named by databaseURL (sqlite:// or
// postgres://) and runs auto-migration. The default SQLite path is resolved
// into the user config directory.
func Open(databaseURL string) (*Store, error) {
	if databaseURL == "" {
		databaseURL = "sqlite://./dhis2.db"
	}

	dialector, err := dialectorFor(databaseURL)
	if err != nil {
		return nil, err
	}

	gormLogger := logger.Default.LogMode(logger.Warn)
	if os.Getenv("LOG_LEVEL") == "DEBUG" {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := db.AutoMigrate(&TaskRun{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// dialectorFor resolves a database URL into a GORM dialector.
func dialectorFor(databaseURL string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(databaseURL, "sqlite://"):
		dbPath := strings.TrimPrefix(databaseURL, "sqlite://")

		// Default path goes into the user config directory
		if dbPath == "./dhis2.db" {
			configDir, err := os.UserConfigDir()
			if err != nil {
				return nil, fmt.Errorf("failed to get user config directory: %w", err)
			}
			appDir := filepath.Join(configDir, "dhis2")
			if err := os.MkdirAll(appDir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create app directory: %w", err)
			}
			dbPath = filepath.Join(appDir, "dhis2.db")
		}

		return sqlite.Open(dbPath), nil

	case strings.HasPrefix(databaseURL, "postgresql://"), strings.HasPrefix(databaseURL, "postgres://"):
		return postgres.Open(databaseURL), nil

	default:
		return nil, fmt.Errorf("unsupported database URL format: %s", databaseURL)
	}
}

// Close closes the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Begin records the start of a run and returns it.
func (s *Store) Begin(kind, dataSet, period, orgUnit string) (*TaskRun, error) {
	run := &TaskRun{
		ID:        uuid.New().String(),
		Kind:      kind,
		Status:    StatusRunning,
		DataSet:   dataSet,
		Period:    period,
		OrgUnit:   orgUnit,
		StartedAt: time.Now(),
	}
	if err := s.db.Create(run).Error; err != nil {
		return nil, fmt.Errorf("failed to record run: %w", err)
	}
	return run, nil
}

// Complete marks the run as completed with the given import counts.
func (s *Store) Complete(run *TaskRun, imported, updated, ignored, deleted int, message string) error {
	now := time.Now()
	run.Status = StatusCompleted
	run.Imported = imported
	run.Updated = updated
	run.Ignored = ignored
	run.Deleted = deleted
	run.Message = message
	run.FinishedAt = &now
	return s.db.Save(run).Error
}

// Fail marks the run as failed with the given error message.
func (s *Store) Fail(run *TaskRun, message string) error {
	now := time.Now()
	run.Status = StatusFailed
	run.Message = message
	run.FinishedAt = &now
	return s.db.Save(run).Error
}

// Recent returns the most recent runs, latest first.
func (s *Store) Recent(limit int) ([]TaskRun, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []TaskRun
	if err := s.db.Order("started_at DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	return runs, nil
}
