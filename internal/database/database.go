package database

import (
	"fmt"
	"time"

	"ledgerbook/internal/logger"
	"ledgerbook/internal/models"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager handles database operations. Core services only ever see the
// *gorm.DB it hands out, so the sqlite and postgres adapters are
// interchangeable behind it.
type Manager struct {
	db     *gorm.DB
	driver string
	url    string
}

// NewManager creates a new database manager for the configured driver.
func NewManager(config *Config) (*Manager, error) {
	switch config.Driver {
	case "postgres":
		return newPostgresManager(config)
	case "sqlite":
		return newSQLiteManager(config)
	default:
		return nil, fmt.Errorf("unknown database driver %q (use sqlite or postgres)", config.Driver)
	}
}

func newPostgresManager(config *Config) (*Manager, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  config.DSN(),
		PreferSimpleProtocol: true, // Required for transaction poolers; harmless for direct connections
	}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db, driver: "postgres", url: config.URL()}, nil
}

func newSQLiteManager(config *Config) (*Manager, error) {
	db, err := gorm.Open(sqlite.Open(config.Path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite allows one writer at a time; a single connection keeps an
	// in-memory database alive for the process lifetime.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return &Manager{db: db, driver: "sqlite"}, nil
}

// Migrate brings the schema up to date. The postgres adapter applies the
// SQL files under migrations/; the sqlite adapter auto-migrates the
// models directly.
func (m *Manager) Migrate() error {
	if m.driver == "postgres" {
		return m.runSQLMigrations()
	}
	return m.db.AutoMigrate(
		&models.Account{},
		&models.JournalEntry{},
		&models.TransactionLine{},
	)
}

func (m *Manager) runSQLMigrations() error {
	logger.Get().Info("Running database migrations...")

	mig, err := migrate.New("file://migrations", m.url)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
