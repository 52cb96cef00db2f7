package database

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nstc-app/management/internal/logger"
	"github.com/nstc-app/management/internal/models"
)

// Options tunes how the store handle is opened.
type Options struct {
	// LogQueries logs every SQL statement; otherwise only warnings and errors are logged.
	LogQueries bool
}

// Connect opens the SQLite store at dsn. Plain file paths get a busy timeout
// so concurrent writers wait instead of failing with SQLITE_BUSY.
func Connect(dsn string, opts Options) (*gorm.DB, error) {
	if !strings.Contains(dsn, "?") && !strings.Contains(dsn, ":memory:") {
		dsn += "?_busy_timeout=5000"
	}

	level := gormlogger.Warn
	if opts.LogQueries {
		level = gormlogger.Info
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(logger.Log(), gormlogger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the tables of every model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Close releases the pooled connections behind db.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql handle: %w", err)
	}
	return sqlDB.Close()
}
