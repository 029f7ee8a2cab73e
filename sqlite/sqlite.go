package sqlite

import (
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

type Options struct {
	Path string
	// Quiet silences gorm's SQL logger.
	Quiet bool
}

// DSN appends the foreign key pragma to path, keeping any query string the
// path already carries.
func DSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

// NewConnection opens a sqlite database with foreign key enforcement on.
// In-memory databases are pinned to one connection so every query sees the
// same data.
func NewConnection(opts Options) (*gorm.DB, error) {
	path := strings.TrimSpace(opts.Path)
	if path == "" || path == MemoryPath {
		path = "file::memory:"
	}

	cfg := &gorm.Config{TranslateError: true}
	if opts.Quiet {
		cfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(sqlite.Open(DSN(path)), cfg)
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(path, "file::memory:") || strings.HasPrefix(path, MemoryPath) {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}
