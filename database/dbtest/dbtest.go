// Package dbtest opens throwaway sqlite databases for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"krishi/config"
	"krishi/database"
)

// New opens a migrated database in the test's temp dir and closes it on cleanup.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	db := Open(t)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Open is New without the migration.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	cfg := config.AppConfig{
		DBDriver:   "sqlite",
		DBPath:     filepath.Join(t.TempDir(), "test.db"),
		DBPoolSize: 5,
	}
	db, err := database.Open(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// InUse reports how many pooled connections are checked out.
func InUse(t testing.TB, db *gorm.DB) int {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	return sqlDB.Stats().InUse
}
