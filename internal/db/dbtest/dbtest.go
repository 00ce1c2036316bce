// Package dbtest provides throwaway SQLite databases for tests.
package dbtest

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"contactbook/internal/config"
	"contactbook/internal/db"
)

// New returns a migrated in-memory database private to the calling test.
// It is closed automatically when the test finishes.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	// A named shared-cache database lives as long as one connection is open,
	// and the unique name keeps parallel tests apart.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gormDB, err := db.Open(config.DriverSQLite, dsn, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(gormDB, false); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gormDB
}
