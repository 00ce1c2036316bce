package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"contactbook/internal/config"
	"contactbook/internal/model"
)

// Open returns a connected GORM DB instance for the configured driver.
// Driver errors such as unique-key violations are translated into gorm
// sentinel errors so repositories can match them with errors.Is.
// SQL diagnostics go to l.
func Open(driver, dsn string, l *slog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverMySQL:
		dialector = mysql.Open(dsn)
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
	return OpenDialector(dialector, l)
}

// OpenDialector opens an already constructed dialector with the shared GORM settings.
// Misses are an expected outcome for repositories, so they are not logged.
func OpenDialector(dialector gorm.Dialector, l *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.NewSlogLogger(l, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", dialector.Name(), err)
	}
	return db, nil
}

// Migrate creates or updates the schema. When reset is true the tables are
// dropped first.
func Migrate(db *gorm.DB, reset bool) error {
	if reset {
		// Contacts reference users, so drop them first.
		if err := db.Migrator().DropTable(&model.Contact{}, &model.User{}); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}
	}
	if err := db.AutoMigrate(&model.User{}, &model.Contact{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	// MySQL's default collation compares case-insensitively, which would make
	// "Ada" and "ada" collide on the unique index.
	if db.Dialector.Name() == config.DriverMySQL {
		if err := db.Exec("ALTER TABLE users MODIFY username VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL").Error; err != nil {
			return fmt.Errorf("set username collation: %w", err)
		}
	}
	return nil
}

// Ping checks that the underlying connection pool can reach the database.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
