package db_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactbook/internal/config"
	"contactbook/internal/db"
	"contactbook/internal/db/dbtest"
	"contactbook/internal/model"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	gormDB, err := db.Open("oracle", "whatever", slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Error(t, err)
	assert.Nil(t, gormDB)
}

func TestMigrate_CreatesTables(t *testing.T) {
	gormDB := dbtest.New(t)

	assert.True(t, gormDB.Migrator().HasTable(&model.User{}))
	assert.True(t, gormDB.Migrator().HasTable(&model.Contact{}))
	assert.True(t, gormDB.Migrator().HasIndex(&model.User{}, "idx_users_username"))
}

func TestMigrate_ResetDropsData(t *testing.T) {
	gormDB := dbtest.New(t)
	require.NoError(t, gormDB.Create(&model.User{Username: "ada", PasswordHash: "x"}).Error)

	require.NoError(t, db.Migrate(gormDB, true))

	var count int64
	require.NoError(t, gormDB.Model(&model.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPing(t *testing.T) {
	gormDB := dbtest.New(t)

	assert.NoError(t, db.Ping(context.Background(), gormDB))
}

func TestOpen_LogsThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gormDB, err := db.Open(config.DriverSQLite, dsn, slog.New(slog.NewJSONHandler(&buf, nil)))
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.Migrate(gormDB, false))
	buf.Reset()

	var user model.User
	err = gormDB.Where("username = ?", "nobody").First(&user).Error
	require.Error(t, err)
	assert.Empty(t, buf.String(), "a miss is not worth a log line")

	err = gormDB.Exec("SELECT * FROM no_such_table").Error
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}
