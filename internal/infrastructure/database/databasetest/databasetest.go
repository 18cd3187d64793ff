// Package databasetest opens migrated in-memory SQLite databases for tests.
package databasetest

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jan-server/services/chat-api/internal/infrastructure/database"
)

// foreignKeysDSN opens a private in-memory database with foreign key
// enforcement, which SQLite leaves off by default.
const foreignKeysDSN = "file::memory:?_foreign_keys=on"

// Open returns a fresh database with the chat schema applied. The pool is
// limited to one connection because every SQLite in-memory connection owns a
// separate database.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open(foreignKeysDSN), gormlogger.Silent)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	require.Equal(t, 1, enabled, "foreign keys must be enforced")

	require.NoError(t, database.AutoMigrate(context.Background(), db, zerolog.Nop()))
	return db
}
