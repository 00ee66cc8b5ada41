// Package testutil 提供测试共用的数据库夹具。
package testutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"job-catalog/internal/infra/setup"
)

// NewDB 为每个测试打开一个独立的内存 SQLite 库并建好表，测试结束时关闭。
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(setup.OpenSQLite(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库随最后一个连接关闭而消失，固定单连接
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, setup.MigrateDB(db), "migrate")

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}
