package setup

import (
	"database/sql"
	"strings"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	sqliteDriverName = "sqlite3_catalog"

	// SQLiteLowerFunc 注册在每个 SQLite 连接上，按 Unicode 规则转小写。
	// SQLite 内置的 LOWER 只处理 ASCII 字母。
	SQLiteLowerFunc = "unicode_lower"
)

func init() {
	sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc(SQLiteLowerFunc, strings.ToLower, true)
		},
	})
}

// OpenSQLite 用带 unicode_lower 的驱动打开 SQLite
func OpenSQLite(dsn string) gorm.Dialector {
	return sqlite.New(sqlite.Config{DriverName: sqliteDriverName, DSN: dsn})
}
