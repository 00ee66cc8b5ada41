package setup

import (
	"fmt"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 支持的数据库驱动
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// DBConfig 是打开数据库所需的全部参数
type DBConfig struct {
	Driver          string
	Path            string // 仅 sqlite 使用
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Validate 检查驱动名以及 mysql / postgres 必填的连接信息
func (c DBConfig) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.Path == "" {
			return fmt.Errorf("DB_PATH must be set for driver %q", c.Driver)
		}
	case DriverMySQL, DriverPostgres:
		var missing []string
		if c.Host == "" {
			missing = append(missing, "DB_HOST")
		}
		if c.User == "" {
			missing = append(missing, "DB_USER")
		}
		if c.Name == "" {
			missing = append(missing, "DB_NAME")
		}
		if len(missing) > 0 {
			return fmt.Errorf("driver %q requires %s", c.Driver, strings.Join(missing, ", "))
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want sqlite, mysql or postgres)", c.Driver)
	}
	return nil
}

// Dialector 根据配置构造对应驱动的 gorm.Dialector
func Dialector(c DBConfig) (gorm.Dialector, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	switch c.Driver {
	case DriverMySQL:
		return mysql.Open(mysqlDSN(c)), nil
	case DriverPostgres:
		return postgres.Open(postgresDSN(c)), nil
	default:
		return OpenSQLite(c.Path), nil
	}
}

// mysqlDSN 通过驱动自带的 Config 拼接 DSN，避免手工转义密码
func mysqlDSN(c DBConfig) string {
	mc := mysqldriver.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = c.Host + ":" + orDefault(c.Port, "3306")
	mc.DBName = c.Name
	mc.ParseTime = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

func postgresDSN(c DBConfig) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.Host, c.User, c.Password, c.Name, orDefault(c.Port, "5432"))
}

// InitDB 打开数据库并配置连接池；GORM 自身的日志转发到 log (为 nil 时不输出)
func InitDB(c DBConfig, log *logrus.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(c)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: NewGormLogger(log)})
	if log == nil {
		log = logrus.StandardLogger()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", c.Driver, err)
	}

	sqlDB, err := db.DB() // 获取底层的 *sql.DB 对象
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if c.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(c.ConnMaxLifetime)
	}
	log.WithField("driver", c.Driver).Info("Database connected")
	return db, nil
}

// NewGormLogger 把 GORM 的慢查询和错误日志写入 logrus；log 为 nil 时静默
func NewGormLogger(log *logrus.Logger) logger.Interface {
	if log == nil {
		return logger.Default.LogMode(logger.Silent)
	}
	return logger.New(log.WithField("component", "gorm"), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// CloseDB 关闭底层连接池
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
