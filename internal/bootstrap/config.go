package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"job-catalog/internal/infra/setup"
)

// Config 结构体用于存储从环境变量或 .env 文件加载的配置
type Config struct {
	AppEnv   string // development / production
	LogLevel string

	ServerPort      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	DB setup.DBConfig

	RedisAddr     string // 为空时不启用限流
	RedisPassword string
	RedisDB       int
	KeyPrefix     string // Redis Key 前缀

	RateLimitMax    int
	RateLimitWindow time.Duration

	CORSAllowedOrigin string
	SearchCaseFold    bool
}

// LoadConfig 先加载 envFile (为空时尝试 .env，不存在则忽略)，再从环境变量读取配置
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load() // 忽略错误，允许只使用环境变量
	}

	var errs []string
	cfg := &Config{
		AppEnv:   getEnvString("APP_ENV", "development"),
		LogLevel: getEnvString("LOG_LEVEL", "info"),

		ServerPort:      getEnvString("SERVER_PORT", "8000"),
		ReadTimeout:     getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second, &errs),
		WriteTimeout:    getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second, &errs),
		IdleTimeout:     getEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second, &errs),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second, &errs),

		DB: setup.DBConfig{
			Driver:          strings.ToLower(getEnvString("DB_DRIVER", setup.DriverSQLite)),
			Path:            getEnvString("DB_PATH", "job_catalog.db"),
			Host:            os.Getenv("DB_HOST"),
			Port:            os.Getenv("DB_PORT"),
			User:            os.Getenv("DB_USER"),
			Password:        os.Getenv("DB_PASSWORD"),
			Name:            os.Getenv("DB_NAME"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 50, &errs),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 10, &errs),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute, &errs),
		},

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0, &errs),
		KeyPrefix:     getEnvString("REDIS_KEY_PREFIX", "jc:"),

		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 100, &errs),
		RateLimitWindow: getEnvDuration("RATE_LIMIT_WINDOW", time.Second, &errs),

		CORSAllowedOrigin: getEnvString("CORS_ALLOWED_ORIGIN", "*"),
		SearchCaseFold:    getEnvBool("SEARCH_CASE_FOLD", false, &errs),
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}

	// 验证日志级别
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", cfg.LogLevel)
		cfg.LogLevel = "info" // 修正配置值
	}
	if err := cfg.DB.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}
	if cfg.RedisAddr != "" && (cfg.RateLimitMax <= 0 || cfg.RateLimitWindow <= 0) {
		return nil, fmt.Errorf("RATE_LIMIT_MAX and RATE_LIMIT_WINDOW must be positive when REDIS_ADDR is set")
	}

	return cfg, nil
}

// IsProduction 判断是否运行在生产环境
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnvString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int, errs *[]string) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("%s=%q is not an integer", key, v))
		return def
	}
	return n
}

func getEnvBool(key string, def bool, errs *[]string) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("%s=%q is not a boolean", key, v))
		return def
	}
	return b
}

func getEnvDuration(key string, def time.Duration, errs *[]string) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("%s=%q is not a duration", key, v))
		return def
	}
	return d
}
