package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	httpHandler "job-catalog/internal/handler/http"
	gormpersistence "job-catalog/internal/infra/persistence/gorm"
	"job-catalog/internal/infra/setup"
	"job-catalog/internal/middleware"
	"job-catalog/internal/service"
	"job-catalog/internal/web"
)

// App 结构体包含应用的所有组件和配置
type App struct {
	Config      *Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client // 未配置 REDIS_ADDR 时为 nil
	Router      *gin.Engine
	HttpServer  *http.Server
}

// NewApp 创建并初始化应用的所有组件
func NewApp(cfg *Config, log *logrus.Logger) (*App, error) {
	// 1. 初始化基础设施
	log.Info("Initializing infrastructure...")
	db, err := setup.InitDB(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to init DB: %w", err)
	}

	if err := setup.MigrateDB(db); err != nil {
		_ = setup.CloseDB(db)
		return nil, fmt.Errorf("failed to migrate DB: %w", err)
	}
	log.Info("Database migrated")

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err = setup.InitRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		cancel()
		if err != nil {
			_ = setup.CloseDB(db)
			return nil, fmt.Errorf("failed to init Redis: %w", err)
		}
		log.Info("Redis client initialized, rate limiting enabled")
	} else {
		log.Info("REDIS_ADDR not set, rate limiting disabled")
	}

	// 2. 组装路由
	router, err := NewRouter(cfg, log, db, redisClient)
	if err != nil {
		_ = setup.CloseDB(db)
		if redisClient != nil {
			_ = redisClient.Close()
		}
		return nil, err
	}

	// 3. 初始化 HTTP Server
	httpServer := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	log.Info("Application assembled successfully")
	return &App{
		Config:      cfg,
		Log:         log,
		DB:          db,
		RedisClient: redisClient,
		Router:      router,
		HttpServer:  httpServer,
	}, nil
}

// NewRouter 组装 repositories -> services -> handlers 并注册全部路由。
// redisClient 为 nil 时不挂载限流中间件。
func NewRouter(cfg *Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) (*gin.Engine, error) {
	matcher := gormpersistence.NewMatcher(db, cfg.SearchCaseFold)
	vacancyRepo := gormpersistence.NewGormVacancyRepository(db, matcher)
	resumeRepo := gormpersistence.NewGormResumeRepository(db, matcher)

	vacancyService := service.NewVacancyService(vacancyRepo)
	resumeService := service.NewResumeService(resumeRepo)

	vacancyHandler := httpHandler.NewVacancyHandler(vacancyService)
	resumeHandler := httpHandler.NewResumeHandler(resumeService)
	healthHandler := httpHandler.NewHealthHandler(db)

	if gin.Mode() != gin.TestMode {
		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		} else {
			gin.SetMode(gin.DebugMode)
		}
	}
	router := gin.New()
	// 带与不带结尾斜杠的路由都显式注册，避免 POST 被 307 重定向
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(LoggerMiddleware(log))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigin))

	router.GET("/healthz", healthHandler.Check)
	if err := web.Register(router); err != nil {
		return nil, fmt.Errorf("failed to register pages: %w", err)
	}

	api := router.Group("")
	if redisClient != nil {
		api.Use(middleware.RateLimit(redisClient, cfg.KeyPrefix, cfg.RateLimitMax, cfg.RateLimitWindow))
	}
	httpHandler.RegisterRoutes(api, vacancyHandler, resumeHandler)

	log.Info("Router setup complete")
	return router, nil
}

// Start 在后台启动 HTTP 服务器；监听失败时错误写入返回的 channel
func (a *App) Start() <-chan error {
	errCh := make(chan error, 1)
	go func() {
		a.Log.Infof("HTTP server starting to listen on %s", a.HttpServer.Addr)
		if err := a.HttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
		close(errCh)
		a.Log.Info("HTTP server stopped listening.")
	}()
	return errCh
}

// Shutdown 优雅地关闭应用：先停 HTTP 服务器，再关闭 Redis 与数据库连接
func (a *App) Shutdown() {
	a.Log.Info("Shutting down application...")

	// 1. 优雅关闭 HTTP 服务器
	ctx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	if err := a.HttpServer.Shutdown(ctx); err != nil {
		a.Log.Errorf("Error shutting down HTTP server: %v", err)
	} else {
		a.Log.Info("HTTP server shut down gracefully.")
	}

	// 2. 关闭 Redis 连接
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Log.Errorf("Error closing Redis connection: %v", err)
		} else {
			a.Log.Info("Redis connection closed.")
		}
	}

	// 3. 关闭数据库连接池
	if a.DB != nil {
		if err := setup.CloseDB(a.DB); err != nil {
			a.Log.Errorf("Error closing database connection: %v", err)
		} else {
			a.Log.Info("Database connection closed.")
		}
	}

	a.Log.Info("Application shutdown complete.")
}
