// @title        Fashion Store API
// @version      1.0
// @description  這是 Fashion Store 的後端 API 文件
// @host         localhost:3000
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fashion-store/internal/cache"
	"fashion-store/internal/config"
	"fashion-store/internal/database"
	"fashion-store/internal/events"
	"fashion-store/internal/logging"
	appmw "fashion-store/internal/middleware"
	"fashion-store/internal/router"
	"fashion-store/internal/service"
	"fashion-store/internal/store"
	"fashion-store/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "fashion-store/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	eventQueueSize  = 256
	shutdownTimeout = 10 * time.Second
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackFn      = database.RollbackAll
	newPublisher    = events.New
	newWorkerPool   = worker.NewPool
	startServer     = serveUntilSignal
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig(".env")
	if err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	pub := newPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer pub.Close()

	// 先停止 worker pool，讓排隊中的事件在 publisher 關閉前送出
	wp := newWorkerPool(cfg.WorkerCount, eventQueueSize)
	defer wp.Stop()

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	pg := store.NewPostgres(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(appmw.RequestLogger(logger))
	e.Use(middleware.CORS())

	router.Setup(e, router.Deps{
		DB:       db,
		Cache:    rdb,
		Tokens:   tokens,
		Accounts: service.NewAccounts(pg, tokens),
		Catalog:  service.NewCatalog(pg, rdb, cfg.CacheTTL, pub, wp),
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	logger.Info("server starting", "addr", cfg.Addr(), "kafka_enabled", len(cfg.KafkaBrokers) > 0)
	return startServer(e, cfg.Addr())
}

// serveUntilSignal 啟動 echo，收到 SIGINT/SIGTERM 後優雅關閉
func serveUntilSignal(e *echo.Echo, addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// rollback 將 schema 回滾到空資料庫
func rollback() error {
	cfg, err := loadConfig(".env")
	if err != nil {
		return err
	}
	if err := rollbackFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 回滾失敗: %w", err)
	}
	slog.Info("migrations rolled back")
	return nil
}

func main() {
	cmd := run
	if len(os.Args) > 1 && os.Args[1] == "rollback" {
		cmd = rollback
	}
	if err := cmd(); err != nil {
		slog.Error("service stopped", "error", err)
		exitFunc(1)
	}
}
