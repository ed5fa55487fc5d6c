package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"summer-success/tracker/config"
	"summer-success/tracker/internal/api/handler"
	"summer-success/tracker/internal/api/router"
	"summer-success/tracker/internal/repository"
	"summer-success/tracker/internal/service"
	"summer-success/tracker/pkg/database"
	"summer-success/tracker/pkg/jwt"
	applogger "summer-success/tracker/pkg/logger"
	"summer-success/tracker/pkg/redis"
)

func main() {
	// 1. config
	cfg, v, err := config.LoadWatched(os.Getenv("TRACKER_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logger
	logger, atom, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting summer success tracker",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
		zap.String("timezone", cfg.Tracker.Timezone),
	)

	// 3. database
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("get sql.DB failed", zap.Error(err))
	}
	if cfg.Database.Driver == database.DriverPostgres {
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			logger.Fatal("migrations failed", zap.Error(err))
		}
	}

	// 4. redis is optional; without it logout revocation, rate limiting and
	// cross-instance celebration flags are disabled
	var rdb *redis.Client
	deps := service.Deps{}
	if cfg.Redis.Enabled {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("redis unavailable, running without it", zap.Error(err))
			rdb = nil
		}
	}
	if rdb != nil {
		deps.Blacklist = rdb
		deps.Celebrations = service.NewRedisCelebrationStore(rdb, cfg.Tracker.CelebrationTTL)
	}
	if cfg.Auth.ParentPasswordHash == "" {
		logger.Warn("auth.parent_password_hash is empty, parent login is disabled")
	}

	// 5. Repository → Service → Handler
	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, deps, logger)
	h := handler.NewHandler(svc)

	// 6. router
	engine, err := router.Setup(cfg, h, jwtMgr, rdb, sqlDB, logger)
	if err != nil {
		logger.Fatal("router setup failed", zap.Error(err))
	}

	// 7. live log level
	config.Watch(v, func(next *config.Config, e fsnotify.Event) {
		if applogger.SetLevel(atom, next.Log.Level) {
			logger.Info("config reloaded", zap.String("file", e.Name), zap.String("log_level", next.Log.Level))
		}
	})

	// 8. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	if err := sqlDB.Close(); err != nil {
		logger.Warn("close database failed", zap.Error(err))
	}
	if rdb != nil {
		_ = rdb.Close()
	}

	logger.Info("server stopped")
}
