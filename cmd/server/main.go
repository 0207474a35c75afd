package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kgex/bigbbe/config"
	"github.com/kgex/bigbbe/internal/api/handler"
	"github.com/kgex/bigbbe/internal/api/router"
	"github.com/kgex/bigbbe/internal/repository"
	"github.com/kgex/bigbbe/internal/service"
	"github.com/kgex/bigbbe/pkg/database"
	"github.com/kgex/bigbbe/pkg/filestore"
	"github.com/kgex/bigbbe/pkg/jwt"
	"github.com/kgex/bigbbe/pkg/logger"
	"github.com/kgex/bigbbe/pkg/mailer"
	"github.com/kgex/bigbbe/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	db, err := database.NewDB(&cfg.Database, log)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, log); err != nil {
		return err
	}

	// Redis is optional: without it the token blacklist and rate limits
	// degrade open.
	rdb, err := redis.NewClient(&cfg.Redis, log)
	if err != nil {
		log.Warn("redis unavailable, blacklist and rate limits disabled", zap.Error(err))
		rdb = nil
	} else {
		defer rdb.Close()
	}

	files, err := filestore.New(cfg.Media.Dir)
	if err != nil {
		return err
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)
	mail := mailer.NewSMTPSender(&cfg.Mail)

	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, mail, rdb, files, log)
	h := handler.NewHandler(svc, log)

	engine := router.New(cfg, h, jwtMgr, rdb, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
