package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"careerverse/internal/app"
	"careerverse/internal/config"
	"careerverse/internal/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.App.Environment)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	bootstrap, cleanup, err := app.Bootstrap(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to bootstrap app", zap.Error(err))
	}
	defer func() {
		if err := cleanup(); err != nil {
			zlog.Warn("cleanup error", zap.Error(err))
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		zlog.Fatal("invalid HTTP port", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go bootstrap.Container.Hub.Run()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zlog.Info("http server listening", zap.String("addr", addr))
		return bootstrap.Fiber.Listen(addr)
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return bootstrap.Fiber.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		zlog.Fatal("server error", zap.Error(err))
	}
}
