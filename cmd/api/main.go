package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/btcwallet/btcwallet-service/internal/config"
	"github.com/btcwallet/btcwallet-service/internal/infra"
	"github.com/btcwallet/btcwallet-service/internal/logging"
	"github.com/btcwallet/btcwallet-service/internal/server"
	"github.com/btcwallet/btcwallet-service/internal/wallet"
)

func main() {
	// A missing .env is normal outside local development.
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.AppName)
	if envErr != nil {
		logger.Debug("no .env file loaded", "error", envErr)
	}

	ctx := context.Background()

	var cache *redis.Client
	if cfg.CacheEnabled() {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		cache, err = infra.NewRedisClient(pingCtx, cfg.RedisURL)
		cancel()
		if err != nil {
			logger.Error("connect redis", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := cache.Close(); err != nil {
				logger.Warn("close redis", "error", err)
			}
		}()
	}

	store := wallet.NewMemoryStore(wallet.DefaultWallets(time.Now()))

	srv, err := server.New(cfg, store, cache, logger)
	if err != nil {
		logger.Error("build server", "error", err)
		os.Exit(1)
	}

	srvErrCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Address(), "env", cfg.AppEnv, "cache", cfg.CacheEnabled())
		srvErrCh <- srv.Listen()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-srvErrCh:
		if err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownPeriod)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited cleanly")
}
