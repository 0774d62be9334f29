package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"simplepay/config"
	"simplepay/internal/adapter/monero"
	pgStorage "simplepay/internal/adapter/storage/postgres"
	redisStorage "simplepay/internal/adapter/storage/redis"
	"simplepay/internal/app"
	"simplepay/internal/core/ports"
	"simplepay/pkg/apperror"
	"simplepay/pkg/logger"
)

func main() {
	configPath := flag.String("config", os.Getenv("SPAY_CONFIG"), "path to the YAML config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", apperror.ErrInvalidConfig(err))
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	app.SetGinMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("network", cfg.Wallet.Network).
		Msg("Starting SimplePay")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Open the view-only wallet
	opener := monero.NewWalletOpener(cfg.Wallet.RPCURI, cfg.Wallet.RPCUsername, cfg.Wallet.RPCPassword, cfg.Wallet.RPCTimeout)
	wallet, primary, err := app.OpenWallet(ctx, opener, cfg.Wallet)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open wallet")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := wallet.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("Failed to close wallet")
		}
	}()
	log.Info().Str("address", primary).Msg("Wallet opened")

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	if err := pgStorage.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate schema")
	}
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	application := app.New(cfg, app.Infra{
		Wallet:     wallet,
		Dialer:     monero.NewDaemonDialer(cfg.Node.Timeout),
		Requests:   pgStorage.NewPaymentRequestRepo(pool),
		IssuedIDs:  redisStorage.NewIssuedIDStore(rdb, primary),
		RateLimits: redisStorage.NewRateLimitStore(rdb),
		HealthCheckers: []ports.HealthChecker{
			pgStorage.NewHealthCheck(pool),
			redisStorage.NewHealthCheck(rdb),
		},
	}, log)

	if err := application.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Server stopped with error")
	}

	log.Info().Msg("Server exited")
}
