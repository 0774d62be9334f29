package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"simplepay/config"
	httpHandler "simplepay/internal/adapter/http/handler"
	"simplepay/internal/adapter/http/middleware"
	"simplepay/internal/adapter/metrics"
	"simplepay/internal/core/domain"
	"simplepay/internal/core/ports"
	"simplepay/internal/events"
	"simplepay/internal/service"
	"simplepay/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Infra bundles the resources the application runs on but does not own.
// The caller opens them before New and closes them after Run returns.
type Infra struct {
	Wallet         ports.Wallet
	Dialer         ports.NodeDialer
	Requests       ports.PaymentRequestRepository
	IssuedIDs      ports.IssuedIDStore       // nil = ids are not cross-checked
	RateLimits     middleware.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
}

// App is the assembled payment tracker: one wallet, one node connection and
// the HTTP surface in front of them.
type App struct {
	cfg *config.Config
	log zerolog.Logger

	Bus         *events.Bus
	Sync        *service.SyncCoordinator
	Connections *service.ConnectionManager
	Listeners   *service.Listeners
	Metrics     *metrics.Collector
	Registry    *prometheus.Registry
	Handler     http.Handler
}

// New wires the services on top of infra. Nothing runs until Start or Run.
func New(cfg *config.Config, infra Infra, log zerolog.Logger) *App {
	bus := events.NewBus()
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	coord := service.NewSyncCoordinator(infra.Wallet, bus, cfg.Sync.Interval, logger.Component(log, "sync"))
	conns := service.NewConnectionManager(
		infra.Dialer,
		coord,
		bus,
		cfg.Node.CheckInterval,
		cfg.Node.Timeout,
		logger.Component(log, "connection"),
	)
	listeners := service.NewListeners(logger.Component(log, "wallet"))
	collector := metrics.NewCollector(reg)

	factory := service.NewPaymentRequestFactory(
		infra.Wallet,
		coord,
		infra.IssuedIDs,
		cfg.Wallet.DefaultConfirmations,
		logger.Component(log, "factory"),
	)
	matcher := service.NewPaymentMatcher(infra.Wallet, coord, collector, logger.Component(log, "matcher"))
	paymentSvc := service.NewPaymentService(factory, matcher, infra.Requests, logger.Component(log, "payments"))
	nodeSvc := service.NewNodeService(conns, coord, listeners.Balance)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	checkers := append([]ports.HealthChecker{}, infra.HealthCheckers...)
	checkers = append(checkers, service.NewNodeHealthCheck(conns))

	deps := httpHandler.RouterDeps{
		PaymentSvc:     paymentSvc,
		NodeSvc:        nodeSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: infra.RateLimits,
		HealthCheckers: checkers,
		Logger:         logger.Component(log, "http"),
	}
	if cfg.Metrics.Enabled {
		deps.Metrics = metrics.Handler(reg)
		deps.MetricsPath = cfg.Metrics.Path
	}

	return &App{
		cfg:         cfg,
		log:         log,
		Bus:         bus,
		Sync:        coord,
		Connections: conns,
		Listeners:   listeners,
		Metrics:     collector,
		Registry:    reg,
		Handler:     httpHandler.SetupRouter(deps),
	}
}

// Start attaches the listeners, points the connection manager at the
// configured node and begins health checks. The returned stop func halts
// everything Start began and waits for it; it is safe to call more than once.
func (a *App) Start(ctx context.Context) (stop func(), err error) {
	runCtx, cancel := context.WithCancel(ctx)
	waitListeners := a.Listeners.Start(runCtx, a.Bus)
	waitMetrics := a.Metrics.Start(runCtx, a.Bus, a.Sync)

	var once sync.Once
	stop = func() {
		once.Do(func() {
			if err := a.Connections.Close(); err != nil {
				a.log.Warn().Err(err).Msg("closing node connection")
			}
			cancel()
			a.Bus.Close()
			waitListeners()
			waitMetrics()
		})
	}

	endpoint := domain.Endpoint{
		URI:      a.cfg.Node.URI,
		Username: a.cfg.Node.Username,
		Password: a.cfg.Node.Password,
	}
	if err := a.Connections.SetEndpoint(endpoint); err != nil {
		stop()
		return nil, fmt.Errorf("set node endpoint: %w", err)
	}
	a.Connections.Start(runCtx)
	return stop, nil
}

// Run starts the application and serves HTTP until ctx is done, then shuts
// the server down gracefully and stops the background work.
func (a *App) Run(ctx context.Context) error {
	stop, err := a.Start(ctx)
	if err != nil {
		return err
	}
	defer stop()

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.log.Info().Msg("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// SetGinMode applies the configured server mode, defaulting to release for
// unknown values.
func SetGinMode(mode string) {
	switch mode {
	case gin.DebugMode, gin.TestMode:
		gin.SetMode(mode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
}
