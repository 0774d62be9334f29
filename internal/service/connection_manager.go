package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"simplepay/internal/core/domain"
	"simplepay/internal/core/ports"
	"simplepay/internal/events"
	"simplepay/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	defaultCheckInterval = 5 * time.Second
	defaultCheckTimeout  = 40 * time.Second
)

// ConnectionManager keeps exactly one node connection, health-checks it on a
// fixed interval and hands it to the sync controller whenever it becomes
// usable. Check failures only flip the connected flag; checks continue until
// Stop.
type ConnectionManager struct {
	dialer   ports.NodeDialer
	sync     ports.SyncController
	bus      *events.Bus
	interval time.Duration
	timeout  time.Duration
	now      func() time.Time
	log      zerolog.Logger

	// tmu serializes connection transitions with endpoint replacement.
	tmu sync.Mutex

	mu    sync.RWMutex
	conn  ports.NodeConnection
	state domain.ConnectionState

	runMu sync.Mutex
	quit  chan struct{}
	done  chan struct{}
	kick  chan struct{}
}

// NewConnectionManager creates a ConnectionManager. Non-positive durations
// fall back to a 5s interval and a 40s per-check timeout.
func NewConnectionManager(
	dialer ports.NodeDialer,
	syncCtl ports.SyncController,
	bus *events.Bus,
	interval, timeout time.Duration,
	log zerolog.Logger,
) *ConnectionManager {
	if interval <= 0 {
		interval = defaultCheckInterval
	}
	if timeout <= 0 {
		timeout = defaultCheckTimeout
	}
	return &ConnectionManager{
		dialer:   dialer,
		sync:     syncCtl,
		bus:      bus,
		interval: interval,
		timeout:  timeout,
		now:      time.Now,
		log:      log,
		kick:     make(chan struct{}, 1),
	}
}

// SetEndpoint replaces the node endpoint. The previous connection is released
// before the new one is dialed, and an immediate check is scheduled when the
// manager is running.
func (m *ConnectionManager) SetEndpoint(endpoint domain.Endpoint) error {
	if endpoint.URI == "" {
		return apperror.ErrNoEndpoint()
	}

	m.tmu.Lock()
	defer m.tmu.Unlock()

	m.mu.Lock()
	old := m.conn
	wasConnected := m.state.Connected
	m.conn = nil
	m.state.Connected = false
	m.mu.Unlock()

	if wasConnected {
		m.sync.StopSync()
		m.publish()
	}
	if old != nil {
		if err := old.Close(); err != nil {
			m.log.Warn().Err(err).Str("endpoint", old.Endpoint().Identity()).Msg("closing previous node connection")
		}
	}

	conn, err := m.dialer.Dial(endpoint)
	if err != nil {
		return apperror.ErrConnection(fmt.Errorf("dial %s: %w", endpoint.Identity(), err))
	}

	m.mu.Lock()
	m.conn = conn
	m.state.Endpoint = endpoint.Identity()
	m.mu.Unlock()

	m.log.Info().Str("endpoint", endpoint.Identity()).Msg("node endpoint set")

	select {
	case m.kick <- struct{}{}:
	default:
	}
	return nil
}

// Start begins periodic health checks. The first check runs immediately.
// Calling Start on a running manager does nothing.
func (m *ConnectionManager) Start(ctx context.Context) {
	m.runMu.Lock()
	defer m.runMu.Unlock()
	if m.quit != nil {
		return
	}
	m.quit = make(chan struct{})
	m.done = make(chan struct{})
	go m.run(ctx, m.quit, m.done)
	m.log.Info().
		Dur("interval", m.interval).
		Dur("timeout", m.timeout).
		Msg("connection checks started")
}

// Stop halts health checks and sync. It returns after the check loop has
// exited and is safe to call repeatedly.
func (m *ConnectionManager) Stop() {
	m.runMu.Lock()
	quit, done := m.quit, m.done
	m.quit, m.done = nil, nil
	m.runMu.Unlock()

	if quit != nil {
		close(quit)
		<-done
	}

	m.tmu.Lock()
	defer m.tmu.Unlock()

	m.mu.Lock()
	wasConnected := m.state.Connected
	m.state.Connected = false
	m.mu.Unlock()

	m.sync.StopSync()
	if wasConnected {
		m.publish()
	}
}

// Close stops the manager and releases the current connection.
func (m *ConnectionManager) Close() error {
	m.Stop()

	m.tmu.Lock()
	defer m.tmu.Unlock()
	m.mu.Lock()
	conn := m.conn
	m.conn = nil
	m.mu.Unlock()
	if conn == nil {
		return nil
	}
	return conn.Close()
}

// State returns a snapshot of the connection state.
func (m *ConnectionManager) State() domain.ConnectionState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *ConnectionManager) run(ctx context.Context, quit, done chan struct{}) {
	defer close(done)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		m.check(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-m.kick:
		}
	}
}

// check pings the current connection with a bounded timeout. A timeout is
// treated the same as any other failure.
func (m *ConnectionManager) check(ctx context.Context) {
	m.mu.RLock()
	conn := m.conn
	m.mu.RUnlock()
	if conn == nil {
		m.log.Debug().Msg("no node endpoint configured, skipping check")
		return
	}

	checkCtx, cancel := context.WithTimeout(ctx, m.timeout)
	err := conn.Ping(checkCtx)
	if ctx.Err() != nil {
		cancel()
		return
	}
	m.apply(checkCtx, conn, err)
	cancel()
}

// apply records a check outcome. On the transition to connected the sync
// controller is started before the event is published; on the transition to
// disconnected it is stopped.
func (m *ConnectionManager) apply(ctx context.Context, conn ports.NodeConnection, pingErr error) {
	m.tmu.Lock()
	defer m.tmu.Unlock()

	m.mu.RLock()
	stale := m.conn != conn
	was := m.state.Connected
	m.mu.RUnlock()
	if stale {
		return
	}

	connected := pingErr == nil
	endpoint := conn.Endpoint().Identity()

	switch {
	case connected && !was:
		if err := m.sync.BeginSync(ctx, conn, ports.SyncOptions{}); err != nil {
			m.log.Warn().Err(err).Str("endpoint", endpoint).Msg("node reachable but sync could not start")
			connected = false
		} else {
			m.log.Info().Str("endpoint", endpoint).Msg("node connected")
		}
	case !connected && was:
		m.sync.StopSync()
		m.log.Warn().Err(pingErr).Str("endpoint", endpoint).Msg("node disconnected")
	case !connected:
		m.log.Debug().Err(pingErr).Str("endpoint", endpoint).Msg("node still unreachable")
	}

	m.mu.Lock()
	m.state.Connected = connected
	m.state.CheckedAt = m.now()
	m.mu.Unlock()

	m.publish()
}

func (m *ConnectionManager) publish() {
	st := m.State()
	m.bus.Connection.Publish(domain.ConnectionChanged{
		Connected: st.Connected,
		Endpoint:  st.Endpoint,
		At:        st.CheckedAt,
	})
}
