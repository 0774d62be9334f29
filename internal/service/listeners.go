package service

import (
	"context"
	"math"
	"sync"

	"simplepay/internal/core/domain"
	"simplepay/internal/events"
	"simplepay/pkg/amount"

	"github.com/rs/zerolog"
)

// Listeners handle one event category each. Listeners.Start wires them to a
// bus.

// ProgressLogger logs sync progress, at most once per 10% step.
type ProgressLogger struct {
	log    zerolog.Logger
	bucket int
}

// NewProgressLogger creates a new ProgressLogger.
func NewProgressLogger(log zerolog.Logger) *ProgressLogger {
	return &ProgressLogger{log: log, bucket: -1}
}

// Handle logs ev when it reaches a new 10% step or completes the sync.
func (l *ProgressLogger) Handle(ev domain.SyncProgress) {
	b := int(math.Floor(ev.PercentDone / 10))
	if ev.PercentDone < 100 && b <= l.bucket {
		return
	}
	if ev.PercentDone < 100 {
		l.bucket = b
	} else {
		l.bucket = -1
	}
	l.log.Info().
		Uint64("height", ev.Height).
		Uint64("start_height", ev.StartHeight).
		Uint64("end_height", ev.EndHeight).
		Float64("percent", math.Round(ev.PercentDone*100)/100).
		Msg("sync progress")
}

// ConnectionLogger logs connection transitions. Repeated outcomes of the
// same kind are not logged again.
type ConnectionLogger struct {
	log   zerolog.Logger
	known bool
	last  bool
}

// NewConnectionLogger creates a new ConnectionLogger.
func NewConnectionLogger(log zerolog.Logger) *ConnectionLogger {
	return &ConnectionLogger{log: log}
}

// Handle logs ev if it changes the connection state.
func (l *ConnectionLogger) Handle(ev domain.ConnectionChanged) {
	if l.known && l.last == ev.Connected {
		return
	}
	l.known, l.last = true, ev.Connected
	if ev.Connected {
		l.log.Info().Str("endpoint", ev.Endpoint).Msg("node connection up")
		return
	}
	l.log.Warn().Str("endpoint", ev.Endpoint).Msg("node connection down")
}

// BalanceTracker keeps the most recent wallet balance.
type BalanceTracker struct {
	mu  sync.RWMutex
	bal domain.Balance
	log zerolog.Logger
}

// NewBalanceTracker creates a new BalanceTracker.
func NewBalanceTracker(log zerolog.Logger) *BalanceTracker {
	return &BalanceTracker{log: log}
}

// Handle records and logs the new balance.
func (t *BalanceTracker) Handle(ev domain.BalanceChanged) {
	t.mu.Lock()
	t.bal = ev.Balance
	t.mu.Unlock()

	t.log.Info().
		Str("total", amount.Format(amount.FromAtomic(ev.Balance.Total))).
		Str("unlocked", amount.Format(amount.FromAtomic(ev.Balance.Unlocked))).
		Msg("wallet balance changed")
}

// Snapshot returns the last observed balance.
func (t *BalanceTracker) Snapshot() domain.Balance {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.bal
}

// OutputLogger logs every received output.
type OutputLogger struct {
	log zerolog.Logger
}

// NewOutputLogger creates a new OutputLogger.
func NewOutputLogger(log zerolog.Logger) *OutputLogger {
	return &OutputLogger{log: log}
}

// Handle logs the received output.
func (l *OutputLogger) Handle(ev domain.OutputReceived) {
	t := ev.Transfer
	l.log.Info().
		Str("tx_hash", t.Tx.Hash).
		Str("payment_id", t.PaymentID).
		Str("amount", amount.Format(amount.FromAtomic(t.Amount))).
		Uint64("confirmations", t.Tx.Confirmations).
		Uint64("height", t.Tx.Height).
		Msg("output received")
}

// Listeners bundles the per-category handlers.
type Listeners struct {
	Progress   *ProgressLogger
	Connection *ConnectionLogger
	Balance    *BalanceTracker
	Output     *OutputLogger
}

// NewListeners creates the default handler set.
func NewListeners(log zerolog.Logger) *Listeners {
	return &Listeners{
		Progress:   NewProgressLogger(log),
		Connection: NewConnectionLogger(log),
		Balance:    NewBalanceTracker(log),
		Output:     NewOutputLogger(log),
	}
}

// Start subscribes every handler to its feed and consumes events in the
// background until ctx is done or the bus is closed. The returned func waits
// for the consumers to exit.
func (l *Listeners) Start(ctx context.Context, bus *events.Bus) (wait func()) {
	progress, cancelProgress := bus.Progress.Subscribe()
	conns, cancelConns := bus.Connection.Subscribe()
	balances, cancelBalances := bus.Balance.Subscribe()
	outputs, cancelOutputs := bus.Output.Subscribe()

	var wg sync.WaitGroup
	wg.Add(4)
	go func() { defer wg.Done(); defer cancelProgress(); events.Consume(ctx, progress, l.Progress.Handle) }()
	go func() { defer wg.Done(); defer cancelConns(); events.Consume(ctx, conns, l.Connection.Handle) }()
	go func() { defer wg.Done(); defer cancelBalances(); events.Consume(ctx, balances, l.Balance.Handle) }()
	go func() { defer wg.Done(); defer cancelOutputs(); events.Consume(ctx, outputs, l.Output.Handle) }()
	return wg.Wait
}
