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

const defaultSyncInterval = 5 * time.Second

// SyncCoordinator drives the wallet scan against the connected node and is
// the only writer of the readiness flag.
//
// Transitions (BeginSync, StopSync) are serialized by tmu. Each scan loop
// carries the generation it was started with; anything it reports after a
// newer generation began is dropped.
type SyncCoordinator struct {
	wallet   ports.Wallet
	bus      *events.Bus
	interval time.Duration
	log      zerolog.Logger

	tmu sync.Mutex

	mu       sync.RWMutex
	state    domain.SyncState
	resolved bool
	gen      uint64
	cancel   context.CancelFunc
	done     chan struct{}
	tip      uint64
	balance  *domain.Balance
	// seen maps announced outputs to their block height (0 while pooled).
	seen map[string]uint64

	readiness *events.Feed[bool]
}

// NewSyncCoordinator creates a SyncCoordinator. A non-positive interval
// falls back to five seconds.
func NewSyncCoordinator(wallet ports.Wallet, bus *events.Bus, interval time.Duration, log zerolog.Logger) *SyncCoordinator {
	if interval <= 0 {
		interval = defaultSyncInterval
	}
	return &SyncCoordinator{
		wallet:    wallet,
		bus:       bus,
		interval:  interval,
		log:       log,
		seen:      make(map[string]uint64),
		readiness: events.NewLatestFeed[bool](8),
	}
}

// BeginSync binds the wallet to conn and starts a new scan cycle. The restore
// height is resolved from the node on the first sync or when a fresh restore
// is requested; otherwise scanning resumes from the retained scan height.
// Readiness is false when BeginSync returns.
func (c *SyncCoordinator) BeginSync(ctx context.Context, conn ports.NodeConnection, opts ports.SyncOptions) error {
	c.tmu.Lock()
	defer c.tmu.Unlock()

	c.stopLoop()

	if err := c.wallet.SetDaemon(ctx, conn.Endpoint()); err != nil {
		return apperror.ErrConnection(fmt.Errorf("set daemon: %w", err))
	}

	c.mu.RLock()
	start := c.state.ScanHeight
	restore := !c.resolved || opts.FreshRestore
	c.mu.RUnlock()

	if restore {
		nodeHeight, err := conn.Height(ctx)
		if err != nil {
			return apperror.ErrConnection(fmt.Errorf("query node height: %w", err))
		}
		start = domain.RestoreHeight(nodeHeight)
		if err := c.wallet.SetSyncHeight(ctx, start); err != nil {
			return apperror.ErrConnection(fmt.Errorf("set sync height: %w", err))
		}
		c.log.Info().
			Uint64("node_height", nodeHeight).
			Uint64("restore_height", start).
			Msg("restore height resolved")
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})

	c.mu.Lock()
	if restore {
		c.resolved = true
		c.state.RestoreHeight = start
		c.state.ScanHeight = start
		clear(c.seen)
	}
	c.gen++
	gen := c.gen
	c.resetCycleLocked(start)
	c.state.Syncing = true
	c.cancel = cancel
	c.done = done
	c.mu.Unlock()

	c.log.Info().
		Str("endpoint", conn.Endpoint().Identity()).
		Uint64("start_height", start).
		Uint64("generation", gen).
		Msg("sync started")

	go c.run(loopCtx, gen, conn, done)
	return nil
}

// StopSync halts the scan loop and waits for it to exit. The scan height is
// kept so a later BeginSync resumes. Safe to call repeatedly.
func (c *SyncCoordinator) StopSync() {
	c.tmu.Lock()
	defer c.tmu.Unlock()

	if c.stopLoop() {
		c.log.Info().Msg("sync stopped")
	}
}

// stopLoop cancels and joins the running loop, if any, and clears readiness.
// Callers hold tmu.
func (c *SyncCoordinator) stopLoop() bool {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.gen++
	c.state.Syncing = false
	c.setReadyLocked(false)
	c.mu.Unlock()

	if cancel == nil {
		return false
	}
	cancel()
	<-done
	return true
}

// Ready reports whether the wallet view is caught up with the node.
func (c *SyncCoordinator) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Ready
}

// EverSynced reports whether any sync cycle has reached 100%.
func (c *SyncCoordinator) EverSynced() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.EverSynced
}

// State returns a snapshot of the sync state.
func (c *SyncCoordinator) State() domain.SyncState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// SubscribeReadiness delivers readiness changes. A subscriber that falls
// behind loses its oldest undelivered changes but always receives the latest.
func (c *SyncCoordinator) SubscribeReadiness() (<-chan bool, func()) {
	return c.readiness.Subscribe()
}

func (c *SyncCoordinator) run(ctx context.Context, gen uint64, conn ports.NodeConnection, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	first := true
	for {
		if err := c.step(ctx, gen, conn, first); err != nil {
			if ctx.Err() != nil {
				return
			}
			c.interrupt(gen, err)
			first = true
		} else {
			first = false
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// step performs one refresh and reports its effects. The first step of a
// cycle also refreshes balance and outputs so listeners start from a known
// baseline.
func (c *SyncCoordinator) step(ctx context.Context, gen uint64, conn ports.NodeConnection, first bool) error {
	res, err := c.wallet.Refresh(ctx)
	if err != nil {
		return apperror.ErrSyncInterrupted(fmt.Errorf("refresh wallet: %w", err))
	}
	tip, err := conn.Height(ctx)
	if err != nil {
		return apperror.ErrSyncInterrupted(fmt.Errorf("query node height: %w", err))
	}

	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return nil
	}
	prevScan := c.state.ScanHeight
	c.state.ScanHeight = res.Height
	if tip > c.state.EndHeight {
		c.state.EndHeight = tip
	}
	if c.tip != 0 && tip > c.tip {
		c.bus.NewBlock.Publish(domain.NewBlock{Height: tip})
	}
	if tip > c.tip {
		c.tip = tip
	}

	if !c.state.Ready {
		pct := domain.Percent(res.Height, c.state.StartHeight, c.state.EndHeight)
		if pct > c.state.PercentDone {
			c.state.PercentDone = pct
			c.bus.Progress.Publish(domain.SyncProgress{
				Height:      res.Height,
				StartHeight: c.state.StartHeight,
				EndHeight:   c.state.EndHeight,
				PercentDone: pct,
			})
		}
		if c.state.PercentDone >= 100 {
			c.state.EverSynced = true
			c.setReadyLocked(true)
			c.log.Info().
				Uint64("height", res.Height).
				Uint64("generation", gen).
				Msg("wallet synchronized")
		}
	}
	c.mu.Unlock()

	if first || res.ReceivedMoney {
		c.publishBalance(ctx, gen)
		c.publishOutputs(ctx, gen, prevScan)
	}
	return nil
}

// interrupt revokes readiness after a failed step. The next step begins a new
// cycle from the current scan height.
func (c *SyncCoordinator) interrupt(gen uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	wasReady := c.state.Ready
	c.resetCycleLocked(c.state.ScanHeight)
	c.log.Warn().
		Err(err).
		Bool("was_ready", wasReady).
		Uint64("scan_height", c.state.ScanHeight).
		Msg("sync interrupted")
}

func (c *SyncCoordinator) resetCycleLocked(start uint64) {
	c.state.StartHeight = start
	c.state.EndHeight = start
	c.state.PercentDone = 0
	c.setReadyLocked(false)
}

func (c *SyncCoordinator) setReadyLocked(ready bool) {
	if c.state.Ready == ready {
		return
	}
	c.state.Ready = ready
	c.readiness.Publish(ready)
}

func (c *SyncCoordinator) publishBalance(ctx context.Context, gen uint64) {
	bal, err := c.wallet.Balance(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("balance query failed")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	if c.balance != nil && *c.balance == bal {
		return
	}
	c.balance = &bal
	c.bus.Balance.Publish(domain.BalanceChanged{Balance: bal})
}

func (c *SyncCoordinator) publishOutputs(ctx context.Context, gen uint64, fromHeight uint64) {
	transfers, err := c.wallet.IncomingTransfers(ctx, domain.TransferFilter{
		MinHeight:          fromHeight,
		ExcludeDoubleSpend: true,
		ExcludeFailed:      true,
	})
	if err != nil {
		c.log.Warn().Err(err).Msg("output query failed")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	for _, t := range transfers {
		key := fmt.Sprintf("%s:%s:%d", t.Tx.Hash, t.PaymentID, t.Amount)
		_, ok := c.seen[key]
		c.seen[key] = t.Tx.Height
		if ok {
			continue
		}
		c.bus.Output.Publish(domain.OutputReceived{Transfer: t})
	}
	c.pruneSeenLocked(fromHeight)
}

// pruneSeenLocked forgets mined outputs below fromHeight. Later queries start
// at or above it, so those outputs cannot be reported again.
func (c *SyncCoordinator) pruneSeenLocked(fromHeight uint64) {
	for key, height := range c.seen {
		if height != 0 && height < fromHeight {
			delete(c.seen, key)
		}
	}
}

func (c *SyncCoordinator) seenCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.seen)
}
