package service

import (
	"context"
	"errors"
	"sync"

	"simplepay/internal/core/domain"
	"simplepay/internal/core/ports"
)

// fakeWallet is an in-memory ports.Wallet whose scan height is driven by the
// test.
type fakeWallet struct {
	mu          sync.Mutex
	height      uint64
	syncHeights []uint64
	daemons     []domain.Endpoint
	refreshes   int
	refreshErr  error
	daemonErr   error
	received    bool
	balance     domain.Balance
	transfers   []domain.IncomingTransfer
}

func (w *fakeWallet) PrimaryAddress(context.Context) (string, error) { return "4PrimaryAddress", nil }

func (w *fakeWallet) SetDaemon(_ context.Context, endpoint domain.Endpoint) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.daemonErr != nil {
		return w.daemonErr
	}
	w.daemons = append(w.daemons, endpoint)
	return nil
}

func (w *fakeWallet) SetSyncHeight(_ context.Context, height uint64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.syncHeights = append(w.syncHeights, height)
	w.height = height
	return nil
}

func (w *fakeWallet) Refresh(context.Context) (domain.RefreshResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.refreshes++
	if w.refreshErr != nil {
		return domain.RefreshResult{}, w.refreshErr
	}
	res := domain.RefreshResult{Height: w.height, ReceivedMoney: w.received}
	w.received = false
	return res, nil
}

func (w *fakeWallet) Height(context.Context) (uint64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.height, nil
}

func (w *fakeWallet) IncomingTransfers(_ context.Context, filter domain.TransferFilter) ([]domain.IncomingTransfer, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []domain.IncomingTransfer
	for _, t := range w.transfers {
		if filter.PaymentID != "" && t.PaymentID != filter.PaymentID {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (w *fakeWallet) MakeIntegratedAddress(context.Context) (domain.IntegratedAddress, error) {
	return domain.IntegratedAddress{}, errors.New("not supported by fake")
}

func (w *fakeWallet) Balance(context.Context) (domain.Balance, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance, nil
}

func (w *fakeWallet) Close(context.Context) error { return nil }

func (w *fakeWallet) setHeight(h uint64) {
	w.mu.Lock()
	w.height = h
	w.mu.Unlock()
}

func (w *fakeWallet) setRefreshErr(err error) {
	w.mu.Lock()
	w.refreshErr = err
	w.mu.Unlock()
}

func (w *fakeWallet) receive(t domain.IncomingTransfer, bal domain.Balance) {
	w.mu.Lock()
	w.transfers = append(w.transfers, t)
	w.balance = bal
	w.received = true
	w.mu.Unlock()
}

func (w *fakeWallet) refreshCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.refreshes
}

func (w *fakeWallet) syncHeightCalls() []uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]uint64(nil), w.syncHeights...)
}

// fakeConn is a ports.NodeConnection with a test-controlled tip and health.
type fakeConn struct {
	endpoint domain.Endpoint

	mu      sync.Mutex
	tip     uint64
	pingErr error
	closed  bool
	block   chan struct{}
}

func newFakeConn(uri string, tip uint64) *fakeConn {
	return &fakeConn{endpoint: domain.Endpoint{URI: uri}, tip: tip}
}

func (c *fakeConn) Endpoint() domain.Endpoint { return c.endpoint }

func (c *fakeConn) Height(context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pingErr != nil {
		return 0, c.pingErr
	}
	return c.tip, nil
}

func (c *fakeConn) Ping(ctx context.Context) error {
	c.mu.Lock()
	block, err := c.block, c.pingErr
	c.mu.Unlock()
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) setTip(h uint64) {
	c.mu.Lock()
	c.tip = h
	c.mu.Unlock()
}

func (c *fakeConn) setPingErr(err error) {
	c.mu.Lock()
	c.pingErr = err
	c.mu.Unlock()
}

func (c *fakeConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// fakeDialer hands out fakeConns and remembers them.
type fakeDialer struct {
	mu    sync.Mutex
	tip   uint64
	conns []*fakeConn
	err   error
	// liveAtDial records how many earlier connections were still open at
	// each Dial.
	liveAtDial []int
}

func (d *fakeDialer) Dial(endpoint domain.Endpoint) (ports.NodeConnection, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return nil, d.err
	}
	live := 0
	for _, prev := range d.conns {
		if !prev.isClosed() {
			live++
		}
	}
	d.liveAtDial = append(d.liveAtDial, live)
	c := newFakeConn(endpoint.URI, d.tip)
	c.endpoint = endpoint
	d.conns = append(d.conns, c)
	return c, nil
}

func (d *fakeDialer) conn(i int) *fakeConn {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.conns[i]
}

func (d *fakeDialer) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.conns)
}

// fakeSync records the calls a SyncController receives.
type fakeSync struct {
	mu     sync.Mutex
	begins []ports.NodeConnection
	stops  int
	err    error
}

func (s *fakeSync) BeginSync(_ context.Context, conn ports.NodeConnection, _ ports.SyncOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.begins = append(s.begins, conn)
	return nil
}

func (s *fakeSync) StopSync() {
	s.mu.Lock()
	s.stops++
	s.mu.Unlock()
}

func (s *fakeSync) counts() (begins, stops int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.begins), s.stops
}
