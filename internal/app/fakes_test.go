package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"simplepay/internal/core/domain"
	"simplepay/internal/core/ports"
)

// --- Chain ---

// chain is the ledger shared by the fake node and the fake wallet.
type chain struct {
	mu  sync.Mutex
	tip uint64
}

func (c *chain) height() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tip
}

func (c *chain) mine(n uint64) {
	c.mu.Lock()
	c.tip += n
	c.mu.Unlock()
}

// --- In-Memory Wallet ---

// chainWallet scans straight to the chain tip on every refresh and derives
// confirmations from the tip, like a real wallet would.
type chainWallet struct {
	chain *chain

	mu        sync.Mutex
	minted    int
	mintIDs   func(n int) string
	transfers []domain.IncomingTransfer
	received  bool
}

func newChainWallet(c *chain) *chainWallet {
	return &chainWallet{
		chain:   c,
		mintIDs: func(n int) string { return fmt.Sprintf("%016x", n+1) },
	}
}

func (w *chainWallet) PrimaryAddress(context.Context) (string, error) { return "4AppPrimary", nil }

func (w *chainWallet) SetDaemon(context.Context, domain.Endpoint) error { return nil }

func (w *chainWallet) SetSyncHeight(context.Context, uint64) error { return nil }

func (w *chainWallet) Refresh(context.Context) (domain.RefreshResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	res := domain.RefreshResult{Height: w.chain.height(), ReceivedMoney: w.received}
	w.received = false
	return res, nil
}

func (w *chainWallet) Height(context.Context) (uint64, error) {
	return w.chain.height(), nil
}

func (w *chainWallet) IncomingTransfers(_ context.Context, filter domain.TransferFilter) ([]domain.IncomingTransfer, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	tip := w.chain.height()
	var out []domain.IncomingTransfer
	for _, t := range w.transfers {
		if filter.PaymentID != "" && t.PaymentID != filter.PaymentID {
			continue
		}
		if filter.ExcludeDoubleSpend && t.DoubleSpendSeen {
			continue
		}
		if t.Tx.Height > 0 && tip >= t.Tx.Height {
			t.Tx.Confirmations = tip - t.Tx.Height + 1
		}
		out = append(out, t)
	}
	return out, nil
}

func (w *chainWallet) MakeIntegratedAddress(context.Context) (domain.IntegratedAddress, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.mintIDs(w.minted)
	w.minted++
	return domain.IntegratedAddress{
		Address:         "4AppIntegrated" + id,
		StandardAddress: "4AppPrimary",
		PaymentID:       id,
	}, nil
}

func (w *chainWallet) Balance(context.Context) (domain.Balance, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var total uint64
	for _, t := range w.transfers {
		total += t.Amount
	}
	return domain.Balance{Total: total}, nil
}

func (w *chainWallet) Close(context.Context) error { return nil }

// pay records an output to paymentID mined in the current tip block.
func (w *chainWallet) pay(paymentID string, atomic uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.transfers = append(w.transfers, domain.IncomingTransfer{
		Amount:    atomic,
		PaymentID: paymentID,
		Tx: domain.TxSnapshot{
			Hash:   fmt.Sprintf("tx-%s-%d", paymentID, len(w.transfers)),
			Height: w.chain.height(),
		},
	})
	w.received = true
}

func (w *chainWallet) mintCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.minted
}

// --- Node ---

type chainConn struct {
	endpoint domain.Endpoint
	chain    *chain
	down     bool
}

func (c *chainConn) Endpoint() domain.Endpoint { return c.endpoint }

func (c *chainConn) Height(context.Context) (uint64, error) {
	if c.down {
		return 0, errors.New("connection refused")
	}
	return c.chain.height(), nil
}

func (c *chainConn) Ping(context.Context) error {
	if c.down {
		return errors.New("connection refused")
	}
	return nil
}

func (c *chainConn) Close() error { return nil }

type chainDialer struct {
	chain *chain
	down  bool

	mu     sync.Mutex
	dialed []string
}

func (d *chainDialer) Dial(endpoint domain.Endpoint) (ports.NodeConnection, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dialed = append(d.dialed, endpoint.Identity())
	return &chainConn{endpoint: endpoint, chain: d.chain, down: d.down}, nil
}

func (d *chainDialer) dials() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.dialed...)
}

// --- In-Memory Payment Request Repo ---

type inMemoryPaymentRequestRepo struct {
	mu       sync.RWMutex
	requests map[string]*domain.PaymentRequest
}

func newInMemoryPaymentRequestRepo() *inMemoryPaymentRequestRepo {
	return &inMemoryPaymentRequestRepo{requests: make(map[string]*domain.PaymentRequest)}
}

func (r *inMemoryPaymentRequestRepo) Create(_ context.Context, req *domain.PaymentRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.requests[req.PaymentID]; ok {
		return fmt.Errorf("payment id %s already exists", req.PaymentID)
	}
	cp := *req
	r.requests[req.PaymentID] = &cp
	return nil
}

func (r *inMemoryPaymentRequestRepo) GetByPaymentID(_ context.Context, paymentID string) (*domain.PaymentRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.requests[paymentID]
	if !ok {
		return nil, nil
	}
	cp := *req
	return &cp, nil
}

func (r *inMemoryPaymentRequestRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.requests)
}
