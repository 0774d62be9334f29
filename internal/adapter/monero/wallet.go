package monero

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"sync"
	"time"

	"simplepay/internal/core/domain"
	"simplepay/internal/core/ports"
)

// WalletOpener opens the view-only wallet inside monero-wallet-rpc, restoring
// it from keys when the wallet file does not exist yet.
type WalletOpener struct {
	uri      string
	username string
	password string
	timeout  time.Duration
}

// NewWalletOpener creates a WalletOpener for the wallet RPC server at uri.
func NewWalletOpener(uri, username, password string, timeout time.Duration) *WalletOpener {
	return &WalletOpener{uri: uri, username: username, password: password, timeout: timeout}
}

// Open opens spec.Filename, or restores it from the primary address and
// secret view key. Background refresh is disabled so scanning only happens
// when the sync coordinator asks for it.
func (o *WalletOpener) Open(ctx context.Context, spec ports.WalletSpec) (ports.Wallet, error) {
	if err := checkNetwork(spec.PrimaryAddress, spec.Network); err != nil {
		return nil, err
	}
	rpc, err := newRPCClient(o.uri, o.username, o.password, o.timeout)
	if err != nil {
		return nil, err
	}

	openErr := rpc.call(ctx, "open_wallet", map[string]any{
		"filename": spec.Filename,
		"password": spec.Password,
	}, nil)
	if openErr != nil {
		genErr := rpc.call(ctx, "generate_from_keys", map[string]any{
			"filename":         spec.Filename,
			"password":         spec.Password,
			"address":          spec.PrimaryAddress,
			"viewkey":          spec.SecretViewKey,
			"restore_height":   0,
			"autosave_current": true,
		}, nil)
		if genErr != nil {
			return nil, fmt.Errorf("open wallet: %w; restore from keys: %w", openErr, genErr)
		}
	}

	if err := rpc.call(ctx, "auto_refresh", map[string]any{"enable": false}, nil); err != nil {
		return nil, err
	}

	w := &Wallet{rpc: rpc}
	addr, err := w.PrimaryAddress(ctx)
	if err != nil {
		return nil, err
	}
	if addr != spec.PrimaryAddress {
		return nil, fmt.Errorf("wallet %q belongs to %s, not the configured address", spec.Filename, addr)
	}
	return w, nil
}

// checkNetwork rejects a primary address whose prefix does not belong to
// the configured network.
func checkNetwork(address string, network domain.Network) error {
	if address == "" {
		return fmt.Errorf("primary address is required")
	}
	var ok bool
	switch network {
	case domain.NetworkMainnet:
		ok = address[0] == '4' || address[0] == '8'
	case domain.NetworkStagenet:
		ok = address[0] == '5' || address[0] == '7'
	default:
		return fmt.Errorf("unsupported network %q", network)
	}
	if !ok {
		return fmt.Errorf("primary address is not a %s address", network)
	}
	return nil
}

// Wallet implements ports.Wallet on monero-wallet-rpc.
type Wallet struct {
	rpc *rpcClient

	mu          sync.Mutex
	startHeight *uint64
}

func (w *Wallet) PrimaryAddress(ctx context.Context) (string, error) {
	var res struct {
		Address string `json:"address"`
	}
	if err := w.rpc.call(ctx, "get_address", map[string]any{"account_index": 0}, &res); err != nil {
		return "", err
	}
	return res.Address, nil
}

// SetDaemon points the wallet RPC server at endpoint.
func (w *Wallet) SetDaemon(ctx context.Context, endpoint domain.Endpoint) error {
	address := endpoint.URI
	username, password := endpoint.Username, endpoint.Password
	if u, err := url.Parse(endpoint.URI); err == nil && u.User != nil {
		if username == "" {
			username = u.User.Username()
		}
		if password == "" {
			password, _ = u.User.Password()
		}
		address = endpoint.Identity()
	}

	params := map[string]any{
		"address": address,
		"trusted": false,
	}
	if username != "" {
		params["username"] = username
		params["password"] = password
	}
	return w.rpc.call(ctx, "set_daemon", params, nil)
}

// SetSyncHeight makes the next Refresh start scanning at height.
func (w *Wallet) SetSyncHeight(_ context.Context, height uint64) error {
	w.mu.Lock()
	w.startHeight = &height
	w.mu.Unlock()
	return nil
}

type refreshResult struct {
	BlocksFetched uint64 `json:"blocks_fetched"`
	ReceivedMoney bool   `json:"received_money"`
}

// Refresh scans new blocks and reports the wallet height afterwards.
func (w *Wallet) Refresh(ctx context.Context) (domain.RefreshResult, error) {
	w.mu.Lock()
	start := w.startHeight
	w.mu.Unlock()

	var params any
	if start != nil {
		params = map[string]any{"start_height": *start}
	}

	var res refreshResult
	if err := w.rpc.call(ctx, "refresh", params, &res); err != nil {
		return domain.RefreshResult{}, err
	}

	w.mu.Lock()
	if w.startHeight == start {
		w.startHeight = nil
	}
	w.mu.Unlock()

	height, err := w.Height(ctx)
	if err != nil {
		return domain.RefreshResult{}, err
	}
	return domain.RefreshResult{
		Height:        height,
		BlocksFetched: res.BlocksFetched,
		ReceivedMoney: res.ReceivedMoney,
	}, nil
}

func (w *Wallet) Height(ctx context.Context) (uint64, error) {
	var res struct {
		Height uint64 `json:"height"`
	}
	if err := w.rpc.call(ctx, "get_height", nil, &res); err != nil {
		return 0, err
	}
	return res.Height, nil
}

type transferEntry struct {
	Amount          uint64 `json:"amount"`
	Confirmations   uint64 `json:"confirmations"`
	DoubleSpendSeen bool   `json:"double_spend_seen"`
	Fee             uint64 `json:"fee"`
	Height          uint64 `json:"height"`
	PaymentID       string `json:"payment_id"`
	Timestamp       int64  `json:"timestamp"`
	TxID            string `json:"txid"`
	Type            string `json:"type"`
}

type transfersResult struct {
	In   []transferEntry `json:"in"`
	Pool []transferEntry `json:"pool"`
}

// IncomingTransfers lists received transfers, mined ones first in chain
// order followed by pool transfers in arrival order.
func (w *Wallet) IncomingTransfers(ctx context.Context, filter domain.TransferFilter) ([]domain.IncomingTransfer, error) {
	params := map[string]any{
		"in":   true,
		"pool": true,
	}
	if filter.MinHeight > 0 {
		params["filter_by_height"] = true
		// min_height is exclusive on the server side.
		params["min_height"] = filter.MinHeight - 1
	}

	var res transfersResult
	if err := w.rpc.call(ctx, "get_transfers", params, &res); err != nil {
		return nil, err
	}

	sort.SliceStable(res.In, func(i, j int) bool {
		if res.In[i].Height != res.In[j].Height {
			return res.In[i].Height < res.In[j].Height
		}
		return res.In[i].Timestamp < res.In[j].Timestamp
	})
	sort.SliceStable(res.Pool, func(i, j int) bool {
		return res.Pool[i].Timestamp < res.Pool[j].Timestamp
	})

	entries := append(res.In, res.Pool...)
	out := make([]domain.IncomingTransfer, 0, len(entries))
	for _, e := range entries {
		t := e.toDomain()
		if filter.PaymentID != "" && t.PaymentID != filter.PaymentID {
			continue
		}
		if filter.ExcludeDoubleSpend && t.DoubleSpendSeen {
			continue
		}
		if filter.ExcludeFailed && t.Failed {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (e transferEntry) toDomain() domain.IncomingTransfer {
	return domain.IncomingTransfer{
		Amount:          e.Amount,
		PaymentID:       e.PaymentID,
		DoubleSpendSeen: e.DoubleSpendSeen,
		Failed:          e.Type == "failed",
		Tx: domain.TxSnapshot{
			Hash:          e.TxID,
			Confirmations: e.Confirmations,
			Height:        e.Height,
			Timestamp:     time.Unix(e.Timestamp, 0).UTC(),
			Fee:           e.Fee,
		},
	}
}

// MakeIntegratedAddress asks the wallet for a new random payment id.
func (w *Wallet) MakeIntegratedAddress(ctx context.Context) (domain.IntegratedAddress, error) {
	var res struct {
		IntegratedAddress string `json:"integrated_address"`
		PaymentID         string `json:"payment_id"`
	}
	if err := w.rpc.call(ctx, "make_integrated_address", map[string]any{}, &res); err != nil {
		return domain.IntegratedAddress{}, err
	}
	standard, err := w.PrimaryAddress(ctx)
	if err != nil {
		return domain.IntegratedAddress{}, err
	}
	return domain.IntegratedAddress{
		Address:         res.IntegratedAddress,
		StandardAddress: standard,
		PaymentID:       res.PaymentID,
	}, nil
}

func (w *Wallet) Balance(ctx context.Context) (domain.Balance, error) {
	var res struct {
		Balance         uint64 `json:"balance"`
		UnlockedBalance uint64 `json:"unlocked_balance"`
	}
	if err := w.rpc.call(ctx, "get_balance", map[string]any{"account_index": 0}, &res); err != nil {
		return domain.Balance{}, err
	}
	return domain.Balance{Total: res.Balance, Unlocked: res.UnlockedBalance}, nil
}

// Close stores and closes the wallet.
func (w *Wallet) Close(ctx context.Context) error {
	if err := w.rpc.call(ctx, "store", nil, nil); err != nil {
		return err
	}
	return w.rpc.call(ctx, "close_wallet", nil, nil)
}
