package ports

import (
	"context"

	"simplepay/internal/core/domain"
)

// Wallet is the view-only wallet collaborator. It owns key handling and the
// wire protocol to the wallet process; the core only reads from it and steers
// its sync position.
type Wallet interface {
	PrimaryAddress(ctx context.Context) (string, error)
	// SetDaemon points the wallet at the node it should scan from.
	SetDaemon(ctx context.Context, endpoint domain.Endpoint) error
	// SetSyncHeight sets the height the next scan starts from.
	SetSyncHeight(ctx context.Context, height uint64) error
	// Refresh scans any blocks the wallet has not seen yet.
	Refresh(ctx context.Context) (domain.RefreshResult, error)
	Height(ctx context.Context) (uint64, error)
	IncomingTransfers(ctx context.Context, filter domain.TransferFilter) ([]domain.IncomingTransfer, error)
	MakeIntegratedAddress(ctx context.Context) (domain.IntegratedAddress, error)
	Balance(ctx context.Context) (domain.Balance, error)
	Close(ctx context.Context) error
}

// WalletSpec identifies the view-only wallet to open or restore.
type WalletSpec struct {
	Filename       string
	Password       string
	PrimaryAddress string
	SecretViewKey  string
	Network        domain.Network
}

// WalletOpener creates or opens the view-only wallet.
type WalletOpener interface {
	Open(ctx context.Context, spec WalletSpec) (Wallet, error)
}

// NodeConnection is a live handle on a remote node.
type NodeConnection interface {
	Endpoint() domain.Endpoint
	// Height returns the node's current chain height (block count).
	Height(ctx context.Context) (uint64, error)
	// Ping returns nil when the node answers and is usable.
	Ping(ctx context.Context) error
	Close() error
}

// NodeDialer creates node connections.
type NodeDialer interface {
	Dial(endpoint domain.Endpoint) (NodeConnection, error)
}
