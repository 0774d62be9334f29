package app

import (
	"context"
	"fmt"

	"simplepay/config"
	"simplepay/internal/core/domain"
	"simplepay/internal/core/ports"
)

// OpenWallet opens the configured view-only wallet and returns it with its
// primary address. The wallet is closed again if the address cannot be read.
func OpenWallet(ctx context.Context, opener ports.WalletOpener, cfg config.WalletConfig) (ports.Wallet, string, error) {
	wallet, err := opener.Open(ctx, ports.WalletSpec{
		Filename:       cfg.Filename,
		Password:       cfg.Password,
		PrimaryAddress: cfg.PrimaryAddress,
		SecretViewKey:  cfg.SecretViewKey,
		Network:        domain.Network(cfg.Network),
	})
	if err != nil {
		return nil, "", fmt.Errorf("open wallet: %w", err)
	}
	primary, err := wallet.PrimaryAddress(ctx)
	if err != nil {
		_ = wallet.Close(ctx)
		return nil, "", fmt.Errorf("read wallet address: %w", err)
	}
	return wallet, primary, nil
}
