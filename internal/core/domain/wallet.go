package domain

import "time"

// TxSnapshot is a read-only view of a transaction as reported by the wallet.
// Size and Version are zero when the collaborator does not report them.
type TxSnapshot struct {
	Hash          string    `json:"hash"`
	Confirmations uint64    `json:"confirmations"`
	Height        uint64    `json:"height"` // 0 while in the pool
	Timestamp     time.Time `json:"timestamp"`
	Fee           uint64    `json:"fee"`
	Size          uint64    `json:"size,omitempty"`
	Version       uint32    `json:"version,omitempty"`
}

// IsConfirmed reports whether the transaction has been mined.
func (t TxSnapshot) IsConfirmed() bool {
	return t.Confirmations > 0
}

// IncomingTransfer is one received output as seen by the wallet.
type IncomingTransfer struct {
	Amount          uint64 // atomic units
	PaymentID       string
	DoubleSpendSeen bool
	Failed          bool
	Tx              TxSnapshot
}

// Usable reports whether the transfer may count towards a payment.
func (t IncomingTransfer) Usable() bool {
	return !t.DoubleSpendSeen && !t.Failed
}

// TransferFilter narrows an incoming transfer query.
type TransferFilter struct {
	PaymentID          string
	MinHeight          uint64
	ExcludeDoubleSpend bool
	ExcludeFailed      bool
}

// IntegratedAddress is a fresh address/payment-id pair minted by the wallet.
type IntegratedAddress struct {
	Address         string
	StandardAddress string
	PaymentID       string
}

// Balance holds wallet balances in atomic units.
type Balance struct {
	Total    uint64 `json:"total"`
	Unlocked uint64 `json:"unlocked"`
}

// RefreshResult reports one wallet scan step.
type RefreshResult struct {
	Height        uint64 // wallet height after the step
	BlocksFetched uint64
	ReceivedMoney bool
}
