package dto

import (
	"time"

	"simplepay/internal/core/domain"
	"simplepay/internal/core/ports"
	"simplepay/pkg/amount"
)

// CreatePaymentRequest is the request body for issuing a payment request.
// Amount is a decimal string in whole coins, e.g. "1.25".
type CreatePaymentRequest struct {
	Amount        string  `json:"amount" binding:"required,coin_amount"`
	Label         *string `json:"label,omitempty" binding:"omitempty,max=200"`
	Confirmations *uint64 `json:"confirmations,omitempty" binding:"omitempty,lte=1000"`
}

// UpdateEndpointRequest is the request body for replacing the node endpoint.
type UpdateEndpointRequest struct {
	URI      string `json:"uri" binding:"required,safe_url"`
	Username string `json:"username,omitempty" binding:"max=100"`
	Password string `json:"password,omitempty" binding:"max=200"`
}

// PaymentRequestResponse describes an issued payment request.
type PaymentRequestResponse struct {
	PaymentID             string  `json:"payment_id"`
	IntegratedAddress     string  `json:"integrated_address"`
	Amount                string  `json:"amount"`
	AtomicAmount          uint64  `json:"atomic_amount"`
	Label                 *string `json:"label,omitempty"`
	RequiredConfirmations uint64  `json:"required_confirmations"`
	PaymentURI            string  `json:"payment_uri"`
	CreatedAt             string  `json:"created_at"`
}

// TxResponse is the matched transaction of a payment check.
type TxResponse struct {
	Hash          string `json:"hash"`
	Confirmations uint64 `json:"confirmations"`
	Height        uint64 `json:"height"`
	Timestamp     string `json:"timestamp"`
	Fee           string `json:"fee"`
}

// PaymentStatusResponse is the result of evaluating a payment request.
type PaymentStatusResponse struct {
	Request        PaymentRequestResponse `json:"request"`
	Status         string                 `json:"status"`
	Complete       bool                   `json:"complete"`
	Confirmations  *uint64                `json:"confirmations,omitempty"`
	ObservedAmount *string                `json:"observed_amount,omitempty"`
	Tx             *TxResponse            `json:"tx,omitempty"`
	EvaluatedAt    string                 `json:"evaluated_at"`
}

// SyncResponse is the sync part of a node status.
type SyncResponse struct {
	RestoreHeight uint64  `json:"restore_height"`
	ScanHeight    uint64  `json:"scan_height"`
	StartHeight   uint64  `json:"start_height"`
	EndHeight     uint64  `json:"end_height"`
	PercentDone   float64 `json:"percent_done"`
	Syncing       bool    `json:"syncing"`
	Ready         bool    `json:"ready"`
	EverSynced    bool    `json:"ever_synced"`
}

// NodeStatusResponse is the response for the node status query.
type NodeStatusResponse struct {
	Endpoint        string       `json:"endpoint"`
	Connected       bool         `json:"connected"`
	CheckedAt       *string      `json:"checked_at,omitempty"`
	Sync            SyncResponse `json:"sync"`
	Balance         string       `json:"balance"`
	UnlockedBalance string       `json:"unlocked_balance"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ToPaymentRequestResponse maps an issued request to its response body.
func ToPaymentRequestResponse(req *domain.PaymentRequest) PaymentRequestResponse {
	return PaymentRequestResponse{
		PaymentID:             req.PaymentID,
		IntegratedAddress:     req.IntegratedAddress,
		Amount:                amount.Format(req.Amount),
		AtomicAmount:          req.AtomicAmount,
		Label:                 req.Label,
		RequiredConfirmations: req.RequiredConfirmations,
		PaymentURI:            req.PaymentURI,
		CreatedAt:             formatTime(req.CreatedAt),
	}
}

// ToPaymentStatusResponse maps an evaluation to its response body.
func ToPaymentStatusResponse(resp *domain.PaymentResponse) PaymentStatusResponse {
	out := PaymentStatusResponse{
		Request:       ToPaymentRequestResponse(&resp.Request),
		Status:        string(resp.Status()),
		Complete:      resp.Complete(),
		Confirmations: resp.Confirmations(),
		EvaluatedAt:   formatTime(resp.EvaluatedAt),
	}
	if m, ok := resp.Verdict.(domain.AmountMismatch); ok {
		observed := amount.Format(amount.FromAtomic(m.ObservedAtomic))
		out.ObservedAmount = &observed
	}
	if tx := resp.Tx(); tx != nil {
		out.Tx = &TxResponse{
			Hash:          tx.Hash,
			Confirmations: tx.Confirmations,
			Height:        tx.Height,
			Timestamp:     formatTime(tx.Timestamp),
			Fee:           amount.Format(amount.FromAtomic(tx.Fee)),
		}
	}
	return out
}

// ToNodeStatusResponse maps a node status snapshot to its response body.
func ToNodeStatusResponse(st ports.NodeStatus) NodeStatusResponse {
	out := NodeStatusResponse{
		Endpoint:  st.Connection.Endpoint,
		Connected: st.Connection.Connected,
		Sync: SyncResponse{
			RestoreHeight: st.Sync.RestoreHeight,
			ScanHeight:    st.Sync.ScanHeight,
			StartHeight:   st.Sync.StartHeight,
			EndHeight:     st.Sync.EndHeight,
			PercentDone:   st.Sync.PercentDone,
			Syncing:       st.Sync.Syncing,
			Ready:         st.Sync.Ready,
			EverSynced:    st.Sync.EverSynced,
		},
		Balance:         amount.Format(amount.FromAtomic(st.Balance.Total)),
		UnlockedBalance: amount.Format(amount.FromAtomic(st.Balance.Unlocked)),
	}
	if !st.Connection.CheckedAt.IsZero() {
		checked := formatTime(st.Connection.CheckedAt)
		out.CheckedAt = &checked
	}
	return out
}
