package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the externally reported state of a payment request.
type PaymentStatus string

const (
	PaymentStatusUnknown    PaymentStatus = "unknown"
	PaymentStatusConfirming PaymentStatus = "confirming"
	PaymentStatusSuccessful PaymentStatus = "successful"
	PaymentStatusFailed     PaymentStatus = "failed"
)

// PaymentRequest asks for an exact amount to be paid to an integrated
// address. It is immutable once issued.
type PaymentRequest struct {
	ID                    uuid.UUID       `json:"id"`
	PaymentID             string          `json:"payment_id"`
	IntegratedAddress     string          `json:"integrated_address"`
	Amount                decimal.Decimal `json:"amount"`        // display units
	AtomicAmount          uint64          `json:"atomic_amount"` // piconero
	Label                 *string         `json:"label,omitempty"`
	RequiredConfirmations uint64          `json:"required_confirmations"`
	PaymentURI            string          `json:"payment_uri,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
}

// Verdict is the outcome of matching a request against incoming transfers.
// It is one of NoMatch, AmountMismatch, MatchedUnconfirmed or MatchedConfirmed.
type Verdict interface {
	status() PaymentStatus
}

// NoMatch means no usable transfer carries the request's payment id.
type NoMatch struct{}

// AmountMismatch means the latest matching transfer paid a different amount.
// Partial and over-payments both land here.
type AmountMismatch struct {
	ObservedAtomic uint64
}

// MatchedUnconfirmed is an exact-amount transfer still short of the required
// confirmations.
type MatchedUnconfirmed struct {
	Tx TxSnapshot
}

// MatchedConfirmed is an exact-amount transfer with enough confirmations.
type MatchedConfirmed struct {
	Tx TxSnapshot
}

func (NoMatch) status() PaymentStatus            { return PaymentStatusUnknown }
func (AmountMismatch) status() PaymentStatus     { return PaymentStatusUnknown }
func (MatchedUnconfirmed) status() PaymentStatus { return PaymentStatusConfirming }
func (MatchedConfirmed) status() PaymentStatus   { return PaymentStatusSuccessful }

// PaymentResponse is the verdict for one evaluation of a request. It is built
// per call and never stored.
type PaymentResponse struct {
	Request     PaymentRequest
	Verdict     Verdict
	EvaluatedAt time.Time
}

// NewPaymentResponse pairs a request with its verdict. A nil verdict is
// treated as NoMatch.
func NewPaymentResponse(req PaymentRequest, v Verdict, at time.Time) *PaymentResponse {
	if v == nil {
		v = NoMatch{}
	}
	return &PaymentResponse{Request: req, Verdict: v, EvaluatedAt: at}
}

// Status derives the payment status from the verdict.
func (r *PaymentResponse) Status() PaymentStatus {
	return r.Verdict.status()
}

// Complete is true exactly when the status is successful.
func (r *PaymentResponse) Complete() bool {
	return r.Status() == PaymentStatusSuccessful
}

// Tx returns the matched transaction snapshot, or nil when nothing matched
// the requested amount.
func (r *PaymentResponse) Tx() *TxSnapshot {
	switch v := r.Verdict.(type) {
	case MatchedUnconfirmed:
		return &v.Tx
	case MatchedConfirmed:
		return &v.Tx
	default:
		return nil
	}
}

// Confirmations returns the matched transaction's confirmation count, or nil.
func (r *PaymentResponse) Confirmations() *uint64 {
	tx := r.Tx()
	if tx == nil {
		return nil
	}
	n := tx.Confirmations
	return &n
}
