package service

import (
	"context"
	"time"

	"simplepay/internal/core/domain"
	"simplepay/internal/core/ports"
	"simplepay/pkg/amount"
	"simplepay/pkg/apperror"

	"github.com/rs/zerolog"
)

// PaymentMatcher implements ports.PaymentEvaluator. It holds no state between
// calls and may be used concurrently.
type PaymentMatcher struct {
	wallet   ports.Wallet
	gate     ports.ReadinessGate
	observer ports.EvaluationObserver
	now      func() time.Time
	log      zerolog.Logger
}

// NewPaymentMatcher creates a new PaymentMatcher. observer may be nil.
func NewPaymentMatcher(wallet ports.Wallet, gate ports.ReadinessGate, observer ports.EvaluationObserver, log zerolog.Logger) *PaymentMatcher {
	return &PaymentMatcher{
		wallet:   wallet,
		gate:     gate,
		observer: observer,
		now:      time.Now,
		log:      log,
	}
}

// Evaluate classifies req against the wallet's current incoming transfers.
// Failures to query transfers are logged and reported as NoMatch; only
// evaluating before any sync has completed is an error.
func (m *PaymentMatcher) Evaluate(ctx context.Context, req *domain.PaymentRequest) (*domain.PaymentResponse, error) {
	if !m.gate.EverSynced() {
		return nil, apperror.ErrNotReady()
	}

	var verdict domain.Verdict = domain.NoMatch{}
	transfers, err := m.wallet.IncomingTransfers(ctx, domain.TransferFilter{
		PaymentID:          req.PaymentID,
		ExcludeDoubleSpend: true,
		ExcludeFailed:      true,
	})
	if err != nil {
		m.log.Warn().Err(err).Str("payment_id", req.PaymentID).Msg("incoming transfer query failed")
	} else {
		verdict = Classify(*req, transfers)
	}

	resp := domain.NewPaymentResponse(*req, verdict, m.now().UTC())
	if m.observer != nil {
		m.observer.ObserveEvaluation(resp.Status())
	}
	return resp, nil
}

// Classify picks the most recently observed usable transfer (the last one in
// collaborator order) and judges it against req. The amount must match
// exactly; partial and over-payments are reported as AmountMismatch.
func Classify(req domain.PaymentRequest, transfers []domain.IncomingTransfer) domain.Verdict {
	var latest *domain.IncomingTransfer
	for i := range transfers {
		if transfers[i].Usable() {
			latest = &transfers[i]
		}
	}
	if latest == nil {
		return domain.NoMatch{}
	}

	if !amount.FromAtomic(latest.Amount).Equal(req.Amount) {
		return domain.AmountMismatch{ObservedAtomic: latest.Amount}
	}
	if latest.Tx.Confirmations >= req.RequiredConfirmations {
		return domain.MatchedConfirmed{Tx: latest.Tx}
	}
	return domain.MatchedUnconfirmed{Tx: latest.Tx}
}
