package service

import (
	"context"
	"fmt"
	"time"

	"simplepay/internal/core/domain"
	"simplepay/internal/core/ports"
	"simplepay/pkg/amount"
	"simplepay/pkg/apperror"
	"simplepay/pkg/paymenturi"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// maxIssueAttempts bounds how many fresh integrated addresses are tried when
// the wallet hands out a payment id that was already issued.
const maxIssueAttempts = 3

// PaymentRequestFactoryImpl implements ports.PaymentRequestFactory.
type PaymentRequestFactoryImpl struct {
	wallet               ports.Wallet
	gate                 ports.ReadinessGate
	issued               ports.IssuedIDStore
	defaultConfirmations uint64
	now                  func() time.Time
	log                  zerolog.Logger
}

// NewPaymentRequestFactory creates a new PaymentRequestFactoryImpl. issued may
// be nil, in which case payment ids are trusted to be unique as minted.
func NewPaymentRequestFactory(
	wallet ports.Wallet,
	gate ports.ReadinessGate,
	issued ports.IssuedIDStore,
	defaultConfirmations uint64,
	log zerolog.Logger,
) *PaymentRequestFactoryImpl {
	return &PaymentRequestFactoryImpl{
		wallet:               wallet,
		gate:                 gate,
		issued:               issued,
		defaultConfirmations: defaultConfirmations,
		now:                  time.Now,
		log:                  log,
	}
}

// CreatePaymentRequest mints a request for amt display units. It refuses to
// issue anything while the wallet view is not synchronized, since payments to
// the new id could not be observed yet.
func (f *PaymentRequestFactoryImpl) CreatePaymentRequest(
	ctx context.Context,
	amt decimal.Decimal,
	label *string,
	requiredConfirmations *uint64,
) (*domain.PaymentRequest, error) {
	if !f.gate.Ready() {
		return nil, apperror.ErrNotReady()
	}
	if !amt.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	atomic, err := amount.ToAtomic(amt)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}

	confirmations := f.defaultConfirmations
	if requiredConfirmations != nil {
		confirmations = *requiredConfirmations
	}

	addr, err := f.issue(ctx)
	if err != nil {
		return nil, err
	}

	req := &domain.PaymentRequest{
		ID:                    uuid.New(),
		PaymentID:             addr.PaymentID,
		IntegratedAddress:     addr.Address,
		Amount:                amt,
		AtomicAmount:          atomic,
		Label:                 label,
		RequiredConfirmations: confirmations,
		PaymentURI:            paymenturi.Build(addr.Address, amt, label),
		CreatedAt:             f.now().UTC(),
	}

	f.log.Info().
		Str("payment_id", req.PaymentID).
		Str("amount", amount.Format(amt)).
		Uint64("required_confirmations", confirmations).
		Msg("payment request issued")

	return req, nil
}

func (f *PaymentRequestFactoryImpl) issue(ctx context.Context) (domain.IntegratedAddress, error) {
	for attempt := 1; attempt <= maxIssueAttempts; attempt++ {
		addr, err := f.wallet.MakeIntegratedAddress(ctx)
		if err != nil {
			return domain.IntegratedAddress{}, apperror.ErrConnection(fmt.Errorf("make integrated address: %w", err))
		}
		if f.issued == nil {
			return addr, nil
		}

		fresh, err := f.issued.Claim(ctx, addr.PaymentID)
		if err != nil {
			// Store unavailable: the wallet's own id generation is the fallback.
			f.log.Warn().Err(err).Str("payment_id", addr.PaymentID).Msg("issued id store failed, accepting id unchecked")
			return addr, nil
		}
		if fresh {
			return addr, nil
		}
		f.log.Warn().
			Str("payment_id", addr.PaymentID).
			Int("attempt", attempt).
			Msg("payment id already issued, minting another")
	}
	return domain.IntegratedAddress{}, apperror.ErrIssueExhausted()
}
