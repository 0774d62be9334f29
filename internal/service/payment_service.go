package service

import (
	"context"
	"fmt"

	"simplepay/internal/core/domain"
	"simplepay/internal/core/ports"
	"simplepay/pkg/apperror"

	"github.com/rs/zerolog"
)

// PaymentServiceImpl implements ports.PaymentService. Issued requests are
// persisted so they can be looked up by payment id; verdicts never are.
type PaymentServiceImpl struct {
	factory   ports.PaymentRequestFactory
	evaluator ports.PaymentEvaluator
	repo      ports.PaymentRequestRepository
	log       zerolog.Logger
}

// NewPaymentService creates a new PaymentServiceImpl.
func NewPaymentService(
	factory ports.PaymentRequestFactory,
	evaluator ports.PaymentEvaluator,
	repo ports.PaymentRequestRepository,
	log zerolog.Logger,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		factory:   factory,
		evaluator: evaluator,
		repo:      repo,
		log:       log,
	}
}

// CreatePayment mints and stores a new payment request.
func (s *PaymentServiceImpl) CreatePayment(ctx context.Context, in ports.CreatePaymentInput) (*domain.PaymentRequest, error) {
	req, err := s.factory.CreatePaymentRequest(ctx, in.Amount, in.Label, in.RequiredConfirmations)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("store payment request: %w", err))
	}
	return req, nil
}

// CheckPayment evaluates a stored request against the wallet.
func (s *PaymentServiceImpl) CheckPayment(ctx context.Context, paymentID string) (*domain.PaymentResponse, error) {
	req, err := s.repo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("load payment request: %w", err))
	}
	if req == nil {
		return nil, apperror.ErrNotFound("payment request")
	}

	resp, err := s.evaluator.Evaluate(ctx, req)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("payment_id", paymentID).
		Str("status", string(resp.Status())).
		Bool("complete", resp.Complete()).
		Msg("payment evaluated")
	return resp, nil
}
