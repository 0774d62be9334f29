package postgres

import (
	"context"
	"errors"
	"fmt"

	"simplepay/internal/core/domain"
	"simplepay/pkg/amount"

	"github.com/jackc/pgx/v5"
)

// PaymentRequestRepo implements ports.PaymentRequestRepository.
type PaymentRequestRepo struct {
	pool Pool
}

// NewPaymentRequestRepo creates a new PaymentRequestRepo.
func NewPaymentRequestRepo(pool Pool) *PaymentRequestRepo {
	return &PaymentRequestRepo{pool: pool}
}

// Create inserts an issued payment request. The display amount is not stored;
// it is derived from the atomic amount on read.
func (r *PaymentRequestRepo) Create(ctx context.Context, req *domain.PaymentRequest) error {
	query := `INSERT INTO payment_requests (id, payment_id, integrated_address, atomic_amount, label, required_confirmations, payment_uri, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		req.ID, req.PaymentID, req.IntegratedAddress,
		int64(req.AtomicAmount), req.Label, int64(req.RequiredConfirmations),
		req.PaymentURI, req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment request: %w", err)
	}
	return nil
}

// GetByPaymentID fetches a request by its payment id. Returns nil, nil when
// no request was issued with that id.
func (r *PaymentRequestRepo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.PaymentRequest, error) {
	query := `SELECT id, payment_id, integrated_address, atomic_amount, label, required_confirmations, payment_uri, created_at
		FROM payment_requests WHERE payment_id = $1`

	req := &domain.PaymentRequest{}
	var atomic, confirmations int64
	err := r.pool.QueryRow(ctx, query, paymentID).Scan(
		&req.ID, &req.PaymentID, &req.IntegratedAddress,
		&atomic, &req.Label, &confirmations,
		&req.PaymentURI, &req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment request by payment_id: %w", err)
	}

	req.AtomicAmount = uint64(atomic)
	req.RequiredConfirmations = uint64(confirmations)
	req.Amount = amount.FromAtomic(req.AtomicAmount)
	req.CreatedAt = req.CreatedAt.UTC()
	return req, nil
}
