package ports

import (
	"context"

	"simplepay/internal/core/domain"
)

// PaymentRequestRepository persists issued payment requests so they can be
// evaluated later by payment id. Verdicts are never stored.
type PaymentRequestRepository interface {
	Create(ctx context.Context, req *domain.PaymentRequest) error
	GetByPaymentID(ctx context.Context, paymentID string) (*domain.PaymentRequest, error)
}

// IssuedIDStore records every payment id handed out.
type IssuedIDStore interface {
	// Claim atomically records paymentID. Returns true if it was not issued
	// before.
	Claim(ctx context.Context, paymentID string) (bool, error)
}
