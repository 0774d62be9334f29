package ports

import (
	"context"
	"time"

	"simplepay/internal/core/domain"

	"github.com/shopspring/decimal"
)

// ReadinessGate exposes the sync coordinator's readiness to consumers.
type ReadinessGate interface {
	// Ready is true while the wallet view is caught up with the node.
	Ready() bool
	// EverSynced is true once any sync cycle has completed.
	EverSynced() bool
}

// SyncOptions tunes a BeginSync call.
type SyncOptions struct {
	// FreshRestore discards the retained scan height and restarts from the
	// node's current height.
	FreshRestore bool
}

// SyncController is the part of the sync coordinator driven by the
// connection manager.
type SyncController interface {
	BeginSync(ctx context.Context, conn NodeConnection, opts SyncOptions) error
	StopSync()
}

// EvaluationObserver is notified of every payment evaluation outcome.
type EvaluationObserver interface {
	ObserveEvaluation(status domain.PaymentStatus)
}

// --- Service Ports (Business Logic) ---

// PaymentRequestFactory mints new payment requests.
type PaymentRequestFactory interface {
	CreatePaymentRequest(ctx context.Context, amount decimal.Decimal, label *string, requiredConfirmations *uint64) (*domain.PaymentRequest, error)
}

// PaymentEvaluator classifies a request against the wallet's transfers.
type PaymentEvaluator interface {
	Evaluate(ctx context.Context, req *domain.PaymentRequest) (*domain.PaymentResponse, error)
}

// PaymentService is the application-facing payment API.
type PaymentService interface {
	CreatePayment(ctx context.Context, in CreatePaymentInput) (*domain.PaymentRequest, error)
	CheckPayment(ctx context.Context, paymentID string) (*domain.PaymentResponse, error)
}

// CreatePaymentInput holds validated input for a new payment request.
type CreatePaymentInput struct {
	Amount                decimal.Decimal
	Label                 *string
	RequiredConfirmations *uint64
}

// NodeService reports and steers the node connection.
type NodeService interface {
	Status(ctx context.Context) NodeStatus
	UpdateEndpoint(ctx context.Context, endpoint domain.Endpoint) error
}

// NodeStatus is a point-in-time snapshot of connection, sync and balance.
type NodeStatus struct {
	Connection domain.ConnectionState
	Sync       domain.SyncState
	Balance    domain.Balance
}

// TokenService handles JWT token operations for API clients.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
	TokenID string
}
