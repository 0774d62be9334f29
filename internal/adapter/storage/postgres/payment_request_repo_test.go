package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"simplepay/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestRequest() *domain.PaymentRequest {
	return &domain.PaymentRequest{
		ID:                    uuid.New(),
		PaymentID:             "a1b2c3d4e5f60708",
		IntegratedAddress:     "4IntegratedAddress",
		Amount:                decimal.RequireFromString("1.5"),
		AtomicAmount:          1_500_000_000_000,
		Label:                 strPtr("order 42"),
		RequiredConfirmations: 10,
		PaymentURI:            "monero:4IntegratedAddress?tx_amount=1.5&tx_description=order%2042",
		CreatedAt:             time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}
}

func requestColumns() []string {
	return []string{"id", "payment_id", "integrated_address", "atomic_amount", "label", "required_confirmations", "payment_uri", "created_at"}
}

func requestRow(req *domain.PaymentRequest) *pgxmock.Rows {
	return pgxmock.NewRows(requestColumns()).AddRow(
		req.ID, req.PaymentID, req.IntegratedAddress,
		int64(req.AtomicAmount), req.Label, int64(req.RequiredConfirmations),
		req.PaymentURI, req.CreatedAt,
	)
}

func TestPaymentRequestRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRequestRepo(mock)
	req := newTestRequest()

	mock.ExpectExec("INSERT INTO payment_requests").
		WithArgs(req.ID, req.PaymentID, req.IntegratedAddress,
			int64(req.AtomicAmount), req.Label, int64(req.RequiredConfirmations),
			req.PaymentURI, req.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), req))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRequestRepo_Create_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRequestRepo(mock)

	mock.ExpectExec("INSERT INTO payment_requests").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("duplicate key value violates unique constraint"))

	err = repo.Create(context.Background(), newTestRequest())
	assert.ErrorContains(t, err, "insert payment request")
	assert.ErrorContains(t, err, "duplicate key value")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRequestRepo_GetByPaymentID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRequestRepo(mock)
	req := newTestRequest()

	mock.ExpectQuery("SELECT .+ FROM payment_requests WHERE payment_id").
		WithArgs(req.PaymentID).
		WillReturnRows(requestRow(req))

	got, err := repo.GetByPaymentID(context.Background(), req.PaymentID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, req.ID, got.ID)
	assert.Equal(t, req.AtomicAmount, got.AtomicAmount)
	assert.True(t, req.Amount.Equal(got.Amount), "display amount derived from atomic")
	assert.Equal(t, "order 42", *got.Label)
	assert.Equal(t, uint64(10), got.RequiredConfirmations)
	assert.Equal(t, req.CreatedAt, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRequestRepo_GetByPaymentID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRequestRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM payment_requests WHERE payment_id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(requestColumns()))

	got, err := repo.GetByPaymentID(context.Background(), "ffffffffffffffff")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRequestRepo_GetByPaymentID_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRequestRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM payment_requests").
		WillReturnError(errors.New("connection reset"))

	got, err := repo.GetByPaymentID(context.Background(), "a1b2c3d4e5f60708")
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestMigrate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS payment_requests").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, Migrate(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCheck(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	hc := NewHealthCheck(mock)
	assert.Equal(t, "postgresql", hc.Name())

	mock.ExpectExec("SELECT 1").WillReturnResult(pgxmock.NewResult("SELECT", 1))
	assert.NoError(t, hc.Ping(context.Background()))

	mock.ExpectExec("SELECT 1").WillReturnError(errors.New("down"))
	assert.Error(t, hc.Ping(context.Background()))
}
