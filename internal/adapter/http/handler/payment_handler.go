package handler

import (
	"simplepay/internal/adapter/http/dto"
	"simplepay/internal/core/ports"
	"simplepay/pkg/amount"
	"simplepay/pkg/apperror"
	"simplepay/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment request endpoints.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// CreatePayment handles POST /api/v1/payments.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	amt, err := amount.Parse(req.Amount)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}
	if req.Label != nil && *req.Label == "" {
		req.Label = nil
	}

	created, err := h.paymentSvc.CreatePayment(c.Request.Context(), ports.CreatePaymentInput{
		Amount:                amt,
		Label:                 req.Label,
		RequiredConfirmations: req.Confirmations,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToPaymentRequestResponse(created))
}

// GetPayment handles GET /api/v1/payments/:payment_id.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	paymentID := c.Param("payment_id")
	if !dto.ValidPaymentID(paymentID) {
		response.Error(c, apperror.Validation("payment_id must be 16 lowercase hex digits"))
		return
	}

	result, err := h.paymentSvc.CheckPayment(c.Request.Context(), paymentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToPaymentStatusResponse(result))
}
