package handlers

import (
	"errors"

	apperrors "simpasar/internal/errors"
	"simpasar/internal/services/qris"
	"simpasar/internal/utils/response"
	"simpasar/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	qrisService qris.Service
}

func NewPaymentHandler(qrisService qris.Service) *PaymentHandler {
	return &PaymentHandler{
		qrisService: qrisService,
	}
}

type generatePaymentCodeRequest struct {
	Amount int64 `json:"amount"`
}

// GeneratePaymentCode mints a one-shot dynamic QRIS payload for the
// market in the path, bound to the requested amount.
func (h *PaymentHandler) GeneratePaymentCode(c *fiber.Ctx) error {
	marketCode := c.Params("code")

	var req generatePaymentCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	if err := validation.ValidatePaymentCodeRequest(marketCode, req.Amount); err != nil {
		return response.BadRequest(c, err.Error())
	}

	code, err := h.qrisService.GeneratePaymentCode(c.Context(), marketCode, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, qris.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, qris.ErrMarketNotFound):
			return response.NotFound(c, apperrors.ErrMarketNotFound.Message)
		case errors.Is(err, qris.ErrNoStaticPayload), errors.Is(err, qris.ErrMalformedPayload):
			// Both mean the market's stored configuration cannot produce
			// a payment code; nothing the payer can fix.
			return response.UnprocessableEntity(c, apperrors.ErrPaymentNotConfigured.Message)
		default:
			return response.ServerError(c, "failed to generate payment code")
		}
	}

	return response.Success(c, "Payment code generated", code)
}
