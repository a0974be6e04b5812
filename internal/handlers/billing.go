package handlers

import (
	"time"

	"simpasar/internal/services/billing"
	"simpasar/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// BillingHandler exposes manual triggers for the recurring billing jobs.
// The cron scheduler is the normal caller; these endpoints exist for
// operators re-running a period after an outage. Re-running is safe: the
// jobs are idempotent per period.
type BillingHandler struct {
	billingService *billing.Service
}

func NewBillingHandler(billingService *billing.Service) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
	}
}

func (h *BillingHandler) RunDailyDues(c *fiber.Ctx) error {
	report, err := h.billingService.GenerateDailyDues(c.Context(), time.Now())
	if err != nil {
		return response.ServerError(c, "daily dues run failed: "+err.Error())
	}
	return response.Success(c, "Daily dues run finished", report)
}

func (h *BillingHandler) RunAnnualInvoices(c *fiber.Ctx) error {
	report, err := h.billingService.GenerateAnnualInvoices(c.Context(), time.Now())
	if err != nil {
		return response.ServerError(c, "annual invoice run failed: "+err.Error())
	}
	return response.Success(c, "Annual invoice run finished", report)
}
