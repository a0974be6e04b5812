package validation

import (
	"simpasar/internal/errors"
)

// MaxPaymentAmount caps a single dynamic QRIS code at one billion rupiah.
const MaxPaymentAmount = 1_000_000_000

// ValidatePaymentCodeRequest checks the request shape before the
// transformer runs. Amounts are whole rupiah, positive, and bounded.
func ValidatePaymentCodeRequest(marketCode string, amount int64) error {
	if marketCode == "" {
		return errors.ErrInvalidPaymentRequest.WithMessage("market code is required")
	}
	if amount <= 0 {
		return errors.ErrInvalidPaymentRequest.WithMessage("amount must be a positive integer")
	}
	if amount > MaxPaymentAmount {
		return errors.ErrInvalidPaymentRequest.WithMessage("amount exceeds the maximum allowed")
	}
	return nil
}
