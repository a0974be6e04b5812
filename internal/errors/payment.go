package errors

var (
	ErrInvalidPaymentRequest = &DomainError{
		Code:    "INVALID_PAYMENT_REQUEST",
		Message: "invalid payment code request",
	}
	ErrPaymentNotConfigured = &DomainError{
		Code:    "PAYMENT_NOT_CONFIGURED",
		Message: "market has no QRIS payment configuration",
	}
	ErrMarketNotFound = &DomainError{
		Code:    "MARKET_NOT_FOUND",
		Message: "market not found",
	}
)
