package qris

import "errors"

// Service errors
var (
	ErrInvalidInput     = errors.New("invalid payment code request")
	ErrMalformedPayload = errors.New("malformed QRIS payload")
	ErrNoStaticPayload  = errors.New("market has no static QRIS payload configured")
	ErrMarketNotFound   = errors.New("market not found")
)
