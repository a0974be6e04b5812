package sequence

import "errors"

// Service errors
var (
	ErrInvalidPrefix   = errors.New("sequence prefix is required")
	ErrInvalidWidth    = errors.New("sequence width must be positive")
	ErrCodeCollision   = errors.New("generated code already exists")
	ErrMintExhausted   = errors.New("code minting retries exhausted")
	ErrWidthOverflowed = errors.New("sequence value exceeds code width")
)
