package sequence

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// MaxMintAttempts bounds how often a mint is retried after a code
// collision before the conflict is surfaced to the caller.
const MaxMintAttempts = 3

// Store is the durable per-prefix counter. Implementations must make
// NextValue a serialized increment-and-fetch (row lock or equivalent) so
// two concurrent callers on the same prefix can never observe the same
// value.
type Store interface {
	NextValue(ctx context.Context, prefix string) (int64, error)
}

// Service assembles prefix-scoped, zero-padded sequential codes. Codes
// under one prefix are strictly increasing and never reused.
type Service struct {
	store Store
}

// NewService creates a new sequencer backed by store.
func NewService(store Store) *Service {
	if store == nil {
		panic("sequence store is required")
	}
	return &Service{store: store}
}

// Next mints the next code for p: the prefix followed by the incremented
// counter, zero-padded to p.Width digits. A counter that has outgrown the
// width is an error rather than a silently wider code, since fixed width
// is what keeps lexicographic and numeric order identical.
func (s *Service) Next(ctx context.Context, p Prefix) (string, error) {
	if p.Value == "" {
		return "", ErrInvalidPrefix
	}
	if p.Width <= 0 {
		return "", ErrInvalidWidth
	}

	n, err := s.store.NextValue(ctx, p.Value)
	if err != nil {
		return "", fmt.Errorf("next value for prefix %s: %w", p.Value, err)
	}

	code := fmt.Sprintf("%s%0*d", p.Value, p.Width, n)
	if len(code) > len(p.Value)+p.Width {
		return "", fmt.Errorf("%w: prefix %s value %d", ErrWidthOverflowed, p.Value, n)
	}
	return code, nil
}

// Mint generates a code and hands it to create, which persists the record
// carrying it. When create reports ErrCodeCollision (a concurrent writer
// already took the code, e.g. one inserted outside the counter), the mint
// is re-read and recomputed a bounded number of times before giving up.
// A collision from the counter itself is retried the same way. Any other
// error is returned as-is on the first attempt.
func (s *Service) Mint(ctx context.Context, p Prefix, create func(code string) error) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= MaxMintAttempts; attempt++ {
		code, err := s.Next(ctx, p)
		if err != nil {
			if errors.Is(err, ErrCodeCollision) {
				log.Printf("[SEQUENCE] counter conflict for prefix %s, retrying (%d/%d)", p.Value, attempt, MaxMintAttempts)
				lastErr = err
				continue
			}
			return "", err
		}
		if err := create(code); err != nil {
			if errors.Is(err, ErrCodeCollision) {
				log.Printf("[SEQUENCE] code %s collided, retrying (%d/%d)", code, attempt, MaxMintAttempts)
				lastErr = err
				continue
			}
			return "", err
		}
		return code, nil
	}
	return "", fmt.Errorf("%w: prefix %s after %d attempts: %v", ErrMintExhausted, p.Value, MaxMintAttempts, lastErr)
}
