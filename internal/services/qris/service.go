package qris

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"simpasar/internal/models"

	"github.com/google/uuid"
)

// MarketReader provides the stored market configuration the transformer
// needs. Snapshots come from the repository layer (cache-backed).
type MarketReader interface {
	GetSnapshot(ctx context.Context, marketCode string) (*models.MarketSnapshot, error)
}

// PaymentCode is a one-shot dynamic QRIS payload bound to a single amount.
// It is never persisted or reused; a new one is minted per request.
type PaymentCode struct {
	ReferenceID string    `json:"reference_id"`
	MarketCode  string    `json:"market_code"`
	Amount      int64     `json:"amount"`
	Payload     string    `json:"payload"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Service mints dynamic QRIS payment codes from a market's stored static
// payload.
type Service interface {
	GeneratePaymentCode(ctx context.Context, marketCode string, amount int64) (*PaymentCode, error)
}

type service struct {
	markets MarketReader
}

// NewService creates a new QRIS service instance
func NewService(markets MarketReader) Service {
	if markets == nil {
		panic("market reader is required")
	}
	return &service{markets: markets}
}

func (s *service) GeneratePaymentCode(ctx context.Context, marketCode string, amount int64) (*PaymentCode, error) {
	if marketCode == "" {
		return nil, fmt.Errorf("%w: market code is required", ErrInvalidInput)
	}

	snapshot, err := s.markets.GetSnapshot(ctx, marketCode)
	if err != nil {
		return nil, err
	}
	if snapshot.StaticQRPayload == "" {
		return nil, fmt.Errorf("%w: market %s", ErrNoStaticPayload, marketCode)
	}

	payload, err := ToDynamic(snapshot.StaticQRPayload, amount)
	if err != nil {
		return nil, err
	}

	return &PaymentCode{
		ReferenceID: uuid.NewString(),
		MarketCode:  marketCode,
		Amount:      amount,
		Payload:     payload,
		GeneratedAt: time.Now(),
	}, nil
}

// ToDynamic converts a static QRIS payload into a dynamic one bound to
// amount (smallest currency unit):
//
//   - the point-of-initiation-method tag flips from static to dynamic,
//   - an amount tag is inserted immediately before the country-code tag,
//   - the CRC trailer is recomputed over the rewritten payload.
//
// The payload must be well-formed TLV ending in a CRC field, and must
// carry both the initiation-method and country-code tags; a payload
// missing either is rejected rather than best-effort spliced, since the
// result would not be a usable dynamic code.
func ToDynamic(staticPayload string, amount int64) (string, error) {
	if staticPayload == "" {
		return "", fmt.Errorf("%w: empty static payload", ErrInvalidInput)
	}
	if amount <= 0 {
		return "", fmt.Errorf("%w: amount must be positive, got %d", ErrInvalidInput, amount)
	}

	fields, err := ParseTLV(staticPayload)
	if err != nil {
		return "", err
	}
	if len(fields) == 0 || fields[len(fields)-1].Tag != TagCRC || len(fields[len(fields)-1].Value) != 4 {
		return "", fmt.Errorf("%w: missing CRC trailer", ErrMalformedPayload)
	}
	fields = fields[:len(fields)-1]

	rewritten := make([]Field, 0, len(fields)+1)
	sawInitiation := false
	sawCountry := false
	for _, f := range fields {
		switch f.Tag {
		case TagInitiationMethod:
			f.Value = initiationDynamic
			sawInitiation = true
		case TagAmount:
			// A static payload should not carry an amount; drop it so the
			// inserted one is authoritative.
			continue
		case TagCountryCode:
			rewritten = append(rewritten, Field{Tag: TagAmount, Value: strconv.FormatInt(amount, 10)})
			sawCountry = true
		}
		rewritten = append(rewritten, f)
	}
	if !sawInitiation {
		return "", fmt.Errorf("%w: missing point-of-initiation tag %s", ErrMalformedPayload, TagInitiationMethod)
	}
	if !sawCountry {
		return "", fmt.Errorf("%w: missing country-code tag %s", ErrMalformedPayload, TagCountryCode)
	}

	// The CRC covers everything up to and including its own tag and
	// length header.
	body := EncodeTLV(rewritten) + TagCRC + "04"
	return body + Checksum(body), nil
}
