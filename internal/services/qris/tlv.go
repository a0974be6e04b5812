package qris

import (
	"fmt"
	"strconv"
	"strings"
)

// EMV QR tags the transformer cares about. Everything else is carried
// through untouched.
const (
	TagInitiationMethod = "01"
	TagAmount           = "54"
	TagCountryCode      = "58"
	TagCRC              = "63"
)

const (
	initiationStatic  = "11"
	initiationDynamic = "12"
)

// Field is one tag-length-value triplet of an EMV QR payload. Tags and
// lengths are two decimal digits; the length header is derived from the
// value on encode, never stored.
type Field struct {
	Tag   string
	Value string
}

// ParseTLV tokenizes an EMV QR payload into its fields. It rejects
// truncated headers, non-numeric length fields and values shorter than
// their declared length, so downstream edits work on structure instead of
// substring positions.
func ParseTLV(payload string) ([]Field, error) {
	fields := make([]Field, 0, 16)
	for i := 0; i < len(payload); {
		if len(payload)-i < 4 {
			return nil, fmt.Errorf("%w: truncated field header at offset %d", ErrMalformedPayload, i)
		}
		tag := payload[i : i+2]
		length, err := strconv.Atoi(payload[i+2 : i+4])
		if err != nil || length < 0 {
			return nil, fmt.Errorf("%w: invalid length %q for tag %s", ErrMalformedPayload, payload[i+2:i+4], tag)
		}
		i += 4
		if len(payload)-i < length {
			return nil, fmt.Errorf("%w: tag %s declares %d characters, %d remain", ErrMalformedPayload, tag, length, len(payload)-i)
		}
		fields = append(fields, Field{Tag: tag, Value: payload[i : i+length]})
		i += length
	}
	return fields, nil
}

// EncodeTLV serializes fields back into payload form, regenerating each
// two-digit length header from the value.
func EncodeTLV(fields []Field) string {
	var b strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&b, "%s%02d%s", f.Tag, len(f.Value), f.Value)
	}
	return b.String()
}
