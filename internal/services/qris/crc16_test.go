package qris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "standard check value",
			input: "123456789",
			want:  "29B1",
		},
		{
			name:  "empty input is the register init value",
			input: "",
			want:  "FFFF",
		},
		{
			name:  "single character",
			input: "A",
			want:  "B915",
		},
		{
			name:  "payload head",
			input: "00020101021102",
			want:  "06AD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Checksum(tt.input))
		})
	}
}

func TestChecksumDeterministic(t *testing.T) {
	input := "00020101021126400014COM.GO-JEK.WWW"
	assert.Equal(t, Checksum(input), Checksum(input))
}
