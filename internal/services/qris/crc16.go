package qris

import "fmt"

const crcPolynomial = 0x1021

// Checksum computes the CRC-16/CCITT-FALSE checksum of s over its
// character code points and formats it as 4 uppercase hex digits, the way
// the trailing integrity field of an EMV QR payload expects it.
func Checksum(s string) string {
	crc := uint32(0xFFFF)
	for _, r := range s {
		crc ^= uint32(r) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ crcPolynomial
			} else {
				crc <<= 1
			}
		}
	}
	return fmt.Sprintf("%04X", crc&0xFFFF)
}
