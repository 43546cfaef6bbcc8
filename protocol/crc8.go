package protocol

// Checksum calculates the CRC-8 checksum used to validate automated-mode
// messages. Polynomial 0x07, initial value 0x00, no reflection.
// This matches the implementation on the host side, so both ends of the
// link agree on the same value for the same payload bytes.
func Checksum(data []byte) uint8 {
	var crc uint8
	for _, b := range data {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ 0x07
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

const hexDigits = "0123456789ABCDEF"

// FormatChecksum renders a checksum as two uppercase hex digits,
// the form used in the automated-mode frame prefix.
func FormatChecksum(sum uint8) string {
	return string([]byte{hexDigits[sum>>4], hexDigits[sum&0x0F]})
}

// parseHexDigit decodes a single hex digit, accepting both cases.
func parseHexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
