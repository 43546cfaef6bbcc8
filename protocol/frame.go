package protocol

import "errors"

const (
	// FrameSeparator divides the checksum prefix from the payload in
	// automated-mode messages: "<2 hex digits>;<payload>".
	FrameSeparator = ';'

	// MaxPayloadLen is the safety ceiling on the payload of a framed
	// message. Anything longer is rejected before checksum verification.
	MaxPayloadLen = 128
)

var (
	// ErrNoSeparator means the line carried no checksum separator at all.
	ErrNoSeparator = errors.New("missing checksum separator")

	// ErrBadChecksumField means the prefix before the separator was not
	// exactly two hex digits.
	ErrBadChecksumField = errors.New("malformed checksum field")

	// ErrPayloadTooLong means the payload exceeded MaxPayloadLen.
	ErrPayloadTooLong = errors.New("payload too long")
)

// ParseFrame splits an automated-mode line into its payload and the checksum
// the sender claimed for it. It performs only structural validation; comparing
// the claimed checksum against Checksum(payload) is the caller's job, so the
// caller can report the computed value back to the sender on mismatch.
func ParseFrame(line string) (payload string, want uint8, err error) {
	sep := -1
	for i := 0; i < len(line); i++ {
		if line[i] == FrameSeparator {
			sep = i
			break
		}
	}
	if sep < 0 {
		return "", 0, ErrNoSeparator
	}
	payload = line[sep+1:]
	if len(payload) > MaxPayloadLen {
		return "", 0, ErrPayloadTooLong
	}
	if sep != 2 {
		return "", 0, ErrBadChecksumField
	}
	hi, ok1 := parseHexDigit(line[0])
	lo, ok2 := parseHexDigit(line[1])
	if !ok1 || !ok2 {
		return "", 0, ErrBadChecksumField
	}
	return payload, hi<<4 | lo, nil
}

// EncodeFrame builds the framed form of a payload: checksum prefix,
// separator, payload. Used by the host side when the link is in
// automated mode.
func EncodeFrame(payload string) string {
	return FormatChecksum(Checksum([]byte(payload))) + string(FrameSeparator) + payload
}
