package protocol

import (
	"errors"
	"strings"
	"testing"
)

func TestParseFrameRoundTrip(t *testing.T) {
	payloads := []string{"", "t 1", "s b button1 2", "c 0 255"}

	for _, p := range payloads {
		framed := EncodeFrame(p)

		payload, want, err := ParseFrame(framed)
		if err != nil {
			t.Fatalf("ParseFrame(%q) failed: %v", framed, err)
		}
		if payload != p {
			t.Errorf("payload = %q, expected %q", payload, p)
		}
		if got := Checksum([]byte(payload)); got != want {
			t.Errorf("checksum mismatch on own frame: claimed %02X, computed %02X", want, got)
		}
	}
}

func TestParseFrameMissingSeparator(t *testing.T) {
	_, _, err := ParseFrame("t 1")
	if !errors.Is(err, ErrNoSeparator) {
		t.Errorf("expected ErrNoSeparator, got %v", err)
	}
}

func TestParseFrameBadChecksumField(t *testing.T) {
	for _, line := range []string{";t 1", "A;t 1", "ABC;t 1", "G1;t 1"} {
		_, _, err := ParseFrame(line)
		if !errors.Is(err, ErrBadChecksumField) {
			t.Errorf("ParseFrame(%q): expected ErrBadChecksumField, got %v", line, err)
		}
	}
}

func TestParseFrameLowerCaseHex(t *testing.T) {
	payload, want, err := ParseFrame("f4;123456789")
	if err != nil {
		t.Fatalf("ParseFrame failed: %v", err)
	}
	if payload != "123456789" || want != 0xF4 {
		t.Errorf("got payload=%q want=%02X", payload, want)
	}
}

func TestParseFramePayloadTooLong(t *testing.T) {
	long := strings.Repeat("x", MaxPayloadLen+1)
	_, _, err := ParseFrame("00;" + long)
	if !errors.Is(err, ErrPayloadTooLong) {
		t.Errorf("expected ErrPayloadTooLong, got %v", err)
	}

	// Exactly at the ceiling is still accepted
	ok := strings.Repeat("x", MaxPayloadLen)
	if _, _, err := ParseFrame("00;" + ok); err != nil {
		t.Errorf("payload at ceiling rejected: %v", err)
	}
}
