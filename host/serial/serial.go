package serial

import (
	"io"
)

// Port is the transport contract the client library runs on. Reads are
// expected to time out rather than block forever, so a receive loop can
// poll for shutdown between reads.
// Implementations: native serial (github.com/tarm/serial) and in-memory
// test doubles.
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate (ignored for USB CDC, used for hardware UART builds)
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns a default configuration for a board console
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200, // Hardware UART rate; USB CDC ignores this
		ReadTimeout: 100,    // 100ms read timeout
	}
}
