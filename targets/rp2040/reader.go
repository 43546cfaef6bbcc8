//go:build rp2040 || rp2350

package main

import "io"

// serialPort is the subset of the transport needed by the control loop.
// machine.Serial (USB CDC) and uartx.UART both satisfy it.
type serialPort interface {
	io.Writer
	Buffered() int
	ReadByte() (byte, error)
}

// maxLineLen bounds the receive buffer. Longer input is truncated rather
// than dropped so a runaway sender cannot wedge the reader.
const maxLineLen = 192

// lineReader accumulates serial bytes into newline-terminated commands
// without ever blocking the control loop. Partial lines persist across
// calls until a terminator arrives.
type lineReader struct {
	port serialPort
	buf  [maxLineLen]byte
	n    int
}

func newLineReader(port serialPort) *lineReader {
	return &lineReader{port: port}
}

// ReadLine drains whatever bytes have arrived and returns a complete line
// when one is available. Both CR and LF terminate a line, so CRLF senders
// produce one command followed by an empty terminator that is swallowed
// here.
func (r *lineReader) ReadLine() (string, bool) {
	for r.port.Buffered() > 0 {
		c, err := r.port.ReadByte()
		if err != nil {
			break
		}
		if c == '\n' || c == '\r' {
			if r.n == 0 {
				continue
			}
			line := string(r.buf[:r.n])
			r.n = 0
			return line, true
		}
		if r.n < maxLineLen {
			r.buf[r.n] = c
			r.n++
		}
	}
	return "", false
}
