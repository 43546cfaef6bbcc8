package core

import "io"

// Response line prefixes. The host side classifies every received line by
// these five markers.
const (
	prefixConf = "Conf: "
	prefixErrr = "Errr: "
	prefixWarn = "Warn: "
	prefixRecv = "Recv: "
	prefixData = "Data: "
)

// Console owns the outbound half of the transport. Every logical response
// line is assembled in full and handed to the writer in a single Write call,
// so telemetry and command responses can only interleave at line boundaries.
type Console struct {
	w io.Writer
}

// NewConsole wraps the transport's write side.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) line(prefix, msg string) {
	buf := make([]byte, 0, len(prefix)+len(msg)+2)
	buf = append(buf, prefix...)
	buf = append(buf, msg...)
	buf = append(buf, '\r', '\n')
	_, _ = c.w.Write(buf)
}

// Conf emits a success/confirmation response.
func (c *Console) Conf(msg string) { c.line(prefixConf, msg) }

// Errr emits an operator-facing rejection.
func (c *Console) Errr(msg string) { c.line(prefixErrr, msg) }

// Warn emits a malformed-request rejection.
func (c *Console) Warn(msg string) { c.line(prefixWarn, msg) }

// Recv acknowledges a received automated-mode line.
func (c *Console) Recv(msg string) { c.line(prefixRecv, msg) }

// Data emits one telemetry record. The ';' terminator marks end-of-record
// so the host can detect truncated lines.
func (c *Console) Data(fields string) { c.line(prefixData, fields+";") }

// Plain emits an unprefixed line (banner, help text).
func (c *Console) Plain(msg string) { c.line("", msg) }
