package core

import "time"

// Clock supplies the control loop's monotonic millisecond timebase.
type Clock interface {
	NowMillis() int64
}

// LineReader is the inbound half of the transport. ReadLine never blocks:
// it returns a complete received line, or reports that none is buffered yet.
// Absence of a line is not an error, just nothing to do this iteration.
type LineReader interface {
	ReadLine() (string, bool)
}

// Loop is the firmware's single thread of control. Each iteration performs,
// in fixed order: poll every device, telemetry due-check, at most one
// inbound line's parse-and-dispatch. Polling before dispatch guarantees a
// button event recorded this iteration is visible to a read dispatched in
// the same iteration.
type Loop struct {
	reg   *Registry
	ses   *Session
	dis   *Dispatcher
	clock Clock
	in    LineReader
}

// NewLoop assembles the control loop around its collaborators.
func NewLoop(reg *Registry, ses *Session, dis *Dispatcher, clock Clock, in LineReader) *Loop {
	return &Loop{reg: reg, ses: ses, dis: dis, clock: clock, in: in}
}

// Step runs one cooperative iteration.
func (l *Loop) Step() {
	now := l.clock.NowMillis()

	l.reg.PollAll(now)

	l.ses.RunTelemetry(now, l.reg, l.dis.con)

	if line, ok := l.in.ReadLine(); ok {
		l.dis.HandleLine(line, now)
	}
}

// Run iterates forever. Intended as the tail of a target's main.
func (l *Loop) Run() {
	for {
		l.Step()
	}
}

// systemClock measures milliseconds since construction.
type systemClock struct {
	start time.Time
}

// NewSystemClock returns a Clock backed by the runtime's monotonic time.
func NewSystemClock() Clock {
	return &systemClock{start: time.Now()}
}

func (c *systemClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}
