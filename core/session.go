package core

import "errors"

// ErrPeriod is returned when a telemetry period below 1 ms is requested.
var ErrPeriod = errors.New("telemetry period must be at least 1 ms")

// Session folds together the per-link state the dispatcher mutates: the
// protocol mode and the telemetry schedule. Constructing independent
// sessions keeps tests free of hidden process state.
type Session struct {
	// Automated selects strict checksum-framed request handling.
	// The link starts interactive.
	Automated bool

	telemetryOn bool
	periodMS    int64
	lastEmit    int64
}

// NewSession returns an interactive session with telemetry disabled and the
// default period configured.
func NewSession() *Session {
	return &Session{periodMS: DefaultTelemetryPeriodMS}
}

// SetTelemetry enables or disables periodic emission. Disabling preserves
// the configured period.
func (s *Session) SetTelemetry(on bool) {
	s.telemetryOn = on
}

// TelemetryOn reports whether periodic emission is enabled.
func (s *Session) TelemetryOn() bool { return s.telemetryOn }

// SetPeriod replaces the telemetry period. A period below 1 ms is rejected
// and the prior period is retained.
func (s *Session) SetPeriod(ms int) error {
	if ms < 1 {
		return ErrPeriod
	}
	s.periodMS = int64(ms)
	return nil
}

// PeriodMS returns the configured telemetry period.
func (s *Session) PeriodMS() int64 { return s.periodMS }

// RunTelemetry emits one aggregated record when telemetry is enabled and at
// least one full period has elapsed since the last emission, then resets the
// elapsed-time reference. Every live device contributes its name and current
// reading in index order.
func (s *Session) RunTelemetry(now int64, reg *Registry, con *Console) {
	if !s.telemetryOn || now-s.lastEmit < s.periodMS {
		return
	}

	fields := ""
	for i, info := range reg.List() {
		d, err := reg.Get(info.Index)
		if err != nil {
			continue
		}
		if i > 0 {
			fields += " "
		}
		fields += d.Name() + " " + d.Read()
	}
	con.Data(fields)

	s.lastEmit = now
}
