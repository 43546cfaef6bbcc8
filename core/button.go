package core

// Button is a debounced digital input wired active-low with a pull-up:
// the raw level reads high at rest and low while pressed.
//
// The debounce state machine tracks the raw reading from the previous poll
// and restarts its change timer whenever the raw level moves, so the level
// must hold still for a full window before a transition commits. A commit
// to the active level latches an event that survives until the next Read.
type Button struct {
	deviceBase

	rawLast    bool  // raw reading seen on the previous poll
	committed  bool  // debounced state
	lastChange int64 // when the raw reading last moved
	latched    bool  // press event pending for Read
}

// NewButton validates the pin and constructs a debounced button input.
func NewButton(name string, pin int) (*Button, error) {
	if err := ValidatePin(pin); err != nil {
		return nil, err
	}
	return &Button{
		deviceBase: deviceBase{kind: KindButton, name: name, pins: []Pin{Pin(pin)}},
	}, nil
}

// Configure sets the pin up as a pulled-up input and seeds both the raw and
// committed state from an immediate read, so a held button at boot does not
// register as a press.
func (b *Button) Configure() {
	gpio := MustGPIO()
	_ = gpio.ConfigureInputPullUp(b.pins[0])
	level := gpio.ReadPin(b.pins[0])
	b.rawLast = level
	b.committed = level
}

// Poll advances the debounce state machine.
//
// The change timer restarts on every raw transition, not only on committed
// ones, so a noisy level keeps pushing its own acceptance out.
func (b *Button) Poll(now int64) {
	raw := MustGPIO().ReadPin(b.pins[0])

	if raw != b.rawLast {
		b.lastChange = now
	}

	if now-b.lastChange > DebounceWindowMS && raw != b.committed {
		b.committed = raw
		if !raw {
			// Active low: the newly committed low level is a press.
			b.latched = true
		}
	}

	b.rawLast = raw
}

// Read reports and clears the press latch: "1" if a press committed since
// the last read, "0" otherwise.
func (b *Button) Read() string {
	if b.latched {
		b.latched = false
		return "1"
	}
	return "0"
}
