package core

// Kind tags the device variants the firmware knows how to drive.
type Kind uint8

const (
	KindButton Kind = iota
	KindLED
	KindMotor
	KindPressure
)

// Selector letters used by the setup command ('s <kind> ...').
const (
	SelButton   = 'b'
	SelLED      = 'l'
	SelMotor    = 'm'
	SelPressure = 'p'
)

// String returns the display name used in listings and log output.
func (k Kind) String() string {
	switch k {
	case KindButton:
		return "Button"
	case KindLED:
		return "LED"
	case KindMotor:
		return "DCMotor"
	case KindPressure:
		return "PressureSensor"
	}
	return "Unknown"
}

// Device is the capability contract every variant satisfies.
//
// Configure performs the one-time hardware initialization and is called
// exactly once, right after the device is accepted into the registry.
// Poll runs once per control-loop iteration for every live device whether
// or not Read is ever called; kinds that need no continuous sampling keep
// the no-op default. Read returns the current value or status as text.
// Write mutates actuation state; input kinds keep the no-op default.
type Device interface {
	Kind() Kind
	Name() string
	PinList() []Pin
	Configure()
	Poll(now int64)
	Read() string
	Write(value string)
}

// deviceBase carries the identity shared by all variants and supplies the
// default no-op capability implementations.
type deviceBase struct {
	kind Kind
	name string
	pins []Pin
}

func (d *deviceBase) Kind() Kind     { return d.kind }
func (d *deviceBase) Name() string   { return d.name }
func (d *deviceBase) PinList() []Pin { return d.pins }

func (d *deviceBase) Poll(now int64)     {}
func (d *deviceBase) Read() string       { return "" }
func (d *deviceBase) Write(value string) {}
