package core

// LinearOutput is a proportionally driven actuator holding a level in
// [0, LevelMax]. LEDs and DC motors share the shape; the kind tag only
// changes how the device is reported.
type LinearOutput struct {
	deviceBase

	level uint8
}

// NewLED validates the pin and constructs an LED output.
func NewLED(name string, pin int) (*LinearOutput, error) {
	return newLinearOutput(KindLED, name, pin)
}

// NewMotor validates the pin and constructs a DC motor output.
func NewMotor(name string, pin int) (*LinearOutput, error) {
	return newLinearOutput(KindMotor, name, pin)
}

func newLinearOutput(kind Kind, name string, pin int) (*LinearOutput, error) {
	if err := ValidatePin(pin); err != nil {
		return nil, err
	}
	return &LinearOutput{
		deviceBase: deviceBase{kind: kind, name: name, pins: []Pin{Pin(pin)}},
	}, nil
}

// Configure claims the pin for proportional output at level 0.
func (o *LinearOutput) Configure() {
	_ = MustPWM().ConfigureOutput(o.pins[0])
}

// Write parses the argument as an integer, clamps it to [0, LevelMax],
// stores it and drives the output. An unparsable argument is treated as 0,
// which drives the output to its neutral level.
func (o *LinearOutput) Write(value string) {
	n, ok := atoi(value)
	if !ok {
		n = 0
	}
	if n < 0 {
		n = 0
	}
	if n > LevelMax {
		n = LevelMax
	}
	o.level = uint8(n)
	_ = MustPWM().SetLevel(o.pins[0], o.level)
}

// Read returns the stored level as text.
func (o *LinearOutput) Read() string {
	return itoa(int(o.level))
}
