package core

// Pin identifies a hardware GPIO pin number.
type Pin uint8

// GPIODriver is the abstract GPIO interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type GPIODriver interface {
	// ConfigureInputPullUp configures a pin as a digital input with
	// pull-up resistor
	ConfigureInputPullUp(pin Pin) error

	// ConfigureOutput configures a pin as a digital output
	ConfigureOutput(pin Pin) error

	// SetPin sets the pin to high (true) or low (false)
	SetPin(pin Pin, value bool) error

	// ReadPin reads the current pin state
	ReadPin(pin Pin) bool
}

// Global singleton used by core code.
var gpioDriver GPIODriver

// SetGPIODriver is called by target-specific code to register its driver.
func SetGPIODriver(d GPIODriver) {
	gpioDriver = d
}

// MustGPIO returns the configured driver or panics if missing.
func MustGPIO() GPIODriver {
	if gpioDriver == nil {
		panic("GPIO driver not configured")
	}
	return gpioDriver
}
