package core

// LevelMax is the upper bound of the linear-output level range.
const LevelMax = 255

// PWMDriver is the abstract proportional-output interface that core code
// uses for linear actuators (LED brightness, motor speed).
// Platform-specific implementations handle actual hardware control.
type PWMDriver interface {
	// ConfigureOutput configures a pin for proportional output and
	// drives it to level 0
	ConfigureOutput(pin Pin) error

	// SetLevel drives the pin proportionally to level/LevelMax
	SetLevel(pin Pin, level uint8) error
}

// Global singleton used by core code.
var pwmDriver PWMDriver

// SetPWMDriver is called by target-specific code to register its driver.
func SetPWMDriver(d PWMDriver) {
	pwmDriver = d
}

// MustPWM returns the configured driver or panics if missing.
func MustPWM() PWMDriver {
	if pwmDriver == nil {
		panic("PWM driver not configured")
	}
	return pwmDriver
}
