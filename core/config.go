package core

// Firmware version reported by the 'i' command and the boot banner.
const Version = "0.5.0"

// Build-time configuration. None of these are runtime-negotiable; the host
// side must be built with matching values (baud rate and read timeout in
// particular).
const (
	// MaxDevices is the capacity of the device registry.
	MaxDevices = 10

	// MaxTokens is the maximum number of tokens produced from one command
	// line. The longest command is pressure-sensor setup:
	// "s p <name> <data> <clk>" = 5 tokens, plus one spare.
	MaxTokens = 6

	// MaxPin is the highest addressable GPIO pin.
	MaxPin = 29

	// DebounceWindowMS is the minimum time a digital input must hold a new
	// level before the transition is committed.
	DebounceWindowMS = 50

	// DefaultTelemetryPeriodMS is the telemetry period at startup. Kept
	// deliberately slow so an idle link is not flooded; hosts are expected
	// to set their own period.
	DefaultTelemetryPeriodMS = 5000

	// SerialBaudRate and SerialReadTimeoutMS configure the transport.
	// Must match the host library settings.
	SerialBaudRate      = 115200
	SerialReadTimeoutMS = 100
)

// ReservedPins are the transport's own pins. Device creation on these is
// always rejected.
var ReservedPins = [...]Pin{0, 1}

// isReservedPin reports whether pin belongs to the transport.
func isReservedPin(pin Pin) bool {
	for _, p := range ReservedPins {
		if p == pin {
			return true
		}
	}
	return false
}
