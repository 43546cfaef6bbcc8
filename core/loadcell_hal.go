package core

// LoadCellDriver is the abstract interface for two-wire load-cell frontends
// (HX710/HX711 family). Each sensor instance is addressed by its data/clock
// pin pair; the driver may serve several sensors at once.
//
// These converters signal readiness by pulling the data line low between
// conversions, so Ready is a cheap pin read while ReadRaw clocks out the
// 24-bit sample.
type LoadCellDriver interface {
	// Configure initializes the frontend on the given pin pair
	Configure(data, clk Pin) error

	// Ready reports whether a conversion result is available
	Ready(data, clk Pin) bool

	// ReadRaw clocks out the current raw conversion result.
	// Only valid when Ready returned true.
	ReadRaw(data, clk Pin) int32
}

// Global singleton used by core code.
var loadCellDriver LoadCellDriver

// SetLoadCellDriver is called by target-specific code to register its driver.
func SetLoadCellDriver(d LoadCellDriver) {
	loadCellDriver = d
}

// MustLoadCell returns the configured driver or panics if missing.
func MustLoadCell() LoadCellDriver {
	if loadCellDriver == nil {
		panic("load cell driver not configured")
	}
	return loadCellDriver
}
