package core

// LoadCell is an externally converted input (HX710/HX711 family pressure or
// weight frontend) on a data/clock pin pair. Readings are linearly
// calibrated: value = raw*scaleFactor + zeroOffset.
//
// No Poll override: the converter runs its own conversion cycle, so the
// firmware only samples it when a reading is wanted.
type LoadCell struct {
	deviceBase

	zeroOffset  float32
	scaleFactor float32
}

// NewPressureSensor validates both pins and constructs a load-cell input
// with identity calibration (offset 0, scale 1).
func NewPressureSensor(name string, dataPin, clkPin int) (*LoadCell, error) {
	if err := ValidatePin(dataPin); err != nil {
		return nil, err
	}
	if err := ValidatePin(clkPin); err != nil {
		return nil, err
	}
	return &LoadCell{
		deviceBase:  deviceBase{kind: KindPressure, name: name, pins: []Pin{Pin(dataPin), Pin(clkPin)}},
		scaleFactor: 1.0,
	}, nil
}

// Configure initializes the converter frontend on the pin pair.
func (s *LoadCell) Configure() {
	_ = MustLoadCell().Configure(s.pins[0], s.pins[1])
}

// SetCalibration replaces both calibration scalars. Not reachable from the
// protocol surface; calibration is a build/bench-time concern.
func (s *LoadCell) SetCalibration(zeroOffset, scaleFactor float32) {
	s.zeroOffset = zeroOffset
	s.scaleFactor = scaleFactor
}

// Read samples the converter. A converter that is mid-conversion reads as
// "0", which a true zero reading also produces; callers that care must
// disambiguate externally.
func (s *LoadCell) Read() string {
	drv := MustLoadCell()
	if !drv.Ready(s.pins[0], s.pins[1]) {
		return "0"
	}
	raw := drv.ReadRaw(s.pins[0], s.pins[1])
	return ftoa(float32(raw)*s.scaleFactor+s.zeroOffset, 2)
}
