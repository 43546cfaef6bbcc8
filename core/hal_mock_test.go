package core

// Mock HAL drivers shared by the core tests. The control loop is single
// threaded, so the mocks need no locking.

type mockGPIODriver struct {
	levels  map[Pin]bool
	pullups map[Pin]bool
	outputs map[Pin]bool
}

func newMockGPIODriver() *mockGPIODriver {
	return &mockGPIODriver{
		levels:  make(map[Pin]bool),
		pullups: make(map[Pin]bool),
		outputs: make(map[Pin]bool),
	}
}

func (m *mockGPIODriver) ConfigureInputPullUp(pin Pin) error {
	m.pullups[pin] = true
	return nil
}

func (m *mockGPIODriver) ConfigureOutput(pin Pin) error {
	m.outputs[pin] = true
	return nil
}

func (m *mockGPIODriver) SetPin(pin Pin, value bool) error {
	m.levels[pin] = value
	return nil
}

func (m *mockGPIODriver) ReadPin(pin Pin) bool {
	return m.levels[pin]
}

type pwmWrite struct {
	pin   Pin
	level uint8
}

type mockPWMDriver struct {
	configured map[Pin]bool
	levels     map[Pin]uint8
	writes     []pwmWrite
}

func newMockPWMDriver() *mockPWMDriver {
	return &mockPWMDriver{
		configured: make(map[Pin]bool),
		levels:     make(map[Pin]uint8),
	}
}

func (m *mockPWMDriver) ConfigureOutput(pin Pin) error {
	m.configured[pin] = true
	m.levels[pin] = 0
	return nil
}

func (m *mockPWMDriver) SetLevel(pin Pin, level uint8) error {
	m.levels[pin] = level
	m.writes = append(m.writes, pwmWrite{pin: pin, level: level})
	return nil
}

type mockLoadCellDriver struct {
	configured bool
	ready      bool
	raw        int32
}

func (m *mockLoadCellDriver) Configure(data, clk Pin) error {
	m.configured = true
	return nil
}

func (m *mockLoadCellDriver) Ready(data, clk Pin) bool {
	return m.ready
}

func (m *mockLoadCellDriver) ReadRaw(data, clk Pin) int32 {
	return m.raw
}

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	now int64
}

func (c *fakeClock) NowMillis() int64 { return c.now }

// scriptReader hands out pre-queued lines, one per ReadLine call.
type scriptReader struct {
	lines []string
}

func (r *scriptReader) push(line string) { r.lines = append(r.lines, line) }

func (r *scriptReader) ReadLine() (string, bool) {
	if len(r.lines) == 0 {
		return "", false
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, true
}
