package core

import (
	"errors"
	"testing"
)

func newTestOutput(t *testing.T, pin Pin) (*LinearOutput, *mockPWMDriver) {
	t.Helper()
	pwm := newMockPWMDriver()
	SetPWMDriver(pwm)

	o, err := NewLED("led", int(pin))
	if err != nil {
		t.Fatalf("NewLED failed: %v", err)
	}
	o.Configure()

	if !pwm.configured[pin] {
		t.Fatal("Configure did not claim the pin for output")
	}
	return o, pwm
}

func TestLinearOutputWriteAndRead(t *testing.T) {
	o, pwm := newTestOutput(t, 5)

	o.Write("128")
	if o.Read() != "128" {
		t.Errorf("Read() = %q, expected 128", o.Read())
	}
	if pwm.levels[5] != 128 {
		t.Errorf("driver level = %d, expected 128", pwm.levels[5])
	}
}

func TestLinearOutputClamping(t *testing.T) {
	o, pwm := newTestOutput(t, 5)

	o.Write("300")
	if o.Read() != "255" {
		t.Errorf("overrange write: Read() = %q, expected 255", o.Read())
	}
	if pwm.levels[5] != 255 {
		t.Errorf("driver level = %d, expected 255", pwm.levels[5])
	}

	o.Write("-7")
	if o.Read() != "0" {
		t.Errorf("negative write: Read() = %q, expected 0", o.Read())
	}
}

func TestLinearOutputUnparsableWritesZero(t *testing.T) {
	o, _ := newTestOutput(t, 5)

	o.Write("200")
	o.Write("garbage")
	if o.Read() != "0" {
		t.Errorf("unparsable write: Read() = %q, expected 0", o.Read())
	}

	// Values too wide for an int are unparsable, not wrapped.
	o.Write("200")
	o.Write("99999999999999999999")
	if o.Read() != "0" {
		t.Errorf("overflow write: Read() = %q, expected 0", o.Read())
	}
}

func TestMotorSharesOutputShape(t *testing.T) {
	pwm := newMockPWMDriver()
	SetPWMDriver(pwm)

	m, err := NewMotor("mot", 6)
	if err != nil {
		t.Fatalf("NewMotor failed: %v", err)
	}
	if m.Kind() != KindMotor {
		t.Errorf("Kind() = %v, expected DCMotor", m.Kind())
	}
	m.Configure()
	m.Write("90")
	if m.Read() != "90" {
		t.Errorf("Read() = %q, expected 90", m.Read())
	}
}

func TestLinearOutputPinValidation(t *testing.T) {
	if _, err := NewLED("led", 1); !errors.Is(err, ErrPinReserved) {
		t.Errorf("expected ErrPinReserved, got %v", err)
	}
	if _, err := NewMotor("mot", MaxPin+5); !errors.Is(err, ErrPinRange) {
		t.Errorf("expected ErrPinRange, got %v", err)
	}
}
