//go:build rp2040 || rp2350

package main

import (
	"machine"

	"modulio/core"
)

// pwmPeriodNS is the PWM period used for all linear outputs (1 kHz).
// Fast enough for flicker-free LEDs and quiet enough for small DC motors.
const pwmPeriodNS = 1_000_000

// pwmPeripheral abstracts over TinyGo's unexported *pwmGroup type.
type pwmPeripheral interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// RPPWMDriver implements the core proportional-output interface on the
// RP2040's hardware PWM slices (8 slices, 2 channels each).
type RPPWMDriver struct {
	// Key: slice number (0-7)
	peripherals map[uint8]pwmPeripheral

	// Key: pin number, Value: PWM channel on its slice
	channels map[core.Pin]uint8
}

// NewRPPWMDriver creates a new RP2040 PWM driver
func NewRPPWMDriver() *RPPWMDriver {
	return &RPPWMDriver{
		peripherals: make(map[uint8]pwmPeripheral),
		channels:    make(map[core.Pin]uint8),
	}
}

func (d *RPPWMDriver) ConfigureOutput(pin core.Pin) error {
	// GPIO pin N maps to slice (N >> 1) & 0x7, channel N & 1.
	sliceNum := uint8((pin >> 1) & 0x7)

	pwm, exists := d.peripherals[sliceNum]
	if !exists {
		pwm = d.getPWMPeripheral(sliceNum)
		if err := pwm.Configure(machine.PWMConfig{Period: pwmPeriodNS}); err != nil {
			return err
		}
		d.peripherals[sliceNum] = pwm
	}

	channel, err := pwm.Channel(machine.Pin(pin))
	if err != nil {
		return err
	}
	d.channels[pin] = channel

	pwm.Set(channel, 0)
	return nil
}

func (d *RPPWMDriver) SetLevel(pin core.Pin, level uint8) error {
	sliceNum := uint8((pin >> 1) & 0x7)
	pwm, exists := d.peripherals[sliceNum]
	if !exists {
		return nil // pin was never configured; nothing to drive
	}
	channel := d.channels[pin]

	// Scale the 0..255 level onto the slice's counter range.
	duty := uint32(level) * pwm.Top() / core.LevelMax
	pwm.Set(channel, duty)
	return nil
}

// getPWMPeripheral returns the machine PWM peripheral for a slice number.
func (d *RPPWMDriver) getPWMPeripheral(sliceNum uint8) pwmPeripheral {
	switch sliceNum {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}
