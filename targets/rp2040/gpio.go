//go:build rp2040 || rp2350

package main

import (
	"machine"

	"modulio/core"
)

// RPGPIODriver implements the core GPIO interface on RP2040/RP2350 pins.
type RPGPIODriver struct {
	// Track configured pins to avoid reprogramming pad modes
	configuredPins map[core.Pin]machine.Pin
}

// NewRPGPIODriver creates a new RP2040 GPIO driver
func NewRPGPIODriver() *RPGPIODriver {
	return &RPGPIODriver{
		configuredPins: make(map[core.Pin]machine.Pin),
	}
}

func (d *RPGPIODriver) ConfigureInputPullUp(pin core.Pin) error {
	machinePin := machine.Pin(pin)
	machinePin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	d.configuredPins[pin] = machinePin
	return nil
}

func (d *RPGPIODriver) ConfigureOutput(pin core.Pin) error {
	machinePin := machine.Pin(pin)
	machinePin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	machinePin.Low()
	d.configuredPins[pin] = machinePin
	return nil
}

func (d *RPGPIODriver) SetPin(pin core.Pin, value bool) error {
	machinePin := machine.Pin(pin)
	if value {
		machinePin.High()
	} else {
		machinePin.Low()
	}
	return nil
}

func (d *RPGPIODriver) ReadPin(pin core.Pin) bool {
	return machine.Pin(pin).Get()
}
