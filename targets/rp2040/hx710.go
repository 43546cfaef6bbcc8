//go:build rp2040 || rp2350

package main

import (
	"device/arm"
	"machine"

	"modulio/core"
)

// HX710Driver bit-bangs the two-wire interface of HX710/HX711 family
// converters. The converter pulls its data line low when a conversion is
// ready; the sample is then clocked out MSB-first, 24 bits, plus one extra
// clock pulse to start the next conversion at the default gain.
type HX710Driver struct{}

// NewHX710Driver creates the shared load-cell driver. All sensor instances
// are addressed by their pin pair, so one driver serves any number of them.
func NewHX710Driver() *HX710Driver {
	return &HX710Driver{}
}

func (d *HX710Driver) Configure(data, clk core.Pin) error {
	dataPin := machine.Pin(data)
	clkPin := machine.Pin(clk)

	dataPin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	clkPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	// Clock idles low; holding it high >60us would power the chip down.
	clkPin.Low()
	return nil
}

func (d *HX710Driver) Ready(data, clk core.Pin) bool {
	return !machine.Pin(data).Get()
}

func (d *HX710Driver) ReadRaw(data, clk core.Pin) int32 {
	dataPin := machine.Pin(data)
	clkPin := machine.Pin(clk)

	var raw uint32
	for i := 0; i < 24; i++ {
		clkPin.High()
		pulseDelay()
		raw <<= 1
		if dataPin.Get() {
			raw |= 1
		}
		clkPin.Low()
		pulseDelay()
	}

	// One extra pulse selects the default input/gain for the next cycle.
	clkPin.High()
	pulseDelay()
	clkPin.Low()

	// Sign-extend the 24-bit two's-complement sample.
	if raw&0x800000 != 0 {
		raw |= 0xFF000000
	}
	return int32(raw)
}

// pulseDelay stretches the clock pulse above the converter's 0.2us minimum.
// A handful of nops is plenty at 133 MHz.
func pulseDelay() {
	for i := 0; i < 4; i++ {
		arm.Asm("nop\nnop\nnop\nnop\nnop\nnop\nnop\nnop")
	}
}
