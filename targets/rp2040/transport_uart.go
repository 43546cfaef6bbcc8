//go:build (rp2040 || rp2350) && modulio_uart

package main

import (
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"modulio/core"
)

// openTransport configures hardware UART0 on the reserved transport pins.
// uartx provides interrupt-driven buffered reception, so the control loop's
// non-blocking reads never lose bytes between iterations.
func openTransport() serialPort {
	hw := uartx.UART0
	_ = hw.Configure(uartx.UARTConfig{
		BaudRate: core.SerialBaudRate,
		TX:       machine.Pin(core.ReservedPins[0]),
		RX:       machine.Pin(core.ReservedPins[1]),
	})
	return hw
}
