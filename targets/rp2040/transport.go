//go:build (rp2040 || rp2350) && !modulio_uart

package main

import "machine"

// openTransport returns the USB CDC serial port. Baud rate settings are
// ignored for USB CDC, so nothing to configure. This is the default
// transport; build with -tags modulio_uart for hardware UART0 instead.
func openTransport() serialPort {
	return machine.Serial
}
