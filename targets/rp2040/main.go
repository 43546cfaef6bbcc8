//go:build rp2040 || rp2350

package main

import (
	"time"

	"modulio/core"
)

func main() {
	// Give USB CDC a moment to enumerate before the banner goes out.
	time.Sleep(500 * time.Millisecond)

	port := openTransport()

	// Register hardware drivers before any device can be created
	core.SetGPIODriver(NewRPGPIODriver())
	core.SetPWMDriver(NewRPPWMDriver())
	core.SetLoadCellDriver(NewHX710Driver())

	reg := core.NewRegistry(core.MaxDevices)
	ses := core.NewSession()
	con := core.NewConsole(port)
	dis := core.NewDispatcher(reg, ses, con)
	loop := core.NewLoop(reg, ses, dis, core.NewSystemClock(), newLineReader(port))

	// Boot banner. Hosts drain this before sending commands.
	con.Plain("ModulIO " + core.Version)

	loop.Run()
}
