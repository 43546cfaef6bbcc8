package core

import (
	"modulio/protocol"
)

// Dispatcher interprets one validated command line per call and applies it
// to the registry and session it was built around. It keeps no state of its
// own between invocations.
type Dispatcher struct {
	reg *Registry
	ses *Session
	con *Console
}

// NewDispatcher binds a dispatcher to its collaborators.
func NewDispatcher(reg *Registry, ses *Session, con *Console) *Dispatcher {
	return &Dispatcher{reg: reg, ses: ses, con: con}
}

// HandleLine runs the full reception pipeline on one received line:
// automated-mode frame validation, tokenizing, verb dispatch. Every failure
// is answered and dropped; no category is fatal.
func (d *Dispatcher) HandleLine(line string, now int64) {
	payload := line

	if d.ses.Automated {
		var want uint8
		var err error
		payload, want, err = protocol.ParseFrame(line)
		switch err {
		case nil:
		case protocol.ErrNoSeparator:
			d.con.Warn("missing checksum separator")
			return
		case protocol.ErrPayloadTooLong:
			d.con.Warn("payload too long")
			return
		default:
			d.con.Warn("malformed checksum field")
			return
		}

		computed := protocol.Checksum([]byte(payload))
		if computed != want {
			// Report the value we computed so the sender can diagnose
			// the drift.
			d.con.Recv("BAD " + protocol.FormatChecksum(computed))
			return
		}
		d.con.Recv("OK")
	}

	tokens := protocol.Tokenize(payload, MaxTokens)
	if len(tokens) == 0 || tokens[0] == "" {
		// Nothing to do; a blank line is not an error.
		return
	}

	switch tokens[0][0] {
	case 'c':
		d.handleControl(tokens)
	case 'h':
		d.handleHelp()
	case 'i':
		d.handleInfo()
	case 'r':
		d.handleRemove(tokens)
	case 's':
		d.handleSetup(tokens)
	case 't':
		d.handleTelemetryToggle(tokens)
	case 'u':
		d.handleTelemetryPeriod(tokens)
	case 'v':
		d.handleView()
	case 'z':
		d.handleMode(tokens)
	default:
		d.con.Errr("invalid selection")
	}
}

// handleControl writes a value to a device: "c <index> <value>".
func (d *Dispatcher) handleControl(tokens []string) {
	if len(tokens) < 3 {
		d.con.Warn("missing arguments")
		return
	}
	index, ok := atoi(tokens[1])
	if !ok {
		d.con.Warn("invalid arguments")
		return
	}
	if err := d.reg.ControlAt(index, tokens[2]); err != nil {
		d.con.Errr(err.Error())
		return
	}
	d.con.Conf("device " + itoa(index) + " set to " + tokens[2])
}

// handleRemove zeroes and removes a device: "r <index>".
func (d *Dispatcher) handleRemove(tokens []string) {
	if len(tokens) < 2 {
		d.con.Warn("missing arguments")
		return
	}
	index, ok := atoi(tokens[1])
	if !ok {
		d.con.Warn("invalid arguments")
		return
	}
	if err := d.reg.RemoveAt(index); err != nil {
		d.con.Errr(err.Error())
		return
	}
	d.con.Conf("removed device " + itoa(index))
}

// handleSetup creates and configures a device: "s <kind> <name> <pin...>".
// The kind letter selects the factory and its own argument count.
func (d *Dispatcher) handleSetup(tokens []string) {
	if len(tokens) < 3 {
		d.con.Warn("missing arguments")
		return
	}
	if tokens[1] == "" {
		d.con.Errr("invalid selection")
		return
	}
	name := tokens[2]

	var dev Device
	var err error
	switch tokens[1][0] {
	case SelButton:
		pin, ok := d.pinArg(tokens, 3)
		if !ok {
			return
		}
		dev, err = NewButton(name, pin)
	case SelLED:
		pin, ok := d.pinArg(tokens, 3)
		if !ok {
			return
		}
		dev, err = NewLED(name, pin)
	case SelMotor:
		pin, ok := d.pinArg(tokens, 3)
		if !ok {
			return
		}
		dev, err = NewMotor(name, pin)
	case SelPressure:
		dataPin, ok := d.pinArg(tokens, 3)
		if !ok {
			return
		}
		clkPin, ok := d.pinArg(tokens, 4)
		if !ok {
			return
		}
		dev, err = NewPressureSensor(name, dataPin, clkPin)
	default:
		d.con.Errr("invalid selection")
		return
	}
	if err != nil {
		d.con.Errr(err.Error())
		return
	}

	index, err := d.reg.ConfigureAndAdd(dev)
	if err != nil {
		d.con.Errr(err.Error())
		return
	}
	d.con.Conf("added " + dev.Kind().String() + " " + name + " at index " + itoa(index))
}

// pinArg fetches and parses one pin argument, answering for any failure.
func (d *Dispatcher) pinArg(tokens []string, pos int) (int, bool) {
	if len(tokens) <= pos {
		d.con.Warn("missing arguments")
		return 0, false
	}
	pin, ok := atoi(tokens[pos])
	if !ok {
		d.con.Warn("invalid arguments")
		return 0, false
	}
	return pin, true
}

// handleTelemetryToggle enables or disables the data stream: "t <0|1>".
func (d *Dispatcher) handleTelemetryToggle(tokens []string) {
	if len(tokens) < 2 {
		d.con.Warn("missing arguments")
		return
	}
	n, ok := atoi(tokens[1])
	if !ok {
		d.con.Warn("invalid arguments")
		return
	}
	d.ses.SetTelemetry(n != 0)
	if n != 0 {
		d.con.Conf("telemetry on")
	} else {
		d.con.Conf("telemetry off")
	}
}

// handleTelemetryPeriod sets the data stream period: "u <ms>".
func (d *Dispatcher) handleTelemetryPeriod(tokens []string) {
	if len(tokens) < 2 {
		d.con.Warn("missing arguments")
		return
	}
	ms, ok := atoi(tokens[1])
	if !ok {
		d.con.Warn("invalid arguments")
		return
	}
	if err := d.ses.SetPeriod(ms); err != nil {
		d.con.Errr(err.Error())
		return
	}
	d.con.Conf("telemetry period " + itoa(ms) + " ms")
}

// handleMode switches between interactive and automated handling: "z <0|1>".
func (d *Dispatcher) handleMode(tokens []string) {
	if len(tokens) < 2 {
		d.con.Warn("missing arguments")
		return
	}
	n, ok := atoi(tokens[1])
	if !ok {
		d.con.Warn("invalid arguments")
		return
	}
	d.ses.Automated = n != 0
	if d.ses.Automated {
		d.con.Conf("automated mode on")
	} else {
		d.con.Conf("interactive mode on")
	}
}

// handleView lists every live device: index, kind, name, pins.
func (d *Dispatcher) handleView() {
	infos := d.reg.List()
	if len(infos) == 0 {
		d.con.Conf("no devices")
		return
	}
	for _, info := range infos {
		d.con.Conf(itoa(info.Index) + " " + info.Kind.String() + " " + info.Name + " " + pinsToString(info.Pins))
	}
}

// handleHelp prints the command summary. Suppressed in automated mode,
// where no human is reading.
func (d *Dispatcher) handleHelp() {
	if d.ses.Automated {
		return
	}
	d.con.Plain("commands:")
	d.con.Plain("  c <index> <value>       write value to device")
	d.con.Plain("  h                       this help")
	d.con.Plain("  i                       program identity")
	d.con.Plain("  r <index>               zero and remove device")
	d.con.Plain("  s b|l|m <name> <pin>    create button/led/motor")
	d.con.Plain("  s p <name> <data> <clk> create pressure sensor")
	d.con.Plain("  t <0|1>                 telemetry off/on")
	d.con.Plain("  u <ms>                  telemetry period")
	d.con.Plain("  v                       list devices")
	d.con.Plain("  z <0|1>                 interactive/automated mode")
}

// handleInfo prints the program identity. Suppressed in automated mode.
func (d *Dispatcher) handleInfo() {
	if d.ses.Automated {
		return
	}
	d.con.Plain("ModulIO " + Version)
}

// pinsToString joins a pin list with single spaces.
func pinsToString(pins []Pin) string {
	s := ""
	for i, p := range pins {
		if i > 0 {
			s += " "
		}
		s += itoa(int(p))
	}
	return s
}
