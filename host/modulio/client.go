// Package modulio is the host-side companion library for a ModulIO board.
// It speaks the board's line protocol over a serial port, tracks device
// proxies that mirror the board's registry, and exposes the streamed
// telemetry through thread-safe value caches.
package modulio

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"modulio/host/serial"
	"modulio/protocol"
)

const (
	// BootupDelay is how long the board takes to reset and print its
	// banner after the serial port opens.
	BootupDelay = 2 * time.Second

	// ResponseTimeout bounds the wait for a Conf:/Errr: reply to a
	// configuration command.
	ResponseTimeout = 2 * time.Second

	// DefaultStreamPeriodMS matches the board's power-on stream period.
	DefaultStreamPeriodMS = 5000
)

// Kind selects a device type when creating devices on the board.
type Kind byte

const (
	Button         Kind = 'b'
	LED            Kind = 'l'
	Motor          Kind = 'm'
	PressureSensor Kind = 'p'
)

// KindFromString maps a config-file kind name to its selection letter.
func KindFromString(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "button":
		return Button, nil
	case "led":
		return LED, nil
	case "motor", "dcmotor":
		return Motor, nil
	case "pressure", "pressuresensor":
		return PressureSensor, nil
	}
	return 0, fmt.Errorf("unknown device kind %q", s)
}

// Client represents a connection to a ModulIO board.
type Client struct {
	mu   sync.Mutex
	port serial.Port
	log  *slog.Logger

	// Device proxies ordered by board index. The board compacts its
	// registry on removal; devices mirrors that exactly.
	devices []*Device
	byName  map[string]*Device

	automated bool
	recorder  *recorder

	// Handshake channels for Conf:/Errr: replies. Capacity 1; drained
	// before each configuration command so stale replies never match.
	confCh chan string
	errCh  chan string

	done chan struct{}
	wg   sync.WaitGroup
}

// NewClient creates a new client (not yet connected).
func NewClient() *Client {
	return &Client{
		log:    slog.Default(),
		byName: make(map[string]*Device),
		confCh: make(chan string, 1),
		errCh:  make(chan string, 1),
	}
}

// SetLogger replaces the client's logger. Must be called before Connect.
func (c *Client) SetLogger(log *slog.Logger) {
	c.log = log
}

// Connect connects to a board via serial port.
func (c *Client) Connect(device string) error {
	return c.ConnectWithConfig(serial.DefaultConfig(device))
}

// ConnectWithConfig connects to a board with a custom serial config.
// Opening the port resets most boards, so this waits out the bootup
// delay before enabling the data stream.
func (c *Client) ConnectWithConfig(cfg *serial.Config) error {
	port, err := serial.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open serial port: %w", err)
	}
	return c.connectPort(port, BootupDelay)
}

// connectPort finishes connection setup on an already open port.
// Split out so tests can drive the client over an in-memory port.
func (c *Client) connectPort(port serial.Port, bootup time.Duration) error {
	c.mu.Lock()
	if c.port != nil {
		c.mu.Unlock()
		return fmt.Errorf("already connected")
	}
	c.port = port
	c.done = make(chan struct{})
	c.mu.Unlock()

	// The receive loop starts before the bootup delay ends so the
	// board's banner and any power-on noise are drained, not stacked.
	c.wg.Add(1)
	go c.receiveLoop()

	time.Sleep(bootup)

	if err := c.EnableStream(); err != nil {
		return err
	}
	c.log.Debug("connected")
	return nil
}

// Close tears the session down: removes every device (which zeroes
// outputs on the board), restores the default stream period, disables
// the stream and closes the port.
func (c *Client) Close() error {
	c.mu.Lock()
	port := c.port
	c.mu.Unlock()
	if port == nil {
		return nil
	}

	if c.Recording() {
		if err := c.StopRecording(); err != nil {
			c.log.Warn("stop recording on close", "err", err)
		}
	}

	for len(c.Devices()) > 0 {
		name := c.Devices()[0].Name()
		if err := c.RemoveDevice(name); err != nil {
			c.log.Warn("remove device on close", "device", name, "err", err)
			break
		}
	}

	if err := c.SetStreamPeriod(DefaultStreamPeriodMS); err != nil {
		c.log.Warn("restore stream period", "err", err)
	}
	if err := c.DisableStream(); err != nil {
		c.log.Warn("disable stream", "err", err)
	}

	c.mu.Lock()
	close(c.done)
	c.port = nil
	c.mu.Unlock()
	c.wg.Wait()
	return port.Close()
}

// IsConnected returns whether the client holds an open port.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.port != nil
}

// Devices returns the tracked device proxies in board-index order.
func (c *Client) Devices() []*Device {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Device, len(c.devices))
	copy(out, c.devices)
	return out
}

// Device returns the proxy for a device by name, or nil.
func (c *Client) Device(name string) *Device {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.byName[name]
}

// CreateDevice asks the board to create a device and waits for the
// configuration reply. On success the returned proxy mirrors the
// board-side registry slot.
func (c *Client) CreateDevice(kind Kind, name string, pins ...int) (*Device, error) {
	if strings.ContainsRune(name, ' ') {
		return nil, fmt.Errorf("device name %q contains a space", name)
	}
	c.mu.Lock()
	if c.recorder != nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("cannot create devices while recording")
	}
	if _, ok := c.byName[name]; ok {
		c.mu.Unlock()
		return nil, fmt.Errorf("device %q already exists", name)
	}
	c.mu.Unlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "s %c %s", byte(kind), name)
	for _, p := range pins {
		fmt.Fprintf(&sb, " %d", p)
	}

	if err := c.command(sb.String()); err != nil {
		return nil, err
	}

	d := &Device{client: c, kind: kind, name: name, pins: pins}
	c.mu.Lock()
	d.index = len(c.devices)
	c.devices = append(c.devices, d)
	c.byName[name] = d
	c.mu.Unlock()
	return d, nil
}

// RemoveDevice asks the board to remove a device by name and waits for
// the reply. Remaining proxies are reindexed the same way the board
// compacts its registry.
func (c *Client) RemoveDevice(name string) error {
	c.mu.Lock()
	if c.recorder != nil {
		c.mu.Unlock()
		return fmt.Errorf("cannot remove devices while recording")
	}
	d, ok := c.byName[name]
	if !ok {
		c.mu.Unlock()
		return fmt.Errorf("no device named %q", name)
	}
	index := d.index
	c.mu.Unlock()

	if err := c.command(fmt.Sprintf("r %d", index)); err != nil {
		return err
	}

	c.mu.Lock()
	c.devices = append(c.devices[:index], c.devices[index+1:]...)
	delete(c.byName, name)
	for i, dev := range c.devices {
		dev.setIndex(i)
	}
	c.mu.Unlock()
	return nil
}

// SetStreamPeriod sets the telemetry period in milliseconds (minimum 1).
func (c *Client) SetStreamPeriod(ms int) error {
	if ms < 1 {
		return fmt.Errorf("stream period must be at least 1 ms, got %d", ms)
	}
	return c.send(fmt.Sprintf("u %d", ms))
}

// EnableStream turns the board's telemetry stream on.
func (c *Client) EnableStream() error {
	return c.send("t 1")
}

// DisableStream turns the board's telemetry stream off.
func (c *Client) DisableStream() error {
	return c.send("t 0")
}

// SetAutomated switches the board between interactive and automated
// mode. In automated mode every subsequent command is framed with a
// checksum prefix.
func (c *Client) SetAutomated(on bool) error {
	arg := "0"
	if on {
		arg = "1"
	}
	if err := c.send("z " + arg); err != nil {
		return err
	}
	c.mu.Lock()
	c.automated = on
	c.mu.Unlock()
	return nil
}

// Automated reports whether commands are currently checksum-framed.
func (c *Client) Automated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.automated
}

// command sends a configuration command and waits for the board's
// Conf:/Errr: reply.
func (c *Client) command(payload string) error {
	// Drain stale replies so an earlier unsolicited line cannot
	// satisfy this handshake.
	select {
	case <-c.confCh:
	default:
	}
	select {
	case <-c.errCh:
	default:
	}

	if err := c.send(payload); err != nil {
		return err
	}

	select {
	case <-c.confCh:
		return nil
	case msg := <-c.errCh:
		return fmt.Errorf("board error: %s", msg)
	case <-time.After(ResponseTimeout):
		return fmt.Errorf("timeout waiting for reply to %q", payload)
	}
}

// send writes one command line, framing it when in automated mode.
func (c *Client) send(payload string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.port == nil {
		return fmt.Errorf("not connected")
	}
	line := payload
	if c.automated {
		line = protocol.EncodeFrame(payload)
	}
	if _, err := c.port.Write([]byte(line + "\n")); err != nil {
		return fmt.Errorf("serial write: %w", err)
	}
	return nil
}

// receiveLoop reads the port until Close, splitting the byte stream into
// lines and classifying them by prefix.
func (c *Client) receiveLoop() {
	defer c.wg.Done()
	buf := make([]byte, 256)
	var pending []byte
	for {
		select {
		case <-c.done:
			return
		default:
		}

		c.mu.Lock()
		port := c.port
		c.mu.Unlock()
		if port == nil {
			return
		}

		n, err := port.Read(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			for {
				i := indexEOL(pending)
				if i < 0 {
					break
				}
				line := strings.TrimRight(string(pending[:i]), "\r")
				pending = pending[i+1:]
				if line != "" {
					c.handleLine(line)
				}
			}
		}
		if err != nil && err != io.EOF {
			select {
			case <-c.done:
			default:
				c.log.Warn("serial read", "err", err)
			}
			return
		}
	}
}

func indexEOL(b []byte) int {
	for i, c := range b {
		if c == '\n' || c == '\r' {
			return i
		}
	}
	return -1
}

// handleLine classifies one received line by its prefix.
func (c *Client) handleLine(line string) {
	if len(line) < 6 {
		c.log.Debug("short line", "line", line)
		return
	}
	body := line[6:]
	switch line[:5] {
	case "Conf:":
		select {
		case c.confCh <- body:
		default:
		}
	case "Errr:":
		select {
		case c.errCh <- body:
		default:
		}
	case "Data:":
		c.handleData(body)
	case "Recv:":
		if strings.HasPrefix(body, "BAD") {
			c.log.Warn("checksum rejected", "reply", body)
		}
	case "Warn:":
		c.log.Warn("board warning", "msg", body)
	default:
		c.log.Debug("unclassified line", "line", line)
	}
}

// handleData parses a telemetry line body: space-separated name/value
// pairs terminated by a semicolon. Samples that do not match the
// tracked device set are discarded.
func (c *Client) handleData(body string) {
	if !strings.HasSuffix(body, ";") {
		c.log.Debug("unterminated data line", "body", body)
		return
	}
	fields := strings.Fields(body[:len(body)-1])
	if len(fields)%2 != 0 {
		c.log.Debug("odd data field count", "body", body)
		return
	}

	c.mu.Lock()
	if len(fields) != 2*len(c.devices) {
		c.mu.Unlock()
		c.log.Debug("data sample does not match device count", "fields", len(fields))
		return
	}
	values := make([]string, len(c.devices))
	for i, d := range c.devices {
		name, value := fields[2*i], fields[2*i+1]
		if name != d.name {
			c.mu.Unlock()
			c.log.Debug("data sample name mismatch", "want", d.name, "got", name)
			return
		}
		values[i] = value
	}
	rec := c.recorder
	c.mu.Unlock()

	now := time.Now()
	for i, d := range c.Devices() {
		d.setValue(values[i])
	}
	if rec != nil {
		rec.record(now, values)
	}
}
