package modulio

import (
	"fmt"
	"sync"
)

// Device is a host-side proxy for a device slot on the board. Its value
// cache is written only by the client's receive loop.
type Device struct {
	client *Client
	kind   Kind
	name   string
	pins   []int

	mu    sync.Mutex
	index int
	value string
}

// Name returns the device name used on the board.
func (d *Device) Name() string { return d.name }

// Kind returns the device kind letter.
func (d *Device) Kind() Kind { return d.kind }

// Pins returns the pins the device was created with.
func (d *Device) Pins() []int { return d.pins }

// Index returns the device's current board registry index. Indices
// shift down when an earlier device is removed.
func (d *Device) Index() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.index
}

// Value returns the most recent streamed value, or "" before the first
// sample arrives.
func (d *Device) Value() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.value
}

// Set writes a control value to the device.
func (d *Device) Set(value string) error {
	return d.client.send(fmt.Sprintf("c %d %s", d.Index(), value))
}

func (d *Device) setIndex(i int) {
	d.mu.Lock()
	d.index = i
	d.mu.Unlock()
}

func (d *Device) setValue(v string) {
	d.mu.Lock()
	d.value = v
	d.mu.Unlock()
}
