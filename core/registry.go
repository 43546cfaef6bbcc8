package core

// Registry owns the live devices and hands out their protocol indices.
// Occupied indices are always the contiguous range [0, count): devices are
// appended at count, and removal left-shifts everything above the hole.
// Indices are therefore position-stable only until the next removal of a
// lower-indexed device.
type Registry struct {
	devices []Device
	max     int
}

// DeviceInfo is one row of a registry listing.
type DeviceInfo struct {
	Index int
	Kind  Kind
	Name  string
	Pins  []Pin
}

// NewRegistry creates an empty registry with the given capacity.
func NewRegistry(max int) *Registry {
	return &Registry{
		devices: make([]Device, 0, max),
		max:     max,
	}
}

// Len returns the number of live devices.
func (r *Registry) Len() int { return len(r.devices) }

// Add appends a device, returning its index, or ErrCapacity when full.
func (r *Registry) Add(d Device) (int, error) {
	if len(r.devices) >= r.max {
		return 0, ErrCapacity
	}
	r.devices = append(r.devices, d)
	return len(r.devices) - 1, nil
}

// ConfigureAndAdd adds the device and immediately configures it. The device
// has already passed pin validation, so configuration cannot fail and no
// rollback path exists.
func (r *Registry) ConfigureAndAdd(d Device) (int, error) {
	idx, err := r.Add(d)
	if err != nil {
		return 0, err
	}
	d.Configure()
	return idx, nil
}

// Get returns the device at index.
func (r *Registry) Get(index int) (Device, error) {
	if index < 0 || index >= len(r.devices) {
		return nil, ErrIndex
	}
	return r.devices[index], nil
}

// ControlAt forwards a write to the device at index.
func (r *Registry) ControlAt(index int, value string) error {
	d, err := r.Get(index)
	if err != nil {
		return err
	}
	d.Write(value)
	return nil
}

// RemoveAt drives the device at index to its neutral value, destroys it and
// compacts the indices above it.
func (r *Registry) RemoveAt(index int) error {
	d, err := r.Get(index)
	if err != nil {
		return err
	}

	// Leave the hardware in a safe state before the instance goes away.
	d.Write("0")

	copy(r.devices[index:], r.devices[index+1:])
	r.devices[len(r.devices)-1] = nil
	r.devices = r.devices[:len(r.devices)-1]
	return nil
}

// List returns an ordered snapshot of the live devices.
func (r *Registry) List() []DeviceInfo {
	infos := make([]DeviceInfo, len(r.devices))
	for i, d := range r.devices {
		infos[i] = DeviceInfo{Index: i, Kind: d.Kind(), Name: d.Name(), Pins: d.PinList()}
	}
	return infos
}

// PollAll runs one poll cycle over every live device in index order.
func (r *Registry) PollAll(now int64) {
	for _, d := range r.devices {
		d.Poll(now)
	}
}
