package core

import "errors"

// Validation errors surfaced through the protocol as Errr: responses.
// Exported so tests and the host-side tooling can match them with errors.Is.
var (
	// ErrCapacity is returned when the registry is full.
	ErrCapacity = errors.New("device capacity reached")

	// ErrIndex is returned for a device index outside [0, count).
	ErrIndex = errors.New("device index out of range")

	// ErrPinReserved is returned when a pin belongs to the transport.
	ErrPinReserved = errors.New("pin reserved for transport")

	// ErrPinRange is returned when a pin is negative or above MaxPin.
	ErrPinRange = errors.New("pin out of range")
)

// ValidatePin applies the creation-time pin checks shared by every device
// kind. It operates on the raw parsed integer so a negative argument is
// caught before conversion to Pin.
func ValidatePin(n int) error {
	if n < 0 || n > MaxPin {
		return ErrPinRange
	}
	if isReservedPin(Pin(n)) {
		return ErrPinReserved
	}
	return nil
}
