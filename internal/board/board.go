// internal/board/board.go
package board

// Pin is one digital channel handle on a driver board.
type Pin interface {
	SwitchToOutput(level bool) error
}

// Board abstracts a single addressable LED driver device.
// Implementations own the register protocol; consumers depend on
// channel geometry only.
type Board interface {
	Pin(index int) (Pin, error)
	SetCurrent(index int, value uint8) error
}

// BusAddress identifies a Board by bus controller and device address.
// Immutable once assigned.
type BusAddress struct {
	Controller int
	Addr       uint16
}
