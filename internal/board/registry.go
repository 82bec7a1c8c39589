// internal/board/registry.go
package board

import (
	"errors"
	"fmt"
)

// ErrNotFound means no board is registered at the requested address.
var ErrNotFound = errors.New("board: not found")

type entry struct {
	addr  BusAddress
	board Board
}

// Registry owns every driver board on the map, keyed by bus address.
// Registering the same address twice creates two independent entries;
// callers must not do so (startup config validation rejects it).
type Registry struct {
	entries []entry
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a board under its bus address.
func (r *Registry) Register(addr BusAddress, b Board) {
	r.entries = append(r.entries, entry{addr: addr, board: b})
}

// Resolve looks up the board at (controller, addr). A miss is a fatal
// configuration error at startup: the caller cannot build an airport
// without its board.
func (r *Registry) Resolve(controller int, addr uint16) (Board, error) {
	for _, e := range r.entries {
		if e.addr.Controller == controller && e.addr.Addr == addr {
			return e.board, nil
		}
	}
	return nil, fmt.Errorf("%w: controller=%d addr=0x%02X", ErrNotFound, controller, addr)
}

// Len reports the number of registered boards.
func (r *Registry) Len() int {
	return len(r.entries)
}
