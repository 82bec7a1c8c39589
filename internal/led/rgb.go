// internal/led/rgb.go
package led

import (
	"fmt"

	"github.com/metarmap/metarmap/internal/board"
)

// RGB is one physical LED: three constant-current channels on a single
// driver board. The board is shared with other LEDs; the channel
// indices are exclusive to this one.
type RGB struct {
	board board.Board

	red   int
	green int
	blue  int
}

// New binds three distinct channel indices on one board and switches
// them to output.
func New(b board.Board, red, green, blue int) (*RGB, error) {
	if red == green || red == blue || green == blue {
		return nil, fmt.Errorf("led: channel indices must be distinct (got %d %d %d)", red, green, blue)
	}

	for _, idx := range []int{red, green, blue} {
		p, err := b.Pin(idx)
		if err != nil {
			return nil, fmt.Errorf("led: bind channel %d: %w", idx, err)
		}
		if err := p.SwitchToOutput(true); err != nil {
			return nil, fmt.Errorf("led: configure channel %d: %w", idx, err)
		}
	}

	return &RGB{board: b, red: red, green: green, blue: blue}, nil
}

// SetColor decomposes a packed 24-bit color and writes each channel
// scaled by brightness. Brightness range is the caller's contract; no
// check happens here.
func (l *RGB) SetColor(color uint32, brightness float64) error {
	r := uint8(color >> 16)
	g := uint8(color >> 8)
	b := uint8(color)

	if err := l.board.SetCurrent(l.red, scale(r, brightness)); err != nil {
		return fmt.Errorf("led: write red channel %d: %w", l.red, err)
	}
	if err := l.board.SetCurrent(l.green, scale(g, brightness)); err != nil {
		return fmt.Errorf("led: write green channel %d: %w", l.green, err)
	}
	if err := l.board.SetCurrent(l.blue, scale(b, brightness)); err != nil {
		return fmt.Errorf("led: write blue channel %d: %w", l.blue, err)
	}
	return nil
}

// scale truncates toward zero, matching integer conversion of
// channel * brightness.
func scale(v uint8, brightness float64) uint8 {
	return uint8(float64(v) * brightness)
}
