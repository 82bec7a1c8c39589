// internal/led/panel.go
package led

import (
	"fmt"
	"strings"
)

// Panel is the full wall of LEDs in map order. It exists for whole-map
// sweeps (startup sequence, connectivity feedback); each LED is still
// owned by its airport.
type Panel struct {
	leds []*RGB
}

func NewPanel() *Panel {
	return &Panel{}
}

// Add appends an LED. Sweep order is add order.
func (p *Panel) Add(l *RGB) {
	p.leds = append(p.leds, l)
}

// Len reports the number of LEDs on the panel.
func (p *Panel) Len() int {
	return len(p.leds)
}

// Fill paints every LED the same color. Best effort: a failed write on
// one LED does not stop the sweep.
func (p *Panel) Fill(color uint32, brightness float64) error {
	var errs []string

	for i, l := range p.leds {
		if err := l.SetColor(color, brightness); err != nil {
			errs = append(errs, fmt.Sprintf("led %d: %v", i, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("panel fill: %s", strings.Join(errs, "; "))
	}
	return nil
}
