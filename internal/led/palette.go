// internal/led/palette.go
package led

import "github.com/metarmap/metarmap/internal/metar"

// Display palette, packed 24-bit RGB. Yellow doubles as the
// unknown/degraded indicator; Connecting marks a wifi attempt in
// progress.
const (
	Green      uint32 = 0x00FF00
	Red        uint32 = 0xFF0000
	Blue       uint32 = 0x0000FF
	Purple     uint32 = 0xFF00FF
	Yellow     uint32 = 0xFF2200
	Connecting uint32 = 0x00F9E9
)

// ColorFor maps a flight category onto its display color. Total:
// anything unrecognized renders yellow.
func ColorFor(cat metar.FlightCategory) uint32 {
	switch cat {
	case metar.VFR:
		return Green
	case metar.MVFR:
		return Blue
	case metar.IFR:
		return Red
	case metar.LIFR:
		return Purple
	default:
		return Yellow
	}
}
