// internal/metar/category.go
package metar

// FlightCategory is the coarse visibility/ceiling classification
// reported for an airport.
type FlightCategory int

const (
	Unknown FlightCategory = iota
	VFR
	MVFR
	IFR
	LIFR
)

func (c FlightCategory) String() string {
	switch c {
	case VFR:
		return "VFR"
	case MVFR:
		return "MVFR"
	case IFR:
		return "IFR"
	case LIFR:
		return "LIFR"
	default:
		return "UNKNOWN"
	}
}

// ParseFlightCategory maps a reported category string onto a
// FlightCategory. Anything unrecognized is Unknown, never an error.
func ParseFlightCategory(s string) FlightCategory {
	switch s {
	case "VFR":
		return VFR
	case "MVFR":
		return MVFR
	case "IFR":
		return IFR
	case "LIFR":
		return LIFR
	default:
		return Unknown
	}
}
