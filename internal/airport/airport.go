// internal/airport/airport.go
package airport

import (
	"context"

	"github.com/metarmap/metarmap/internal/led"
	"github.com/metarmap/metarmap/internal/logging"
	"github.com/metarmap/metarmap/internal/metar"
	"github.com/metarmap/metarmap/internal/metrics"
)

// Fetcher retrieves the current flight category for an airport code.
// One attempt per call; fallback policy lives here, not in the fetcher.
type Fetcher interface {
	Fetch(ctx context.Context, code string) (metar.FlightCategory, error)
}

// Airport is one monitored airport and the LED it owns. The stored
// category always matches the color on the LED, except mid-update.
type Airport struct {
	Code      string
	Alternate string

	led        *led.RGB
	brightness float64
	category   metar.FlightCategory
	log        *logging.Logger
}

// New builds an airport in the Unknown state and paints its LED yellow.
func New(code, alternate string, l *led.RGB, brightness float64, log *logging.Logger) (*Airport, error) {
	if err := l.SetColor(led.Yellow, brightness); err != nil {
		return nil, err
	}
	return &Airport{
		Code:       code,
		Alternate:  alternate,
		led:        l,
		brightness: brightness,
		category:   metar.Unknown,
		log:        log,
	}, nil
}

// Category returns the last known flight category.
func (a *Airport) Category() metar.FlightCategory {
	return a.category
}

// Update refreshes the flight category: primary code first, alternate
// on any failure, Unknown when both fail. The LED is rewritten only
// when the category actually changed, so an unchanged upstream costs
// no bus traffic.
func (a *Airport) Update(ctx context.Context, f Fetcher) {
	cat, err := f.Fetch(ctx, a.Code)
	if err != nil {
		metrics.FetchFailures.WithLabelValues(a.Code, "primary").Inc()
		a.log.Info("trying alternate",
			"airport", a.Code,
			"alternate", a.Alternate,
			"reason", err)

		cat, err = f.Fetch(ctx, a.Alternate)
		if err != nil {
			metrics.FetchFailures.WithLabelValues(a.Code, "alternate").Inc()
			a.log.Error("flight category unavailable",
				"airport", a.Code,
				"error", err)
			cat = metar.Unknown
		}
	}

	if cat == a.category {
		return
	}

	a.category = cat
	metrics.FlightCategory.WithLabelValues(a.Code).Set(float64(cat))

	if err := a.led.SetColor(led.ColorFor(cat), a.brightness); err != nil {
		a.log.Error("led write failed",
			"airport", a.Code,
			"category", cat,
			"error", err)
	}
}
