// internal/metrics/metrics.go
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// PollCycles counts completed passes over the full airport list.
	PollCycles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "metarmap_poll_cycles_total",
		Help: "Completed polls of the full airport list",
	})

	// FetchFailures counts failed flight-category fetches. Stage is
	// "primary" or "alternate".
	FetchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "metarmap_fetch_failures_total",
		Help: "Failed flight category fetches",
	}, []string{"airport", "stage"})

	// FlightCategory reports the current category per airport
	// (0 unknown, 1 VFR, 2 MVFR, 3 IFR, 4 LIFR).
	FlightCategory = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "metarmap_flight_category",
		Help: "Current flight category (0 unknown, 1 VFR, 2 MVFR, 3 IFR, 4 LIFR)",
	}, []string{"airport"})

	// WifiAttempts counts startup wifi connection attempts.
	WifiAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "metarmap_wifi_connect_attempts_total",
		Help: "WiFi connection attempts during startup",
	})
)

// Serve exposes /metrics on addr. Blocks until the listener fails.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}
