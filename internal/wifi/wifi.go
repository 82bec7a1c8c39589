// internal/wifi/wifi.go
package wifi

import (
	"context"
	"fmt"
	"time"

	"github.com/metarmap/metarmap/internal/led"
	"github.com/metarmap/metarmap/internal/logging"
	"github.com/metarmap/metarmap/internal/metrics"
)

// Radio joins a wireless network. One attempt per call; retry policy
// lives in the Manager.
type Radio interface {
	Connect(ctx context.Context, ssid, password string) error
}

// Config is the Manager's immutable runtime config.
type Config struct {
	SSID       string
	Password   string
	Attempts   int
	Delay      time.Duration
	Brightness float64
}

// Manager runs the bounded startup connection loop with LED feedback.
// Blocking, one-shot: it is not part of the polling cycle.
type Manager struct {
	radio Radio
	panel *led.Panel
	cfg   Config
	log   *logging.Logger
}

func NewManager(radio Radio, panel *led.Panel, cfg Config, log *logging.Logger) (*Manager, error) {
	if radio == nil {
		return nil, fmt.Errorf("wifi: radio required")
	}
	if cfg.Attempts <= 0 {
		return nil, fmt.Errorf("wifi: attempts must be > 0 (got %d)", cfg.Attempts)
	}
	if cfg.Delay <= 0 {
		return nil, fmt.Errorf("wifi: delay must be > 0 (got %v)", cfg.Delay)
	}
	return &Manager{radio: radio, panel: panel, cfg: cfg, log: log}, nil
}

// Connect tries up to the configured attempt count, painting the
// connecting color across the panel before each try. Success stops the
// loop; exhaustion returns the last error. The caller owns the final
// green/red indication and the process exit.
func (m *Manager) Connect(ctx context.Context) error {
	var lastErr error

	for attempt := 1; attempt <= m.cfg.Attempts; attempt++ {
		if err := m.panel.Fill(led.Connecting, m.cfg.Brightness); err != nil {
			m.log.Warn("connecting indicator failed", "error", err)
		}

		m.log.Info("connecting to wifi", "ssid", m.cfg.SSID, "attempt", attempt)
		metrics.WifiAttempts.Inc()

		err := m.radio.Connect(ctx, m.cfg.SSID, m.cfg.Password)
		if err == nil {
			m.log.Info("wifi connected", "ssid", m.cfg.SSID, "attempt", attempt)
			return nil
		}
		lastErr = err
		m.log.Warn("wifi attempt failed", "attempt", attempt, "error", err)

		if attempt < m.cfg.Attempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(m.cfg.Delay):
			}
		}
	}

	return fmt.Errorf("wifi: all %d attempts failed: %w", m.cfg.Attempts, lastErr)
}
