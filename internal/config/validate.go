// internal/config/validate.go
package config

import (
	"errors"
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(s *Settings) error {
	// ------------------------------------------------------------
	// HARDWARE TOPOLOGY
	// ------------------------------------------------------------

	if len(s.Controllers) == 0 {
		return errors.New("config: at least one controller required")
	}
	if len(s.Boards) == 0 {
		return errors.New("config: at least one board required")
	}

	// key = controller | address
	seen := make(map[string]struct{})

	for i, b := range s.Boards {
		if b.Controller < 0 || b.Controller >= len(s.Controllers) {
			return fmt.Errorf(
				"config: board %d: controller %d out of range [0,%d]",
				i, b.Controller, len(s.Controllers)-1,
			)
		}

		addr, err := ParseDeviceAddr(b.Address)
		if err != nil {
			return fmt.Errorf("config: board %d: %w", i, err)
		}

		key := fmt.Sprintf("%d|%d", b.Controller, addr)
		if _, dup := seen[key]; dup {
			return fmt.Errorf(
				"config: duplicate board: controller=%d address=0x%02X",
				b.Controller, addr,
			)
		}
		seen[key] = struct{}{}
	}

	// ------------------------------------------------------------
	// FILES AND INTERVALS
	// ------------------------------------------------------------

	if s.AirportsFile == "" {
		return errors.New("config: airports_file required")
	}
	if s.Poll.IntervalSeconds < 0 {
		return fmt.Errorf("config: poll interval must not be negative (got %d)", s.Poll.IntervalSeconds)
	}
	if s.Weather.TimeoutSeconds < 0 {
		return fmt.Errorf("config: weather timeout must not be negative (got %d)", s.Weather.TimeoutSeconds)
	}
	if s.WiFi.Attempts < 0 {
		return fmt.Errorf("config: wifi attempts must not be negative (got %d)", s.WiFi.Attempts)
	}
	if s.WiFi.DelaySeconds < 0 {
		return fmt.Errorf("config: wifi delay must not be negative (got %d)", s.WiFi.DelaySeconds)
	}

	// ------------------------------------------------------------
	// ENVIRONMENT VALUES
	// ------------------------------------------------------------

	if s.Brightness < 0 || s.Brightness > 1 {
		return fmt.Errorf("config: %s %v out of range [0,1]", EnvBrightness, s.Brightness)
	}
	if s.SSID == "" {
		return fmt.Errorf("config: %s is required", EnvSSID)
	}
	if s.Password == "" {
		return fmt.Errorf("config: %s is required", EnvPassword)
	}

	return nil
}
