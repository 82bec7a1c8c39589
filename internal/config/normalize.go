// internal/config/normalize.go
package config

// Defaults applied to zero values.
const (
	DefaultPollIntervalSeconds   = 45
	DefaultWeatherTimeoutSeconds = 30
	DefaultWiFiAttempts          = 5
	DefaultWiFiDelaySeconds      = 1
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(s *Settings) {
	if s == nil {
		return
	}

	if s.Poll.IntervalSeconds == 0 {
		s.Poll.IntervalSeconds = DefaultPollIntervalSeconds
	}
	if s.Weather.TimeoutSeconds == 0 {
		s.Weather.TimeoutSeconds = DefaultWeatherTimeoutSeconds
	}
	if s.WiFi.Attempts == 0 {
		s.WiFi.Attempts = DefaultWiFiAttempts
	}
	if s.WiFi.DelaySeconds == 0 {
		s.WiFi.DelaySeconds = DefaultWiFiDelaySeconds
	}

	if s.Logging.Level == "" {
		s.Logging.Level = "info"
	}
	if s.Logging.Format == "" {
		s.Logging.Format = "text"
	}

	// Weather endpoint stays empty here; the metar client applies its
	// own default.
}
