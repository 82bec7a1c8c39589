// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings is the root daemon configuration: YAML file plus the
// required environment values merged in at load time.
type Settings struct {
	Controllers  []string      `yaml:"controllers"` // I2C bus refs; slice index = controller index
	Boards       []BoardConfig `yaml:"boards"`
	AirportsFile string        `yaml:"airports_file"`
	Poll         PollConfig    `yaml:"poll"`
	Weather      WeatherConfig `yaml:"weather"`
	WiFi         WiFiConfig    `yaml:"wifi"`
	Metrics      MetricsConfig `yaml:"metrics"`
	Logging      LoggingConfig `yaml:"logging"`

	// Environment-provided, never from YAML.
	Brightness float64 `yaml:"-"`
	SSID       string  `yaml:"-"`
	Password   string  `yaml:"-"`
}

// ---- BOARD ----

type BoardConfig struct {
	Controller int    `yaml:"controller"`
	Address    string `yaml:"address"` // hex device address, e.g. "58" or "0x58"
}

// ---- POLL ----

type PollConfig struct {
	IntervalSeconds int `yaml:"interval_seconds"`
}

// ---- WEATHER ----

type WeatherConfig struct {
	Endpoint       string `yaml:"endpoint"` // empty = aviationweather.gov default
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// ---- WIFI ----

type WiFiConfig struct {
	Attempts     int `yaml:"attempts"`
	DelaySeconds int `yaml:"delay_seconds"`
}

// ---- METRICS ----

type MetricsConfig struct {
	Listen string `yaml:"listen"` // empty = disabled
}

// ---- LOGGING ----

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Environment variable names.
const (
	EnvBrightness = "LED_BRIGHTNESS"
	EnvSSID       = "WIFI_SSID"
	EnvPassword   = "WIFI_PASSWORD"
)

// Load reads the YAML settings file and merges the environment values.
// A missing or non-numeric LED_BRIGHTNESS fails here; range and
// presence checks belong to Validate.
func Load(path string) (*Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var s Settings
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := loadEnv(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func loadEnv(s *Settings) error {
	raw, ok := os.LookupEnv(EnvBrightness)
	if !ok {
		return fmt.Errorf("config: %s is required", EnvBrightness)
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("config: %s %q is not numeric", EnvBrightness, raw)
	}
	s.Brightness = b

	s.SSID = os.Getenv(EnvSSID)
	s.Password = os.Getenv(EnvPassword)
	return nil
}

// ParseDeviceAddr parses a hex device address, with or without an 0x
// prefix.
func ParseDeviceAddr(raw string) (uint16, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(raw, "0x"), "0X")
	v, err := strconv.ParseUint(trimmed, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("bad device address %q", raw)
	}
	return uint16(v), nil
}
