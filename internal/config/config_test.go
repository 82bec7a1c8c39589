// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metarmap.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleYAML = `
controllers: ["1", "2"]
boards:
  - controller: 0
    address: "58"
  - controller: 1
    address: "5A"
airports_file: /etc/metarmap/airports.txt
poll:
  interval_seconds: 45
weather:
  timeout_seconds: 10
wifi:
  attempts: 5
  delay_seconds: 1
metrics:
  listen: ":9091"
logging:
  level: debug
  format: json
`

func setEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvBrightness, "0.3")
	t.Setenv(EnvSSID, "hangar")
	t.Setenv(EnvPassword, "secret")
}

func TestLoad(t *testing.T) {
	setEnv(t)
	path := writeSettings(t, sampleYAML)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() err=%v", err)
	}

	if len(s.Controllers) != 2 || s.Controllers[0] != "1" {
		t.Errorf("controllers = %v", s.Controllers)
	}
	if len(s.Boards) != 2 || s.Boards[1].Address != "5A" {
		t.Errorf("boards = %v", s.Boards)
	}
	if s.Poll.IntervalSeconds != 45 {
		t.Errorf("interval = %d, want 45", s.Poll.IntervalSeconds)
	}
	if s.Metrics.Listen != ":9091" {
		t.Errorf("metrics listen = %q", s.Metrics.Listen)
	}
	if s.Logging.Level != "debug" || s.Logging.Format != "json" {
		t.Errorf("logging = %+v", s.Logging)
	}
	if s.Brightness != 0.3 || s.SSID != "hangar" || s.Password != "secret" {
		t.Errorf("env values = %v / %q / %q", s.Brightness, s.SSID, s.Password)
	}
}

func TestLoad_MissingBrightness(t *testing.T) {
	t.Setenv(EnvSSID, "hangar")
	t.Setenv(EnvPassword, "secret")
	t.Setenv(EnvBrightness, "0.3") // register cleanup, then clear
	os.Unsetenv(EnvBrightness)

	path := writeSettings(t, sampleYAML)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing LED_BRIGHTNESS")
	}
}

func TestLoad_NonNumericBrightness(t *testing.T) {
	setEnv(t)
	t.Setenv(EnvBrightness, "bright")

	path := writeSettings(t, sampleYAML)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for non-numeric LED_BRIGHTNESS")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	setEnv(t)
	path := writeSettings(t, "controllers: [\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	setEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
