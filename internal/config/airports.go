// internal/config/airports.go
package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AirportLine is one parsed line of the airports file. Field order on
// disk: code, controller, device address (hex), red pin, green pin,
// blue pin, alternate code.
type AirportLine struct {
	Code       string
	Controller int
	Addr       uint16
	RedPin     int
	GreenPin   int
	BluePin    int
	Alternate  string
}

const airportFieldCount = 7

// Channel indices must fit the driver's 16 pins.
const maxPinIndex = 15

// LoadAirports parses the whitespace-separated airports file in file
// order. Blank lines are skipped; any other malformed line is fatal,
// with its line number in the error. Duplicate airport codes are
// permitted (the data model leaves their display behavior undefined).
func LoadAirports(path string) ([]AirportLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open airports file: %w", err)
	}
	defer f.Close()

	var out []AirportLine
	scanner := bufio.NewScanner(f)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		al, err := parseAirportLine(line)
		if err != nil {
			return nil, fmt.Errorf("config: %s:%d: %w", path, lineNo, err)
		}
		out = append(out, al)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: read airports file: %w", err)
	}

	return out, nil
}

func parseAirportLine(line string) (AirportLine, error) {
	fields := strings.Fields(line)
	if len(fields) != airportFieldCount {
		return AirportLine{}, fmt.Errorf("want %d fields, got %d", airportFieldCount, len(fields))
	}

	controller, err := strconv.Atoi(fields[1])
	if err != nil {
		return AirportLine{}, fmt.Errorf("bad controller index %q", fields[1])
	}
	if controller < 0 {
		return AirportLine{}, fmt.Errorf("negative controller index %d", controller)
	}

	addr, err := ParseDeviceAddr(fields[2])
	if err != nil {
		return AirportLine{}, err
	}

	pins := make([]int, 3)
	for i, raw := range fields[3:6] {
		pin, err := strconv.Atoi(raw)
		if err != nil {
			return AirportLine{}, fmt.Errorf("bad pin %q", raw)
		}
		if pin < 0 || pin > maxPinIndex {
			return AirportLine{}, fmt.Errorf("pin %d out of range [0,%d]", pin, maxPinIndex)
		}
		pins[i] = pin
	}
	if pins[0] == pins[1] || pins[0] == pins[2] || pins[1] == pins[2] {
		return AirportLine{}, fmt.Errorf("pins must be distinct (got %d %d %d)", pins[0], pins[1], pins[2])
	}

	return AirportLine{
		Code:       fields[0],
		Controller: controller,
		Addr:       addr,
		RedPin:     pins[0],
		GreenPin:   pins[1],
		BluePin:    pins[2],
		Alternate:  fields[6],
	}, nil
}
