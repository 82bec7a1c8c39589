// internal/metar/client.go
package metar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultEndpoint is the METAR data API base URL.
const DefaultEndpoint = "https://aviationweather.gov/api/data/metar"

// ErrNoCategory means the response carried no usable flight category:
// the tag was missing or its value did not parse. Callers use it to
// decide whether to try an alternate airport.
var ErrNoCategory = errors.New("metar: no flight category in response")

// Client fetches flight categories from the METAR data API.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// Config is minimal transport config.
type Config struct {
	Endpoint string
	Timeout  time.Duration
}

// NewClient creates a METAR API client. Zero-value fields get defaults.
func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   cfg.Endpoint,
	}
}

// Fetch retrieves the current flight category for one airport code.
// An indeterminate category (missing tag, unrecognized value) is
// reported as ErrNoCategory, never as a silent Unknown.
func (c *Client) Fetch(ctx context.Context, code string) (FlightCategory, error) {
	url := fmt.Sprintf("%s?ids=%s&format=xml", c.endpoint, code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Unknown, fmt.Errorf("metar: build request for %s: %w", code, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Unknown, fmt.Errorf("metar: fetch %s: %w", code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Unknown, fmt.Errorf("metar: fetch %s: unexpected status %d", code, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Unknown, fmt.Errorf("metar: read response for %s: %w", code, err)
	}

	raw, ok := extractCategory(string(body))
	if !ok {
		return Unknown, fmt.Errorf("%w (airport %s)", ErrNoCategory, code)
	}

	cat := ParseFlightCategory(raw)
	if cat == Unknown {
		return Unknown, fmt.Errorf("%w (airport %s, reported %q)", ErrNoCategory, code, raw)
	}
	return cat, nil
}

// extractCategory returns the text of the first <flight_category>
// element. Only the first occurrence is consulted.
func extractCategory(body string) (string, bool) {
	const openTag = "<flight_category>"
	const closeTag = "</flight_category>"

	i := strings.Index(body, openTag)
	if i < 0 {
		return "", false
	}
	rest := body[i+len(openTag):]

	j := strings.Index(rest, closeTag)
	if j < 0 {
		return "", false
	}
	return rest[:j], true
}
