// internal/metar/category_test.go
package metar

import "testing"

func TestParseFlightCategory(t *testing.T) {
	cases := []struct {
		in   string
		want FlightCategory
	}{
		{"VFR", VFR},
		{"MVFR", MVFR},
		{"IFR", IFR},
		{"LIFR", LIFR},
		{"UNKNOWN", Unknown},
		{"", Unknown},
		{"vfr", Unknown},
		{"SVFR", Unknown},
		{"garbage", Unknown},
	}

	for _, c := range cases {
		if got := ParseFlightCategory(c.in); got != c.want {
			t.Errorf("ParseFlightCategory(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFlightCategoryString(t *testing.T) {
	cases := []struct {
		in   FlightCategory
		want string
	}{
		{VFR, "VFR"},
		{MVFR, "MVFR"},
		{IFR, "IFR"},
		{LIFR, "LIFR"},
		{Unknown, "UNKNOWN"},
		{FlightCategory(99), "UNKNOWN"},
	}

	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("String(%d) = %q, want %q", int(c.in), got, c.want)
		}
	}
}
