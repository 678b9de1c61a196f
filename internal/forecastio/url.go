package forecastio

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatCoordinate renders a coordinate with the shortest representation
// that parses back to the same value.
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseCoordinate accepts plain decimal text with an optional exponent.
// Hex floats, digit underscores, Inf and NaN are rejected even though
// ParseFloat reads them.
func parseCoordinate(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.ContainsFunc(trimmed, notDecimal) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCoordinate, raw)
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCoordinate, raw)
	}
	return trimmed, nil
}

func notDecimal(r rune) bool {
	return !strings.ContainsRune("0123456789+-.eE", r)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// BuildRequestURL returns the forecast URL for the given coordinates:
//
//	<base><key>/<lat>,<lon>[,<time>]?units=<units>&lang=<lang>[&exclude=<list>][extend=hourly]
//
// Values are trimmed but not escaped. The extend token is appended without
// a separator, which is how the API has always been called by this client.
func (c *Client) BuildRequestURL(latitude, longitude string) (string, error) {
	lat, err := parseCoordinate(latitude)
	if err != nil {
		return "", err
	}
	lon, err := parseCoordinate(longitude)
	if err != nil {
		return "", err
	}

	s := c.settings

	var b strings.Builder
	b.WriteString(s.BaseURL)
	b.WriteString(s.APIKey)
	b.WriteString("/")
	b.WriteString(lat)
	b.WriteString(",")
	b.WriteString(lon)
	if !isBlank(s.Time) {
		b.WriteString(",")
		b.WriteString(strings.TrimSpace(s.Time))
	}
	b.WriteString("?units=")
	b.WriteString(strings.TrimSpace(string(s.Units)))
	b.WriteString("&lang=")
	b.WriteString(strings.TrimSpace(string(s.Language)))
	if !isBlank(s.Exclude) {
		b.WriteString("&exclude=")
		b.WriteString(strings.TrimSpace(s.Exclude))
	}
	if s.Extend {
		b.WriteString("extend=hourly")
	}

	return b.String(), nil
}
