// Package moderation holds the decision logic behind moderation commands:
// duration parsing, hierarchy checks and the warning auto-action evaluator.
// Everything here is pure; Discord calls stay in the command layer.
package moderation

import (
	"regexp"
	"strconv"
	"time"
)

// MaxTimeoutDuration is Discord's communication-timeout ceiling.
const MaxTimeoutDuration = 28 * 24 * time.Hour

var durationPattern = regexp.MustCompile(`^(\d+)([smhdSMHD])$`)

// ParseDuration parses a compact duration token like "30s", "10m", "2h" or
// "7d" into a bounded duration. The whole input must match: no whitespace,
// no trailing characters, positive magnitude, at most 28 days. It is a
// total function; invalid input yields ok == false, never an error.
func ParseDuration(s string) (time.Duration, bool) {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	value, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || value <= 0 {
		// err covers magnitudes that overflow int64
		return 0, false
	}

	var unit time.Duration
	switch m[2] {
	case "s", "S":
		unit = time.Second
	case "m", "M":
		unit = time.Minute
	case "h", "H":
		unit = time.Hour
	case "d", "D":
		unit = 24 * time.Hour
	}

	if value > int64(MaxTimeoutDuration/unit) {
		return 0, false
	}
	d := time.Duration(value) * unit
	return d, true
}
