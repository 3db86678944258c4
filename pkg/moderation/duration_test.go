package moderation

import (
	"testing"
	"time"
)

func TestParseDurationValid(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"30s", 30 * time.Second},
		{"10m", 10 * time.Minute},
		{"1h", time.Hour},
		{"2d", 48 * time.Hour},
		{"5M", 5 * time.Minute},
		{"1H", time.Hour},
		{"28d", 28 * 24 * time.Hour}, // exactly at the bound
		{"672h", 672 * time.Hour},    // 28 days expressed in hours
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDuration(tt.input)
			if !ok {
				t.Fatalf("ParseDuration(%q) rejected, want %v", tt.input, tt.want)
			}
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDurationInvalid(t *testing.T) {
	inputs := []string{
		"",
		"5",      // missing unit
		"5x",     // unknown unit
		"m5",     // unit before magnitude
		" 5m",    // leading whitespace
		"5m ",    // trailing whitespace
		"5m6",    // trailing characters
		"0m",     // zero magnitude
		"-5m",    // negative magnitude
		"29d",    // over the 28 day bound
		"673h",   // over the bound expressed in hours
		"2419201s",
		"1.5h",
		"99999999999999999999d", // does not fit in int64
	}

	for _, input := range inputs {
		if d, ok := ParseDuration(input); ok {
			t.Errorf("ParseDuration(%q) = %v, want rejection", input, d)
		}
	}
}
