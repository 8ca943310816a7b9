// SPDX-License-Identifier: MIT
package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var errBadClock = errors.New("invalid time of day")

// parseClock accepts seconds ("27000"), "HH:MM" or "HH:MM:SS".
func parseClock(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %q", errBadClock, s)
		}
		return v, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", errBadClock, s)
	}
	total := 0
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || (i > 0 && n > 59) {
			return 0, fmt.Errorf("%w: %q", errBadClock, s)
		}
		total = total*60 + n
	}
	if len(parts) == 2 {
		total *= 60
	}

	return float64(total), nil
}

// formatClock renders seconds as HH:MM:SS; hours may exceed 23.
func formatClock(t float64) string {
	s := int(math.Round(t))
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, s/60%60, s%60)
}
