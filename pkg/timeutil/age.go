// Package timeutil formats event ages and parses --since windows.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

var (
	segment = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	units   = map[string]time.Duration{
		"s": time.Second, "sec": time.Second, "secs": time.Second,
		"m": time.Minute, "min": time.Minute, "mins": time.Minute,
		"h": time.Hour, "hr": time.Hour, "hrs": time.Hour, "hour": time.Hour, "hours": time.Hour,
		"d": day, "day": day, "days": day,
		"w": 7 * day, "week": 7 * day, "weeks": 7 * day,
	}
	compact = []struct {
		label string
		value time.Duration
	}{
		{"w", 7 * day}, {"d", day}, {"h", time.Hour}, {"m", time.Minute}, {"s", time.Second},
	}
)

// ParseSince parses a window such as "90m", "6h" or "1d12h". An empty window
// means no cutoff and returns 0.
func ParseSince(input string) (time.Duration, error) {
	rest := strings.ToLower(strings.TrimSpace(input))
	if rest == "" {
		return 0, nil
	}
	var total time.Duration
	for len(rest) > 0 {
		m := segment.FindStringSubmatch(rest)
		if len(m) != 3 {
			return 0, fmt.Errorf("invalid window segment %q", strings.TrimSpace(rest))
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid window value %q: %w", m[1], err)
		}
		unit, ok := units[m[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported window unit %q", m[2])
		}
		total += time.Duration(n) * unit
		rest = rest[len(m[0]):]
	}
	if total <= 0 {
		return 0, fmt.Errorf("window must be greater than zero")
	}
	return total, nil
}

// Compact renders d using w/d/h/m/s tokens, e.g. "1d6h".
func Compact(d time.Duration) string {
	if d < time.Second {
		return "0s"
	}
	var b strings.Builder
	for _, u := range compact {
		if d < u.value {
			continue
		}
		n := d / u.value
		d -= n * u.value
		fmt.Fprintf(&b, "%d%s", n, u.label)
	}
	return b.String()
}

// Ago renders the age of t relative to now with the largest unit only,
// e.g. "12m ago". Future times render as "just now".
func Ago(t, now time.Time) string {
	d := now.Sub(t)
	if d < time.Minute {
		return "just now"
	}
	for _, u := range compact {
		if d >= u.value {
			return fmt.Sprintf("%d%s ago", d/u.value, u.label)
		}
	}
	return "just now"
}

// Stamp is the layout used for event times in lists and the detail panel.
func Stamp(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05 MST")
}
