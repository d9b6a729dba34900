package rafflestate

import (
	"fmt"
	"strings"
	"time"
)

const (
	nsPerSecond int64 = 1_000_000_000
	nsPerMinute       = 60 * nsPerSecond
	nsPerHour         = 60 * nsPerMinute
	nsPerDay          = 24 * nsPerHour
)

// ExpiredLabel is the terminal countdown value.
const ExpiredLabel = "Expired"

// FormatRemaining decomposes a nanosecond countdown into days, hours, minutes
// and seconds and renders the two most significant non-zero units, e.g.
// "2d 3h" or "5m 12s". Zero or negative remaining renders the terminal label.
func FormatRemaining(remaining int64) string {
	if remaining <= 0 {
		return ExpiredLabel
	}

	units := []struct {
		value  int64
		suffix string
	}{
		{remaining / nsPerDay, "d"},
		{remaining % nsPerDay / nsPerHour, "h"},
		{remaining % nsPerHour / nsPerMinute, "m"},
		{remaining % nsPerMinute / nsPerSecond, "s"},
	}

	parts := []string{}
	for _, u := range units {
		if u.value > 0 {
			parts = append(parts, fmt.Sprintf("%d%s", u.value, u.suffix))
		}

		if len(parts) == 2 {
			break
		}
	}

	if len(parts) == 0 {
		return "0s"
	}

	return strings.Join(parts, " ")
}

// FormatDuration renders a duration given in seconds as "1h 30m", "2h" or
// "45m", the way the create form previews it.
func FormatDuration(totalSeconds int64) string {
	h := totalSeconds / 3600
	m := totalSeconds % 3600 / 60

	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// FormatBalance renders a base-unit balance in whole tokens with trailing
// zeros trimmed, e.g. 150000000 at scale 1e8 renders "1.5".
func FormatBalance(balance, scalingFactor int64) string {
	if scalingFactor <= 1 {
		return fmt.Sprintf("%d", balance)
	}

	whole := balance / scalingFactor
	frac := balance % scalingFactor

	if frac == 0 {
		return fmt.Sprintf("%d", whole)
	}

	width := len(fmt.Sprintf("%d", scalingFactor)) - 1
	s := strings.TrimRight(fmt.Sprintf("%d.%0*d", whole, width, frac), "0")
	return strings.TrimRight(s, ".")
}

// FormatTimestamp renders a nanosecond epoch timestamp for display.
func FormatTimestamp(ns int64) string {
	return time.Unix(0, ns).Format("2006-01-02 15:04:05")
}
