package rafflestate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatRemaining(t *testing.T) {
	testcases := []struct {
		name      string
		remaining int64
		expected  string
	}{
		{"five seconds", 5 * nsPerSecond, "5s"},
		{"minutes and seconds", 5*nsPerMinute + 12*nsPerSecond, "5m 12s"},
		{"hours and minutes", 3*nsPerHour + 7*nsPerMinute + 30*nsPerSecond, "3h 7m"},
		{"days and hours", 2*nsPerDay + 3*nsPerHour, "2d 3h"},
		{"zero units are skipped", 2*nsPerDay + 5*nsPerMinute, "2d 5m"},
		{"sub-second", nsPerSecond / 2, "0s"},
		{"zero is terminal", 0, ExpiredLabel},
		{"negative is terminal", -nsPerSecond, ExpiredLabel},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, FormatRemaining(tc.remaining))
		})
	}
}

func TestFormatRemainingMonotone(t *testing.T) {
	// Successive one-second ticks never render a longer remaining time.
	start := 2*nsPerDay + 3*nsPerHour + 59*nsPerSecond
	prev := start + nsPerSecond
	for remaining := start; remaining > -2*nsPerSecond; remaining -= nsPerSecond {
		require.LessOrEqual(t, reconstruct(remaining), reconstruct(prev),
			"rendered countdown went up between %d and %d", prev, remaining)
		prev = remaining
	}
}

// reconstruct maps a remaining time onto the value its rendering represents,
// i.e. the sum of the two most significant units.
func reconstruct(remaining int64) int64 {
	if remaining <= 0 {
		return 0
	}

	d := remaining / nsPerDay
	h := remaining % nsPerDay / nsPerHour
	m := remaining % nsPerHour / nsPerMinute
	s := remaining % nsPerMinute / nsPerSecond

	values := []int64{d * nsPerDay, h * nsPerHour, m * nsPerMinute, s * nsPerSecond}
	var total int64
	count := 0
	for _, v := range values {
		if v > 0 {
			total += v
			count++
		}

		if count == 2 {
			break
		}
	}

	return total
}

func TestFormatDuration(t *testing.T) {
	require.Equal(t, "1h 30m", FormatDuration(5400))
	require.Equal(t, "2h", FormatDuration(7200))
	require.Equal(t, "45m", FormatDuration(2700))
	require.Equal(t, "0m", FormatDuration(0))
}

func TestFormatBalance(t *testing.T) {
	scale := int64(100_000_000)

	require.Equal(t, "1.5", FormatBalance(150_000_000, scale))
	require.Equal(t, "6", FormatBalance(600_000_000, scale))
	require.Equal(t, "0.00000001", FormatBalance(1, scale))
	require.Equal(t, "0", FormatBalance(0, scale))
	require.Equal(t, "42", FormatBalance(42, 1))
}
