package simulator

import (
	"time"
)

func round2(v float64) float64 {
	return roundTo(v, 100)
}

func round1(v float64) float64 {
	return roundTo(v, 10)
}

func roundTo(v float64, factor float64) float64 {
	if v >= 0 {
		return float64(int64(v*factor+0.5)) / factor
	}
	return float64(int64(v*factor-0.5)) / factor
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// weekStart returns the Sunday on or before t, truncated to the date.
func weekStart(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// serverSeed derives a per-server stream seed from the digits embedded in
// the server id, e.g. "srv-7" -> 7000. Ids without digits map to seed 0.
func serverSeed(serverID string) int64 {
	var n int64
	for _, c := range serverID {
		if c >= '0' && c <= '9' {
			n = n*10 + int64(c-'0')
		}
	}
	return n * 1000
}
