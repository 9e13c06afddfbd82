package model

import (
	"fmt"
	"strconv"
)

// unit suffixes with a fixed millisecond length. "1M" is deliberately
// absent: calendar months have no fixed bar spacing and the cursor advance
// assumes one.
var unitMS = map[byte]int64{
	's': 1_000,
	'm': 60_000,
	'h': 3_600_000,
	'd': 86_400_000,
	'w': 604_800_000,
}

// IntervalMS converts an exchange interval string (1s, 1m, 5m, 1h, 1d, 1w)
// to the bar spacing in milliseconds.
func IntervalMS(interval string) (int64, error) {
	if len(interval) < 2 {
		return 0, fmt.Errorf("invalid interval %q", interval)
	}
	unit, ok := unitMS[interval[len(interval)-1]]
	if !ok {
		return 0, fmt.Errorf("interval %q has no fixed bar spacing", interval)
	}
	n, err := strconv.ParseInt(interval[:len(interval)-1], 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid interval %q", interval)
	}
	return n * unit, nil
}
