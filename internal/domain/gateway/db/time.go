package db

import "time"

// nowUTC is truncated to microseconds, the precision postgres keeps for timestamps.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
