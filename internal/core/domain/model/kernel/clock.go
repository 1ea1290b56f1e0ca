package kernel

import "time"

// Now returns the current UTC time truncated to microseconds, the precision
// a Postgres timestamptz keeps. Timestamps taken with it read back unchanged.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
