// Package sysclock applies an absolute UTC timestamp to the host's wall
// clock. Two platform back ends exist: Linux issues a single
// settimeofday call; macOS drives the systemsetup tool, disabling
// automatic network time first if it is on. Both require elevated
// privileges.
package sysclock

import "time"

// Setter applies one absolute UTC timestamp as the host's wall clock,
// with sub-second precision.
type Setter interface {
	Set(t time.Time) error
}

// New returns the clock setter for the current platform. On platforms
// without a back end the returned setter always fails.
func New() Setter {
	return newSetter()
}
