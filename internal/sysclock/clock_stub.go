//go:build !linux && !darwin

package sysclock

import (
	"fmt"
	"time"
)

type stubSetter struct{}

func newSetter() Setter {
	return stubSetter{}
}

func (stubSetter) Set(time.Time) error {
	return fmt.Errorf("setting the system clock is not supported on this platform")
}
