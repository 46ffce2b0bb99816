//go:build linux

package sysclock

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

type unixSetter struct{}

func newSetter() Setter {
	return unixSetter{}
}

// Set applies t with a single settimeofday call. Requires CAP_SYS_TIME.
func (unixSetter) Set(t time.Time) error {
	tv := unix.NsecToTimeval(t.UnixNano())
	if err := unix.Settimeofday(&tv); err != nil {
		return fmt.Errorf("settimeofday: %w", err)
	}
	return nil
}
