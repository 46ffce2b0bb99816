//go:build darwin

package sysclock

import (
	"fmt"
	"os"
	"os/exec"
	"time"
)

// darwinSetter shells out to systemsetup, since macOS does not honor
// settimeofday. The date and time components are applied via separate
// systemsetup invocations, in local time as the tool expects.
type darwinSetter struct{}

func newSetter() Setter {
	return darwinSetter{}
}

func (darwinSetter) Set(t time.Time) error {
	if err := ntpOff(); err != nil {
		return err
	}

	local := t.Local()
	if out, err := runSystemsetup("-setdate", systemsetupDate(local)); err != nil {
		return fmt.Errorf("systemsetup -setdate failed: %w: %s", err, out)
	}
	if out, err := runSystemsetup("-settime", systemsetupTime(local)); err != nil {
		return fmt.Errorf("systemsetup -settime failed: %w: %s", err, out)
	}
	return nil
}

// ntpOff disables automatic network time if it is currently on, so the
// clock we set is not immediately overwritten. Failure to read the
// current setting is reported but not fatal; failure to change it is.
func ntpOff() error {
	out, err := exec.Command("systemsetup", "-getusingnetworktime").Output()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to get network time setting. See console output for errors")
		return nil
	}
	if string(out) != "Network Time: On\n" {
		return nil
	}

	fmt.Println("Disabling network time. You can re-enable it in System Settings -> General -> Date and Time.")
	if out, err := runSystemsetup("-setusingnetworktime", "off"); err != nil {
		return fmt.Errorf("disabling network time: %w: %s", err, out)
	}
	return nil
}

func runSystemsetup(args ...string) (string, error) {
	out, err := exec.Command("systemsetup", args...).CombinedOutput()
	return string(out), err
}
