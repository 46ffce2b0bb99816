//go:build !linux && !darwin

package serialport

import (
	"fmt"
	"os"
)

func open(path string, baud int) (*os.File, error) {
	return nil, fmt.Errorf("serial gps not supported on this platform")
}
