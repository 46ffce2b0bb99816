// Package serialport opens a serial GPS device for line-oriented NMEA
// reading: raw mode, 8N1, blocking reads. Linux and macOS back ends
// exist; other platforms get a stub that fails at open time.
package serialport

import "os"

// DefaultBaud is used when no baud rate is configured. u-blox receivers
// typically ship at 9600.
const DefaultBaud = 9600

// Open opens the device at path configured for baud. A baud of 0 selects
// DefaultBaud; an unsupported rate is an error before any read happens.
// The returned file supports read deadlines.
func Open(path string, baud int) (*os.File, error) {
	if baud == 0 {
		baud = DefaultBaud
	}
	return open(path, baud)
}
