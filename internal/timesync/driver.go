// Package timesync reconciles the host clock with time decoded from a
// stream of GPS NMEA sentences: it reads lines until one yields an
// acceptable time candidate, compensates that candidate for processing
// latency, applies it to the host clock exactly once, and returns.
package timesync

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"gpstime/internal/nmea"
	"gpstime/internal/sysclock"
)

// ErrNoFix is returned when the read deadline expires before any usable
// time report arrives.
var ErrNoFix = errors.New("no usable time report received before deadline")

type deadliner interface {
	SetReadDeadline(t time.Time) error
}

// Driver runs the reconciliation loop over a stream of NMEA lines.
type Driver struct {
	Clock sysclock.Setter
	Log   zerolog.Logger

	// Now supplies the current instant; defaults to time.Now. Readings
	// are used both as receipt marks and as the reference date for
	// time-of-day-only candidates.
	Now func() time.Time

	// Timeout, when > 0, arms one absolute read deadline for the whole
	// run if the transport supports deadlines. Zero blocks forever.
	Timeout time.Duration
}

// Run reads lines from r until a candidate is accepted, then applies the
// latency-corrected timestamp to the host clock and returns. Read
// failures, malformed recognized sentences, and clock-set failures are
// all fatal; unrecognized lines are skipped.
func (d *Driver) Run(r io.Reader) error {
	now := d.Now
	if now == nil {
		now = time.Now
	}

	if d.Timeout > 0 {
		if dl, ok := r.(deadliner); ok {
			if err := dl.SetReadDeadline(time.Now().Add(d.Timeout)); err != nil {
				return fmt.Errorf("arming read deadline: %w", err)
			}
		} else {
			d.Log.Warn().Msg("transport does not support read deadlines; read_timeout ignored")
		}
	}

	scanner := bufio.NewScanner(r)
	// NMEA sentences are typically < 82 chars, but allow some headroom.
	scanner.Buffer(make([]byte, 0, 256), 4096)

	var sel Selector
	for {
		if !scanner.Scan() {
			err := scanner.Err()
			if err == nil {
				err = io.EOF
			}
			if errors.Is(err, os.ErrDeadlineExceeded) {
				return ErrNoFix
			}
			return fmt.Errorf("gps read failed: %w", err)
		}
		receivedAt := now()

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cand, ok, err := nmea.Decode(line, now().UTC())
		if err != nil {
			return fmt.Errorf("decoding gps sentence: %w", err)
		}
		if !ok {
			continue
		}

		accept, remaining := sel.Observe(cand)
		if !accept {
			d.Log.Info().Msgf("Skipping $GPGGA. Fallback in %d reports.", remaining)
			continue
		}
		if cand.Confidence == nmea.Low {
			d.Log.Info().Msg("$GPZDA/$GNZDA not seen in 5 reports. Using UTC data from $GPGGA.")
		}

		corrected := CompensateAt(cand.Time, receivedAt, now())
		d.Log.Info().
			Str("confidence", cand.Confidence.String()).
			Time("utc", corrected).
			Msg("applying gps time")
		if err := d.Clock.Set(corrected); err != nil {
			return fmt.Errorf("setting host clock: %w", err)
		}
		return nil
	}
}
