package timesync

import "gpstime/internal/nmea"

// fallbackThreshold is the number of consecutive low-confidence reports
// after which time-of-day-only data is committed.
const fallbackThreshold = 5

// Selector decides, candidate by candidate, whether to commit now or
// wait for a higher-confidence sentence. A high-confidence candidate is
// accepted immediately; a low-confidence one only after
// fallbackThreshold consecutive sightings with no high-confidence
// sentence interleaved.
//
// The zero value is ready to use. One Selector serves one run; there is
// no reset because acceptance is terminal.
type Selector struct {
	lowStreak int
}

// Observe records one decoded candidate. accept reports whether this
// candidate is the one to commit; when false, remaining is how many more
// low-confidence sightings are needed before fallback.
func (s *Selector) Observe(c nmea.Candidate) (accept bool, remaining int) {
	if c.Confidence == nmea.High {
		return true, 0
	}
	s.lowStreak++
	if s.lowStreak >= fallbackThreshold {
		return true, 0
	}
	return false, fallbackThreshold - s.lowStreak
}
