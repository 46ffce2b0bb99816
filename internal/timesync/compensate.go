package timesync

import "time"

// Compensate adjusts a decoded timestamp for the latency between line
// reception and clock application: the corrected instant is the decoded
// time plus the monotonic duration elapsed since receivedAt. No bound is
// placed on the elapsed duration.
func Compensate(decoded, receivedAt time.Time) time.Time {
	return CompensateAt(decoded, receivedAt, time.Now())
}

// CompensateAt is Compensate with an explicit current instant. The
// receivedAt and now readings must come from the same clock; Sub then
// uses their monotonic components, immune to wall-clock steps.
func CompensateAt(decoded, receivedAt, now time.Time) time.Time {
	return decoded.Add(now.Sub(receivedAt))
}
