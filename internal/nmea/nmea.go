// Package nmea decodes absolute UTC time from GPS NMEA sentences.
//
// It recognizes exactly two sentence families:
//   - $GPZDA/$GNZDA: full date+time (high confidence)
//   - $GPGGA: time-of-day only (low confidence, needs an assumed date)
//
// Everything else is skipped without error. A malformed sentence carrying
// one of the recognized tags is an error, since a corrupted time report
// must not be silently ignored.
package nmea

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Confidence indicates how much of the timestamp came from the receiver.
type Confidence int

const (
	// High means the sentence carried a full calendar date and time.
	High Confidence = iota
	// Low means the sentence carried time-of-day only; the calendar date
	// is assumed from the reference clock.
	Low
)

func (c Confidence) String() string {
	if c == High {
		return "high"
	}
	return "low"
}

// Candidate is a decoded absolute UTC timestamp with its confidence tier.
type Candidate struct {
	Time       time.Time
	Confidence Confidence
}

// Decode inspects one NMEA line and extracts a time candidate.
//
// ok is false (with a nil error) when the line is not one of the
// recognized sentence families, including non-NMEA chatter. The error is
// non-nil only when a recognized sentence is malformed.
//
// ref supplies the current UTC instant; its calendar date completes
// $GPGGA candidates, which carry time-of-day only. Decode is a pure
// function of its arguments.
func Decode(line string, ref time.Time) (Candidate, bool, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	switch fields[0] {
	case "$GPZDA", "$GNZDA":
		c, err := decodeZDA(fields)
		if err != nil {
			return Candidate{}, false, fmt.Errorf("%s: %w", fields[0], err)
		}
		return c, true, nil
	case "$GPGGA":
		c, err := decodeGGA(fields, ref)
		if err != nil {
			return Candidate{}, false, fmt.Errorf("%s: %w", fields[0], err)
		}
		return c, true, nil
	default:
		return Candidate{}, false, nil
	}
}

// ZDA: Time & Date
// Fields:
//
//	0: talker+type
//	1: UTC time status (hhmmss.ss, exactly 9 chars)
//	2: day
//	3: month
//	4: year
func decodeZDA(f []string) (Candidate, error) {
	if len(f) < 5 {
		return Candidate{}, fmt.Errorf("short sentence: %d fields", len(f))
	}

	hour, min, sec, millis, err := parseTimeStatus(f[1])
	if err != nil {
		return Candidate{}, err
	}

	day, err := strconv.Atoi(f[2])
	if err != nil {
		return Candidate{}, fmt.Errorf("bad day %q", f[2])
	}
	month, err := strconv.Atoi(f[3])
	if err != nil {
		return Candidate{}, fmt.Errorf("bad month %q", f[3])
	}
	year, err := strconv.Atoi(f[4])
	if err != nil {
		return Candidate{}, fmt.Errorf("bad year %q", f[4])
	}

	if month < 1 || month > 12 {
		return Candidate{}, fmt.Errorf("invalid month %d", month)
	}
	if day < 1 || day > daysIn(year, time.Month(month)) {
		return Candidate{}, fmt.Errorf("invalid day %d for %04d-%02d", day, year, month)
	}

	t := time.Date(year, time.Month(month), day, hour, min, sec, millis*int(time.Millisecond), time.UTC)
	return Candidate{Time: t, Confidence: High}, nil
}

// GGA: GPS Fix Data. Only the time field is consumed; the calendar date
// comes from the reference clock.
// Fields:
//
//	0: talker+type
//	1: UTC time status (hhmmss.ss, exactly 9 chars)
func decodeGGA(f []string, ref time.Time) (Candidate, error) {
	if len(f) < 2 {
		return Candidate{}, fmt.Errorf("short sentence: %d fields", len(f))
	}

	hour, min, sec, millis, err := parseTimeStatus(f[1])
	if err != nil {
		return Candidate{}, err
	}

	y, m, d := ref.UTC().Date()
	t := time.Date(y, m, d, hour, min, sec, millis*int(time.Millisecond), time.UTC)
	return Candidate{Time: t, Confidence: Low}, nil
}

// parseTimeStatus decodes the fixed-width UTC time status field.
//
// The layout is hhmmss.ss: two digits each of hour, minute, second, a
// separator byte, then two digits of hundredths of a second. The length
// must be exactly 9; variant talkers emitting more or fewer fractional
// digits are rejected rather than accommodated. The separator byte is
// not inspected.
func parseTimeStatus(ts string) (hour, min, sec, millis int, err error) {
	if len(ts) != 9 {
		return 0, 0, 0, 0, fmt.Errorf("invalid time status length %d", len(ts))
	}

	hour, err = parse2(ts[0:2])
	if err != nil || hour > 23 {
		return 0, 0, 0, 0, fmt.Errorf("bad hour %q", ts[0:2])
	}
	min, err = parse2(ts[2:4])
	if err != nil || min > 59 {
		return 0, 0, 0, 0, fmt.Errorf("bad minute %q", ts[2:4])
	}
	sec, err = parse2(ts[4:6])
	if err != nil || sec > 59 {
		return 0, 0, 0, 0, fmt.Errorf("bad second %q", ts[4:6])
	}
	hundredths, err := parse2(ts[7:9])
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("bad sub-second %q", ts[7:9])
	}
	return hour, min, sec, hundredths * 10, nil
}

// parse2 parses a 2-digit decimal field, rejecting signs and spaces.
func parse2(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("non-digit %q", s)
		}
	}
	return strconv.Atoi(s)
}

func daysIn(year int, m time.Month) int {
	// Day 0 of the next month is the last day of m.
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
