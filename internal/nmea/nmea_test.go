package nmea

import (
	"testing"
	"time"
)

var ref = time.Date(2024, 6, 25, 14, 0, 0, 0, time.UTC)

func TestDecode_ZDA(t *testing.T) {
	c, ok, err := Decode("$GPZDA,123519.00,25,06,2024,,*hash", ref)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !ok {
		t.Fatalf("expected a candidate")
	}
	if c.Confidence != High {
		t.Fatalf("expected high confidence, got %v", c.Confidence)
	}
	want := time.Date(2024, 6, 25, 12, 35, 19, 0, time.UTC)
	if !c.Time.Equal(want) {
		t.Fatalf("got %v, want %v", c.Time, want)
	}
}

func TestDecode_ZDAGNTalker(t *testing.T) {
	c, ok, err := Decode("$GNZDA,235959.99,31,12,2023,,*5B", ref)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !ok || c.Confidence != High {
		t.Fatalf("expected high confidence candidate")
	}
	want := time.Date(2023, 12, 31, 23, 59, 59, 990*int(time.Millisecond), time.UTC)
	if !c.Time.Equal(want) {
		t.Fatalf("got %v, want %v", c.Time, want)
	}
}

func TestDecode_ZDAMilliseconds(t *testing.T) {
	c, _, err := Decode("$GPZDA,123519.05,25,06,2024,,*00", ref)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// Hundredths field scales to milliseconds in 10ms steps.
	if got := c.Time.Nanosecond() / 1e6; got != 50 {
		t.Fatalf("got %dms, want 50ms", got)
	}
}

func TestDecode_GGACombinesReferenceDate(t *testing.T) {
	c, ok, err := Decode("$GPGGA,081530.05,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47", ref)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !ok {
		t.Fatalf("expected a candidate")
	}
	if c.Confidence != Low {
		t.Fatalf("expected low confidence, got %v", c.Confidence)
	}
	want := time.Date(2024, 6, 25, 8, 15, 30, 50*int(time.Millisecond), time.UTC)
	if !c.Time.Equal(want) {
		t.Fatalf("got %v, want %v", c.Time, want)
	}
}

func TestDecode_UnrecognizedTag(t *testing.T) {
	_, ok, err := Decode("$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*6A", ref)
	if err != nil {
		t.Fatalf("unrecognized tags must not error: %v", err)
	}
	if ok {
		t.Fatalf("expected no candidate")
	}
}

func TestDecode_NonNMEAChatter(t *testing.T) {
	for _, line := range []string{"", "   ", "boot: u-blox8 ready", "$"} {
		_, ok, err := Decode(line, ref)
		if err != nil || ok {
			t.Fatalf("line %q: ok=%v err=%v", line, ok, err)
		}
	}
}

func TestDecode_TimeStatusLength(t *testing.T) {
	for _, ts := range []string{"", "123519", "123519.0", "123519.000", "123519.0000"} {
		_, _, err := Decode("$GPZDA,"+ts+",25,06,2024,,*00", ref)
		if err == nil {
			t.Fatalf("time status %q: expected error", ts)
		}
	}
}

func TestDecode_NonNumericFields(t *testing.T) {
	lines := []string{
		"$GPZDA,1x3519.00,25,06,2024,,*00", // hour
		"$GPZDA,123519.x0,25,06,2024,,*00", // sub-second
		"$GPZDA,123519.00,xx,06,2024,,*00", // day
		"$GPZDA,123519.00,25,xx,2024,,*00", // month
		"$GPZDA,123519.00,25,06,20x4,,*00", // year
		"$GPGGA,08153x.05,,,,,,,,,,,,,*00",
	}
	for _, line := range lines {
		if _, _, err := Decode(line, ref); err == nil {
			t.Fatalf("line %q: expected error", line)
		}
	}
}

func TestDecode_ShortFieldCount(t *testing.T) {
	for _, line := range []string{"$GPZDA", "$GPZDA,123519.00", "$GPZDA,123519.00,25,06", "$GPGGA"} {
		if _, _, err := Decode(line, ref); err == nil {
			t.Fatalf("line %q: expected error", line)
		}
	}
}

func TestDecode_InvalidCalendarDate(t *testing.T) {
	lines := []string{
		"$GPZDA,123519.00,31,06,2024,,*00", // June has 30 days
		"$GPZDA,123519.00,30,02,2024,,*00",
		"$GPZDA,123519.00,29,02,2023,,*00", // not a leap year
		"$GPZDA,123519.00,00,06,2024,,*00",
		"$GPZDA,123519.00,25,13,2024,,*00",
		"$GPZDA,123519.00,25,00,2024,,*00",
	}
	for _, line := range lines {
		if _, _, err := Decode(line, ref); err == nil {
			t.Fatalf("line %q: expected error", line)
		}
	}
}

func TestDecode_LeapDayAccepted(t *testing.T) {
	c, _, err := Decode("$GPZDA,000000.00,29,02,2024,,*00", ref)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	if !c.Time.Equal(want) {
		t.Fatalf("got %v, want %v", c.Time, want)
	}
}

func TestDecode_InvalidTimeOfDay(t *testing.T) {
	lines := []string{
		"$GPZDA,243519.00,25,06,2024,,*00", // hour 24
		"$GPZDA,126019.00,25,06,2024,,*00", // minute 60
		"$GPZDA,123560.00,25,06,2024,,*00", // second 60
		"$GPGGA,240000.00,,,,,,,,,,,,,*00",
	}
	for _, line := range lines {
		if _, _, err := Decode(line, ref); err == nil {
			t.Fatalf("line %q: expected error", line)
		}
	}
}
