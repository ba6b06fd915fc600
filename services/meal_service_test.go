package services

import (
	"testing"
	"time"
)

func TestParseDayMatchesEntryDayWindow(t *testing.T) {
	now := time.Now()
	day, err := ParseDay(now.Format("2006-01-02"))
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	if !day.Equal(dayStart(now)) {
		t.Errorf("parsed day starts at %v, entries logged now are stamped %v", day, dayStart(now))
	}
}

func TestParseDayUsesLocalZone(t *testing.T) {
	orig := time.Local
	time.Local = time.FixedZone("UTC+4", 4*3600)
	defer func() { time.Local = orig }()

	day, err := ParseDay("2026-08-31")
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}

	// An entry logged mid-morning on that day must fall inside the
	// [day, day+24h) window used by listings and summaries.
	logged := dayStart(time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local))
	if logged.Before(day) || !logged.Before(day.Add(24*time.Hour)) {
		t.Errorf("entry stamped %v excluded from window starting %v", logged, day)
	}
}

func TestParseDayRejectsMalformedDates(t *testing.T) {
	for _, s := range []string{"31-08-2026", "2026/08/31", "yesterday", ""} {
		if _, err := ParseDay(s); err == nil {
			t.Errorf("ParseDay(%q) accepted", s)
		}
	}
}
