package scheduling

import (
	"testing"
	"time"
)

func TestCandidateSlots_WindowShape(t *testing.T) {
	// A Monday; the window starts the next day.
	from := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	window := CandidateSlots(from, 7)

	if len(window) != 7 {
		t.Fatalf("window has %d days, want 7", len(window))
	}
	if window[0].Date != "2026-09-01" {
		t.Errorf("window starts at %s, want 2026-09-01", window[0].Date)
	}

	for _, day := range window {
		date, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			t.Fatalf("bad day date %q: %v", day.Date, err)
		}
		wd := date.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			if len(day.Slots) != 0 {
				t.Errorf("%s is a weekend but has %d slots", day.Date, len(day.Slots))
			}
			continue
		}
		if len(day.Slots) != 5 {
			t.Errorf("%s has %d slots, want 5", day.Date, len(day.Slots))
		}
		for _, slot := range day.Slots {
			hour := slot.DateTime.Hour()
			if hour != 10 && hour != 11 && hour != 14 && hour != 15 && hour != 16 {
				t.Errorf("%s offers unexpected hour %d", day.Date, hour)
			}
		}
	}
}

func TestFindOffered_MatchesByKey(t *testing.T) {
	from := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	window := CandidateSlots(from, 7)

	want := window[0].Slots[2]
	got, ok := FindOffered(window, want.Key())
	if !ok {
		t.Fatalf("offered slot %s not found", want.Key())
	}
	if !got.DateTime.Equal(want.DateTime) {
		t.Errorf("found %v, want %v", got.DateTime, want.DateTime)
	}

	if _, ok := FindOffered(window, "2030-01-01T10:00:00Z"); ok {
		t.Error("a never-offered key should not match")
	}
}
