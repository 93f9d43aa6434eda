package scheduling

import (
	"time"

	"lillia/models"
)

// WindowDays is the forward-looking window of candidate days.
const WindowDays = 7

// slotHours are the consultation start times offered on a business day.
var slotHours = []int{10, 11, 14, 15, 16}

// slotDurationLabel matches the consultation length shown to the user.
const slotDurationLabel = "15 minutes"

// CandidateSlots builds every bookable (date, time) pair in the window
// starting the day after from. Weekends carry no slots. Availability
// filtering is the backend's concern; this is the full candidate set.
func CandidateSlots(from time.Time, days int) []models.SlotDay {
	if days <= 0 {
		days = WindowDays
	}
	window := make([]models.SlotDay, 0, days)
	for i := 1; i <= days; i++ {
		date := from.AddDate(0, 0, i)
		day := models.SlotDay{Date: date.Format("2006-01-02")}
		if wd := date.Weekday(); wd != time.Saturday && wd != time.Sunday {
			for _, hour := range slotHours {
				day.Slots = append(day.Slots, models.Slot{
					DateTime: time.Date(date.Year(), date.Month(), date.Day(),
						hour, 0, 0, 0, date.Location()),
					DurationLabel: slotDurationLabel,
				})
			}
		}
		window = append(window, day)
	}
	return window
}

// FindOffered matches a submitted slot key against the offered set. The
// second return is false when the key names a slot that was never offered.
func FindOffered(offered []models.SlotDay, key string) (models.Slot, bool) {
	for _, day := range offered {
		for _, slot := range day.Slots {
			if slot.Key() == key {
				return slot, true
			}
		}
	}
	return models.Slot{}, false
}
