package schedule

import "time"

// ===============================
// Slot Catalog
// ===============================

// The booking day is seven fixed one-hour windows. The 12:00-14:00 gap
// is lunch and never bookable.
var slotCatalog = []string{
	"09:00-10:00",
	"10:00-11:00",
	"11:00-12:00",
	"14:00-15:00",
	"15:00-16:00",
	"16:00-17:00",
	"17:00-18:00",
}

// Slots returns the catalog in display order.
func Slots() []string {
	out := make([]string, len(slotCatalog))
	copy(out, slotCatalog)
	return out
}

// TotalSlots is the day capacity.
func TotalSlots() int {
	return len(slotCatalog)
}

func IsKnownSlot(id string) bool {
	for _, s := range slotCatalog {
		if s == id {
			return true
		}
	}
	return false
}

// SlotBounds resolves a slot identifier to its start and end instants on
// the given calendar day, in that day's location.
func SlotBounds(id string, day time.Time) (time.Time, time.Time, bool) {
	if len(id) != 11 || id[5] != '-' {
		return time.Time{}, time.Time{}, false
	}

	start, err := time.Parse("15:04", id[:5])
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse("15:04", id[6:])
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	loc := day.Location()
	at := func(t time.Time) time.Time {
		return time.Date(
			day.Year(), day.Month(), day.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	return at(start), at(end), true
}
