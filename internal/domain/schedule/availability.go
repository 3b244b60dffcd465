package schedule

import "time"

// ===============================
// Availability Resolver
// ===============================

type SlotState string

const (
	SlotAvailable SlotState = "available"
	SlotBooked    SlotState = "booked"
	SlotPastDue   SlotState = "past_due"
)

type SlotAvailability struct {
	Slot  string    `json:"slot"`
	State SlotState `json:"state"`
}

type DayState string

const (
	DaySelectable  DayState = "selectable"
	DayPast        DayState = "past"
	DayFullyBooked DayState = "fully_booked"
)

// ResolveSlots classifies every catalog slot for the selected date.
// booked is taken literally as the occupied identifiers for that date;
// entries not in the catalog are ignored. A slot is past-due only when
// the selected date is now's calendar day and the slot's end has passed.
// Deterministic for a fixed now.
func ResolveSlots(date time.Time, booked []string, now time.Time) []SlotAvailability {
	bookedSet := make(map[string]struct{}, len(booked))
	for _, id := range booked {
		if IsKnownSlot(id) {
			bookedSet[id] = struct{}{}
		}
	}

	today := sameDay(date, now)

	out := make([]SlotAvailability, 0, len(slotCatalog))
	for _, id := range slotCatalog {
		state := SlotAvailable

		if today {
			if _, end, ok := SlotBounds(id, date); ok && !end.After(now) {
				state = SlotPastDue
			}
		}

		if state == SlotAvailable {
			if _, taken := bookedSet[id]; taken {
				state = SlotBooked
			}
		}

		out = append(out, SlotAvailability{Slot: id, State: state})
	}

	return out
}

// ResolveDay classifies a calendar day for selection. bookedCount is the
// number of occupied catalog slots on that day.
func ResolveDay(date time.Time, bookedCount int, now time.Time) DayState {
	if beforeDay(date, now) {
		return DayPast
	}
	if bookedCount >= len(slotCatalog) {
		return DayFullyBooked
	}
	return DaySelectable
}

// CountBooked counts distinct catalog identifiers in ids.
func CountBooked(ids []string) int {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if IsKnownSlot(id) {
			seen[id] = struct{}{}
		}
	}
	return len(seen)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// beforeDay reports whether a's calendar day precedes b's, ignoring
// time of day.
func beforeDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, a.Location())
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, a.Location())
	return ad.Before(bd)
}
