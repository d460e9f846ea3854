// Package schedule turns weekly amenity rules plus existing reservations
// into bookable time slots. Everything here is pure: persistence and
// clocks stay with the caller.
package schedule

import (
	"condo-reserve/internal/domain/amenity"
	"condo-reserve/internal/pkg/timex"
)

// Slot is one fixed-width candidate interval in wall-clock terms.
type Slot struct {
	Start timex.TimeOfDay
	End   timex.TimeOfDay
}

// GenerateSlots steps from open time in slot-duration increments. A slot is
// offered only when it ends at or before close time, so a trailing remainder
// shorter than one slot width is never scheduled.
func GenerateSlots(rule amenity.Rule) []Slot {
	width := rule.SlotDurationMinutes()
	var slots []Slot
	for start := rule.Open(); ; start = start.AddMinutes(width) {
		end := start.AddMinutes(width)
		if end.After(rule.Close()) {
			break
		}
		slots = append(slots, Slot{Start: start, End: end})
	}
	return slots
}
