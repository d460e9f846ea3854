package shared

import (
	"time"

	"condo-reserve/internal/domain/amenity"
	"condo-reserve/internal/domain/reservation"
	"condo-reserve/internal/domain/schedule"
	"condo-reserve/internal/pkg/timex"
)

func ToDomainAmenity(snap *AmenitySnapshot) (*amenity.Amenity, error) {
	return amenity.NewAmenity(
		snap.ID,
		snap.CondoID,
		snap.Name,
		snap.MaxCapacity,
		snap.IsReservable,
		snap.RequiresPayment,
		snap.Timezone,
	)
}

func ToDomainRules(snaps []RuleSnapshot) (amenity.RuleSet, error) {
	rules := make([]amenity.Rule, 0, len(snaps))
	for _, s := range snaps {
		open, err := timex.ParseTimeOfDay(s.OpenTime)
		if err != nil {
			return amenity.RuleSet{}, err
		}
		closeAt, err := timex.ParseTimeOfDay(s.CloseTime)
		if err != nil {
			return amenity.RuleSet{}, err
		}
		rule, err := amenity.NewRule(
			s.ID,
			s.AmenityID,
			time.Weekday(s.DayOfWeek),
			open,
			closeAt,
			s.SlotDurationMinutes,
			s.MinLeadTimeHours,
			s.MaxLeadTimeDays,
			s.ReservationsPerUserDay,
		)
		if err != nil {
			return amenity.RuleSet{}, err
		}
		rules = append(rules, rule)
	}
	return amenity.NewRuleSet(rules), nil
}

func ToScheduleBookings(snaps []BookingSnapshot) ([]schedule.Booking, error) {
	bookings := make([]schedule.Booking, 0, len(snaps))
	for _, s := range snaps {
		slot, err := reservation.NewTimeSlot(s.StartTime, s.EndTime)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, schedule.Booking{
			UserID: s.UserID,
			Slot:   slot,
			Status: reservation.Status(s.Status),
		})
	}
	return bookings, nil
}
