//go:build unit || e2e

package builder

import (
	"time"

	domamenity "condo-reserve/internal/domain/amenity"
	"condo-reserve/internal/pkg/timex"
	"condo-reserve/internal/usecase/queries"
	"condo-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type AmenityBuilder struct {
	ID              uuid.UUID
	CondoID         uuid.UUID
	Name            string
	MaxCapacity     int
	IsReservable    bool
	RequiresPayment bool
	Timezone        string
}

func NewAmenityBuilder() *AmenityBuilder {
	return &AmenityBuilder{
		ID:              uuid.New(),
		CondoID:         uuid.New(),
		Name:            "Party Room",
		MaxCapacity:     1,
		IsReservable:    true,
		RequiresPayment: false,
		Timezone:        "America/Sao_Paulo",
	}
}

func (b *AmenityBuilder) With(mutate func(*AmenityBuilder)) *AmenityBuilder {
	mutate(b)
	return b
}

func (b *AmenityBuilder) WithCapacity(n int) *AmenityBuilder {
	b.MaxCapacity = n
	return b
}

func (b *AmenityBuilder) WithReservable(v bool) *AmenityBuilder {
	b.IsReservable = v
	return b
}

func (b *AmenityBuilder) WithRequiresPayment(v bool) *AmenityBuilder {
	b.RequiresPayment = v
	return b
}

func (b *AmenityBuilder) BuildDomain() (*domamenity.Amenity, error) {
	return domamenity.NewAmenity(b.ID, b.CondoID, b.Name, b.MaxCapacity, b.IsReservable, b.RequiresPayment, b.Timezone)
}

func (b *AmenityBuilder) BuildSnapshot() *shared.AmenitySnapshot {
	return &shared.AmenitySnapshot{
		ID:              b.ID,
		CondoID:         b.CondoID,
		Name:            b.Name,
		MaxCapacity:     b.MaxCapacity,
		IsReservable:    b.IsReservable,
		RequiresPayment: b.RequiresPayment,
		Timezone:        b.Timezone,
	}
}

func (b *AmenityBuilder) BuildView() *queries.AmenityView {
	return &queries.AmenityView{
		ID:              b.ID,
		CondoID:         b.CondoID,
		Name:            b.Name,
		MaxCapacity:     b.MaxCapacity,
		IsReservable:    b.IsReservable,
		RequiresPayment: b.RequiresPayment,
		Timezone:        b.Timezone,
	}
}

type RuleBuilder struct {
	ID                     uuid.UUID
	AmenityID              uuid.UUID
	DayOfWeek              time.Weekday
	OpenTime               string
	CloseTime              string
	SlotDurationMinutes    int
	MinLeadTimeHours       int
	MaxLeadTimeDays        int
	ReservationsPerUserDay int
}

func NewRuleBuilder() *RuleBuilder {
	return &RuleBuilder{
		ID:                     uuid.New(),
		AmenityID:              uuid.New(),
		DayOfWeek:              time.Monday,
		OpenTime:               "09:00",
		CloseTime:              "12:00",
		SlotDurationMinutes:    60,
		MinLeadTimeHours:       2,
		MaxLeadTimeDays:        30,
		ReservationsPerUserDay: 0,
	}
}

func (b *RuleBuilder) WithDay(d time.Weekday) *RuleBuilder {
	b.DayOfWeek = d
	return b
}

func (b *RuleBuilder) WithHours(open, close string) *RuleBuilder {
	b.OpenTime = open
	b.CloseTime = close
	return b
}

func (b *RuleBuilder) WithSlotDuration(minutes int) *RuleBuilder {
	b.SlotDurationMinutes = minutes
	return b
}

func (b *RuleBuilder) WithLeadTime(minHours, maxDays int) *RuleBuilder {
	b.MinLeadTimeHours = minHours
	b.MaxLeadTimeDays = maxDays
	return b
}

func (b *RuleBuilder) WithUserDailyLimit(n int) *RuleBuilder {
	b.ReservationsPerUserDay = n
	return b
}

func (b *RuleBuilder) BuildDomain() (domamenity.Rule, error) {
	open, err := timex.ParseTimeOfDay(b.OpenTime)
	if err != nil {
		return domamenity.Rule{}, err
	}
	close, err := timex.ParseTimeOfDay(b.CloseTime)
	if err != nil {
		return domamenity.Rule{}, err
	}
	return domamenity.NewRule(
		b.ID, b.AmenityID, b.DayOfWeek, open, close,
		b.SlotDurationMinutes, b.MinLeadTimeHours, b.MaxLeadTimeDays, b.ReservationsPerUserDay,
	)
}

func (b *RuleBuilder) BuildSnapshot() shared.RuleSnapshot {
	return shared.RuleSnapshot{
		ID:                     b.ID,
		AmenityID:              b.AmenityID,
		DayOfWeek:              int(b.DayOfWeek),
		OpenTime:               b.OpenTime,
		CloseTime:              b.CloseTime,
		SlotDurationMinutes:    b.SlotDurationMinutes,
		MinLeadTimeHours:       b.MinLeadTimeHours,
		MaxLeadTimeDays:        b.MaxLeadTimeDays,
		ReservationsPerUserDay: b.ReservationsPerUserDay,
	}
}
