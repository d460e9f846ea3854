package response

import (
	"condo-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	Availability    map[string][]string `json:"availability"`
	UserLimitByDate map[string]bool     `json:"userLimitByDate"`
}

func FromAvailabilityView(view *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		Availability:    view.Availability,
		UserLimitByDate: view.UserLimitByDate,
	}
}

type AmenityResponse struct {
	ID              uuid.UUID `json:"id"`
	CondoID         uuid.UUID `json:"condoId"`
	Name            string    `json:"name"`
	MaxCapacity     int       `json:"maxCapacity"`
	IsReservable    bool      `json:"isReservable"`
	RequiresPayment bool      `json:"requiresPayment"`
	Timezone        string    `json:"timezone"`
}

func FromAmenityView(view *queries.AmenityView) *AmenityResponse {
	return &AmenityResponse{
		ID:              view.ID,
		CondoID:         view.CondoID,
		Name:            view.Name,
		MaxCapacity:     view.MaxCapacity,
		IsReservable:    view.IsReservable,
		RequiresPayment: view.RequiresPayment,
		Timezone:        view.Timezone,
	}
}
