package amenity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity = errors.New("max capacity must be at least 1")
	ErrUnknownTimezone = errors.New("unknown condo timezone")
)

// Amenity is a bookable shared facility inside one condo. Rows are owned by
// condo administration; the engine only ever reads them.
type Amenity struct {
	id              uuid.UUID
	condoID         uuid.UUID
	name            string
	maxCapacity     int
	isReservable    bool
	requiresPayment bool
	location        *time.Location
}

// NewAmenity resolves the condo's IANA zone once so all calendar math for
// this amenity happens in a single location.
func NewAmenity(
	id, condoID uuid.UUID,
	name string,
	maxCapacity int,
	isReservable, requiresPayment bool,
	timezone string,
) (*Amenity, error) {
	if maxCapacity < 1 {
		return nil, ErrInvalidCapacity
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, ErrUnknownTimezone
	}
	return &Amenity{
		id:              id,
		condoID:         condoID,
		name:            name,
		maxCapacity:     maxCapacity,
		isReservable:    isReservable,
		requiresPayment: requiresPayment,
		location:        loc,
	}, nil
}

func (a *Amenity) ID() uuid.UUID            { return a.id }
func (a *Amenity) CondoID() uuid.UUID       { return a.condoID }
func (a *Amenity) Name() string             { return a.name }
func (a *Amenity) MaxCapacity() int         { return a.maxCapacity }
func (a *Amenity) IsReservable() bool       { return a.isReservable }
func (a *Amenity) RequiresPayment() bool    { return a.requiresPayment }
func (a *Amenity) Location() *time.Location { return a.location }
