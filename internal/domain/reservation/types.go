package reservation

// Status is the lifecycle state of a reservation. The engine only ever
// assigns the initial state; payment confirmation and cancellation are
// driven by external workflows.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// CountsTowardCapacity: only non-cancelled reservations occupy a slot or a
// user's daily quota.
func (s Status) CountsTowardCapacity() bool {
	return s != StatusCancelled
}

// InitialStatus maps payment requirement to the created state: paid amenities
// start pending until payment is confirmed elsewhere.
func InitialStatus(requiresPayment bool) Status {
	if requiresPayment {
		return StatusPending
	}
	return StatusConfirmed
}
