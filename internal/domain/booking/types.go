package booking

// Status is a booking's lifecycle state. Cancelled, Rescheduled and NoShow are
// terminal; only Pending and Confirmed occupy a slot for conflict purposes.
type Status string

const (
	StatusPending     Status = "pending"
	StatusConfirmed   Status = "confirmed"
	StatusCancelled   Status = "cancelled"
	StatusRescheduled Status = "rescheduled"
	StatusNoShow      Status = "no_show"
)

// ActiveStatuses are the statuses that occupy a slot.
var ActiveStatuses = []Status{StatusConfirmed, StatusPending}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusRescheduled, StatusNoShow:
		return true
	default:
		return false
	}
}

// OccupiesSlot reports whether a booking in this status blocks its interval.
func (s Status) OccupiesSlot() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusRescheduled || s == StatusNoShow
}
