package engine

// Usage is the headcount one active booking item holds on a catalog resource.
type Usage struct {
	BookingID  string
	ResourceID string
	Headcount  int
}

// UsedCapacity sums the headcounts held on resourceID by active bookings,
// optionally skipping one booking for confirm-time re-validation.
func UsedCapacity(usages []Usage, resourceID, excludeBookingID string) int {
	used := 0

	for _, usage := range usages {
		if usage.ResourceID != resourceID {
			continue
		}

		if excludeBookingID != "" && usage.BookingID == excludeBookingID {
			continue
		}

		used += usage.Headcount
	}

	return used
}

// CanAdmit reports whether an additional headcount fits the capacity.
func CanAdmit(capacity, used, additional int) bool {
	return used+additional <= capacity
}

// Tally accumulates headcount admitted earlier in the same incoming request,
// so several line items enrolling into one resource cannot jointly exceed its
// capacity while each passes in isolation.
type Tally struct {
	admitted map[string]int
}

func NewTally() *Tally {
	return &Tally{admitted: map[string]int{}}
}

// Admitted returns the headcount already granted to resourceID in this request.
func (t *Tally) Admitted(resourceID string) int {
	return t.admitted[resourceID]
}

// Admit records a granted headcount for resourceID.
func (t *Tally) Admit(resourceID string, headcount int) {
	t.admitted[resourceID] += headcount
}
