package engine

// Interval is an active hold on the studio space for one date, expressed in
// minutes since midnight. BookingID is empty for implicit blocks such as
// scheduled catalog sessions.
type Interval struct {
	BookingID string
	Label     string
	Start     int
	End       int
}

// Result reports whether a candidate range collides with existing holds.
type Result struct {
	Conflict  bool
	Conflicts []Interval
}

// Overlaps applies the half-open interval rule: two ranges conflict iff each
// starts before the other ends. Touching endpoints do not conflict.
func Overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}

// CheckOverlap tests [start, end) against the active intervals of one date.
// Intervals belonging to excludeBookingID are skipped so that a booking being
// confirmed does not collide with its own pending reservation.
func CheckOverlap(start, end int, existing []Interval, excludeBookingID string) Result {
	res := Result{}

	for _, interval := range existing {
		if excludeBookingID != "" && interval.BookingID == excludeBookingID {
			continue
		}

		if Overlaps(start, end, interval.Start, interval.End) {
			res.Conflict = true
			res.Conflicts = append(res.Conflicts, interval)
		}
	}

	return res
}
