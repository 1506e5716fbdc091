package pricing

import (
	"slices"
	"time"
)

// PeriodType tags the rate period resolved for a booking item. It is recorded
// once at creation and frozen thereafter.
type PeriodType string

const (
	PeriodNormal PeriodType = "normal"
	PeriodPeak   PeriodType = "peak"
)

// PeakWindow is the configured weekday set and clock-time range during which
// peak rates apply.
type PeakWindow struct {
	Days  []time.Weekday
	Start int
	End   int
}

// ClassifyPeriod resolves the period for a candidate range. The range is peak
// iff its weekday is in the peak day set and it overlaps the peak clock
// window under the same half-open rule used for conflicts.
func ClassifyPeriod(weekday time.Weekday, start, end int, window PeakWindow) PeriodType {
	if !slices.Contains(window.Days, weekday) {
		return PeriodNormal
	}

	if start < window.End && window.Start < end {
		return PeriodPeak
	}

	return PeriodNormal
}
