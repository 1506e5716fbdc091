package pricing

import (
	"errors"
	"math"
	"time"
)

// Pricing evolved through several incompatible schemes over time: a flat
// Sunday surcharge, peak-window headcount brackets, and fixed catalog unit
// prices. All modes stay available behind one Policy, selected by Settings.
type Mode string

const (
	ModePeakWindow Mode = "peak_window"
	ModeFlatSunday Mode = "flat_sunday"
)

var (
	ErrHeadcountExceeded    = errors.New("headcount exceeds the largest pricing bracket")
	ErrNoTiers              = errors.New("no pricing tiers configured")
	ErrInvalidConfiguration = errors.New("operating configuration is invalid")
)

// Tier is one headcount bracket with its hourly rates.
type Tier struct {
	MaxHeadcount     int
	NormalHourlyRate float64
	PeakHourlyRate   float64
}

// Policy prices ad-hoc rentals. Catalog items use FixedUnitPrice instead,
// regardless of mode.
type Policy struct {
	Mode           Mode
	Tiers          []Tier
	BaseHourlyRate float64
	SundayFee      float64
}

// HourlyRate resolves the rate cell for a headcount and period. The largest
// bracket is a hard ceiling; a headcount above it is rejected, not clamped.
func (p Policy) HourlyRate(headcount int, period PeriodType) (float64, error) {
	if len(p.Tiers) == 0 {
		return 0, ErrNoTiers
	}

	for _, tier := range p.Tiers {
		if headcount <= tier.MaxHeadcount {
			if period == PeriodPeak {
				return tier.PeakHourlyRate, nil
			}

			return tier.NormalHourlyRate, nil
		}
	}

	return 0, ErrHeadcountExceeded
}

// MaxHeadcount returns the ceiling of the largest bracket, or 0 when no tiers
// are configured.
func (p Policy) MaxHeadcount() int {
	if len(p.Tiers) == 0 {
		return 0
	}

	return p.Tiers[len(p.Tiers)-1].MaxHeadcount
}

// Price computes the charge for a timed rental. The period was classified at
// creation time and is never recomputed, so historical prices stay stable.
func (p Policy) Price(durationMinutes, headcount int, weekday time.Weekday, period PeriodType) (float64, error) {
	hours := float64(durationMinutes) / 60

	switch p.Mode {
	case ModeFlatSunday:
		if _, err := p.HourlyRate(headcount, period); err != nil {
			return 0, err
		}

		amount := p.BaseHourlyRate * hours
		if weekday == time.Sunday {
			amount += p.SundayFee
		}

		return RoundHalfUp(amount), nil
	default:
		rate, err := p.HourlyRate(headcount, period)
		if err != nil {
			return 0, err
		}

		return RoundHalfUp(rate * hours), nil
	}
}

// FixedUnitPrice prices a catalog item: unit price times headcount.
func FixedUnitPrice(unitPrice float64, headcount int) float64 {
	return RoundHalfUp(unitPrice * float64(headcount))
}

// RoundHalfUp rounds to the smallest currency unit, two decimals, half
// upward. The epsilon counters the binary representation error of decimal
// inputs such as 1.005.
func RoundHalfUp(amount float64) float64 {
	return math.Floor(amount*100+0.5+1e-9) / 100
}
