package pricing_test

import (
	"errors"
	"testing"
	"time"

	"reservo/internal/domains/pricing"
)

func weekendEveningWindow() pricing.PeakWindow {
	return pricing.PeakWindow{
		Days:  []time.Weekday{time.Friday, time.Saturday, time.Sunday},
		Start: 1080, // 18:00
		End:   1380, // 23:00
	}
}

func TestClassifyPeriod(t *testing.T) {
	window := weekendEveningWindow()

	tests := []struct {
		name       string
		weekday    time.Weekday
		start, end int
		expected   pricing.PeriodType
	}{
		{
			name:    "friday overlapping window start is peak",
			weekday: time.Friday,
			start:   1050, end: 1140, // 17:30-19:00
			expected: pricing.PeriodPeak,
		},
		{
			name:    "friday morning is normal",
			weekday: time.Friday,
			start:   540, end: 600, // 09:00-10:00
			expected: pricing.PeriodNormal,
		},
		{
			name:    "weekday evening is normal",
			weekday: time.Tuesday,
			start:   1140, end: 1200,
			expected: pricing.PeriodNormal,
		},
		{
			name:    "touching window start is normal",
			weekday: time.Saturday,
			start:   1020, end: 1080, // 17:00-18:00
			expected: pricing.PeriodNormal,
		},
		{
			name:    "touching window end is normal",
			weekday: time.Sunday,
			start:   1380, end: 1410, // 23:00-23:30
			expected: pricing.PeriodNormal,
		},
		{
			name:    "fully inside window is peak",
			weekday: time.Saturday,
			start:   1140, end: 1260,
			expected: pricing.PeriodPeak,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.ClassifyPeriod(tt.weekday, tt.start, tt.end, window)

			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func bracketPolicy() pricing.Policy {
	return pricing.Policy{
		Mode: pricing.ModePeakWindow,
		Tiers: []pricing.Tier{
			{MaxHeadcount: 10, NormalHourlyRate: 250, PeakHourlyRate: 300},
			{MaxHeadcount: 18, NormalHourlyRate: 320, PeakHourlyRate: 390},
		},
	}
}

func TestPolicyPrice(t *testing.T) {
	policy := bracketPolicy()

	tests := []struct {
		name      string
		duration  int
		headcount int
		weekday   time.Weekday
		period    pricing.PeriodType
		expected  float64
		wantErr   error
	}{
		{
			name:     "ninety minutes at normal rate",
			duration: 90, headcount: 4,
			weekday: time.Wednesday, period: pricing.PeriodNormal,
			expected: 375.00,
		},
		{
			name:     "peak rate for same range",
			duration: 90, headcount: 4,
			weekday: time.Friday, period: pricing.PeriodPeak,
			expected: 450.00,
		},
		{
			name:     "second bracket selected",
			duration: 60, headcount: 15,
			weekday: time.Monday, period: pricing.PeriodNormal,
			expected: 320.00,
		},
		{
			name:     "bracket boundary inclusive",
			duration: 60, headcount: 10,
			weekday: time.Monday, period: pricing.PeriodNormal,
			expected: 250.00,
		},
		{
			name:     "headcount above top bracket is rejected",
			duration: 60, headcount: 19,
			weekday: time.Monday, period: pricing.PeriodNormal,
			wantErr: pricing.ErrHeadcountExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := policy.Price(tt.duration, tt.headcount, tt.weekday, tt.period)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.expected {
				t.Errorf("expected %.2f, got %.2f", tt.expected, got)
			}
		})
	}
}

func TestPolicyPriceFlatSunday(t *testing.T) {
	policy := pricing.Policy{
		Mode:           pricing.ModeFlatSunday,
		Tiers:          []pricing.Tier{{MaxHeadcount: 12, NormalHourlyRate: 200, PeakHourlyRate: 200}},
		BaseHourlyRate: 200,
		SundayFee:      50,
	}

	weekdayPrice, err := policy.Price(120, 6, time.Thursday, pricing.PeriodNormal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if weekdayPrice != 400.00 {
		t.Errorf("expected 400.00, got %.2f", weekdayPrice)
	}

	sundayPrice, err := policy.Price(120, 6, time.Sunday, pricing.PeriodNormal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sundayPrice != 450.00 {
		t.Errorf("expected 450.00, got %.2f", sundayPrice)
	}

	if _, err := policy.Price(60, 13, time.Sunday, pricing.PeriodNormal); !errors.Is(err, pricing.ErrHeadcountExceeded) {
		t.Errorf("expected bracket ceiling to apply in flat mode, got %v", err)
	}
}

func TestPolicyNoTiers(t *testing.T) {
	policy := pricing.Policy{Mode: pricing.ModePeakWindow}

	if _, err := policy.Price(60, 1, time.Monday, pricing.PeriodNormal); !errors.Is(err, pricing.ErrNoTiers) {
		t.Errorf("expected ErrNoTiers, got %v", err)
	}

	if policy.MaxHeadcount() != 0 {
		t.Errorf("expected zero ceiling without tiers")
	}
}

func TestFixedUnitPrice(t *testing.T) {
	if got := pricing.FixedUnitPrice(149.99, 3); got != 449.97 {
		t.Errorf("expected 449.97, got %.2f", got)
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "half rounds up",
			input:    1.005,
			expected: 1.01,
		},
		{
			name:     "below half rounds down",
			input:    2.344,
			expected: 2.34,
		},
		{
			name:     "above half rounds up",
			input:    2.346,
			expected: 2.35,
		},
		{
			name:     "whole number untouched",
			input:    375.0,
			expected: 375.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pricing.RoundHalfUp(tt.input); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
