package engine_test

import (
	"testing"

	"reservo/internal/domains/booking/engine"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		s1, e1   int
		s2, e2   int
		expected bool
	}{
		{
			name: "identical ranges",
			s1:   600, e1: 660,
			s2: 600, e2: 660,
			expected: true,
		},
		{
			name: "partial overlap",
			s1:   600, e1: 690,
			s2: 660, e2: 720,
			expected: true,
		},
		{
			name: "contained range",
			s1:   600, e1: 720,
			s2: 630, e2: 660,
			expected: true,
		},
		{
			name: "touching endpoints do not conflict",
			s1:   600, e1: 660,
			s2: 660, e2: 720,
			expected: false,
		},
		{
			name: "touching endpoints reversed",
			s1:   660, e1: 720,
			s2: 600, e2: 660,
			expected: false,
		},
		{
			name: "disjoint ranges",
			s1:   540, e1: 600,
			s2: 720, e2: 780,
			expected: false,
		},
		{
			name: "one minute overlap",
			s1:   600, e1: 661,
			s2: 660, e2: 720,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.Overlaps(tt.s1, tt.e1, tt.s2, tt.e2); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCheckOverlap(t *testing.T) {
	existing := []engine.Interval{
		{BookingID: "booking-a", Start: 840, End: 900},
		{BookingID: "booking-b", Start: 960, End: 1020},
		{BookingID: "", Label: "yoga class", Start: 1080, End: 1140},
	}

	tests := []struct {
		name          string
		start, end    int
		exclude       string
		wantConflict  bool
		wantConflicts int
	}{
		{
			name:  "free slot",
			start: 900, end: 960,
		},
		{
			name:  "collides with one booking",
			start: 870, end: 930,
			wantConflict:  true,
			wantConflicts: 1,
		},
		{
			name:  "collides with booking and class",
			start: 1000, end: 1100,
			wantConflict:  true,
			wantConflicts: 2,
		},
		{
			name:  "own pending hold is excluded on confirm",
			start: 840, end: 900,
			exclude: "booking-a",
		},
		{
			name:  "exclusion does not hide other holds",
			start: 840, end: 1000,
			exclude:       "booking-a",
			wantConflict:  true,
			wantConflicts: 1,
		},
		{
			name:  "class session blocks ad-hoc rental",
			start: 1080, end: 1140,
			wantConflict:  true,
			wantConflicts: 1,
		},
		{
			name:  "empty exclude does not skip implicit blocks",
			start: 1135, end: 1180,
			exclude:       "",
			wantConflict:  true,
			wantConflicts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := engine.CheckOverlap(tt.start, tt.end, existing, tt.exclude)

			if res.Conflict != tt.wantConflict {
				t.Errorf("expected conflict=%v, got %v", tt.wantConflict, res.Conflict)
			}

			if len(res.Conflicts) != tt.wantConflicts {
				t.Errorf("expected %d conflicts, got %d", tt.wantConflicts, len(res.Conflicts))
			}
		})
	}
}

func TestCheckOverlapEmptyExisting(t *testing.T) {
	res := engine.CheckOverlap(600, 660, nil, "")

	if res.Conflict {
		t.Errorf("expected no conflict against empty schedule")
	}
}
