package clocktime_test

import (
	"reflect"
	"testing"

	"reservo/shared/clocktime"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{
			name:     "midnight",
			input:    "00:00",
			expected: 0,
		},
		{
			name:     "morning",
			input:    "09:30",
			expected: 570,
		},
		{
			name:     "last minute of day",
			input:    "23:59",
			expected: 1439,
		},
		{
			name:    "hour out of range",
			input:   "24:00",
			wantErr: true,
		},
		{
			name:    "minute out of range",
			input:   "10:60",
			wantErr: true,
		},
		{
			name:    "missing separator",
			input:   "1030",
			wantErr: true,
		},
		{
			name:    "not a number",
			input:   "ab:cd",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := clocktime.Parse(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %d", result)
				}

				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected string
	}{
		{
			name:     "midnight",
			input:    0,
			expected: "00:00",
		},
		{
			name:     "single digit padding",
			input:    545,
			expected: "09:05",
		},
		{
			name:     "evening",
			input:    1380,
			expected: "23:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := clocktime.Format(tt.input); result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestSlots(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		end      int
		step     int
		expected []string
	}{
		{
			name:     "hourly slots",
			start:    540,
			end:      720,
			step:     60,
			expected: []string{"09:00", "10:00", "11:00"},
		},
		{
			name:     "half hour granularity",
			start:    600,
			end:      690,
			step:     30,
			expected: []string{"10:00", "10:30", "11:00"},
		},
		{
			name:     "end is exclusive",
			start:    540,
			end:      600,
			step:     60,
			expected: []string{"09:00"},
		},
		{
			name:     "empty range",
			start:    600,
			end:      600,
			step:     30,
			expected: nil,
		},
		{
			name:     "non-positive step",
			start:    540,
			end:      720,
			step:     0,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := clocktime.Slots(tt.start, tt.end, tt.step)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}
