package clocktime

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
)

// Parse converts a clock label in "HH:MM" form into minutes since midnight.
func Parse(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", value, err)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", value, err)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time %q out of range", value)
	}

	return hour*MinutesPerHour + minute, nil
}

// Format renders minutes since midnight as an "HH:MM" label.
func Format(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/MinutesPerHour, minutes%MinutesPerHour)
}

// Slots returns the slot-start labels over [start, end) at the given
// granularity. Presentation only; conflict checks compare continuous
// intervals instead.
func Slots(start, end, step int) []string {
	if step <= 0 || end <= start {
		return nil
	}

	labels := make([]string, 0, (end-start)/step)
	for at := start; at < end; at += step {
		labels = append(labels, Format(at))
	}

	return labels
}
