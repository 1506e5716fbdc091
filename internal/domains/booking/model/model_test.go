package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reservo/internal/domains/booking/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{name: "pending to confirmed", from: model.StatusPending, to: model.StatusConfirmed, allowed: true},
		{name: "pending to cancelled", from: model.StatusPending, to: model.StatusCancelled, allowed: true},
		{name: "confirmed to cancelled", from: model.StatusConfirmed, to: model.StatusCancelled, allowed: true},
		{name: "confirmed back to pending", from: model.StatusConfirmed, to: model.StatusPending, allowed: false},
		{name: "cancelled to confirmed", from: model.StatusCancelled, to: model.StatusConfirmed, allowed: false},
		{name: "cancelled to pending", from: model.StatusCancelled, to: model.StatusPending, allowed: false},
		{name: "pending to pending", from: model.StatusPending, to: model.StatusPending, allowed: true},
		{name: "confirmed to confirmed", from: model.StatusConfirmed, to: model.StatusConfirmed, allowed: true},
		{name: "cancelled to cancelled", from: model.StatusCancelled, to: model.StatusCancelled, allowed: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.allowed, model.CanTransition(test.from, test.to))
		})
	}
}

func TestBookingIsActive(t *testing.T) {
	assert.True(t, model.Booking{Status: model.StatusPending}.IsActive())
	assert.True(t, model.Booking{Status: model.StatusConfirmed}.IsActive())
	assert.False(t, model.Booking{Status: model.StatusCancelled}.IsActive())
}
