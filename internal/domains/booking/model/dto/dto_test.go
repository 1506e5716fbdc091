package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reservo/internal/domains/booking/model"
	"reservo/internal/domains/booking/model/dto"
)

func TestBookingItemRequestParse(t *testing.T) {
	t.Run("rental with a clock range", func(t *testing.T) {
		req := dto.BookingItemRequest{
			Kind:      model.KindRoomRental,
			Date:      "2026-09-07",
			StartTime: "10:00",
			EndTime:   "12:30",
			Headcount: 3,
		}

		parsed, err := req.Parse()
		require.NoError(t, err)

		assert.Equal(t, 2026, parsed.Date.Year())
		assert.Equal(t, time.September, parsed.Date.Month())
		assert.Equal(t, 7, parsed.Date.Day())
		assert.True(t, parsed.HasRange)
		assert.Equal(t, 600, parsed.Start)
		assert.Equal(t, 750, parsed.End)
		assert.Equal(t, 3, parsed.Headcount)
	})

	t.Run("enrollment without times leaves the range open", func(t *testing.T) {
		id := "resource-1"
		req := dto.BookingItemRequest{
			ResourceID: &id,
			Kind:       model.KindClassEnrollment,
			Date:       "2026-09-07",
			Headcount:  2,
		}

		parsed, err := req.Parse()
		require.NoError(t, err)

		assert.False(t, parsed.HasRange)
		assert.Equal(t, 0, parsed.Start)
		assert.Equal(t, 0, parsed.End)
	})

	t.Run("invalid date", func(t *testing.T) {
		req := dto.BookingItemRequest{
			Kind:      model.KindRoomRental,
			Date:      "07/09/2026",
			StartTime: "10:00",
			EndTime:   "12:00",
			Headcount: 1,
		}

		_, err := req.Parse()
		assert.Error(t, err)
	})

	t.Run("invalid clock time", func(t *testing.T) {
		req := dto.BookingItemRequest{
			Kind:      model.KindRoomRental,
			Date:      "2026-09-07",
			StartTime: "10:61",
			EndTime:   "12:00",
			Headcount: 1,
		}

		_, err := req.Parse()
		assert.Error(t, err)
	})
}

func TestBookingResponseFromModel(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	confirmedAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	booking := model.Booking{
		ID:           "booking-1",
		CustomerName: "Dewi",
		Status:       model.StatusConfirmed,
		TotalPrice:   200,
		ConfirmedAt:  &confirmedAt,
	}

	items := []model.BookingItem{
		{
			ID:              "item-1",
			BookingID:       "booking-1",
			Kind:            model.KindRoomRental,
			BookingDate:     date,
			StartMinutes:    600,
			EndMinutes:      720,
			DurationMinutes: 120,
			Headcount:       3,
			PeriodType:      "normal",
			Price:           200,
		},
	}

	var res dto.BookingResponse
	res.FromModel(booking, items)

	assert.Equal(t, "booking-1", res.ID)
	assert.Equal(t, model.StatusConfirmed, res.Status)
	require.NotNil(t, res.ConfirmedAt)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "2026-09-07", res.Items[0].Date)
	assert.Equal(t, "10:00", res.Items[0].StartTime)
	assert.Equal(t, "12:00", res.Items[0].EndTime)
}
