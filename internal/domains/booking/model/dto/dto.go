package dto

import (
	"fmt"
	"time"

	"reservo/internal/domains/booking/model"
	"reservo/shared"
	"reservo/shared/clocktime"
	gDto "reservo/shared/dto"

	"reservo/shared/timezone"
)

const DateLayout = "2006-01-02"

type CreateBookingRequest struct {
	CustomerName  string               `json:"customer_name"  validate:"required,max=100"`
	CustomerEmail string               `json:"customer_email" validate:"omitempty,email,max=100"`
	CustomerPhone string               `json:"customer_phone" validate:"omitempty,max=20"`
	Notes         string               `json:"notes"          validate:"omitempty,max=500"`
	Items         []BookingItemRequest `json:"items"          validate:"required,min=1,dive"`
}

type BookingItemRequest struct {
	ResourceID *string `json:"resource_id" validate:"omitempty,uuid"`
	Kind       string  `json:"kind"        validate:"required,oneof=room_rental class_enrollment"`
	Date       string  `json:"date"        validate:"required"`
	StartTime  string  `json:"start_time"  validate:"omitempty"`
	EndTime    string  `json:"end_time"    validate:"omitempty"`
	Headcount  int     `json:"headcount"   validate:"required,gt=0"`
}

// ParsedItem is the normalized form of an item request: calendar date plus
// minutes since midnight. Catalog items may omit the clock range, which is
// then taken from the resource schedule.
type ParsedItem struct {
	ResourceID *string
	Kind       string
	Date       time.Time
	Start      int
	End        int
	HasRange   bool
	Headcount  int
}

func (i BookingItemRequest) Parse() (ParsedItem, error) {
	date, err := timezone.Parse(DateLayout, i.Date)
	if err != nil {
		return ParsedItem{}, fmt.Errorf("invalid date %q: %w", i.Date, err)
	}

	parsed := ParsedItem{
		ResourceID: i.ResourceID,
		Kind:       i.Kind,
		Date:       date,
		Headcount:  i.Headcount,
	}

	if i.StartTime == "" && i.EndTime == "" {
		return parsed, nil
	}

	start, err := clocktime.Parse(i.StartTime)
	if err != nil {
		return ParsedItem{}, err
	}

	end, err := clocktime.Parse(i.EndTime)
	if err != nil {
		return ParsedItem{}, err
	}

	parsed.Start = start
	parsed.End = end
	parsed.HasRange = true

	return parsed, nil
}

type TransitionBookingRequest struct {
	Status     string `json:"status"      validate:"required,oneof=pending confirmed cancelled"`
	StaffNotes string `json:"staff_notes" validate:"omitempty,max=500"`
}

type BookingItemResponse struct {
	ID              string  `json:"id"`
	ResourceID      *string `json:"resource_id,omitempty"`
	Kind            string  `json:"kind"`
	Date            string  `json:"date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	DurationMinutes int     `json:"duration_minutes"`
	Headcount       int     `json:"headcount"`
	PeriodType      string  `json:"period_type"`
	Price           float64 `json:"price"`
}

func (r *BookingItemResponse) FromModel(item model.BookingItem) {
	r.ID = item.ID
	r.ResourceID = item.ResourceID
	r.Kind = item.Kind
	r.Date = item.BookingDate.Format(DateLayout)
	r.StartTime = clocktime.Format(item.StartMinutes)
	r.EndTime = clocktime.Format(item.EndMinutes)
	r.DurationMinutes = item.DurationMinutes
	r.Headcount = item.Headcount
	r.PeriodType = item.PeriodType
	r.Price = item.Price
}

type BookingResponse struct {
	ID            string                `json:"id"`
	CustomerName  string                `json:"customer_name"`
	CustomerEmail string                `json:"customer_email"`
	CustomerPhone string                `json:"customer_phone"`
	Notes         string                `json:"notes"`
	StaffNotes    string                `json:"staff_notes"`
	Status        string                `json:"status"`
	TotalPrice    float64               `json:"total_price"`
	ConfirmedAt   *time.Time            `json:"confirmed_at,omitempty"`
	CancelledAt   *time.Time            `json:"cancelled_at,omitempty"`
	Items         []BookingItemResponse `json:"items,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking, items []model.BookingItem) {
	r.ID = booking.ID
	r.CustomerName = booking.CustomerName
	r.CustomerEmail = booking.CustomerEmail
	r.CustomerPhone = booking.CustomerPhone
	r.Notes = booking.Notes
	r.StaffNotes = booking.StaffNotes
	r.Status = booking.Status
	r.TotalPrice = booking.TotalPrice
	r.ConfirmedAt = booking.ConfirmedAt
	r.CancelledAt = booking.CancelledAt
	r.Metadata.FromModel(booking.Metadata)

	r.Items = make([]BookingItemResponse, len(items))
	for i, item := range items {
		r.Items[i].FromModel(item)
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod, nil)
	}
}

type AvailabilityResponse struct {
	Date             string   `json:"date"`
	OpenTime         string   `json:"open_time"`
	CloseTime        string   `json:"close_time"`
	SlotMinutes      int      `json:"slot_minutes"`
	ConfirmedBlocked []string `json:"confirmed_blocked"`
	PendingBlocked   []string `json:"pending_blocked"`
}

type ResourceCapacityResponse struct {
	ResourceID   string `json:"resource_id"`
	Capacity     int    `json:"capacity"`
	UsedCapacity int    `json:"used_capacity"`
	Remaining    int    `json:"remaining"`
}

// BookingEvent is the payload published to the booking events topic on every
// lifecycle change.
type BookingEvent struct {
	Event      string    `json:"event"`
	BookingID  string    `json:"booking_id"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"total_price"`
	OccurredAt time.Time `json:"occurred_at"`
}
