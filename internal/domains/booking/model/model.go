package model

import (
	"time"

	"reservo/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldCustomerName  = "customer_name"
	FieldCustomerEmail = "customer_email"
	FieldCustomerPhone = "customer_phone"
	FieldNotes         = "notes"
	FieldStaffNotes    = "staff_notes"
	FieldStatus        = "status"
	FieldTotalPrice    = "total_price"
	FieldConfirmedAt   = "confirmed_at"
	FieldCancelledAt   = "cancelled_at"
)

const (
	ItemTableName  = "booking_items"
	ItemEntityName = "booking item"

	ItemFieldID          = "id"
	ItemFieldBookingID   = "booking_id"
	ItemFieldResourceID  = "resource_id"
	ItemFieldKind        = "kind"
	ItemFieldBookingDate = "booking_date"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"

	KindRoomRental      = "room_rental"
	KindClassEnrollment = "class_enrollment"
)

// Booking is a customer request aggregating one or more items. Status is the
// only mutable field after creation, besides staff notes.
type Booking struct {
	ID            string     `db:"id"`
	CustomerName  string     `db:"customer_name"`
	CustomerEmail string     `db:"customer_email"`
	CustomerPhone string     `db:"customer_phone"`
	Notes         string     `db:"notes"`
	StaffNotes    string     `db:"staff_notes"`
	Status        string     `db:"status"`
	TotalPrice    float64    `db:"total_price"`
	ConfirmedAt   *time.Time `db:"confirmed_at"`
	CancelledAt   *time.Time `db:"cancelled_at"`
	model.Metadata
}

// BookingItem is one reservable unit. ResourceID is nil for ad-hoc room
// rentals; PeriodType is resolved at creation and never recomputed.
type BookingItem struct {
	ID              string    `db:"id"`
	BookingID       string    `db:"booking_id"`
	ResourceID      *string   `db:"resource_id"`
	Kind            string    `db:"kind"`
	BookingDate     time.Time `db:"booking_date"`
	StartMinutes    int       `db:"start_minutes"`
	EndMinutes      int       `db:"end_minutes"`
	DurationMinutes int       `db:"duration_minutes"`
	Headcount       int       `db:"headcount"`
	PeriodType      string    `db:"period_type"`
	Price           float64   `db:"price"`
	model.Metadata
}

// ActiveItem is a booking item joined with its owner's status, as returned by
// the active-holds queries. Only pending and confirmed owners are included.
type ActiveItem struct {
	BookingItem
	BookingStatus string `db:"booking_status"`
}

// IsActive reports whether the booking still holds its slots.
func (b Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransition reports whether a status change is allowed. Re-applying the
// current status is allowed and treated as a no-op by the caller; cancelled
// is otherwise terminal.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}

	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCancelled
	default:
		return false
	}
}
