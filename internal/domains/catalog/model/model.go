package model

import "reservo/shared/model"

const (
	TableName  = "resources"
	EntityName = "resource"

	FieldID           = "id"
	FieldKind         = "kind"
	FieldName         = "name"
	FieldImage        = "image"
	FieldWeekday      = "weekday"
	FieldStartMinutes = "start_minutes"
	FieldEndMinutes   = "end_minutes"
	FieldUnitPrice    = "unit_price"
	FieldCapacity     = "capacity"
	FieldActive       = "active"
)

const (
	KindClassSession = "class_session"
	KindRentalSlot   = "rental_slot"
)

// Resource is a schedulable catalog offering: a class session or a discrete
// rentable slot with a fixed weekly time range and a headcount ceiling. Its
// used capacity is always derived from active booking items, never stored.
type Resource struct {
	ID           string  `db:"id"`
	Kind         string  `db:"kind"`
	Name         string  `db:"name"`
	Image        string  `db:"image"`
	Weekday      int     `db:"weekday"`
	StartMinutes int     `db:"start_minutes"`
	EndMinutes   int     `db:"end_minutes"`
	UnitPrice    float64 `db:"unit_price"`
	Capacity     int     `db:"capacity"`
	Active       bool    `db:"active"`
	model.Metadata
}

// DurationMinutes is the fixed length of the scheduled range.
func (r Resource) DurationMinutes() int {
	return r.EndMinutes - r.StartMinutes
}
