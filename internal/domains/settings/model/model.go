package model

import (
	"strings"
	"time"

	"reservo/internal/domains/pricing"
	"reservo/shared"
	"reservo/shared/clocktime"
	"reservo/shared/model"
)

const (
	TableName  = "settings"
	EntityName = "settings"

	FieldID               = "id"
	FieldOpenMinutes      = "open_minutes"
	FieldCloseMinutes     = "close_minutes"
	FieldSlotMinutes      = "slot_minutes"
	FieldAutoConfirm      = "auto_confirm"
	FieldPricingMode      = "pricing_mode"
	FieldPeakDays         = "peak_days"
	FieldPeakStartMinutes = "peak_start_minutes"
	FieldPeakEndMinutes   = "peak_end_minutes"
	FieldSundayFee        = "sunday_fee"
	FieldBaseHourlyRate   = "base_hourly_rate"
)

const (
	TierTableName  = "pricing_tiers"
	TierEntityName = "pricing tier"

	TierFieldID               = "id"
	TierFieldMaxHeadcount     = "max_headcount"
	TierFieldNormalHourlyRate = "normal_hourly_rate"
	TierFieldPeakHourlyRate   = "peak_hourly_rate"
)

// Settings is the singleton operating configuration: opening hours, slot
// granularity and the active pricing policy. PeakDays is a comma separated
// list of weekday numbers (0=Sunday).
type Settings struct {
	ID               string  `db:"id"`
	OpenMinutes      int     `db:"open_minutes"`
	CloseMinutes     int     `db:"close_minutes"`
	SlotMinutes      int     `db:"slot_minutes"`
	AutoConfirm      bool    `db:"auto_confirm"`
	PricingMode      string  `db:"pricing_mode"`
	PeakDays         string  `db:"peak_days"`
	PeakStartMinutes int     `db:"peak_start_minutes"`
	PeakEndMinutes   int     `db:"peak_end_minutes"`
	SundayFee        float64 `db:"sunday_fee"`
	BaseHourlyRate   float64 `db:"base_hourly_rate"`
	model.Metadata
}

// PricingTier prices a headcount bracket. Brackets are matched by the
// smallest MaxHeadcount that still fits the party.
type PricingTier struct {
	ID               string  `db:"id"`
	MaxHeadcount     int     `db:"max_headcount"`
	NormalHourlyRate float64 `db:"normal_hourly_rate"`
	PeakHourlyRate   float64 `db:"peak_hourly_rate"`
	model.Metadata
}

// Validate rejects configurations the booking engine cannot operate on.
func (s Settings) Validate() error {
	if s.SlotMinutes <= 0 {
		return pricing.ErrInvalidConfiguration
	}

	if s.OpenMinutes < 0 || s.CloseMinutes > clocktime.MinutesPerDay || s.CloseMinutes <= s.OpenMinutes {
		return pricing.ErrInvalidConfiguration
	}

	if s.PricingMode != string(pricing.ModePeakWindow) && s.PricingMode != string(pricing.ModeFlatSunday) {
		return pricing.ErrInvalidConfiguration
	}

	return nil
}

// ParsePeakDays converts the stored day list into weekdays, dropping
// anything unparsable.
func (s Settings) ParsePeakDays() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for _, part := range strings.Split(s.PeakDays, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		day, err := shared.ConvertStringToInt(part)
		if err != nil || day < 0 || day > 6 {
			continue
		}

		days = append(days, time.Weekday(day))
	}

	return days
}

// PeakWindow builds the engine window from the stored day list and clock range.
func (s Settings) PeakWindow() pricing.PeakWindow {
	return pricing.PeakWindow{
		Days:  s.ParsePeakDays(),
		Start: s.PeakStartMinutes,
		End:   s.PeakEndMinutes,
	}
}
