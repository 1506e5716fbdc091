package dto

import (
	"strconv"
	"strings"

	"reservo/internal/domains/settings/model"
	"reservo/shared/clocktime"
	gDto "reservo/shared/dto"
	gModel "reservo/shared/model"
	"reservo/shared/timezone"

	"github.com/google/uuid"
)

type UpdateSettingsRequest struct {
	OpenTime       string               `json:"open_time"        validate:"required"`
	CloseTime      string               `json:"close_time"       validate:"required"`
	SlotMinutes    int                  `json:"slot_minutes"     validate:"required,gt=0"`
	AutoConfirm    bool                 `json:"auto_confirm"`
	PricingMode    string               `json:"pricing_mode"     validate:"required,oneof=peak_window flat_sunday"`
	PeakDays       []int                `json:"peak_days"        validate:"dive,min=0,max=6"`
	PeakStartTime  string               `json:"peak_start_time"  validate:"required"`
	PeakEndTime    string               `json:"peak_end_time"    validate:"required"`
	SundayFee      float64              `json:"sunday_fee"       validate:"min=0"`
	BaseHourlyRate float64              `json:"base_hourly_rate" validate:"min=0"`
	Tiers          []PricingTierRequest `json:"tiers"            validate:"dive"`
}

type PricingTierRequest struct {
	MaxHeadcount     int     `json:"max_headcount"      validate:"required,gt=0"`
	NormalHourlyRate float64 `json:"normal_hourly_rate" validate:"min=0"`
	PeakHourlyRate   float64 `json:"peak_hourly_rate"   validate:"min=0"`
}

func (u *UpdateSettingsRequest) ToModel(id, user string) (model.Settings, error) {
	open, err := clocktime.Parse(u.OpenTime)
	if err != nil {
		return model.Settings{}, err
	}

	closeAt, err := clocktime.Parse(u.CloseTime)
	if err != nil {
		return model.Settings{}, err
	}

	peakStart, err := clocktime.Parse(u.PeakStartTime)
	if err != nil {
		return model.Settings{}, err
	}

	peakEnd, err := clocktime.Parse(u.PeakEndTime)
	if err != nil {
		return model.Settings{}, err
	}

	days := make([]string, len(u.PeakDays))
	for i, day := range u.PeakDays {
		days[i] = strconv.Itoa(day)
	}

	return model.Settings{
		ID:               id,
		OpenMinutes:      open,
		CloseMinutes:     closeAt,
		SlotMinutes:      u.SlotMinutes,
		AutoConfirm:      u.AutoConfirm,
		PricingMode:      u.PricingMode,
		PeakDays:         strings.Join(days, ","),
		PeakStartMinutes: peakStart,
		PeakEndMinutes:   peakEnd,
		SundayFee:        u.SundayFee,
		BaseHourlyRate:   u.BaseHourlyRate,
		Metadata: gModel.Metadata{
			ModifiedAt: timezone.Now(),
			ModifiedBy: user,
		},
	}, nil
}

func (u *UpdateSettingsRequest) ToTierModels(user string) []model.PricingTier {
	tiers := make([]model.PricingTier, len(u.Tiers))
	for i, tier := range u.Tiers {
		tiers[i] = model.PricingTier{
			ID:               uuid.NewString(),
			MaxHeadcount:     tier.MaxHeadcount,
			NormalHourlyRate: tier.NormalHourlyRate,
			PeakHourlyRate:   tier.PeakHourlyRate,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return tiers
}

type SettingsResponse struct {
	ID             string                `json:"id"`
	OpenTime       string                `json:"open_time"`
	CloseTime      string                `json:"close_time"`
	SlotMinutes    int                   `json:"slot_minutes"`
	AutoConfirm    bool                  `json:"auto_confirm"`
	PricingMode    string                `json:"pricing_mode"`
	PeakDays       []int                 `json:"peak_days"`
	PeakStartTime  string                `json:"peak_start_time"`
	PeakEndTime    string                `json:"peak_end_time"`
	SundayFee      float64               `json:"sunday_fee"`
	BaseHourlyRate float64               `json:"base_hourly_rate"`
	Tiers          []PricingTierResponse `json:"tiers"`
	gDto.Metadata
}

type PricingTierResponse struct {
	ID               string  `json:"id"`
	MaxHeadcount     int     `json:"max_headcount"`
	NormalHourlyRate float64 `json:"normal_hourly_rate"`
	PeakHourlyRate   float64 `json:"peak_hourly_rate"`
}

func (s *SettingsResponse) FromModel(settings model.Settings, tiers []model.PricingTier) {
	s.ID = settings.ID
	s.OpenTime = clocktime.Format(settings.OpenMinutes)
	s.CloseTime = clocktime.Format(settings.CloseMinutes)
	s.SlotMinutes = settings.SlotMinutes
	s.AutoConfirm = settings.AutoConfirm
	s.PricingMode = settings.PricingMode
	s.PeakStartTime = clocktime.Format(settings.PeakStartMinutes)
	s.PeakEndTime = clocktime.Format(settings.PeakEndMinutes)
	s.SundayFee = settings.SundayFee
	s.BaseHourlyRate = settings.BaseHourlyRate
	s.Metadata.FromModel(settings.Metadata)

	days := settings.ParsePeakDays()
	s.PeakDays = make([]int, len(days))
	for i, day := range days {
		s.PeakDays[i] = int(day)
	}

	s.Tiers = make([]PricingTierResponse, len(tiers))
	for i, tier := range tiers {
		s.Tiers[i] = PricingTierResponse{
			ID:               tier.ID,
			MaxHeadcount:     tier.MaxHeadcount,
			NormalHourlyRate: tier.NormalHourlyRate,
			PeakHourlyRate:   tier.PeakHourlyRate,
		}
	}
}
