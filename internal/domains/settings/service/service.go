package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"reservo/config"
	"reservo/infras/otel"
	"reservo/internal/domains/pricing"
	"reservo/internal/domains/settings/model"
	"reservo/internal/domains/settings/model/dto"
	"reservo/internal/domains/settings/repository"
	"reservo/shared"
	"reservo/shared/cache"
	"reservo/shared/constant"
	gDto "reservo/shared/dto"
	"reservo/shared/failure"
	"reservo/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const cacheGetSettings = "settings:get"

type Settings interface {
	Get(ctx context.Context) (dto.SettingsResponse, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) error
	Load(ctx context.Context) (model.Settings, pricing.Policy, error)
}

type serviceImpl struct {
	repo  repository.Settings
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Settings, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Settings {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetSettings, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetSettings).Msg("cache hit for settings")

		return res, nil
	}

	settings, tiers, err := s.fetch(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(settings, tiers)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetSettings, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save settings to cache")
		}
	}()

	return res, nil
}

// Update replaces the whole operating configuration. The request is the full
// desired state, not a patch.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSettingsRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.repo.Get(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to load current settings")

		return fmt.Errorf("failed to load current settings: %w", err)
	}

	id := current.ID
	if id == constant.Empty {
		id = uuid.NewString()
	}

	settings, err := req.ToModel(id, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse settings request")

		return failure.BadRequestFromString(fmt.Sprintf("invalid time format: %v", err)) // nolint:wrapcheck
	}

	if err = settings.Validate(); err != nil {
		return failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	if current.ID == constant.Empty {
		settings.CreatedAt = timezone.Now()
		settings.CreatedBy = user

		if err = s.repo.Insert(ctx, settings); err != nil {
			return err
		}
	} else {
		fields := map[string]any{
			model.FieldOpenMinutes:      settings.OpenMinutes,
			model.FieldCloseMinutes:     settings.CloseMinutes,
			model.FieldSlotMinutes:      settings.SlotMinutes,
			model.FieldAutoConfirm:      settings.AutoConfirm,
			model.FieldPricingMode:      settings.PricingMode,
			model.FieldPeakDays:         settings.PeakDays,
			model.FieldPeakStartMinutes: settings.PeakStartMinutes,
			model.FieldPeakEndMinutes:   settings.PeakEndMinutes,
			model.FieldSundayFee:        settings.SundayFee,
			model.FieldBaseHourlyRate:   settings.BaseHourlyRate,
			"modified_at":               settings.ModifiedAt,
			"modified_by":               user,
		}

		if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return err
		}
	}

	if err = s.repo.ReplaceTiers(ctx, req.ToTierModels(user)); err != nil {
		log.Error().Err(err).Msg("failed to replace pricing tiers")

		return fmt.Errorf("failed to replace pricing tiers: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cacheGetSettings); err != nil {
			log.Error().Err(err).Msg("failed to delete settings cache")
		}
	}()

	return nil
}

// Load returns the raw settings row plus the pricing policy derived from it.
// A row that fails validation means the deployment is misconfigured and every
// dependent operation must stop with a server-side error, never a 4xx.
func (s *serviceImpl) Load(ctx context.Context) (settings model.Settings, policy pricing.Policy, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Load")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, tiers, err := s.fetch(ctx)
	if err != nil {
		return settings, policy, err
	}

	if settings.ID == constant.Empty {
		return settings, policy, failure.InternalError(pricing.ErrInvalidConfiguration) // nolint:wrapcheck
	}

	if err = settings.Validate(); err != nil {
		log.Error().Err(err).Msg("stored settings failed validation")

		return settings, policy, failure.InternalError(err) // nolint:wrapcheck
	}

	policy = pricing.Policy{
		Mode:           pricing.Mode(settings.PricingMode),
		BaseHourlyRate: settings.BaseHourlyRate,
		SundayFee:      settings.SundayFee,
		Tiers:          make([]pricing.Tier, len(tiers)),
	}

	for i, tier := range tiers {
		policy.Tiers[i] = pricing.Tier{
			MaxHeadcount:     tier.MaxHeadcount,
			NormalHourlyRate: tier.NormalHourlyRate,
			PeakHourlyRate:   tier.PeakHourlyRate,
		}
	}

	return settings, policy, nil
}

func (s *serviceImpl) fetch(ctx context.Context) (model.Settings, []model.PricingTier, error) {
	settings, err := s.repo.Get(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return settings, nil, fmt.Errorf("failed to get settings: %w", err)
	}

	tiers, err := s.repo.GetTiers(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pricing tiers")

		return settings, nil, fmt.Errorf("failed to get pricing tiers: %w", err)
	}

	return settings, tiers, nil
}
