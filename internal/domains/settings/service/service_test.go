package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"reservo/config"
	"reservo/infras/otel/mocks"
	"reservo/internal/domains/pricing"
	settingsMocks "reservo/internal/domains/settings/mocks"
	"reservo/internal/domains/settings/model"
	"reservo/internal/domains/settings/model/dto"
	"reservo/internal/domains/settings/service"
	cacheMocks "reservo/shared/cache/mocks"
	gDto "reservo/shared/dto"
	"reservo/shared/failure"
)

var errCacheMiss = errors.New("cache miss")

func storedSettings() model.Settings {
	return model.Settings{
		ID:               "settings-1",
		OpenMinutes:      8 * 60,
		CloseMinutes:     22 * 60,
		SlotMinutes:      60,
		PricingMode:      string(pricing.ModePeakWindow),
		PeakDays:         "1,2,3,4,5",
		PeakStartMinutes: 17 * 60,
		PeakEndMinutes:   22 * 60,
	}
}

func storedTiers() []model.PricingTier {
	return []model.PricingTier{
		{ID: "tier-1", MaxHeadcount: 4, NormalHourlyRate: 100, PeakHourlyRate: 150},
		{ID: "tier-2", MaxHeadcount: 10, NormalHourlyRate: 180, PeakHourlyRate: 250},
	}
}

func updateRequest() dto.UpdateSettingsRequest {
	return dto.UpdateSettingsRequest{
		OpenTime:      "08:00",
		CloseTime:     "22:00",
		SlotMinutes:   60,
		PricingMode:   string(pricing.ModePeakWindow),
		PeakDays:      []int{1, 2, 3, 4, 5},
		PeakStartTime: "17:00",
		PeakEndTime:   "22:00",
		Tiers: []dto.PricingTierRequest{
			{MaxHeadcount: 4, NormalHourlyRate: 100, PeakHourlyRate: 150},
		},
	}
}

func TestSettingsService_Load(t *testing.T) {
	t.Run("builds policy from stored row and tiers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := settingsMocks.NewMockSettings(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedSettings(), nil)
		mockRepo.EXPECT().GetTiers(gomock.Any()).Return(storedTiers(), nil)

		svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

		settings, policy, err := svc.Load(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "settings-1", settings.ID)
		assert.Equal(t, pricing.ModePeakWindow, policy.Mode)
		require.Len(t, policy.Tiers, 2)
		assert.Equal(t, 10, policy.MaxHeadcount())
	})

	t.Run("fails when no settings row exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := settingsMocks.NewMockSettings(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Settings{}, nil)
		mockRepo.EXPECT().GetTiers(gomock.Any()).Return(nil, nil)

		svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

		_, _, err := svc.Load(context.Background())
		require.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})

	t.Run("fails when the stored row is invalid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := settingsMocks.NewMockSettings(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		broken := storedSettings()
		broken.CloseMinutes = broken.OpenMinutes

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(broken, nil)
		mockRepo.EXPECT().GetTiers(gomock.Any()).Return(storedTiers(), nil)

		svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

		_, _, err := svc.Load(context.Background())
		require.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})
}

func TestSettingsService_Update(t *testing.T) {
	t.Run("updates the existing row and replaces tiers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := settingsMocks.NewMockSettings(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedSettings(), nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, 8*60, fields[model.FieldOpenMinutes])
				assert.Equal(t, "1,2,3,4,5", fields[model.FieldPeakDays])

				return nil
			})
		mockRepo.EXPECT().
			ReplaceTiers(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tiers []model.PricingTier) error {
				require.Len(t, tiers, 1)
				assert.Equal(t, 4, tiers[0].MaxHeadcount)

				return nil
			})
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

		err := svc.Update(context.Background(), updateRequest())
		assert.NoError(t, err)
	})

	t.Run("inserts when no row exists yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := settingsMocks.NewMockSettings(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Settings{}, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, settings model.Settings) error {
				assert.NotEmpty(t, settings.ID)

				return nil
			})
		mockRepo.EXPECT().ReplaceTiers(gomock.Any(), gomock.Any()).Return(nil)
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

		err := svc.Update(context.Background(), updateRequest())
		assert.NoError(t, err)
	})

	t.Run("rejects malformed clock times", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := settingsMocks.NewMockSettings(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedSettings(), nil)

		svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

		req := updateRequest()
		req.OpenTime = "8am"

		err := svc.Update(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("rejects a close time before the open time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := settingsMocks.NewMockSettings(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedSettings(), nil)

		svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

		req := updateRequest()
		req.OpenTime = "22:00"
		req.CloseTime = "08:00"

		err := svc.Update(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestSettingsService_Get(t *testing.T) {
	t.Run("cache miss fetches from the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := settingsMocks.NewMockSettings(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedSettings(), nil)
		mockRepo.EXPECT().GetTiers(gomock.Any()).Return(storedTiers(), nil)
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

		res, err := svc.Get(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "08:00", res.OpenTime)
		assert.Equal(t, "22:00", res.CloseTime)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, res.PeakDays)
		require.Len(t, res.Tiers, 2)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := settingsMocks.NewMockSettings(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, ok := value.(*dto.SettingsResponse)
				require.True(t, ok)
				res.ID = "settings-1"

				return nil
			})

		svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

		res, err := svc.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "settings-1", res.ID)
	})
}
