package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"reservo/config"
	kafkaMocks "reservo/infras/kafka/mocks"
	"reservo/infras/otel/mocks"
	bookingMocks "reservo/internal/domains/booking/mocks"
	"reservo/internal/domains/booking/model"
	"reservo/internal/domains/booking/model/dto"
	"reservo/internal/domains/booking/service"
	catalogMocks "reservo/internal/domains/catalog/mocks"
	catalogModel "reservo/internal/domains/catalog/model"
	"reservo/internal/domains/pricing"
	settingsModel "reservo/internal/domains/settings/model"
	settingsMocks "reservo/internal/domains/settings/service/mocks"
	cacheMocks "reservo/shared/cache/mocks"
	"reservo/shared/failure"
	gModel "reservo/shared/model"
	"reservo/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type fixture struct {
	repo      *bookingMocks.MockBooking
	resources *catalogMocks.MockResource
	settings  *settingsMocks.MockSettings
	cache     *cacheMocks.MockRedisCache
	producer  *kafkaMocks.MockClient
	svc       service.Booking
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:      bookingMocks.NewMockBooking(ctrl),
		resources: catalogMocks.NewMockResource(ctrl),
		settings:  settingsMocks.NewMockSettings(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		producer:  kafkaMocks.NewMockClient(ctrl),
	}

	f.svc = service.New(f.repo, f.resources, f.settings, &config.Config{}, f.cache, mocks.NewOtel(), f.producer)

	// Event publishing and cache invalidation run in goroutines and are
	// best-effort; the tests only assert on the synchronous path.
	f.producer.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func (f *fixture) expectAtomic() {
	f.repo.EXPECT().
		Atomic(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
}

func defaultSettings() settingsModel.Settings {
	return settingsModel.Settings{
		ID:               "settings-1",
		OpenMinutes:      8 * 60,
		CloseMinutes:     22 * 60,
		SlotMinutes:      60,
		AutoConfirm:      false,
		PricingMode:      string(pricing.ModePeakWindow),
		PeakDays:         "1,2,3,4,5",
		PeakStartMinutes: 17 * 60,
		PeakEndMinutes:   22 * 60,
	}
}

func defaultPolicy() pricing.Policy {
	return pricing.Policy{
		Mode: pricing.ModePeakWindow,
		Tiers: []pricing.Tier{
			{MaxHeadcount: 4, NormalHourlyRate: 100, PeakHourlyRate: 150},
			{MaxHeadcount: 10, NormalHourlyRate: 180, PeakHourlyRate: 250},
		},
	}
}

func activeRental(bookingID, status string, date time.Time, start, end int) model.ActiveItem {
	return model.ActiveItem{
		BookingItem: model.BookingItem{
			ID:           "item-" + bookingID,
			BookingID:    bookingID,
			Kind:         model.KindRoomRental,
			BookingDate:  date,
			StartMinutes: start,
			EndMinutes:   end,
			Headcount:    2,
		},
		BookingStatus: status,
	}
}

func rentalRequest(date, start, end string, headcount int) dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		CustomerName:  "Dewi",
		CustomerEmail: "dewi@example.com",
		CustomerPhone: "+62811111111",
		Items: []dto.BookingItemRequest{
			{
				Kind:      model.KindRoomRental,
				Date:      date,
				StartTime: start,
				EndTime:   end,
				Headcount: headcount,
			},
		},
	}
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	day, err := timezone.Parse(dto.DateLayout, value)
	require.NoError(t, err)

	return day
}

func TestBookingService_Create_RoomRental(t *testing.T) {
	const date = "2026-09-07"

	t.Run("pending booking on free slot", func(t *testing.T) {
		f := newFixture(t)

		f.settings.EXPECT().Load(gomock.Any()).Return(defaultSettings(), defaultPolicy(), nil)
		f.expectAtomic()
		f.repo.EXPECT().ActiveItemsByDateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.resources.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		var inserted model.Booking
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
				inserted = booking

				return nil
			})
		f.repo.EXPECT().InsertItemsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Create(context.Background(), rentalRequest(date, "10:00", "12:00", 3))
		require.NoError(t, err)

		assert.Equal(t, model.StatusPending, inserted.Status)
		assert.Nil(t, inserted.ConfirmedAt)
		assert.Equal(t, model.StatusPending, res.Status)
		// 2 hours off-peak at the 1-4 headcount rate.
		assert.InDelta(t, 200.0, res.TotalPrice, 0.001)
		require.Len(t, res.Items, 1)
		assert.Equal(t, string(pricing.PeriodNormal), res.Items[0].PeriodType)
	})

	t.Run("auto confirm stamps confirmed_at", func(t *testing.T) {
		f := newFixture(t)

		settings := defaultSettings()
		settings.AutoConfirm = true

		f.settings.EXPECT().Load(gomock.Any()).Return(settings, defaultPolicy(), nil)
		f.expectAtomic()
		f.repo.EXPECT().ActiveItemsByDateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.resources.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		var inserted model.Booking
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
				inserted = booking

				return nil
			})
		f.repo.EXPECT().InsertItemsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.Create(context.Background(), rentalRequest(date, "10:00", "12:00", 3))
		require.NoError(t, err)

		assert.Equal(t, model.StatusConfirmed, inserted.Status)
		assert.NotNil(t, inserted.ConfirmedAt)
	})

	t.Run("pending hold blocks the range", func(t *testing.T) {
		f := newFixture(t)
		day := mustDate(t, date)

		f.settings.EXPECT().Load(gomock.Any()).Return(defaultSettings(), defaultPolicy(), nil)
		f.expectAtomic()
		f.repo.EXPECT().
			ActiveItemsByDateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.ActiveItem{activeRental("other", model.StatusPending, day, 11*60, 13*60)}, nil)
		f.resources.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := f.svc.Create(context.Background(), rentalRequest(date, "10:00", "12:00", 3))
		require.Error(t, err)

		var conflictErr *failure.Failure
		require.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, 409, conflictErr.Code)
	})

	t.Run("touching ranges do not conflict", func(t *testing.T) {
		f := newFixture(t)
		day := mustDate(t, date)

		f.settings.EXPECT().Load(gomock.Any()).Return(defaultSettings(), defaultPolicy(), nil)
		f.expectAtomic()
		f.repo.EXPECT().
			ActiveItemsByDateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.ActiveItem{activeRental("other", model.StatusConfirmed, day, 8*60, 10*60)}, nil)
		f.resources.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().InsertItemsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.Create(context.Background(), rentalRequest(date, "10:00", "12:00", 3))
		assert.NoError(t, err)
	})

	t.Run("scheduled class session blocks the range", func(t *testing.T) {
		f := newFixture(t)

		f.settings.EXPECT().Load(gomock.Any()).Return(defaultSettings(), defaultPolicy(), nil)
		f.expectAtomic()
		f.repo.EXPECT().ActiveItemsByDateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.resources.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]catalogModel.Resource{{
				ID:           "class-1",
				Kind:         catalogModel.KindClassSession,
				Name:         "Morning Yoga",
				StartMinutes: 9 * 60,
				EndMinutes:   11 * 60,
				Active:       true,
			}}, nil)

		_, err := f.svc.Create(context.Background(), rentalRequest(date, "10:00", "12:00", 3))
		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("overlapping items within one request", func(t *testing.T) {
		f := newFixture(t)

		f.settings.EXPECT().Load(gomock.Any()).Return(defaultSettings(), defaultPolicy(), nil)

		req := rentalRequest(date, "10:00", "12:00", 3)
		req.Items = append(req.Items, dto.BookingItemRequest{
			Kind:      model.KindRoomRental,
			Date:      date,
			StartTime: "11:00",
			EndTime:   "13:00",
			Headcount: 2,
		})

		_, err := f.svc.Create(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("range outside operating hours", func(t *testing.T) {
		f := newFixture(t)

		f.settings.EXPECT().Load(gomock.Any()).Return(defaultSettings(), defaultPolicy(), nil)

		_, err := f.svc.Create(context.Background(), rentalRequest(date, "06:00", "09:00", 3))
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("headcount above the largest bracket", func(t *testing.T) {
		f := newFixture(t)

		f.settings.EXPECT().Load(gomock.Any()).Return(defaultSettings(), defaultPolicy(), nil)

		_, err := f.svc.Create(context.Background(), rentalRequest(date, "10:00", "12:00", 11))
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("peak window rate applies", func(t *testing.T) {
		f := newFixture(t)

		f.settings.EXPECT().Load(gomock.Any()).Return(defaultSettings(), defaultPolicy(), nil)
		f.expectAtomic()
		f.repo.EXPECT().ActiveItemsByDateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.resources.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().InsertItemsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		// 2026-09-07 is a Monday inside the peak day set; 18:00-20:00 overlaps
		// the 17:00-22:00 peak window.
		res, err := f.svc.Create(context.Background(), rentalRequest(date, "18:00", "20:00", 3))
		require.NoError(t, err)

		assert.InDelta(t, 300.0, res.TotalPrice, 0.001)
		require.Len(t, res.Items, 1)
		assert.Equal(t, string(pricing.PeriodPeak), res.Items[0].PeriodType)
	})
}

func TestBookingService_Create_ClassEnrollment(t *testing.T) {
	const date = "2026-09-07"

	resourceID := "11111111-2222-3333-4444-555555555555"

	classResource := func(t *testing.T, capacity int) catalogModel.Resource {
		t.Helper()

		return catalogModel.Resource{
			ID:           resourceID,
			Kind:         catalogModel.KindClassSession,
			Name:         "Evening Pilates",
			Weekday:      int(mustDate(t, date).Weekday()),
			StartMinutes: 18 * 60,
			EndMinutes:   19 * 60,
			UnitPrice:    50,
			Capacity:     capacity,
			Active:       true,
		}
	}

	enrollmentRequest := func(headcount int) dto.CreateBookingRequest {
		id := resourceID

		return dto.CreateBookingRequest{
			CustomerName:  "Bayu",
			CustomerEmail: "bayu@example.com",
			Items: []dto.BookingItemRequest{
				{
					ResourceID: &id,
					Kind:       model.KindClassEnrollment,
					Date:       date,
					Headcount:  headcount,
				},
			},
		}
	}

	enrolled := func(bookingID string, headcount int) model.ActiveItem {
		id := resourceID

		return model.ActiveItem{
			BookingItem: model.BookingItem{
				ID:         "item-" + bookingID,
				BookingID:  bookingID,
				ResourceID: &id,
				Kind:       model.KindClassEnrollment,
				Headcount:  headcount,
			},
			BookingStatus: model.StatusConfirmed,
		}
	}

	t.Run("admission within capacity uses fixed unit price", func(t *testing.T) {
		f := newFixture(t)
		resource := classResource(t, 10)

		f.settings.EXPECT().Load(gomock.Any()).Return(defaultSettings(), defaultPolicy(), nil)
		f.resources.EXPECT().Get(gomock.Any(), gomock.Any()).Return(resource, nil).Times(2)
		f.expectAtomic()
		f.repo.EXPECT().
			ActiveItemsByResourceTx(gomock.Any(), gomock.Any(), resourceID).
			Return([]model.ActiveItem{enrolled("other", 6)}, nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().InsertItemsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Create(context.Background(), enrollmentRequest(3))
		require.NoError(t, err)

		assert.InDelta(t, 150.0, res.TotalPrice, 0.001)
	})

	t.Run("admission beyond capacity conflicts", func(t *testing.T) {
		f := newFixture(t)
		resource := classResource(t, 10)

		f.settings.EXPECT().Load(gomock.Any()).Return(defaultSettings(), defaultPolicy(), nil)
		f.resources.EXPECT().Get(gomock.Any(), gomock.Any()).Return(resource, nil).Times(2)
		f.expectAtomic()
		f.repo.EXPECT().
			ActiveItemsByResourceTx(gomock.Any(), gomock.Any(), resourceID).
			Return([]model.ActiveItem{enrolled("other", 8)}, nil)

		_, err := f.svc.Create(context.Background(), enrollmentRequest(3))
		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("request tally prevents double admission of the last places", func(t *testing.T) {
		f := newFixture(t)
		resource := classResource(t, 10)
		id := resourceID

		req := enrollmentRequest(4)
		req.Items = append(req.Items, dto.BookingItemRequest{
			ResourceID: &id,
			Kind:       model.KindClassEnrollment,
			Date:       date,
			Headcount:  4,
		})

		f.settings.EXPECT().Load(gomock.Any()).Return(defaultSettings(), defaultPolicy(), nil)
		f.resources.EXPECT().Get(gomock.Any(), gomock.Any()).Return(resource, nil).Times(4)
		f.expectAtomic()
		f.repo.EXPECT().
			ActiveItemsByResourceTx(gomock.Any(), gomock.Any(), resourceID).
			Return([]model.ActiveItem{enrolled("other", 4)}, nil).
			Times(2)

		// 4 already enrolled, items admit 4 then ask for 4 more against a
		// capacity of 10; the second must fail on the tallied usage.
		_, err := f.svc.Create(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("wrong weekday is rejected", func(t *testing.T) {
		f := newFixture(t)
		resource := classResource(t, 10)
		resource.Weekday = (resource.Weekday + 1) % 7

		f.settings.EXPECT().Load(gomock.Any()).Return(defaultSettings(), defaultPolicy(), nil)
		f.resources.EXPECT().Get(gomock.Any(), gomock.Any()).Return(resource, nil)

		_, err := f.svc.Create(context.Background(), enrollmentRequest(2))
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("inactive resource is not found", func(t *testing.T) {
		f := newFixture(t)
		resource := classResource(t, 10)
		resource.Active = false

		f.settings.EXPECT().Load(gomock.Any()).Return(defaultSettings(), defaultPolicy(), nil)
		f.resources.EXPECT().Get(gomock.Any(), gomock.Any()).Return(resource, nil)

		_, err := f.svc.Create(context.Background(), enrollmentRequest(2))
		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("enrollment without resource id is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.settings.EXPECT().Load(gomock.Any()).Return(defaultSettings(), defaultPolicy(), nil)

		req := enrollmentRequest(2)
		req.Items[0].ResourceID = nil

		_, err := f.svc.Create(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_Transition(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	pendingBooking := model.Booking{
		ID:           "booking-1",
		CustomerName: "Dewi",
		Status:       model.StatusPending,
		TotalPrice:   200,
		Metadata:     gModel.Metadata{CreatedAt: timezone.Now(), ModifiedAt: timezone.Now()},
	}

	rentalItem := model.BookingItem{
		ID:           "item-1",
		BookingID:    "booking-1",
		Kind:         model.KindRoomRental,
		BookingDate:  day,
		StartMinutes: 10 * 60,
		EndMinutes:   12 * 60,
		Headcount:    3,
	}

	t.Run("confirm revalidates and excludes own hold", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking, nil)
		f.repo.EXPECT().GetItems(gomock.Any(), "booking-1").Return([]model.BookingItem{rentalItem}, nil)
		f.expectAtomic()

		// Only the booking's own pending hold occupies the range.
		f.repo.EXPECT().
			ActiveItemsByDateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.ActiveItem{{BookingItem: rentalItem, BookingStatus: model.StatusPending}}, nil)
		f.resources.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Transition(context.Background(), "booking-1", dto.TransitionBookingRequest{Status: model.StatusConfirmed})
		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, res.Status)
		assert.NotNil(t, res.ConfirmedAt)
	})

	t.Run("confirm loses the race to another active hold", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking, nil)
		f.repo.EXPECT().GetItems(gomock.Any(), "booking-1").Return([]model.BookingItem{rentalItem}, nil)
		f.expectAtomic()

		winner := activeRental("booking-2", model.StatusConfirmed, day, 11*60, 13*60)
		own := model.ActiveItem{BookingItem: rentalItem, BookingStatus: model.StatusPending}

		f.repo.EXPECT().
			ActiveItemsByDateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.ActiveItem{own, winner}, nil)
		f.resources.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := f.svc.Transition(context.Background(), "booking-1", dto.TransitionBookingRequest{Status: model.StatusConfirmed})
		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("cancel frees the slots without validation", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking, nil)
		f.repo.EXPECT().GetItems(gomock.Any(), "booking-1").Return([]model.BookingItem{rentalItem}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Transition(context.Background(), "booking-1", dto.TransitionBookingRequest{
			Status:     model.StatusCancelled,
			StaffNotes: "customer no-show",
		})
		require.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, res.Status)
		assert.Equal(t, "customer no-show", res.StaffNotes)
	})

	t.Run("cancelling a cancelled booking is a no-op success", func(t *testing.T) {
		f := newFixture(t)

		cancelled := pendingBooking
		cancelled.Status = model.StatusCancelled
		cancelledAt := timezone.Now()
		cancelled.CancelledAt = &cancelledAt

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil)
		f.repo.EXPECT().GetItems(gomock.Any(), "booking-1").Return([]model.BookingItem{rentalItem}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Transition(context.Background(), "booking-1", dto.TransitionBookingRequest{Status: model.StatusCancelled})
		require.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, res.Status)
	})

	t.Run("cancelled booking cannot be confirmed", func(t *testing.T) {
		f := newFixture(t)

		cancelled := pendingBooking
		cancelled.Status = model.StatusCancelled

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil)

		_, err := f.svc.Transition(context.Background(), "booking-1", dto.TransitionBookingRequest{Status: model.StatusConfirmed})
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unknown booking is not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.Transition(context.Background(), "missing", dto.TransitionBookingRequest{Status: model.StatusConfirmed})
		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_Availability(t *testing.T) {
	const date = "2026-09-07"

	t.Run("splits blocked slots by hold status", func(t *testing.T) {
		f := newFixture(t)
		day := mustDate(t, date)

		settings := defaultSettings()
		settings.OpenMinutes = 9 * 60
		settings.CloseMinutes = 13 * 60

		f.settings.EXPECT().Load(gomock.Any()).Return(settings, defaultPolicy(), nil)
		f.repo.EXPECT().
			ActiveItemsByDate(gomock.Any(), gomock.Any()).
			Return([]model.ActiveItem{
				activeRental("a", model.StatusConfirmed, day, 9*60, 10*60),
				activeRental("b", model.StatusPending, day, 11*60, 12*60),
			}, nil)
		f.resources.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := f.svc.Availability(context.Background(), date)
		require.NoError(t, err)

		assert.Equal(t, "09:00", res.OpenTime)
		assert.Equal(t, "13:00", res.CloseTime)
		assert.Equal(t, []string{"09:00"}, res.ConfirmedBlocked)
		assert.Equal(t, []string{"11:00"}, res.PendingBlocked)
	})

	t.Run("scheduled sessions block as confirmed", func(t *testing.T) {
		f := newFixture(t)

		settings := defaultSettings()
		settings.OpenMinutes = 9 * 60
		settings.CloseMinutes = 12 * 60

		f.settings.EXPECT().Load(gomock.Any()).Return(settings, defaultPolicy(), nil)
		f.repo.EXPECT().ActiveItemsByDate(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.resources.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]catalogModel.Resource{{
				ID:           "class-1",
				Kind:         catalogModel.KindClassSession,
				Name:         "Morning Yoga",
				StartMinutes: 10 * 60,
				EndMinutes:   11 * 60,
				Active:       true,
			}}, nil)

		res, err := f.svc.Availability(context.Background(), date)
		require.NoError(t, err)

		assert.Equal(t, []string{"10:00"}, res.ConfirmedBlocked)
		assert.Empty(t, res.PendingBlocked)
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Availability(context.Background(), "07-09-2026")
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_ResourceCapacity(t *testing.T) {
	resourceID := "11111111-2222-3333-4444-555555555555"

	t.Run("usage is derived from active items", func(t *testing.T) {
		f := newFixture(t)
		id := resourceID

		f.resources.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(catalogModel.Resource{ID: resourceID, Capacity: 10, Active: true}, nil)
		f.repo.EXPECT().
			ActiveItemsByResource(gomock.Any(), resourceID).
			Return([]model.ActiveItem{
				{BookingItem: model.BookingItem{BookingID: "a", ResourceID: &id, Headcount: 4}, BookingStatus: model.StatusConfirmed},
				{BookingItem: model.BookingItem{BookingID: "b", ResourceID: &id, Headcount: 2}, BookingStatus: model.StatusPending},
			}, nil)

		res, err := f.svc.ResourceCapacity(context.Background(), resourceID)
		require.NoError(t, err)

		assert.Equal(t, 10, res.Capacity)
		assert.Equal(t, 6, res.UsedCapacity)
		assert.Equal(t, 4, res.Remaining)
	})

	t.Run("unknown resource is not found", func(t *testing.T) {
		f := newFixture(t)

		f.resources.EXPECT().Get(gomock.Any(), gomock.Any()).Return(catalogModel.Resource{}, nil)

		_, err := f.svc.ResourceCapacity(context.Background(), resourceID)
		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
