package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reservo/config"
	"reservo/infras/kafka"
	"reservo/infras/otel"
	"reservo/internal/domains/booking/engine"
	"reservo/internal/domains/booking/model"
	"reservo/internal/domains/booking/model/dto"
	"reservo/internal/domains/booking/repository"
	catalogModel "reservo/internal/domains/catalog/model"
	catalogRepo "reservo/internal/domains/catalog/repository"
	"reservo/internal/domains/pricing"
	settingsModel "reservo/internal/domains/settings/model"
	settingsService "reservo/internal/domains/settings/service"
	"reservo/shared"
	"reservo/shared/cache"
	"reservo/shared/clocktime"
	"reservo/shared/constant"
	gDto "reservo/shared/dto"
	"reservo/shared/failure"
	gModel "reservo/shared/model"
	"reservo/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	EventBookingCreated   = "booking.created"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Transition(ctx context.Context, id string, req dto.TransitionBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Availability(ctx context.Context, date string) (dto.AvailabilityResponse, error)
	ResourceCapacity(ctx context.Context, resourceID string) (dto.ResourceCapacityResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	resources catalogRepo.Resource
	settings  settingsService.Settings
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	producer  kafka.Client
}

func New(
	repo repository.Booking,
	resources catalogRepo.Resource,
	settings settingsService.Settings,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	producer kafka.Client,
) Booking {
	return &serviceImpl{
		repo:      repo,
		resources: resources,
		settings:  settings,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		producer:  producer,
	}
}

// Create validates, prices and persists a booking with all its items in one
// serializable transaction. The initial status follows the auto-confirm
// setting.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	settings, policy, err := s.settings.Load(ctx)
	if err != nil {
		return res, err
	}

	status := model.StatusPending
	if settings.AutoConfirm {
		status = model.StatusConfirmed
	}

	booking := model.Booking{
		ID:            uuid.NewString(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
		Status:        status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if status == model.StatusConfirmed {
		now := timezone.Now()
		booking.ConfirmedAt = &now
	}

	items, err := s.buildItems(ctx, booking.ID, req.Items, settings, policy, user)
	if err != nil {
		return res, err
	}

	for _, item := range items {
		booking.TotalPrice += item.Price
	}
	booking.TotalPrice = pricing.RoundHalfUp(booking.TotalPrice)

	err = s.repo.Atomic(ctx, func(tx *sqlx.Tx) error {
		if err := s.validateHolds(ctx, tx, items, ""); err != nil {
			return err
		}

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return err
		}

		return s.repo.InsertItemsTx(ctx, tx, items)
	})
	if err != nil {
		return res, err
	}

	s.afterChange(ctx, EventBookingCreated, booking)

	res.FromModel(booking, items)

	return res, nil
}

// Transition applies a staff-driven status change. Confirming re-validates
// every item against current holds, excluding the booking's own reservation;
// cancelling always succeeds and immediately frees the held slots.
func (s *serviceImpl) Transition(ctx context.Context, id string, req dto.TransitionBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !model.CanTransition(booking.Status, req.Status) {
		return res, failure.BadRequestFromString(fmt.Sprintf("cannot transition booking from %s to %s", booking.Status, req.Status)) // nolint:wrapcheck
	}

	items, err := s.repo.GetItems(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking items")

		return res, fmt.Errorf("failed to get booking items: %w", err)
	}

	now := timezone.Now()
	fields := map[string]any{
		model.FieldStatus: req.Status,
		"modified_at":     now,
		"modified_by":     user,
	}

	if req.StaffNotes != constant.Empty {
		fields[model.FieldStaffNotes] = req.StaffNotes
		booking.StaffNotes = req.StaffNotes
	}

	event := constant.Empty

	switch req.Status {
	case model.StatusConfirmed:
		if booking.ConfirmedAt == nil {
			fields[model.FieldConfirmedAt] = now
			booking.ConfirmedAt = &now
		}

		event = EventBookingConfirmed

		err = s.repo.Atomic(ctx, func(tx *sqlx.Tx) error {
			if err := s.revalidateHolds(ctx, tx, items, id); err != nil {
				return err
			}

			return s.repo.UpdateTx(ctx, tx, fields, filter)
		})
	case model.StatusCancelled:
		if booking.CancelledAt == nil && booking.Status != model.StatusCancelled {
			fields[model.FieldCancelledAt] = now
			booking.CancelledAt = &now
		}

		event = EventBookingCancelled
		err = s.repo.Update(ctx, fields, filter)
	default:
		err = s.repo.Update(ctx, fields, filter)
	}

	if err != nil {
		return res, err
	}

	booking.Status = req.Status
	booking.ModifiedAt = now
	booking.ModifiedBy = user

	if event != constant.Empty {
		s.afterChange(ctx, event, booking)
	} else {
		s.invalidate(ctx, booking.ID)
	}

	res.FromModel(booking, items)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	items, err := s.repo.GetItems(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking items")

		return res, fmt.Errorf("failed to get booking items: %w", err)
	}

	res.FromModel(booking, items)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, params, filter)
	if err != nil {
		return res, err
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	return res, nil
}

// Availability reports which slot labels of a date are blocked, split by
// whether the blocking hold is confirmed or still pending. Scheduled catalog
// sessions block as confirmed. Slot labels are presentation only; conflicts
// are always decided on continuous intervals.
func (s *serviceImpl) Availability(ctx context.Context, date string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := timezone.Parse(dto.DateLayout, date)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date)) // nolint:wrapcheck
	}

	settings, _, err := s.settings.Load(ctx)
	if err != nil {
		return res, err
	}

	active, err := s.repo.ActiveItemsByDate(ctx, day)
	if err != nil {
		return res, err
	}

	blocks, err := s.scheduleBlocks(ctx, day)
	if err != nil {
		return res, err
	}

	confirmed := blocks
	pending := []engine.Interval{}

	for _, item := range active {
		if item.Kind != model.KindRoomRental {
			continue
		}

		interval := engine.Interval{
			BookingID: item.BookingID,
			Start:     item.StartMinutes,
			End:       item.EndMinutes,
		}

		if item.BookingStatus == model.StatusConfirmed {
			confirmed = append(confirmed, interval)
		} else {
			pending = append(pending, interval)
		}
	}

	res.Date = date
	res.OpenTime = clocktime.Format(settings.OpenMinutes)
	res.CloseTime = clocktime.Format(settings.CloseMinutes)
	res.SlotMinutes = settings.SlotMinutes
	res.ConfirmedBlocked = []string{}
	res.PendingBlocked = []string{}

	for slot := settings.OpenMinutes; slot+settings.SlotMinutes <= settings.CloseMinutes; slot += settings.SlotMinutes {
		label := clocktime.Format(slot)

		if engine.CheckOverlap(slot, slot+settings.SlotMinutes, confirmed, constant.Empty).Conflict {
			res.ConfirmedBlocked = append(res.ConfirmedBlocked, label)

			continue
		}

		if engine.CheckOverlap(slot, slot+settings.SlotMinutes, pending, constant.Empty).Conflict {
			res.PendingBlocked = append(res.PendingBlocked, label)
		}
	}

	return res, nil
}

// ResourceCapacity derives the used headcount of a catalog resource from its
// active booking items. Nothing is stored.
func (s *serviceImpl) ResourceCapacity(ctx context.Context, resourceID string) (res dto.ResourceCapacityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResourceCapacity")
	defer scope.End()
	defer scope.TraceIfError(err)

	resource, err := s.resources.Get(ctx, shared.FilterByID(resourceID, catalogModel.FieldID, catalogModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get resource")

		return res, fmt.Errorf("failed to get resource: %w", err)
	}

	if resource.ID == constant.Empty {
		return res, failure.NotFound("resource not found") // nolint:wrapcheck
	}

	active, err := s.repo.ActiveItemsByResource(ctx, resourceID)
	if err != nil {
		return res, err
	}

	used := engine.UsedCapacity(toUsages(active), resourceID, constant.Empty)

	res.ResourceID = resourceID
	res.Capacity = resource.Capacity
	res.UsedCapacity = used
	res.Remaining = resource.Capacity - used

	return res, nil
}

// buildItems normalizes, validates and prices every requested item. All
// failures here are client faults; conflicts against persisted holds are
// checked later inside the transaction.
func (s *serviceImpl) buildItems(
	ctx context.Context,
	bookingID string,
	reqs []dto.BookingItemRequest,
	settings settingsModel.Settings,
	policy pricing.Policy,
	user string,
) ([]model.BookingItem, error) {
	items := make([]model.BookingItem, 0, len(reqs))
	window := settings.PeakWindow()

	for _, req := range reqs {
		parsed, err := req.Parse()
		if err != nil {
			return nil, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
		}

		var resource catalogModel.Resource

		if parsed.ResourceID != nil {
			resource, err = s.resources.Get(ctx, shared.FilterByID(*parsed.ResourceID, catalogModel.FieldID, catalogModel.TableName))
			if err != nil {
				log.Error().Err(err).Msg("failed to get resource")

				return nil, fmt.Errorf("failed to get resource: %w", err)
			}

			if resource.ID == constant.Empty || !resource.Active {
				return nil, failure.NotFound("resource not found") // nolint:wrapcheck
			}

			if int(parsed.Date.Weekday()) != resource.Weekday {
				return nil, failure.BadRequestFromString(fmt.Sprintf("resource %s is not scheduled on %s", resource.Name, parsed.Date.Weekday())) // nolint:wrapcheck
			}

			if !parsed.HasRange {
				parsed.Start = resource.StartMinutes
				parsed.End = resource.EndMinutes
			}
		} else if parsed.Kind == model.KindClassEnrollment {
			return nil, failure.BadRequestFromString("class enrollment requires a resource_id") // nolint:wrapcheck
		} else if !parsed.HasRange {
			return nil, failure.BadRequestFromString("start_time and end_time are required for room rentals") // nolint:wrapcheck
		}

		if parsed.End <= parsed.Start {
			return nil, failure.BadRequestFromString("end_time must be after start_time") // nolint:wrapcheck
		}

		if parsed.Start < settings.OpenMinutes || parsed.End > settings.CloseMinutes {
			return nil, failure.BadRequestFromString(fmt.Sprintf(
				"requested range is outside operating hours %s-%s",
				clocktime.Format(settings.OpenMinutes),
				clocktime.Format(settings.CloseMinutes),
			)) // nolint:wrapcheck
		}

		duration := parsed.End - parsed.Start
		period := pricing.ClassifyPeriod(parsed.Date.Weekday(), parsed.Start, parsed.End, window)

		var price float64

		if parsed.ResourceID != nil {
			price = pricing.FixedUnitPrice(resource.UnitPrice, parsed.Headcount)
		} else {
			price, err = policy.Price(duration, parsed.Headcount, parsed.Date.Weekday(), period)
			if errors.Is(err, pricing.ErrHeadcountExceeded) {
				return nil, failure.BadRequestFromString(fmt.Sprintf("headcount %d exceeds the largest bookable party size %d", parsed.Headcount, policy.MaxHeadcount())) // nolint:wrapcheck
			}

			if err != nil {
				return nil, failure.InternalError(err) // nolint:wrapcheck
			}
		}

		items = append(items, model.BookingItem{
			ID:              uuid.NewString(),
			BookingID:       bookingID,
			ResourceID:      parsed.ResourceID,
			Kind:            parsed.Kind,
			BookingDate:     parsed.Date,
			StartMinutes:    parsed.Start,
			EndMinutes:      parsed.End,
			DurationMinutes: duration,
			Headcount:       parsed.Headcount,
			PeriodType:      string(period),
			Price:           price,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		})
	}

	if err := checkIntraRequestOverlap(items); err != nil {
		return nil, err
	}

	return items, nil
}

// checkIntraRequestOverlap rejects requests whose own room rentals collide
// with each other. This is a validation fault, not a conflict against
// persisted state.
func checkIntraRequestOverlap(items []model.BookingItem) error {
	for i, a := range items {
		if a.Kind != model.KindRoomRental {
			continue
		}

		for _, b := range items[i+1:] {
			if b.Kind != model.KindRoomRental || !a.BookingDate.Equal(b.BookingDate) {
				continue
			}

			if engine.Overlaps(a.StartMinutes, a.EndMinutes, b.StartMinutes, b.EndMinutes) {
				return failure.BadRequestFromString(fmt.Sprintf(
					"items %s-%s and %s-%s overlap within the same request",
					clocktime.Format(a.StartMinutes), clocktime.Format(a.EndMinutes),
					clocktime.Format(b.StartMinutes), clocktime.Format(b.EndMinutes),
				)) // nolint:wrapcheck
			}
		}
	}

	return nil
}

// validateHolds checks every item against the active holds visible inside the
// transaction. Time ranges collide with other bookings' room rentals and with
// scheduled catalog sessions; headcounts are admitted against derived usage
// plus a per-request tally.
func (s *serviceImpl) validateHolds(ctx context.Context, tx *sqlx.Tx, items []model.BookingItem, excludeBookingID string) error {
	tally := engine.NewTally()

	for _, item := range items {
		if item.Kind == model.KindRoomRental {
			active, err := s.repo.ActiveItemsByDateTx(ctx, tx, item.BookingDate)
			if err != nil {
				return err
			}

			intervals, err := s.holdIntervals(ctx, active, item.BookingDate)
			if err != nil {
				return err
			}

			if result := engine.CheckOverlap(item.StartMinutes, item.EndMinutes, intervals, excludeBookingID); result.Conflict {
				first := result.Conflicts[0]

				return failure.Conflict(fmt.Sprintf(
					"requested range %s-%s collides with an existing hold %s-%s",
					clocktime.Format(item.StartMinutes), clocktime.Format(item.EndMinutes),
					clocktime.Format(first.Start), clocktime.Format(first.End),
				)) // nolint:wrapcheck
			}
		}

		if item.ResourceID == nil {
			continue
		}

		resourceID := *item.ResourceID

		resource, err := s.resources.Get(ctx, shared.FilterByID(resourceID, catalogModel.FieldID, catalogModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to get resource: %w", err)
		}

		active, err := s.repo.ActiveItemsByResourceTx(ctx, tx, resourceID)
		if err != nil {
			return err
		}

		used := engine.UsedCapacity(toUsages(active), resourceID, excludeBookingID) + tally.Admitted(resourceID)
		if !engine.CanAdmit(resource.Capacity, used, item.Headcount) {
			return failure.Conflict(fmt.Sprintf(
				"resource %s has %d of %d places taken, cannot admit %d more",
				resource.Name, used, resource.Capacity, item.Headcount,
			)) // nolint:wrapcheck
		}

		tally.Admit(resourceID, item.Headcount)
	}

	return nil
}

// revalidateHolds is the confirm-time guard: the same checks as creation, but
// ignoring the booking's own pending reservation. Two pending bookings may
// hold the same slot; only one can pass this gate.
func (s *serviceImpl) revalidateHolds(ctx context.Context, tx *sqlx.Tx, items []model.BookingItem, bookingID string) error {
	return s.validateHolds(ctx, tx, items, bookingID)
}

// holdIntervals converts active room-rental items into conflict intervals and
// appends the implicit blocks of catalog sessions scheduled on that weekday.
func (s *serviceImpl) holdIntervals(ctx context.Context, active []model.ActiveItem, date time.Time) ([]engine.Interval, error) {
	intervals := make([]engine.Interval, 0, len(active))

	for _, item := range active {
		if item.Kind != model.KindRoomRental {
			continue
		}

		intervals = append(intervals, engine.Interval{
			BookingID: item.BookingID,
			Start:     item.StartMinutes,
			End:       item.EndMinutes,
		})
	}

	blocks, err := s.scheduleBlocks(ctx, date)
	if err != nil {
		return nil, err
	}

	return append(intervals, blocks...), nil
}

// scheduleBlocks returns the fixed time ranges of active catalog sessions on
// the date's weekday. They occupy the space even without any enrollment.
func (s *serviceImpl) scheduleBlocks(ctx context.Context, date time.Time) ([]engine.Interval, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    catalogModel.FieldKind,
				Operator: gDto.FilterOperatorEq,
				Value:    catalogModel.KindClassSession,
				Table:    catalogModel.TableName,
			},
			gDto.Filter{
				Field:    catalogModel.FieldWeekday,
				Operator: gDto.FilterOperatorEq,
				Value:    int(date.Weekday()),
				Table:    catalogModel.TableName,
			},
			gDto.Filter{
				Field:    catalogModel.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    catalogModel.TableName,
			},
		},
	}

	sessions, err := s.resources.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get scheduled sessions")

		return nil, fmt.Errorf("failed to get scheduled sessions: %w", err)
	}

	blocks := make([]engine.Interval, 0, len(sessions))
	for _, session := range sessions {
		blocks = append(blocks, engine.Interval{
			Label: session.Name,
			Start: session.StartMinutes,
			End:   session.EndMinutes,
		})
	}

	return blocks, nil
}

func toUsages(active []model.ActiveItem) []engine.Usage {
	usages := make([]engine.Usage, 0, len(active))

	for _, item := range active {
		if item.ResourceID == nil {
			continue
		}

		usages = append(usages, engine.Usage{
			BookingID:  item.BookingID,
			ResourceID: *item.ResourceID,
			Headcount:  item.Headcount,
		})
	}

	return usages
}

// afterChange publishes the lifecycle event and drops stale cache entries.
// Both are best-effort and never fail the request.
func (s *serviceImpl) afterChange(ctx context.Context, event string, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key: booking.ID,
			Value: dto.BookingEvent{
				Event:      event,
				BookingID:  booking.ID,
				Status:     booking.Status,
				TotalPrice: booking.TotalPrice,
				OccurredAt: timezone.Now(),
			},
		}

		if err := s.producer.SendMessages(c, s.cfg.Kafka.Topics.BookingEvents, message); err != nil {
			log.Error().Err(err).Str("event", event).Msg("failed to publish booking event")
		}
	}()

	s.invalidate(ctx, booking.ID)
}

func (s *serviceImpl) invalidate(ctx context.Context, bookingID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, bookingID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
