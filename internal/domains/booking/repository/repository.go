package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"reservo/infras/otel"
	"reservo/infras/postgres"
	"reservo/internal/domains/booking/model"
	"reservo/shared/constant"
	gDto "reservo/shared/dto"
	"reservo/shared/logger"
	gRepo "reservo/shared/repository"

	"github.com/jmoiron/sqlx"
)

const activeItemsQuery = `SELECT i.*, b.status AS booking_status
FROM booking_items i
JOIN bookings b ON b.id = i.booking_id
WHERE b.status IN ('pending', 'confirmed')`

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	InsertItemsTx(ctx context.Context, tx *sqlx.Tx, items []model.BookingItem) error
	GetItems(ctx context.Context, bookingID string) ([]model.BookingItem, error)
	ActiveItemsByDate(ctx context.Context, date time.Time) ([]model.ActiveItem, error)
	ActiveItemsByDateTx(ctx context.Context, tx *sqlx.Tx, date time.Time) ([]model.ActiveItem, error)
	ActiveItemsByResource(ctx context.Context, resourceID string) ([]model.ActiveItem, error)
	ActiveItemsByResourceTx(ctx context.Context, tx *sqlx.Tx, resourceID string) ([]model.ActiveItem, error)
	Atomic(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	items gRepo.Repository[model.BookingItem]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		items:      gRepo.NewRepository[model.BookingItem](model.ItemEntityName, model.ItemTableName, model.ItemFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) InsertItemsTx(ctx context.Context, tx *sqlx.Tx, items []model.BookingItem) error {
	return repo.items.InsertBulkTx(ctx, tx, items) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetItems(ctx context.Context, bookingID string) ([]model.BookingItem, error) {
	params := gDto.QueryParams{
		SortBy:  model.ItemFieldBookingDate,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.ItemFieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.ItemTableName,
			},
		},
	}

	return repo.items.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) ActiveItemsByDate(ctx context.Context, date time.Time) ([]model.ActiveItem, error) {
	return repo.activeItems(ctx, repo.db.Read, "ActiveItemsByDate", "i.booking_date = $1", date)
}

func (repo *repositoryImpl) ActiveItemsByDateTx(ctx context.Context, tx *sqlx.Tx, date time.Time) ([]model.ActiveItem, error) {
	return repo.activeItems(ctx, tx, "ActiveItemsByDateTx", "i.booking_date = $1", date)
}

func (repo *repositoryImpl) ActiveItemsByResource(ctx context.Context, resourceID string) ([]model.ActiveItem, error) {
	return repo.activeItems(ctx, repo.db.Read, "ActiveItemsByResource", "i.resource_id = $1", resourceID)
}

func (repo *repositoryImpl) ActiveItemsByResourceTx(ctx context.Context, tx *sqlx.Tx, resourceID string) ([]model.ActiveItem, error) {
	return repo.activeItems(ctx, tx, "ActiveItemsByResourceTx", "i.resource_id = $1", resourceID)
}

func (repo *repositoryImpl) activeItems(ctx context.Context, queryer sqlx.QueryerContext, scopeName, condition string, arg any) ([]model.ActiveItem, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, model.ItemEntityName, scopeName))
	defer scope.End()

	query := fmt.Sprintf("%s AND %s", activeItemsQuery, condition)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var items []model.ActiveItem

	err := sqlx.SelectContext(ctx, queryer, &items, query, arg)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get active booking items: %w", err)
	}

	return items, nil
}

// Atomic wraps the conflict check and the insert or update into one
// serializable transaction, so two racing requests cannot both pass
// validation against the same slot.
func (repo *repositoryImpl) Atomic(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return repo.db.Atomic(ctx, sql.LevelSerializable, fn) //nolint:wrapcheck
}
