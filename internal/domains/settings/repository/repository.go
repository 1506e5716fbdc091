package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"

	"reservo/infras/otel"
	"reservo/infras/postgres"
	"reservo/internal/domains/settings/model"
	gDto "reservo/shared/dto"
	gRepo "reservo/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Settings interface {
	Insert(ctx context.Context, model model.Settings) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Settings, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	GetTiers(ctx context.Context) ([]model.PricingTier, error)
	ReplaceTiers(ctx context.Context, tiers []model.PricingTier) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Settings]
	tiers gRepo.Repository[model.PricingTier]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Settings {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Settings](model.EntityName, model.TableName, model.FieldID, db, otel),
		tiers:      gRepo.NewRepository[model.PricingTier](model.TierEntityName, model.TierTableName, model.TierFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetTiers(ctx context.Context) ([]model.PricingTier, error) {
	params := gDto.QueryParams{
		SortBy:  model.TierFieldMaxHeadcount,
		SortDir: gDto.SortDirAsc,
	}

	return repo.tiers.GetAll(ctx, params, gDto.FilterGroup{}) //nolint:wrapcheck
}

// ReplaceTiers swaps the full bracket set in one transaction so pricing never
// observes a partially written ladder.
func (repo *repositoryImpl) ReplaceTiers(ctx context.Context, tiers []model.PricingTier) error {
	return repo.db.Atomic(ctx, sql.LevelDefault, func(tx *sqlx.Tx) error {
		if err := repo.tiers.DeleteAllTx(ctx, tx); err != nil {
			return err
		}

		if len(tiers) == 0 {
			return nil
		}

		return repo.tiers.InsertBulkTx(ctx, tx, tiers)
	})
}
