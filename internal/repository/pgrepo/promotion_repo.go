package pgrepo

import (
	"context"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/fsdevblog/points-ledger/pkg/uow"
)

type PromotionRepository struct {
	db uow.DBTX
}

func NewPromotionRepository(db uow.DBTX) *PromotionRepository {
	return &PromotionRepository{db: db}
}

func (p *PromotionRepository) FindByID(ctx context.Context, id int64) (*domain.Promotion, error) {
	var promo domain.Promotion
	var promoType, minSpending, rate string

	err := p.db.QueryRow(ctx, `
		SELECT id, name, type, min_spending::text, rate::text, points, start_time, end_time
		FROM promotions
		WHERE id = $1`, id,
	).Scan(
		&promo.ID,
		&promo.Name,
		&promoType,
		&minSpending,
		&rate,
		&promo.Points,
		&promo.StartTime,
		&promo.EndTime,
	)
	if err != nil {
		return nil, convertErr(err, "finding promotion by id %d", id)
	}

	promo.Type = domain.PromotionType(promoType)
	if promo.MinSpending, err = parseDecimal(minSpending); err != nil {
		return nil, convertErr(err, "promotion %d min spending", id)
	}
	if promo.Rate, err = parseDecimal(rate); err != nil {
		return nil, convertErr(err, "promotion %d rate", id)
	}
	return &promo, nil
}
