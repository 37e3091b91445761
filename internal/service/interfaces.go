package service

import (
	"context"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/fsdevblog/points-ledger/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUtorid(ctx context.Context, utorid string) (*domain.User, error)
	ApplyDelta(ctx context.Context, userID int64, delta int64) (int64, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.TransactionCreate) (*domain.Transaction, error)
	BatchCreate(ctx context.Context, args []repoargs.TransactionCreate, fn repoargs.TransactionBatchQueryRow)
	AttachPromotions(ctx context.Context, transactionID int64, promotionIDs []int64) error
	PromotionUsedByUser(ctx context.Context, promotionID, userID int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*domain.Transaction, error)
	SetSuspicious(ctx context.Context, id int64, suspicious bool) (bool, error)
	MarkProcessed(ctx context.Context, id int64, processedBy int64) (bool, error)
	List(ctx context.Context, filter repoargs.TransactionFilter) ([]domain.Transaction, error)
	Count(ctx context.Context, filter repoargs.TransactionFilter) (int64, error)
}

type PromotionRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Promotion, error)
}

type EventRepository interface {
	FindWithGuests(ctx context.Context, id int64) (*domain.Event, error)
	ApplyPoolDelta(ctx context.Context, eventID int64, delta int64) (*domain.Event, error)
}
