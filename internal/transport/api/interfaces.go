package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/fsdevblog/points-ledger/internal/service"
)

type TransactionServicer interface {
	CreatePurchase(ctx context.Context, actor domain.Actor, args service.PurchaseArgs) (*service.PurchaseResult, error)
	CreateAdjustment(ctx context.Context, actor domain.Actor, args service.AdjustmentArgs) (*domain.Transaction, error)
	CreateTransfer(ctx context.Context, actor domain.Actor, args service.TransferArgs) (*service.TransferResult, error)
	CreateRedemption(ctx context.Context, actor domain.Actor, args service.RedemptionArgs) (*domain.Transaction, error)
}

type EventAwardServicer interface {
	AwardEventPoints(
		ctx context.Context,
		actor domain.Actor,
		eventID int64,
		args service.EventAwardArgs,
	) ([]*domain.Transaction, error)
}

type ReversalServicer interface {
	SetSuspicious(
		ctx context.Context,
		actor domain.Actor,
		transactionID int64,
		suspicious bool,
	) (*service.SuspiciousResult, error)
	ProcessRedemption(
		ctx context.Context,
		actor domain.Actor,
		transactionID int64,
		processed bool,
	) (*domain.Transaction, error)
}

type QueryServicer interface {
	ListAll(ctx context.Context, actor domain.Actor, query service.TransactionQuery) (*service.TransactionPage, error)
	ListMine(ctx context.Context, actor domain.Actor, query service.TransactionQuery) (*service.TransactionPage, error)
	GetByID(ctx context.Context, actor domain.Actor, id int64) (*domain.Transaction, error)
}
