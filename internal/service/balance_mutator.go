package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/fsdevblog/points-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/points-ledger/pkg/uow"
	"github.com/sirupsen/logrus"
)

// BalanceMutator единственная точка изменения балансов юзеров и пулов мероприятий. Методы вызываются только
// внутри uow транзакции, в которой создаются соответствующие записи журнала.
type BalanceMutator struct {
	l *logrus.Entry
}

func NewBalanceMutator(l *logrus.Logger) *BalanceMutator {
	return &BalanceMutator{
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "balance_mutator",
		}),
	}
}

// ApplyDelta прибавляет delta к балансу юзера и возвращает новый баланс.
func (m *BalanceMutator) ApplyDelta(ctx context.Context, tx uow.TX, userID int64, delta int64) (int64, error) {
	repo, repoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if repoErr != nil {
		return 0, repoErr //nolint:wrapcheck
	}
	balance, err := repo.ApplyDelta(ctx, userID, delta)
	if err != nil {
		return 0, fmt.Errorf("apply delta: %w", err)
	}
	m.l.WithFields(logrus.Fields{
		"userID":  userID,
		"delta":   delta,
		"balance": balance,
	}).Debug("balance changed")
	return balance, nil
}

// ApplyPoolDelta переносит delta баллов из остатка мероприятия в начисленные (или обратно при delta < 0).
func (m *BalanceMutator) ApplyPoolDelta(
	ctx context.Context,
	tx uow.TX,
	eventID int64,
	delta int64,
) (*domain.Event, error) {
	repo, repoErr := uow.GetAs[EventRepository](tx, uow.RepositoryName(repoargs.EventRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}
	event, err := repo.ApplyPoolDelta(ctx, eventID, delta)
	if err != nil {
		return nil, fmt.Errorf("apply pool delta: %w", err)
	}
	m.l.WithFields(logrus.Fields{
		"eventID":       eventID,
		"delta":         delta,
		"pointsRemain":  event.PointsRemain,
		"pointsAwarded": event.PointsAwarded,
	}).Debug("event pool changed")
	return event, nil
}
