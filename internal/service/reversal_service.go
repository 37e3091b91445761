package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/fsdevblog/points-ledger/pkg/uow"
	"github.com/sirupsen/logrus"
)

// ReversalService меняет состояние уже созданных транзакций: флаг suspicious и обработку списаний.
type ReversalService struct {
	uow     uow.UOW
	mutator *BalanceMutator
	l       *logrus.Entry
}

func NewReversalService(u uow.UOW, mutator *BalanceMutator, l *logrus.Logger) *ReversalService {
	return &ReversalService{
		uow:     u,
		mutator: mutator,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "reversal",
		}),
	}
}

type SuspiciousResult struct {
	Transaction *domain.Transaction
	// Changed false, если флаг уже имел запрошенное значение.
	Changed bool
}

// SetSuspicious выставляет флаг suspicious транзакции.
//
// Пометка транзакции подозрительной списывает ее баллы с владельца, снятие пометки - начисляет обратно. Для
// покупки, созданной подозрительной, снятие пометки впервые начисляет ее баллы. Повторная установка того же
// значения ничего не меняет.
func (s *ReversalService) SetSuspicious(
	ctx context.Context,
	actor domain.Actor,
	transactionID int64,
	suspicious bool,
) (*SuspiciousResult, error) {
	var result SuspiciousResult
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := reposFromTX(tx)
		if reposErr != nil {
			return reposErr
		}

		t, findErr := repos.transactions.FindByID(c, transactionID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		result.Transaction = t
		if t.Suspicious == suspicious {
			return nil
		}

		changed, setErr := repos.transactions.SetSuspicious(c, transactionID, suspicious)
		if setErr != nil {
			return setErr //nolint:wrapcheck
		}
		if !changed {
			// флаг успели поменять параллельно
			return nil
		}

		delta := t.Points
		if suspicious {
			delta = -t.Points
		}
		if _, err := s.mutator.ApplyDelta(c, tx, t.UserID, delta); err != nil {
			return err
		}
		t.Suspicious = suspicious
		result.Changed = true
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("setting suspicious on transaction %d: %w", transactionID, txErr)
	}

	if result.Changed {
		s.l.WithFields(logrus.Fields{
			"transactionID": transactionID,
			"suspicious":    suspicious,
			"actorID":       actor.ID,
		}).Info("transaction suspicious flag changed")
	}
	return &result, nil
}

// ProcessRedemption обрабатывает запрос на списание: фиксирует обработавшего кассира и списывает баллы с
// владельца. Обработка необратима. Баланс после списания может стать отрицательным: он проверялся только при
// создании запроса.
func (s *ReversalService) ProcessRedemption(
	ctx context.Context,
	actor domain.Actor,
	transactionID int64,
	processed bool,
) (*domain.Transaction, error) {
	if !processed {
		return nil, domain.NewValidationError("processed", "processed can only be true")
	}

	var result *domain.Transaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := reposFromTX(tx)
		if reposErr != nil {
			return reposErr
		}

		t, findErr := repos.transactions.FindByID(c, transactionID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if t.Type != domain.TransactionRedemption {
			return domain.ErrNotRedemption
		}
		if t.IsProcessed() {
			return domain.ErrAlreadyProcessed
		}

		marked, markErr := repos.transactions.MarkProcessed(c, transactionID, actor.ID)
		if markErr != nil {
			return markErr //nolint:wrapcheck
		}
		if !marked {
			return domain.ErrAlreadyProcessed
		}
		if _, err := s.mutator.ApplyDelta(c, tx, t.UserID, -t.Points); err != nil {
			return err
		}

		processedBy, processedByUtorid := actor.ID, actor.Utorid
		t.ProcessedBy = &processedBy
		t.ProcessedByUtorid = &processedByUtorid
		result = t
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("processing redemption %d: %w", transactionID, txErr)
	}

	s.l.WithFields(logrus.Fields{
		"transactionID": transactionID,
		"points":        result.Points,
		"processedBy":   actor.ID,
	}).Info("redemption processed")
	return result, nil
}
