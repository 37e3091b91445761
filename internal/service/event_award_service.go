package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/fsdevblog/points-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/points-ledger/pkg/uow"
	"github.com/sirupsen/logrus"
)

// EventAwardService начисляет гостям мероприятия баллы из его пула.
type EventAwardService struct {
	uow     uow.UOW
	mutator *BalanceMutator
	l       *logrus.Entry
}

func NewEventAwardService(u uow.UOW, mutator *BalanceMutator, l *logrus.Logger) *EventAwardService {
	return &EventAwardService{
		uow:     u,
		mutator: mutator,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "event_award",
		}),
	}
}

type EventAwardArgs struct {
	// Utorid получатель. nil - начисление всем гостям мероприятия.
	Utorid *string
	Amount int64
	Remark string
}

// AwardEventPoints начисляет Amount баллов одному гостю (args.Utorid) или всем гостям мероприятия.
//
// Начислять может менеджер и выше либо организатор этого мероприятия. Пул мероприятия уменьшается один раз на
// суммарное начисление; если после обновления остаток стал отрицательным (параллельное начисление), операция
// откатывается с domain.ErrEventPointsExhausted. Начисление всем гостям мероприятия без гостей ничего не создает
// и возвращает пустой список.
func (s *EventAwardService) AwardEventPoints(
	ctx context.Context,
	actor domain.Actor,
	eventID int64,
	args EventAwardArgs,
) ([]*domain.Transaction, error) {
	if args.Amount <= 0 {
		return nil, domain.NewValidationError("amount", "amount must be a positive integer")
	}
	if !actor.Role.AtLeast(domain.RoleManager) && !actor.IsOrganizerOf(eventID) {
		return nil, domain.ErrForbidden
	}

	var result []*domain.Transaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := reposFromTX(tx)
		if reposErr != nil {
			return reposErr
		}

		event, eventErr := repos.events.FindWithGuests(c, eventID)
		if eventErr != nil {
			return fmt.Errorf("event: %w", eventErr)
		}

		var err error
		if args.Utorid != nil {
			result, err = s.awardOne(c, tx, repos, actor, event, *args.Utorid, args)
		} else {
			result, err = s.awardAll(c, tx, repos, actor, event, args)
		}
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("awarding event %d points: %w", eventID, txErr)
	}

	s.l.WithFields(logrus.Fields{
		"eventID":    eventID,
		"amount":     args.Amount,
		"recipients": len(result),
		"createdBy":  actor.ID,
	}).Info("event points awarded")
	return result, nil
}

func (s *EventAwardService) awardOne(
	ctx context.Context,
	tx uow.TX,
	repos *ledgerRepos,
	actor domain.Actor,
	event *domain.Event,
	utorid string,
	args EventAwardArgs,
) ([]*domain.Transaction, error) {
	if event.PointsRemain < args.Amount {
		return nil, domain.ErrEventPointsExhausted
	}
	user, userErr := repos.users.FindByUtorid(ctx, utorid)
	if userErr != nil {
		return nil, fmt.Errorf("recipient: %w", userErr)
	}
	if !event.IsGuest(user.ID) {
		return nil, domain.ErrNotEventGuest
	}

	eventID := event.ID
	t, createErr := repos.transactions.Create(ctx, repoargs.TransactionCreate{
		Type:      domain.TransactionEvent,
		UserID:    user.ID,
		Points:    args.Amount,
		RelatedID: &eventID,
		Remark:    args.Remark,
		CreatedBy: actor.ID,
	})
	if createErr != nil {
		return nil, createErr //nolint:wrapcheck
	}
	if _, err := s.mutator.ApplyDelta(ctx, tx, user.ID, args.Amount); err != nil {
		return nil, err
	}
	if err := s.takeFromPool(ctx, tx, event.ID, args.Amount); err != nil {
		return nil, err
	}

	t.Utorid = user.Utorid
	t.CreatedByUtorid = actor.Utorid
	t.PromotionIDs = []int64{}
	return []*domain.Transaction{t}, nil
}

func (s *EventAwardService) awardAll(
	ctx context.Context,
	tx uow.TX,
	repos *ledgerRepos,
	actor domain.Actor,
	event *domain.Event,
	args EventAwardArgs,
) ([]*domain.Transaction, error) {
	if len(event.Guests) == 0 {
		return []*domain.Transaction{}, nil
	}
	guestCount := int64(len(event.Guests))
	// сравнение делением: amount*guestCount может переполнить int64
	if args.Amount > event.PointsRemain/guestCount {
		return nil, domain.ErrEventPointsExhausted
	}
	total := args.Amount * guestCount

	eventID := event.ID
	createArgs := make([]repoargs.TransactionCreate, len(event.Guests))
	for i, guest := range event.Guests {
		createArgs[i] = repoargs.TransactionCreate{
			Type:      domain.TransactionEvent,
			UserID:    guest.ID,
			Points:    args.Amount,
			RelatedID: &eventID,
			Remark:    args.Remark,
			CreatedBy: actor.ID,
		}
	}

	result := make([]*domain.Transaction, len(event.Guests))
	var batchErr error
	repos.transactions.BatchCreate(ctx, createArgs, func(i int, t *domain.Transaction, err error) {
		if err != nil {
			if batchErr == nil {
				batchErr = err
			}
			return
		}
		t.Utorid = event.Guests[i].Utorid
		t.CreatedByUtorid = actor.Utorid
		t.PromotionIDs = []int64{}
		result[i] = t
	})
	if batchErr != nil {
		return nil, batchErr
	}

	for _, guest := range event.Guests {
		if _, err := s.mutator.ApplyDelta(ctx, tx, guest.ID, args.Amount); err != nil {
			return nil, err
		}
	}
	if err := s.takeFromPool(ctx, tx, event.ID, total); err != nil {
		return nil, err
	}
	return result, nil
}

// takeFromPool списывает amount из пула мероприятия, отрицательный остаток после списания - ошибка.
func (s *EventAwardService) takeFromPool(ctx context.Context, tx uow.TX, eventID, amount int64) error {
	event, err := s.mutator.ApplyPoolDelta(ctx, tx, eventID, amount)
	if err != nil {
		return err
	}
	if event.PointsRemain < 0 {
		return domain.ErrEventPointsExhausted
	}
	return nil
}
