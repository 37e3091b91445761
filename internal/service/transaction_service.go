package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/fsdevblog/points-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/points-ledger/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// TransactionService создает транзакции покупки, корректировки, перевода и списания. Каждая операция
// выполняется в одной uow транзакции: запись журнала и изменение баланса либо сохраняются вместе, либо
// не сохраняется ничего.
type TransactionService struct {
	uow       uow.UOW
	evaluator PromotionEvaluator
	mutator   *BalanceMutator
	l         *logrus.Entry
}

func NewTransactionService(u uow.UOW, mutator *BalanceMutator, l *logrus.Logger) *TransactionService {
	return &TransactionService{
		uow:       u,
		evaluator: PromotionEvaluator{},
		mutator:   mutator,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "transaction",
		}),
	}
}

const spentScale = 2

// maxSpent верхняя граница (не включительно) суммы покупки, столбец spent имеет тип NUMERIC(12, 2).
var maxSpent = decimal.New(1, 10) //nolint:mnd

// validateSpent проверяет, что сумма покупки хранится в БД без округления.
func validateSpent(spent decimal.Decimal) error {
	if !spent.Equal(spent.Round(spentScale)) {
		return domain.NewValidationError("spent", "spent amount must have at most 2 decimal places")
	}
	if spent.GreaterThanOrEqual(maxSpent) {
		return domain.NewValidationError("spent", "spent amount is too large")
	}
	return nil
}

type PurchaseArgs struct {
	Utorid       string
	Spent        decimal.Decimal
	PromotionIDs []int64
	Remark       string
}

type PurchaseResult struct {
	Transaction *domain.Transaction
	// Earned начисленные сейчас баллы: 0 для подозрительной покупки.
	Earned int64
}

// CreatePurchase создает покупку от имени кассира actor.
//
// Алгоритм работы:
//  1. Проверяет сумму покупки.
//  2. Находит покупателя и перечитывает кассира, чтобы взять актуальный флаг suspicious.
//  3. Считает баллы через PromotionEvaluator и сохраняет транзакцию с полным рассчитанным значением.
//  4. Сохраняет связи с промоакциями.
//  5. Начисляет баллы покупателю, только если транзакция не подозрительная. Иначе баллы будут начислены
//     при снятии флага (см. ReversalService.SetSuspicious).
func (s *TransactionService) CreatePurchase(
	ctx context.Context,
	actor domain.Actor,
	args PurchaseArgs,
) (*PurchaseResult, error) {
	if !args.Spent.IsPositive() {
		return nil, domain.NewValidationError("spent", "spent amount must be positive")
	}
	if err := validateSpent(args.Spent); err != nil {
		return nil, err
	}

	var result PurchaseResult
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := reposFromTX(tx)
		if reposErr != nil {
			return reposErr
		}

		customer, userErr := repos.users.FindByUtorid(c, args.Utorid)
		if userErr != nil {
			return fmt.Errorf("customer: %w", userErr)
		}
		cashier, cashierErr := repos.users.FindByID(c, actor.ID)
		if cashierErr != nil {
			return fmt.Errorf("cashier: %w", cashierErr)
		}

		bonus, evalErr := s.evaluator.Evaluate(c, repos.promotions, repos.transactions, customer.ID, args.Spent,
			args.PromotionIDs)
		if evalErr != nil {
			return evalErr
		}
		points := bonus.TotalPoints(args.Spent)

		t, createErr := repos.transactions.Create(c, repoargs.TransactionCreate{
			Type:       domain.TransactionPurchase,
			UserID:     customer.ID,
			Points:     points,
			Spent:      decimal.NewNullDecimal(args.Spent),
			Remark:     args.Remark,
			Suspicious: cashier.Suspicious,
			CreatedBy:  cashier.ID,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		if attachErr := repos.transactions.AttachPromotions(c, t.ID, bonus.PromotionIDs); attachErr != nil {
			return attachErr //nolint:wrapcheck
		}

		if !t.Suspicious {
			if _, err := s.mutator.ApplyDelta(c, tx, customer.ID, points); err != nil {
				return err
			}
			result.Earned = points
		}

		t.Utorid = customer.Utorid
		t.CreatedByUtorid = cashier.Utorid
		t.PromotionIDs = bonus.PromotionIDs
		result.Transaction = t
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating purchase: %w", txErr)
	}

	s.logCreated(result.Transaction)
	return &result, nil
}

type AdjustmentArgs struct {
	Utorid       string
	Amount       int64
	RelatedID    int64
	PromotionIDs []int64
	Remark       string
}

// CreateAdjustment создает корректировку баланса. Amount может быть отрицательным, нижняя граница баланса
// не проверяется. Корректировка применяется к балансу сразу, независимо от флагов suspicious.
func (s *TransactionService) CreateAdjustment(
	ctx context.Context,
	actor domain.Actor,
	args AdjustmentArgs,
) (*domain.Transaction, error) {
	if args.Amount == 0 {
		return nil, domain.NewValidationError("amount", "amount is required")
	}
	if args.RelatedID <= 0 {
		return nil, domain.NewValidationError("relatedId", "related transaction id is required")
	}
	if err := validatePromotionIDs(args.PromotionIDs); err != nil {
		return nil, err
	}

	var result *domain.Transaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := reposFromTX(tx)
		if reposErr != nil {
			return reposErr
		}

		user, userErr := repos.users.FindByUtorid(c, args.Utorid)
		if userErr != nil {
			return fmt.Errorf("user: %w", userErr)
		}
		if _, relatedErr := repos.transactions.FindByID(c, args.RelatedID); relatedErr != nil {
			return fmt.Errorf("related transaction: %w", relatedErr)
		}
		for _, id := range args.PromotionIDs {
			if _, promoErr := repos.promotions.FindByID(c, id); promoErr != nil {
				return fmt.Errorf("promotion %d: %w", id, promoErr)
			}
		}

		relatedID := args.RelatedID
		t, createErr := repos.transactions.Create(c, repoargs.TransactionCreate{
			Type:      domain.TransactionAdjustment,
			UserID:    user.ID,
			Points:    args.Amount,
			RelatedID: &relatedID,
			Remark:    args.Remark,
			CreatedBy: actor.ID,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}
		if attachErr := repos.transactions.AttachPromotions(c, t.ID, args.PromotionIDs); attachErr != nil {
			return attachErr //nolint:wrapcheck
		}
		if _, err := s.mutator.ApplyDelta(c, tx, user.ID, args.Amount); err != nil {
			return err
		}

		t.Utorid = user.Utorid
		t.CreatedByUtorid = actor.Utorid
		t.PromotionIDs = promotionIDsOrEmpty(args.PromotionIDs)
		result = t
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating adjustment: %w", txErr)
	}

	s.logCreated(result)
	return result, nil
}

type TransferArgs struct {
	RecipientID int64
	Amount      int64
	Remark      string
}

type TransferResult struct {
	Sent     *domain.Transaction
	Received *domain.Transaction
}

// CreateTransfer переводит Amount баллов от actor юзеру RecipientID. Создает две записи: списание у отправителя
// (relatedId - получатель) и начисление получателю (relatedId - отправитель).
//
// Баланс отправителя проверяется до записи и повторно после списания: если параллельная операция успела
// потратить баллы и баланс ушел в минус, вся операция откатывается с domain.ErrNotEnoughBalance.
func (s *TransactionService) CreateTransfer(
	ctx context.Context,
	actor domain.Actor,
	args TransferArgs,
) (*TransferResult, error) {
	if args.Amount <= 0 {
		return nil, domain.NewValidationError("amount", "amount must be a positive integer")
	}

	var result TransferResult
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := reposFromTX(tx)
		if reposErr != nil {
			return reposErr
		}

		sender, senderErr := repos.users.FindByID(c, actor.ID)
		if senderErr != nil {
			return fmt.Errorf("sender: %w", senderErr)
		}
		if sender.Points < args.Amount {
			return domain.ErrNotEnoughBalance
		}
		recipient, recipientErr := repos.users.FindByID(c, args.RecipientID)
		if recipientErr != nil {
			return fmt.Errorf("recipient: %w", recipientErr)
		}

		recipientID, senderID := recipient.ID, sender.ID
		sent, sentErr := repos.transactions.Create(c, repoargs.TransactionCreate{
			Type:      domain.TransactionTransfer,
			UserID:    sender.ID,
			Points:    -args.Amount,
			RelatedID: &recipientID,
			Remark:    args.Remark,
			CreatedBy: sender.ID,
		})
		if sentErr != nil {
			return sentErr //nolint:wrapcheck
		}
		received, receivedErr := repos.transactions.Create(c, repoargs.TransactionCreate{
			Type:      domain.TransactionTransfer,
			UserID:    recipient.ID,
			Points:    args.Amount,
			RelatedID: &senderID,
			Remark:    args.Remark,
			CreatedBy: sender.ID,
		})
		if receivedErr != nil {
			return receivedErr //nolint:wrapcheck
		}

		senderBalance, debitErr := s.mutator.ApplyDelta(c, tx, sender.ID, -args.Amount)
		if debitErr != nil {
			return debitErr
		}
		if senderBalance < 0 {
			return domain.ErrNotEnoughBalance
		}
		if _, creditErr := s.mutator.ApplyDelta(c, tx, recipient.ID, args.Amount); creditErr != nil {
			return creditErr
		}

		sent.Utorid, sent.CreatedByUtorid = sender.Utorid, sender.Utorid
		received.Utorid, received.CreatedByUtorid = recipient.Utorid, sender.Utorid
		sent.PromotionIDs, received.PromotionIDs = []int64{}, []int64{}
		result.Sent, result.Received = sent, received
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating transfer: %w", txErr)
	}

	s.logCreated(result.Sent)
	s.logCreated(result.Received)
	return &result, nil
}

type RedemptionArgs struct {
	Amount int64
	Remark string
}

// CreateRedemption создает запрос на списание баллов. Баланс проверяется на момент создания, но не
// списывается: списание происходит при обработке запроса (ReversalService.ProcessRedemption). Сумма
// необработанных запросов не ограничивается.
func (s *TransactionService) CreateRedemption(
	ctx context.Context,
	actor domain.Actor,
	args RedemptionArgs,
) (*domain.Transaction, error) {
	if args.Amount <= 0 {
		return nil, domain.NewValidationError("amount", "amount must be a positive integer")
	}

	var result *domain.Transaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := reposFromTX(tx)
		if reposErr != nil {
			return reposErr
		}

		user, userErr := repos.users.FindByID(c, actor.ID)
		if userErr != nil {
			return fmt.Errorf("user: %w", userErr)
		}
		if !user.Verified {
			return domain.ErrUserNotVerified
		}
		if user.Points < args.Amount {
			return domain.ErrNotEnoughBalance
		}

		t, createErr := repos.transactions.Create(c, repoargs.TransactionCreate{
			Type:      domain.TransactionRedemption,
			UserID:    user.ID,
			Points:    args.Amount,
			Remark:    args.Remark,
			CreatedBy: user.ID,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}
		t.Utorid, t.CreatedByUtorid = user.Utorid, user.Utorid
		t.PromotionIDs = []int64{}
		result = t
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating redemption: %w", txErr)
	}

	s.logCreated(result)
	return result, nil
}

func (s *TransactionService) logCreated(t *domain.Transaction) {
	s.l.WithFields(logrus.Fields{
		"transactionID": t.ID,
		"type":          t.Type,
		"userID":        t.UserID,
		"points":        t.Points,
		"suspicious":    t.Suspicious,
		"createdBy":     t.CreatedBy,
	}).Info("transaction created")
}

// validatePromotionIDs запрещает повтор одной промоакции в корректировке.
func validatePromotionIDs(ids []int64) error {
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return domain.NewValidationError("promotionIds", fmt.Sprintf("duplicate promotion id %d", id))
		}
		seen[id] = struct{}{}
	}
	return nil
}

func promotionIDsOrEmpty(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
