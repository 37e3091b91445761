package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// basePointsPerUnit базовое начисление: 4 балла за каждую потраченную денежную единицу.
const basePointsPerUnit = 4

var (
	half              = decimal.NewFromFloat(0.5)
	basePointsRate    = decimal.NewFromInt(basePointsPerUnit)
	promotionRateUnit = decimal.NewFromInt(100) //nolint:mnd
)

// PromotionBonus результат проверки промоакций покупки.
type PromotionBonus struct {
	Rates        []decimal.Decimal
	LumpSum      int64
	PromotionIDs []int64
}

// TotalPoints итоговое начисление за покупку на сумму spent с учетом собранных промоакций.
func (b *PromotionBonus) TotalPoints(spent decimal.Decimal) int64 {
	if b == nil {
		return CalculatePoints(spent, nil)
	}
	return CalculatePoints(spent, b.Rates) + b.LumpSum
}

// CalculatePoints считает round(S*4) + Σ round(S*rate*100).
//
// ВНИМАНИЕ: ставка промоакции масштабируется на 100, а базовая ставка - нет. Не менять, от формулы зависят уже
// начисленные баллы.
func CalculatePoints(spent decimal.Decimal, rates []decimal.Decimal) int64 {
	points := roundHalfUp(spent.Mul(basePointsRate))
	for _, rate := range rates {
		points += roundHalfUp(spent.Mul(rate).Mul(promotionRateUnit))
	}
	return points
}

// roundHalfUp округляет к ближайшему целому, половины - в сторону +∞ (floor(x + 0.5)).
func roundHalfUp(d decimal.Decimal) int64 {
	return d.Add(half).Floor().IntPart()
}

// PromotionEvaluator проверяет применимость промоакций к покупке и собирает их вклад в начисление. Ничего не
// пишет в БД: связи транзакции с промоакциями сохраняет вызывающий код.
type PromotionEvaluator struct{}

// Evaluate проверяет промоакции promotionIDs для покупки юзера userID на сумму spent.
//
// Для каждой промоакции по порядку:
//  1. Если промоакции нет - domain.ErrRecordNotFound.
//  2. Промоакция повторяется в запросе или одноразовая промоакция уже использована юзером -
//     domain.ErrPromotionAlreadyUsed.
//  3. spent < MinSpending - domain.ErrMinSpendingNotMet.
//  4. Иначе ставка попадает в список ставок, а положительные Points - в сумму единовременных баллов.
//
// Первая же ошибка прерывает проверку.
func (PromotionEvaluator) Evaluate(
	ctx context.Context,
	promoRepo PromotionRepository,
	txRepo TransactionRepository,
	userID int64,
	spent decimal.Decimal,
	promotionIDs []int64,
) (*PromotionBonus, error) {
	bonus := &PromotionBonus{
		Rates:        make([]decimal.Decimal, 0, len(promotionIDs)),
		PromotionIDs: make([]int64, 0, len(promotionIDs)),
	}

	seen := make(map[int64]struct{}, len(promotionIDs))
	for _, id := range promotionIDs {
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("promotion %d repeated: %w", id, domain.ErrPromotionAlreadyUsed)
		}
		seen[id] = struct{}{}

		promo, err := promoRepo.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("promotion %d: %w", id, err)
		}

		if promo.Type == domain.PromotionOneTime {
			used, usedErr := txRepo.PromotionUsedByUser(ctx, id, userID)
			if usedErr != nil {
				return nil, fmt.Errorf("promotion %d: %w", id, usedErr)
			}
			if used {
				return nil, fmt.Errorf("promotion %d: %w", id, domain.ErrPromotionAlreadyUsed)
			}
		}

		if spent.LessThan(promo.MinSpending) {
			return nil, fmt.Errorf("promotion %d requires %s: %w", id, promo.MinSpending, domain.ErrMinSpendingNotMet)
		}

		if promo.Points > 0 {
			bonus.LumpSum += promo.Points
		}
		bonus.Rates = append(bonus.Rates, promo.Rate)
		bonus.PromotionIDs = append(bonus.PromotionIDs, id)
	}
	return bonus, nil
}
