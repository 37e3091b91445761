package repoargs

import (
	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

type TransactionCreate struct {
	Type       domain.TransactionType
	UserID     int64
	Points     int64
	Spent      decimal.NullDecimal
	RelatedID  *int64
	Remark     string
	Suspicious bool
	CreatedBy  int64
}

type TransactionBatchQueryRow func(i int, t *domain.Transaction, err error)

// TransactionFilter условия выборки транзакций. Пустые (nil) поля не участвуют в фильтрации.
type TransactionFilter struct {
	UserID      *int64
	Name        *string
	CreatedBy   *string
	Suspicious  *bool
	PromotionID *int64
	Type        *domain.TransactionType
	RelatedID   *int64
	Amount      *int64
	Operator    domain.CompareOperator
	Limit       uint
	Offset      uint
}
