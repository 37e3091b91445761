package api

import (
	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/fsdevblog/points-ledger/internal/service"
)

// TransactionsQueryParams query параметры выборки транзакций.
type TransactionsQueryParams struct {
	Name        *string `form:"name"`
	CreatedBy   *string `form:"createdBy"`
	Suspicious  *bool   `form:"suspicious"`
	PromotionID *int64  `form:"promotionId"`
	Type        *string `form:"type"`
	RelatedID   *int64  `form:"relatedId"`
	Amount      *int64  `form:"amount"`
	Operator    *string `form:"operator" binding:"omitempty,operator"`
	Page        *int    `form:"page"`
	Limit       *int    `form:"limit"`
}

func (p *TransactionsQueryParams) toServiceQuery() service.TransactionQuery {
	q := service.TransactionQuery{
		Name:        p.Name,
		CreatedBy:   p.CreatedBy,
		Suspicious:  p.Suspicious,
		PromotionID: p.PromotionID,
		RelatedID:   p.RelatedID,
		Amount:      p.Amount,
		Page:        p.Page,
		Limit:       p.Limit,
	}
	if p.Type != nil {
		t := domain.TransactionType(*p.Type)
		q.Type = &t
	}
	if p.Operator != nil {
		op := domain.CompareOperator(*p.Operator)
		q.Operator = &op
	}
	return q
}

type TransactionsListResponse struct {
	Count   int64                     `json:"count"`
	Results []service.TransactionView `json:"results"`
}
