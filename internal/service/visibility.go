package service

import (
	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// TransactionView транзакция в том виде, в котором ее видит юзер с определенной ролью. Поля-указатели с
// omitempty скрыты от обычных юзеров и кассиров.
type TransactionView struct {
	ID           int64                  `json:"id"`
	Utorid       *string                `json:"utorid,omitempty"`
	Amount       int64                  `json:"amount"`
	Type         domain.TransactionType `json:"type"`
	Spent        decimal.NullDecimal    `json:"spent"`
	RelatedID    *int64                 `json:"relatedId"`
	PromotionIDs []int64                `json:"promotionIds"`
	Suspicious   *bool                  `json:"suspicious,omitempty"`
	Remark       string                 `json:"remark"`
	CreatedBy    string                 `json:"createdBy"`
	ProcessedBy  *string                `json:"processedBy,omitempty"`
}

// Project строит представление транзакции для роли role. Менеджер и выше видят владельца, флаг suspicious и
// обработавшего кассира.
func Project(t domain.Transaction, role domain.Role) TransactionView {
	v := TransactionView{
		ID:           t.ID,
		Amount:       t.Points,
		Type:         t.Type,
		Spent:        t.Spent,
		RelatedID:    t.RelatedID,
		PromotionIDs: t.PromotionIDs,
		Remark:       t.Remark,
		CreatedBy:    t.CreatedByUtorid,
	}
	if v.PromotionIDs == nil {
		v.PromotionIDs = []int64{}
	}
	if role.AtLeast(domain.RoleManager) {
		utorid, suspicious := t.Utorid, t.Suspicious
		v.Utorid = &utorid
		v.Suspicious = &suspicious
		v.ProcessedBy = t.ProcessedByUtorid
	}
	return v
}

func ProjectAll(ts []domain.Transaction, role domain.Role) []TransactionView {
	views := make([]TransactionView, len(ts))
	for i, t := range ts {
		views[i] = Project(t, role)
	}
	return views
}
