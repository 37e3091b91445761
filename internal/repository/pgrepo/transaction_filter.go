package pgrepo

import (
	"fmt"
	"strings"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/fsdevblog/points-ledger/internal/repository/repoargs"
)

// whereBuilder собирает WHERE с позиционными параметрами postgres ($1, $2, ...).
type whereBuilder struct {
	conds []string
	args  []any
}

// add добавляет условие. В cond вместо номера параметра указывается `?`.
func (w *whereBuilder) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(w.args))))
}

func (w *whereBuilder) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// buildTransactionWhere переводит фильтр в условие выборки для запроса вида
// `FROM transactions t JOIN users u ... JOIN users c ...`.
func buildTransactionWhere(f repoargs.TransactionFilter) (string, []any) {
	var w whereBuilder

	if f.UserID != nil {
		w.add("t.user_id = ?", *f.UserID)
	}
	if f.Name != nil {
		w.add("(u.name = ? OR u.utorid = ?)", *f.Name)
	}
	if f.CreatedBy != nil {
		w.add("c.utorid = ?", *f.CreatedBy)
	}
	if f.Suspicious != nil {
		w.add("t.suspicious = ?", *f.Suspicious)
	}
	if f.PromotionID != nil {
		w.add("EXISTS (SELECT 1 FROM transaction_promotions tp "+
			"WHERE tp.transaction_id = t.id AND tp.promotion_id = ?)", *f.PromotionID)
	}
	if f.Type != nil {
		w.add("t.type = ?", string(*f.Type))
	}
	if f.RelatedID != nil {
		w.add("t.related_id = ?", *f.RelatedID)
	}
	if f.Amount != nil {
		switch f.Operator {
		case domain.OperatorGte:
			w.add("t.points >= ?", *f.Amount)
		case domain.OperatorLte:
			w.add("t.points <= ?", *f.Amount)
		}
	}
	return w.String(), w.args
}
