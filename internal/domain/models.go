package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID         int64
	CreatedAt  time.Time
	Utorid     string
	Name       string
	Role       Role
	Points     int64
	Suspicious bool
	Verified   bool
}

// Transaction запись журнала баллов. После создания меняются только Suspicious и ProcessedBy.
// Смысл RelatedID зависит от типа: для transfer - id второй стороны перевода, для adjustment - id исходной
// транзакции, для event - id мероприятия.
type Transaction struct {
	ID                int64
	CreatedAt         time.Time
	Type              TransactionType
	UserID            int64
	Utorid            string
	Points            int64
	Spent             decimal.NullDecimal
	RelatedID         *int64
	Remark            string
	Suspicious        bool
	CreatedBy         int64
	CreatedByUtorid   string
	ProcessedBy       *int64
	ProcessedByUtorid *string
	PromotionIDs      []int64
}

// IsProcessed актуально только для redemption.
func (t *Transaction) IsProcessed() bool {
	return t.ProcessedBy != nil
}

type Promotion struct {
	ID          int64
	Name        string
	Type        PromotionType
	MinSpending decimal.Decimal
	Rate        decimal.Decimal
	Points      int64
	StartTime   time.Time
	EndTime     time.Time
}

// Event мероприятие с пулом баллов. Инвариант: PointsRemain + PointsAwarded постоянна.
type Event struct {
	ID            int64
	Name          string
	PointsRemain  int64
	PointsAwarded int64
	Guests        []User
}

// IsGuest проверяет, является ли юзер гостем мероприятия.
func (e *Event) IsGuest(userID int64) bool {
	for _, g := range e.Guests {
		if g.ID == userID {
			return true
		}
	}
	return false
}

// Actor аутентифицированный пользователь, от имени которого выполняется операция. OrganizerOf - набор
// мероприятий, в которых актор является организатором.
type Actor struct {
	ID          int64
	Utorid      string
	Role        Role
	OrganizerOf map[int64]struct{}
}

func (a Actor) IsOrganizerOf(eventID int64) bool {
	_, ok := a.OrganizerOf[eventID]
	return ok
}
