package domain

type Role string

const (
	RoleRegular   Role = "regular"
	RoleCashier   Role = "cashier"
	RoleManager   Role = "manager"
	RoleSuperuser Role = "superuser"
)

// clearance уровень доступа роли. Чем больше значение, тем больше прав.
func (r Role) clearance() int {
	switch r {
	case RoleRegular:
		return 1
	case RoleCashier:
		return 2 //nolint:mnd
	case RoleManager:
		return 3 //nolint:mnd
	case RoleSuperuser:
		return 4 //nolint:mnd
	default:
		return 0
	}
}

// AtLeast возвращает true, если роль r имеет не меньше прав, чем required.
func (r Role) AtLeast(required Role) bool {
	return r.clearance() > 0 && r.clearance() >= required.clearance()
}

func (r Role) IsValid() bool {
	return r.clearance() > 0
}

type TransactionType string

const (
	TransactionPurchase   TransactionType = "purchase"
	TransactionAdjustment TransactionType = "adjustment"
	TransactionTransfer   TransactionType = "transfer"
	TransactionRedemption TransactionType = "redemption"
	TransactionEvent      TransactionType = "event"
)

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionPurchase, TransactionAdjustment, TransactionTransfer, TransactionRedemption, TransactionEvent:
		return true
	default:
		return false
	}
}

type PromotionType string

const (
	PromotionOneTime   PromotionType = "one-time"
	PromotionAutomatic PromotionType = "automatic"
)

type CompareOperator string

const (
	OperatorGte CompareOperator = "gte"
	OperatorLte CompareOperator = "lte"
)

func (o CompareOperator) IsValid() bool {
	return o == OperatorGte || o == OperatorLte
}
