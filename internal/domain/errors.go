package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")
	ErrValidation     = errors.New("validation failed")
	ErrForbidden      = errors.New("forbidden")

	// ErrBusinessRule общий предок ошибок бизнес-правил.
	ErrBusinessRule = errors.New("business rule violation")

	ErrNotEnoughBalance     = fmt.Errorf("%w: not enough balance", ErrBusinessRule)
	ErrPromotionAlreadyUsed = fmt.Errorf("%w: promotion is one-time only", ErrBusinessRule)
	ErrMinSpendingNotMet    = fmt.Errorf("%w: minimum spending not met", ErrBusinessRule)
	ErrEventPointsExhausted = fmt.Errorf("%w: event does not have enough points", ErrBusinessRule)
	ErrNotEventGuest        = fmt.Errorf("%w: user is not a guest of the event", ErrBusinessRule)
	ErrAlreadyProcessed     = fmt.Errorf("%w: transaction already processed", ErrBusinessRule)
	ErrNotRedemption        = fmt.Errorf("%w: only redemption transactions can be processed", ErrBusinessRule)
	ErrUserNotVerified      = fmt.Errorf("%w: user is not verified", ErrBusinessRule)
)

// ValidationError ошибка валидации конкретного поля запроса.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
