package pgrepo

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// safeConvertUintToInt64 безопасно конвертирует uint в int64. В случае выхода значения за рамки диапазона
// возвращает ошибку.
func safeConvertUintToInt64(val uint) (int64, error) {
	if uint64(val) > uint64(math.MaxInt64) {
		return 0, fmt.Errorf("value is out of range: %d", val)
	}
	return int64(val), nil
}

// parseNullDecimal разбирает numeric, приведенный в запросе к тексту.
func parseNullDecimal(s *string) (decimal.NullDecimal, error) {
	if s == nil {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("parse decimal `%s`: %w", *s, err)
	}
	return decimal.NewNullDecimal(d), nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse decimal `%s`: %w", s, err)
	}
	return d, nil
}
