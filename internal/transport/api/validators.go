package api

import (
	"fmt"
	"regexp"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var utoridRe = regexp.MustCompile(`^[a-zA-Z0-9]{7,8}$`)

// validateUtorid utorid - 7-8 латинских букв и цифр.
func validateUtorid(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return utoridRe.MatchString(str)
}

// validateOperator оператор сравнения суммы: gte или lte.
func validateOperator(fl validator.FieldLevel) bool {
	switch v := fl.Field().Interface().(type) {
	case domain.CompareOperator:
		return v.IsValid()
	case string:
		return domain.CompareOperator(v).IsValid()
	default:
		return false
	}
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("validator registration: unexpected engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("utorid", validateUtorid); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	if err := v.RegisterValidation("operator", validateOperator); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}
