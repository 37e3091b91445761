package pgrepo

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)

// convertErr приводит ошибку pgx к доменной, добавляя контекст вида `[repository/<msg>]`.
//   - pgx.ErrNoRows и нарушение внешнего ключа (ссылка на несуществующую запись) - ErrRecordNotFound;
//   - нарушение уникальности - ErrDuplicateKey;
//   - нарушение CHECK (недопустимый тип транзакции, роль и т.п.) - ErrValidation;
//   - прочее - ErrUnknown с оригинальным сообщением.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	errType := domain.ErrUnknown

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			errType = domain.ErrDuplicateKey
		case foreignKeyViolationCode:
			errType = domain.ErrRecordNotFound
		case checkViolationCode:
			errType = domain.ErrValidation
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}
