package pgrepo

import (
	"context"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/fsdevblog/points-ledger/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, created_at, utorid, name, role, points, suspicious, verified`

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID ищет юзера по id. Возвращает domain.ErrRecordNotFound если запись не найдена.
func (u *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return user, nil
}

// FindByUtorid ищет юзера по utorid. Возвращает domain.ErrRecordNotFound если запись не найдена.
func (u *UserRepository) FindByUtorid(ctx context.Context, utorid string) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE utorid = $1`, utorid)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by utorid `%s`", utorid)
	}
	return user, nil
}

// ApplyDelta атомарно прибавляет delta к балансу юзера и возвращает новый баланс. Отрицательный результат
// не отсекается.
func (u *UserRepository) ApplyDelta(ctx context.Context, userID int64, delta int64) (int64, error) {
	var balance int64
	err := u.db.QueryRow(ctx,
		`UPDATE users SET points = points + $2 WHERE id = $1 RETURNING points`,
		userID, delta,
	).Scan(&balance)
	if err != nil {
		return 0, convertErr(err, "applying delta %d to user %d", delta, userID)
	}
	return balance, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var role string
	if err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.Utorid,
		&user.Name,
		&role,
		&user.Points,
		&user.Suspicious,
		&user.Verified,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	user.Role = domain.Role(role)
	return &user, nil
}
