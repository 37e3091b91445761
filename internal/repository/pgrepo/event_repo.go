package pgrepo

import (
	"context"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/fsdevblog/points-ledger/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type EventRepository struct {
	db uow.DBTX
}

func NewEventRepository(db uow.DBTX) *EventRepository {
	return &EventRepository{db: db}
}

// FindWithGuests возвращает мероприятие вместе со списком гостей, отсортированным по id.
func (e *EventRepository) FindWithGuests(ctx context.Context, id int64) (*domain.Event, error) {
	var event domain.Event
	err := e.db.QueryRow(ctx,
		`SELECT id, name, points_remain, points_awarded FROM events WHERE id = $1`, id,
	).Scan(&event.ID, &event.Name, &event.PointsRemain, &event.PointsAwarded)
	if err != nil {
		return nil, convertErr(err, "finding event by id %d", id)
	}

	rows, err := e.db.Query(ctx, `
		SELECT u.id, u.created_at, u.utorid, u.name, u.role, u.points, u.suspicious, u.verified
		FROM event_guests g
		JOIN users u ON u.id = g.user_id
		WHERE g.event_id = $1
		ORDER BY u.id`, id,
	)
	if err != nil {
		return nil, convertErr(err, "getting guests of event %d", id)
	}

	guests, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		user, scanErr := scanUser(row)
		if scanErr != nil {
			return domain.User{}, scanErr
		}
		return *user, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning guests of event %d", id)
	}
	event.Guests = guests
	return &event, nil
}

// ApplyPoolDelta переносит delta баллов из points_remain в points_awarded одним запросом, сохраняя их сумму.
// Отрицательная delta возвращает баллы в пул. Возвращает мероприятие с обновленными счетчиками (без гостей).
func (e *EventRepository) ApplyPoolDelta(ctx context.Context, eventID int64, delta int64) (*domain.Event, error) {
	var event domain.Event
	err := e.db.QueryRow(ctx, `
		UPDATE events
		SET points_remain = points_remain - $2, points_awarded = points_awarded + $2
		WHERE id = $1
		RETURNING id, name, points_remain, points_awarded`,
		eventID, delta,
	).Scan(&event.ID, &event.Name, &event.PointsRemain, &event.PointsAwarded)
	if err != nil {
		return nil, convertErr(err, "applying pool delta %d to event %d", delta, eventID)
	}
	return &event, nil
}
