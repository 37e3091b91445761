package pgrepo

import (
	"context"
	"fmt"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/fsdevblog/points-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/points-ledger/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const transactionSelect = `
	SELECT t.id, t.created_at, t.type, t.user_id, u.utorid, t.points, t.spent::text, t.related_id, t.remark,
		t.suspicious, t.created_by, c.utorid, t.processed_by, p.utorid,
		ARRAY(SELECT tp.promotion_id FROM transaction_promotions tp
			WHERE tp.transaction_id = t.id ORDER BY tp.promotion_id)`

const transactionFrom = `
	FROM transactions t
	JOIN users u ON u.id = t.user_id
	JOIN users c ON c.id = t.created_by
	LEFT JOIN users p ON p.id = t.processed_by`

const transactionInsert = `
	INSERT INTO transactions (type, user_id, points, spent, related_id, remark, suspicious, created_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id, created_at`

type TransactionRepository struct {
	db uow.DBTX
}

func NewTransactionRepository(db uow.DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create сохраняет транзакцию. В возвращаемой модели не заполнены utorid связанных юзеров и промоакции.
func (r *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.TransactionCreate,
) (*domain.Transaction, error) {
	t := newTransactionModel(args)
	err := r.db.QueryRow(ctx, transactionInsert, insertParams(args)...).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return nil, convertErr(err, "creating %s transaction for user %d", args.Type, args.UserID)
	}
	return t, nil
}

// BatchCreate создает несколько транзакций одним батч запросом. fn вызывается для каждой строки в порядке args.
func (r *TransactionRepository) BatchCreate(
	ctx context.Context,
	args []repoargs.TransactionCreate,
	fn repoargs.TransactionBatchQueryRow,
) {
	batch := new(pgx.Batch)
	for _, a := range args {
		batch.Queue(transactionInsert, insertParams(a)...)
	}
	results := r.db.SendBatch(ctx, batch)
	defer func() {
		_ = results.Close()
	}()

	for i, a := range args {
		t := newTransactionModel(a)
		if err := results.QueryRow().Scan(&t.ID, &t.CreatedAt); err != nil {
			fn(i, nil, convertErr(err, "batch creating %s transaction for user %d", a.Type, a.UserID))
			continue
		}
		fn(i, t, nil)
	}
}

// AttachPromotions сохраняет связи транзакции с промоакциями.
func (r *TransactionRepository) AttachPromotions(ctx context.Context, transactionID int64, promotionIDs []int64) error {
	if len(promotionIDs) == 0 {
		return nil
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO transaction_promotions (transaction_id, promotion_id)
		SELECT $1, unnest($2::bigint[])`,
		transactionID, promotionIDs,
	)
	if err != nil {
		return convertErr(err, "attaching promotions %v to transaction %d", promotionIDs, transactionID)
	}
	return nil
}

// PromotionUsedByUser проверяет, есть ли у юзера транзакция, связанная с промоакцией.
func (r *TransactionRepository) PromotionUsedByUser(ctx context.Context, promotionID, userID int64) (bool, error) {
	var used bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM transaction_promotions tp
			JOIN transactions t ON t.id = tp.transaction_id
			WHERE tp.promotion_id = $1 AND t.user_id = $2
		)`, promotionID, userID,
	).Scan(&used)
	if err != nil {
		return false, convertErr(err, "checking promotion %d usage by user %d", promotionID, userID)
	}
	return used, nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	row := r.db.QueryRow(ctx, transactionSelect+transactionFrom+` WHERE t.id = $1`, id)
	t, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "finding transaction by id %d", id)
	}
	return t, nil
}

// SetSuspicious меняет флаг только если текущее значение отличается. Возвращает true, если запись изменилась.
func (r *TransactionRepository) SetSuspicious(ctx context.Context, id int64, suspicious bool) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE transactions SET suspicious = $2 WHERE id = $1 AND suspicious <> $2`,
		id, suspicious,
	)
	if err != nil {
		return false, convertErr(err, "setting suspicious=%t on transaction %d", suspicious, id)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkProcessed проставляет обработавшего юзера, если транзакция еще не обработана. Возвращает true, если
// запись изменилась.
func (r *TransactionRepository) MarkProcessed(ctx context.Context, id int64, processedBy int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE transactions SET processed_by = $2 WHERE id = $1 AND processed_by IS NULL`,
		id, processedBy,
	)
	if err != nil {
		return false, convertErr(err, "marking transaction %d processed by %d", id, processedBy)
	}
	return tag.RowsAffected() == 1, nil
}

// List возвращает страницу транзакций, отсортированных по id.
func (r *TransactionRepository) List(
	ctx context.Context,
	filter repoargs.TransactionFilter,
) ([]domain.Transaction, error) {
	where, args := buildTransactionWhere(filter)

	limit, limitErr := safeConvertUintToInt64(filter.Limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "converting limit")
	}
	offset, offsetErr := safeConvertUintToInt64(filter.Offset)
	if offsetErr != nil {
		return nil, convertErr(offsetErr, "converting offset")
	}
	args = append(args, limit, offset)
	query := transactionSelect + transactionFrom + where +
		fmt.Sprintf(" ORDER BY t.id LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, "listing transactions")
	}
	transactions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		t, scanErr := scanTransaction(row)
		if scanErr != nil {
			return domain.Transaction{}, scanErr
		}
		return *t, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning transactions")
	}
	return transactions, nil
}

// Count возвращает общее число транзакций, подходящих под фильтр (без учета пагинации).
func (r *TransactionRepository) Count(ctx context.Context, filter repoargs.TransactionFilter) (int64, error) {
	where, args := buildTransactionWhere(filter)
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT count(*)`+transactionFrom+where, args...).Scan(&count); err != nil {
		return 0, convertErr(err, "counting transactions")
	}
	return count, nil
}

func insertParams(a repoargs.TransactionCreate) []any {
	var spent any
	if a.Spent.Valid {
		spent = a.Spent.Decimal.String()
	}
	return []any{string(a.Type), a.UserID, a.Points, spent, a.RelatedID, a.Remark, a.Suspicious, a.CreatedBy}
}

func newTransactionModel(a repoargs.TransactionCreate) *domain.Transaction {
	return &domain.Transaction{
		Type:       a.Type,
		UserID:     a.UserID,
		Points:     a.Points,
		Spent:      a.Spent,
		RelatedID:  a.RelatedID,
		Remark:     a.Remark,
		Suspicious: a.Suspicious,
		CreatedBy:  a.CreatedBy,
	}
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	var txType string
	var spent *string
	if err := row.Scan(
		&t.ID,
		&t.CreatedAt,
		&txType,
		&t.UserID,
		&t.Utorid,
		&t.Points,
		&spent,
		&t.RelatedID,
		&t.Remark,
		&t.Suspicious,
		&t.CreatedBy,
		&t.CreatedByUtorid,
		&t.ProcessedBy,
		&t.ProcessedByUtorid,
		&t.PromotionIDs,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	t.Type = domain.TransactionType(txType)

	parsed, err := parseNullDecimal(spent)
	if err != nil {
		return nil, err
	}
	t.Spent = parsed
	return &t, nil
}
