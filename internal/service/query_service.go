package service

import (
	"context"
	"fmt"
	"math"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/fsdevblog/points-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/points-ledger/pkg/uow"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// TransactionQuery параметры выборки транзакций. Name, CreatedBy и Suspicious учитываются только в ListAll.
type TransactionQuery struct {
	Name        *string
	CreatedBy   *string
	Suspicious  *bool
	PromotionID *int64
	Type        *domain.TransactionType
	RelatedID   *int64
	Amount      *int64
	Operator    *domain.CompareOperator
	Page        *int
	Limit       *int
}

type TransactionPage struct {
	// Count общее число подходящих транзакций, без учета пагинации.
	Count   int64
	Results []domain.Transaction
}

type QueryService struct {
	transactionRepo TransactionRepository
}

func NewQueryService(u uow.UOW) (*QueryService, error) {
	repo, err := uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if err != nil {
		return nil, fmt.Errorf("query service: %w", err)
	}
	return &QueryService{transactionRepo: repo}, nil
}

// ListAll выборка по всем транзакциям, доступна менеджерам и выше.
func (s *QueryService) ListAll(
	ctx context.Context,
	actor domain.Actor,
	query TransactionQuery,
) (*TransactionPage, error) {
	if !actor.Role.AtLeast(domain.RoleManager) {
		return nil, domain.ErrForbidden
	}
	filter, err := buildFilter(query)
	if err != nil {
		return nil, err
	}
	filter.Name = query.Name
	filter.CreatedBy = query.CreatedBy
	filter.Suspicious = query.Suspicious
	return s.list(ctx, filter)
}

// ListMine выборка по транзакциям самого актора.
func (s *QueryService) ListMine(
	ctx context.Context,
	actor domain.Actor,
	query TransactionQuery,
) (*TransactionPage, error) {
	filter, err := buildFilter(query)
	if err != nil {
		return nil, err
	}
	userID := actor.ID
	filter.UserID = &userID
	return s.list(ctx, filter)
}

func (s *QueryService) GetByID(ctx context.Context, actor domain.Actor, id int64) (*domain.Transaction, error) {
	if !actor.Role.AtLeast(domain.RoleManager) {
		return nil, domain.ErrForbidden
	}
	t, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return t, nil
}

func (s *QueryService) list(ctx context.Context, filter *repoargs.TransactionFilter) (*TransactionPage, error) {
	count, countErr := s.transactionRepo.Count(ctx, *filter)
	if countErr != nil {
		return nil, countErr //nolint:wrapcheck
	}
	results, listErr := s.transactionRepo.List(ctx, *filter)
	if listErr != nil {
		return nil, listErr //nolint:wrapcheck
	}
	if results == nil {
		results = []domain.Transaction{}
	}
	return &TransactionPage{Count: count, Results: results}, nil
}

// buildFilter проверяет общие для обеих выборок параметры и переводит их в фильтр репозитория.
func buildFilter(q TransactionQuery) (*repoargs.TransactionFilter, error) {
	page, limit := DefaultPage, DefaultLimit
	if q.Page != nil {
		if *q.Page < 1 {
			return nil, domain.NewValidationError("page", "page must be a positive integer")
		}
		page = *q.Page
	}
	if q.Limit != nil {
		if *q.Limit < 1 {
			return nil, domain.NewValidationError("limit", "limit must be a positive integer")
		}
		limit = *q.Limit
	}
	if page-1 > math.MaxInt/limit {
		return nil, domain.NewValidationError("page", "page is out of range")
	}

	if q.Type != nil && !q.Type.IsValid() {
		return nil, domain.NewValidationError("type", "unknown transaction type")
	}
	if q.RelatedID != nil && q.Type == nil {
		return nil, domain.NewValidationError("relatedId", "type and relatedId must be used together")
	}
	if (q.Amount == nil) != (q.Operator == nil) {
		return nil, domain.NewValidationError("operator", "amount and operator must be used together")
	}

	filter := &repoargs.TransactionFilter{
		PromotionID: q.PromotionID,
		Type:        q.Type,
		RelatedID:   q.RelatedID,
		Amount:      q.Amount,
		Limit:       uint(limit),
		Offset:      uint((page - 1) * limit),
	}
	if q.Operator != nil {
		if !q.Operator.IsValid() {
			return nil, domain.NewValidationError("operator", "operator must be gte or lte")
		}
		filter.Operator = *q.Operator
	}
	return filter, nil
}
