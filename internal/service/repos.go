package service

import (
	"fmt"

	"github.com/fsdevblog/points-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/points-ledger/pkg/uow"
)

// ledgerRepos репозитории, привязанные к одной uow транзакции.
type ledgerRepos struct {
	users        UserRepository
	transactions TransactionRepository
	promotions   PromotionRepository
	events       EventRepository
}

func reposFromTX(tx uow.TX) (*ledgerRepos, error) {
	users, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, fmt.Errorf("user repository: %w", err)
	}
	transactions, err := uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
	if err != nil {
		return nil, fmt.Errorf("transaction repository: %w", err)
	}
	promotions, err := uow.GetAs[PromotionRepository](tx, uow.RepositoryName(repoargs.PromotionRepoName))
	if err != nil {
		return nil, fmt.Errorf("promotion repository: %w", err)
	}
	events, err := uow.GetAs[EventRepository](tx, uow.RepositoryName(repoargs.EventRepoName))
	if err != nil {
		return nil, fmt.Errorf("event repository: %w", err)
	}
	return &ledgerRepos{
		users:        users,
		transactions: transactions,
		promotions:   promotions,
		events:       events,
	}, nil
}
