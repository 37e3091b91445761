package service

import (
	"fmt"

	"github.com/fsdevblog/points-ledger/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	TransactionService *TransactionService
	EventAwardService  *EventAwardService
	ReversalService    *ReversalService
	QueryService       *QueryService
}

func Factory(unitOfWork uow.UOW, l *logrus.Logger) (*AppServices, error) {
	mutator := NewBalanceMutator(l)

	queryService, queryServiceErr := NewQueryService(unitOfWork)
	if queryServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", queryServiceErr.Error())
	}

	return &AppServices{
		TransactionService: NewTransactionService(unitOfWork, mutator, l),
		EventAwardService:  NewEventAwardService(unitOfWork, mutator, l),
		ReversalService:    NewReversalService(unitOfWork, mutator, l),
		QueryService:       queryService,
	}, nil
}
