package service

import (
	"context"
	"io"

	"github.com/fsdevblog/points-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/points-ledger/internal/service/mocks"
	"github.com/fsdevblog/points-ledger/pkg/uow"
	uowmocks "github.com/fsdevblog/points-ledger/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

// ledgerSuite общая обвязка тестов сервисов: uow, выполняющий fn сразу с моком транзакции, и моки всех
// репозиториев.
type ledgerSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUOW       *uowmocks.MockUOW
	mockTX        *uowmocks.MockTX
	mockUserRepo  *mocks.MockUserRepository
	mockTxRepo    *mocks.MockTransactionRepository
	mockPromoRepo *mocks.MockPromotionRepository
	mockEventRepo *mocks.MockEventRepository
	logger        *logrus.Logger
	mutator       *BalanceMutator
}

func (s *ledgerSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockTxRepo = mocks.NewMockTransactionRepository(s.mockCtrl)
	s.mockPromoRepo = mocks.NewMockPromotionRepository(s.mockCtrl)
	s.mockEventRepo = mocks.NewMockEventRepository(s.mockCtrl)

	s.logger = logrus.New()
	s.logger.SetOutput(io.Discard)
	s.mutator = NewBalanceMutator(s.logger)

	// Репозитории внутри транзакции.
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).Return(s.mockUserRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.TransactionRepoName)).Return(s.mockTxRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.PromotionRepoName)).Return(s.mockPromoRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.EventRepoName)).Return(s.mockEventRepo, nil).AnyTimes()

	// Репозиторий вне транзакции (для сервиса выборок).
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTxRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()
}

func (s *ledgerSuite) TearDownTest() {
	s.mockCtrl.Finish()
}
