package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/stretchr/testify/suite"
)

type BalanceMutatorTestSuite struct {
	ledgerSuite
}

func TestBalanceMutatorSuite(t *testing.T) {
	suite.Run(t, new(BalanceMutatorTestSuite))
}

func (s *BalanceMutatorTestSuite) TestApplyDelta() {
	ctx := context.Background()

	s.mockUserRepo.EXPECT().ApplyDelta(ctx, int64(1), int64(-30)).Return(int64(70), nil)
	balance, err := s.mutator.ApplyDelta(ctx, s.mockTX, 1, -30)
	s.Require().NoError(err)
	s.Equal(int64(70), balance)

	s.mockUserRepo.EXPECT().ApplyDelta(ctx, int64(2), int64(5)).Return(int64(0), domain.ErrRecordNotFound)
	_, err = s.mutator.ApplyDelta(ctx, s.mockTX, 2, 5)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *BalanceMutatorTestSuite) TestApplyPoolDelta() {
	ctx := context.Background()

	s.mockEventRepo.EXPECT().ApplyPoolDelta(ctx, int64(10), int64(60)).
		Return(&domain.Event{ID: 10, PointsRemain: 40, PointsAwarded: 60}, nil)
	event, err := s.mutator.ApplyPoolDelta(ctx, s.mockTX, 10, 60)
	s.Require().NoError(err)
	s.Equal(int64(40), event.PointsRemain)
	s.Equal(int64(60), event.PointsAwarded)
}
