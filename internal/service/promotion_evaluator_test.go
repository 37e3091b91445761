package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PromotionEvaluatorTestSuite struct {
	ledgerSuite
}

func TestPromotionEvaluatorSuite(t *testing.T) {
	suite.Run(t, new(PromotionEvaluatorTestSuite))
}

func (s *PromotionEvaluatorTestSuite) TestCalculatePoints() {
	cases := []struct {
		name  string
		spent string
		rates []string
		want  int64
	}{
		{name: "base only", spent: "10", want: 40},
		{name: "base with rate", spent: "10", rates: []string{"0.05"}, want: 90},
		{name: "two rates", spent: "10", rates: []string{"0.05", "0.01"}, want: 100},
		{name: "half rounds up", spent: "2.625", want: 11},
		{name: "below half rounds down", spent: "2.6", want: 10},
		{name: "cents", spent: "0.12", want: 0},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			rates := make([]decimal.Decimal, len(t.rates))
			for i, r := range t.rates {
				rates[i] = decimal.RequireFromString(r)
			}
			s.Equal(t.want, CalculatePoints(decimal.RequireFromString(t.spent), rates))
		})
	}
}

func (s *PromotionEvaluatorTestSuite) TestEvaluate() {
	var userID int64 = 7
	ten := decimal.NewFromInt(10)

	rated := &domain.Promotion{ID: 1, Type: domain.PromotionAutomatic, Rate: decimal.RequireFromString("0.05")}
	lump := &domain.Promotion{ID: 2, Type: domain.PromotionOneTime, Points: 25}
	expensive := &domain.Promotion{ID: 3, Type: domain.PromotionAutomatic, MinSpending: decimal.NewFromInt(50)}
	usedOnce := &domain.Promotion{ID: 4, Type: domain.PromotionOneTime, Points: 10}

	s.mockPromoRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(rated, nil).AnyTimes()
	s.mockPromoRepo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(lump, nil).AnyTimes()
	s.mockPromoRepo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(expensive, nil).AnyTimes()
	s.mockPromoRepo.EXPECT().FindByID(gomock.Any(), int64(4)).Return(usedOnce, nil).AnyTimes()
	s.mockPromoRepo.EXPECT().FindByID(gomock.Any(), int64(99)).Return(nil, domain.ErrRecordNotFound).AnyTimes()

	s.mockTxRepo.EXPECT().PromotionUsedByUser(gomock.Any(), int64(2), userID).Return(false, nil).AnyTimes()
	s.mockTxRepo.EXPECT().PromotionUsedByUser(gomock.Any(), int64(4), userID).Return(true, nil).AnyTimes()

	cases := []struct {
		name      string
		ids       []int64
		wantErr   error
		wantTotal int64
	}{
		{name: "no promotions", ids: nil, wantTotal: 40},
		{name: "rate", ids: []int64{1}, wantTotal: 90},
		{name: "rate and lump sum", ids: []int64{1, 2}, wantTotal: 115},
		{name: "not found", ids: []int64{99}, wantErr: domain.ErrRecordNotFound},
		{name: "one-time already used", ids: []int64{4}, wantErr: domain.ErrPromotionAlreadyUsed},
		{name: "repeated in request", ids: []int64{1, 1}, wantErr: domain.ErrPromotionAlreadyUsed},
		{name: "min spending", ids: []int64{3}, wantErr: domain.ErrMinSpendingNotMet},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			bonus, err := PromotionEvaluator{}.Evaluate(context.Background(), s.mockPromoRepo, s.mockTxRepo,
				userID, ten, t.ids)
			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				s.Nil(bonus)
				return
			}
			s.Require().NoError(err)
			s.Equal(t.wantTotal, bonus.TotalPoints(ten))
			s.Len(bonus.PromotionIDs, len(t.ids))
		})
	}
}
