package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/fsdevblog/points-ledger/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionsHandlerTestSuite struct {
	handlerSuite
}

func TestTransactionsHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionsHandlerTestSuite))
}

func (s *TransactionsHandlerTestSuite) TestCreate() {
	purchase := &domain.Transaction{
		ID:              11,
		Type:            domain.TransactionPurchase,
		Utorid:          "custom01",
		Points:          90,
		Spent:           decimal.NewNullDecimal(decimal.NewFromInt(10)),
		PromotionIDs:    []int64{5},
		CreatedByUtorid: s.cashier.Utorid,
	}

	s.mockTxService.EXPECT().
		CreatePurchase(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, actor domain.Actor, args service.PurchaseArgs) (*service.PurchaseResult, error) {
			s.Equal(s.cashier.ID, actor.ID)
			s.True(args.Spent.Equal(decimal.NewFromInt(10)))
			if len(args.PromotionIDs) == 1 && args.PromotionIDs[0] == 6 {
				return nil, fmt.Errorf("creating purchase: %w", domain.ErrPromotionAlreadyUsed)
			}
			return &service.PurchaseResult{Transaction: purchase, Earned: 90}, nil
		}).Times(2)
	s.mockTxService.EXPECT().
		CreateAdjustment(gomock.Any(), gomock.Any(), service.AdjustmentArgs{
			Utorid:    "custom01",
			Amount:    -20,
			RelatedID: 11,
		}).
		Return(&domain.Transaction{ID: 12, Type: domain.TransactionAdjustment, Points: -20}, nil)

	cases := []struct {
		name       string
		token      string
		body       map[string]any
		wantStatus int
		wantError  string
	}{
		{
			name:       "purchase by cashier",
			token:      s.cashierToken,
			body:       map[string]any{"utorid": "custom01", "type": "purchase", "spent": 10, "promotionIds": []int64{5}},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "promotion already used",
			token:      s.cashierToken,
			body:       map[string]any{"utorid": "custom01", "type": "purchase", "spent": 10, "promotionIds": []int64{6}},
			wantStatus: http.StatusBadRequest,
			wantError:  "promotion is one-time only",
		},
		{
			name:       "purchase by regular user",
			token:      s.regularToken,
			body:       map[string]any{"utorid": "custom01", "type": "purchase", "spent": 10},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "adjustment by cashier",
			token:      s.cashierToken,
			body:       map[string]any{"utorid": "custom01", "type": "adjustment", "amount": -20, "relatedId": 11},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "adjustment by manager",
			token:      s.managerToken,
			body:       map[string]any{"utorid": "custom01", "type": "adjustment", "amount": -20, "relatedId": 11},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "bad utorid",
			token:      s.cashierToken,
			body:       map[string]any{"utorid": "x", "type": "purchase", "spent": 10},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown type",
			token:      s.managerToken,
			body:       map[string]any{"utorid": "custom01", "type": "transfer", "amount": 1},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no token",
			body:       map[string]any{"utorid": "custom01", "type": "purchase", "spent": 10},
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			var resp map[string]any
			status := s.request(http.MethodPost, RouteGroup+TransactionsRoute, t.token, t.body, &resp)
			s.Equal(t.wantStatus, status)
			if t.wantError != "" {
				s.Equal(t.wantError, resp["error"])
			}
		})
	}
}

func (s *TransactionsHandlerTestSuite) TestCreate_PurchaseResponse() {
	s.mockTxService.EXPECT().CreatePurchase(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&service.PurchaseResult{
			Transaction: &domain.Transaction{
				ID:              20,
				Type:            domain.TransactionPurchase,
				Utorid:          "custom01",
				Points:          90,
				Suspicious:      true,
				Spent:           decimal.NewNullDecimal(decimal.NewFromInt(10)),
				PromotionIDs:    []int64{},
				CreatedByUtorid: s.cashier.Utorid,
			},
			Earned: 0,
		}, nil)

	var resp PurchaseResponse
	status := s.request(http.MethodPost, RouteGroup+TransactionsRoute, s.cashierToken,
		map[string]any{"utorid": "custom01", "type": "purchase", "spent": 10}, &resp)
	s.Require().Equal(http.StatusCreated, status)
	s.Equal(int64(20), resp.ID)
	s.Equal(int64(0), resp.Earned)
	s.Equal(s.cashier.Utorid, resp.CreatedBy)
	s.True(resp.Spent.Equal(decimal.NewFromInt(10)))
}

func (s *TransactionsHandlerTestSuite) TestIndex() {
	s.mockQuery.EXPECT().ListAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Actor, q service.TransactionQuery) (*service.TransactionPage, error) {
			s.Require().NotNil(q.Operator)
			s.Equal(domain.OperatorGte, *q.Operator)
			s.Equal(int64(50), *q.Amount)
			s.Equal(2, *q.Page)
			return &service.TransactionPage{
				Count:   3,
				Results: []domain.Transaction{{ID: 1, Utorid: "custom01", Suspicious: true}},
			}, nil
		})

	var resp struct {
		Count   int64            `json:"count"`
		Results []map[string]any `json:"results"`
	}
	status := s.request(http.MethodGet, RouteGroup+TransactionsRoute+"?amount=50&operator=gte&page=2",
		s.managerToken, nil, &resp)
	s.Require().Equal(http.StatusOK, status)
	s.Equal(int64(3), resp.Count)
	s.Require().Len(resp.Results, 1)
	s.Equal("custom01", resp.Results[0]["utorid"])
	s.Equal(true, resp.Results[0]["suspicious"])

	s.Equal(http.StatusForbidden, s.request(http.MethodGet, RouteGroup+TransactionsRoute, s.cashierToken, nil, nil))
	s.Equal(http.StatusBadRequest,
		s.request(http.MethodGet, RouteGroup+TransactionsRoute+"?amount=5&operator=eq", s.managerToken, nil, nil))
}

func (s *TransactionsHandlerTestSuite) TestShow() {
	s.mockQuery.EXPECT().GetByID(gomock.Any(), gomock.Any(), int64(7)).
		Return(&domain.Transaction{ID: 7, Type: domain.TransactionTransfer}, nil)
	s.mockQuery.EXPECT().GetByID(gomock.Any(), gomock.Any(), int64(8)).
		Return(nil, fmt.Errorf("finding: %w", domain.ErrRecordNotFound))

	var view service.TransactionView
	s.Equal(http.StatusOK, s.request(http.MethodGet, RouteGroup+"/transactions/7", s.managerToken, nil, &view))
	s.Equal(int64(7), view.ID)
	s.Equal(http.StatusNotFound, s.request(http.MethodGet, RouteGroup+"/transactions/8", s.managerToken, nil, nil))
	s.Equal(http.StatusBadRequest, s.request(http.MethodGet, RouteGroup+"/transactions/abc", s.managerToken, nil, nil))
}

func (s *TransactionsHandlerTestSuite) TestSetSuspicious() {
	s.mockReversal.EXPECT().SetSuspicious(gomock.Any(), gomock.Any(), int64(1), true).
		Return(&service.SuspiciousResult{Transaction: &domain.Transaction{ID: 1}, Changed: false}, nil)
	s.mockReversal.EXPECT().SetSuspicious(gomock.Any(), gomock.Any(), int64(2), true).
		Return(&service.SuspiciousResult{Transaction: &domain.Transaction{ID: 2, Suspicious: true}, Changed: true}, nil)

	var noop map[string]any
	s.Equal(http.StatusOK, s.request(http.MethodPatch, RouteGroup+"/transactions/1/suspicious", s.managerToken,
		map[string]any{"suspicious": true}, &noop))
	s.Equal("No changes made", noop["message"])

	var changed map[string]any
	s.Equal(http.StatusOK, s.request(http.MethodPatch, RouteGroup+"/transactions/2/suspicious", s.managerToken,
		map[string]any{"suspicious": true}, &changed))
	s.Equal(true, changed["suspicious"])

	s.Equal(http.StatusBadRequest, s.request(http.MethodPatch, RouteGroup+"/transactions/2/suspicious",
		s.managerToken, map[string]any{"suspicious": "yes"}, nil))
}

func (s *TransactionsHandlerTestSuite) TestProcess() {
	s.mockReversal.EXPECT().ProcessRedemption(gomock.Any(), gomock.Any(), int64(5), true).
		Return(&domain.Transaction{ID: 5, Type: domain.TransactionRedemption, Points: 300, Utorid: "custom01"}, nil)
	s.mockReversal.EXPECT().ProcessRedemption(gomock.Any(), gomock.Any(), int64(6), true).
		Return(nil, fmt.Errorf("processing: %w", domain.ErrAlreadyProcessed))

	var resp ProcessedResponse
	s.Equal(http.StatusOK, s.request(http.MethodPatch, RouteGroup+"/transactions/5/processed", s.cashierToken,
		map[string]any{"processed": true}, &resp))
	s.Equal(int64(300), resp.Redeemed)
	s.Equal(s.cashier.Utorid, resp.ProcessedBy)

	s.Equal(http.StatusBadRequest, s.request(http.MethodPatch, RouteGroup+"/transactions/6/processed",
		s.cashierToken, map[string]any{"processed": true}, nil))
	s.Equal(http.StatusForbidden, s.request(http.MethodPatch, RouteGroup+"/transactions/5/processed",
		s.regularToken, map[string]any{"processed": true}, nil))
}
