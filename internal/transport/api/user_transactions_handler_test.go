package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/fsdevblog/points-ledger/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type UserTransactionsHandlerTestSuite struct {
	handlerSuite
}

func TestUserTransactionsHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserTransactionsHandlerTestSuite))
}

func (s *UserTransactionsHandlerTestSuite) TestTransfer() {
	recipientID := int64(9)
	s.mockTxService.EXPECT().
		CreateTransfer(gomock.Any(), s.regular, service.TransferArgs{RecipientID: recipientID, Amount: 60, Remark: "gift"}).
		Return(&service.TransferResult{
			Sent: &domain.Transaction{ID: 30, Type: domain.TransactionTransfer, Utorid: s.regular.Utorid,
				Points: -60, Remark: "gift", CreatedByUtorid: s.regular.Utorid},
			Received: &domain.Transaction{ID: 31, Type: domain.TransactionTransfer, Utorid: "recipie1",
				Points: 60, Remark: "gift", CreatedByUtorid: s.regular.Utorid},
		}, nil)
	s.mockTxService.EXPECT().
		CreateTransfer(gomock.Any(), s.regular, service.TransferArgs{RecipientID: recipientID, Amount: 1000}).
		Return(nil, fmt.Errorf("creating transfer: %w", domain.ErrNotEnoughBalance))

	var resp TransferResponse
	status := s.request(http.MethodPost, RouteGroup+"/users/9/transactions", s.regularToken,
		map[string]any{"type": "transfer", "amount": 60, "remark": "gift"}, &resp)
	s.Require().Equal(http.StatusCreated, status)
	s.Equal(int64(30), resp.ID)
	s.Equal(s.regular.Utorid, resp.Sender)
	s.Equal("recipie1", resp.Recipient)
	s.Equal(int64(60), resp.Sent)

	var errResp map[string]any
	status = s.request(http.MethodPost, RouteGroup+"/users/9/transactions", s.regularToken,
		map[string]any{"type": "transfer", "amount": 1000}, &errResp)
	s.Equal(http.StatusBadRequest, status)
	s.Equal("not enough balance", errResp["error"])

	s.Equal(http.StatusBadRequest, s.request(http.MethodPost, RouteGroup+"/users/abc/transactions",
		s.regularToken, map[string]any{"type": "transfer", "amount": 1}, nil))
	s.Equal(http.StatusBadRequest, s.request(http.MethodPost, RouteGroup+"/users/9/transactions",
		s.regularToken, map[string]any{"type": "redemption", "amount": 1}, nil))
}

func (s *UserTransactionsHandlerTestSuite) TestRedeem() {
	s.mockTxService.EXPECT().
		CreateRedemption(gomock.Any(), s.regular, service.RedemptionArgs{Amount: 300}).
		Return(&domain.Transaction{ID: 40, Type: domain.TransactionRedemption, Utorid: s.regular.Utorid,
			Points: 300, CreatedByUtorid: s.regular.Utorid}, nil)
	s.mockTxService.EXPECT().
		CreateRedemption(gomock.Any(), s.regular, service.RedemptionArgs{Amount: 301}).
		Return(nil, fmt.Errorf("creating redemption: %w", domain.ErrNotEnoughBalance))

	var resp map[string]any
	status := s.request(http.MethodPost, RouteGroup+MyTransactionsRoute, s.regularToken,
		map[string]any{"type": "redemption", "amount": 300}, &resp)
	s.Require().Equal(http.StatusCreated, status)
	s.Equal(float64(300), resp["amount"])
	s.Contains(resp, "processedBy")
	s.Nil(resp["processedBy"])

	s.Equal(http.StatusBadRequest, s.request(http.MethodPost, RouteGroup+MyTransactionsRoute, s.regularToken,
		map[string]any{"type": "redemption", "amount": 301}, nil))
}

func (s *UserTransactionsHandlerTestSuite) TestIndex() {
	s.mockQuery.EXPECT().ListMine(gomock.Any(), s.regular, gomock.Any()).
		Return(&service.TransactionPage{
			Count:   1,
			Results: []domain.Transaction{{ID: 1, Utorid: s.regular.Utorid, Suspicious: true}},
		}, nil)

	var resp struct {
		Count   int64            `json:"count"`
		Results []map[string]any `json:"results"`
	}
	s.Require().Equal(http.StatusOK, s.request(http.MethodGet, RouteGroup+MyTransactionsRoute, s.regularToken,
		nil, &resp))
	s.Equal(int64(1), resp.Count)
	s.Require().Len(resp.Results, 1)
	s.NotContains(resp.Results[0], "suspicious")
	s.NotContains(resp.Results[0], "utorid")
}

func (s *UserTransactionsHandlerTestSuite) TestRateLimit() {
	s.limiter.allow = 1
	s.mockTxService.EXPECT().CreateRedemption(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.Transaction{ID: 1, Type: domain.TransactionRedemption}, nil).Times(1)

	body := map[string]any{"type": "redemption", "amount": 1}
	s.Equal(http.StatusCreated, s.request(http.MethodPost, RouteGroup+MyTransactionsRoute, s.regularToken, body, nil))
	s.Equal(http.StatusTooManyRequests,
		s.request(http.MethodPost, RouteGroup+MyTransactionsRoute, s.regularToken, body, nil))
}
