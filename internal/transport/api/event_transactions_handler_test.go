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

type EventTransactionsHandlerTestSuite struct {
	handlerSuite
}

func TestEventTransactionsHandlerSuite(t *testing.T) {
	suite.Run(t, new(EventTransactionsHandlerTestSuite))
}

func eventTransaction(id int64, utorid string) *domain.Transaction {
	eventID := int64(10)
	return &domain.Transaction{ID: id, Type: domain.TransactionEvent, Utorid: utorid, Points: 20, RelatedID: &eventID}
}

func (s *EventTransactionsHandlerTestSuite) TestBroadcast() {
	s.mockAward.EXPECT().
		AwardEventPoints(gomock.Any(), s.organizer, int64(10), service.EventAwardArgs{Amount: 20}).
		Return([]*domain.Transaction{
			eventTransaction(1, "guest001"),
			eventTransaction(2, "guest002"),
			eventTransaction(3, "guest003"),
		}, nil)

	var resp []EventAwardResponse
	status := s.request(http.MethodPost, RouteGroup+"/events/10/transactions", s.organizerToken,
		map[string]any{"type": "event", "amount": 20}, &resp)
	s.Require().Equal(http.StatusCreated, status)
	s.Require().Len(resp, 3)
	s.Equal("guest002", resp[1].Recipient)
	s.Equal(int64(20), resp[1].Awarded)
	s.Equal(int64(10), *resp[1].RelatedID)
}

func (s *EventTransactionsHandlerTestSuite) TestBroadcastWithoutGuests() {
	s.mockAward.EXPECT().AwardEventPoints(gomock.Any(), gomock.Any(), int64(10), gomock.Any()).
		Return([]*domain.Transaction{}, nil)

	var resp []EventAwardResponse
	status := s.request(http.MethodPost, RouteGroup+"/events/10/transactions", s.managerToken,
		map[string]any{"type": "event", "amount": 20}, &resp)
	s.Require().Equal(http.StatusCreated, status)
	s.NotNil(resp)
	s.Empty(resp)
}

func (s *EventTransactionsHandlerTestSuite) TestSingle() {
	utorid := "guest001"
	s.mockAward.EXPECT().
		AwardEventPoints(gomock.Any(), s.manager, int64(10), service.EventAwardArgs{Utorid: &utorid, Amount: 20}).
		Return([]*domain.Transaction{eventTransaction(1, utorid)}, nil)

	var resp EventAwardResponse
	status := s.request(http.MethodPost, RouteGroup+"/events/10/transactions", s.managerToken,
		map[string]any{"type": "event", "amount": 20, "utorid": utorid}, &resp)
	s.Require().Equal(http.StatusCreated, status)
	s.Equal(utorid, resp.Recipient)
}

func (s *EventTransactionsHandlerTestSuite) TestErrors() {
	s.mockAward.EXPECT().AwardEventPoints(gomock.Any(), s.regular, int64(10), gomock.Any()).
		Return(nil, domain.ErrForbidden)
	s.mockAward.EXPECT().AwardEventPoints(gomock.Any(), s.manager, int64(11), gomock.Any()).
		Return(nil, fmt.Errorf("awarding: %w", domain.ErrRecordNotFound))
	s.mockAward.EXPECT().AwardEventPoints(gomock.Any(), s.manager, int64(12), gomock.Any()).
		Return(nil, fmt.Errorf("awarding: %w", domain.ErrEventPointsExhausted))

	body := map[string]any{"type": "event", "amount": 20}
	s.Equal(http.StatusForbidden, s.request(http.MethodPost, RouteGroup+"/events/10/transactions",
		s.regularToken, body, nil))
	s.Equal(http.StatusNotFound, s.request(http.MethodPost, RouteGroup+"/events/11/transactions",
		s.managerToken, body, nil))
	s.Equal(http.StatusBadRequest, s.request(http.MethodPost, RouteGroup+"/events/12/transactions",
		s.managerToken, body, nil))
	s.Equal(http.StatusBadRequest, s.request(http.MethodPost, RouteGroup+"/events/10/transactions",
		s.managerToken, map[string]any{"type": "purchase", "amount": 20}, nil))
}
