package api

import (
	"context"
	"io"
	"time"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/fsdevblog/points-ledger/internal/logger"
	"github.com/fsdevblog/points-ledger/internal/transport/api/mocks"
	"github.com/fsdevblog/points-ledger/internal/transport/api/testutils"
	"github.com/fsdevblog/points-ledger/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// denyLimiter ограничитель, отклоняющий все запросы после allow разрешенных.
type denyLimiter struct {
	allow int
}

func (d *denyLimiter) Allow(_ context.Context, _ string) (bool, error) {
	if d.allow > 0 {
		d.allow--
		return true, nil
	}
	return false, nil
}

type handlerSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	router         *gin.Engine
	mockTxService  *mocks.MockTransactionServicer
	mockAward      *mocks.MockEventAwardServicer
	mockReversal   *mocks.MockReversalServicer
	mockQuery      *mocks.MockQueryServicer
	limiter        *denyLimiter
	jwtSecret      []byte
	regular        domain.Actor
	cashier        domain.Actor
	manager        domain.Actor
	organizer      domain.Actor
	regularToken   string
	cashierToken   string
	managerToken   string
	organizerToken string
}

func (s *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTxService = mocks.NewMockTransactionServicer(s.mockCtrl)
	s.mockAward = mocks.NewMockEventAwardServicer(s.mockCtrl)
	s.mockReversal = mocks.NewMockReversalServicer(s.mockCtrl)
	s.mockQuery = mocks.NewMockQueryServicer(s.mockCtrl)
	s.limiter = &denyLimiter{allow: 100}
	s.jwtSecret = []byte("super secret key")

	router, err := New(RouterArgs{
		Logger:             logger.New(io.Discard),
		TransactionService: s.mockTxService,
		EventAwardService:  s.mockAward,
		ReversalService:    s.mockReversal,
		QueryService:       s.mockQuery,
		RateLimiter:        s.limiter,
		JWTSecretKey:       s.jwtSecret,
	})
	s.Require().NoError(err)
	s.router = router

	s.regular = domain.Actor{ID: 1, Utorid: "regular1", Role: domain.RoleRegular}
	s.cashier = domain.Actor{ID: 2, Utorid: "cashier1", Role: domain.RoleCashier}
	s.manager = domain.Actor{ID: 3, Utorid: "manager1", Role: domain.RoleManager}
	s.organizer = domain.Actor{ID: 4, Utorid: "organiz1", Role: domain.RoleRegular,
		OrganizerOf: map[int64]struct{}{10: {}}}

	s.regularToken = s.token(s.regular)
	s.cashierToken = s.token(s.cashier)
	s.managerToken = s.token(s.manager)
	s.organizerToken = s.token(s.organizer)
}

func (s *handlerSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *handlerSuite) token(actor domain.Actor) string {
	token, err := tokens.GenerateActorJWT(actor, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

// request выполняет запрос и возвращает статус и декодированное тело (если оно есть).
func (s *handlerSuite) request(method, url, token string, body any, out any) int {
	opts := []func(*testutils.RequestOptions){testutils.WithJSON()}
	if token != "" {
		opts = append(opts, testutils.WithBearer(token))
	}

	args := testutils.RequestArgs{Router: s.router, Method: method, URL: url}
	if body != nil {
		reader, err := testutils.JSONBody(body)
		s.Require().NoError(err)
		args.Body = reader
	}

	resp, err := testutils.MakeRequest(args, opts...)
	s.Require().NoError(err)
	if out != nil {
		s.Require().NoError(testutils.DecodeJSON(resp, out))
	} else {
		_ = resp.Body.Close()
	}
	return resp.StatusCode
}

