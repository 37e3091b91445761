package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/fsdevblog/points-ledger/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	TransactionIDParam = "transactionId"
	UserIDParam        = "userId"
	EventIDParam       = "eventId"
)

const (
	RouteGroup                 = "/api"
	TransactionsRoute          = "/transactions"
	TransactionRoute           = "/transactions/:" + TransactionIDParam
	TransactionSuspiciousRoute = "/transactions/:" + TransactionIDParam + "/suspicious"
	TransactionProcessedRoute  = "/transactions/:" + TransactionIDParam + "/processed"
	UserTransactionsRoute      = "/users/:" + UserIDParam + "/transactions"
	MyTransactionsRoute        = "/users/me/transactions"
	EventTransactionsRoute     = "/events/:" + EventIDParam + "/transactions"
)

type RouterArgs struct {
	Logger             *logrus.Logger
	TransactionService TransactionServicer
	EventAwardService  EventAwardServicer
	ReversalService    ReversalServicer
	QueryService       QueryServicer
	// RateLimiter ограничивает роуты, создающие транзакции. nil - без ограничений.
	RateLimiter  middlewares.Limiter
	JWTSecretKey []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	transactionsHandler := NewTransactionsHandler(args.TransactionService, args.ReversalService, args.QueryService)
	userTransactionsHandler := NewUserTransactionsHandler(args.TransactionService, args.QueryService)
	eventTransactionsHandler := NewEventTransactionsHandler(args.EventAwardService)

	// все роуты группы требуют авторизованного пользователя.
	api := r.Group(RouteGroup, middlewares.AuthRequired(args.JWTSecretKey))

	limited := []gin.HandlerFunc{}
	if args.RateLimiter != nil {
		l := args.Logger
		if l == nil {
			l = logrus.StandardLogger()
		}
		limited = append(limited, middlewares.RateLimit(args.RateLimiter, l))
	}
	withLimit := func(h ...gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, limited...), h...)
	}

	cashier := middlewares.RequireRole(domain.RoleCashier)
	manager := middlewares.RequireRole(domain.RoleManager)

	api.POST(TransactionsRoute, withLimit(cashier, transactionsHandler.Create)...)
	api.GET(TransactionsRoute, manager, transactionsHandler.Index)
	api.GET(TransactionRoute, manager, transactionsHandler.Show)
	api.PATCH(TransactionSuspiciousRoute, manager, transactionsHandler.SetSuspicious)
	api.PATCH(TransactionProcessedRoute, cashier, transactionsHandler.Process)

	api.POST(MyTransactionsRoute, withLimit(userTransactionsHandler.Redeem)...)
	api.GET(MyTransactionsRoute, userTransactionsHandler.Index)
	api.POST(UserTransactionsRoute, withLimit(userTransactionsHandler.Transfer)...)

	api.POST(EventTransactionsRoute, withLimit(eventTransactionsHandler.Create)...)
	return r, nil
}
