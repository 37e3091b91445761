package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fsdevblog/points-ledger/internal/config"
	"github.com/fsdevblog/points-ledger/internal/ratelimit"
	"github.com/fsdevblog/points-ledger/internal/repository/pgrepo"
	"github.com/fsdevblog/points-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/points-ledger/internal/service"
	"github.com/fsdevblog/points-ledger/internal/transport/api"
	"github.com/fsdevblog/points-ledger/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// суммы в JSON отдаем числами, а не строками
	decimal.MarshalJSONWithoutQuotes = true

	a.Logger.Infof("Starting app with config: %s", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, a.Logger)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	routerArgs := api.RouterArgs{
		Logger:             a.Logger,
		TransactionService: services.TransactionService,
		EventAwardService:  services.EventAwardService,
		ReversalService:    services.ReversalService,
		QueryService:       services.QueryService,
		JWTSecretKey:       []byte(a.Config.JWTSecret),
	}

	if a.Config.RedisAddr != "" {
		redisClient, redisErr := ratelimit.Connect(notifyCtx, a.Config.RedisAddr, a.Config.RedisPassword)
		if redisErr != nil {
			return fmt.Errorf("app run: %s", redisErr.Error())
		}
		defer redisClient.Close()

		limiter, limiterErr := ratelimit.New(
			redisClient,
			a.Config.RateLimitBurst,
			a.Config.RateLimitPerMinute,
			ratelimit.WithKeyPrefix(a.Config.RateLimitKeyPrefix),
		)
		if limiterErr != nil {
			return fmt.Errorf("app run: %s", limiterErr.Error())
		}
		routerArgs.RateLimiter = limiter
	} else {
		a.Logger.Warn("redis address is not set, rate limiting disabled")
	}

	router, routerErr := api.New(routerArgs)
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	// списание и начисление баллов идут через условные UPDATE, read committed достаточно
	unitOfWork := uow.NewUnitOfWork(conn, uow.WithIsoLevel(pgx.ReadCommitted))

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.TransactionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewTransactionRepository(dbtx)
		},
		repoargs.PromotionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPromotionRepository(dbtx)
		},
		repoargs.EventRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewEventRepository(dbtx)
		},
	}

	for name, fn := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), fn); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
