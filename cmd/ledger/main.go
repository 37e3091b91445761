package main

import (
	"context"
	"errors"
	"os"

	"github.com/fsdevblog/points-ledger/internal/app"
	"github.com/fsdevblog/points-ledger/internal/config"
	"github.com/fsdevblog/points-ledger/internal/logger"
)

func main() {
	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout)

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("ledger stopped, graceful shutdown")
			return
		}
		l.WithError(err).Fatal("ledger stopped with error")
	}
}
