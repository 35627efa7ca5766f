package main

import (
	"context"
	"flag"

	"shopping-cart/internal/config"
	"shopping-cart/internal/db"
	"shopping-cart/internal/logging"
	"shopping-cart/internal/migrate"

	"go.uber.org/zap"
)

func main() {
	var down bool
	flag.BoolVar(&down, "down", false, "Drop the cart table instead of migrating up")
	flag.Parse()

	cfg := config.FromEnv()
	logger, err := logging.New("migrate")
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal("connect db", zap.Error(err))
	}
	defer pool.Close()

	if down {
		if err := migrate.Reset(ctx, pool); err != nil {
			logger.Fatal("reset migrations", zap.Error(err))
		}
		logger.Info("migrations reverted")
		return
	}

	version, err := migrate.Apply(ctx, pool)
	if err != nil {
		logger.Fatal("apply migrations", zap.Error(err))
	}
	logger.Info("migrations applied", zap.Uint("version", version))
}
