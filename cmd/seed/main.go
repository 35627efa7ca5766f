package main

import (
	"context"
	"flag"

	"shopping-cart/internal/config"
	"shopping-cart/internal/db"
	"shopping-cart/internal/logging"
	cartrepo "shopping-cart/internal/repository/cart"
	"shopping-cart/internal/seed"
	cartsvc "shopping-cart/internal/service/cart"

	"go.uber.org/zap"
)

func main() {
	var userType string
	flag.StringVar(&userType, "user-type", "regular", "User type of the demo cart")
	flag.Parse()

	cfg := config.FromEnv()
	logger, err := logging.New("seed")
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

	cart, err := seed.Apply(ctx, cartsvc.New(cartrepo.NewPostgres(pool), logger), userType)
	if err != nil {
		logger.Fatal("seed apply", zap.Error(err))
	}

	logger.Info("seed applied",
		zap.Int("items", len(cart.Items)),
		zap.String("total", cart.CalculateTotalPrice().String()),
	)
}
