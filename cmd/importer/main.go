package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"shopping-cart/internal/config"
	"shopping-cart/internal/db"
	"shopping-cart/internal/domain"
	"shopping-cart/internal/importer"
	"shopping-cart/internal/logging"
	cartrepo "shopping-cart/internal/repository/cart"
	cartsvc "shopping-cart/internal/service/cart"

	"go.uber.org/zap"
)

func main() {
	var (
		filePath string
		userType string
	)
	flag.StringVar(&filePath, "file", "", "Path to a cart items CSV (item_id,quantity,price,name,category,user_type)")
	flag.StringVar(&userType, "user-type", "regular", "User type of the cart the items are added to")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger, err := logging.New("importer")
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()
	sqlDB, err := db.OpenSQL(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal("connect db", zap.Error(err))
	}
	defer sqlDB.Close()

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatal("open file", zap.Error(err))
	}
	defer f.Close()

	cart := domain.NewCart(userType)
	imp := importer.NewCSVImporter(f, cartsvc.New(cartrepo.NewSQL(sqlDB), logger), cart)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatal("import failed", zap.Int("imported", count), zap.Error(err))
	}

	fmt.Printf("Imported %d rows (%d items, total %s) in %s\n",
		count, len(cart.Items), cart.CalculateTotalPrice().String(), time.Since(start).Truncate(time.Millisecond))
}
