package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"shopping-cart/internal/config"
	"shopping-cart/internal/db"
	"shopping-cart/internal/httpserver"
	"shopping-cart/internal/logging"
	cartrepo "shopping-cart/internal/repository/cart"
	sessionrepo "shopping-cart/internal/repository/session"
	cartsvc "shopping-cart/internal/service/cart"
	paymentsvc "shopping-cart/internal/service/payment"

	"go.uber.org/zap"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.New("api")
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	policy, err := config.LoadPolicy(cfg.PolicyFile)
	if err != nil {
		logger.Fatal("load policy", zap.Error(err))
	}

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal("connect to db", zap.Error(err))
	}
	defer dbpool.Close()

	cartService := cartsvc.New(cartrepo.NewPostgres(dbpool), logger.Named("cart"))
	paymentService := paymentsvc.New(policy.PaymentMethods, logger.Named("payment"))

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Sessions: sessionrepo.NewMemory(),
		CartSvc:  cartService,
		Payments: paymentService,
		Seasons:  policy.Seasons,
	}, cfg.CORSAllowOrigins)
	if err != nil {
		logger.Fatal("init server", zap.Error(err))
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped")
	}
}
