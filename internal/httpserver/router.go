package httpserver

import (
	"context"
	"errors"
	"time"

	"shopping-cart/internal/domain"
	"shopping-cart/internal/logging"
	sessionrepo "shopping-cart/internal/repository/session"
	"shopping-cart/internal/service/payment"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type cartService interface {
	AddItem(ctx context.Context, cart *domain.Cart, item domain.Item) error
	RemoveItem(ctx context.Context, cart *domain.Cart, itemID int) error
	UpdateItemQuantity(ctx context.Context, cart *domain.Cart, itemID, quantity int) error
	EmptyCart(ctx context.Context, cart *domain.Cart) error
}

type paymentService interface {
	ProcessPayments(cart *domain.Cart, methods []*domain.PaymentMethod) ([]*payment.Attempt, error)
	RunMultiplePayments(cart *domain.Cart) ([]*payment.Attempt, error)
	ApplyPromotions(cart *domain.Cart, promotions []domain.Promotion) error
}

// Deps carries the services the handlers call.
type Deps struct {
	Sessions sessionrepo.Repository
	CartSvc  cartService
	Payments paymentService
	// Seasons configures the seasonal discount; nil keeps its defaults.
	Seasons []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *zap.Logger, db Pinger, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	if deps.Sessions == nil || deps.CartSvc == nil || deps.Payments == nil {
		return nil, errors.New("httpserver: sessions, cart and payment services are required")
	}
	logger = logging.OrNop(logger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())
	if len(corsOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: corsOrigins,
			AllowMethods: []string{"GET", "POST", "PATCH", "DELETE"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &cartHandlers{deps: deps, logger: logger}
	carts := router.Group("/carts")
	carts.POST("", h.create)
	carts.GET("/:cartId", h.withSession(h.get))
	carts.DELETE("/:cartId", h.remove)
	carts.POST("/:cartId/items", h.withSession(h.addItem))
	carts.PATCH("/:cartId/items/:itemId", h.withSession(h.updateQuantity))
	carts.DELETE("/:cartId/items/:itemId", h.withSession(h.removeItem))
	carts.DELETE("/:cartId/items", h.withSession(h.empty))
	carts.POST("/:cartId/discounts", h.withSession(h.applyDiscount))
	carts.POST("/:cartId/promotions", h.withSession(h.applyPromotions))
	carts.POST("/:cartId/payments", h.withSession(h.pay))

	return router, nil
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
