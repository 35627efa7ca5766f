package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"shopping-cart/internal/domain"
	sessionrepo "shopping-cart/internal/repository/session"
	"shopping-cart/internal/service/discount"
	"shopping-cart/internal/service/payment"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type cartHandlers struct {
	deps   Deps
	logger *zap.Logger
}

type createCartRequest struct {
	UserType string `json:"userType"`
}

type addItemRequest struct {
	ItemID   int             `json:"itemId"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	UserType string          `json:"userType"`
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

type discountRequest struct {
	Type              string           `json:"type"`
	Rate              decimal.Decimal  `json:"rate"`
	MinPurchaseAmount *decimal.Decimal `json:"minPurchaseAmount"`
	BulkQuantity      int              `json:"bulkQuantity"`
	Season            string           `json:"season"`
	Category          string           `json:"category"`
	LoyaltyYears      int              `json:"loyaltyYears"`
	ItemIDs           []int            `json:"itemIds"`
}

type promotionsRequest struct {
	Promotions []domain.Promotion `json:"promotions"`
}

type paymentMethodRequest struct {
	Name             string `json:"name"`
	ProcessingTimeMs int64  `json:"processingTimeMs"`
}

type paymentsRequest struct {
	Methods []paymentMethodRequest `json:"methods"`
}

type cartResponse struct {
	ID              string          `json:"id"`
	UserType        string          `json:"userType"`
	Items           []domain.Item   `json:"items"`
	Lines           []string        `json:"lines"`
	CalculatedTotal decimal.Decimal `json:"calculatedTotal"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	PaymentStatus   string          `json:"paymentStatus,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type attemptResponse struct {
	Method string              `json:"method"`
	State  domain.PaymentState `json:"state"`
}

func toCartResponse(s *sessionrepo.Session) cartResponse {
	items := s.Cart.Items
	if items == nil {
		items = []domain.Item{}
	}
	return cartResponse{
		ID:              s.ID,
		UserType:        s.Cart.UserType,
		Items:           items,
		Lines:           s.Cart.ListItems(),
		CalculatedTotal: s.Cart.CalculateTotalPrice(),
		TotalPrice:      s.Cart.TotalPrice,
		PaymentStatus:   s.Cart.PaymentStatus(),
		CreatedAt:       s.CreatedAt,
	}
}

// withSession resolves :cartId and holds the session lock for the handler.
func (h *cartHandlers) withSession(fn func(*gin.Context, *sessionrepo.Session)) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := h.deps.Sessions.Get(c.Request.Context(), c.Param("cartId"))
		if err != nil {
			h.writeError(c, err)
			return
		}
		s.Lock()
		defer s.Unlock()
		fn(c, s)
	}
}

func (h *cartHandlers) create(c *gin.Context) {
	var req createCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if strings.TrimSpace(req.UserType) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userType required"})
		return
	}
	s, err := h.deps.Sessions.Create(c.Request.Context(), req.UserType)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCartResponse(s))
}

func (h *cartHandlers) get(c *gin.Context, s *sessionrepo.Session) {
	c.JSON(http.StatusOK, toCartResponse(s))
}

func (h *cartHandlers) remove(c *gin.Context) {
	if err := h.deps.Sessions.Delete(c.Request.Context(), c.Param("cartId")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *cartHandlers) addItem(c *gin.Context, s *sessionrepo.Session) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if req.Quantity < 0 || req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity and price must not be negative"})
		return
	}
	userType := req.UserType
	if userType == "" {
		userType = s.Cart.UserType
	}
	item := domain.Item{
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
		Price:    req.Price,
		Name:     req.Name,
		Category: req.Category,
		UserType: userType,
	}
	if err := h.deps.CartSvc.AddItem(c.Request.Context(), s.Cart, item); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(s))
}

func (h *cartHandlers) updateQuantity(c *gin.Context, s *sessionrepo.Session) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
		return
	}
	if *req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must not be negative"})
		return
	}
	if err := h.deps.CartSvc.UpdateItemQuantity(c.Request.Context(), s.Cart, itemID, *req.Quantity); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(s))
}

func (h *cartHandlers) removeItem(c *gin.Context, s *sessionrepo.Session) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}
	if err := h.deps.CartSvc.RemoveItem(c.Request.Context(), s.Cart, itemID); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(s))
}

func (h *cartHandlers) empty(c *gin.Context, s *sessionrepo.Session) {
	if err := h.deps.CartSvc.EmptyCart(c.Request.Context(), s.Cart); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(s))
}

func (h *cartHandlers) applyDiscount(c *gin.Context, s *sessionrepo.Session) {
	var req discountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	var opts []discount.Option
	if h.deps.Seasons != nil {
		opts = append(opts, discount.WithSeasons(h.deps.Seasons...))
	}
	policy := discount.New(req.Rate, decimalOrZero(req.MinPurchaseAmount), opts...)

	var result *decimal.Decimal
	switch strings.ToLower(strings.TrimSpace(req.Type)) {
	case "total":
		v := policy.ApplyDiscount(s.Cart)
		result = &v
	case "bulk":
		policy.ApplyBulkDiscount(s.Cart, req.BulkQuantity, req.Rate)
	case "seasonal":
		v := policy.ApplySeasonalDiscount(s.Cart, req.Season, req.Rate)
		result = &v
	case "category":
		policy.ApplyCategoryDiscount(s.Cart, req.Category, req.Rate)
	case "loyalty":
		v := policy.ApplyLoyaltyDiscount(s.Cart, req.LoyaltyYears, req.Rate)
		result = &v
	case "flash-sale":
		policy.ApplyFlashSaleDiscount(s.Cart, req.Rate, req.ItemIDs)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported discount type"})
		return
	}

	resp := gin.H{"cart": toCartResponse(s)}
	if result != nil {
		resp["result"] = *result
	}
	c.JSON(http.StatusOK, resp)
}

func (h *cartHandlers) applyPromotions(c *gin.Context, s *sessionrepo.Session) {
	var req promotionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := h.deps.Payments.ApplyPromotions(s.Cart, req.Promotions); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(s))
}

func (h *cartHandlers) pay(c *gin.Context, s *sessionrepo.Session) {
	var req paymentsRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
	}

	var (
		attempts []*payment.Attempt
		err      error
	)
	// An absent list runs the configured defaults; an explicit empty list starts no workers.
	if req.Methods == nil {
		attempts, err = h.deps.Payments.RunMultiplePayments(s.Cart)
	} else {
		methods := make([]*domain.PaymentMethod, 0, len(req.Methods))
		for _, m := range req.Methods {
			if strings.TrimSpace(m.Name) == "" || m.ProcessingTimeMs < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "payment methods need a name and a non-negative processing time"})
				return
			}
			methods = append(methods, &domain.PaymentMethod{
				Name:           m.Name,
				ProcessingTime: time.Duration(m.ProcessingTimeMs) * time.Millisecond,
			})
		}
		attempts, err = h.deps.Payments.ProcessPayments(s.Cart, methods)
	}
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]attemptResponse, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, attemptResponse{Method: a.Method.Name, State: a.State()})
	}
	c.JSON(http.StatusOK, gin.H{"cart": toCartResponse(s), "attempts": out})
}

func itemIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId must be an integer"})
		return 0, false
	}
	return id, true
}

func (h *cartHandlers) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("request failed", zap.String("route", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
