// Package payment simulates running several payment methods against one cart
// at the same time. Every worker stamps the cart's payment status when its
// simulated processing time elapses, so the method that finishes last decides
// the final status.
package payment

import (
	"fmt"
	"sync"
	"time"

	"shopping-cart/internal/domain"
	"shopping-cart/internal/logging"
	"shopping-cart/internal/service/promotion"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Attempt tracks one payment method running against a cart.
type Attempt struct {
	Method domain.PaymentMethod

	mu    sync.Mutex
	state domain.PaymentState
}

func newAttempt(method domain.PaymentMethod) *Attempt {
	return &Attempt{Method: method, state: domain.PaymentPending}
}

func (a *Attempt) State() domain.PaymentState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *Attempt) transition(to domain.PaymentState) {
	a.mu.Lock()
	a.state = to
	a.mu.Unlock()
}

// run sleeps for the method's processing time, then stamps the cart.
func (a *Attempt) run(cart *domain.Cart, logger *zap.Logger) {
	a.transition(domain.PaymentProcessing)
	logger.Debug("processing payment",
		zap.String("method", a.Method.Name),
		zap.Duration("processing_time", a.Method.ProcessingTime),
	)
	time.Sleep(a.Method.ProcessingTime)
	cart.SetPaymentStatus(a.Method.ProcessedStatus())
	a.transition(domain.PaymentCompleted)
	logger.Info("payment processed", zap.String("method", a.Method.Name))
}

// Simulator runs payment methods concurrently against a cart.
type Simulator struct {
	defaults []domain.PaymentMethod
	logger   *zap.Logger
}

// New returns a Simulator whose RunMultiplePayments uses defaults.
func New(defaults []domain.PaymentMethod, logger *zap.Logger) *Simulator {
	return &Simulator{defaults: defaults, logger: logging.OrNop(logger)}
}

// ProcessPayments starts one worker per method and blocks until all of them
// finish. There is no timeout. A nil cart, a nil methods slice or a nil
// method is rejected before any worker starts; an empty slice runs nothing.
func (s *Simulator) ProcessPayments(cart *domain.Cart, methods []*domain.PaymentMethod) ([]*Attempt, error) {
	if cart == nil {
		return nil, fmt.Errorf("process payments: nil cart: %w", domain.ErrInvalidArgument)
	}
	if methods == nil {
		return nil, fmt.Errorf("process payments: nil payment methods: %w", domain.ErrInvalidArgument)
	}
	for i, m := range methods {
		if m == nil {
			return nil, fmt.Errorf("process payments: payment method %d is nil: %w", i, domain.ErrInvalidArgument)
		}
	}

	attempts := make([]*Attempt, 0, len(methods))
	var g errgroup.Group
	for _, m := range methods {
		attempt := newAttempt(*m)
		attempts = append(attempts, attempt)
		g.Go(func() error {
			attempt.run(cart, s.logger)
			return nil
		})
	}
	// Workers never fail; Wait only joins them.
	_ = g.Wait()

	s.logger.Info("payments finished",
		zap.Int("workers", len(attempts)),
		zap.String("payment_status", cart.PaymentStatus()),
	)
	return attempts, nil
}

// MakePayments is an alias for ProcessPayments.
func (s *Simulator) MakePayments(cart *domain.Cart, methods []*domain.PaymentMethod) ([]*Attempt, error) {
	return s.ProcessPayments(cart, methods)
}

// AddPaymentToCart runs a single payment method and waits for it.
func (s *Simulator) AddPaymentToCart(cart *domain.Cart, method *domain.PaymentMethod) (*Attempt, error) {
	if method == nil {
		return nil, fmt.Errorf("add payment: nil payment method: %w", domain.ErrInvalidArgument)
	}
	attempts, err := s.ProcessPayments(cart, []*domain.PaymentMethod{method})
	if err != nil {
		return nil, err
	}
	return attempts[0], nil
}

// RunMultiplePayments runs the simulator's configured methods together.
func (s *Simulator) RunMultiplePayments(cart *domain.Cart) ([]*Attempt, error) {
	methods := make([]*domain.PaymentMethod, 0, len(s.defaults))
	for i := range s.defaults {
		m := s.defaults[i]
		methods = append(methods, &m)
	}
	return s.ProcessPayments(cart, methods)
}

func (s *Simulator) ApplyPromotions(cart *domain.Cart, promotions []domain.Promotion) error {
	if cart == nil {
		return fmt.Errorf("apply promotions: nil cart: %w", domain.ErrInvalidArgument)
	}
	promotion.Apply(cart, promotions)
	return nil
}
