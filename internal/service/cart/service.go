package cart

import (
	"context"
	"fmt"

	"shopping-cart/internal/domain"
	"shopping-cart/internal/logging"
	cartrepo "shopping-cart/internal/repository/cart"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service mutates in-memory carts and mirrors each mutation to the gateway.
// A gateway failure is returned after the in-memory change has been applied;
// nothing is rolled back.
type Service struct {
	gateway cartrepo.Gateway
	logger  *zap.Logger
}

func New(gateway cartrepo.Gateway, logger *zap.Logger) *Service {
	return &Service{gateway: gateway, logger: logging.OrNop(logger)}
}

// AddItem appends item to the cart. A zero quantity is a no-op.
func (s *Service) AddItem(ctx context.Context, cart *domain.Cart, item domain.Item) error {
	if cart == nil {
		return fmt.Errorf("add item: nil cart: %w", domain.ErrInvalidArgument)
	}
	if item.Quantity == 0 {
		s.logger.Debug("skipping zero-quantity item", zap.Int("item_id", item.ItemID))
		return nil
	}
	cart.Items = append(cart.Items, item)
	s.logger.Info("adding item",
		zap.Int("item_id", item.ItemID),
		zap.Int("quantity", item.Quantity),
		zap.String("price", item.Price.String()),
	)
	return s.exec(ctx, insertCommand(item))
}

// RemoveItem drops the first item with itemID. The delete command is issued
// whether or not an item matched.
func (s *Service) RemoveItem(ctx context.Context, cart *domain.Cart, itemID int) error {
	if cart == nil {
		return fmt.Errorf("remove item: nil cart: %w", domain.ErrInvalidArgument)
	}
	if idx, ok := cart.IndexOf(itemID); ok {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	}
	s.logger.Info("removing item", zap.Int("item_id", itemID))
	return s.exec(ctx, deleteItemCommand(itemID))
}

// UpdateItemQuantity sets the quantity of the first item with itemID. Unknown
// ids are ignored without touching the gateway.
func (s *Service) UpdateItemQuantity(ctx context.Context, cart *domain.Cart, itemID, quantity int) error {
	if cart == nil {
		return fmt.Errorf("update quantity: nil cart: %w", domain.ErrInvalidArgument)
	}
	idx, ok := cart.IndexOf(itemID)
	if !ok {
		s.logger.Debug("update for unknown item ignored", zap.Int("item_id", itemID))
		return nil
	}
	cart.Items[idx].Quantity = quantity
	s.logger.Info("updating quantity", zap.Int("item_id", itemID), zap.Int("new_quantity", quantity))
	return s.exec(ctx, updateQuantityCommand(itemID, quantity))
}

// EmptyCart clears every item and always issues the delete-all command.
func (s *Service) EmptyCart(ctx context.Context, cart *domain.Cart) error {
	if cart == nil {
		return fmt.Errorf("empty cart: nil cart: %w", domain.ErrInvalidArgument)
	}
	cart.Items = nil
	s.logger.Info("emptying cart")
	return s.exec(ctx, emptyCommand)
}

func (s *Service) CalculateTotalPrice(cart *domain.Cart) decimal.Decimal {
	return cart.CalculateTotalPrice()
}

func (s *Service) ListItems(cart *domain.Cart) []string {
	return cart.ListItems()
}

func (s *Service) exec(ctx context.Context, command string) error {
	if err := s.gateway.Execute(ctx, command); err != nil {
		s.logger.Error("cart command failed", zap.String("command", command), zap.Error(err))
		return err
	}
	return nil
}
