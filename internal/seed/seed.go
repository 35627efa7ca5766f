package seed

import (
	"context"
	"fmt"

	"shopping-cart/internal/domain"

	"github.com/shopspring/decimal"
)

// ItemAdder is the part of the cart service seeding needs.
type ItemAdder interface {
	AddItem(ctx context.Context, cart *domain.Cart, item domain.Item) error
}

// DemoItems are the lines written by Apply.
func DemoItems(userType string) []domain.Item {
	return []domain.Item{
		{ItemID: 1, Quantity: 1, Price: decimal.RequireFromString("999.99"), Name: "Demo Laptop", Category: "Electronics", UserType: userType},
		{ItemID: 2, Quantity: 6, Price: decimal.RequireFromString("19.99"), Name: "Demo T-Shirt", Category: "Clothing", UserType: userType},
		{ItemID: 3, Quantity: 2, Price: decimal.RequireFromString("12.99"), Name: "Demo Mug", Category: "Kitchen", UserType: userType},
	}
}

// Apply fills a fresh cart with demo items for manual testing. Every item is
// written through the cart service, so each one issues an insert command.
func Apply(ctx context.Context, adder ItemAdder, userType string) (*domain.Cart, error) {
	cart := domain.NewCart(userType)
	for _, item := range DemoItems(userType) {
		if err := adder.AddItem(ctx, cart, item); err != nil {
			return cart, fmt.Errorf("add demo item %d: %w", item.ItemID, err)
		}
	}
	return cart, nil
}
