// Package discount holds the cart discount policies. Each method is applied
// independently against whatever state the cart is in; calling several in a
// row compounds them in call order.
package discount

import (
	"shopping-cart/internal/domain"

	"github.com/shopspring/decimal"
)

// DefaultSeasons are the season names recognized when none are configured.
var DefaultSeasons = []string{"holiday", "summer"}

// LoyalUserType is the cart user type eligible for loyalty discounts.
const LoyalUserType = "loyal"

// Discount is an immutable policy configuration. Rates are fractions of one;
// they are not range checked.
type Discount struct {
	Rate              decimal.Decimal
	MinPurchaseAmount decimal.Decimal

	seasons map[string]struct{}
}

type Option func(*Discount)

// WithSeasons replaces the recognized season set. Matching is case-sensitive.
func WithSeasons(seasons ...string) Option {
	return func(d *Discount) {
		d.seasons = make(map[string]struct{}, len(seasons))
		for _, s := range seasons {
			d.seasons[s] = struct{}{}
		}
	}
}

func New(rate, minPurchaseAmount decimal.Decimal, opts ...Option) *Discount {
	d := &Discount{Rate: rate, MinPurchaseAmount: minPurchaseAmount}
	WithSeasons(DefaultSeasons...)(d)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ApplyDiscount stores the discounted total on cart.TotalPrice when the
// calculated total reaches MinPurchaseAmount (inclusive), and the plain total
// otherwise. Item prices are left alone.
func (d *Discount) ApplyDiscount(cart *domain.Cart) decimal.Decimal {
	total := cart.CalculateTotalPrice()
	if total.GreaterThanOrEqual(d.MinPurchaseAmount) {
		cart.TotalPrice = reduce(total, d.Rate)
	} else {
		cart.TotalPrice = total
	}
	return cart.TotalPrice
}

// ApplyBulkDiscount reduces the unit price of every item with at least
// bulkQuantity units.
func (d *Discount) ApplyBulkDiscount(cart *domain.Cart, bulkQuantity int, rate decimal.Decimal) {
	for i := range cart.Items {
		if cart.Items[i].Quantity >= bulkQuantity {
			cart.Items[i].Price = reduce(cart.Items[i].Price, rate)
		}
	}
}

// ApplySeasonalDiscount returns the discounted total for a recognized season
// and the plain total otherwise.
func (d *Discount) ApplySeasonalDiscount(cart *domain.Cart, season string, rate decimal.Decimal) decimal.Decimal {
	total := cart.CalculateTotalPrice()
	if !d.recognizes(season) {
		return total
	}
	return reduce(total, rate)
}

func (d *Discount) ApplyCategoryDiscount(cart *domain.Cart, category string, rate decimal.Decimal) {
	for i := range cart.Items {
		if cart.Items[i].Category == category {
			cart.Items[i].Price = reduce(cart.Items[i].Price, rate)
		}
	}
}

// ApplyLoyaltyDiscount returns the discounted total when the cart belongs to a
// loyal user of more than two years, and the plain total otherwise.
func (d *Discount) ApplyLoyaltyDiscount(cart *domain.Cart, loyaltyYears int, rate decimal.Decimal) decimal.Decimal {
	total := cart.CalculateTotalPrice()
	if cart.UserType != LoyalUserType || loyaltyYears <= 2 {
		return total
	}
	return reduce(total, rate)
}

// ApplyFlashSaleDiscount reduces the price of every item listed in itemsOnSale.
func (d *Discount) ApplyFlashSaleDiscount(cart *domain.Cart, rate decimal.Decimal, itemsOnSale []int) {
	if len(itemsOnSale) == 0 {
		return
	}
	onSale := make(map[int]struct{}, len(itemsOnSale))
	for _, id := range itemsOnSale {
		onSale[id] = struct{}{}
	}
	for i := range cart.Items {
		if _, ok := onSale[cart.Items[i].ItemID]; ok {
			cart.Items[i].Price = reduce(cart.Items[i].Price, rate)
		}
	}
}

func (d *Discount) recognizes(season string) bool {
	_, ok := d.seasons[season]
	return ok
}

func reduce(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(1).Sub(rate))
}
