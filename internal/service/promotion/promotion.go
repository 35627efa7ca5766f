package promotion

import (
	"shopping-cart/internal/domain"

	"github.com/shopspring/decimal"
)

// Apply reduces every item price by each promotion's rate, compounding in the
// order the promotions are given.
func Apply(cart *domain.Cart, promotions []domain.Promotion) {
	one := decimal.NewFromInt(1)
	for _, promo := range promotions {
		factor := one.Sub(promo.DiscountRate)
		for i := range cart.Items {
			cart.Items[i].Price = cart.Items[i].Price.Mul(factor)
		}
	}
}
