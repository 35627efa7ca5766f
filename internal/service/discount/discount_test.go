package discount

import (
	"testing"

	"shopping-cart/internal/domain"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func cartWith(userType string, items ...domain.Item) *domain.Cart {
	cart := domain.NewCart(userType)
	cart.Items = items
	return cart
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestApplyDiscount(t *testing.T) {
	policy := New(dec("0.1"), dec("500"))

	cart := cartWith("regular", domain.Item{ItemID: 1, Quantity: 10, Price: dec("100")})
	assertDecimal(t, "900", policy.ApplyDiscount(cart))
	assertDecimal(t, "900", cart.TotalPrice)
	assertDecimal(t, "1000", cart.CalculateTotalPrice())
	assertDecimal(t, "100", cart.Items[0].Price)

	small := cartWith("regular", domain.Item{ItemID: 1, Quantity: 4, Price: dec("100")})
	assertDecimal(t, "400", policy.ApplyDiscount(small))
	assertDecimal(t, "400", small.TotalPrice)
}

func TestApplyDiscountThresholdIsInclusive(t *testing.T) {
	policy := New(dec("0.1"), dec("500"))
	cart := cartWith("regular", domain.Item{ItemID: 1, Quantity: 5, Price: dec("100")})
	assertDecimal(t, "450", policy.ApplyDiscount(cart))
}

func TestApplyBulkDiscount(t *testing.T) {
	policy := New(decimal.Zero, decimal.Zero)
	cart := cartWith("regular",
		domain.Item{ItemID: 1, Quantity: 10, Price: dec("100")},
		domain.Item{ItemID: 2, Quantity: 3, Price: dec("100")},
		domain.Item{ItemID: 3, Quantity: 5, Price: dec("50")},
	)

	policy.ApplyBulkDiscount(cart, 5, dec("0.2"))

	assertDecimal(t, "80", cart.Items[0].Price)
	assertDecimal(t, "100", cart.Items[1].Price)
	assertDecimal(t, "40", cart.Items[2].Price)
	if !cart.TotalPrice.IsZero() {
		t.Fatalf("expected TotalPrice untouched, got %s", cart.TotalPrice)
	}
}

func TestApplySeasonalDiscount(t *testing.T) {
	policy := New(decimal.Zero, decimal.Zero)
	cart := cartWith("regular", domain.Item{ItemID: 1, Quantity: 2, Price: dec("100")})

	assertDecimal(t, "160", policy.ApplySeasonalDiscount(cart, "holiday", dec("0.2")))
	assertDecimal(t, "180", policy.ApplySeasonalDiscount(cart, "summer", dec("0.1")))
	assertDecimal(t, "200", policy.ApplySeasonalDiscount(cart, "winter", dec("0.2")))
	assertDecimal(t, "200", policy.ApplySeasonalDiscount(cart, "Holiday", dec("0.2")))
	if !cart.TotalPrice.IsZero() {
		t.Fatalf("expected TotalPrice untouched, got %s", cart.TotalPrice)
	}
	assertDecimal(t, "100", cart.Items[0].Price)
}

func TestApplySeasonalDiscountCustomSeasons(t *testing.T) {
	policy := New(decimal.Zero, decimal.Zero, WithSeasons("winter"))
	cart := cartWith("regular", domain.Item{ItemID: 1, Quantity: 1, Price: dec("100")})

	assertDecimal(t, "50", policy.ApplySeasonalDiscount(cart, "winter", dec("0.5")))
	assertDecimal(t, "100", policy.ApplySeasonalDiscount(cart, "holiday", dec("0.5")))
	if policy.recognizes("summer") {
		t.Fatalf("expected summer to be replaced by the configured seasons")
	}
}

func TestApplyCategoryDiscount(t *testing.T) {
	policy := New(decimal.Zero, decimal.Zero)
	cart := cartWith("regular",
		domain.Item{ItemID: 1, Quantity: 1, Price: dec("100"), Category: "Electronics"},
		domain.Item{ItemID: 2, Quantity: 1, Price: dec("100"), Category: "electronics"},
		domain.Item{ItemID: 3, Quantity: 1, Price: dec("100"), Category: "Books"},
	)

	policy.ApplyCategoryDiscount(cart, "Electronics", dec("0.25"))

	assertDecimal(t, "75", cart.Items[0].Price)
	assertDecimal(t, "100", cart.Items[1].Price)
	assertDecimal(t, "100", cart.Items[2].Price)
}

func TestApplyLoyaltyDiscount(t *testing.T) {
	policy := New(decimal.Zero, decimal.Zero)
	item := domain.Item{ItemID: 1, Quantity: 10, Price: dec("100")}

	assertDecimal(t, "850", policy.ApplyLoyaltyDiscount(cartWith("loyal", item), 3, dec("0.15")))
	assertDecimal(t, "1000", policy.ApplyLoyaltyDiscount(cartWith("regular", item), 3, dec("0.15")))
	assertDecimal(t, "1000", policy.ApplyLoyaltyDiscount(cartWith("loyal", item), 2, dec("0.15")))
}

func TestApplyLoyaltyDiscountUsesCartUserType(t *testing.T) {
	policy := New(decimal.Zero, decimal.Zero)
	cart := cartWith("regular", domain.Item{ItemID: 1, Quantity: 1, Price: dec("100"), UserType: "loyal"})
	assertDecimal(t, "100", policy.ApplyLoyaltyDiscount(cart, 5, dec("0.5")))
}

func TestApplyFlashSaleDiscount(t *testing.T) {
	policy := New(decimal.Zero, decimal.Zero)
	cart := cartWith("regular",
		domain.Item{ItemID: 1, Quantity: 1, Price: dec("100")},
		domain.Item{ItemID: 2, Quantity: 1, Price: dec("100")},
	)

	policy.ApplyFlashSaleDiscount(cart, dec("0.3"), nil)
	assertDecimal(t, "100", cart.Items[0].Price)

	policy.ApplyFlashSaleDiscount(cart, dec("0.3"), []int{2, 99})
	assertDecimal(t, "100", cart.Items[0].Price)
	assertDecimal(t, "70", cart.Items[1].Price)
}

func TestDiscountsCompoundInCallOrder(t *testing.T) {
	policy := New(dec("0.1"), decimal.Zero)
	cart := cartWith("regular", domain.Item{ItemID: 1, Quantity: 10, Price: dec("100"), Category: "Electronics"})

	policy.ApplyCategoryDiscount(cart, "Electronics", dec("0.5"))
	policy.ApplyBulkDiscount(cart, 5, dec("0.2"))

	assertDecimal(t, "40", cart.Items[0].Price)
	assertDecimal(t, "360", policy.ApplyDiscount(cart))
}
