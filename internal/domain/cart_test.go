package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCart_CalculateTotalPrice(t *testing.T) {
	cart := NewCart("regular")
	cart.Items = []Item{
		{ItemID: 1, Quantity: 2, Price: decimal.NewFromInt(100)},
		{ItemID: 2, Quantity: 3, Price: decimal.RequireFromString("12.5")},
	}
	cart.TotalPrice = decimal.NewFromInt(1)

	if got := cart.CalculateTotalPrice(); !got.Equal(decimal.RequireFromString("237.5")) {
		t.Fatalf("expected total 237.5, got %s", got)
	}
}

func TestCart_ListItems(t *testing.T) {
	cart := NewCart("regular")
	cart.Items = []Item{
		{ItemID: 1, Quantity: 2, Price: decimal.NewFromInt(100), Name: "Laptop"},
		{ItemID: 2, Quantity: 1, Price: decimal.RequireFromString("9.99"), Name: "Mouse"},
	}

	lines := cart.ListItems()
	want := []string{"Laptop: 2 x 100", "Mouse: 1 x 9.99"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %q", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
	if lines := NewCart("regular").ListItems(); len(lines) != 0 {
		t.Fatalf("expected no lines for empty cart, got %q", lines)
	}
}

func TestCart_IndexOfReturnsFirstMatch(t *testing.T) {
	cart := NewCart("regular")
	cart.Items = []Item{{ItemID: 7}, {ItemID: 3}, {ItemID: 3}}

	idx, ok := cart.IndexOf(3)
	if !ok || idx != 1 {
		t.Fatalf("expected index 1, got %d (found=%v)", idx, ok)
	}
	if _, ok := cart.IndexOf(42); ok {
		t.Fatalf("expected item 42 to be absent")
	}
}

func TestCart_PaymentStatus(t *testing.T) {
	cart := NewCart("regular")
	if got := cart.PaymentStatus(); got != "" {
		t.Fatalf("expected empty status, got %q", got)
	}

	cart.SetPaymentStatus(PaymentMethod{Name: "Card"}.ProcessedStatus())
	if got := cart.PaymentStatus(); got != "Card Payment Processed" {
		t.Fatalf("unexpected status %q", got)
	}
}
