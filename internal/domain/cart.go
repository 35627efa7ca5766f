package domain

import (
	"fmt"
	"sync/atomic"

	"github.com/shopspring/decimal"
)

// Item is one line entry of a cart. UserType records the user type in effect
// when the item was added, which may differ from the owning cart's.
type Item struct {
	ItemID   int             `json:"itemId"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	UserType string          `json:"userType"`
}

// Subtotal returns price * quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the mutable aggregate shared by the cart, discount, promotion and
// payment services. Items keep insertion order and may repeat an ItemID.
//
// TotalPrice is a cached figure written by discount policies; it is never
// read back by CalculateTotalPrice and may be stale.
type Cart struct {
	Items      []Item
	UserType   string
	TotalPrice decimal.Decimal

	paymentStatus atomic.Pointer[string]
}

func NewCart(userType string) *Cart {
	return &Cart{UserType: userType}
}

// CalculateTotalPrice sums price * quantity over all items.
func (c *Cart) CalculateTotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ListItems renders one line per item in cart order.
func (c *Cart) ListItems() []string {
	lines := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, fmt.Sprintf("%s: %d x %s", item.Name, item.Quantity, item.Price.String()))
	}
	return lines
}

// IndexOf returns the position of the first item with the given id.
func (c *Cart) IndexOf(itemID int) (int, bool) {
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			return i, true
		}
	}
	return -1, false
}

// PaymentStatus returns the last stamped payment outcome, or "" if none.
func (c *Cart) PaymentStatus() string {
	if s := c.paymentStatus.Load(); s != nil {
		return *s
	}
	return ""
}

// SetPaymentStatus overwrites the payment outcome. Concurrent callers are not
// ordered: whichever store happens last wins.
func (c *Cart) SetPaymentStatus(status string) {
	c.paymentStatus.Store(&status)
}
