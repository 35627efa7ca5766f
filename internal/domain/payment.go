package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentState is the lifecycle of a single simulated payment attempt.
type PaymentState string

const (
	PaymentPending    PaymentState = "PENDING"
	PaymentProcessing PaymentState = "PROCESSING"
	PaymentCompleted  PaymentState = "COMPLETED"
)

// PaymentMethod is a named simulated payment channel.
type PaymentMethod struct {
	Name           string        `json:"name" yaml:"name"`
	ProcessingTime time.Duration `json:"processingTime" yaml:"processingTime"`
}

// ProcessedStatus is the status a completed payment stamps on its cart.
func (m PaymentMethod) ProcessedStatus() string {
	return m.Name + " Payment Processed"
}

// Promotion reduces every item price in a cart by DiscountRate.
type Promotion struct {
	Name         string          `json:"name"`
	DiscountRate decimal.Decimal `json:"discountRate"`
}
