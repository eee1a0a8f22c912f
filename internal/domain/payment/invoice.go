package payment

import (
	"github.com/xenking/checkout/internal/domain/order"
)

// Invoice snapshots the order's address for billing and shipping at the
// moment of payment. It is created once, by Pay, and never mutated.
type Invoice struct {
	BillingAddress  order.Address
	ShippingAddress order.Address
	Order           *order.Order
}

// NewInvoice creates an invoice for the order, using the order's address
// as both the billing and shipping address.
func NewInvoice(o *order.Order) *Invoice {
	return &Invoice{
		BillingAddress:  o.Address,
		ShippingAddress: o.Address,
		Order:           o,
	}
}
