package order

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/xenking/checkout/internal/domain/customer"
	"github.com/xenking/checkout/internal/domain/product"
)

// ShippingLabelGenerator produces a shipping label for a product, with an
// optional message printed alongside it. It returns the label descriptor.
type ShippingLabelGenerator interface {
	Produce(ctx context.Context, p product.Product, message string) (string, error)
}

// EmailService delivers a message to a customer and returns the emitted
// email descriptor.
type EmailService interface {
	Send(ctx context.Context, c *customer.Customer, message string) (string, error)
}

// MembershipService activates a customer's membership account and returns
// the emitted activation descriptor.
type MembershipService interface {
	ActivateAccount(ctx context.Context, c *customer.Customer) (string, error)
}

// VoucherService grants a voucher credit to a customer.
type VoucherService interface {
	Apply(c *customer.Customer, amount decimal.Decimal)
}

// Collaborators groups the external services that item fulfillment
// dispatches to. All fields must be non-nil.
type Collaborators struct {
	Labels      ShippingLabelGenerator
	Emails      EmailService
	Memberships MembershipService
	Vouchers    VoucherService
}
