// Package fulfillment provides the collaborator services that order items
// dispatch to when an order closes: shipping labels, email, membership
// activation, and voucher grants. Each implementation emits the action
// descriptor through structured logging; delivery transports (printers,
// SMTP, account storage) live behind these seams and are out of scope.
package fulfillment

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xenking/checkout/internal/domain/customer"
	"github.com/xenking/checkout/internal/domain/order"
	"github.com/xenking/checkout/internal/domain/product"
)

// Compile-time checks ensuring each service satisfies its order-side interface.
var (
	_ order.ShippingLabelGenerator = (*LabelGenerator)(nil)
	_ order.EmailService           = (*Mailer)(nil)
	_ order.MembershipService      = (*MembershipActivator)(nil)
	_ order.VoucherService         = (*VoucherGrantor)(nil)
)

// LabelGenerator emits shipping label descriptors for boxed products.
type LabelGenerator struct {
	lg *zap.Logger
}

// NewLabelGenerator creates a LabelGenerator logging through lg.
func NewLabelGenerator(lg *zap.Logger) *LabelGenerator {
	return &LabelGenerator{lg: lg}
}

// Produce emits the label descriptor for the product. The message is
// printed after the product name even when empty, so the descriptor
// keeps its trailing space for plain labels.
func (g *LabelGenerator) Produce(_ context.Context, p product.Product, message string) (string, error) {
	desc := fmt.Sprintf("generating shipping label for product %s %s", p.Name, message)
	g.lg.Info("shipping label produced",
		zap.String("product", p.Name),
		zap.String("descriptor", desc),
	)
	return desc, nil
}

// Mailer emits email descriptors addressed to customers.
type Mailer struct {
	lg *zap.Logger
}

// NewMailer creates a Mailer logging through lg.
func NewMailer(lg *zap.Logger) *Mailer {
	return &Mailer{lg: lg}
}

// Send emits the email descriptor for the customer and message.
func (m *Mailer) Send(_ context.Context, c *customer.Customer, message string) (string, error) {
	desc := fmt.Sprintf("Send email to %s <%s>: %s", c.Name, c.Email, message)
	m.lg.Info("email sent",
		zap.String("recipient", c.Email),
		zap.String("descriptor", desc),
	)
	return desc, nil
}

// MembershipActivator activates customer membership accounts.
type MembershipActivator struct {
	lg *zap.Logger
}

// NewMembershipActivator creates a MembershipActivator logging through lg.
func NewMembershipActivator(lg *zap.Logger) *MembershipActivator {
	return &MembershipActivator{lg: lg}
}

// ActivateAccount emits the activation descriptor for the customer.
func (a *MembershipActivator) ActivateAccount(_ context.Context, c *customer.Customer) (string, error) {
	desc := fmt.Sprintf("Active account of %s", c.Name)
	a.lg.Info("membership activated",
		zap.String("customer", c.Name),
		zap.String("descriptor", desc),
	)
	return desc, nil
}

// VoucherGrantor appends voucher credits to customers.
type VoucherGrantor struct {
	lg *zap.Logger
}

// NewVoucherGrantor creates a VoucherGrantor logging through lg.
func NewVoucherGrantor(lg *zap.Logger) *VoucherGrantor {
	return &VoucherGrantor{lg: lg}
}

// Apply appends the credit to the customer's voucher list.
func (v *VoucherGrantor) Apply(c *customer.Customer, amount decimal.Decimal) {
	c.ApplyVoucher(amount)
	v.lg.Info("voucher granted",
		zap.String("customer", c.Name),
		zap.String("amount", amount.String()),
	)
}
