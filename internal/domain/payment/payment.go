package payment

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/checkout/internal/domain/order"
)

// ErrAlreadyPaid is returned when Pay is invoked on a paid payment.
// The unpaid-to-paid transition is one-way; there is no reversal.
var ErrAlreadyPaid = errors.New("payment already made")

// Payment records the authorization and amount for one order. It is
// created unpaid; Pay settles it and cascades into closing the order,
// which triggers fulfillment of every item.
type Payment struct {
	AuthorizationNumber string
	Amount              decimal.Decimal
	Invoice             *Invoice
	Order               *order.Order
	Method              Method

	paidAt *time.Time
}

// New creates an unpaid Payment for the order using the given method.
func New(o *order.Order, m Method) *Payment {
	return &Payment{
		Order:  o,
		Method: m,
	}
}

// ComputeAmount derives the amount due for an order. It is called at the
// moment of payment, never cached beforehand, so the charged amount
// always reflects the order's current items.
func ComputeAmount(o *order.Order) (decimal.Decimal, error) {
	return o.TotalAmount()
}

// Pay settles the payment: it recomputes the amount from the order's
// current total, assigns a unique authorization number, snapshots the
// order's address into a new invoice, marks the payment as paid, and
// closes the order. Close failures propagate to the caller; the payment
// itself is already settled at that point.
func (p *Payment) Pay(ctx context.Context, paidAt time.Time) error {
	if p.paidAt != nil {
		return ErrAlreadyPaid
	}

	amount, err := ComputeAmount(p.Order)
	if err != nil {
		return errors.Wrap(err, "compute amount")
	}

	p.Amount = amount
	p.AuthorizationNumber = uuid.New().String()
	p.Invoice = NewInvoice(p.Order)
	p.paidAt = &paidAt

	return p.Order.Close(ctx, paidAt)
}

// Paid reports whether the payment has been made.
func (p *Payment) Paid() bool {
	return p.paidAt != nil
}

// PaidAt returns when the payment was made, or nil while unpaid.
func (p *Payment) PaidAt() *time.Time {
	return p.paidAt
}
