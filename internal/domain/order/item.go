package order

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/checkout/internal/domain/product"
)

// Sentinel errors for item processing.
var (
	// ErrProcessUnimplemented is returned when Process is invoked on the
	// shared item base instead of a concrete category variant.
	ErrProcessUnimplemented = errors.New("process is not implemented for this item")
	// ErrItemProcessed is returned when an item's Process is invoked a
	// second time. Fulfillment side effects must run at most once per item.
	ErrItemProcessed = errors.New("order item already processed")
)

const (
	// taxExemptionNotice accompanies every book shipping label, as
	// required by the Brazilian constitution for printed books.
	taxExemptionNotice = "Item isento de impostos conforme disposto na Constituição Art. 150, VI, d"

	membershipActivatedMessage = "Sua assinatura foi ativada"
)

// unitTotal is the fixed per-item amount. Real pricing is out of scope;
// every line item contributes the same stub value to the order total.
var unitTotal = decimal.NewFromInt(10)

// voucherAmount is the credit granted for each digital purchase.
var voucherAmount = decimal.NewFromInt(10)

// Item is one line of an order, tied to exactly one product. Process runs
// the category-specific fulfillment action and must be invoked exactly
// once, when the owning order closes.
type Item interface {
	// Product returns the product this line item was created for.
	Product() product.Product
	// Total returns the amount this line item contributes to the order total.
	Total() decimal.Decimal
	// Process executes the category-specific fulfillment action.
	Process(ctx context.Context) error
}

// line carries the state shared by all item variants: a non-owning
// back-reference to the order (for dispatch context such as the customer)
// and the owned product. Its Process makes an un-overridden variant fail
// loudly instead of silently skipping fulfillment.
type line struct {
	order     *Order
	product   product.Product
	processed bool
}

func (l *line) Product() product.Product { return l.product }

func (l *line) Total() decimal.Decimal { return unitTotal }

func (l *line) Process(context.Context) error { return ErrProcessUnimplemented }

// begin marks the item as processed, rejecting repeated invocations.
func (l *line) begin() error {
	if l.processed {
		return ErrItemProcessed
	}
	l.processed = true
	return nil
}

// PhysicalItem fulfills a physical good by generating a shipping label
// for the box.
type PhysicalItem struct {
	line
	labels ShippingLabelGenerator
}

func (i *PhysicalItem) Process(ctx context.Context) error {
	if err := i.begin(); err != nil {
		return err
	}
	if _, err := i.labels.Produce(ctx, i.product, ""); err != nil {
		return errors.Wrap(err, "produce shipping label")
	}
	return nil
}

// BookItem fulfills a printed book by generating a shipping label with
// the tax-exemption notice attached.
type BookItem struct {
	line
	labels ShippingLabelGenerator
}

func (i *BookItem) Process(ctx context.Context) error {
	if err := i.begin(); err != nil {
		return err
	}
	if _, err := i.labels.Produce(ctx, i.product, taxExemptionNotice); err != nil {
		return errors.Wrap(err, "produce shipping label")
	}
	return nil
}

// MembershipItem fulfills a subscription by activating the customer's
// account and then confirming the activation by email.
type MembershipItem struct {
	line
	memberships MembershipService
	emails      EmailService
}

func (i *MembershipItem) Process(ctx context.Context) error {
	if err := i.begin(); err != nil {
		return err
	}
	if _, err := i.memberships.ActivateAccount(ctx, i.order.Customer); err != nil {
		return errors.Wrap(err, "activate account")
	}
	if _, err := i.emails.Send(ctx, i.order.Customer, membershipActivatedMessage); err != nil {
		return errors.Wrap(err, "send activation email")
	}
	return nil
}

// DigitalItem fulfills digital media by emailing the purchase description
// and then granting the customer a voucher credit.
type DigitalItem struct {
	line
	emails   EmailService
	vouchers VoucherService
}

func (i *DigitalItem) Process(ctx context.Context) error {
	if err := i.begin(); err != nil {
		return err
	}
	message := fmt.Sprintf("Sua compra com o item %s foi efetuada e você ganhou um voucher de 10 reais", i.product.Name)
	if _, err := i.emails.Send(ctx, i.order.Customer, message); err != nil {
		return errors.Wrap(err, "send purchase email")
	}
	i.vouchers.Apply(i.order.Customer, voucherAmount)
	return nil
}
