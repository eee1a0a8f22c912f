package fulfillment

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/xenking/checkout/internal/domain/customer"
	"github.com/xenking/checkout/internal/domain/order"
	"github.com/xenking/checkout/internal/domain/product"
)

// Metrics wraps fulfillment collaborators with an OpenTelemetry counter
// of completed actions, attributed by action kind. Failed actions are
// not counted; the error propagates untouched.
type Metrics struct {
	actions metric.Int64Counter
}

// NewMetrics creates fulfillment metrics on the given meter provider.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter("checkout.fulfillment")
	actions, err := meter.Int64Counter("fulfillment.actions",
		metric.WithDescription("Completed fulfillment actions by kind"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create actions counter")
	}
	return &Metrics{actions: actions}, nil
}

func (m *Metrics) count(ctx context.Context, kind string) {
	m.actions.Add(ctx, 1, metric.WithAttributes(attribute.String("action", kind)))
}

// Labels instruments a ShippingLabelGenerator.
func (m *Metrics) Labels(next order.ShippingLabelGenerator) order.ShippingLabelGenerator {
	return &meteredLabels{next: next, m: m}
}

// Emails instruments an EmailService.
func (m *Metrics) Emails(next order.EmailService) order.EmailService {
	return &meteredEmails{next: next, m: m}
}

// Memberships instruments a MembershipService.
func (m *Metrics) Memberships(next order.MembershipService) order.MembershipService {
	return &meteredMemberships{next: next, m: m}
}

// Vouchers instruments a VoucherService.
func (m *Metrics) Vouchers(next order.VoucherService) order.VoucherService {
	return &meteredVouchers{next: next, m: m}
}

type meteredLabels struct {
	next order.ShippingLabelGenerator
	m    *Metrics
}

func (w *meteredLabels) Produce(ctx context.Context, p product.Product, message string) (string, error) {
	desc, err := w.next.Produce(ctx, p, message)
	if err != nil {
		return "", err
	}
	w.m.count(ctx, "shipping_label")
	return desc, nil
}

type meteredEmails struct {
	next order.EmailService
	m    *Metrics
}

func (w *meteredEmails) Send(ctx context.Context, c *customer.Customer, message string) (string, error) {
	desc, err := w.next.Send(ctx, c, message)
	if err != nil {
		return "", err
	}
	w.m.count(ctx, "email")
	return desc, nil
}

type meteredMemberships struct {
	next order.MembershipService
	m    *Metrics
}

func (w *meteredMemberships) ActivateAccount(ctx context.Context, c *customer.Customer) (string, error) {
	desc, err := w.next.ActivateAccount(ctx, c)
	if err != nil {
		return "", err
	}
	w.m.count(ctx, "membership_activation")
	return desc, nil
}

type meteredVouchers struct {
	next order.VoucherService
	m    *Metrics
}

func (w *meteredVouchers) Apply(c *customer.Customer, amount decimal.Decimal) {
	w.next.Apply(c, amount)
	w.m.count(context.Background(), "voucher_grant")
}
