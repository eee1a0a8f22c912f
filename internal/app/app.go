// Package app wires the checkout domain to its collaborators and runs
// the demonstration flow: one customer, one order of mixed product
// categories, one payment fanning out to per-category fulfillment.
package app

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"go.uber.org/zap"

	"github.com/xenking/checkout/internal/catalog"
	"github.com/xenking/checkout/internal/domain/customer"
	"github.com/xenking/checkout/internal/domain/order"
	"github.com/xenking/checkout/internal/domain/payment"
	"github.com/xenking/checkout/internal/domain/product"
	"github.com/xenking/checkout/internal/fulfillment"
)

// Run creates all dependencies and executes the demo checkout. It is the
// single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing", zap.String("customer", cfg.Customer.Name))

	// Fulfillment collaborators, instrumented with action counters.
	metrics, err := fulfillment.NewMetrics(m.MeterProvider())
	if err != nil {
		return errors.Wrap(err, "create fulfillment metrics")
	}
	svc := order.Collaborators{
		Labels:      metrics.Labels(fulfillment.NewLabelGenerator(lg.Named("labels"))),
		Emails:      metrics.Emails(fulfillment.NewMailer(lg.Named("mailer"))),
		Memberships: metrics.Memberships(fulfillment.NewMembershipActivator(lg.Named("membership"))),
		Vouchers:    metrics.Vouchers(fulfillment.NewVoucherGrantor(lg.Named("vouchers"))),
	}

	// Products come from the configured catalog shards when present,
	// otherwise from the built-in demo set.
	products := demoProducts()
	if len(cfg.CatalogPaths) > 0 {
		cat, err := catalog.Load(ctx, cfg.CatalogPaths...)
		if err != nil {
			return errors.Wrap(err, "load catalog")
		}
		lg.Info("Catalog loaded", zap.Int("products", cat.Len()))
		if cat.Len() > 0 {
			products = cat.List()
		}
	}

	buyer := customer.New(cfg.Customer.Name, cfg.Customer.Email)
	method := payment.FetchByHashed(cfg.CardHash)

	pay, err := Checkout(ctx, buyer, svc, products, method)
	if err != nil {
		return errors.Wrap(err, "checkout")
	}

	lg.Info("Order fulfilled",
		zap.String("order_id", pay.Order.ID),
		zap.String("authorization", pay.AuthorizationNumber),
		zap.String("amount", pay.Amount.String()),
		zap.Bool("paid", pay.Paid()),
		zap.Timep("closed_at", pay.Order.ClosedAt()),
		zap.Int("vouchers", len(buyer.Vouchers())),
	)
	return nil
}

// Checkout assembles an order from the products, pays for it with the
// given method, and returns the settled payment. Paying closes the order,
// which runs every item's fulfillment action.
func Checkout(
	ctx context.Context,
	buyer *customer.Customer,
	svc order.Collaborators,
	products []product.Product,
	method payment.Method,
) (*payment.Payment, error) {
	b := order.NewBuilder(buyer, svc)
	for _, p := range products {
		b.AddProduct(p)
	}
	o, err := b.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build order")
	}

	pay := payment.New(o, method)
	if err := pay.Pay(ctx, time.Now()); err != nil {
		return pay, errors.Wrap(err, "pay")
	}
	return pay, nil
}

// demoProducts returns one product of each category for the demo order.
func demoProducts() []product.Product {
	return []product.Product{
		{ID: "p-physical", Name: "Awesome physical product", Category: product.CategoryPhysical},
		{ID: "p-book", Name: "Awesome book", Category: product.CategoryBook},
		{ID: "p-membership", Name: "Air and Space Magazine", Category: product.CategoryMembership},
		{ID: "p-digital", Name: "Iron Maiden - The Trooper", Category: product.CategoryDigital},
	}
}
