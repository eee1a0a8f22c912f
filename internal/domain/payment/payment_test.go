package payment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/checkout/internal/domain/customer"
	"github.com/xenking/checkout/internal/domain/order"
	"github.com/xenking/checkout/internal/domain/product"
)

// nopItem satisfies order.Item without side effects.
type nopItem struct {
	product   product.Product
	processed int
}

func (i *nopItem) Product() product.Product { return i.product }

func (i *nopItem) Total() decimal.Decimal { return decimal.NewFromInt(10) }

func (i *nopItem) Process(context.Context) error {
	i.processed++
	return nil
}

func newTestOrder(items ...order.Item) *order.Order {
	o := order.New(customer.New("André", "andre@email"))
	for _, item := range items {
		o.AddItem(item)
	}
	return o
}

func TestPay(t *testing.T) {
	item := &nopItem{product: product.Product{Name: "Widget", Category: product.CategoryPhysical}}
	o := newTestOrder(item)
	p := New(o, FetchByHashed("43567890-987654367"))

	require.False(t, p.Paid())
	require.Nil(t, p.PaidAt())

	paidAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	require.NoError(t, p.Pay(context.Background(), paidAt))

	assert.True(t, p.Paid())
	require.NotNil(t, p.PaidAt())
	assert.Equal(t, paidAt, *p.PaidAt())
	assert.NotEmpty(t, p.AuthorizationNumber)
	assert.True(t, decimal.NewFromInt(10).Equal(p.Amount))

	// Paying cascades into closing the order, processing each item once.
	require.NotNil(t, o.ClosedAt())
	assert.Equal(t, paidAt, *o.ClosedAt())
	assert.Equal(t, 1, item.processed)

	// Invoice snapshots the order address for billing and shipping.
	require.NotNil(t, p.Invoice)
	assert.Equal(t, o.Address, p.Invoice.BillingAddress)
	assert.Equal(t, o.Address, p.Invoice.ShippingAddress)
	assert.Same(t, o, p.Invoice.Order)
}

func TestPay_FreshAmount(t *testing.T) {
	o := newTestOrder(&nopItem{product: product.Product{Name: "a"}})
	p := New(o, FetchByHashed("token"))

	// An item added after the payment was created is still charged:
	// the amount is derived from the order at payment time, not cached.
	o.AddItem(&nopItem{product: product.Product{Name: "b"}})

	require.NoError(t, p.Pay(context.Background(), time.Now()))
	assert.True(t, decimal.NewFromInt(20).Equal(p.Amount), "got %s", p.Amount)
}

func TestPay_Twice(t *testing.T) {
	o := newTestOrder(&nopItem{product: product.Product{Name: "a"}})
	p := New(o, FetchByHashed("token"))

	require.NoError(t, p.Pay(context.Background(), time.Now()))
	require.ErrorIs(t, p.Pay(context.Background(), time.Now()), ErrAlreadyPaid)
}

func TestPay_EmptyOrder(t *testing.T) {
	p := New(newTestOrder(), FetchByHashed("token"))

	err := p.Pay(context.Background(), time.Now())
	require.ErrorIs(t, err, order.ErrEmptyOrder)
	assert.False(t, p.Paid())
	assert.Nil(t, p.Invoice)
}

func TestComputeAmount(t *testing.T) {
	o := newTestOrder(
		&nopItem{product: product.Product{Name: "a"}},
		&nopItem{product: product.Product{Name: "b"}},
		&nopItem{product: product.Product{Name: "c"}},
	)

	amount, err := ComputeAmount(o)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(30).Equal(amount))
}

func TestAuthorizationNumberUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 10 {
		p := New(newTestOrder(&nopItem{product: product.Product{Name: "a"}}), FetchByHashed("token"))
		require.NoError(t, p.Pay(context.Background(), time.Now()))
		_, dup := seen[p.AuthorizationNumber]
		require.False(t, dup, "authorization number %q repeated", p.AuthorizationNumber)
		seen[p.AuthorizationNumber] = struct{}{}
	}
}

func TestCreditCard(t *testing.T) {
	card := FetchByHashed("43567890-987654367")
	assert.Equal(t, "credit_card", card.Kind())
	assert.Equal(t, "43567890-987654367", card.Hash())
}
