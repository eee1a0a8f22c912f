package order

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/checkout/internal/domain/customer"
	"github.com/xenking/checkout/internal/domain/product"
)

// --- Mock collaborators ---

// recorder implements every collaborator interface and records emitted
// descriptors in invocation order.
type recorder struct {
	emissions []string

	labelErr    error
	emailErr    error
	activateErr error
}

func (r *recorder) Produce(_ context.Context, p product.Product, message string) (string, error) {
	if r.labelErr != nil {
		return "", r.labelErr
	}
	desc := fmt.Sprintf("generating shipping label for product %s %s", p.Name, message)
	r.emissions = append(r.emissions, desc)
	return desc, nil
}

func (r *recorder) Send(_ context.Context, c *customer.Customer, message string) (string, error) {
	if r.emailErr != nil {
		return "", r.emailErr
	}
	desc := fmt.Sprintf("Send email to %s <%s>: %s", c.Name, c.Email, message)
	r.emissions = append(r.emissions, desc)
	return desc, nil
}

func (r *recorder) ActivateAccount(_ context.Context, c *customer.Customer) (string, error) {
	if r.activateErr != nil {
		return "", r.activateErr
	}
	desc := fmt.Sprintf("Active account of %s", c.Name)
	r.emissions = append(r.emissions, desc)
	return desc, nil
}

func (r *recorder) Apply(c *customer.Customer, amount decimal.Decimal) {
	c.ApplyVoucher(amount)
	r.emissions = append(r.emissions, fmt.Sprintf("voucher %s for %s", amount.String(), c.Name))
}

func (r *recorder) collaborators() Collaborators {
	return Collaborators{
		Labels:      r,
		Emails:      r,
		Memberships: r,
		Vouchers:    r,
	}
}

// --- Helpers ---

func newTestCustomer() *customer.Customer {
	return customer.New("André", "andre@email")
}

func newTestItem(t *testing.T, rec *recorder, p product.Product) (Item, *Order) {
	t.Helper()
	o := New(newTestCustomer())
	item, err := NewItemFactory(o, rec.collaborators()).Create(p)
	require.NoError(t, err)
	o.AddItem(item)
	return item, o
}

// --- Tests ---

func TestPhysicalItem_Process(t *testing.T) {
	rec := &recorder{}
	item, _ := newTestItem(t, rec, product.Product{Name: "Widget", Category: product.CategoryPhysical})

	require.NoError(t, item.Process(context.Background()))
	assert.Equal(t, []string{
		"generating shipping label for product Widget ",
	}, rec.emissions)
}

func TestBookItem_Process(t *testing.T) {
	rec := &recorder{}
	item, _ := newTestItem(t, rec, product.Product{Name: "Awesome book", Category: product.CategoryBook})

	require.NoError(t, item.Process(context.Background()))
	require.Len(t, rec.emissions, 1)
	assert.Equal(t,
		"generating shipping label for product Awesome book Item isento de impostos conforme disposto na Constituição Art. 150, VI, d",
		rec.emissions[0],
	)
}

func TestMembershipItem_Process(t *testing.T) {
	rec := &recorder{}
	item, _ := newTestItem(t, rec, product.Product{Name: "Air and Space Magazine", Category: product.CategoryMembership})

	require.NoError(t, item.Process(context.Background()))
	assert.Equal(t, []string{
		"Active account of André",
		"Send email to André <andre@email>: Sua assinatura foi ativada",
	}, rec.emissions)
}

func TestDigitalItem_Process(t *testing.T) {
	rec := &recorder{}
	item, o := newTestItem(t, rec, product.Product{Name: "Iron Maiden - The Trooper", Category: product.CategoryDigital})

	require.NoError(t, item.Process(context.Background()))
	assert.Equal(t, []string{
		"Send email to André <andre@email>: Sua compra com o item Iron Maiden - The Trooper foi efetuada e você ganhou um voucher de 10 reais",
		"voucher 10 for André",
	}, rec.emissions)

	vouchers := o.Customer.Vouchers()
	require.Len(t, vouchers, 1)
	assert.True(t, decimal.NewFromInt(10).Equal(vouchers[0]))
}

func TestItem_ProcessTwice(t *testing.T) {
	rec := &recorder{}
	item, _ := newTestItem(t, rec, product.Product{Name: "Widget", Category: product.CategoryPhysical})

	require.NoError(t, item.Process(context.Background()))
	require.ErrorIs(t, item.Process(context.Background()), ErrItemProcessed)
	assert.Len(t, rec.emissions, 1, "side effects must not repeat")
}

func TestLine_ProcessUnimplemented(t *testing.T) {
	l := &line{product: product.Product{Name: "Widget"}}
	require.ErrorIs(t, l.Process(context.Background()), ErrProcessUnimplemented)
}

func TestItem_Total(t *testing.T) {
	rec := &recorder{}
	item, _ := newTestItem(t, rec, product.Product{Name: "Widget", Category: product.CategoryPhysical})
	assert.True(t, decimal.NewFromInt(10).Equal(item.Total()))
}
