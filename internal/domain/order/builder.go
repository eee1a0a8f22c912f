package order

import (
	"github.com/go-faster/errors"

	"github.com/xenking/checkout/internal/domain/customer"
	"github.com/xenking/checkout/internal/domain/product"
)

// Builder accumulates products into an Order, constructing the correct
// item variant for each via the factory. Calls chain fluently; the first
// construction error is held and reported by Build.
type Builder struct {
	order   *Order
	factory *ItemFactory
	err     error
}

// NewBuilder creates a Builder for a fresh order owned by the given
// customer, dispatching fulfillment to the given collaborators.
func NewBuilder(c *customer.Customer, svc Collaborators, opts ...Option) *Builder {
	o := New(c, opts...)
	return &Builder{
		order:   o,
		factory: NewItemFactory(o, svc),
	}
}

// AddProduct appends an item for the product to the order under
// construction and returns the builder for chaining. After a failure,
// subsequent calls are no-ops and Build reports the first error.
func (b *Builder) AddProduct(p product.Product) *Builder {
	if b.err != nil {
		return b
	}
	item, err := b.factory.Create(p)
	if err != nil {
		b.err = errors.Wrapf(err, "add product %q", p.Name)
		return b
	}
	b.order.AddItem(item)
	return b
}

// Build returns the accumulated order, or the first error encountered
// while adding products.
func (b *Builder) Build() (*Order, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.order, nil
}
