package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/checkout/internal/domain/customer"
)

// Sentinel errors for order state transitions.
var (
	// ErrEmptyOrder is returned when the total of an order with no items
	// is requested. A sum over zero items has no defined amount here.
	ErrEmptyOrder = errors.New("order has no items")
	// ErrOrderClosed is returned when Close is invoked on an already
	// closed order. Closing is a one-way transition.
	ErrOrderClosed = errors.New("order already closed")
)

// defaultZipcode is used when no address override is supplied.
const defaultZipcode = "45678-979"

// Address is the shipping destination snapshot attached to an order.
type Address struct {
	Zipcode string
}

// Order aggregates the items bought by one customer. It owns its item
// sequence exclusively; items hold a non-owning back-reference for
// dispatch context. Closing the order fans out to every item's
// fulfillment action.
type Order struct {
	ID       string
	Customer *customer.Customer
	Address  Address

	items    []Item
	closedAt *time.Time
}

// Option customizes an Order at construction time.
type Option func(*Order)

// WithAddress overrides the default shipping address.
func WithAddress(a Address) Option {
	return func(o *Order) { o.Address = a }
}

// New creates an open, empty Order for the given customer.
func New(c *customer.Customer, opts ...Option) *Order {
	o := &Order{
		ID:       uuid.New().String(),
		Customer: c,
		Address:  Address{Zipcode: defaultZipcode},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// AddItem appends an item to the order.
func (o *Order) AddItem(item Item) {
	o.items = append(o.items, item)
}

// Items returns the order's items in insertion order.
func (o *Order) Items() []Item {
	return o.items
}

// ClosedAt returns when the order was closed, or nil while it is open.
func (o *Order) ClosedAt() *time.Time {
	return o.closedAt
}

// TotalAmount sums the totals of all items. It returns ErrEmptyOrder
// when the order has no items.
func (o *Order) TotalAmount() (decimal.Decimal, error) {
	if len(o.items) == 0 {
		return decimal.Decimal{}, ErrEmptyOrder
	}
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Total())
	}
	return total, nil
}

// ItemFailure records one item whose fulfillment action failed during Close.
type ItemFailure struct {
	Index   int
	Product string
	Err     error
}

// CloseError aggregates the per-item fulfillment failures of one Close
// call. Items are independent, so one failure does not stop the fan-out;
// callers inspect Failures for a partial-failure summary.
type CloseError struct {
	Failures []ItemFailure
	Items    int
}

func (e *CloseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "fulfillment failed for %d of %d items:", len(e.Failures), e.Items)
	for _, f := range e.Failures {
		fmt.Fprintf(&b, " item %d (%s): %v;", f.Index, f.Product, f.Err)
	}
	return strings.TrimSuffix(b.String(), ";")
}

// Unwrap exposes the underlying item errors to errors.Is and errors.As.
func (e *CloseError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err
	}
	return errs
}

// Close runs every item's fulfillment action in insertion order and
// records the closing time. Each item is attempted exactly once even
// when earlier items fail; failures are collected into a *CloseError.
// A second Close returns ErrOrderClosed without re-processing anything.
func (o *Order) Close(ctx context.Context, closedAt time.Time) error {
	if o.closedAt != nil {
		return ErrOrderClosed
	}
	o.closedAt = &closedAt

	var failures []ItemFailure
	for i, item := range o.items {
		if err := item.Process(ctx); err != nil {
			failures = append(failures, ItemFailure{
				Index:   i,
				Product: item.Product().Name,
				Err:     err,
			})
		}
	}
	if len(failures) > 0 {
		return &CloseError{Failures: failures, Items: len(o.items)}
	}
	return nil
}
