package order

import (
	"fmt"

	"github.com/xenking/checkout/internal/domain/product"
)

// UnsupportedCategoryError indicates a product whose category has no
// registered item variant.
type UnsupportedCategoryError struct {
	Category product.Category
}

func (e *UnsupportedCategoryError) Error() string {
	return fmt.Sprintf("no order item registered for category %q", e.Category)
}

// ItemFactory maps a product's category to the matching item variant,
// injecting the collaborators that variant dispatches to. The category
// set is closed; Create is the single construction point for items.
type ItemFactory struct {
	order *Order
	svc   Collaborators
}

// NewItemFactory creates an ItemFactory building items for the given order.
func NewItemFactory(o *Order, svc Collaborators) *ItemFactory {
	return &ItemFactory{order: o, svc: svc}
}

// Create constructs the item variant matching the product's category.
// It returns an *UnsupportedCategoryError for categories outside the
// known set.
func (f *ItemFactory) Create(p product.Product) (Item, error) {
	base := line{order: f.order, product: p}

	switch p.Category {
	case product.CategoryPhysical:
		return &PhysicalItem{line: base, labels: f.svc.Labels}, nil
	case product.CategoryBook:
		return &BookItem{line: base, labels: f.svc.Labels}, nil
	case product.CategoryMembership:
		return &MembershipItem{line: base, memberships: f.svc.Memberships, emails: f.svc.Emails}, nil
	case product.CategoryDigital:
		return &DigitalItem{line: base, emails: f.svc.Emails, vouchers: f.svc.Vouchers}, nil
	default:
		return nil, &UnsupportedCategoryError{Category: p.Category}
	}
}
