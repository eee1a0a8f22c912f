package product

import (
	"github.com/go-faster/errors"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Category classifies a product for fulfillment purposes. Each category
// maps to a distinct fulfillment policy when an order closes.
type Category string

const (
	// CategoryPhysical is a physical good shipped in a box.
	CategoryPhysical Category = "physical"
	// CategoryBook is a printed book, shipped with a tax-exemption notice.
	CategoryBook Category = "book"
	// CategoryDigital is downloadable media (music, video).
	CategoryDigital Category = "digital"
	// CategoryMembership is a service subscription.
	CategoryMembership Category = "membership"
)

// ParseCategory converts a raw category tag into a Category.
// It returns an error for tags outside the known set.
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryPhysical, CategoryBook, CategoryDigital, CategoryMembership:
		return c, nil
	default:
		return "", errors.Errorf("unknown product category %q", s)
	}
}

// Product represents a catalog item available for purchase. Immutable
// after creation.
type Product struct {
	ID       string
	Name     string
	Category Category
}
