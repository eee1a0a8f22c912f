package customer

import (
	"github.com/shopspring/decimal"
)

// Customer identifies a buyer and accumulates voucher credits granted
// during fulfillment. The voucher list grows only by append and is owned
// exclusively by the Customer.
type Customer struct {
	Name  string
	Email string

	vouchers []decimal.Decimal
}

// New creates a Customer with an empty voucher list.
func New(name, email string) *Customer {
	return &Customer{
		Name:  name,
		Email: email,
	}
}

// ApplyVoucher appends a credit to the customer's voucher list.
func (c *Customer) ApplyVoucher(amount decimal.Decimal) {
	c.vouchers = append(c.vouchers, amount)
}

// Vouchers returns a copy of the accumulated voucher credits in grant order.
func (c *Customer) Vouchers() []decimal.Decimal {
	out := make([]decimal.Decimal, len(c.vouchers))
	copy(out, c.vouchers)
	return out
}
