package payment

// Method identifies how a payment is made. Implementations are opaque to
// the checkout flow; only the kind is recorded.
type Method interface {
	Kind() string
}

// Compile-time check ensuring CreditCard satisfies Method.
var _ Method = (*CreditCard)(nil)

// CreditCard is a payment method resolved from a hashed card token.
// Card storage and gateway interaction live elsewhere; this is only the
// handle the checkout flow carries.
type CreditCard struct {
	hash string
}

// FetchByHashed looks up a credit card by its hashed token.
func FetchByHashed(hash string) *CreditCard {
	return &CreditCard{hash: hash}
}

// Kind returns the method kind identifier.
func (*CreditCard) Kind() string { return "credit_card" }

// Hash returns the hashed card token this method was resolved from.
func (c *CreditCard) Hash() string { return c.hash }
