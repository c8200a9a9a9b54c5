package ledger

// Amount pairs a Quantity with the Commodity it is denominated in. A nil
// Commodity represents "no commodity" — spec.md's null commodity — which
// is never assigned a wire identifier (format.NoneIdent is written in its
// place).
type Amount struct {
	Quantity  Quantity
	Commodity *Commodity
}

// NewAmount pairs q with c. c may be nil.
func NewAmount(q Quantity, c *Commodity) *Amount {
	return &Amount{Quantity: q, Commodity: c}
}

// String renders the amount as "<quantity> <symbol>", or just "<quantity>"
// when there is no commodity.
func (a *Amount) String() string {
	if a == nil {
		return ""
	}
	if a.Commodity.IsNull() {
		return a.Quantity.String()
	}

	return a.Quantity.String() + " " + a.Commodity.Symbol
}
