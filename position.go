package tradebook

// Position is a holding inside a portfolio: a stake in one instrument.
//
// A position always has Quantity >= 1: a position reduced to zero is
// removed from its portfolio. UnitPrice is the listed price at the time
// of the first purchase and never changes afterwards.
type Position struct {
	Symbol    string
	Name      string
	UnitPrice Money
	Quantity  int64
}

// Value returns the nominal value of the position, UnitPrice times Quantity.
func (p Position) Value() Money { return p.UnitPrice.MulInt(p.Quantity) }
