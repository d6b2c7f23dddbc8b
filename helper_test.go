package tradebook

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// pos is a helper for tests to create a position from const
func pos(symbol, name string, price float64, qty int64) *Position {
	return &Position{Symbol: symbol, Name: name, UnitPrice: USD(price), Quantity: qty}
}
