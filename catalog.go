package tradebook

import "sort"

// Catalog holds the set of instruments available for trading.
//
// The catalog is purely in-memory: it is seeded at startup and additions
// made during a session are lost when the process exits.
type Catalog struct {
	instruments []*Instrument
	index       map[string]*Instrument
}

// NewCatalog returns a new empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		instruments: make([]*Instrument, 0),
		index:       make(map[string]*Instrument),
	}
}

// DefaultCatalog returns a catalog seeded with the built-in instrument
// list, priced in the given currency.
func DefaultCatalog(currency string) *Catalog {
	c := NewCatalog()
	seed := []Instrument{
		{Symbol: "AAPL", Name: "Apple Inc.", Price: M(135.00, currency), Qty: 100},
		{Symbol: "GOOGL", Name: "Alphabet Inc.", Price: M(2350.00, currency), Qty: 50},
		{Symbol: "MSFT", Name: "Microsoft Corporation", Price: M(300.00, currency), Qty: 75},
		{Symbol: "AMZN", Name: "Amazon.com Inc.", Price: M(3300.00, currency), Qty: 30},
		{Symbol: "FB", Name: "Meta Platforms Inc.", Price: M(330.00, currency), Qty: 80},
		{Symbol: "TSLA", Name: "Tesla Inc.", Price: M(700.00, currency), Qty: 60},
		{Symbol: "NFLX", Name: "Netflix Inc.", Price: M(520.00, currency), Qty: 45},
		{Symbol: "NVDA", Name: "NVIDIA Corporation", Price: M(700.00, currency), Qty: 55},
	}
	for i := range seed {
		c.Add(seed[i])
	}
	return c
}

// Has reports whether the symbol is listed.
func (c *Catalog) Has(symbol string) bool {
	_, ok := c.index[symbol]
	return ok
}

// Lookup returns the instrument listed under symbol, or nil if unknown.
func (c *Catalog) Lookup(symbol string) *Instrument { return c.index[symbol] }

// Add inserts an instrument into the catalog, overwriting any previous
// listing under the same symbol.
func (c *Catalog) Add(ins Instrument) error {
	if err := CheckSymbol(ins.Symbol); err != nil {
		return err
	}
	if err := CheckField(ins.Name); err != nil {
		return err
	}
	if prev, ok := c.index[ins.Symbol]; ok {
		*prev = ins
		return nil
	}
	p := &ins
	c.instruments = append(c.instruments, p)
	c.index[ins.Symbol] = p
	return nil
}

// List returns the instruments sorted by symbol.
func (c *Catalog) List() []*Instrument {
	list := make([]*Instrument, len(c.instruments))
	copy(list, c.instruments)
	sort.Slice(list, func(i, j int) bool { return list[i].Symbol < list[j].Symbol })
	return list
}

// Len returns the number of listed instruments.
func (c *Catalog) Len() int { return len(c.instruments) }
