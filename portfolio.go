package tradebook

import (
	"fmt"
	"sort"
)

// StartingCash is the nominal cash every portfolio starts with.
//
// The original system never decreases it on purchase: TotalValue grows
// with every buy, so affordability checks loosen over time. That behavior
// is kept as the default; see TradeEngine for the strict-cash variant.
const StartingCash = 10000

// SortKey selects the field a portfolio is sorted by.
type SortKey int

const (
	BySymbol SortKey = iota
	ByPrice
	ByQuantity
)

func (k SortKey) String() string {
	switch k {
	case BySymbol:
		return "symbol"
	case ByPrice:
		return "price"
	case ByQuantity:
		return "quantity"
	default:
		return "unknown"
	}
}

// ParseSortKey parses a string into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "symbol":
		return BySymbol, nil
	case "price":
		return ByPrice, nil
	case "quantity":
		return ByQuantity, nil
	default:
		return 0, fmt.Errorf("unknown sort key: %q", s)
	}
}

// RemoveOutcome is the discriminated result of Portfolio.Remove.
type RemoveOutcome int

const (
	// Reduced means the position quantity was decreased.
	Reduced RemoveOutcome = iota
	// Removed means the position was sold in full and dropped.
	Removed
	// SymbolNotFound means the portfolio holds no such symbol.
	SymbolNotFound
	// InsufficientQty means the removal exceeded the held quantity.
	InsufficientQty
)

func (o RemoveOutcome) String() string {
	switch o {
	case Reduced:
		return "reduced"
	case Removed:
		return "removed"
	case SymbolNotFound:
		return "symbol not found"
	case InsufficientQty:
		return "insufficient quantity"
	default:
		return "unknown"
	}
}

// Portfolio owns the positions of one user and keeps its backing file in
// sync with memory: every successful mutation rewrites the whole file.
//
// A portfolio with an empty path is in-memory only.
type Portfolio struct {
	owner     string
	currency  string
	positions []*Position
	path      string
}

// NewPortfolio creates an empty in-memory portfolio for owner.
func NewPortfolio(owner, currency string) *Portfolio {
	return &Portfolio{owner: owner, currency: currency}
}

// Owner returns the username the portfolio belongs to.
func (p *Portfolio) Owner() string { return p.owner }

// Currency returns the currency portfolio values are expressed in.
func (p *Portfolio) Currency() string { return p.currency }

// Positions returns the positions in their current order.
func (p *Portfolio) Positions() []*Position {
	list := make([]*Position, len(p.positions))
	copy(list, p.positions)
	return list
}

// Len returns the number of positions held.
func (p *Portfolio) Len() int { return len(p.positions) }

// Position returns the held position for symbol, or nil.
func (p *Portfolio) Position(symbol string) *Position {
	for _, pos := range p.positions {
		if pos.Symbol == symbol {
			return pos
		}
	}
	return nil
}

// Add records a purchase. A purchase of an already held symbol increases
// the existing position; name and unit price stay as set by the first
// purchase. The backing file is rewritten before Add returns.
func (p *Portfolio) Add(symbol, name string, unitPrice Money, qty int64) error {
	if err := CheckSymbol(symbol); err != nil {
		return err
	}
	if err := CheckField(name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}
	if qty < 1 {
		return fmt.Errorf("%d shares: %w", qty, ErrInvalidQuantity)
	}
	if pos := p.Position(symbol); pos != nil {
		pos.Quantity += qty
	} else {
		p.positions = append(p.positions, &Position{
			Symbol:    symbol,
			Name:      name,
			UnitPrice: unitPrice,
			Quantity:  qty,
		})
	}
	return p.save()
}

// Remove records a sale of qty shares of symbol. It reports how the
// portfolio changed; on SymbolNotFound and InsufficientQty nothing is
// mutated and nothing is written.
func (p *Portfolio) Remove(symbol string, qty int64) (RemoveOutcome, error) {
	for i, pos := range p.positions {
		if pos.Symbol != symbol {
			continue
		}
		switch {
		case qty < pos.Quantity:
			pos.Quantity -= qty
			return Reduced, p.save()
		case qty == pos.Quantity:
			p.positions = append(p.positions[:i], p.positions[i+1:]...)
			return Removed, p.save()
		default:
			return InsufficientQty, nil
		}
	}
	return SymbolNotFound, nil
}

// TotalValue returns the nominal portfolio value: the starting cash
// constant plus the value of every position.
func (p *Portfolio) TotalValue() Money {
	total := M(StartingCash, p.currency)
	for _, pos := range p.positions {
		total = total.Add(pos.Value())
	}
	return total
}

// HoldingsValue returns the value of the positions alone, without the
// starting cash.
func (p *Portfolio) HoldingsValue() Money {
	total := M(0, p.currency)
	for _, pos := range p.positions {
		total = total.Add(pos.Value())
	}
	return total
}

// MostProfitable returns the position with the highest nominal value, or
// nil for an empty portfolio. On equal values the first inserted wins.
func (p *Portfolio) MostProfitable() *Position {
	var best *Position
	for _, pos := range p.positions {
		if best == nil || pos.Value().GreaterThan(best.Value()) {
			best = pos
		}
	}
	return best
}

// SortBy reorders the positions by the given key, ascending. The sort is
// stable; symbol comparison is case-sensitive lexicographic.
func (p *Portfolio) SortBy(key SortKey) {
	sort.SliceStable(p.positions, func(i, j int) bool {
		a, b := p.positions[i], p.positions[j]
		switch key {
		case ByPrice:
			return a.UnitPrice.LessThan(b.UnitPrice)
		case ByQuantity:
			return a.Quantity < b.Quantity
		default:
			return a.Symbol < b.Symbol
		}
	})
}

func (p *Portfolio) save() error {
	if p.path == "" {
		return nil
	}
	return SavePortfolio(p)
}
