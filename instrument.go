package tradebook

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Instrument describes a tradable symbol as listed in the catalog.
type Instrument struct {
	Symbol string
	Name   string
	Price  Money // listed price, used as unit price at purchase time
	Qty    int64 // catalog quantity on offer
}

// NewInstrument creates a validated instrument.
func NewInstrument(symbol, name string, price Money, qty int64) (Instrument, error) {
	if err := CheckSymbol(symbol); err != nil {
		return Instrument{}, err
	}
	if err := CheckField(name); err != nil {
		return Instrument{}, fmt.Errorf("invalid name: %w", err)
	}
	if price.IsNegative() {
		return Instrument{}, errors.New("price must not be negative")
	}
	if qty < 0 {
		return Instrument{}, errors.New("quantity must not be negative")
	}
	return Instrument{Symbol: symbol, Name: name, Price: price, Qty: qty}, nil
}

// CheckSymbol validates a ticker symbol: it must be non empty and must not
// contain whitespace or ';' (the persistence field separator).
func CheckSymbol(symbol string) error {
	if symbol == "" {
		return errors.New("symbol is empty")
	}
	for _, r := range symbol {
		if unicode.IsSpace(r) {
			return fmt.Errorf("symbol %q contains whitespace", symbol)
		}
	}
	if strings.ContainsRune(symbol, ';') {
		return fmt.Errorf("symbol %q contains ';'", symbol)
	}
	return nil
}

// CheckField validates a free text field destined for the portfolio file:
// it must not contain the ';' field separator.
func CheckField(s string) error {
	if strings.ContainsRune(s, ';') {
		return fmt.Errorf("%q contains ';'", s)
	}
	return nil
}
