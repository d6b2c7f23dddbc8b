package tradebook

import (
	"errors"
	"fmt"
)

// Errors surfaced by trading operations. They are wrapped with context,
// test with errors.Is.
var (
	ErrUnknownSymbol        = errors.New("symbol not listed in catalog")
	ErrInvalidQuantity      = errors.New("quantity must be a positive integer")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrNotHeld              = errors.New("symbol not held in portfolio")
	ErrInsufficientQuantity = errors.New("insufficient quantity to sell")
)

// PaymentMethod selects how a purchase is settled.
type PaymentMethod int

const (
	Cash PaymentMethod = iota
	CreditCard
	DebitCard
	UPI
)

func (m PaymentMethod) String() string {
	switch m {
	case Cash:
		return "cash"
	case CreditCard:
		return "credit-card"
	case DebitCard:
		return "debit-card"
	case UPI:
		return "upi"
	default:
		return "unknown"
	}
}

// ParsePaymentMethod parses a string into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch s {
	case "cash":
		return Cash, nil
	case "credit-card", "credit":
		return CreditCard, nil
	case "debit-card", "debit":
		return DebitCard, nil
	case "upi":
		return UPI, nil
	default:
		return 0, fmt.Errorf("unknown payment method: %q", s)
	}
}

// PaymentOutcome reports how a charge ended.
type PaymentOutcome struct {
	Paid      bool
	Reference string // gateway reference for the attempt
	Note      string // human readable detail ("card blocked", ...)
}

// PaymentGateway settles purchases. The engine only needs the charge
// capability; everything about card fields, retries or dialogs belongs
// to the implementation.
type PaymentGateway interface {
	Charge(method PaymentMethod, amount Money) PaymentOutcome
}

// BuyReceipt reports an applied purchase.
type BuyReceipt struct {
	Symbol    string
	Name      string
	UnitPrice Money
	Quantity  int64
	Total     Money
	Payment   PaymentOutcome
}

// SellReceipt reports an applied sale.
type SellReceipt struct {
	Symbol    string
	Name      string
	UnitPrice Money
	Quantity  int64
	Proceeds  Money
	Outcome   RemoveOutcome
}

// TradeEngine validates and applies buy and sell orders against a catalog
// and a portfolio. It holds no per-order state.
type TradeEngine struct {
	catalog    *Catalog
	gateway    PaymentGateway
	strictCash bool
}

// NewTradeEngine creates a trade engine over catalog, settling purchases
// through gateway.
//
// With strictCash, affordability is checked against the starting cash
// minus the cost of current holdings instead of the historical
// TotalValue rule (which grows with every purchase).
func NewTradeEngine(catalog *Catalog, gateway PaymentGateway, strictCash bool) *TradeEngine {
	return &TradeEngine{catalog: catalog, gateway: gateway, strictCash: strictCash}
}

// availableFunds is what a purchase is allowed to cost.
func (e *TradeEngine) availableFunds(p *Portfolio) Money {
	if e.strictCash {
		return M(StartingCash, p.Currency()).Sub(p.HoldingsValue())
	}
	return p.TotalValue()
}

// Buy validates and applies a purchase of qty shares of symbol, then
// charges the gateway for the total.
//
// The holding is recorded and persisted before the charge is attempted,
// and a failed charge does not roll it back; the receipt carries the
// payment outcome so the caller can report it.
func (e *TradeEngine) Buy(p *Portfolio, symbol string, qty int64, method PaymentMethod) (*BuyReceipt, error) {
	ins := e.catalog.Lookup(symbol)
	if ins == nil {
		return nil, fmt.Errorf("%q: %w", symbol, ErrUnknownSymbol)
	}
	if qty < 1 {
		return nil, fmt.Errorf("%d shares: %w", qty, ErrInvalidQuantity)
	}

	total := ins.Price.MulInt(qty)
	if funds := e.availableFunds(p); total.GreaterThan(funds) {
		return nil, fmt.Errorf("%s exceeds available %s: %w", total, funds, ErrInsufficientFunds)
	}

	if err := p.Add(ins.Symbol, ins.Name, ins.Price, qty); err != nil {
		return nil, err
	}

	return &BuyReceipt{
		Symbol:    ins.Symbol,
		Name:      ins.Name,
		UnitPrice: ins.Price,
		Quantity:  qty,
		Total:     total,
		Payment:   e.gateway.Charge(method, total),
	}, nil
}

// Sell validates and applies a sale of qty shares of symbol. Proceeds are
// computed at the position's unit price; no gateway is involved.
func (e *TradeEngine) Sell(p *Portfolio, symbol string, qty int64) (*SellReceipt, error) {
	pos := p.Position(symbol)
	if pos == nil {
		return nil, fmt.Errorf("%q: %w", symbol, ErrNotHeld)
	}
	if qty < 1 {
		return nil, fmt.Errorf("%d shares: %w", qty, ErrInvalidQuantity)
	}
	if qty > pos.Quantity {
		return nil, fmt.Errorf("%d shares held, %d requested: %w", pos.Quantity, qty, ErrInsufficientQuantity)
	}

	receipt := &SellReceipt{
		Symbol:    pos.Symbol,
		Name:      pos.Name,
		UnitPrice: pos.UnitPrice,
		Quantity:  qty,
		Proceeds:  pos.UnitPrice.MulInt(qty),
	}

	outcome, err := p.Remove(symbol, qty)
	if err != nil {
		return nil, err
	}
	receipt.Outcome = outcome
	return receipt, nil
}
