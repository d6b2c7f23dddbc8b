// Package renderer renders domain objects to markdown for the terminal.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/mgraber/tradebook"
)

// Holdings renders the portfolio as a markdown table with a total row.
func Holdings(p *tradebook.Portfolio) string {
	positions := p.Positions()
	if len(positions) == 0 {
		return fmt.Sprintf("Portfolio of %s is empty.\n", p.Owner())
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "# Portfolio of %s\n\n", p.Owner())
	fmt.Fprintln(&b, "| Symbol | Name | Price | Quantity | Value |")
	fmt.Fprintln(&b, "|---|---|--:|--:|--:|")
	for _, pos := range positions {
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s |\n",
			pos.Symbol, pos.Name, pos.UnitPrice, pos.Quantity, pos.Value())
	}
	fmt.Fprintf(&b, "\nTotal portfolio value: **%s**\n", p.TotalValue())
	return b.String()
}

// Catalog renders the available instruments as a markdown table.
func Catalog(c *tradebook.Catalog) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# Available instruments\n\n")
	fmt.Fprintln(&b, "| Symbol | Name | Price | Quantity |")
	fmt.Fprintln(&b, "|---|---|--:|--:|")
	for _, ins := range c.List() {
		fmt.Fprintf(&b, "| %s | %s | %s | %d |\n", ins.Symbol, ins.Name, ins.Price, ins.Qty)
	}
	return b.String()
}

// MostProfitable renders the highest valued position, or a note for an
// empty portfolio.
func MostProfitable(pos *tradebook.Position) string {
	if pos == nil {
		return "No shares in the portfolio.\n"
	}
	var b bytes.Buffer
	fmt.Fprintf(&b, "# Most profitable share\n\n")
	fmt.Fprintf(&b, "- Symbol: %s\n", pos.Symbol)
	fmt.Fprintf(&b, "- Name: %s\n", pos.Name)
	fmt.Fprintf(&b, "- Price: %s\n", pos.UnitPrice)
	fmt.Fprintf(&b, "- Quantity: %d\n", pos.Quantity)
	fmt.Fprintf(&b, "- Value: %s\n", pos.Value())
	return b.String()
}

// Buy renders a buy receipt, including how the payment ended.
func Buy(r *tradebook.BuyReceipt) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "Bought %d shares of %s (%s) at %s each, total %s.\n\n",
		r.Quantity, r.Name, r.Symbol, r.UnitPrice, r.Total)
	if r.Payment.Paid {
		fmt.Fprintf(&b, "Payment accepted (ref %s).\n", r.Payment.Reference)
	} else {
		fmt.Fprintf(&b, "Payment failed: %s. The shares remain in the portfolio.\n", r.Payment.Note)
	}
	return b.String()
}

// Sell renders a sell receipt.
func Sell(r *tradebook.SellReceipt) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "Sold %d shares of %s (%s) at %s each.\n\n",
		r.Quantity, r.Name, r.Symbol, r.UnitPrice)
	fmt.Fprintf(&b, "Total amount received: **%s**\n", r.Proceeds)
	if r.Outcome == tradebook.Removed {
		fmt.Fprintf(&b, "\nThe %s position is now closed.\n", r.Symbol)
	}
	return b.String()
}
