package tradebook

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// The portfolio file is a plain text file, one position per line:
//
//	symbol;name;price;quantity
//
// price is a locale-independent decimal, quantity an integer. On decode,
// malformed lines are reported and skipped so a damaged file never blocks
// a session. On encode the whole state is rewritten.

const portfolioFieldCount = 4

// DecodePortfolio reads positions from r into p. filename is for warning
// messages only.
func DecodePortfolio(filename string, r io.Reader, p *Portfolio) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		pos, err := parsePosition(text, p.currency)
		if err != nil {
			log.Printf("warning: invalid record in %q on line %d: %v, skipping", filename, line, err)
			continue
		}
		p.positions = append(p.positions, pos)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("could not read portfolio %q: %w", filename, err)
	}
	return nil
}

func parsePosition(text, currency string) (*Position, error) {
	parts := strings.Split(text, ";")
	if len(parts) != portfolioFieldCount {
		return nil, fmt.Errorf("expected %d fields, got %d", portfolioFieldCount, len(parts))
	}
	if err := CheckSymbol(parts[0]); err != nil {
		return nil, err
	}
	price, err := ParseMoney(parts[2], currency)
	if err != nil {
		return nil, err
	}
	qty, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid quantity %q: %w", parts[3], err)
	}
	if qty < 1 {
		return nil, fmt.Errorf("quantity %d is below 1", qty)
	}
	return &Position{Symbol: parts[0], Name: parts[1], UnitPrice: price, Quantity: qty}, nil
}

// EncodePortfolio writes every position of p to w in the portfolio file
// format, in the portfolio's current order.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	for _, pos := range p.positions {
		_, err := fmt.Fprintf(w, "%s;%s;%s;%d\n", pos.Symbol, pos.Name, pos.UnitPrice.Text(), pos.Quantity)
		if err != nil {
			return fmt.Errorf("could not write position %q: %w", pos.Symbol, err)
		}
	}
	return nil
}
