package renderer

import (
	"strings"
	"testing"

	"github.com/mgraber/tradebook"
)

func usd(v int64) tradebook.Money { return tradebook.M(v, "USD") }

func demoPortfolio(t *testing.T) *tradebook.Portfolio {
	t.Helper()
	p := tradebook.NewPortfolio("alice", "USD")
	if err := p.Add("AAPL", "Apple Inc.", usd(135), 5); err != nil {
		t.Fatal(err)
	}
	if err := p.Add("GOOGL", "Alphabet Inc.", usd(2350), 1); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestHoldings(t *testing.T) {
	got := Holdings(demoPortfolio(t))

	for _, want := range []string{
		"# Portfolio of alice",
		"| Symbol | Name | Price | Quantity | Value |",
		"| AAPL | Apple Inc. | $135.00 | 5 | $675.00 |",
		"| GOOGL | Alphabet Inc. | $2,350.00 | 1 | $2,350.00 |",
		"Total portfolio value: **$13,025.00**",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestHoldings_Empty(t *testing.T) {
	got := Holdings(tradebook.NewPortfolio("alice", "USD"))
	if got != "Portfolio of alice is empty.\n" {
		t.Errorf("got %q", got)
	}
}

func TestCatalog(t *testing.T) {
	got := Catalog(tradebook.DefaultCatalog("USD"))

	if !strings.Contains(got, "# Available instruments") {
		t.Errorf("missing heading in:\n%s", got)
	}
	if !strings.Contains(got, "| AAPL | Apple Inc. | $135.00 | 100 |") {
		t.Errorf("missing AAPL row in:\n%s", got)
	}
	// List is symbol sorted, AAPL comes first
	if rows := strings.Count(got, "\n| "); rows < 8 {
		t.Errorf("want at least 8 instrument rows, got %d in:\n%s", rows, got)
	}
}

func TestMostProfitable(t *testing.T) {
	got := MostProfitable(demoPortfolio(t).MostProfitable())

	for _, want := range []string{
		"# Most profitable share",
		"- Symbol: GOOGL",
		"- Value: $2,350.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestMostProfitable_Empty(t *testing.T) {
	if got := MostProfitable(nil); got != "No shares in the portfolio.\n" {
		t.Errorf("got %q", got)
	}
}

func TestBuy(t *testing.T) {
	r := &tradebook.BuyReceipt{
		Symbol:    "AAPL",
		Name:      "Apple Inc.",
		UnitPrice: usd(135),
		Quantity:  5,
		Total:     usd(675),
		Payment:   tradebook.PaymentOutcome{Paid: true, Reference: "ref-1"},
	}

	got := Buy(r)
	if !strings.Contains(got, "Bought 5 shares of Apple Inc. (AAPL) at $135.00 each, total $675.00.") {
		t.Errorf("got:\n%s", got)
	}
	if !strings.Contains(got, "Payment accepted (ref ref-1).") {
		t.Errorf("got:\n%s", got)
	}

	r.Payment = tradebook.PaymentOutcome{Note: "card blocked for 24 hours"}
	got = Buy(r)
	if !strings.Contains(got, "Payment failed: card blocked for 24 hours.") {
		t.Errorf("got:\n%s", got)
	}
}

func TestSell(t *testing.T) {
	r := &tradebook.SellReceipt{
		Symbol:    "AAPL",
		Name:      "Apple Inc.",
		UnitPrice: usd(135),
		Quantity:  2,
		Proceeds:  usd(270),
		Outcome:   tradebook.Reduced,
	}

	got := Sell(r)
	if !strings.Contains(got, "Sold 2 shares of Apple Inc. (AAPL) at $135.00 each.") {
		t.Errorf("got:\n%s", got)
	}
	if !strings.Contains(got, "Total amount received: **$270.00**") {
		t.Errorf("got:\n%s", got)
	}
	if strings.Contains(got, "position is now closed") {
		t.Error("partial sale must not report a closed position")
	}

	r.Outcome = tradebook.Removed
	if got := Sell(r); !strings.Contains(got, "The AAPL position is now closed.") {
		t.Errorf("got:\n%s", got)
	}
}
