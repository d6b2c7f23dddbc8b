package tradebook

import (
	"bytes"
	"strings"
	"testing"
)

func TestDecodePortfolio_SkipsMalformedLines(t *testing.T) {
	input := "AAPL;Apple Inc.;135.00;5\n" +
		"BADLINE\n" +
		"MSFT;Microsoft Corporation;300.00;2\n"

	p := NewPortfolio("alice", "USD")
	if err := DecodePortfolio("test", strings.NewReader(input), p); err != nil {
		t.Fatalf("DecodePortfolio: %v", err)
	}

	if p.Len() != 2 {
		t.Fatalf("loaded %d positions, want 2", p.Len())
	}
	if got := p.Position("AAPL"); got == nil || got.Quantity != 5 {
		t.Errorf("AAPL = %+v, want quantity 5", got)
	}
	if got := p.Position("MSFT"); got == nil || got.Quantity != 2 {
		t.Errorf("MSFT = %+v, want quantity 2", got)
	}
}

func TestDecodePortfolio_BadRecords(t *testing.T) {
	testCases := []struct {
		name string
		line string
	}{
		{name: "wrong field count", line: "AAPL;Apple Inc.;135.00"},
		{name: "extra field", line: "AAPL;Apple Inc.;135.00;5;x"},
		{name: "price not a number", line: "AAPL;Apple Inc.;abc;5"},
		{name: "quantity not a number", line: "AAPL;Apple Inc.;135.00;five"},
		{name: "quantity zero", line: "AAPL;Apple Inc.;135.00;0"},
		{name: "empty symbol", line: ";Apple Inc.;135.00;5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPortfolio("alice", "USD")
			if err := DecodePortfolio("test", strings.NewReader(tc.line+"\n"), p); err != nil {
				t.Fatalf("DecodePortfolio should skip, not fail: %v", err)
			}
			if p.Len() != 0 {
				t.Errorf("malformed record was loaded: %+v", p.Positions())
			}
		})
	}
}

func TestEncodePortfolio_Format(t *testing.T) {
	p := NewPortfolio("alice", "USD")
	p.positions = []*Position{
		pos("AAPL", "Apple Inc.", 135, 5),
		pos("MSFT", "Microsoft Corporation", 300.5, 2),
	}

	var b bytes.Buffer
	if err := EncodePortfolio(&b, p); err != nil {
		t.Fatalf("EncodePortfolio: %v", err)
	}

	want := "AAPL;Apple Inc.;135;5\nMSFT;Microsoft Corporation;300.5;2\n"
	if b.String() != want {
		t.Errorf("encoded:\n%q\nwant:\n%q", b.String(), want)
	}
}

func TestPortfolio_Codec_RoundTrip(t *testing.T) {
	p := NewPortfolio("alice", "USD")
	p.positions = []*Position{
		pos("AAPL", "Apple Inc.", 135, 5),
		pos("GOOGL", "Alphabet Inc.", 2350.25, 1),
	}

	var b bytes.Buffer
	if err := EncodePortfolio(&b, p); err != nil {
		t.Fatal(err)
	}

	q := NewPortfolio("alice", "USD")
	if err := DecodePortfolio("test", &b, q); err != nil {
		t.Fatal(err)
	}

	if q.Len() != p.Len() {
		t.Fatalf("round trip lost positions: %d != %d", q.Len(), p.Len())
	}
	for _, want := range p.positions {
		got := q.Position(want.Symbol)
		if got == nil || got.Name != want.Name || got.Quantity != want.Quantity || !got.UnitPrice.Equal(want.UnitPrice) {
			t.Errorf("round trip %q: got %+v, want %+v", want.Symbol, got, want)
		}
	}
}
