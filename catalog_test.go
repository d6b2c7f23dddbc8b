package tradebook

import "testing"

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog("USD")

	if c.Len() != 8 {
		t.Fatalf("seeded catalog has %d instruments, want 8", c.Len())
	}

	testCases := []struct {
		symbol string
		name   string
		price  float64
		qty    int64
	}{
		{"AAPL", "Apple Inc.", 135.00, 100},
		{"GOOGL", "Alphabet Inc.", 2350.00, 50},
		{"MSFT", "Microsoft Corporation", 300.00, 75},
		{"AMZN", "Amazon.com Inc.", 3300.00, 30},
		{"FB", "Meta Platforms Inc.", 330.00, 80},
		{"TSLA", "Tesla Inc.", 700.00, 60},
		{"NFLX", "Netflix Inc.", 520.00, 45},
		{"NVDA", "NVIDIA Corporation", 700.00, 55},
	}

	for _, tc := range testCases {
		t.Run(tc.symbol, func(t *testing.T) {
			ins := c.Lookup(tc.symbol)
			if ins == nil {
				t.Fatalf("symbol %q not seeded", tc.symbol)
			}
			if ins.Name != tc.name {
				t.Errorf("name = %q, want %q", ins.Name, tc.name)
			}
			if !ins.Price.Equal(USD(tc.price)) {
				t.Errorf("price = %s, want %v", ins.Price, tc.price)
			}
			if ins.Qty != tc.qty {
				t.Errorf("qty = %d, want %d", ins.Qty, tc.qty)
			}
		})
	}
}

func TestCatalog_Add(t *testing.T) {
	c := NewCatalog()

	if err := c.Add(Instrument{Symbol: "ZZZ", Name: "Zeta Corp", Price: USD(10), Qty: 5}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !c.Has("ZZZ") {
		t.Fatal("ZZZ should be listed after Add")
	}

	// overwrite keeps a single listing
	if err := c.Add(Instrument{Symbol: "ZZZ", Name: "Zeta Corporation", Price: USD(12), Qty: 7}); err != nil {
		t.Fatalf("Add overwrite: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("catalog has %d instruments after overwrite, want 1", c.Len())
	}
	if got := c.Lookup("ZZZ").Name; got != "Zeta Corporation" {
		t.Errorf("overwritten name = %q", got)
	}
}

func TestCatalog_AddInvalid(t *testing.T) {
	c := NewCatalog()
	testCases := []struct {
		name string
		ins  Instrument
	}{
		{name: "empty symbol", ins: Instrument{Symbol: "", Name: "X"}},
		{name: "whitespace symbol", ins: Instrument{Symbol: "A B", Name: "X"}},
		{name: "separator in symbol", ins: Instrument{Symbol: "A;B", Name: "X"}},
		{name: "separator in name", ins: Instrument{Symbol: "AB", Name: "X;Y"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := c.Add(tc.ins); err == nil {
				t.Error("Add should have failed")
			}
		})
	}
}

func TestCatalog_List_Sorted(t *testing.T) {
	c := DefaultCatalog("USD")
	list := c.List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Symbol >= list[i].Symbol {
			t.Fatalf("List not sorted: %q before %q", list[i-1].Symbol, list[i].Symbol)
		}
	}
}
