package tradebook

import "testing"

func TestMoney_Arithmetic(t *testing.T) {
	total := USD(135).MulInt(5)
	if !total.Equal(USD(675)) {
		t.Errorf("135*5 = %s, want $675.00", total)
	}

	sum := USD(10000).Add(USD(675))
	if !sum.Equal(USD(10675)) {
		t.Errorf("10000+675 = %s, want $10,675.00", sum)
	}

	if !USD(675).LessThan(USD(10000)) {
		t.Error("675 should be less than 10000")
	}
	if USD(33000).LessThanOrEqual(USD(10000)) {
		t.Error("33000 should not be <= 10000")
	}
}

func TestMoney_Signs(t *testing.T) {
	zero := USD(0)
	if !zero.IsZero() {
		t.Error("USD(0) should be zero")
	}
	if zero.IsPositive() || zero.IsNegative() {
		t.Error("USD(0) should be neither positive nor negative")
	}

	if !USD(600).IsPositive() {
		t.Error("USD(600) should be positive")
	}

	neg := USD(600).Neg()
	if !neg.IsNegative() {
		t.Errorf("Neg() = %s, should be negative", neg)
	}
	if !neg.Neg().Equal(USD(600)) {
		t.Error("double negation should round-trip")
	}
	if !USD(10000).Sub(USD(9400)).Equal(USD(600)) {
		t.Errorf("10000-9400 = %s, want $600.00", USD(10000).Sub(USD(9400)))
	}
}

func TestMoney_Text(t *testing.T) {
	testCases := []struct {
		name  string
		money Money
		want  string
	}{
		{name: "integral", money: USD(135), want: "135"},
		{name: "fractional", money: USD(135.5), want: "135.5"},
		{name: "cents", money: USD(0.07), want: "0.07"},
		{name: "large no separators", money: USD(33000), want: "33000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.money.Text(); got != tc.want {
				t.Errorf("Text() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("135.00", "USD")
	if err != nil {
		t.Fatalf("ParseMoney: %v", err)
	}
	if !m.Equal(USD(135)) {
		t.Errorf("ParseMoney(135.00) = %s, want $135.00", m)
	}

	if _, err := ParseMoney("abc", "USD"); err == nil {
		t.Error("ParseMoney(abc) should fail")
	}
}

func TestMoney_String(t *testing.T) {
	if got := USD(675).String(); got != "$675.00" {
		t.Errorf("String() = %q, want %q", got, "$675.00")
	}
}
