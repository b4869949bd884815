package finstate

import (
	"math"
	"testing"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    Money
		wantErr bool
	}{
		{in: "12.34", want: EUR(12.34)},
		{in: "-800", want: EUR(-800)},
		{in: "0", want: EUR(0)},
		{in: "12,34", wantErr: true},
		{in: "lots", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseMoney(tc.in, "EUR")
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseMoney(%q): want error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMoney(%q): unexpected error %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseMoney(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseFloat_RejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := ParseFloat(v, "EUR"); err == nil {
			t.Errorf("ParseFloat(%v): want error", v)
		}
	}
	if got, err := ParseFloat(4.5, "EUR"); err != nil || !got.Equal(EUR(4.5)) {
		t.Errorf("ParseFloat(4.5) = %v, %v", got, err)
	}
}

func TestPercentOf(t *testing.T) {
	tests := []struct {
		name   string
		m, n   Money
		want   Percent
		wantOK bool
	}{
		{name: "regular ratio", m: EUR(1234), n: EUR(5000), want: 24.7, wantOK: true},
		{name: "rounds to one decimal", m: EUR(12400), n: EUR(18000), want: 68.9, wantOK: true},
		{name: "zero denominator", m: EUR(100), n: EUR(0), wantOK: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.m.PercentOf(tc.n)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && !got.Equal(tc.want) {
				t.Errorf("PercentOf = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMoneyWeakCurrency(t *testing.T) {
	// the zero Money has a weak currency: it adopts the other operand's.
	var zero Money
	if got := zero.Add(EUR(5)); got.Currency() != "EUR" || !got.Equal(EUR(5)) {
		t.Errorf("zero.Add(5 EUR) = %v", got)
	}
}

func TestMoneyCompatible(t *testing.T) {
	tests := []struct {
		name string
		m, n Money
		want bool
	}{
		{name: "same currency", m: EUR(1), n: EUR(2), want: true},
		{name: "weak right", m: EUR(1), n: M(2, ""), want: true},
		{name: "weak left", m: M(1, ""), n: USD(2), want: true},
		{name: "both weak", m: M(1, ""), n: M(2, ""), want: true},
		{name: "mismatch", m: EUR(1), n: USD(1), want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.Compatible(tc.n); got != tc.want {
				t.Errorf("Compatible = %v, want %v", got, tc.want)
			}
		})
	}
}
