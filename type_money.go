package finstate

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unreachable")
	}
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParseMoney parses a user-entered amount like "12.34" into a Money.
// It rejects anything that is not a finite number, so that mutations never
// receive a NaN or infinite amount.
func ParseMoney(str, currency string) (Money, error) {
	value, err := decimal.NewFromString(str)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", str, err)
	}
	return Money{value: value, cur: currency}, nil
}

// ParseFloat converts a float into a Money, rejecting NaN and infinities.
func ParseFloat(value float64, currency string) (Money, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, fmt.Errorf("invalid amount %v: not a finite number", value)
	}
	return M(value, currency), nil
}

// currency returns the money's full currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Simple wrappers around decimal.Decimal.

func (m Money) Currency() string                { return m.cur }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs(), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// PercentOf returns m as a percentage of n, rounded to one decimal.
// The second return value is false when n is zero: the ratio is undefined,
// not an error.
func (m Money) PercentOf(n Money) (Percent, bool) {
	if n.value.IsZero() {
		return 0, false
	}
	ratio := m.value.Div(n.value).Mul(decimal.NewFromInt(100)).Round(1)
	return Percent(ratio.InexactFloat64()), true
}

// Compatible reports whether the two amounts can be combined with Add or
// Sub: same currency, or at least one side weak. Callers mixing amounts from
// independent sources check this first and fail locally instead of panicking.
func (m Money) Compatible(n Money) bool {
	return m.cur == "" || n.cur == "" || m.cur == n.cur
}

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch" + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// AsFloat returns the amount as a float for display layers that need one.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value.Round(int32(m.currency().Fraction)))
	return w.MarshalJSON()
}

// UnmarshalJSON decodes a money from its {"currency","amount"} object form.
func (m *Money) UnmarshalJSON(bytes []byte) error {
	var j struct {
		Currency string          `json:"currency"`
		Amount   decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(bytes, &j); err != nil {
		return err
	}
	*m = Money{value: j.Amount, cur: j.Currency}
	return nil
}
