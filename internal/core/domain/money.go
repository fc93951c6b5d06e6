package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// minorDigits is the number of fraction digits kept by Money.
const minorDigits = 2

// Money is a currency amount held as an integer number of minor units
// (hundredths). Binary floating point is never used for stored or compared
// amounts; conversions and rational multiplication go through
// shopspring/decimal.
type Money struct {
	minor int64
}

// Zero is the zero amount.
var Zero = Money{}

// MoneyFromMinor wraps a raw minor-unit value without validation.
func MoneyFromMinor(minor int64) Money {
	return Money{minor: minor}
}

// NewMoney returns an amount of minor units, rejecting negatives.
func NewMoney(minor int64) (Money, error) {
	if minor < 0 {
		return Money{}, fmt.Errorf("%w: %d is negative", ErrInvalidAmount, minor)
	}
	return Money{minor: minor}, nil
}

const (
	// maxAmountLen caps the textual form accepted by ParseMoney.
	maxAmountLen = 32
	// maxExponent and minExponent bound the decimal exponent before any
	// rescaling; 10^19 minor units already overflow int64.
	maxExponent = 18
	minExponent = -maxAmountLen
)

// ParseMoney parses a decimal string such as "12.50". Negative values,
// values with sub-minor precision and values outside int64 minor units are
// rejected without expanding the number.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if len(s) > maxAmountLen {
		return Money{}, fmt.Errorf("%w: %q is too long", ErrInvalidAmount, clip(s))
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return moneyFromDecimal(d, s)
}

func moneyFromDecimal(d decimal.Decimal, raw string) (Money, error) {
	if d.Sign() == 0 {
		return Money{}, nil
	}
	if d.IsNegative() {
		return Money{}, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, raw)
	}
	if d.Exponent() > maxExponent {
		return Money{}, fmt.Errorf("%w: %q overflows", ErrInvalidAmount, raw)
	}
	if d.Exponent() < minExponent || !d.Equal(d.Truncate(minorDigits)) {
		return Money{}, fmt.Errorf("%w: %q has more than %d fraction digits", ErrInvalidAmount, raw, minorDigits)
	}
	minor := d.Shift(minorDigits)
	if !minor.BigInt().IsInt64() {
		return Money{}, fmt.Errorf("%w: %q overflows", ErrInvalidAmount, raw)
	}
	return Money{minor: minor.IntPart()}, nil
}

// clip shortens s for error messages.
func clip(s string) string {
	if len(s) <= maxAmountLen {
		return s
	}
	return s[:maxAmountLen] + "..."
}

// Minor returns the amount in minor units.
func (m Money) Minor() int64 { return m.minor }

func (m Money) IsZero() bool     { return m.minor == 0 }
func (m Money) IsNegative() bool { return m.minor < 0 }

func (m Money) Add(o Money) Money { return Money{minor: m.minor + o.minor} }
func (m Money) Sub(o Money) Money { return Money{minor: m.minor - o.minor} }

// Cmp returns -1, 0 or +1 depending on whether m is less than, equal to or
// greater than o.
func (m Money) Cmp(o Money) int {
	switch {
	case m.minor < o.minor:
		return -1
	case m.minor > o.minor:
		return 1
	default:
		return 0
	}
}

// MulRat returns round_half_up(m * num / den). Only non-negative operands
// and a positive denominator are accepted.
func (m Money) MulRat(num, den int64) (Money, error) {
	if m.minor < 0 || num < 0 || den <= 0 {
		return Money{}, fmt.Errorf("%w: cannot scale %s by %d/%d", ErrInvalidAmount, m, num, den)
	}
	product := decimal.NewFromInt(m.minor).Mul(decimal.NewFromInt(num))
	divisor := decimal.NewFromInt(den)
	q, r := product.QuoRem(divisor, 0)
	if r.Add(r).GreaterThanOrEqual(divisor) {
		q = q.Add(decimal.NewFromInt(1))
	}
	if !q.BigInt().IsInt64() {
		return Money{}, fmt.Errorf("%w: %s * %d / %d overflows", ErrInvalidAmount, m, num, den)
	}
	return Money{minor: q.IntPart()}, nil
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.minor, -minorDigits)
}

func (m Money) String() string {
	return m.Decimal().StringFixed(minorDigits)
}

// MarshalJSON encodes the amount as a decimal string ("500.00").
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts either a decimal string or a JSON number.
func (m *Money) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}
	parsed, err := ParseMoney(raw)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Scan reads a BIGINT column of minor units.
func (m *Money) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		m.minor = v
	case int32:
		m.minor = int64(v)
	case nil:
		return fmt.Errorf("%w: NULL money value", ErrInvalidAmount)
	default:
		return fmt.Errorf("cannot scan %T into Money", src)
	}
	return nil
}

// Value stores the amount as minor units.
func (m Money) Value() (driver.Value, error) {
	return m.minor, nil
}
