package pricing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidAmount  = errors.New("invalid monetary amount")
	ErrNonPositive    = errors.New("must be greater than 0")
	ErrAmountOverflow = errors.New("amount out of range")
)

// MaxCents is the largest value NUMERIC(10,2) can hold.
const MaxCents int64 = 99_999_999_99

// Money is an exact amount in minor units (cents).
type Money struct {
	cents int64
}

func FromCents(cents int64) Money { return Money{cents: cents} }

// ParseMoney accepts "500", "500.5" and "500.50". More than two fractional
// digits is rejected rather than rounded.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, _ := strings.Cut(s, ".")
	if !digits(whole) || len(frac) > 2 || (frac != "" && !digits(frac)) {
		return Money{}, ErrInvalidAmount
	}
	for len(frac) < 2 {
		frac += "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	if w > MaxCents/100 {
		return Money{}, ErrAmountOverflow
	}
	c := w*100 + f
	if neg {
		c = -c
	}
	return Money{cents: c}, nil
}

func (m Money) Cents() int64     { return m.cents }
func (m Money) IsPositive() bool { return m.cents > 0 }

func (m Money) Add(o Money) Money { return Money{cents: m.cents + o.cents} }

func (m Money) Mul(n int64) (Money, error) {
	if n != 0 && (m.cents > MaxCents/n || m.cents < -MaxCents/n) {
		return Money{}, ErrAmountOverflow
	}
	return Money{cents: m.cents * n}, nil
}

// String renders the amount with exactly two decimals, e.g. "1000.00".
func (m Money) String() string {
	c := m.cents
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.String())), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	v, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func digits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
