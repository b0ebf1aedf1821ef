// Package money provides a fixed-point monetary amount stored in integer
// minor units (cents). All arithmetic stays in int64; conversion to float64
// happens only at the serialization boundary.
package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidAmount = errors.New("invalid monetary amount")
	ErrNotFinite     = errors.New("amount is not a finite number")
)

// Money is an amount in minor units of the account currency.
type Money struct {
	Cents int64
}

// FromCents wraps a raw minor-unit value.
func FromCents(cents int64) Money {
	return Money{Cents: cents}
}

// Parse converts a decimal string such as "100.50" or "-12" into Money
// without going through binary floating point. At most two fraction digits
// are accepted; fewer are right-padded ("1.5" == 150 cents).
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" {
		return Money{}, ErrInvalidAmount
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
		if whole == "" && frac == "" {
			return Money{}, ErrInvalidAmount
		}
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return Money{}, fmt.Errorf("%w: more than two fraction digits", ErrInvalidAmount)
	}
	// The sign was consumed above; only bare digits may remain. ParseInt
	// alone would let a second sign through in either part.
	if !isDigits(whole) || !isDigits(frac) {
		return Money{}, ErrInvalidAmount
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	if units > (math.MaxInt64-99)/100 {
		return Money{}, fmt.Errorf("%w: amount out of range", ErrInvalidAmount)
	}
	cents64, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}

	total := units*100 + cents64
	if neg {
		total = -total
	}
	return Money{Cents: total}, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FromFloat converts a wire-level numeric amount to Money, rounding to the
// nearest cent. Rejects NaN and infinities.
func FromFloat(f float64) (Money, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Money{}, ErrNotFinite
	}
	return Money{Cents: int64(math.Round(f * 100))}, nil
}

// Float64 returns the wire representation. Precision loss past cents is
// accepted at this boundary only.
func (m Money) Float64() float64 {
	return float64(m.Cents) / 100
}

// Abs returns the non-negative magnitude.
func (m Money) Abs() Money {
	if m.Cents < 0 {
		return Money{Cents: -m.Cents}
	}
	return m
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

// Neg returns -m.
func (m Money) Neg() Money {
	return Money{Cents: -m.Cents}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.Cents > 0
}

// String formats the amount as a plain decimal, e.g. "100.50" or "-0.07".
func (m Money) String() string {
	cents := m.Cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
