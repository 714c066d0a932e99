package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// storageScale matches the NUMERIC(19,4) precision of the price columns.
const storageScale = 4

// Money represents a monetary value with exact decimal arithmetic backed by
// big.Rat, avoiding floating-point drift in price filters and storage.
// Money values are immutable; every operation returns a new instance.
type Money struct {
	rat *big.Rat
}

// NewMoneyFromRat creates a Money from a big.Rat. The rational is copied.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return &Money{rat: big.NewRat(0, 1)}
	}
	return &Money{rat: new(big.Rat).Set(rat)}
}

// ParseMoney parses a plain decimal string such as "10", "10.5" or "-0.25".
// Fraction and exotic notations are rejected.
func ParseMoney(s string) (*Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty decimal value")
	}
	if strings.ContainsAny(s, "/_ ") {
		return nil, fmt.Errorf("invalid decimal value %q", s)
	}
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid decimal value %q", s)
	}
	return &Money{rat: rat}, nil
}

// Rat returns a copy of the underlying rational, suitable for storage as a
// Spanner NUMERIC value.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.rat)
}

// Cmp compares two Money values: -1 if m < other, 0 if equal, +1 if m > other.
func (m *Money) Cmp(other *Money) int {
	return m.rat.Cmp(other.rat)
}

// Equal returns true if both values represent the same amount.
func (m *Money) Equal(other *Money) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.rat.Cmp(other.rat) == 0
}

// IsNegative returns true if the money value is below zero.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// String returns the shortest decimal representation within storage scale,
// e.g. "10.5" for 21/2 and "10" for 10/1.
func (m *Money) String() string {
	s := m.rat.FloatString(storageScale)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

// MarshalJSON encodes the value as a JSON number.
func (m *Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "null" {
		return fmt.Errorf("null is not a valid decimal value")
	}
	parsed, err := ParseMoney(s)
	if err != nil {
		return err
	}
	m.rat = parsed.rat
	return nil
}
