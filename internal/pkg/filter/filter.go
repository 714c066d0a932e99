// Package filter builds boolean predicates over entity fields from raw
// query parameters. The predicate is a plain expression tree with no
// knowledge of any storage engine; lowering to SQL lives in pkg/query and
// an in-memory evaluator is provided for stores without a query language.
package filter

import (
	"fmt"
	"math/big"
	"strings"
)

// Op identifies a comparison operator.
type Op int

const (
	// OpEq is exact equality.
	OpEq Op = iota
	// OpContains is a case-insensitive substring match.
	OpContains
	// OpGte is an inclusive lower bound.
	OpGte
	// OpLte is an inclusive upper bound.
	OpLte
)

// Node is a node of the predicate tree.
type Node interface {
	isNode()
}

// Compare is a single comparison of a field against a value.
// Value is a string for OpContains, a *big.Rat for numeric operators,
// or a bool for flag equality.
type Compare struct {
	Field string
	Op    Op
	Value interface{}
}

// And combines child predicates with logical AND, preserving order.
type And struct {
	Nodes []Node
}

// Or combines child predicates with logical OR, preserving order.
type Or struct {
	Nodes []Node
}

func (Compare) isNode() {}
func (And) isNode()     {}
func (Or) isNode()      {}

// BadValueError reports a filter parameter whose value cannot be parsed.
type BadValueError struct {
	Param string
	Value string
}

func (e *BadValueError) Error() string {
	return fmt.Sprintf("invalid value %q for parameter %q", e.Value, e.Param)
}

// ParseDecimal parses a decimal string ("10", "10.50") into a rational.
// Fractions and other big.Rat notations are rejected.
func ParseDecimal(s string) (*big.Rat, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "/_ ") {
		return nil, false
	}
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, false
	}
	return rat, ok
}
