package filter

import (
	"math/big"
	"strings"
)

// Eval evaluates a predicate tree against a record represented as a
// field-name to value map. It mirrors the SQL lowering semantics: contains
// is an unanchored case-insensitive match, numeric comparisons are exact
// rational comparisons. Missing fields never match.
func Eval(node Node, fields map[string]interface{}) bool {
	switch n := node.(type) {
	case And:
		for _, child := range n.Nodes {
			if !Eval(child, fields) {
				return false
			}
		}
		return true
	case Or:
		for _, child := range n.Nodes {
			if Eval(child, fields) {
				return true
			}
		}
		return false
	case Compare:
		return evalCompare(n, fields)
	default:
		return false
	}
}

func evalCompare(c Compare, fields map[string]interface{}) bool {
	actual, ok := fields[c.Field]
	if !ok {
		return false
	}

	switch c.Op {
	case OpContains:
		pattern, ok := c.Value.(string)
		if !ok {
			return false
		}
		text, ok := actual.(string)
		if !ok {
			return false
		}
		return strings.Contains(strings.ToLower(text), strings.ToLower(pattern))

	case OpEq:
		if want, ok := c.Value.(bool); ok {
			got, ok := actual.(bool)
			return ok && got == want
		}
		if want, ok := toRat(c.Value); ok {
			got, ok := toRat(actual)
			return ok && got.Cmp(want) == 0
		}
		if want, ok := c.Value.(string); ok {
			got, ok := actual.(string)
			return ok && got == want
		}
		return false

	case OpGte, OpLte:
		want, ok := toRat(c.Value)
		if !ok {
			return false
		}
		got, ok := toRat(actual)
		if !ok {
			return false
		}
		if c.Op == OpGte {
			return got.Cmp(want) >= 0
		}
		return got.Cmp(want) <= 0

	default:
		return false
	}
}

func toRat(v interface{}) (*big.Rat, bool) {
	switch r := v.(type) {
	case *big.Rat:
		return r, r != nil
	case big.Rat:
		return &r, true
	case int64:
		return new(big.Rat).SetInt64(r), true
	default:
		return nil, false
	}
}
