package query

import (
	"math/big"

	"github.com/camal/business-management/internal/pkg/filter"
)

// Lower translates a predicate tree into WHERE conditions. A top-level AND
// is flattened so each conjunct becomes its own condition, which keeps the
// generated SQL free of redundant parentheses.
func Lower(node filter.Node) []Condition {
	if and, ok := node.(filter.And); ok {
		conds := make([]Condition, 0, len(and.Nodes))
		for _, child := range and.Nodes {
			conds = append(conds, lowerNode(child))
		}
		return conds
	}
	return []Condition{lowerNode(node)}
}

func lowerNode(node filter.Node) Condition {
	switch n := node.(type) {
	case filter.Compare:
		switch n.Op {
		case filter.OpContains:
			pattern, _ := n.Value.(string)
			return ContainsFold(n.Field, pattern)
		case filter.OpGte:
			return Gte(n.Field, paramValue(n.Value))
		case filter.OpLte:
			return Lte(n.Field, paramValue(n.Value))
		default:
			return Eq(n.Field, paramValue(n.Value))
		}
	case filter.And:
		children := make([]Condition, 0, len(n.Nodes))
		for _, child := range n.Nodes {
			children = append(children, lowerNode(child))
		}
		return AllOf(children...)
	case filter.Or:
		children := make([]Condition, 0, len(n.Nodes))
		for _, child := range n.Nodes {
			children = append(children, lowerNode(child))
		}
		return Or(children...)
	default:
		// Unknown nodes cannot be lowered; match nothing rather than everything.
		return Eq("1", int64(0))
	}
}

// paramValue converts tree values to the representations the Spanner client
// encodes: NUMERIC parameters travel as big.Rat values.
func paramValue(v interface{}) interface{} {
	if rat, ok := v.(*big.Rat); ok && rat != nil {
		return *rat
	}
	return v
}
