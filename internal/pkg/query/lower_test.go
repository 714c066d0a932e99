package query

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camal/business-management/internal/pkg/filter"
)

func TestLower_FlattensTopLevelAnd(t *testing.T) {
	node := filter.And{Nodes: []filter.Node{
		filter.Compare{Field: "deleted", Op: filter.OpEq, Value: false},
		filter.Compare{Field: "product_name", Op: filter.OpContains, Value: "Widget"},
	}}

	conds := Lower(node)
	require.Len(t, conds, 2)

	stmt := From("products").Where(conds[0]).Where(conds[1]).Build()
	assert.Equal(t, "SELECT * FROM products WHERE deleted = @p0 AND LOWER(product_name) LIKE @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": false,
		"p1": "%widget%",
	}, stmt.Params)
}

func TestLower_NumericBoundsCarryRatValues(t *testing.T) {
	node := filter.And{Nodes: []filter.Node{
		filter.Compare{Field: "sell_price", Op: filter.OpGte, Value: big.NewRat(5, 1)},
		filter.Compare{Field: "sell_price", Op: filter.OpLte, Value: big.NewRat(21, 2)},
	}}

	conds := Lower(node)
	require.Len(t, conds, 2)

	stmt := From("products").Where(conds[0]).Where(conds[1]).Build()
	assert.Equal(t, "SELECT * FROM products WHERE sell_price >= @p0 AND sell_price <= @p1", stmt.SQL)

	// NUMERIC params travel as big.Rat values, not pointers.
	low, ok := stmt.Params["p0"].(big.Rat)
	require.True(t, ok)
	assert.Zero(t, low.Cmp(big.NewRat(5, 1)))
	high, ok := stmt.Params["p1"].(big.Rat)
	require.True(t, ok)
	assert.Zero(t, high.Cmp(big.NewRat(21, 2)))
}

func TestLower_OrGroup(t *testing.T) {
	node := filter.Or{Nodes: []filter.Node{
		filter.Compare{Field: "url", Op: filter.OpContains, Value: "shop"},
		filter.Compare{Field: "description", Op: filter.OpContains, Value: "shop"},
	}}

	conds := Lower(node)
	require.Len(t, conds, 1)

	stmt := From("products").Where(conds[0]).Build()
	assert.Equal(t, "SELECT * FROM products WHERE (LOWER(url) LIKE @p0 OR LOWER(description) LIKE @p1)", stmt.SQL)
}

func TestLower_SingleCompare(t *testing.T) {
	conds := Lower(filter.Compare{Field: "deleted", Op: filter.OpEq, Value: false})
	require.Len(t, conds, 1)

	stmt := From("massons").Where(conds[0]).Build()
	assert.Equal(t, "SELECT * FROM massons WHERE deleted = @p0", stmt.SQL)
}
