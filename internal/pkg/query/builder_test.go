package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("products").
		Select("id", "product_name", "url").
		Build()

	assert.Equal(t, "SELECT id, product_name, url FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("products").Build()

	assert.Equal(t, "SELECT * FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SingleWhereCondition(t *testing.T) {
	stmt := From("products").
		Select("id", "product_name").
		Where(Eq("deleted", false)).
		Build()

	assert.Equal(t, "SELECT id, product_name FROM products WHERE deleted = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": false,
	}, stmt.Params)
}

func TestBuilder_MultipleWhereConditions(t *testing.T) {
	stmt := From("products").
		Select("id", "product_name").
		Where(Eq("deleted", false)).
		Where(ContainsFold("product_name", "Widget")).
		Build()

	assert.Equal(t, "SELECT id, product_name FROM products WHERE deleted = @p0 AND LOWER(product_name) LIKE @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": false,
		"p1": "%widget%",
	}, stmt.Params)
}

func TestBuilder_BoundConditions(t *testing.T) {
	stmt := From("products").
		Select("id").
		Where(Gte("sell_price", int64(10))).
		Where(Lte("sell_price", int64(20))).
		Build()

	assert.Equal(t, "SELECT id FROM products WHERE sell_price >= @p0 AND sell_price <= @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": int64(10),
		"p1": int64(20),
	}, stmt.Params)
}

func TestBuilder_OrGroup(t *testing.T) {
	stmt := From("products").
		Select("id").
		Where(Eq("deleted", false)).
		Where(Or(
			ContainsFold("url", "shop"),
			ContainsFold("product_name", "shop"),
			ContainsFold("description", "shop"),
		)).
		Build()

	assert.Equal(t,
		"SELECT id FROM products WHERE deleted = @p0 AND "+
			"(LOWER(url) LIKE @p1 OR LOWER(product_name) LIKE @p2 OR LOWER(description) LIKE @p3)",
		stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": false,
		"p1": "%shop%",
		"p2": "%shop%",
		"p3": "%shop%",
	}, stmt.Params)
}

func TestBuilder_OrGroupSingleChildUnwrapped(t *testing.T) {
	stmt := From("massons").
		Select("id").
		Where(Or(ContainsFold("name", "Jones"))).
		Build()

	assert.Equal(t, "SELECT id FROM massons WHERE LOWER(name) LIKE @p0", stmt.SQL)
}

func TestBuilder_OrderByAsc(t *testing.T) {
	stmt := From("products").
		Select("id", "product_name").
		OrderBy("created_at", Asc).
		Build()

	assert.Equal(t, "SELECT id, product_name FROM products ORDER BY created_at ASC", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_CompositeOrderBy(t *testing.T) {
	stmt := From("products").
		Select("id").
		OrderBy("created_at", Desc).
		OrderBy("id", Asc).
		Build()

	assert.Equal(t, "SELECT id FROM products ORDER BY created_at DESC, id ASC", stmt.SQL)
}

func TestBuilder_LimitAndOffset(t *testing.T) {
	stmt := From("products").
		Select("id", "product_name").
		Limit(10).
		Offset(20).
		Build()

	assert.Equal(t, "SELECT id, product_name FROM products LIMIT @limit OFFSET @offset", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"limit":  int64(10),
		"offset": int64(20),
	}, stmt.Params)
}

func TestBuilder_CompleteQuery(t *testing.T) {
	stmt := From("products").
		Select("id", "product_name", "sell_price").
		Where(Eq("deleted", false)).
		Where(Gte("sell_price", int64(5))).
		OrderBy("created_at", Desc).
		Limit(50).
		Offset(100).
		Build()

	expectedSQL := "SELECT id, product_name, sell_price FROM products " +
		"WHERE deleted = @p0 AND sell_price >= @p1 " +
		"ORDER BY created_at DESC LIMIT @limit OFFSET @offset"
	assert.Equal(t, expectedSQL, stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0":     false,
		"p1":     int64(5),
		"limit":  int64(50),
		"offset": int64(100),
	}, stmt.Params)
}

func TestBuilder_Count(t *testing.T) {
	builder := From("products").
		Select("id", "product_name").
		Where(Eq("deleted", false)).
		OrderBy("created_at", Desc).
		Limit(50).
		Offset(100)

	countStmt := builder.Count().Build()
	assert.Equal(t, "SELECT COUNT(*) FROM products WHERE deleted = @p0", countStmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": false,
	}, countStmt.Params)

	// The original builder is unchanged.
	mainStmt := builder.Build()
	assert.Contains(t, mainStmt.SQL, "LIMIT @limit")
	assert.Contains(t, mainStmt.SQL, "ORDER BY created_at DESC")
}

func TestBuilder_CountWithoutFilters(t *testing.T) {
	stmt := From("products").
		Select("id", "product_name").
		Count().
		Build()

	assert.Equal(t, "SELECT COUNT(*) FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("products").Select("id")

	stmt1 := base.Where(Eq("deleted", false)).Build()
	stmt2 := base.Where(ContainsFold("url", "shop")).Build()

	assert.Contains(t, stmt1.SQL, "deleted = @p0")
	assert.NotContains(t, stmt1.SQL, "LIKE")

	assert.Contains(t, stmt2.SQL, "LOWER(url) LIKE @p0")
	assert.NotContains(t, stmt2.SQL, "deleted")
}
