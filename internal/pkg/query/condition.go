package query

import (
	"fmt"
	"strings"
)

// Condition represents a WHERE clause condition.
// Implementations generate SQL fragments and parameter maps using
// Spanner's named parameter format (@paramName).
type Condition interface {
	// SQL returns the SQL fragment and parameter map for this condition.
	// paramIndex is used to generate unique parameter names (@p0, @p1, etc.)
	SQL(paramIndex int) (string, map[string]interface{})
}

// eqCondition implements equality comparison (field = value).
type eqCondition struct {
	field string
	value interface{}
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("deleted", false) generates "deleted = @p0"
func Eq(field string, value interface{}) Condition {
	return &eqCondition{
		field: field,
		value: value,
	}
}

func (c *eqCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s = @%s", c.field, paramName)
	return sql, map[string]interface{}{paramName: c.value}
}

// containsFoldCondition implements case-insensitive substring matching.
type containsFoldCondition struct {
	field   string
	pattern string
}

// ContainsFold creates a WHERE condition matching rows whose field contains
// the pattern anywhere, ignoring case.
// Example: ContainsFold("product_name", "Test") generates
// "LOWER(product_name) LIKE @p0" with parameter "%test%".
func ContainsFold(field, pattern string) Condition {
	return &containsFoldCondition{
		field:   field,
		pattern: pattern,
	}
}

func (c *containsFoldCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("LOWER(%s) LIKE @%s", c.field, paramName)
	return sql, map[string]interface{}{paramName: "%" + strings.ToLower(c.pattern) + "%"}
}

// cmpCondition implements inclusive bound comparisons.
type cmpCondition struct {
	field    string
	operator string
	value    interface{}
}

// Gte creates a WHERE condition for an inclusive lower bound (field >= value).
func Gte(field string, value interface{}) Condition {
	return &cmpCondition{field: field, operator: ">=", value: value}
}

// Lte creates a WHERE condition for an inclusive upper bound (field <= value).
func Lte(field string, value interface{}) Condition {
	return &cmpCondition{field: field, operator: "<=", value: value}
}

func (c *cmpCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s %s @%s", c.field, c.operator, paramName)
	return sql, map[string]interface{}{paramName: c.value}
}

// groupCondition joins child conditions with a boolean operator.
type groupCondition struct {
	operator string
	children []Condition
}

// Or creates a parenthesized group of conditions joined with OR.
func Or(children ...Condition) Condition {
	return &groupCondition{operator: " OR ", children: children}
}

// AllOf creates a parenthesized group of conditions joined with AND.
func AllOf(children ...Condition) Condition {
	return &groupCondition{operator: " AND ", children: children}
}

func (c *groupCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	if len(c.children) == 1 {
		return c.children[0].SQL(paramIndex)
	}

	parts := make([]string, 0, len(c.children))
	params := make(map[string]interface{})
	for _, child := range c.children {
		fragment, childParams := child.SQL(paramIndex)
		parts = append(parts, fragment)
		for k, v := range childParams {
			params[k] = v
		}
		paramIndex += len(childParams)
	}
	return "(" + strings.Join(parts, c.operator) + ")", params
}
