package filter

import "strings"

// DeletedField is the soft-delete flag column shared by every resource.
const DeletedField = "deleted"

// TextField maps a query parameter to a text column.
type TextField struct {
	Param string
	Field string
}

// NumberField maps a query parameter to a numeric column. The builder also
// recognizes the derived min<Param>/max<Param> range parameters.
type NumberField struct {
	Param string
	Field string
}

// Schema declares the filterable surface of one resource type.
type Schema struct {
	// Search lists the columns matched (OR-combined) by the q parameter.
	Search []string
	// Texts are parameters matched by case-insensitive containment.
	Texts []TextField
	// Numbers are parameters matched by decimal equality plus min/max bounds.
	Numbers []NumberField
}

// Build translates raw query parameters into a predicate tree.
//
// The soft-delete visibility clause is always the first conjunct, even when
// no parameter is supplied. Absent and blank parameters contribute nothing.
// A numeric parameter that does not parse as a decimal returns a
// *BadValueError; it is never silently dropped.
func Build(schema Schema, params map[string]string) (Node, error) {
	conjuncts := []Node{Compare{Field: DeletedField, Op: OpEq, Value: false}}

	if q := strings.TrimSpace(params["q"]); q != "" && len(schema.Search) > 0 {
		ors := make([]Node, 0, len(schema.Search))
		for _, field := range schema.Search {
			ors = append(ors, Compare{Field: field, Op: OpContains, Value: q})
		}
		conjuncts = append(conjuncts, Or{Nodes: ors})
	}

	for _, tf := range schema.Texts {
		if v := strings.TrimSpace(params[tf.Param]); v != "" {
			conjuncts = append(conjuncts, Compare{Field: tf.Field, Op: OpContains, Value: v})
		}
	}

	for _, nf := range schema.Numbers {
		for _, bound := range []struct {
			param string
			op    Op
		}{
			{nf.Param, OpEq},
			{minParam(nf.Param), OpGte},
			{maxParam(nf.Param), OpLte},
		} {
			raw := strings.TrimSpace(params[bound.param])
			if raw == "" {
				continue
			}
			rat, ok := ParseDecimal(raw)
			if !ok {
				return nil, &BadValueError{Param: bound.param, Value: raw}
			}
			conjuncts = append(conjuncts, Compare{Field: nf.Field, Op: bound.op, Value: rat})
		}
	}

	return And{Nodes: conjuncts}, nil
}

func minParam(param string) string {
	return "min" + upperFirst(param)
}

func maxParam(param string) string {
	return "max" + upperFirst(param)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
