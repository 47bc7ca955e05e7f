package query

import (
	"fmt"
	"strings"

	"udm/internal/filter"
	"udm/internal/schema"
)

// SelectWhere builds `SELECT <every column of table, in schema.Columns
// order> FROM <table>` AND-joining predicates. An
// empty clause list returns every row (spec.md §8 boundary behaviour).
func SelectWhere(table schema.Table, clauses []filter.Clause) Statement {
	cols := schema.Columns(table)
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	text := fmt.Sprintf("SELECT %s FROM %s", strings.Join(names, ", "), table)
	if len(clauses) == 0 {
		return Statement{Text: text}
	}

	var where []string
	var args []any
	argN := 1
	for _, c := range clauses {
		frag, fragArgs := renderClause(c, &argN)
		where = append(where, frag)
		args = append(args, fragArgs...)
	}
	text += " WHERE " + strings.Join(where, " AND ")
	return Statement{Text: text, Args: args}
}

func renderClause(c filter.Clause, argN *int) (string, []any) {
	col := schema.ColumnToString(c.Column)
	switch c.Op {
	case filter.OpIn, filter.OpNotIn:
		placeholders := make([]string, len(c.Values))
		args := make([]any, len(c.Values))
		for i, v := range c.Values {
			placeholders[i] = placeholder(*argN)
			args[i] = v
			*argN++
		}
		op := "IN"
		if c.Op == filter.OpNotIn {
			op = "NOT IN"
		}
		return fmt.Sprintf("%s %s (%s)", col, op, strings.Join(placeholders, ", ")), args
	case filter.OpIs:
		v := c.Values[0]
		if strings.EqualFold(v, "null") {
			return fmt.Sprintf("%s IS NULL", col), nil
		}
		ph := placeholder(*argN)
		*argN++
		return fmt.Sprintf("%s IS %s", col, ph), []any{v}
	case filter.OpIsNot:
		v := c.Values[0]
		if strings.EqualFold(v, "null") {
			return fmt.Sprintf("%s IS NOT NULL", col), nil
		}
		ph := placeholder(*argN)
		*argN++
		return fmt.Sprintf("%s IS DISTINCT FROM %s", col, ph), []any{v}
	default:
		sqlOp := sqlOperator(c.Op)
		ph := placeholder(*argN)
		*argN++
		return fmt.Sprintf("%s %s %s", col, sqlOp, ph), []any{c.Values[0]}
	}
}

func sqlOperator(op filter.Op) string {
	switch op {
	case filter.OpEq:
		return "="
	case filter.OpNeq:
		return "!="
	case filter.OpLt:
		return "<"
	case filter.OpLte:
		return "<="
	case filter.OpGte:
		return ">="
	case filter.OpGt:
		return ">"
	case filter.OpLike:
		return "LIKE"
	case filter.OpNotLike:
		return "NOT LIKE"
	default:
		return "="
	}
}
