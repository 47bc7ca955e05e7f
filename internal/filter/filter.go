// Package filter implements the flat `<field><op><value>[,...]` filter
// language accepted by the catalog's collect-* RPCs (spec.md §4.3).
//
// The grammar is deliberately flat: no grouping, no OR, no precedence —
// the whole clause list is AND-joined. Op is a closed sum type rather
// than a free-form string specifically so the SQL builder never has to
// trust client-supplied operator text; combined with
// schema.StringToColumn's column whitelist, this is the entire line of
// defence against injection through the filter surface. Parse enforces
// both whitelists; String does not re-check a clause's column or operator
// and prints whatever the Clause holds.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"udm/internal/apperr"
	"udm/internal/schema"
)

// Op is one of the twelve whitelisted filter operators.
type Op string

const (
	OpEq        Op = "="
	OpNeq       Op = "!="
	OpIn        Op = "in"
	OpNotIn     Op = "!in"
	OpLt        Op = "<"
	OpLte       Op = "<="
	OpGte       Op = ">="
	OpGt        Op = ">"
	OpLike      Op = "like"
	OpNotLike   Op = "!like"
	OpIs        Op = "is"
	OpIsNot     Op = "!is"
)

// tokens lists each operator ahead of every shorter operator it contains,
// so Parse's scan doesn't mistake "!=" for "=" or "<=" for "<".
var tokens = []Op{OpNotIn, OpIn, OpLte, OpLt, OpGte, OpGt, OpNeq, OpNotLike, OpLike, OpIsNot, OpIs, OpEq}

func isMulti(op Op) bool { return op == OpIn || op == OpNotIn }

// Clause is one resolved `<column><op><value>` predicate.
type Clause struct {
	Column schema.Column
	Op     Op
	Values []string
}

// Parse splits the flat comma-joined clause text and resolves each
// field against table's column enum. An empty text returns nil, nil — an
// empty filter list means "match every row" (spec.md §8 boundary
// behaviour).
func Parse(table schema.Table, text string) ([]Clause, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	parts := strings.Split(text, ",")
	clauses := make([]Clause, 0, len(parts))
	for _, part := range parts {
		c, err := parseOne(table, part)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, c)
	}
	return clauses, nil
}

// parseOne tries each operator token longest-first. A token's text can
// legitimately appear inside a field name (e.g. "in" inside "kind"), so
// every occurrence is a candidate split point, not just the first one:
// a split is accepted only once the left-hand side resolves to a real
// column, which also lets an unknown-looking field fall through to a
// later, correct split rather than failing outright.
func parseOne(table schema.Table, part string) (Clause, error) {
	var columnErr error
	for _, op := range tokens {
		opStr := string(op)
		start := 0
		for {
			rel := strings.Index(part[start:], opStr)
			if rel < 0 {
				break
			}
			idx := start + rel
			start = idx + 1
			field := strings.TrimSpace(part[:idx])
			if field == "" {
				continue
			}
			col, err := schema.StringToColumn(table, field)
			if err != nil {
				if columnErr == nil {
					columnErr = err
				}
				continue
			}
			value := strings.TrimSpace(part[idx+len(opStr):])
			var values []string
			if isMulti(op) {
				values = strings.Split(value, "|")
			} else {
				values = []string{value}
			}
			return Clause{Column: col, Op: op, Values: values}, nil
		}
	}
	if columnErr != nil {
		return Clause{}, apperr.Wrap(apperr.InvalidInput, "unknown column in filter clause", columnErr)
	}
	return Clause{}, apperr.Newf(apperr.ParsingError, "malformed filter clause %q: no recognised operator", part)
}

// String serialises a single clause back to its textual form. Multi-value
// operators join their values with "|". String ∘ Parse is the identity
// on well-formed input (spec.md §8 round-trip law).
func (c Clause) String() string {
	return fmt.Sprintf("%s%s%s", schema.ColumnToString(c.Column), c.Op, strings.Join(c.Values, "|"))
}

// Serialize renders a clause list back to Parse's input format.
func Serialize(clauses []Clause) string {
	parts := make([]string, len(clauses))
	for i, c := range clauses {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

// IntValue parses the clause's single value as an int64, failing closed
// for multi-value clauses used where exactly one value is expected.
func (c Clause) IntValue() (int64, error) {
	if len(c.Values) != 1 {
		return 0, apperr.Newf(apperr.InvalidInput, "expected exactly one value for %s", c.Column.Name)
	}
	return strconv.ParseInt(c.Values[0], 10, 64)
}
