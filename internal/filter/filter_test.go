package filter_test

import (
	"testing"

	"udm/internal/apperr"
	"udm/internal/filter"
	"udm/internal/schema"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLen   int
		wantError bool
	}{
		{name: "empty text matches everything", text: "", wantLen: 0},
		{name: "simple equality", text: "name=vodka", wantLen: 1},
		{name: "not equal", text: "name!=vodka", wantLen: 1},
		{name: "in list", text: "kind in 1|2|3", wantLen: 1},
		{name: "not in list", text: "kind !in 1|2", wantLen: 1},
		{name: "comparison", text: "amount<=50", wantLen: 1},
		{name: "is null", text: "regulator_id is null", wantLen: 1},
		{name: "is not null", text: "regulator_id !is null", wantLen: 1},
		{name: "multiple AND-joined clauses", text: "is_active=true,kind=1", wantLen: 2},
		{name: "unknown column rejected", text: "nonexistent=1", wantError: true},
		{name: "no recognised operator", text: "garbage", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clauses, err := filter.Parse(schema.Ingredients, tt.text)
			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(clauses) != tt.wantLen {
				t.Fatalf("got %d clauses, want %d", len(clauses), tt.wantLen)
			}
		})
	}
}

func TestParseUnknownColumnIsInvalidInput(t *testing.T) {
	_, err := filter.Parse(schema.Ingredients, "bogus=1")
	if !apperr.Of(err, apperr.InvalidInput) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
}

func TestParseOperatorPrefixAmbiguity(t *testing.T) {
	// "!=" must not be parsed as "=" with a leading "!" left in the field name,
	// and "<=" must not be parsed as "<" with a stray "=".
	clauses, err := filter.Parse(schema.Ingredients, "amount!=10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clauses) != 1 || clauses[0].Op != filter.OpNeq {
		t.Fatalf("got %+v, want one OpNeq clause", clauses)
	}

	clauses, err = filter.Parse(schema.Ingredients, "amount<=10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clauses) != 1 || clauses[0].Op != filter.OpLte {
		t.Fatalf("got %+v, want one OpLte clause", clauses)
	}
}

func TestParseMultiValueSplitsOnPipe(t *testing.T) {
	clauses, err := filter.Parse(schema.Ingredients, "kind in 1|2|3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clauses[0].Values) != 3 {
		t.Fatalf("got %d values, want 3", len(clauses[0].Values))
	}
}

func TestStringRoundTrip(t *testing.T) {
	texts := []string{"name=vodka", "kind!in1|2", "amount<=50"}
	for _, text := range texts {
		clauses, err := filter.Parse(schema.Ingredients, text)
		if err != nil {
			t.Fatalf("parse %q: %v", text, err)
		}
		if got := filter.Serialize(clauses); got != text {
			t.Errorf("round trip %q: got %q", text, got)
		}
	}
}

func TestIntValue(t *testing.T) {
	clauses, err := filter.Parse(schema.Ingredients, "regulator_id=42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := clauses[0].IntValue()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 {
		t.Errorf("got %d, want 42", v)
	}
}

func TestIntValueRejectsMultiValue(t *testing.T) {
	clauses, err := filter.Parse(schema.Ingredients, "kind in 1|2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := clauses[0].IntValue(); err == nil {
		t.Fatal("expected error for multi-value clause")
	}
}
