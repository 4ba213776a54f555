package normalize

import (
	"errors"
	"testing"

	"github.com/npillmayer/cnf/grammar"
	"github.com/npillmayer/cnf/internal/langtest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNameGenSkipsTakenNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnf.normalize")
	defer teardown()
	//
	g := grammar.MustParse(map[string][]string{
		"S":  {"V1V3"},
		"V1": {"a"},
	})
	gen := NewNameGen(g)
	for i, expected := range []string{"V2", "V4", "V5"} {
		if name := gen.Next(); name != expected {
			t.Errorf("call %d: expected fresh name %s, got %s", i, expected, name)
		}
	}
	other := NewNameGen(g)
	if name := other.Next(); name != "V2" {
		t.Errorf("expected independent generator to start over, got %s", name)
	}
}

func TestIsolateStartUnchanged(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnf.normalize")
	defer teardown()
	//
	g := grammar.MustParse(map[string][]string{
		"S": {"AB"},
		"A": {"a", "AA"},
		"B": {"b"},
	})
	h, start := IsolateStart(g, "S", NewNameGen(g))
	if start != "S" {
		t.Errorf("expected start variable to stay S, is %s", start)
	}
	if !h.Equal(g) {
		t.Errorf("expected grammar to be unchanged, got\n%s", h)
	}
}

func TestIsolateStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnf.normalize")
	defer teardown()
	//
	g := grammar.MustParse(map[string][]string{
		"S": {"aSb", "A"},
		"A": {"S", "a"},
	})
	h, start := IsolateStart(g, "S", NewNameGen(g))
	if start != "S0" {
		t.Fatalf("expected new start variable S0, is %s", start)
	}
	if h.Alternatives("S0") != "S" {
		t.Errorf("expected S0 -> S, is S0 -> %s", h.Alternatives("S0"))
	}
	if h.Variables()[0] != "S0" {
		t.Errorf("expected S0 to be declared first, got %v", h.Variables())
	}
	if g.Has("S0") {
		t.Error("expected input grammar to be left untouched")
	}
}

func TestIsolateStartCollision(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnf.normalize")
	defer teardown()
	//
	g := grammar.MustParse(map[string][]string{
		"S":  {"aS", "S0"},
		"S0": {"b"},
		"V1": {"c"},
	})
	gen := NewNameGen(g)
	h, start := IsolateStart(g, "S", gen)
	if start != "V2" {
		t.Fatalf("expected new start variable V2, is %s", start)
	}
	if h.Alternatives("V2") != "S" || h.Alternatives("S0") != "b" {
		t.Errorf("unexpected grammar\n%s", h)
	}
	if name := gen.Next(); name != "V3" {
		t.Errorf("expected generator to continue with V3, got %s", name)
	}
}

func TestNullableSoundness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnf.normalize")
	defer teardown()
	//
	for i, rules := range []map[string][]string{
		{"S": {"ABC"}, "A": {"ε", "a"}, "B": {"ε", "b"}, "C": {"c"}},
		{"S": {"AB"}, "A": {"BB"}, "B": {"ε"}},
		{"S": {"A"}, "A": {"S", "a"}},
		{"S": {"AS", "ε"}, "A": {"aA", "B"}, "B": {"ε", "Cb"}, "C": {}},
		{"S": {"XY"}, "X": {"Y"}, "Y": {"X"}},
		{"S": {"Ab"}, "A": {"ε"}},
		{"S": {}},
	} {
		g := grammar.MustParse(rules)
		nullable := Nullable(g)
		for _, v := range g.Variables() {
			if nullable.Contains(v) != langtest.DerivesEmpty(g, v) {
				t.Errorf("grammar %d: nullable(%s) = %v, derivation says otherwise",
					i, v, nullable.Contains(v))
			}
		}
	}
}

func TestEliminateEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnf.normalize")
	defer teardown()
	//
	g := grammar.MustParse(map[string][]string{
		"S": {"ABC"},
		"A": {"ε", "a"},
		"B": {"ε", "b"},
		"C": {"c"},
	})
	h, err := EliminateEpsilon(g, "S")
	if err != nil {
		t.Fatal(err)
	}
	expected := grammar.MustParse(map[string][]string{
		"S": {"C", "AC", "BC", "ABC"},
		"A": {"a"},
		"B": {"b"},
		"C": {"c"},
	})
	if !h.Equal(expected) {
		t.Errorf("expected\n%s, got\n%s", expected, h)
	}
}

func TestEliminateEpsilonKeepsStartEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnf.normalize")
	defer teardown()
	//
	g := grammar.MustParse(map[string][]string{
		"S0": {"S"},
		"S":  {"AA"},
		"A":  {"ε", "a"},
	})
	h, err := EliminateEpsilon(g, "S0")
	if err != nil {
		t.Fatal(err)
	}
	expected := grammar.MustParse(map[string][]string{
		"S0": {"S", "ε"},
		"S":  {"A", "AA"},
		"A":  {"a"},
	})
	if !h.Equal(expected) {
		t.Errorf("expected\n%s, got\n%s", expected, h)
	}
}

func TestEliminateEpsilonTooManyNullables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnf.normalize")
	defer teardown()
	//
	body := ""
	for i := 0; i <= maxNullable; i++ {
		body += "A"
	}
	g := grammar.MustParse(map[string][]string{"S": {body}, "A": {"ε", "a"}})
	if _, err := EliminateEpsilon(g, "S"); !errors.Is(err, ErrTooManyNullable) {
		t.Errorf("expected ErrTooManyNullable, got %v", err)
	}
	if _, err := ToCNF(g, "S"); !errors.Is(err, ErrTooManyNullable) {
		t.Errorf("expected conversion to fail with ErrTooManyNullable, got %v", err)
	}
}

func TestUnitCycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnf.normalize")
	defer teardown()
	//
	g := grammar.MustParse(map[string][]string{
		"S": {"A"},
		"A": {"B", "a"},
		"B": {"A", "b", "AB"},
	})
	h := EliminateUnits(g)
	ab := grammar.MustParse(map[string][]string{"X": {"a", "b", "AB"}}).Productions("X")
	expected := grammar.New()
	for _, v := range []string{"S", "A", "B"} {
		expected.Add(v, ab...)
	}
	if !h.Equal(expected) {
		t.Errorf("expected\n%s, got\n%s", expected, h)
	}
	if closure := UnitClosure(g, "A"); len(closure) != 2 || closure[0] != "A" {
		t.Errorf("expected unit closure of A to be [A B], is %v", closure)
	}
}

func TestUnitChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnf.normalize")
	defer teardown()
	//
	g := grammar.MustParse(map[string][]string{
		"S": {"A", "a"},
		"A": {"B", "b"},
		"B": {"C", "c"},
		"C": {"d"},
	})
	h := EliminateUnits(g)
	expected := grammar.MustParse(map[string][]string{
		"S": {"a", "b", "c", "d"},
		"A": {"b", "c", "d"},
		"B": {"c", "d"},
		"C": {"d"},
	})
	if !h.Equal(expected) {
		t.Errorf("expected\n%s, got\n%s", expected, h)
	}
}

func TestBinarizeSharesSubstitutes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnf.normalize")
	defer teardown()
	//
	g := grammar.MustParse(map[string][]string{
		"S": {"aSb", "ab", "a"},
		"A": {"bA", "Aa"},
	})
	h, subst := Binarize(g, NewNameGen(g))
	if len(subst) != 2 {
		t.Fatalf("expected 2 substitute variables, got %v", subst)
	}
	for terminal, v := range subst {
		if h.Alternatives(v) != terminal {
			t.Errorf("expected %s -> %s, got %s -> %s", v, terminal, v, h.Alternatives(v))
		}
	}
	count := 0
	for _, v := range h.Variables() {
		for _, p := range h.Productions(v) {
			if len(p) == 1 && p[0].IsTerminal() && p[0].Name == "a" && v != "S" {
				count++
			}
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one substitute production for 'a', found %d", count)
	}
	if err := Validate(h, "S0"); err != nil {
		t.Error(err)
	}
}

func TestBinarizeChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnf.normalize")
	defer teardown()
	//
	g := grammar.MustParse(map[string][]string{"S": {"ABCDE"}})
	h, subst := Binarize(g, NewNameGen(g))
	if len(subst) != 0 {
		t.Errorf("expected no substitutes, got %v", subst)
	}
	expected := grammar.MustParse(map[string][]string{
		"S":  {"AV1"},
		"V1": {"BV2"},
		"V2": {"CV3"},
		"V3": {"DE"},
	})
	if !h.Equal(expected) {
		t.Errorf("expected\n%s, got\n%s", expected, h)
	}
}
