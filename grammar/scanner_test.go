package grammar

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnf.grammar")
	defer teardown()
	//
	input := `# start symbol on RHS
S -> aSb | A
A -> S | a

B ->
`
	g, err := ParseText(input)
	if err != nil {
		t.Fatal(err)
	}
	expected := MustParse(map[string][]string{
		"S": {"aSb", "A"},
		"A": {"S", "a"},
		"B": {},
	})
	if !g.Equal(expected) {
		t.Errorf("expected grammar\n%s, got\n%s", expected, g)
	}
	if vars := g.Variables(); vars[0] != "S" {
		t.Errorf("expected variables in order of appearance, got %v", vars)
	}
}

func TestParseTextSeparators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnf.grammar")
	defer teardown()
	//
	g, err := ParseText("S → ABC; A -> ε | a; B -> ε | b; C -> c")
	if err != nil {
		t.Fatal(err)
	}
	expected := MustParse(map[string][]string{
		"S": {"ABC"},
		"A": {"ε", "a"},
		"B": {"ε", "b"},
		"C": {"c"},
	})
	if !g.Equal(expected) {
		t.Errorf("expected grammar\n%s, got\n%s", expected, g)
	}
}

func TestParseTextAccumulates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnf.grammar")
	defer teardown()
	//
	g, err := ParseText("S -> a\nS -> b\n")
	if err != nil {
		t.Fatal(err)
	}
	if g.Alternatives("S") != "a | b" {
		t.Errorf("expected S -> a | b, got S -> %s", g.Alternatives("S"))
	}
}

func TestParseTextErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnf.grammar")
	defer teardown()
	//
	for i, test := range []struct {
		input string
		err   error
	}{
		{input: "S aSb", err: ErrSyntax},
		{input: "S -> a |", err: ErrSyntax},
		{input: "S -> a | | b", err: ErrSyntax},
		{input: "-> a", err: ErrSyntax},
		{input: "S -> a b", err: ErrSyntax},
		{input: "s -> a", err: ErrIllegalSymbol},
		{input: "S -> aε", err: ErrIllegalSymbol},
	} {
		_, err := ParseText(test.input)
		if !errors.Is(err, test.err) {
			t.Errorf("test %d: expected error %v for %q, got %v", i, test.err, test.input, err)
		}
	}
}

func TestDisplayReadsBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnf.grammar")
	defer teardown()
	//
	g := MustParse(map[string][]string{
		"S0": {"S", "ε"},
		"S":  {"V1V2", "a"},
		"V1": {"a"},
		"V2": {"SV1"},
	})
	var out bytes.Buffer
	if err := Display(&out, g, "round trip"); err != nil {
		t.Fatal(err)
	}
	h, err := ReadText(strings.NewReader(out.String()))
	if err != nil {
		t.Fatal(err)
	}
	if !g.Equal(h) {
		t.Errorf("expected grammar to read back unchanged, got\n%s", h)
	}
}
