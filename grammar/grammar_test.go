package grammar

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStrings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnf.grammar")
	defer teardown()
	//
	g, err := FromStrings(map[string][]string{
		"S": {"aSb", "A"},
		"A": {"S", "a"},
		"B": {},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "S"}, g.Variables())
	assert.Equal(t, 4, g.Size())
	assert.True(t, g.Has("B"))
	assert.Empty(t, g.Productions("B"))
	assert.Empty(t, g.Productions("X"))
	assert.True(t, g.Occurs("S"))
	assert.True(t, g.Occurs("A"))
	assert.False(t, g.Occurs("B"))
}

func TestFromStringsRejects(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnf.grammar")
	defer teardown()
	//
	_, err := FromStrings(map[string][]string{"s": {"a"}})
	assert.True(t, errors.Is(err, ErrIllegalSymbol), "lowercase variable name accepted")
	_, err = FromStrings(map[string][]string{"AB": {"a"}})
	assert.True(t, errors.Is(err, ErrIllegalSymbol), "two-symbol variable name accepted")
	_, err = FromStrings(map[string][]string{"S": {"a b"}})
	assert.True(t, errors.Is(err, ErrIllegalSymbol), "body with blank accepted")
}

func TestAddUnique(t *testing.T) {
	g := New()
	assert.True(t, g.AddUnique("S", MustParseBody("AB")))
	assert.False(t, g.AddUnique("S", MustParseBody("AB")))
	assert.True(t, g.AddUnique("S", MustParseBody("a")))
	assert.Equal(t, 2, g.Size())
}

func TestCloneIsIndependent(t *testing.T) {
	g := MustParse(map[string][]string{"S": {"AB"}, "A": {"a"}, "B": {"b"}})
	h := g.Clone()
	require.True(t, g.Equal(h))
	h.Add("S", MustParseBody("c"))
	assert.False(t, g.Equal(h))
	assert.Equal(t, 3, g.Size())
}

func TestEqualIgnoresOrder(t *testing.T) {
	g := New()
	g.Add("S", MustParseBody("a"), MustParseBody("b"))
	h := New()
	h.Add("S", MustParseBody("b"), MustParseBody("a"))
	assert.True(t, g.Equal(h))
	h.Declare("A")
	assert.False(t, g.Equal(h))
}

func TestSortedVariables(t *testing.T) {
	g := New()
	for _, v := range []string{"V2", "S", "A", "V10"} {
		g.Declare(v)
	}
	assert.Equal(t, []string{"V2", "S", "A", "V10"}, g.Variables())
	assert.Equal(t, []string{"A", "S", "V10", "V2"}, g.SortedVariables())
}

func TestDisplay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnf.grammar")
	defer teardown()
	//
	g := MustParse(map[string][]string{
		"S": {"ABC"},
		"A": {"ε", "a"},
		"B": {},
	})
	var out bytes.Buffer
	require.NoError(t, Display(&out, g, "Test"))
	expected := strings.Join([]string{
		"# Test",
		"  A -> ε | a",
		"  B ->",
		"  S -> ABC",
		"",
	}, "\n")
	assert.Equal(t, expected, out.String())
	assert.Equal(t, "ε | a", g.Alternatives("A"))
}

func TestAddKeepsDeclarationOrder(t *testing.T) {
	g := New()
	g.Add("S", MustParseBody("AB"))
	g.Declare("B")
	g.Add("A", MustParseBody("a"))
	g.Add("S", MustParseBody("b"))
	g.AddUnique("B", MustParseBody("b"))
	g.Declare("S")
	assert.Equal(t, []string{"S", "B", "A"}, g.Variables())
	assert.Equal(t, "AB | b", g.Alternatives("S"))
	assert.Equal(t, 4, g.Size())
}

func TestUndeclared(t *testing.T) {
	g := MustParse(map[string][]string{"S": {"aX", "YX", "A"}, "A": {"Z1", "ε"}})
	assert.Equal(t, []string{"Z1", "X", "Y"}, g.Undeclared())
	g.Declare("X")
	assert.Equal(t, []string{"Z1", "Y"}, g.Undeclared())
	assert.Empty(t, New().Undeclared())
}
