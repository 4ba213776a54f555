package grammar

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/treeset"
)

// Grammar maps variables to ordered lists of productions. Variables keep the
// order in which they have been declared; this order carries no meaning for
// the language generated, but keeps transformations deterministic.
//
// A variable without productions is legal and generates no strings.
type Grammar struct {
	rules *linkedhashmap.Map // variable → []Production, in declaration order
}

// New creates an empty grammar.
func New() *Grammar {
	return &Grammar{rules: linkedhashmap.New()}
}

// FromStrings creates a grammar from a map of variables to production bodies,
// parsing every body with ParseBody. Variables are declared in sorted order.
func FromStrings(rules map[string][]string) (*Grammar, error) {
	vars := make([]string, 0, len(rules))
	for v := range rules {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	g := New()
	for _, v := range vars {
		if err := checkVariableName(v); err != nil {
			return nil, err
		}
		g.Declare(v)
		for _, body := range rules[v] {
			p, err := ParseBody(body)
			if err != nil {
				return nil, fmt.Errorf("variable %s: %w", v, err)
			}
			g.Add(v, p)
		}
	}
	return g, nil
}

// MustParse is like FromStrings, but panics on illegal input.
func MustParse(rules map[string][]string) *Grammar {
	g, err := FromStrings(rules)
	if err != nil {
		panic(err)
	}
	return g
}

// checkVariableName makes sure v reads back as exactly one variable symbol.
func checkVariableName(v string) error {
	p, err := ParseBody(v)
	if err != nil {
		return err
	}
	if len(p) != 1 || !p[0].IsVariable() {
		return fmt.Errorf("%w: %q is not a variable name", ErrIllegalSymbol, v)
	}
	return nil
}

// Declare makes v a variable of g, without adding productions.
func (g *Grammar) Declare(v string) {
	if _, found := g.rules.Get(v); found {
		return
	}
	// a nil slice boxed as interface{} is still found by Get
	g.rules.Put(v, []Production(nil))
}

// prods returns the productions of v without copying.
func (g *Grammar) prods(v string) []Production {
	if p, found := g.rules.Get(v); found {
		return p.([]Production)
	}
	return nil
}

// Add appends productions to variable v, declaring v if necessary.
func (g *Grammar) Add(v string, prods ...Production) {
	g.rules.Put(v, append(g.prods(v), prods...))
}

// AddUnique appends p to v if v does not yet own an equal production.
// It returns true if p has been added.
func (g *Grammar) AddUnique(v string, p Production) bool {
	prods := g.prods(v)
	for _, q := range prods {
		if q.Equal(p) {
			g.Declare(v)
			return false
		}
	}
	g.rules.Put(v, append(prods, p))
	return true
}

// Has is a predicate: is v a variable of g?
func (g *Grammar) Has(v string) bool {
	_, found := g.rules.Get(v)
	return found
}

// Variables returns the variables of g in declaration order.
func (g *Grammar) Variables() []string {
	keys := g.rules.Keys()
	vars := make([]string, len(keys))
	for i, k := range keys {
		vars[i] = k.(string)
	}
	return vars
}

// SortedVariables returns the variables of g in lexical order.
func (g *Grammar) SortedVariables() []string {
	set := treeset.NewWithStringComparator(g.rules.Keys()...)
	vars := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		vars = append(vars, v.(string))
	}
	return vars
}

// Productions returns the productions of v. Unknown variables have none.
func (g *Grammar) Productions(v string) []Production {
	prods := g.prods(v)
	if len(prods) == 0 {
		return nil
	}
	cp := make([]Production, len(prods))
	copy(cp, prods)
	return cp
}

// Size returns the total number of productions in g.
func (g *Grammar) Size() int {
	n := 0
	it := g.rules.Iterator()
	for it.Next() {
		n += len(it.Value().([]Production))
	}
	return n
}

// Occurs checks whether variable v occurs on any right-hand side.
func (g *Grammar) Occurs(v string) bool {
	it := g.rules.Iterator()
	for it.Next() {
		for _, p := range it.Value().([]Production) {
			if p.Contains(v) {
				return true
			}
		}
	}
	return false
}

// Undeclared lists variables occurring on a right-hand side without being
// variables of g, in order of first occurrence.
func (g *Grammar) Undeclared() []string {
	var undeclared []string
	seen := treeset.NewWithStringComparator()
	it := g.rules.Iterator()
	for it.Next() {
		for _, p := range it.Value().([]Production) {
			for _, sym := range p {
				if sym.IsVariable() && !g.Has(sym.Name) && !seen.Contains(sym.Name) {
					seen.Add(sym.Name)
					undeclared = append(undeclared, sym.Name)
				}
			}
		}
	}
	return undeclared
}

// Clone returns a deep copy of g.
func (g *Grammar) Clone() *Grammar {
	h := New()
	it := g.rules.Iterator()
	for it.Next() {
		v := it.Key().(string)
		h.Declare(v)
		for _, p := range it.Value().([]Production) {
			q := make(Production, len(p))
			copy(q, p)
			h.Add(v, q)
		}
	}
	return h
}

// Equal is a predicate: do g and h have the same variables, each with the same
// set of productions? Order is not significant.
func (g *Grammar) Equal(h *Grammar) bool {
	if g.rules.Size() != h.rules.Size() {
		return false
	}
	it := g.rules.Iterator()
	for it.Next() {
		v := it.Key().(string)
		if !h.Has(v) || !sameProductions(it.Value().([]Production), h.prods(v)) {
			return false
		}
	}
	return true
}

func sameProductions(a, b []Production) bool {
	keys := make(map[string]int)
	for _, p := range a {
		keys[p.Key()]++
	}
	for _, p := range b {
		keys[p.Key()]--
	}
	for _, n := range keys {
		if n != 0 {
			return false
		}
	}
	return true
}

// Dump traces g at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar with %d variables -----------", g.rules.Size())
	for _, v := range g.SortedVariables() {
		tracer().Debugf("  %s", ruleLine(v, g.prods(v)))
	}
	tracer().Debugf("-----------------------------------------")
}
