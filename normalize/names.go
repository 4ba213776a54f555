package normalize

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/cnf/grammar"
)

// NameGen hands out fresh variable names V1, V2, …. A name is never returned
// twice, and names already used by the grammar the generator has been created
// for are skipped.
type NameGen struct {
	counter int
	taken   *hashset.Set
}

// NewNameGen creates a name generator for g. Every variable of g, whether
// declared or only referenced on a right-hand side, counts as taken.
func NewNameGen(g *grammar.Grammar) *NameGen {
	gen := &NameGen{taken: hashset.New()}
	if g == nil {
		return gen
	}
	for _, v := range g.Variables() {
		gen.taken.Add(v)
		for _, p := range g.Productions(v) {
			for _, sym := range p {
				if sym.IsVariable() {
					gen.taken.Add(sym.Name)
				}
			}
		}
	}
	return gen
}

// Taken is a predicate: is name already in use?
func (gen *NameGen) Taken(name string) bool {
	return gen.taken.Contains(name)
}

// Reserve marks name as used.
func (gen *NameGen) Reserve(name string) {
	gen.taken.Add(name)
}

// Next returns a fresh variable name.
func (gen *NameGen) Next() string {
	for {
		gen.counter++
		name := fmt.Sprintf("V%d", gen.counter)
		if !gen.taken.Contains(name) {
			gen.taken.Add(name)
			return name
		}
		tracer().Debugf("fresh name %s already taken, skipping", name)
	}
}
