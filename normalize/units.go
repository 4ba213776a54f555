package normalize

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/npillmayer/cnf/grammar"
)

// UnitClosure returns all variables reachable from v through unit productions,
// v included and first. Each variable is visited once, so cycles of unit
// productions terminate.
func UnitClosure(g *grammar.Grammar, v string) []string {
	reachable := hashset.New(v)
	closure := []string{v}
	todo := linkedliststack.New()
	todo.Push(v)
	for !todo.Empty() {
		top, _ := todo.Pop()
		for _, p := range g.Productions(top.(string)) {
			if !p.IsUnit() || reachable.Contains(p[0].Name) {
				continue
			}
			w := p[0].Name
			reachable.Add(w)
			closure = append(closure, w)
			todo.Push(w)
		}
	}
	return closure
}

// EliminateUnits removes all unit productions A → B from g. Every variable
// receives the non-unit productions of all variables in its unit closure,
// without duplicates.
func EliminateUnits(g *grammar.Grammar) *grammar.Grammar {
	h := grammar.New()
	for _, v := range g.Variables() {
		h.Declare(v)
		closure := UnitClosure(g, v)
		if len(closure) > 1 {
			tracer().Debugf("unit closure of %s = %v", v, closure)
		}
		for _, r := range closure {
			for _, p := range g.Productions(r) {
				if !p.IsUnit() {
					h.AddUnique(v, p)
				}
			}
		}
	}
	return h
}
