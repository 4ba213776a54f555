package normalize

import (
	"github.com/npillmayer/cnf/grammar"
)

// IsolateStart makes sure the start variable never occurs on a right-hand
// side. If start occurs anywhere, a new start variable is introduced with the
// single production start' → start. The new variable is named start+"0" unless
// that name is taken, in which case gen supplies one.
//
// Returns the new grammar and the (possibly new) start variable.
func IsolateStart(g *grammar.Grammar, start string, gen *NameGen) (*grammar.Grammar, string) {
	if !g.Occurs(start) {
		tracer().Debugf("start variable %s does not occur on any RHS", start)
		return g.Clone(), start
	}
	newStart := start + "0"
	if g.Has(newStart) || gen.Taken(newStart) {
		newStart = gen.Next()
	} else {
		gen.Reserve(newStart)
	}
	tracer().Infof("start variable %s occurs on RHS, new start variable is %s", start, newStart)
	h := grammar.New()
	h.Add(newStart, grammar.Production{grammar.V(start)})
	for _, v := range g.Variables() {
		h.Add(v, g.Productions(v)...)
	}
	return h, newStart
}
