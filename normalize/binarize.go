package normalize

import (
	"github.com/npillmayer/cnf/grammar"
)

type binarizer struct {
	gen         *NameGen
	out         *grammar.Grammar
	substitutes map[string]string // terminal → variable producing it
}

// Binarize brings every production of g into one of the forms ε, a or BC.
//
// Terminals within bodies of any other shape are replaced by substitute
// variables, one per terminal value, shared by all productions. Bodies longer
// than two symbols are split into a chain A → X1 V1, V1 → X2 V2, …, Vn → Xm Xm+1
// of fresh variables.
//
// Returns the new grammar and the map of terminal values to substitutes.
// Unit productions are left untouched.
func Binarize(g *grammar.Grammar, gen *NameGen) (*grammar.Grammar, map[string]string) {
	b := &binarizer{
		gen:         gen,
		out:         grammar.New(),
		substitutes: make(map[string]string),
	}
	for _, v := range g.Variables() {
		b.out.Declare(v)
		for _, p := range g.Productions(v) {
			if p.IsCNF() {
				b.out.Add(v, p)
				continue
			}
			syms := b.substitute(p)
			if len(syms) <= 2 {
				b.out.Add(v, syms)
				continue
			}
			b.chain(v, syms)
		}
	}
	return b.out, b.substitutes
}

// substitute replaces every terminal in p by its substitute variable.
func (b *binarizer) substitute(p grammar.Production) grammar.Production {
	q := make(grammar.Production, len(p))
	for i, sym := range p {
		if !sym.IsTerminal() {
			q[i] = sym
			continue
		}
		sub, ok := b.substitutes[sym.Name]
		if !ok {
			sub = b.gen.Next()
			b.substitutes[sym.Name] = sub
			b.out.Add(sub, grammar.Production{sym})
			tracer().Debugf("terminal %q substituted by %s", sym.Name, sub)
		}
		q[i] = grammar.V(sub)
	}
	return q
}

// chain splits syms, len(syms) > 2, into binary productions starting at v.
func (b *binarizer) chain(v string, syms grammar.Production) {
	current := v
	for i := 0; i < len(syms)-2; i++ {
		next := b.gen.Next()
		b.out.Add(current, grammar.Production{syms[i], grammar.V(next)})
		current = next
	}
	b.out.Add(current, grammar.Production{syms[len(syms)-2], syms[len(syms)-1]})
}
