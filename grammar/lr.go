package grammar

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/gorgo/lr"
)

// ToLR hands g over to gorgo, creating an lr.Grammar usable with gorgo's
// parsers and grammar analysis. Rules of the start variable are emitted first,
// as gorgo takes the first rule as the start rule. Terminals get their
// (first) code point as token value.
//
// Variables without productions are skipped.
func ToLR(g *Grammar, name string, start string) (*lr.Grammar, error) {
	if !g.Has(start) {
		return nil, fmt.Errorf("start variable %s not in grammar", start)
	} else if len(g.prods(start)) == 0 {
		return nil, fmt.Errorf("start variable %s has no productions", start)
	}
	b := lr.NewGrammarBuilder(name)
	vars := []string{start}
	for _, v := range g.Variables() {
		if v != start {
			vars = append(vars, v)
		}
	}
	for _, v := range vars {
		for _, p := range g.prods(v) {
			if p.IsEpsilon() {
				b.LHS(v).Epsilon()
				continue
			}
			rb := b.LHS(v)
			for _, sym := range p {
				if sym.IsVariable() {
					rb = rb.N(sym.Name)
				} else {
					r, _ := utf8.DecodeRuneInString(sym.Name)
					rb = rb.T(sym.Name, int(r))
				}
			}
			rb.End()
		}
	}
	lrg, err := b.Grammar()
	if err != nil {
		tracer().Errorf("cannot create LR grammar %s: %v", name, err)
		return nil, err
	}
	return lrg, nil
}
