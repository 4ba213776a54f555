package normalize

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/cnf/grammar"
)

// maxNullable limits the number of nullable positions within a single body.
// Each body with k nullable positions expands to 2^k candidates.
const maxNullable = 24

// Nullable computes the set of variables which derive the empty string.
//
// A variable is nullable if one of its productions consists of nullable
// variables only; the ε body qualifies trivially. The set grows until a full
// pass over all productions adds nothing.
func Nullable(g *grammar.Grammar) *hashset.Set {
	nullable := hashset.New()
	for changed := true; changed; {
		changed = false
		for _, v := range g.Variables() {
			if nullable.Contains(v) {
				continue
			}
			for _, p := range g.Productions(v) {
				if allNullable(p, nullable) {
					tracer().Debugf("%s is nullable by %s → %s", v, v, p)
					nullable.Add(v)
					changed = true
					break
				}
			}
		}
	}
	return nullable
}

func allNullable(p grammar.Production, nullable *hashset.Set) bool {
	for _, sym := range p {
		if !sym.IsVariable() || !nullable.Contains(sym.Name) {
			return false
		}
	}
	return true
}

// EliminateEpsilon removes all ε-productions from g. For every production
// with k nullable positions, all 2^k variants with any subset of these
// positions dropped are produced, empty variants excepted. If start is
// nullable, it receives an ε-production; no other variable does.
func EliminateEpsilon(g *grammar.Grammar, start string) (*grammar.Grammar, error) {
	nullable := Nullable(g)
	tracer().Infof("%d nullable variables: %v", nullable.Size(), nullable.Values())
	h := grammar.New()
	for _, v := range g.Variables() {
		h.Declare(v)
		for _, p := range g.Productions(v) {
			if p.IsEpsilon() {
				continue
			}
			positions := nullablePositions(p, nullable)
			if len(positions) > maxNullable {
				return nil, fmt.Errorf("%w: %s → %s has %d nullable symbols",
					ErrTooManyNullable, v, p, len(positions))
			}
			for mask := uint64(0); mask < 1<<uint(len(positions)); mask++ {
				if q := dropNullables(p, positions, mask); !q.IsEpsilon() {
					h.AddUnique(v, q)
				}
			}
		}
	}
	if nullable.Contains(start) {
		tracer().Debugf("start variable %s is nullable, re-attaching ε", start)
		h.Add(start, grammar.Production{})
	}
	return h, nil
}

func nullablePositions(p grammar.Production, nullable *hashset.Set) []int {
	var positions []int
	for i, sym := range p {
		if sym.IsVariable() && nullable.Contains(sym.Name) {
			positions = append(positions, i)
		}
	}
	return positions
}

// dropNullables keeps the nullable symbol at positions[j] iff bit j of mask is
// set. All other symbols are always kept.
func dropNullables(p grammar.Production, positions []int, mask uint64) grammar.Production {
	q := make(grammar.Production, 0, len(p))
	j := 0
	for i, sym := range p {
		if j < len(positions) && positions[j] == i {
			keep := mask&(1<<uint(j)) != 0
			j++
			if !keep {
				continue
			}
		}
		q = append(q, sym)
	}
	return q
}
