// Package langtest enumerates bounded languages of small grammars by brute
// force. It is intended for tests comparing grammars before and after a
// transformation.
package langtest

import (
	"sort"
	"unicode/utf8"

	"github.com/npillmayer/cnf/grammar"
)

// Strings returns all terminal strings of length ≤ maxLen derivable from
// start.
//
// For every variable the set of its strings is grown until a fixpoint is
// reached; strings exceeding maxLen are never constructed, hence the sets are
// finite and the iteration terminates for every grammar.
func Strings(g *grammar.Grammar, start string, maxLen int) map[string]bool {
	lang := make(map[string]map[string]bool)
	for _, v := range g.Variables() {
		lang[v] = make(map[string]bool)
	}
	for changed := true; changed; {
		changed = false
		for _, v := range g.Variables() {
			for _, p := range g.Productions(v) {
				for w := range concat(p, lang, maxLen) {
					if !lang[v][w] {
						lang[v][w] = true
						changed = true
					}
				}
			}
		}
	}
	if lang[start] == nil {
		return map[string]bool{}
	}
	return lang[start]
}

func concat(p grammar.Production, lang map[string]map[string]bool, maxLen int) map[string]bool {
	acc := map[string]bool{"": true}
	for _, sym := range p {
		options := lang[sym.Name]
		if sym.IsTerminal() {
			options = map[string]bool{sym.Name: true}
		}
		next := make(map[string]bool)
		for a := range acc {
			for b := range options {
				if utf8.RuneCountInString(a)+utf8.RuneCountInString(b) <= maxLen {
					next[a+b] = true
				}
			}
		}
		if len(next) == 0 {
			return next
		}
		acc = next
	}
	return acc
}

// DerivesEmpty is a predicate: does v derive the empty string?
func DerivesEmpty(g *grammar.Grammar, v string) bool {
	return Strings(g, v, 0)[""]
}

// Sorted returns the strings of a language in lexical order.
func Sorted(lang map[string]bool) []string {
	words := make([]string, 0, len(lang))
	for w := range lang {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
