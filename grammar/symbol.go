package grammar

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SymbolKind classifies a grammar symbol.
type SymbolKind uint8

const (
	TerminalKind SymbolKind = iota
	VariableKind
	EpsilonKind
)

func (k SymbolKind) String() string {
	switch k {
	case TerminalKind:
		return "terminal"
	case VariableKind:
		return "variable"
	case EpsilonKind:
		return "epsilon"
	}
	return "<unknown>"
}

// EpsilonLiteral is the reserved body denoting the empty string.
const EpsilonLiteral = "ε"

// Symbol is a terminal, a variable or the epsilon marker.
type Symbol struct {
	Kind SymbolKind
	Name string
}

// Epsilon is the marker for the empty string. It never occurs inside a
// Production; the empty Production denotes the ε body.
var Epsilon = Symbol{Kind: EpsilonKind, Name: EpsilonLiteral}

// T creates a terminal symbol.
func T(value string) Symbol {
	return Symbol{Kind: TerminalKind, Name: value}
}

// V creates a variable symbol.
func V(name string) Symbol {
	return Symbol{Kind: VariableKind, Name: name}
}

func (s Symbol) IsTerminal() bool {
	return s.Kind == TerminalKind
}

func (s Symbol) IsVariable() bool {
	return s.Kind == VariableKind
}

func (s Symbol) IsEpsilon() bool {
	return s.Kind == EpsilonKind
}

func (s Symbol) String() string {
	return s.Name
}

// IsTerminalToken is a predicate: does tok not start with an uppercase letter?
func IsTerminalToken(tok string) bool {
	r, _ := utf8.DecodeRuneInString(tok)
	return !unicode.IsUpper(r)
}

// --- Productions -----------------------------------------------------------

// Production is the body of a rule. Productions are treated as values and
// never modified after construction; the empty Production is the ε body.
type Production []Symbol

// IsEpsilon is a predicate: is p the empty body?
func (p Production) IsEpsilon() bool {
	return len(p) == 0
}

// IsUnit is a predicate: does p consist of exactly one variable?
func (p Production) IsUnit() bool {
	return len(p) == 1 && p[0].IsVariable()
}

// IsCNF is a predicate: is p ε, a single terminal or a pair of variables?
func (p Production) IsCNF() bool {
	switch len(p) {
	case 0:
		return true
	case 1:
		return p[0].IsTerminal()
	case 2:
		return p[0].IsVariable() && p[1].IsVariable()
	}
	return false
}

// Contains checks whether variable v occurs in p.
func (p Production) Contains(v string) bool {
	for _, sym := range p {
		if sym.IsVariable() && sym.Name == v {
			return true
		}
	}
	return false
}

// Equal compares two productions symbol by symbol.
func (p Production) Equal(q Production) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Key returns a string identifying p unambiguously, usable as a map key.
func (p Production) Key() string {
	var b strings.Builder
	for _, sym := range p {
		b.WriteByte('0' + byte(sym.Kind))
		b.WriteString(sym.Name)
		b.WriteByte(0x1f)
	}
	return b.String()
}

func (p Production) String() string {
	if p.IsEpsilon() {
		return EpsilonLiteral
	}
	var b strings.Builder
	for _, sym := range p {
		b.WriteString(sym.Name)
	}
	return b.String()
}
