/*
Package grammar holds the data model for context-free grammars as they are
consumed and produced by the CNF normalizer: symbols, productions and grammars
mapping variables to ordered lists of productions.

Production bodies are written as flat runs of characters. An uppercase letter,
followed by any number of digits, denotes a variable ("S", "A", "V12"). Every
other character denotes a terminal. The reserved literal "ε" denotes the empty
body. Grammars may be read from a small text format

	S -> aSb | A
	A -> S | a

or from YAML documents mapping variables to lists of bodies.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cnf.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("cnf.grammar")
}
