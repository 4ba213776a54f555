/*
Package normalize transforms context-free grammars into Chomsky Normal Form.

Every production of a grammar in CNF is either a single terminal, exactly two
variables, or (for the start variable only) the empty string. ToCNF runs four
stages, each of which reads the grammar produced by its predecessor and creates
a new one:

1. IsolateStart introduces a new start variable, if the start variable occurs on
any right-hand side.

2. EliminateEpsilon computes the set of nullable variables and removes all
ε-productions, re-attaching ε to the start variable if it is nullable.

3. EliminateUnits replaces productions A → B by the non-unit productions of every
variable reachable from A through unit productions.

4. Binarize substitutes terminals within longer bodies by variables and splits
bodies longer than two symbols into chains of binary productions.

Fresh variables are named V1, V2, …, skipping names already in use. The counter
belongs to a single conversion; concurrent conversions do not interfere.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package normalize

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cnf.normalize'.
func tracer() tracing.Trace {
	return tracing.Select("cnf.normalize")
}
