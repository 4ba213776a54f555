package normalize

import (
	"errors"
	"fmt"

	"github.com/npillmayer/cnf/grammar"
)

// DefaultStart is the conventional name of the start variable.
const DefaultStart = "S"

// Errors signalled by the conversion.
var (
	ErrNoStart         = errors.New("start variable not defined")
	ErrTooManyNullable = errors.New("too many nullable symbols in production")
	ErrNotCNF          = errors.New("grammar is not in Chomsky normal form")
)

// Stage identifies a step of the conversion.
type Stage int8

const (
	StageIsolate Stage = iota
	StageEpsilon
	StageUnits
	StageBinarize
)

func (s Stage) String() string {
	switch s {
	case StageIsolate:
		return "start isolation"
	case StageEpsilon:
		return "ε elimination"
	case StageUnits:
		return "unit elimination"
	case StageBinarize:
		return "binarization"
	}
	return "<unknown stage>"
}

// StageHook is called with the output of every stage.
type StageHook func(stage Stage, g *grammar.Grammar, start string)

// Option configures a conversion.
type Option func(*conversion)

// WithStageHook registers a hook receiving intermediate grammars.
func WithStageHook(hook StageHook) Option {
	return func(c *conversion) {
		c.hook = hook
	}
}

// WithValidation switches the final CNF check on or off. It is on by default.
func WithValidation(on bool) Option {
	return func(c *conversion) {
		c.validate = on
	}
}

type conversion struct {
	hook     StageHook
	validate bool
}

func (c *conversion) stageDone(stage Stage, g *grammar.Grammar, start string) {
	tracer().Infof("%s done: %d variables, %d productions", stage, len(g.Variables()), g.Size())
	g.Dump()
	if c.hook != nil {
		c.hook(stage, g, start)
	}
}

// Result is the outcome of a conversion.
type Result struct {
	Grammar     *grammar.Grammar
	Start       string            // start variable, possibly introduced by the conversion
	Substitutes map[string]string // terminal value → variable producing it
}

// ToCNF converts g into an equivalent grammar in Chomsky normal form, with
// start as its start variable. g is not modified.
func ToCNF(g *grammar.Grammar, start string, opts ...Option) (*Result, error) {
	c := &conversion{validate: true}
	for _, opt := range opts {
		opt(c)
	}
	if g == nil || !g.Has(start) {
		return nil, fmt.Errorf("%w: %q", ErrNoStart, start)
	}
	tracer().Infof("converting grammar with start variable %s to CNF", start)
	gen := NewNameGen(g)
	h, start := IsolateStart(g, start, gen)
	for _, v := range h.Undeclared() {
		tracer().Infof("variable %s has no rules, declaring it without productions", v)
		h.Declare(v)
	}
	c.stageDone(StageIsolate, h, start)
	h, err := EliminateEpsilon(h, start)
	if err != nil {
		tracer().Errorf(err.Error())
		return nil, err
	}
	c.stageDone(StageEpsilon, h, start)
	h = EliminateUnits(h)
	c.stageDone(StageUnits, h, start)
	h, subst := Binarize(h, gen)
	c.stageDone(StageBinarize, h, start)
	if c.validate {
		if err = Validate(h, start); err != nil {
			tracer().Errorf(err.Error())
			return nil, err
		}
	}
	return &Result{Grammar: h, Start: start, Substitutes: subst}, nil
}

// Validate checks that every production of g is a single terminal, a pair of
// variables other than start, or ε owned by start. Every variable occurring
// on a right-hand side must be a variable of g.
func Validate(g *grammar.Grammar, start string) error {
	if undeclared := g.Undeclared(); len(undeclared) > 0 {
		return fmt.Errorf("%w: variables %v have no rules", ErrNotCNF, undeclared)
	}
	for _, v := range g.Variables() {
		for _, p := range g.Productions(v) {
			if !p.IsCNF() {
				return fmt.Errorf("%w: %s → %s", ErrNotCNF, v, p)
			}
			if p.IsEpsilon() && v != start {
				return fmt.Errorf("%w: %s → ε, but %s is not the start variable", ErrNotCNF, v, v)
			}
			if p.Contains(start) {
				return fmt.Errorf("%w: start variable %s occurs in %s → %s", ErrNotCNF, start, v, p)
			}
		}
	}
	return nil
}
