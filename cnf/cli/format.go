package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/cnf/cnf/ui/termui"
	"github.com/npillmayer/cnf/grammar"
	"github.com/npillmayer/gorgo/lr"
)

// titledGrammar is a grammar to be displayed with a caption.
type titledGrammar struct {
	title string
	g     *grammar.Grammar
}

// Formatter renders grammars as tables and delegates everything else.
type Formatter struct {
	termui.DefaultFormatter
}

func (f Formatter) Format(item interface{}, w io.Writer) (bool, error) {
	tracer().Debugf("cnf.Format called for item %T", item)
	switch t := item.(type) {
	case *grammar.Grammar:
		item = grammarAsTable(t, "")
	case titledGrammar:
		item = grammarAsTable(t.g, t.title)
	case *lr.Grammar:
		item = lrRulesAsTable(t)
	}
	return f.DefaultFormatter.Format(item, w)
}

// --- Property tables for grammars ------------------------------------------

func grammarAsTable(g *grammar.Grammar, title string) table.Writer {
	tw := table.NewWriter()
	if title != "" {
		tw.SetTitle(title)
	}
	tw.AppendHeader(table.Row{"variable", "productions"})
	for _, v := range g.SortedVariables() {
		tw.AppendRow(table.Row{v, g.Alternatives(v)})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

// lrRulesAsTable lists the numbered rules of an LR grammar, including gorgo's
// wrapper rule 0.
func lrRulesAsTable(g *lr.Grammar) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle(g.Name)
	tw.AppendHeader(table.Row{"#", "lhs", "rhs"})
	for i := 0; i < g.Size(); i++ {
		r := g.Rule(i)
		tw.AppendRow(table.Row{i, r.LHS.Name, lrRHS(r)})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

func lrRHS(r *lr.Rule) string {
	if r.IsEps() {
		return grammar.EpsilonLiteral
	}
	names := make([]string, 0, len(r.RHS()))
	for _, sym := range r.RHS() {
		names = append(names, sym.Name)
	}
	return strings.Join(names, " ")
}

// writeLR prints the rules of an LR grammar one per line.
func writeLR(w io.Writer, g *lr.Grammar) error {
	for i := 0; i < g.Size(); i++ {
		r := g.Rule(i)
		if _, err := fmt.Fprintf(w, "%3d: %s -> %s\n", i, r.LHS.Name, lrRHS(r)); err != nil {
			return err
		}
	}
	return nil
}
