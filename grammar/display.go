package grammar

import (
	"fmt"
	"io"
	"strings"
)

// Display prints g for human inspection: a title line, followed by one line
// per variable in sorted order, alternatives separated by '|'.
//
//	S -> AB | a
//
// Output of Display is legal input for ReadText.
func Display(w io.Writer, g *Grammar, title string) error {
	if title != "" {
		if _, err := fmt.Fprintln(w, "# "+title); err != nil {
			return err
		}
	}
	for _, v := range g.SortedVariables() {
		if _, err := fmt.Fprintln(w, "  "+ruleLine(v, g.prods(v))); err != nil {
			return err
		}
	}
	return nil
}

func (g *Grammar) String() string {
	var b strings.Builder
	Display(&b, g, "")
	return b.String()
}

// Alternatives joins the productions of v with '|'.
func (g *Grammar) Alternatives(v string) string {
	return joinAlternatives(g.prods(v))
}

func ruleLine(v string, prods []Production) string {
	if len(prods) == 0 {
		return v + " ->"
	}
	return v + " -> " + joinAlternatives(prods)
}

func joinAlternatives(prods []Production) string {
	alts := make([]string, len(prods))
	for i, p := range prods {
		alts[i] = p.String()
	}
	return strings.Join(alts, " | ")
}
