package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/cnf/cnf/ui/termui"
	"github.com/npillmayer/cnf/grammar"
	"github.com/npillmayer/cnf/normalize"
)

// cnfIntpr interprets REPL statements. It collects rules into a grammar,
// which may be converted at any time.
type cnfIntpr struct {
	g     *grammar.Grammar
	start string
	paths AppPaths
}

var _ termui.Session = &cnfIntpr{}

var errUnknownCommand = errors.New("command not found")

// Start returns the current start variable.
func (intp *cnfIntpr) Start() string {
	return intp.start
}

// Variables returns the variables of the current grammar.
func (intp *cnfIntpr) Variables() []string {
	return intp.g.SortedVariables()
}

// GrammarFiles lists the grammar files in the grammar directory.
func (intp *cnfIntpr) GrammarFiles() []string {
	if intp.paths == nil {
		return nil
	}
	entries, err := os.ReadDir(intp.paths.GrammarDir())
	if err != nil {
		return nil
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && isGrammarFile(e.Name()) {
			files = append(files, e.Name())
		}
	}
	return files
}

// Interpret executes a single statement, writing results to out.
func (intp *cnfIntpr) Interpret(command string, out io.Writer) error {
	command = strings.Trim(command, "\x00")
	tracer().Debugf("cnf interpreter: %q", command)
	if strings.Contains(command, "->") || strings.Contains(command, "→") {
		return intp.addRules(command)
	}
	words := strings.Fields(command)
	if len(words) == 0 {
		return nil
	}
	f := Formatter{}
	switch words[0] {
	case "show":
		_, err := f.Format(titledGrammar{title: "grammar (start " + intp.start + ")", g: intp.g}, out)
		return err
	case "start":
		if len(words) > 1 {
			intp.start = words[1]
		}
		_, err := f.Format("start variable is "+intp.start, out)
		return err
	case "convert", "stages":
		var opts []normalize.Option
		if words[0] == "stages" {
			opts = append(opts, normalize.WithStageHook(func(stage normalize.Stage, g *grammar.Grammar, s string) {
				f.Format(titledGrammar{title: fmt.Sprintf("after %s (start %s)", stage, s), g: g}, out)
			}))
		}
		res, err := normalize.ToCNF(intp.g, intp.start, opts...)
		if err != nil {
			return err
		}
		_, err = f.Format(titledGrammar{title: "CNF (start " + res.Start + ")", g: res.Grammar}, out)
		return err
	case "lr":
		res, err := normalize.ToCNF(intp.g, intp.start)
		if err != nil {
			return err
		}
		lrg, err := grammar.ToLR(res.Grammar, "CNF", res.Start)
		if err != nil {
			return err
		}
		_, err = f.Format(lrg, out)
		return err
	case "load":
		if len(words) < 2 {
			return errors.New("usage: load <file>")
		}
		g, err := loadGrammar(locateGrammar(intp.paths, words[1]))
		if err != nil {
			return err
		}
		intp.g = g
		if vars := g.Variables(); len(vars) > 0 && !g.Has(intp.start) {
			intp.start = vars[0]
		}
		return nil
	case "clear":
		intp.g = grammar.New()
		return nil
	}
	return errUnknownCommand
}

// addRules parses rules in text format and merges them into the current
// grammar.
func (intp *cnfIntpr) addRules(text string) error {
	rules, err := grammar.ParseText(text)
	if err != nil {
		return err
	}
	for _, v := range rules.Variables() {
		intp.g.Declare(v)
		for _, p := range rules.Productions(v) {
			intp.g.AddUnique(v, p)
		}
	}
	return nil
}
