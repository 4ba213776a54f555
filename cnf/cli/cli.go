// Package cli implements the cnf command line interface.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/cnf"
	"github.com/npillmayer/cnf/cnf/ui/termui"
	"github.com/npillmayer/cnf/grammar"
	"github.com/npillmayer/cnf/normalize"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cnf [grammar-file]",
	Short: "Convert context-free grammars to Chomsky Normal Form",
	Long: `Welcome to CNF V0.1

CNF converts a context-free grammar into an equivalent grammar in Chomsky
Normal Form. Grammars are read from a text file

    S -> aSb | A
    A -> S | a

or from a YAML file mapping variables to lists of production bodies. Without
a file argument, or with flag -i, CNF enters an interactive session.

`,
	Args: cobra.MaximumNArgs(1),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by cnf.main().
func Execute() {
	if rootCmd.Execute() != nil {
		cnf.Exit(2)
	}
}

func init() {
	rootCmd.RunE = runCnfCmd // assigned here to avoid an initialization cycle
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Force run in interactive mode")
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
	rootCmd.PersistentFlags().StringP("start", "s", "", "Start variable (default: first variable of grammar file)")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "Output format: text, yaml, table or lr")
	rootCmd.PersistentFlags().Bool("stages", false, "Print the grammar after every stage")
}

func runCnfCmd(cmd *cobra.Command, args []string) error {
	interactive, _ := cmd.Flags().GetBool("interactive")
	if interactive || len(args) == 0 {
		return runCnfIntpr(cmd, args)
	}
	g, err := loadGrammar(locateGrammar(appPaths(), args[0]))
	if err != nil {
		return err
	}
	start := startVariable(cmd, g)
	return convertAndPrint(cmd.OutOrStdout(), g, start)
}

// loadGrammar reads a grammar file, choosing the format by file extension.
// A path of "-" reads text format from stdin.
func loadGrammar(path string) (*grammar.Grammar, error) {
	if path == "-" {
		return grammar.ReadText(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tracing.Infof("reading grammar from %s", path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return grammar.ReadYAML(f)
	}
	return grammar.ReadText(f)
}

// startVariable returns the start variable set by configuration, or else the
// first variable of g.
func startVariable(cmd *cobra.Command, g *grammar.Grammar) string {
	if cmd.Flags().Changed("start") {
		return conf("start")
	}
	if vars := g.Variables(); len(vars) > 0 {
		return vars[0]
	}
	return normalize.DefaultStart
}

func convertAndPrint(w io.Writer, g *grammar.Grammar, start string) error {
	var opts []normalize.Option
	if confBool("stages") {
		opts = append(opts, normalize.WithStageHook(func(stage normalize.Stage, h *grammar.Grammar, s string) {
			printGrammar(w, h, fmt.Sprintf("after %s (start %s)", stage, s), s)
		}))
	}
	res, err := normalize.ToCNF(g, start, opts...)
	if err != nil {
		return err
	}
	return printGrammar(w, res.Grammar, fmt.Sprintf("CNF (start %s)", res.Start), res.Start)
}

// printGrammar writes g in the configured output format. Every YAML grammar
// is a document of its own, so stage output forms a YAML stream.
func printGrammar(w io.Writer, g *grammar.Grammar, title string, start string) error {
	switch conf("format") {
	case "yaml":
		if _, err := fmt.Fprintf(w, "---\n# %s\n", title); err != nil {
			return err
		}
		return grammar.WriteYAML(w, g)
	case "lr":
		lrg, err := grammar.ToLR(g, title, start)
		if err != nil {
			return err
		}
		lrg.Dump()
		fmt.Fprintf(w, "# %s\n", title)
		return writeLR(w, lrg)
	case "table":
		_, err := Formatter{}.Format(titledGrammar{title: title, g: g}, w)
		return err
	}
	return grammar.Display(w, g, title)
}

// --- Interactive mode ------------------------------------------------------

func runCnfIntpr(cmd *cobra.Command, args []string) error {
	tracing.Infof("cnf interpreter called")
	intp := &cnfIntpr{
		g:     grammar.New(),
		start: conf("start"),
		paths: appPaths(),
	}
	if intp.start == "" {
		intp.start = normalize.DefaultStart
	}
	if len(args) > 0 {
		if err := intp.Interpret("load "+args[0], cmd.ErrOrStderr()); err != nil {
			return err
		}
	}
	repl, err := termui.NewREPL("cnf", "0.1", intp)
	if err != nil {
		return err
	}
	repl.Helper = func(w io.Writer) {
		io.WriteString(w, `
cnf will interpret the following statements:

  S -> aSb | A        : add productions to a variable
  show                : display the current grammar
  start [variable]    : display or set the start variable
  convert             : convert the current grammar to CNF and display it
  stages              : like convert, displaying every intermediate grammar
  lr                  : convert to CNF and display the rules handed to gorgo's LR tools
  load <file>         : replace the current grammar by the contents of a file
  clear               : forget the current grammar

A rule ending in '->' or '|' is continued on the next line.

`)
	}
	repl.Run(true)
	return nil
}
