package termui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/cnf"
)

var welcomeMessage = "Welcome to %s [V%s]"

// Session is an interactive grammar session driven by a REPL. The REPL reads
// statements, while the session owns the grammar under construction.
type Session interface {
	Interpret(statement string, out io.Writer) error
	Start() string          // current start variable, shown in the prompt
	Variables() []string    // completions for 'start'
	GrammarFiles() []string // completions for 'load'
}

// REPL reads grammar statements from the terminal and hands them to a Session.
// A rule ending in "->" or "|" continues on the next line.
type REPL struct {
	Helper   func(io.Writer) // prints help for the session's statements
	session  Session
	rl       *readline.Instance
	toolname string
	version  string
	editmode string
	pending  string // incomplete rule, waiting for continuation lines
}

// NewREPL creates a REPL for a session.
func NewREPL(toolname, version string, session Session) (*REPL, error) {
	repl := &REPL{
		session:  session,
		toolname: toolname,
		version:  version,
		editmode: "emacs",
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              repl.prompt(),
		HistoryFile:         fmt.Sprintf("%s/%s-repl-history.tmp", os.TempDir(), toolname),
		AutoComplete:        repl.completer(),
		InterruptPrompt:     "^C",
		EOFPrompt:           "bye",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterReplInput,
	})
	if err != nil {
		return nil, err
	}
	repl.rl = rl
	return repl, nil
}

// Run reads and executes statements until 'bye' or end of input.
func (repl *REPL) Run(exitOnBye bool) {
	defer repl.rl.Close()
	stdout, stderr := repl.rl.Stdout(), repl.rl.Stderr()
	fmt.Fprintf(stderr, welcomeMessage+"\n", repl.toolname, repl.version)
	for {
		repl.rl.SetPrompt(repl.prompt())
		line, err := repl.rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 && repl.pending == "" {
				break
			}
			repl.pending = "" // ^C drops an unfinished rule
			continue
		} else if err == io.EOF {
			break
		}
		if repl.dispatch(line, stdout, stderr) {
			break
		}
	}
	if exitOnBye {
		cnf.Exit(0)
	}
}

// dispatch executes a line of input. Administrative commands are handled by
// the REPL, everything else goes to the session. If it returns true, the REPL
// should terminate.
func (repl *REPL) dispatch(line string, out, errout io.Writer) bool {
	stmt, complete := repl.collect(line)
	if !complete {
		return false
	}
	words := strings.Fields(stmt)
	if len(words) == 0 {
		return false
	}
	switch words[0] {
	case "help":
		repl.displayCommands(errout)
		if repl.Helper != nil {
			repl.Helper(errout)
		}
	case "bye":
		io.WriteString(errout, "> goodbye!\n")
		return true
	case "mode":
		if len(words) > 1 && (words[1] == "vi" || words[1] == "emacs") {
			repl.editmode = words[1]
			if repl.rl != nil {
				repl.rl.SetVimMode(words[1] == "vi")
			}
			return false
		}
		fmt.Fprintf(errout, "> current input mode: %s\n", repl.editmode)
	default:
		trace().Debugf("session statement: %q", stmt)
		if err := repl.session.Interpret(stmt, out); err != nil {
			DefaultFormatter{}.Format(err, errout)
		}
	}
	return false
}

// collect joins continuation lines. It returns the complete statement, or
// false if the statement continues on the next line.
func (repl *REPL) collect(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if repl.pending != "" {
		line = repl.pending + " " + line
		repl.pending = ""
	}
	for _, cont := range []string{"->", "→", "|"} {
		if strings.HasSuffix(line, cont) {
			repl.pending = line
			return "", false
		}
	}
	return line, true
}

func (repl *REPL) prompt() string {
	if repl.pending != "" {
		return strings.Repeat(" ", len(repl.toolname)) + "| "
	}
	return prtxt.FgGreen.Sprintf("%s[%s]> ", repl.toolname, repl.session.Start())
}

func (repl *REPL) displayCommands(out io.Writer) {
	fmt.Fprintf(out, welcomeMessage, repl.toolname, repl.version)
	io.WriteString(out, "\n\nThe following commands are available:\n\n")
	io.WriteString(out, "  help               : print this message\n")
	io.WriteString(out, "  bye                : quit application\n")
	io.WriteString(out, "  mode [vi|emacs]    : display or set current editing mode\n")
}

// completer completes commands, variables of the session's grammar after
// 'start', and grammar files after 'load'.
func (repl *REPL) completer() *readline.PrefixCompleter {
	variables := func(string) []string { return repl.session.Variables() }
	files := func(string) []string { return repl.session.GrammarFiles() }
	return readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("bye"),
		readline.PcItem("mode", readline.PcItem("vi"), readline.PcItem("emacs")),
		readline.PcItem("show"),
		readline.PcItem("start", readline.PcItemDynamic(variables)),
		readline.PcItem("load", readline.PcItemDynamic(files)),
		readline.PcItem("convert"),
		readline.PcItem("stages"),
		readline.PcItem("lr"),
		readline.PcItem("clear"),
	)
}

// Input filter for REPL. Blocks ctrl-z.
func filterReplInput(r rune) (rune, bool) {
	if r == readline.CharCtrlZ {
		return r, false
	}
	return r, true
}
