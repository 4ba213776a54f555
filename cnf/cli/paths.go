package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// AppPaths is an interface to determine application specific paths for
// configuration, logging/tracing and grammar files.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
	GrammarDir() string
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	a := platformPaths{tag: strings.ToLower(appTag)}
	var err error
	if a.home, err = os.UserHomeDir(); err != nil {
		a.home = ""
	}
	return a, err
}

type platformPaths struct {
	tag  string
	home string
}

var _ AppPaths = platformPaths{}

func (a platformPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		c = filepath.Join(a.home, ".config")
	}
	return filepath.Join(c, a.tag)
}

func (a platformPaths) LogDir() string {
	c, err := os.UserCacheDir()
	if err != nil {
		c = a.home
	}
	return filepath.Join(c, "logs", a.tag)
}

// GrammarDir is where grammar files given by bare name are looked up.
func (a platformPaths) GrammarDir() string {
	return filepath.Join(a.ConfigDir(), "grammars")
}

// locateGrammar resolves a grammar argument to a file path. Existing paths are
// taken as they are, bare names are searched in the grammar directory with
// extensions .txt, .cfg, .yaml and .yml.
func locateGrammar(paths AppPaths, arg string) string {
	if _, err := os.Stat(arg); err == nil || paths == nil {
		return arg
	}
	if strings.ContainsRune(arg, filepath.Separator) {
		return arg
	}
	for _, ext := range append([]string{""}, grammarExtensions...) {
		p := filepath.Join(paths.GrammarDir(), arg+ext)
		if _, err := os.Stat(p); err == nil {
			tracer().Debugf("grammar %q found at %s", arg, p)
			return p
		}
	}
	return arg
}

var grammarExtensions = []string{".txt", ".cfg", ".yaml", ".yml"}

func isGrammarFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range grammarExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
