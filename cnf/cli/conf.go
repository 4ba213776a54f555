package cli

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/cnf"
	"github.com/npillmayer/cnf/normalize"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// appKey identifies the application for configuration lookup and app paths.
const appKey = "CNF"

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	k := koanf.New(".") // '.' is hierarchy delimiter
	// We locate cnf configuration with an application-key of 'CNF' and
	// use NestedText-format (nt) for config-files
	konf := koanfadapter.New(k, appKey, []string{"nt"})
	konf.InitDefaults()
	if err := mergeFlags(konf); err != nil {
		tracing.Errorf(err.Error())
		cnf.Exit(1)
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf(err.Error())
		cnf.Exit(1)
	}
	cnf.Configuration = k // push the configuration to app-global scope
}

func mergeFlags(konf *koanfadapter.KConf) error {
	flags := rootCmd.PersistentFlags()
	err := konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil)
	if err != nil {
		return err
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		if strings.Contains(logname, ":/") {
			konf.Set("tracing.destination", logname)
		} else {
			konf.Set("tracing.destination", "file://"+logname)
		}
	}
	if konf.GetString("start") == "" {
		konf.Set("start", normalize.DefaultStart)
	}
	return err
}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	paths := appPaths()
	if dest := konf.GetString("tracing.destination"); dest != "" {
		if !strings.Contains(dest, ":") && paths.LogDir() != "" {
			dest = "file://" + paths.LogDir() + "/" + dest
			konf.Set("tracing.destination", dest)
		}
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// conf reads a string value from the global configuration, falling back to
// the flag default if configuration has not been loaded.
func conf(key string) string {
	if cnf.Configuration == nil {
		if f := rootCmd.PersistentFlags().Lookup(key); f != nil {
			return f.Value.String()
		}
		return ""
	}
	return cnf.Configuration.String(key)
}

// confBool is conf for boolean values.
func confBool(key string) bool {
	if cnf.Configuration == nil {
		return conf(key) == "true"
	}
	return cnf.Configuration.Bool(key)
}

func appPaths() AppPaths {
	paths, err := DefaultAppPaths(appKey)
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
	}
	return paths
}
