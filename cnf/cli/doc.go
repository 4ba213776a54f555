package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cnf.cli'
func tracer() tracing.Trace {
	return tracing.Select("cnf.cli")
}
