package main

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// tracer returns the global gtrace.SyntaxTracer. The rest of the module stays
// free of any logging dependency — tracing only matters for the CLI's
// own reporting of what it is doing, not for the construction
// algorithms themselves.
func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

// initTracing installs a logging backend and trace level, selected by
// the -v/--verbose root flag. Called from the root command's
// PersistentPreRun before any subcommand runs.
func initTracing(verbose bool) {
	gtrace.SyntaxTracer = gologadapter.New()
	if verbose {
		tracer().SetTraceLevel(tracing.LevelDebug)
	} else {
		tracer().SetTraceLevel(tracing.LevelError)
	}
}
