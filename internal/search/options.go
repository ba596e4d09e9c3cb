package search

// Options carries the engine-tunable parameters exposed through UCI
// setoption, in the manner of the teacher's engine.Options: a plain
// struct passed at construction rather than package-global variables, so
// nothing about the search's configuration survives across independent
// Engine instances (each EPD suite job gets its own).
type Options struct {
	HashMB int
}

// DefaultOptions matches common UCI engine defaults: a modest hash table
// sized for interactive play without demanding configuration up front.
func DefaultOptions() Options {
	return Options{HashMB: 16}
}

// NewEngineWithOptions is the Options-driven constructor UCI's setoption
// handling drives; NewEngine remains for callers (tests, EPD jobs) that
// only need a hash size and no further tuning.
func NewEngineWithOptions(eval Evaluator, log DiagnosticLogger, opts Options) *Engine {
	return NewEngine(eval, log, opts.HashMB)
}
