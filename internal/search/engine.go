package search

import "context"

// timeCheckInterval bounds how often the recursion pays for a ctx.Err()
// call: checking a context on every node is measurably more expensive
// than a bare counter increment, so the search only consults it once
// every timeCheckInterval+1 (2048) nodes (matching the teacher's own
// timeManager, which checks a node counter before touching the clock).
const timeCheckInterval = 2047 // power-of-two minus one, for a cheap mask

// Engine bundles the process-wide state a single search shares across its
// whole recursion: the transposition table, move-ordering tables, the
// evaluator, and the diagnostic logger. One Engine drives one search at a
// time; callers must not invoke Search concurrently on the same Engine
// (see internal/search/epd.go for how the EPD runner instead gives every
// concurrent job its own Engine and TT).
type Engine struct {
	TT      *TranspositionTable
	History *HistoryTable
	Killers *KillerTable
	Eval    Evaluator
	Log     DiagnosticLogger

	Stats Stats

	ctx     context.Context
	stopped bool
	nodes   int64
	rootAge int
}

// NewEngine builds an Engine around the given evaluator and diagnostic
// logger, allocating a transposition table of ttMegabytes.
func NewEngine(eval Evaluator, log DiagnosticLogger, ttMegabytes int) *Engine {
	return &Engine{
		TT:      NewTranspositionTable(ttMegabytes),
		History: &HistoryTable{},
		Killers: &KillerTable{},
		Eval:    eval,
		Log:     log,
	}
}

// checkStop tests the deadline once every timeCheckInterval+1 nodes and
// latches e.stopped permanently once tripped; every recursive entry point
// tests e.stopped directly (cheap) rather than repeating this work.
func (e *Engine) checkStop() {
	if e.stopped {
		return
	}
	e.nodes++
	if e.nodes&timeCheckInterval != 0 {
		return
	}
	if e.ctx != nil && e.ctx.Err() != nil {
		e.stopped = true
	}
}
