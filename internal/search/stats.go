package search

// Stats accumulates the end-of-search counters the driver reports through
// DiagnosticLogger.Statf once a search completes. Fields mirror the
// original engine's SearchStatistics: raw counts rather than pre-computed
// rates, so the report can divide them however the operator prefers.
type Stats struct {
	Nodes   int64
	QsNodes int64

	HashProbes    int64
	HashHits      int64
	HashScoreCuts int64

	HashMoveAttempts int64
	HashMoveCuts     int64

	FailHighs      int64
	FirstFailHighs int64

	QsFailHighs      int64
	QsFirstFailHighs int64
}

func (s *Stats) reset() { *s = Stats{} }

// recordFailHigh accounts one beta cutoff, distinguishing a first-move
// cutoff (evidence of good move ordering) from a later one.
func (s *Stats) recordFailHigh(moveIndex int) {
	s.FailHighs++
	if moveIndex == 0 {
		s.FirstFailHighs++
	}
}

func (s *Stats) recordQsFailHigh(moveIndex int) {
	s.QsFailHighs++
	if moveIndex == 0 {
		s.QsFirstFailHighs++
	}
}

// Report logs the aggregated hit/cut rates through l at end of search.
// Percentages are guarded against division by zero so an early-aborted
// search (zero nodes) never panics on report.
func (s *Stats) Report(l DiagnosticLogger) {
	l.Statf(
		"search stats: nodes=%d qsNodes=%d hashHitRate=%.1f%% hashScoreCutRate=%.1f%% hashMoveCutRate=%.1f%% firstFailHighRate=%.1f%% qsFirstFailHighRate=%.1f%%",
		s.Nodes, s.QsNodes,
		percent(s.HashHits, s.HashProbes),
		percent(s.HashScoreCuts, s.HashHits),
		percent(s.HashMoveCuts, s.HashMoveAttempts),
		percent(s.FirstFailHighs, s.FailHighs),
		percent(s.QsFirstFailHighs, s.QsFailHighs),
	)
}

func percent(n, d int64) float64 {
	if d == 0 {
		return 0
	}
	return 100 * float64(n) / float64(d)
}
