package search

import "github.com/xoto10/laser-chess-engine/internal/chess"

// Evaluator is the static evaluation contract the search core consumes.
// EvaluateMaterial backs the fast first stand-pat stage of quiescence;
// EvaluatePositional is the refined residual added on top of it.
type Evaluator interface {
	Evaluate(b *chess.Board) int
	EvaluateMaterial(b *chess.Board) int
	EvaluatePositional(b *chess.Board) int
}

// DiagnosticLogger is the narrow slice of zerolog.Logger the search core
// needs: warnings for tolerated anomalies (hash collisions) and the
// end-of-search statistics dump. Accepting an interface rather than a
// concrete *zerolog.Logger lets tests inject a buffered logger and assert
// on emitted warnings.
type DiagnosticLogger interface {
	Warnf(format string, args ...interface{})
	Statf(format string, args ...interface{})
}
