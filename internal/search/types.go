// Package search implements the engine's search core: iteratively
// deepened alpha-beta PVS over a transposition table, with null-move,
// futility, and late-move-reduction pruning, killer/history move
// ordering, and a quiescence extension. It depends on the board only
// through the narrow surface chess.Board already exposes (Position, in
// this package, is a plain alias for *chess.Board — the teacher engine
// takes the same direct-dependency approach rather than hiding its board
// behind an interface, and DESIGN.md records why this package follows
// suit instead of introducing an interface Go cannot make covariant with
// DoMove's own-type return).
package search

import "github.com/xoto10/laser-chess-engine/internal/chess"

type Move = chess.Move

// Position is the board handle every search entry point operates on.
type Position = *chess.Board

const (
	stackSize    = 128
	MaxDepth     = 64
	MaxQPlies    = 16
	ValueDraw    = 0
	MateScore    = 30000
	Infinity     = MateScore + 1
	valueWin     = MateScore - 2*MaxDepth
	valueLoss    = -valueWin
	MaxPosScore  = 100
	PawnValue    = 100
	QueenValue   = 900
	MaxNullMoves = 2
)

// winIn/lossIn/valueToTT/valueFromTT translate between the ply-relative
// mate scores used inside the recursion and the ply-independent scores
// stored in the transposition table, so a cached mate score is still
// correct however far from the root it is retrieved.
func winIn(ply int) int  { return MateScore - ply }
func lossIn(ply int) int { return -MateScore + ply }

func valueToTT(v, ply int) int {
	switch {
	case v >= valueWin:
		return v + ply
	case v <= valueLoss:
		return v - ply
	default:
		return v
	}
}

func valueFromTT(v, ply int) int {
	switch {
	case v >= valueWin:
		return v - ply
	case v <= valueLoss:
		return v + ply
	default:
		return v
	}
}

// UciScore reports either a centipawn score or a mate-in-n count, matching
// the two representations the UCI "info score" token supports.
type UciScore struct {
	Centipawns int
	Mate       int
}

func newUciScore(v int) UciScore {
	switch {
	case v >= valueWin:
		return UciScore{Mate: (MateScore - v + 1) / 2}
	case v <= valueLoss:
		return UciScore{Mate: (-MateScore - v) / 2}
	default:
		return UciScore{Centipawns: v}
	}
}

// PV is a principal variation collected during search, longest-first at
// the root and truncated to zero length wherever the search bails out of
// the recursion (fail-hard cutoffs and terminal nodes clear it).
type PV struct {
	Moves []Move
}

func (pv *PV) clear() { pv.Moves = pv.Moves[:0] }

func (pv *PV) assign(m Move, child PV) {
	pv.Moves = append(pv.Moves[:0], m)
	pv.Moves = append(pv.Moves, child.Moves...)
}

// LimitsType is the driver's time/depth budget, mirroring the fields a UCI
// "go" command can specify. Nodes is parsed from "go nodes" but not read
// by IterativeDeepen, so no node limit is enforced.
type LimitsType struct {
	WhiteTime, BlackTime           int
	WhiteIncrement, BlackIncrement int
	MoveTime                       int
	MovesToGo                      int
	Depth                          int
	Nodes                          int64
	Infinite                       bool
}

// Info is one iterative-deepening progress report, emitted once per
// completed depth.
type Info struct {
	Depth    int
	Score    UciScore
	Nodes    int64
	Time     int64
	HashFull int
	MainLine []Move
}
