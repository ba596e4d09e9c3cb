// Package eval implements the Evaluator contract the search core consumes:
// a fast material-only estimate for pruning margins and a fuller
// material-plus-piece-square score for standing evaluation.
package eval

import (
	"math"

	"github.com/xoto10/laser-chess-engine/internal/chess"
)

// score is a tapered (middlegame, endgame) centipawn pair, the same shape
// the teacher engine's own evaluator uses to interpolate across the game.
type score struct {
	Mg, Eg int
}

func (s *score) add(v score)         { s.Mg += v.Mg; s.Eg += v.Eg }
func (s *score) sub(v score)         { s.Mg -= v.Mg; s.Eg -= v.Eg }
func negScore(s score) score         { return score{-s.Mg, -s.Eg} }
func makeScore(mg, eg float64) score { return score{int(math.Round(mg)), int(math.Round(eg))} }

var pieceValue = [...]score{
	chess.Empty:  {0, 0},
	chess.Pawn:   {100, 120},
	chess.Knight: {320, 300},
	chess.Bishop: {330, 320},
	chess.Rook:   {500, 550},
	chess.Queen:  {975, 1000},
	chess.King:   {0, 0},
}

// materialValue is the flat, non-tapered scale GetNonPawnMaterial-style
// callers and the search's SEE/margin code compare against; it matches
// board.ValueOfPiece so evaluator and search never disagree about how
// heavy a pawn or queen is.
var materialValue = [...]int{0, 100, 320, 330, 500, 900, 0}

// pst are white-perspective piece-square tables indexed a1..h8 (rank 1 at
// index 0..7), one middlegame/endgame pair per piece type. Values are
// small nudges layered on top of raw material, in the spirit of the
// teacher's own tapered evaluator without reproducing its tuned tables.
var pst = buildPST()

func buildPST() [7][64]score {
	var t [7][64]score
	var knightMg = [64]int{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	}
	var bishopMg = [64]int{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	}
	var pawnMg = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	var kingMg = [64]int{
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	}
	var kingEg = [64]int{
		-50, -30, -30, -30, -30, -30, -30, -50,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-50, -40, -30, -20, -20, -30, -40, -50,
	}
	for sq := 0; sq < 64; sq++ {
		t[chess.Pawn][sq] = makeScore(float64(pawnMg[sq]), float64(pawnMg[sq])*0.6)
		t[chess.Knight][sq] = makeScore(float64(knightMg[sq]), float64(knightMg[sq])*0.8)
		t[chess.Bishop][sq] = makeScore(float64(bishopMg[sq]), float64(bishopMg[sq])*0.8)
		t[chess.King][sq] = makeScore(float64(kingMg[sq]), float64(kingEg[sq]))
	}
	return t
}

var gamePhaseInc = [...]int{0, 0, 1, 1, 2, 4, 0}

const totalPhase = 24

// Evaluator is the search core's static evaluator: material plus
// piece-square placement, tapered by remaining non-pawn material.
type Evaluator struct{}

func NewEvaluator() *Evaluator { return &Evaluator{} }

// Evaluate returns a centipawn score from the perspective of the side to
// move, combining EvaluateMaterial and EvaluatePositional exactly as the
// search core's static-eval calls expect.
func (e *Evaluator) Evaluate(b *chess.Board) int {
	return e.EvaluateMaterial(b) + e.EvaluatePositional(b)
}

// EvaluateMaterial is the cheap, position-independent estimate used for
// the fast first stand-pat stage of quiescence.
func (e *Evaluator) EvaluateMaterial(b *chess.Board) int {
	var p = b.Position()
	var v = materialValue[chess.Pawn]*(chess.PopCount(p.Pawns&p.White)-chess.PopCount(p.Pawns&p.Black)) +
		materialValue[chess.Knight]*(chess.PopCount(p.Knights&p.White)-chess.PopCount(p.Knights&p.Black)) +
		materialValue[chess.Bishop]*(chess.PopCount(p.Bishops&p.White)-chess.PopCount(p.Bishops&p.Black)) +
		materialValue[chess.Rook]*(chess.PopCount(p.Rooks&p.White)-chess.PopCount(p.Rooks&p.Black)) +
		materialValue[chess.Queen]*(chess.PopCount(p.Queens&p.White)-chess.PopCount(p.Queens&p.Black))
	if !p.WhiteMove {
		v = -v
	}
	return v
}

// EvaluatePositional is the residual piece-square component layered on
// top of EvaluateMaterial; it is what the refined (second-stage)
// quiescence stand-pat adds.
func (e *Evaluator) EvaluatePositional(b *chess.Board) int {
	var p = b.Position()
	var total score
	var phase = 0

	for sq := 0; sq < 64; sq++ {
		var piece = p.WhatPiece(sq)
		if piece == chess.Empty {
			continue
		}
		var white = (p.White & chess.SquareMask[sq]) != 0
		var relSq = sq
		if !white {
			relSq = chess.FlipSquare(sq)
		}
		var s = pst[piece][relSq]
		if white {
			total.add(s)
		} else {
			total.sub(s)
		}
		phase += gamePhaseInc[piece]
	}

	if phase > totalPhase {
		phase = totalPhase
	}
	var tapered = (total.Mg*phase + total.Eg*(totalPhase-phase)) / totalPhase
	if !p.WhiteMove {
		tapered = -tapered
	}
	return tapered
}
