package search

import "github.com/xoto10/laser-chess-engine/internal/chess"

// HistoryTable accumulates a per-(color, piece, to-square) bonus for quiet
// moves that have caused beta cutoffs or raised alpha, biasing future move
// ordering toward moves that have worked out before. Failed siblings at a
// cutoff node are penalized (bad-history reduction) so a move that keeps
// losing to the eventual best move sinks in priority even if it once
// scored a cutoff elsewhere.
type HistoryTable struct {
	scores [2][7][64]int
}

func colorIndex(white bool) int {
	if white {
		return 0
	}
	return 1
}

func (h *HistoryTable) score(white bool, piece, to int) int {
	return h.scores[colorIndex(white)][piece][to]
}

func (h *HistoryTable) bonus(white bool, m Move, depth int) {
	var bonus = depth * depth
	var c, p, t = colorIndex(white), m.MovingPiece(), m.To()
	h.scores[c][p][t] += bonus
	const cap = 1 << 20
	if h.scores[c][p][t] > cap {
		h.scores[c][p][t] = cap
	}
}

func (h *HistoryTable) penalize(white bool, m Move, depth int) {
	var penalty = depth * depth
	var c, p, t = colorIndex(white), m.MovingPiece(), m.To()
	h.scores[c][p][t] -= penalty
	const floor = -(1 << 20)
	if h.scores[c][p][t] < floor {
		h.scores[c][p][t] = floor
	}
}

// Age halves every entry between top-level searches, so history from many
// moves ago fades but does not vanish outright.
func (h *HistoryTable) Age() {
	for c := 0; c < 2; c++ {
		for p := 0; p < 7; p++ {
			for t := 0; t < 64; t++ {
				h.scores[c][p][t] /= 2
			}
		}
	}
}

// KillerTable holds the two most recent quiet moves that caused a beta
// cutoff at each ply.
type KillerTable struct {
	moves [MaxDepth + 1][2]Move
}

func (k *KillerTable) Get(ply int) (Move, Move) {
	return k.moves[ply][0], k.moves[ply][1]
}

func (k *KillerTable) Add(ply int, m Move) {
	if k.moves[ply][0] == m {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}

func (k *KillerTable) Clear(ply int) {
	k.moves[ply][0] = chess.MoveEmpty
	k.moves[ply][1] = chess.MoveEmpty
}
