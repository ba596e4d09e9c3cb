package search

import (
	"sort"

	"github.com/xoto10/laser-chess-engine/internal/chess"
)

// pickerStage names the six ordering phases a MovePicker's Next steps
// through: hash move, winning/equal captures, promotions, killers,
// history-ordered quiets, losing captures.
type pickerStage int

const (
	stageHash pickerStage = iota
	stageGoodCaptures
	stagePromotions
	stageKillers
	stageQuiets
	stageLosingCaptures
	stageDone
)

type scoredMove struct {
	m   Move
	key int
}

// MovePicker enumerates legal moves at a node in the staged priority order
// the search core's ordering heuristics expect. It draws from the board's
// full legal move list rather than four separate pseudo-legal generators:
// every candidate is already known-legal by the time PVS sees it, trading
// the (smaller) cost of generating a few doomed pseudo-legal moves for a
// picker with no illegal-move edge cases to special-case.
type MovePicker struct {
	board   Position
	hash    Move
	killer0 Move
	killer1 Move
	history *HistoryTable
	white   bool
	inCheck bool

	stage pickerStage

	goodCaptures   []scoredMove
	promotions     []scoredMove
	quiets         []scoredMove
	losingCaptures []scoredMove
	idx            int

	tried []Move // quiet moves already yielded, for reduceBadHistories
}

func NewMovePicker(board Position, hash Move, killer0, killer1 Move, history *HistoryTable) *MovePicker {
	var mp = &MovePicker{
		board:   board,
		hash:    hash,
		killer0: killer0,
		killer1: killer1,
		history: history,
		white:   board.PlayerToMove(),
		inCheck: board.IsInCheck(),
	}
	mp.classify()
	return mp
}

func (mp *MovePicker) classify() {
	var pos = mp.board.Position()
	for _, m := range mp.board.GetAllLegalMoves() {
		if m == mp.hash {
			continue // already searched as the hash move
		}
		switch {
		case m.IsCapture():
			var key = mp.board.GetMVVLVAScore(mp.white, m)
			if chess.SEEGreaterEqualZero(&pos, m) {
				mp.goodCaptures = append(mp.goodCaptures, scoredMove{m, key})
			} else {
				mp.losingCaptures = append(mp.losingCaptures, scoredMove{m, key})
			}
		case m.IsPromotion():
			mp.promotions = append(mp.promotions, scoredMove{m, mp.board.GetExchangeScore(mp.white, m)})
		case m == mp.killer0 || m == mp.killer1:
			mp.quiets = append(mp.quiets, scoredMove{m, 1 << 30}) // killers sort ahead of history-only quiets
		default:
			mp.quiets = append(mp.quiets, scoredMove{m, mp.history.score(mp.white, m.MovingPiece(), m.To())})
		}
	}
	sort.SliceStable(mp.goodCaptures, func(i, j int) bool { return mp.goodCaptures[i].key > mp.goodCaptures[j].key })
	sort.SliceStable(mp.promotions, func(i, j int) bool { return mp.promotions[i].key > mp.promotions[j].key })
	sort.SliceStable(mp.quiets, func(i, j int) bool { return mp.quiets[i].key > mp.quiets[j].key })
	sort.SliceStable(mp.losingCaptures, func(i, j int) bool { return mp.losingCaptures[i].key > mp.losingCaptures[j].key })
}

// Next returns the next move in priority order, or (0, false) once
// exhausted.
func (mp *MovePicker) Next() (Move, bool) {
	for {
		switch mp.stage {
		case stageHash:
			mp.stage = stageGoodCaptures
			if mp.hash != chess.MoveEmpty {
				return mp.hash, true
			}
		case stageGoodCaptures:
			if mp.idx < len(mp.goodCaptures) {
				var m = mp.goodCaptures[mp.idx].m
				mp.idx++
				return m, true
			}
			mp.idx = 0
			mp.stage = stagePromotions
		case stagePromotions:
			if mp.idx < len(mp.promotions) {
				var m = mp.promotions[mp.idx].m
				mp.idx++
				return m, true
			}
			mp.idx = 0
			mp.stage = stageKillers
		case stageKillers, stageQuiets:
			if mp.idx < len(mp.quiets) {
				var m = mp.quiets[mp.idx].m
				mp.idx++
				mp.stage = stageQuiets
				mp.tried = append(mp.tried, m)
				return m, true
			}
			mp.idx = 0
			mp.stage = stageLosingCaptures
		case stageLosingCaptures:
			if mp.idx < len(mp.losingCaptures) {
				var m = mp.losingCaptures[mp.idx].m
				mp.idx++
				return m, true
			}
			mp.stage = stageDone
			return chess.MoveEmpty, false
		default:
			return chess.MoveEmpty, false
		}
	}
}

// IsHashMove reports whether m is the move this picker was seeded with —
// callers use this to decide whether to play it via Board.DoHashMove
// (which validates against a full legal-move scan) rather than
// Board.DoPseudoLegalMove.
func (mp *MovePicker) IsHashMove(m Move) bool { return m != chess.MoveEmpty && m == mp.hash }

// IsKiller reports whether m is one of this node's two killer moves.
func (mp *MovePicker) IsKiller(m Move) bool { return m == mp.killer0 || m == mp.killer1 }

// NodeIsReducible reports whether the picker has moved past the forcing
// phases (hash move, captures, promotions) into quiet-move territory,
// where futility pruning and LMR are allowed to act. It is always false
// while the side to move is in check.
func (mp *MovePicker) NodeIsReducible() bool {
	return !mp.inCheck && mp.stage == stageQuiets
}

// ReduceBadHistories penalizes every quiet move tried at this node other
// than the one that finally caused the cutoff, so moves that keep losing
// to a stronger sibling sink in future ordering even though they may have
// scored cutoffs elsewhere.
func (mp *MovePicker) ReduceBadHistories(best Move, depth int) {
	for _, m := range mp.tried {
		if m != best {
			mp.history.penalize(mp.white, m, depth)
		}
	}
}
