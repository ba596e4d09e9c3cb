package search

import "github.com/xoto10/laser-chess-engine/internal/chess"

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// scoreMate is the fail-hard terminal score for a node with no move left
// to search: checkmate if in check, stalemate otherwise.
func scoreMate(isInCheck bool, ply int) int {
	if isInCheck {
		return lossIn(ply)
	}
	return ValueDraw
}

// pvs is the main alpha-beta principal-variation recursion. It returns a
// fail-hard score in [alpha, beta] and, when it finds one, the principal
// line through pv. nullMoveCount is the number of consecutive null moves
// that led to this node (a real move resets it to zero); null-move pruning
// is tried only while it is below MaxNullMoves.
func (e *Engine) pvs(board Position, ply, depth, alpha, beta, nullMoveCount int, pv *PV) int {
	pv.clear()

	if depth <= 0 {
		return e.quiescence(board, ply, 0, alpha, beta)
	}

	e.checkStop()
	e.Stats.Nodes++
	if e.stopped {
		return -Infinity
	}

	if ply > 0 && board.IsDraw() {
		return clampFailHard(ValueDraw, alpha, beta)
	}
	if ply >= MaxDepth {
		return clampFailHard(e.Eval.Evaluate(board), alpha, beta)
	}

	var isPVNode = beta-alpha > 1
	var isInCheck = board.IsInCheck()
	var white = board.PlayerToMove()
	var prevAlpha = alpha

	e.Stats.HashProbes++
	var hashMove = chess.MoveEmpty
	if entry, ok := e.TT.Probe(board.Key()); ok {
		e.Stats.HashHits++
		hashMove = entry.Move
		if entry.Depth >= depth {
			var ttScore = valueFromTT(entry.Score, ply)
			switch {
			case entry.NodeType == NodeAll && ttScore <= alpha:
				e.Stats.HashScoreCuts++
				return alpha
			case entry.NodeType == NodeCut && ttScore >= beta:
				e.Stats.HashScoreCuts++
				return beta
			}
		}
	}

	var staticEval = e.Eval.Evaluate(board)

	// Node-entry pruning: never at PV nodes, never in check.
	if !isPVNode && !isInCheck {
		if depth >= 3 && nullMoveCount < MaxNullMoves && staticEval >= beta &&
			board.GetNonPawnMaterial(white) > 0 {
			var r = nullMoveReduction(depth)
			r += (staticEval - beta) / PawnValue
			if r > depth-2 {
				r = depth - 2
			}
			if r >= 1 {
				var child = board.DoNullMove()
				var nullPV PV
				var score = -e.pvs(child, ply+1, depth-1-r, -beta, -beta+1, nullMoveCount+1, &nullPV)
				if e.stopped {
					return -Infinity
				}
				if score >= beta {
					return beta
				}
			}
		}

		if depth <= 2 && depth < len(reverseFutilityMargin) &&
			staticEval-reverseFutilityMargin[depth] >= beta &&
			board.GetNonPawnMaterial(white) > 0 {
			return beta
		}
	}

	var k0, k1 = e.Killers.Get(ply)
	var picker = NewMovePicker(board, hashMove, k0, k1, e.History)

	var moveCount = 0
	var anyMoveSearched = false
	var bestMove = chess.MoveEmpty

	for {
		var m, ok = picker.Next()
		if !ok {
			break
		}

		var isHash = picker.IsHashMove(m)

		if !isPVNode && !isInCheck && depth <= 3 && depth < len(futilityMargin) &&
			picker.NodeIsReducible() &&
			staticEval <= alpha-futilityMargin[depth] &&
			!m.IsCapture() && !m.IsPromotion() && !board.IsCheckMove(m) &&
			absInt(alpha) < QueenValue {
			continue
		}

		var child Position
		var played bool
		if isHash {
			e.Stats.HashMoveAttempts++
			child, played = board.DoHashMove(m)
			if !played {
				e.Log.Warnf("hash move %s illegal in current position, discarding", m)
			}
		} else {
			child, played = board.DoPseudoLegalMove(m)
		}
		if !played {
			continue
		}
		moveCount++
		anyMoveSearched = true

		var reduction = 0
		if picker.NodeIsReducible() && m.IsQuiet() && depth >= 3 && moveCount > 2 &&
			alpha <= prevAlpha && !picker.IsKiller(m) && !m.IsPromotion() && !child.IsInCheck() {
			reduction = lateMoveReduction(depth, moveCount)
		}

		var childPV PV
		var score int
		if moveCount == 1 {
			score = -e.pvs(child, ply+1, depth-1, -beta, -alpha, 0, &childPV)
		} else {
			score = -e.pvs(child, ply+1, depth-1-reduction, -alpha-1, -alpha, 0, &childPV)
			if score > alpha && score < beta {
				score = -e.pvs(child, ply+1, depth-1, -beta, -alpha, 0, &childPV)
			}
		}

		if e.stopped {
			return -Infinity
		}

		if score >= beta {
			e.TT.Store(board.Key(), depth, NodeCut, valueToTT(beta, ply), m, e.rootAge)
			if m.IsQuiet() {
				e.Killers.Add(ply, m)
				e.History.bonus(white, m, depth)
				picker.ReduceBadHistories(m, depth)
			}
			e.Stats.recordFailHigh(moveCount - 1)
			if isHash {
				e.Stats.HashMoveCuts++
			}
			return beta
		}

		if score > alpha {
			alpha = score
			bestMove = m
			pv.assign(m, childPV)
		}
	}

	if !anyMoveSearched {
		return clampFailHard(scoreMate(isInCheck, ply), alpha, beta)
	}

	if alpha > prevAlpha {
		if bestMove.IsQuiet() {
			e.History.bonus(white, bestMove, depth)
		}
		e.TT.Store(board.Key(), depth, NodePV, valueToTT(alpha, ply), bestMove, e.rootAge)
	} else {
		e.TT.Store(board.Key(), depth, NodeAll, valueToTT(alpha, ply), chess.MoveEmpty, e.rootAge)
	}

	return alpha
}
