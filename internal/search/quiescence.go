package search

import "sort"

func clampFailHard(score, alpha, beta int) int {
	if score < alpha {
		return alpha
	}
	if score > beta {
		return beta
	}
	return score
}

// quiescence resolves tactical noise below the main search horizon: it
// keeps searching captures, promotions, and (only at qply 0) quiet checks
// until the position is quiet, then returns a fail-hard score. ply is the
// absolute distance from the search root (needed for mate-score math);
// qply is the quiescence-local recursion counter, capped at MaxQPlies as
// a stack-depth safety valve against pathological perpetual-check chains
// that would otherwise never bottom out.
func (e *Engine) quiescence(board Position, ply, qply, alpha, beta int) int {
	e.checkStop()
	e.Stats.Nodes++
	e.Stats.QsNodes++
	if e.stopped {
		return -Infinity
	}
	if board.IsInCheck() {
		return e.checkQuiescence(board, ply, qply, alpha, beta)
	}
	if qply >= MaxQPlies {
		return clampFailHard(e.Eval.Evaluate(board), alpha, beta)
	}

	// Stage 1: fast, material-only stand pat with a wide, cheap delta
	// window so most quiet positions never pay for the positional term.
	var standPat = e.Eval.EvaluateMaterial(board)
	if standPat >= beta+MaxPosScore {
		return beta
	}
	if standPat < alpha-2*MaxPosScore-QueenValue {
		return alpha
	}

	// Stage 2: refine with the full (material + positional) evaluation.
	standPat = e.Eval.Evaluate(board)
	if standPat > alpha {
		alpha = standPat
	}
	if standPat >= beta {
		return beta
	}
	if standPat < alpha-MaxPosScore-QueenValue {
		return alpha
	}

	var white = board.PlayerToMove()

	var captures = board.GetPseudoLegalCaptures()
	sort.SliceStable(captures, func(i, j int) bool {
		return board.GetMVVLVAScore(white, captures[i]) > board.GetMVVLVAScore(white, captures[j])
	})
	for i, m := range captures {
		var victimValue = board.ValueOfPiece(m.CapturedPiece())
		if standPat+victimValue < alpha-MaxPosScore {
			continue
		}
		var exch = board.GetExchangeScore(white, m)
		if exch < 0 && board.GetSEE(white, m.To()) < -MaxPosScore {
			continue
		}
		var child, ok = board.DoPseudoLegalMove(m)
		if !ok {
			continue
		}
		var score = -e.quiescence(child, ply+1, qply+1, -beta, -alpha)
		if score >= beta {
			e.Stats.recordQsFailHigh(i)
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	for _, m := range board.GetPseudoLegalPromotions() {
		if board.GetSEE(white, m.To()) < 0 {
			continue
		}
		var child, ok = board.DoPseudoLegalMove(m)
		if !ok {
			continue
		}
		var score = -e.quiescence(child, ply+1, qply+1, -beta, -alpha)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	if qply <= 0 {
		for _, m := range board.GetPseudoLegalChecks() {
			var child, ok = board.DoPseudoLegalMove(m)
			if !ok {
				continue
			}
			var score = -e.checkQuiescence(child, ply+1, qply+1, -beta, -alpha)
			if score >= beta {
				return beta
			}
			if score > alpha {
				alpha = score
			}
		}
	}

	return alpha
}

// checkQuiescence handles the side to move being in check: every pseudo-
// legal move is a potential escape (GenerateMoves restricts knight and
// slider moves to the checker-blocking squares when in check; pawn and
// king moves are left to the legality check in DoPseudoLegalMove), so all
// of them are tried rather than only captures. No legal escape means
// checkmate.
func (e *Engine) checkQuiescence(board Position, ply, qply, alpha, beta int) int {
	e.checkStop()
	e.Stats.Nodes++
	e.Stats.QsNodes++
	if e.stopped {
		return -Infinity
	}
	if qply >= MaxQPlies {
		return clampFailHard(e.Eval.Evaluate(board), alpha, beta)
	}

	var moveCount = 0
	for _, m := range board.GetPseudoLegalCheckEscapes() {
		var child, ok = board.DoPseudoLegalMove(m)
		if !ok {
			continue
		}
		moveCount++
		var score = -e.quiescence(child, ply+1, qply+1, -beta, -alpha)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	if moveCount == 0 {
		return clampFailHard(lossIn(ply), alpha, beta)
	}
	return alpha
}
