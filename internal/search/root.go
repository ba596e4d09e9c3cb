package search

// RootSearch searches every move in moves at depth from board (ply 0),
// returning the index of the best move and its score. It differs from
// interior pvs in that it never consults the Move Picker — the caller
// already holds the ordered root move list and re-orders it itself
// between iterations — and it reports an index rather than recursing
// further. A return of (-1, 0) means the search was interrupted before
// even the first move finished; the caller must discard the iteration.
func (e *Engine) RootSearch(board Position, moves []Move, depth int, pv *PV) (bestIndex, bestScore int) {
	var alpha = -Infinity
	var beta = Infinity
	bestIndex = -1

	for i, m := range moves {
		if e.stopped {
			break
		}

		var child, played = board.DoPseudoLegalMove(m)
		if !played {
			continue
		}

		var childPV PV
		var score int
		if i == 0 {
			score = -e.pvs(child, 1, depth-1, -beta, -alpha, 0, &childPV)
		} else {
			score = -e.pvs(child, 1, depth-1, -alpha-1, -alpha, 0, &childPV)
			if score > alpha && score < beta {
				childPV.clear()
				score = -e.pvs(child, 1, depth-1, -beta, -alpha, 0, &childPV)
			}
		}

		if e.stopped {
			break
		}

		if bestIndex == -1 || score > alpha {
			alpha = score
			bestIndex = i
			bestScore = score
			pv.assign(m, childPV)
		}
	}

	return bestIndex, bestScore
}

func moveToFront(moves []Move, index int) {
	if index <= 0 {
		return
	}
	var m = moves[index]
	copy(moves[1:index+1], moves[0:index])
	moves[0] = m
}
