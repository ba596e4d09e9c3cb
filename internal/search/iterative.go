package search

import "context"

// IterativeDeepen repeatedly calls RootSearch at increasing depth until
// the time/depth budget in limits is exhausted, reporting one Info per
// completed iteration through onInfo (which may be nil). It returns the
// Info from the last iteration that finished at least one move; the
// caller reads Info.MainLine[0] as the move to play.
func (e *Engine) IterativeDeepen(ctx context.Context, board Position, limits LimitsType, onInfo func(Info)) Info {
	var moves = board.GetAllLegalMoves()
	if len(moves) == 0 {
		return Info{}
	}

	var tm, searchCtx, cancel = newTimeManager(ctx, limits, board.PlayerToMove())
	defer cancel()

	e.ctx = searchCtx
	e.stopped = false
	e.nodes = 0
	e.Stats.reset()
	e.rootAge = board.GetMoveNumber()

	var maxDepth = MaxDepth
	if limits.Depth > 0 && limits.Depth < maxDepth {
		maxDepth = limits.Depth
	}

	var best Info
	best.MainLine = []Move{moves[0]}

	for depth := 1; depth <= maxDepth; depth++ {
		e.Killers = &KillerTable{}

		var pv PV
		var bestIndex, score = e.RootSearch(board, moves, depth, &pv)
		if bestIndex == -1 {
			break // interrupted before any move at this depth completed
		}

		moveToFront(moves, bestIndex)

		best = Info{
			Depth:    depth,
			Score:    newUciScore(score),
			Nodes:    e.Stats.Nodes,
			Time:     tm.elapsed().Milliseconds(),
			HashFull: e.TT.HashFull(),
			MainLine: append([]Move(nil), pv.Moves...),
		}
		if onInfo != nil {
			onInfo(best)
		}

		if e.stopped {
			break
		}
		if score >= winIn(depth) || score <= lossIn(depth) {
			break
		}
		if limits.Depth > 0 {
			if depth >= limits.Depth {
				break
			}
			continue
		}
		if !limits.Infinite && tm.softTimeout() {
			break
		}
	}

	e.History.Age()
	e.Stats.Report(e.Log)
	return best
}
