package chess

// pieceValuesSEE are coarse, SEE-only piece weights (in pawn units, with a
// knight/bishop at 4 and a rook at 6 so they are clearly separated); they
// are not the evaluator's centipawn scale.
var pieceValuesSEE = [...]int{0, 1, 4, 4, 6, 12, 120}

// SEEPieceValue exposes the SEE weight table to collaborators (move
// ordering, pruning margins) that need a cheap per-piece figure without
// recomputing an exchange.
func SEEPieceValue(piece int) int {
	return pieceValuesSEE[piece]
}

func IsCaptureOrPromotion(move Move) bool {
	return move.CapturedPiece() != Empty || move.Promotion() != Empty
}

func IsPawnPush7th(move Move, side bool) bool {
	if move.MovingPiece() != Pawn {
		return false
	}
	var rank = Rank(move.To())
	if side {
		return rank == Rank7
	}
	return rank == Rank2
}

func IsPawnAdvance(move Move, side bool) bool {
	if move.MovingPiece() != Pawn {
		return false
	}
	var rank = Rank(move.To())
	if side {
		return rank >= Rank6
	}
	return rank <= Rank3
}

// IsLateEndgame reports whether side has no rooks/queens and at most one
// minor piece — a zugzwang-prone material shape. The search's null-move
// and reverse-futility gates do not call it; they check only that the side
// to move has some non-pawn material (Board.GetNonPawnMaterial).
func IsLateEndgame(p *Position, side bool) bool {
	var ownPieces = p.PiecesByColor(side)
	return ((p.Rooks|p.Queens)&ownPieces) == 0 &&
		!MoreThanOne((p.Knights|p.Bishops)&ownPieces)
}

func getAttacks(p *Position, to int, side bool, occ uint64) uint64 {
	var att = (PawnAttacks(to, !side) & p.Pawns) |
		(KnightAttacks[to] & p.Knights) |
		(KingAttacks[to] & p.Kings) |
		(BishopAttacks(to, occ) & (p.Bishops | p.Queens)) |
		(RookAttacks(to, occ) & (p.Rooks | p.Queens))
	return p.PiecesByColor(side) & att
}

func getLeastValuableAttacker(p *Position, to int, side bool, occ uint64) (attacker, from int) {
	attacker = Empty
	from = SquareNone
	var att = getAttacks(p, to, side, occ) & occ
	if att == 0 {
		return
	}
	var newTarget = pieceValuesSEE[King] + 1
	for ; att != 0; att &= att - 1 {
		var f = FirstOne(att)
		var piece = p.WhatPiece(f)
		if pieceValuesSEE[piece] < newTarget {
			attacker = piece
			from = f
			newTarget = pieceValuesSEE[piece]
		}
	}
	return
}

// SEEGreaterEqual reports whether the net material swing of the full
// capture sequence starting with move is at least bound, without building
// the sequence explicitly (the Goblin/Stockfish-style swap algorithm).
func SEEGreaterEqual(p *Position, move Move, bound int) bool {
	var piece = move.MovingPiece()
	var score0 = pieceValuesSEE[move.CapturedPiece()]
	if promotion := move.Promotion(); promotion != Empty {
		piece = promotion
		score0 += pieceValuesSEE[promotion] - pieceValuesSEE[Pawn]
	}
	var to = move.To()
	var occ = (p.White ^ p.Black ^ SquareMask[move.From()]) | SquareMask[to]
	var side = !p.WhiteMove
	var relativeStm = true
	var balance = score0 - bound
	if balance < 0 {
		return false
	}
	balance -= pieceValuesSEE[piece]
	if balance >= 0 {
		return true
	}
	for {
		var nextVictim, from = getLeastValuableAttacker(p, to, side, occ)
		if nextVictim == Empty {
			return relativeStm
		}
		if piece == King {
			return !relativeStm
		}
		occ ^= SquareMask[from]
		piece = nextVictim
		if relativeStm {
			balance += pieceValuesSEE[nextVictim]
		} else {
			balance -= pieceValuesSEE[nextVictim]
		}
		relativeStm = !relativeStm
		if relativeStm == (balance >= 0) {
			return relativeStm
		}
		side = !side
	}
}

// SEEGreaterEqualZero is the common bound == 0 case: does this capture not
// lose material outright.
func SEEGreaterEqualZero(p *Position, move Move) bool {
	return SEEGreaterEqual(p, move, 0)
}

// StaticExchangeEval returns the full recursive static-exchange value of
// playing move on p (positive: favorable for the side to move).
func StaticExchangeEval(pos *Position, mv Move) int {
	var from = mv.From()
	var to = mv.To()
	var pc = mv.MovingPiece()
	var sd = pos.WhiteMove
	var sc = 0
	if mv.CapturedPiece() != Empty {
		sc += pieceValuesSEE[mv.CapturedPiece()]
	}
	if mv.Promotion() != Empty {
		pc = mv.Promotion()
		sc += pieceValuesSEE[pc] - pieceValuesSEE[Pawn]
	}
	var pieces = (pos.White | pos.Black) &^ SquareMask[from]
	sc -= seeRec(pos, !sd, to, pieces, pc)
	return sc
}

func seeRec(pos *Position, sd bool, to int, pieces uint64, cp int) int {
	var bs = 0
	var pc, from = getLeastValuableAttacker(pos, to, sd, pieces)
	if from != SquareNone {
		var sc = pieceValuesSEE[cp]
		if cp != King {
			sc -= seeRec(pos, !sd, to, pieces&^SquareMask[from], pc)
		}
		if sc > bs {
			bs = sc
		}
	}
	return bs
}

// StaticExchangeOnSquare scores the net exchange value of all pending
// captures on sq for side to move, ignoring any specific move — used by
// the search core's SEE-on-square pruning decisions (reverse-futility-like
// checks at quiescence delta margins).
func StaticExchangeOnSquare(pos *Position, sq int, side bool) int {
	var occ = pos.White | pos.Black
	var victim = pos.WhatPiece(sq)
	if victim == Empty {
		return 0
	}
	return seeRec(pos, side, sq, occ, victim)
}
