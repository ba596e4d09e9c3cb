package chess

const (
	f1g1Mask = uint64(1)<<SquareF1 | uint64(1)<<SquareG1
	b1d1Mask = uint64(1)<<SquareB1 | uint64(1)<<SquareC1 | uint64(1)<<SquareD1
	f8g8Mask = uint64(1)<<SquareF8 | uint64(1)<<SquareG8
	b8d8Mask = uint64(1)<<SquareB8 | uint64(1)<<SquareC8 | uint64(1)<<SquareD8
)

var (
	whiteKingSideCastle  = makeMove(SquareE1, SquareG1, King, Empty)
	whiteQueenSideCastle = makeMove(SquareE1, SquareC1, King, Empty)
	blackKingSideCastle  = makeMove(SquareE8, SquareG8, King, Empty)
	blackQueenSideCastle = makeMove(SquareE8, SquareC8, King, Empty)
)

var rankMask = [8]uint64{Rank1Mask, Rank2Mask, Rank3Mask, Rank4Mask, Rank5Mask, Rank6Mask, Rank7Mask, Rank8Mask}

// pawnGeometry collapses the "which way is forward" branching that a pawn
// generator would otherwise duplicate once per color: every offset a pawn
// move needs is derived from forward alone, since both diagonal captures
// sit at forward-1 (needs File>FileA) and forward+1 (needs File<FileH)
// regardless of which side is moving.
type pawnGeometry struct {
	forward        int
	doublePushRank int
	promotionRank  int
}

func pawnGeometryFor(white bool) pawnGeometry {
	if white {
		return pawnGeometry{forward: 8, doublePushRank: Rank2, promotionRank: Rank7}
	}
	return pawnGeometry{forward: -8, doublePushRank: Rank7, promotionRank: Rank2}
}

func addPromotions(ml []Move, move Move) int {
	ml[0] = move ^ Move(Queen<<18)
	ml[1] = move ^ Move(Rook<<18)
	ml[2] = move ^ Move(Bishop<<18)
	ml[3] = move ^ Move(Knight<<18)
	return 4
}

// GenerateMoves yields every pseudo-legal move: quiet moves, captures, and
// promotions. When the side to move is in check, knight and slider moves
// are restricted to blocking or capturing the (single) checker; pawn moves
// (en passant included) and king moves are left unrestricted and rely on
// the subsequent legality filter, so double check is still handled
// correctly.
func GenerateMoves(ml []Move, p *Position) []Move {
	var ownPieces, oppPieces uint64
	if p.WhiteMove {
		ownPieces, oppPieces = p.White, p.Black
	} else {
		ownPieces, oppPieces = p.Black, p.White
	}

	var target = ^ownPieces
	if p.Checkers != 0 {
		var kingSq = FirstOne(p.Kings & ownPieces)
		target = p.Checkers | betweenMask[FirstOne(p.Checkers)][kingSq]
	}

	var allPieces = p.White | p.Black
	var count int

	if p.EpSquare != SquareNone {
		for fromBB := PawnAttacks(p.EpSquare, !p.WhiteMove) & p.Pawns & ownPieces; fromBB != 0; fromBB &= fromBB - 1 {
			var from = FirstOne(fromBB)
			ml[count] = makeMove(from, p.EpSquare, Pawn, Pawn)
			count++
		}
	}

	count += genPawnMoves(ml[count:], p, pawnGeometryFor(p.WhiteMove), ownPieces, oppPieces, allPieces)
	count += genLeaperMoves(ml[count:], p, p.Knights&ownPieces, Knight, KnightAttacks[:], target)
	count += genSliderMoves(ml[count:], p, p.Bishops&ownPieces, Bishop, BishopAttacks, allPieces, target)
	count += genSliderMoves(ml[count:], p, p.Rooks&ownPieces, Rook, RookAttacks, allPieces, target)
	count += genSliderMoves(ml[count:], p, p.Queens&ownPieces, Queen, QueenAttacks, allPieces, target)

	var kingFrom = FirstOne(p.Kings & ownPieces)
	for toBB := KingAttacks[kingFrom] &^ ownPieces; toBB != 0; toBB &= toBB - 1 {
		var to = FirstOne(toBB)
		ml[count] = makeMove(kingFrom, to, King, p.WhatPiece(to))
		count++
	}

	if p.WhiteMove {
		if canCastle(p, WhiteKingSide, f1g1Mask, allPieces, SquareE1, SquareF1, false) {
			ml[count] = whiteKingSideCastle
			count++
		}
		if canCastle(p, WhiteQueenSide, b1d1Mask, allPieces, SquareE1, SquareD1, false) {
			ml[count] = whiteQueenSideCastle
			count++
		}
	} else {
		if canCastle(p, BlackKingSide, f8g8Mask, allPieces, SquareE8, SquareF8, true) {
			ml[count] = blackKingSideCastle
			count++
		}
		if canCastle(p, BlackQueenSide, b8d8Mask, allPieces, SquareE8, SquareD8, true) {
			ml[count] = blackQueenSideCastle
			count++
		}
	}

	return ml[:count]
}

// GenerateLegalMoves filters GenerateMoves down to moves that don't leave
// the mover's own king in check, by actually playing each one — simpler
// than a full pin/check-aware legality test. Its callers are
// Board.GetAllLegalMoves (the move picker and root move list), DoMoveLAN
// and ParseMoveSAN.
func GenerateLegalMoves(p *Position) []Move {
	var buf [MaxMoves]Move
	var pseudoLegal = GenerateMoves(buf[:], p)
	var legal = make([]Move, 0, len(pseudoLegal))
	var child Position
	for _, m := range pseudoLegal {
		if p.MakeMove(m, &child) {
			legal = append(legal, m)
		}
	}
	return legal
}

// canCastle reports whether one castling right is currently exercisable:
// the right hasn't been forfeited, the squares between king and rook are
// empty, and the king does not start or pass through check. The landing
// square is deliberately not checked here — MakeMove's legality filter
// catches a king ending up in check on any square, so checking it twice
// would be redundant.
func canCastle(p *Position, right int, clearMask, allPieces uint64, kingFrom, kingThrough int, enemySide bool) bool {
	return p.CastleRights&right != 0 &&
		allPieces&clearMask == 0 &&
		!p.isAttackedBySide(kingFrom, enemySide) &&
		!p.isAttackedBySide(kingThrough, enemySide)
}

// genLeaperMoves generates moves for a piece whose reachable squares from a
// given origin don't depend on occupancy (knights, and kings via the
// caller's own loop above): a plain table lookup per origin square.
func genLeaperMoves(ml []Move, p *Position, pieceBB uint64, pieceType int, attacks []uint64, target uint64) int {
	var count int
	for fromBB := pieceBB; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		for toBB := attacks[from] & target; toBB != 0; toBB &= toBB - 1 {
			var to = FirstOne(toBB)
			ml[count] = makeMove(from, to, pieceType, p.WhatPiece(to))
			count++
		}
	}
	return count
}

// genSliderMoves generates moves for a sliding piece (bishop, rook, queen),
// sharing one loop across all three by taking their magic-bitboard lookup
// as a parameter.
func genSliderMoves(ml []Move, p *Position, pieceBB uint64, pieceType int, attacksFrom func(int, uint64) uint64, occupied, target uint64) int {
	var count int
	for fromBB := pieceBB; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		for toBB := attacksFrom(from, occupied) & target; toBB != 0; toBB &= toBB - 1 {
			var to = FirstOne(toBB)
			ml[count] = makeMove(from, to, pieceType, p.WhatPiece(to))
			count++
		}
	}
	return count
}

// genPawnMoves generates every quiet push, double push, and non-ep capture
// for the pawns of the side to move, splitting only on whether a pawn sits
// on the rank one step from promoting (which needs addPromotions instead
// of a single move).
func genPawnMoves(ml []Move, p *Position, geo pawnGeometry, ownPieces, oppPieces, allPieces uint64) int {
	var count int
	var pawns = p.Pawns & ownPieces
	var promotingRankMask = rankMask[geo.promotionRank]

	for fromBB := pawns &^ promotingRankMask; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		count += genOnePawnMove(ml[count:], p, geo, from, oppPieces, allPieces, false)
	}
	for fromBB := pawns & promotingRankMask; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		count += genOnePawnMove(ml[count:], p, geo, from, oppPieces, allPieces, true)
	}
	return count
}

func genOnePawnMove(ml []Move, p *Position, geo pawnGeometry, from int, oppPieces, allPieces uint64, promoting bool) int {
	var count int
	var addMove = func(to, captured int) {
		if promoting {
			count += addPromotions(ml[count:], makeMove(from, to, Pawn, captured))
		} else {
			ml[count] = makeMove(from, to, Pawn, captured)
			count++
		}
	}

	var pushTo = from + geo.forward
	if SquareMask[pushTo]&allPieces == 0 {
		addMove(pushTo, Empty)
		if !promoting && Rank(from) == geo.doublePushRank {
			var doubleTo = pushTo + geo.forward
			if SquareMask[doubleTo]&allPieces == 0 {
				ml[count] = makeMove(from, doubleTo, Pawn, Empty)
				count++
			}
		}
	}
	if File(from) > FileA {
		var to = from + geo.forward - 1
		if SquareMask[to]&oppPieces != 0 {
			addMove(to, p.WhatPiece(to))
		}
	}
	if File(from) < FileH {
		var to = from + geo.forward + 1
		if SquareMask[to]&oppPieces != 0 {
			addMove(to, p.WhatPiece(to))
		}
	}
	return count
}

// GenerateCaptures yields pseudo-legal captures and promotions, and, when
// genChecks is set, also quiet moves that give check (direct pawn checks
// and discovered checks by sliders uncovered by a knight/bishop/rook
// step) — the combined "tactical" move set that quiescence consults
// through Board's GetPseudoLegalCaptures, GetPseudoLegalPromotions and
// GetPseudoLegalChecks.
// Underpromotions are omitted throughout: only the queen promotion of a
// tactical pawn move is generated, since qsearch cares about material
// swings, not the rare cases an underpromotion changes the outcome.
func GenerateCaptures(ml []Move, p *Position, genChecks bool) []Move {
	var ownPieces, oppPieces uint64
	if p.WhiteMove {
		ownPieces, oppPieces = p.White, p.Black
	} else {
		ownPieces, oppPieces = p.Black, p.White
	}

	var allPieces = p.White | p.Black
	var count int

	if p.EpSquare != SquareNone {
		for fromBB := PawnAttacks(p.EpSquare, !p.WhiteMove) & p.Pawns & ownPieces; fromBB != 0; fromBB &= fromBB - 1 {
			var from = FirstOne(fromBB)
			ml[count] = makeMove(from, p.EpSquare, Pawn, Pawn)
			count++
		}
	}

	var geo = pawnGeometryFor(p.WhiteMove)
	count += genPawnCaptures(ml[count:], p, geo, oppPieces, allPieces)

	var checksN, checksB, checksR, checksQ uint64
	if genChecks {
		var oppKing = FirstOne(p.Kings & oppPieces)
		count += genDirectPawnChecks(ml[count:], p, oppKing, allPieces)

		checksN = KnightAttacks[oppKing] &^ allPieces
		checksB = BishopAttacks(oppKing, allPieces) &^ allPieces
		checksR = RookAttacks(oppKing, allPieces) &^ allPieces
		checksQ = checksB | checksR

		count += genDiscoveredChecks(ml[count:], p, ownPieces, allPieces, oppKing, checksN, checksB, checksR)
	}

	count += genSliderMoves(ml[count:], p, p.Bishops&ownPieces, Bishop, BishopAttacks, allPieces, oppPieces|checksB)
	count += genSliderMoves(ml[count:], p, p.Rooks&ownPieces, Rook, RookAttacks, allPieces, oppPieces|checksR)
	count += genSliderMoves(ml[count:], p, p.Queens&ownPieces, Queen, QueenAttacks, allPieces, oppPieces|checksQ)
	count += genLeaperMoves(ml[count:], p, p.Knights&ownPieces, Knight, KnightAttacks[:], oppPieces|checksN)

	var kingFrom = FirstOne(p.Kings & ownPieces)
	for toBB := KingAttacks[kingFrom] & oppPieces; toBB != 0; toBB &= toBB - 1 {
		var to = FirstOne(toBB)
		ml[count] = makeMove(kingFrom, to, King, p.WhatPiece(to))
		count++
	}

	return ml[:count]
}

// genPawnCaptures generates diagonal captures, en-passant aside, plus the
// queen-promotion push and captures for pawns one step from the last rank.
func genPawnCaptures(ml []Move, p *Position, geo pawnGeometry, oppPieces, allPieces uint64) int {
	var count int
	var promotingRankMask = rankMask[geo.promotionRank]
	var candidates uint64
	if p.WhiteMove {
		candidates = (AllBlackPawnAttacks(oppPieces) | promotingRankMask) & p.Pawns & p.White
	} else {
		candidates = (AllWhitePawnAttacks(oppPieces) | promotingRankMask) & p.Pawns & p.Black
	}

	for fromBB := candidates; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		var promoting = Rank(from) == geo.promotionRank
		var promotion = Empty
		if promoting {
			promotion = Queen
		}

		if promoting {
			var pushTo = from + geo.forward
			if SquareMask[pushTo]&allPieces == 0 {
				ml[count] = makePawnMove(from, pushTo, Empty, promotion)
				count++
			}
		}
		if File(from) > FileA {
			var to = from + geo.forward - 1
			if SquareMask[to]&oppPieces != 0 {
				ml[count] = makePawnMove(from, to, p.WhatPiece(to), promotion)
				count++
			}
		}
		if File(from) < FileH {
			var to = from + geo.forward + 1
			if SquareMask[to]&oppPieces != 0 {
				ml[count] = makePawnMove(from, to, p.WhatPiece(to), promotion)
				count++
			}
		}
	}
	return count
}

// shiftedOrigins returns, as a one-bit (or empty) board, the pawn in pawns
// whose square, moved by hop, lands on the single bit set in kingBB. It is
// computed by shifting kingBB by -hop rather than by shifting pawns by hop
// and comparing against kingBB, so a hop that would carry the origin off
// the board degrades to zero instead of reading out of range. fileSign
// picks the edge mask that keeps the shift from wrapping onto the wrong
// file: -1 (the hop's diagonal step points toward file A) excludes file A,
// +1 excludes file H.
func shiftedOrigins(pawns, kingBB uint64, hop, fileSign int) uint64 {
	var masked = pawns
	if fileSign < 0 {
		masked &^= FileAMask
	} else {
		masked &^= FileHMask
	}
	if hop >= 0 {
		return masked & (kingBB >> uint(hop))
	}
	return masked & (kingBB << uint(-hop))
}

// genDirectPawnChecks finds pushes (single or double) that land a pawn on
// a square attacking oppKing. A push from the second-to-last rank is
// skipped: it promotes, and the promotion move (queen only) is already
// produced by genPawnCaptures regardless of whether it happens to check.
func genDirectPawnChecks(ml []Move, p *Position, oppKing int, allPieces uint64) int {
	var geo = pawnGeometryFor(p.WhiteMove)
	var pawns uint64
	if p.WhiteMove {
		pawns = p.Pawns & p.White
	} else {
		pawns = p.Pawns & p.Black
	}
	var kingBB = SquareMask[oppKing]
	var count int

	count += genDirectPushCheck(ml[count:], pawns, kingBB, allPieces, geo, 2*geo.forward-1, -1)
	count += genDirectPushCheck(ml[count:], pawns, kingBB, allPieces, geo, 2*geo.forward+1, +1)
	count += genDirectDoublePushCheck(ml[count:], pawns, kingBB, allPieces, geo, 3*geo.forward-1, -1)
	count += genDirectDoublePushCheck(ml[count:], pawns, kingBB, allPieces, geo, 3*geo.forward+1, +1)
	return count
}

func genDirectPushCheck(ml []Move, pawns, kingBB, allPieces uint64, geo pawnGeometry, hop, fileSign int) int {
	var originBB = shiftedOrigins(pawns, kingBB, hop, fileSign)
	if originBB == 0 {
		return 0
	}
	var from = FirstOne(kingBB) - hop
	if Rank(from) == geo.promotionRank {
		return 0
	}
	var to = from + geo.forward
	if SquareMask[to]&allPieces != 0 {
		return 0
	}
	ml[0] = makeMove(from, to, Pawn, Empty)
	return 1
}

func genDirectDoublePushCheck(ml []Move, pawns, kingBB, allPieces uint64, geo pawnGeometry, hop, fileSign int) int {
	var originBB = shiftedOrigins(pawns, kingBB, hop, fileSign)
	if originBB == 0 {
		return 0
	}
	var from = FirstOne(kingBB) - hop
	if Rank(from) != geo.doublePushRank {
		return 0
	}
	var mid = from + geo.forward
	var to = from + 2*geo.forward
	if SquareMask[mid]&allPieces != 0 || SquareMask[to]&allPieces != 0 {
		return 0
	}
	ml[0] = makeMove(from, to, Pawn, Empty)
	return 1
}

// soleBlocker returns the one occupied square between from and king, or
// SquareNone when the ray between them is clear or blocked more than once
// (moving a single piece can't open a multiply-blocked ray).
func soleBlocker(from, king int, allPieces uint64) int {
	var blockers = betweenMask[from][king] & allPieces
	if blockers == 0 || MoreThanOne(blockers) {
		return SquareNone
	}
	return FirstOne(blockers)
}

// genDiscoveredChecks finds quiet moves that uncover a check from a rook,
// bishop, or queen: for each of the mover's sliders aimed at oppKing along
// a ray with exactly one blocker, if that blocker is a friendly knight (or
// a friendly slider of the other family — a bishop unblocking a rook/queen
// line, a rook unblocking a bishop/queen line), every empty square it can
// reach discovers the check, since neither piece can land back on the line
// it just vacated. checksN/checksB/checksR are excluded from the generated
// targets since moves to those squares are already produced as direct
// checks by the caller's own per-piece-type loops.
// TODO: a pawn or king vacating the blocking square can also discover
// check; neither is generated here.
func genDiscoveredChecks(ml []Move, p *Position, ownPieces, allPieces uint64, oppKing int, checksN, checksB, checksR uint64) int {
	var count int

	for fromBB := (p.Rooks | p.Queens) & ownPieces & rookMoves[oppKing]; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		var sq = soleBlocker(from, oppKing, allPieces)
		if sq == SquareNone || SquareMask[sq]&ownPieces == 0 {
			continue
		}
		switch {
		case SquareMask[sq]&p.Knights != 0:
			count += genLeaperMoves(ml[count:], p, SquareMask[sq], Knight, KnightAttacks[:], ^allPieces&^checksN)
		case SquareMask[sq]&p.Bishops != 0:
			count += genSliderMoves(ml[count:], p, SquareMask[sq], Bishop, BishopAttacks, allPieces, ^allPieces&^checksB)
		}
	}

	for fromBB := (p.Bishops | p.Queens) & ownPieces & bishopMoves[oppKing]; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		var sq = soleBlocker(from, oppKing, allPieces)
		if sq == SquareNone || SquareMask[sq]&ownPieces == 0 {
			continue
		}
		switch {
		case SquareMask[sq]&p.Knights != 0:
			count += genLeaperMoves(ml[count:], p, SquareMask[sq], Knight, KnightAttacks[:], ^allPieces&^checksN)
		case SquareMask[sq]&p.Rooks != 0:
			count += genSliderMoves(ml[count:], p, SquareMask[sq], Rook, RookAttacks, allPieces, ^allPieces&^checksR)
		}
	}

	return count
}
