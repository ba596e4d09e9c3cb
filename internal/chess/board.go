package chess

import "strings"

// Board is the engine-facing position handle the search core depends on.
// It wraps an immutable Position value with just enough game history to
// answer draw queries, and is deliberately cheap to copy: every mutator
// returns a *new* Board rather than mutating the receiver, so a search
// recursion threads a fresh child downward instead of pushing/popping
// shared state. That also makes the "undo a null move" question moot:
// undoing is simply discarding the child and continuing to use the parent.
type Board struct {
	pos        Position
	keyHistory []uint64
	ply        int
}

// NewBoard builds a Board from a starting Position at game ply 0.
func NewBoard(pos Position) *Board {
	return &Board{pos: pos}
}

// NewBoardFromFEN parses fen and wraps it in a fresh Board.
func NewBoardFromFEN(fen string) (*Board, error) {
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewBoard(pos), nil
}

func (b *Board) Position() Position { return b.pos }

func (b *Board) PlayerToMove() bool { return b.pos.WhiteMove }

func (b *Board) IsInCheck() bool { return b.pos.IsCheck() }

func (b *Board) Key() uint64 { return b.pos.Key }

func (b *Board) GetMoveNumber() int { return b.ply }

// IsDraw reports the fifty-move rule, a single earlier occurrence of the
// current position in the board's key history, and trivially insufficient
// mating material. The key history covers every move played through this
// Board chain since the last irreversible move, so it includes the game
// moves a UCI "position ... moves ..." command replays via DoMoveLAN as
// well as the search path.
func (b *Board) IsDraw() bool {
	if b.pos.Rule50 >= 100 {
		return true
	}
	for i := len(b.keyHistory) - 2; i >= 0; i -= 2 {
		if b.keyHistory[i] == b.pos.Key {
			return true
		}
	}
	return b.isInsufficientMaterial()
}

func (b *Board) isInsufficientMaterial() bool {
	var p = &b.pos
	if p.Pawns|p.Rooks|p.Queens != 0 {
		return false
	}
	var whiteMinors = PopCount((p.Knights | p.Bishops) & p.White)
	var blackMinors = PopCount((p.Knights | p.Bishops) & p.Black)
	return whiteMinors <= 1 && blackMinors <= 1 && whiteMinors+blackMinors <= 1
}

func (b *Board) child(next Position) *Board {
	var hist []uint64
	if next.Rule50 == 0 {
		hist = nil
	} else {
		hist = append(append([]uint64(nil), b.keyHistory...), b.pos.Key)
	}
	return &Board{pos: next, keyHistory: hist, ply: b.ply + 1}
}

// DoMove plays a move already known to be legal and returns the child
// board. Callers that cannot guarantee legality must use DoPseudoLegalMove.
func (b *Board) DoMove(m Move) *Board {
	var next Position
	b.pos.MakeMove(m, &next)
	return b.child(next)
}

// DoPseudoLegalMove attempts a pseudo-legal move, reporting false (and a
// nil board) if it leaves the mover's own king in check.
func (b *Board) DoPseudoLegalMove(m Move) (*Board, bool) {
	var next Position
	if !b.pos.MakeMove(m, &next) {
		return nil, false
	}
	return b.child(next), true
}

// DoHashMove validates and plays a move recalled from the transposition
// table. A false return signals a Type-1 hash collision: the stored move
// does not apply to this position and must be discarded by the caller.
func (b *Board) DoHashMove(m Move) (*Board, bool) {
	if m == MoveEmpty {
		return nil, false
	}
	var legal = false
	for _, lm := range GenerateMoves(make([]Move, MaxMoves), &b.pos) {
		if lm == m {
			legal = true
			break
		}
	}
	if !legal {
		return nil, false
	}
	return b.DoPseudoLegalMove(m)
}

// DoMoveLAN resolves a long-algebraic-notation token (e.g. "e2e4",
// "e7e8q") against the board's legal moves and plays it, preserving
// repetition history — used by the UCI "position ... moves ..." command,
// which must track the whole game for draw detection rather than just the
// resulting position.
func (b *Board) DoMoveLAN(lan string) (*Board, bool) {
	for _, m := range GenerateLegalMoves(&b.pos) {
		if strings.EqualFold(m.String(), lan) {
			return b.DoMove(m), true
		}
	}
	return nil, false
}

// DoNullMove passes the turn without moving; always legal (a side is never
// in check after its opponent merely declines to move, since nothing about
// the board changed except side-to-move and en-passant rights).
func (b *Board) DoNullMove() *Board {
	var next Position
	b.pos.MakeNullMove(&next)
	return b.child(next)
}

// IsCheckMove reports whether playing m (assumed pseudo-legal) would give
// check, without committing the caller to exploring that child.
func (b *Board) IsCheckMove(m Move) bool {
	var next Position
	if !b.pos.MakeMove(m, &next) {
		return false
	}
	return next.IsCheck()
}

// StaticCopy returns an owned, independent copy of the board — used by
// callers (such as a concurrent test-suite runner) that need to hand a
// position to a goroutine without aliasing this board's history slice.
func (b *Board) StaticCopy() *Board {
	var cp = *b
	cp.keyHistory = append([]uint64(nil), b.keyHistory...)
	return &cp
}

func (b *Board) GetAllLegalMoves() []Move {
	return GenerateLegalMoves(&b.pos)
}

// GetPseudoLegalCaptures yields captures (including en-passant and
// capturing promotions), excluding quiet promotions and quiet checks.
func (b *Board) GetPseudoLegalCaptures() []Move {
	var buf [MaxMoves]Move
	var all = GenerateCaptures(buf[:], &b.pos, false)
	var out = make([]Move, 0, len(all))
	for _, m := range all {
		if m.IsCapture() {
			out = append(out, m)
		}
	}
	return out
}

// GetPseudoLegalPromotions yields non-capturing promotions.
func (b *Board) GetPseudoLegalPromotions() []Move {
	var buf [MaxMoves]Move
	var all = GenerateCaptures(buf[:], &b.pos, false)
	var out = make([]Move, 0, 4)
	for _, m := range all {
		if m.IsPromotion() && !m.IsCapture() {
			out = append(out, m)
		}
	}
	return out
}

// GetPseudoLegalChecks yields quiet moves that give check (direct and
// discovered), for use at ply 0 of quiescence.
func (b *Board) GetPseudoLegalChecks() []Move {
	var buf [MaxMoves]Move
	var all = GenerateCaptures(buf[:], &b.pos, true)
	var out = make([]Move, 0, 8)
	for _, m := range all {
		if m.IsQuiet() {
			out = append(out, m)
		}
	}
	return out
}

// GetPseudoLegalCheckEscapes yields every pseudo-legal reply while in
// check (GenerateMoves restricts knight and slider moves to the
// checker-blocking target when Checkers != 0; pawn and king moves are not
// restricted there).
func (b *Board) GetPseudoLegalCheckEscapes() []Move {
	var buf [MaxMoves]Move
	return append([]Move(nil), GenerateMoves(buf[:], &b.pos)...)
}

func (b *Board) GetPieceOnSquare(sq int) int {
	return b.pos.WhatPiece(sq)
}

// GetNonPawnMaterial reports the count of non-pawn, non-king pieces side
// has on the board — used to gate null-move pruning and reverse futility
// pruning away from material-starved endgames where zugzwang is common.
func (b *Board) GetNonPawnMaterial(side bool) int {
	var own = b.pos.PiecesByColor(side)
	return PopCount((b.pos.Knights | b.pos.Bishops | b.pos.Rooks | b.pos.Queens) & own)
}

func (b *Board) GetSEE(side bool, sq int) int {
	return StaticExchangeOnSquare(&b.pos, sq, side)
}

func (b *Board) GetExchangeScore(side bool, move Move) int {
	return StaticExchangeEval(&b.pos, move)
}

// GetMVVLVAScore ranks a capture by Most-Valuable-Victim/Least-Valuable-
// Attacker: higher is searched first.
func (b *Board) GetMVVLVAScore(side bool, move Move) int {
	return SEEPieceValue(move.CapturedPiece())*16 - SEEPieceValue(move.MovingPiece())
}

// centipawnValue is the evaluator-scale (not SEE-scale) value of each
// piece, used for margin comparisons expressed in centipawns (e.g. the
// |alpha| < QUEEN_VALUE futility guard).
var centipawnValue = [...]int{0, 100, 320, 330, 500, 900, 0}

func (b *Board) ValueOfPiece(piece int) int {
	return centipawnValue[piece]
}
