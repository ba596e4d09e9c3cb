package chess

import "strings"

// Move packs from-square, to-square, moving piece, captured piece, and
// promotion piece into a single scalar so comparisons (killer/hash move
// matching) are cheap integer equality.
type Move int32

const MoveEmpty = Move(0)

func makeMove(from, to, movingPiece, capturedPiece int) Move {
	return Move(from ^ (to << 6) ^ (movingPiece << 12) ^ (capturedPiece << 15))
}

func makePawnMove(from, to, capturedPiece, promotion int) Move {
	return Move(from ^ (to << 6) ^ (Pawn << 12) ^ (capturedPiece << 15) ^ (promotion << 18))
}

func (m Move) From() int          { return int(m & 63) }
func (m Move) To() int            { return int((m >> 6) & 63) }
func (m Move) MovingPiece() int   { return int((m >> 12) & 7) }
func (m Move) CapturedPiece() int { return int((m >> 15) & 7) }
func (m Move) Promotion() int     { return int((m >> 18) & 7) }

func (m Move) IsCapture() bool   { return m.CapturedPiece() != Empty }
func (m Move) IsPromotion() bool { return m.Promotion() != Empty }
func (m Move) IsQuiet() bool     { return !m.IsCapture() && !m.IsPromotion() }

func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	var sPromotion = ""
	if m.Promotion() != Empty {
		sPromotion = string("nbrq"[m.Promotion()-Knight])
	}
	return SquareName(m.From()) + SquareName(m.To()) + sPromotion
}

// MakeMoveLAN looks up the move matching long algebraic notation among the
// position's legal moves and plays it, returning the resulting position.
func (p *Position) MakeMoveLAN(lan string) (Position, bool) {
	var buffer [MaxMoves]Move
	var ml = GenerateMoves(buffer[:], p)
	for _, mv := range ml {
		if strings.EqualFold(mv.String(), lan) {
			var child Position
			if p.MakeMove(mv, &child) {
				return child, true
			}
			return Position{}, false
		}
	}
	return Position{}, false
}

func moveToSAN(pos *Position, ml []Move, mv Move) string {
	const pieceNames = "NBRQK"
	if mv == whiteKingSideCastle || mv == blackKingSideCastle {
		return "O-O"
	}
	if mv == whiteQueenSideCastle || mv == blackQueenSideCastle {
		return "O-O-O"
	}
	var strPiece, strCapture, strFrom, strTo, strPromotion string
	if mv.MovingPiece() != Pawn {
		strPiece = string(pieceNames[mv.MovingPiece()-Knight])
	}
	strTo = SquareName(mv.To())
	if mv.CapturedPiece() != Empty {
		strCapture = "x"
		if mv.MovingPiece() == Pawn {
			strFrom = SquareName(mv.From())[:1]
		}
	}
	if mv.Promotion() != Empty {
		strPromotion = "=" + string(pieceNames[mv.Promotion()-Knight])
	}
	var ambiguity, uniqCol, uniqRow = false, true, true
	for _, mv1 := range ml {
		if mv1.From() == mv.From() || mv1.To() != mv.To() || mv1.MovingPiece() != mv.MovingPiece() {
			continue
		}
		ambiguity = true
		if File(mv1.From()) == File(mv.From()) {
			uniqCol = false
		}
		if Rank(mv1.From()) == Rank(mv.From()) {
			uniqRow = false
		}
	}
	if ambiguity {
		switch {
		case uniqCol:
			strFrom = SquareName(mv.From())[:1]
		case uniqRow:
			strFrom = SquareName(mv.From())[1:2]
		default:
			strFrom = SquareName(mv.From())
		}
	}
	return strPiece + strFrom + strCapture + strTo + strPromotion
}

// ParseMoveSAN resolves a SAN token (optionally annotated with +/#/?/!)
// against the position's legal moves.
func ParseMoveSAN(pos *Position, san string) Move {
	if i := strings.IndexAny(san, "+#?!"); i >= 0 {
		san = san[:i]
	}
	var ml = GenerateLegalMoves(pos)
	for _, mv := range ml {
		if san == moveToSAN(pos, ml, mv) {
			return mv
		}
	}
	return MoveEmpty
}
