package eval

import (
	"testing"

	"github.com/xoto10/laser-chess-engine/internal/chess"
)

var testFENs = []string{
	chess.InitialPositionFen,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"8/7p/p5pb/4k3/P1pPn3/8/P5PP/1rB2RK1 b - d3 0 28",
	"1k1r4/1pp4p/p7/4p3/8/P5P1/1PP4P/2K1R3 w - - 0 1",
	"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
}

func TestEvaluateMirrorSymmetry(t *testing.T) {
	var e = NewEvaluator()
	for _, fen := range testFENs {
		var pos, err = chess.NewPositionFromFEN(fen)
		if err != nil {
			t.Fatalf("%s: %v", fen, err)
		}
		var board = chess.NewBoard(pos)
		var mirrored = chess.NewBoard(chess.MirrorPosition(&pos))
		var score1 = e.Evaluate(board)
		var score2 = e.Evaluate(mirrored)
		if score1 != score2 {
			t.Errorf("%s: Evaluate=%d, mirrored Evaluate=%d, want equal", fen, score1, score2)
		}
	}
}

func TestEvaluateMaterialMatchesBoardValueOfPiece(t *testing.T) {
	var e = NewEvaluator()
	var board, err = chess.NewBoardFromFEN(chess.InitialPositionFen)
	if err != nil {
		t.Fatal(err)
	}
	if v := e.EvaluateMaterial(board); v != 0 {
		t.Errorf("initial position material eval = %d, want 0", v)
	}
	// White up a queen: material eval must equal the flat queen value.
	var upAQueen, err3 = chess.NewBoardFromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	if err3 != nil {
		t.Fatal(err3)
	}
	if v := e.EvaluateMaterial(upAQueen); v != board.ValueOfPiece(chess.Queen) {
		t.Errorf("material eval up a queen = %d, want %d", v, board.ValueOfPiece(chess.Queen))
	}
}
