package chess

import "testing"

// perft counts leaf nodes of the legal-move tree to depth, the standard
// move-generator correctness check: any generation bug (missed en
// passant, wrong castling rights, an illegal move slipping through)
// shows up as a wrong node count against well-known reference values.
func perft(p *Position, depth int) int {
	if depth == 0 {
		return 1
	}
	var buffer [MaxMoves]Move
	var child Position
	var nodes = 0
	for _, move := range GenerateMoves(buffer[:], p) {
		if p.MakeMove(move, &child) {
			nodes += perft(&child, depth-1)
		}
	}
	return nodes
}

func TestPerft(t *testing.T) {
	var tests = []struct {
		fen   string
		depth int
		nodes int
	}{
		{InitialPositionFen, 1, 20},
		{InitialPositionFen, 2, 400},
		{InitialPositionFen, 3, 8902},
		{InitialPositionFen, 4, 197281},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97862},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4, 43238},
		{"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1", 3, 9483},
	}
	for _, test := range tests {
		var p, err = NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatalf("%s: %v", test.fen, err)
		}
		var nodes = perft(&p, test.depth)
		if nodes != test.nodes {
			t.Errorf("perft(%q, %d) = %d, want %d", test.fen, test.depth, nodes, test.nodes)
		}
	}
}

func TestFenRoundTrip(t *testing.T) {
	var fens = []string{
		InitialPositionFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/7p/p5pb/4k3/P1pPn3/8/P5PP/1rB2RK1 b - d3 0 28",
	}
	for _, fen := range fens {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatalf("%s: %v", fen, err)
		}
		if got := p.String(); got != fen {
			t.Errorf("round trip %q, got %q", fen, got)
		}
	}
}

func TestMakeMoveThenBoardKeyChanges(t *testing.T) {
	var p, err = NewPositionFromFEN(InitialPositionFen)
	if err != nil {
		t.Fatal(err)
	}
	var board = NewBoard(p)
	var next, ok = board.DoMoveLAN("e2e4")
	if !ok {
		t.Fatal("e2e4 should be legal from the starting position")
	}
	if next.Key() == board.Key() {
		t.Error("zobrist key did not change after a move")
	}
	if next.PlayerToMove() {
		t.Error("black should be to move after 1.e4")
	}
}
