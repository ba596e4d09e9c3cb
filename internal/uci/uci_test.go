package uci

import (
	"testing"

	"github.com/xoto10/laser-chess-engine/internal/eval"
	"github.com/xoto10/laser-chess-engine/internal/search"
)

type testLogger struct{}

func (testLogger) Warnf(format string, args ...interface{}) {}
func (testLogger) Statf(format string, args ...interface{}) {}

func TestParseLimitsReadsAllFields(t *testing.T) {
	var limits = parseLimits([]string{
		"wtime", "60000", "btime", "59000", "winc", "100", "binc", "200",
		"movestogo", "30", "depth", "12", "movetime", "5000", "nodes", "1000000",
	})
	var want = search.LimitsType{
		WhiteTime: 60000, BlackTime: 59000,
		WhiteIncrement: 100, BlackIncrement: 200,
		MovesToGo: 30, Depth: 12, MoveTime: 5000, Nodes: 1000000,
	}
	if limits != want {
		t.Errorf("parseLimits = %+v, want %+v", limits, want)
	}
}

func TestParseLimitsInfinite(t *testing.T) {
	var limits = parseLimits([]string{"infinite"})
	if !limits.Infinite {
		t.Error("Infinite = false, want true")
	}
}

func TestHandlePositionStartposThenMoves(t *testing.T) {
	var p = New("test", "tester", eval.NewEvaluator(), testLogger{})
	if err := p.handlePosition([]string{"startpos", "moves", "e2e4", "e7e5"}); err != nil {
		t.Fatal(err)
	}
	if p.board.PlayerToMove() != true {
		t.Error("after 1.e4 e5 it should be White to move")
	}
}

func TestHandlePositionFen(t *testing.T) {
	var p = New("test", "tester", eval.NewEvaluator(), testLogger{})
	var fen = "8/7p/p5pb/4k3/P1pPn3/8/P5PP/1rB2RK1 b - d3 0 28"
	if err := p.handlePosition([]string{"fen", "8/7p/p5pb/4k3/P1pPn3/8/P5PP/1rB2RK1", "b", "-", "d3", "0", "28"}); err != nil {
		t.Fatal(err)
	}
	var pos = p.board.Position()
	if got := pos.String(); got != fen {
		t.Errorf("board FEN = %q, want %q", got, fen)
	}
}

func TestHandlePositionRejectsIllegalMove(t *testing.T) {
	var p = New("test", "tester", eval.NewEvaluator(), testLogger{})
	if err := p.handlePosition([]string{"startpos", "moves", "e2e5"}); err == nil {
		t.Error("expected an error for an illegal move, got nil")
	}
}

func TestIndexOf(t *testing.T) {
	if i := indexOf([]string{"a", "b", "moves", "c"}, "moves"); i != 2 {
		t.Errorf("indexOf = %d, want 2", i)
	}
	if i := indexOf([]string{"a", "b"}, "moves"); i != -1 {
		t.Errorf("indexOf = %d, want -1", i)
	}
}
