package search

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/xoto10/laser-chess-engine/internal/chess"
)

// EpdCase is one labeled position from an EPD test suite: a starting
// position plus the set of moves considered "best" for it (bm records
// can list more than one accepted answer).
type EpdCase struct {
	Line      string
	Board     Position
	BestMoves []Move
}

// LoadEpdFile reads a standard EPD test file (one "<fen> bm <san> [<san>
// ...];" record per line) into a slice of cases, skipping and logging any
// line that fails to parse rather than aborting the whole file.
func LoadEpdFile(path string, log DiagnosticLogger) ([]EpdCase, error) {
	var f, err = os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cases []EpdCase
	var scanner = bufio.NewScanner(f)
	for scanner.Scan() {
		var line = scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		var c, perr = parseEpdCase(line)
		if perr != nil {
			log.Warnf("skipping malformed epd line: %v", perr)
			continue
		}
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}

func parseEpdCase(line string) (EpdCase, error) {
	var bmAt = strings.Index(line, "bm")
	if bmAt < 0 {
		return EpdCase{}, fmt.Errorf("no bm field: %q", line)
	}
	var semiAt = strings.Index(line[bmAt:], ";")
	if semiAt < 0 {
		return EpdCase{}, fmt.Errorf("unterminated bm field: %q", line)
	}
	semiAt += bmAt

	var fen = strings.TrimSpace(line[:bmAt])
	var board, err = chess.NewBoardFromFEN(fen)
	if err != nil {
		return EpdCase{}, fmt.Errorf("bad fen %q: %w", fen, err)
	}

	var sanTokens = strings.Fields(line[bmAt+len("bm") : semiAt])
	if len(sanTokens) == 0 {
		return EpdCase{}, fmt.Errorf("empty bm field: %q", line)
	}

	var best []Move
	var pos = board.Position()
	for _, san := range sanTokens {
		var m = chess.ParseMoveSAN(&pos, san)
		if m == chess.MoveEmpty {
			return EpdCase{}, fmt.Errorf("unparsable move %q in %q", san, line)
		}
		best = append(best, m)
	}

	return EpdCase{Line: line, Board: board, BestMoves: best}, nil
}

// CaseResult is one case's outcome from RunSuite.
type CaseResult struct {
	Case    EpdCase
	Played  Move
	Correct bool
	Info    Info
}

// RunSuite searches every case in parallel, bounded by concurrency, and
// reports whether the move found within perCaseTime matches one of the
// case's accepted best moves. Each case gets its own Engine (own TT,
// killers, history): unlike the PVS recursion itself, which stays
// strictly single-threaded per Non-goal, running independent positions
// concurrently shares no mutable search state across goroutines, so
// golang.org/x/sync/errgroup's bounded fan-out applies cleanly here.
func RunSuite(ctx context.Context, cases []EpdCase, eval Evaluator, log DiagnosticLogger,
	ttMegabytesPerJob, concurrency int, perCaseTime time.Duration) ([]CaseResult, error) {

	var results = make([]CaseResult, len(cases))
	var group, groupCtx = errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	for i, c := range cases {
		var i, c = i, c
		group.Go(func() error {
			var engine = NewEngine(eval, log, ttMegabytesPerJob)
			var limits = LimitsType{MoveTime: int(perCaseTime / time.Millisecond)}
			var info = engine.IterativeDeepen(groupCtx, c.Board, limits, nil)

			var played Move
			if len(info.MainLine) > 0 {
				played = info.MainLine[0]
			}
			results[i] = CaseResult{
				Case:    c,
				Played:  played,
				Correct: containsMove(c.BestMoves, played),
				Info:    info,
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func containsMove(candidates []Move, m Move) bool {
	for _, c := range candidates {
		if c == m {
			return true
		}
	}
	return false
}
