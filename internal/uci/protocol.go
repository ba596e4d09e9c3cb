package uci

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xoto10/laser-chess-engine/internal/chess"
	"github.com/xoto10/laser-chess-engine/internal/search"
)

// Protocol drives one UCI session: it owns the current game's board
// stack, the search engine, and the current setoption-configured Options,
// and translates stdin command lines into engine calls and stdout
// responses.
type Protocol struct {
	name    string
	author  string
	engine  *search.Engine
	eval    search.Evaluator
	log     search.DiagnosticLogger
	options search.Options
	uciOpts []Option

	board *chess.Board

	thinking bool
	cancel   context.CancelFunc
	output   chan search.Info
	done     chan search.Info
}

// New builds a Protocol around eval/log, seeded at the standard starting
// position with the default Options.
func New(name, author string, eval search.Evaluator, log search.DiagnosticLogger) *Protocol {
	var opts = search.DefaultOptions()
	var board, err = chess.NewBoardFromFEN(chess.InitialPositionFen)
	if err != nil {
		panic(err)
	}
	var p = &Protocol{
		name:    name,
		author:  author,
		eval:    eval,
		log:     log,
		options: opts,
		board:   board,
	}
	p.engine = search.NewEngineWithOptions(eval, log, opts)
	p.uciOpts = []Option{
		&IntOption{Name: "Hash", Min: 1, Max: 4096, Value: &p.options.HashMB},
	}
	return p
}

// Run reads commands from stdin until "quit" or EOF, writing UCI protocol
// lines to stdout. It blocks for the lifetime of the session.
func (p *Protocol) Run() {
	var commands = make(chan string)
	go func() {
		defer close(commands)
		var scanner = bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			var line = scanner.Text()
			if line == "quit" {
				return
			}
			if strings.TrimSpace(line) != "" {
				commands <- line
			}
		}
	}()

	for {
		select {
		case info, ok := <-p.output:
			if ok {
				fmt.Println(infoToUci(info))
			}
		case final, ok := <-p.done:
			if ok {
				if len(final.MainLine) != 0 {
					fmt.Printf("bestmove %s\n", final.MainLine[0])
				} else {
					fmt.Println("bestmove 0000")
				}
			}
			p.thinking = false
			p.cancel = nil
			p.output = nil
			p.done = nil
		case line, ok := <-commands:
			if !ok {
				return
			}
			if err := p.handle(line); err != nil {
				p.log.Warnf("uci command error: %v", err)
			}
		}
	}
}

func (p *Protocol) handle(line string) error {
	var fields = strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	var name, args = fields[0], fields[1:]

	if p.thinking {
		if name == "stop" {
			p.cancel()
			return nil
		}
		return errors.New("search already running")
	}

	switch name {
	case "uci":
		return p.handleUci()
	case "setoption":
		return p.handleSetOption(args)
	case "isready":
		fmt.Println("readyok")
		return nil
	case "ucinewgame":
		p.engine = search.NewEngineWithOptions(p.eval, p.log, p.options)
		return nil
	case "position":
		return p.handlePosition(args)
	case "go":
		return p.handleGo(args)
	case "stop":
		return nil // nothing to stop, no search in flight
	default:
		return fmt.Errorf("unrecognized command %q", name)
	}
}

func (p *Protocol) handleUci() error {
	fmt.Printf("id name %s\n", p.name)
	fmt.Printf("id author %s\n", p.author)
	for _, opt := range p.uciOpts {
		fmt.Println(opt.UciString())
	}
	fmt.Println("uciok")
	return nil
}

func (p *Protocol) handleSetOption(args []string) error {
	// "setoption name <id> value <x>"
	if len(args) < 4 {
		return errors.New("malformed setoption")
	}
	var optName, optValue = args[1], args[3]
	for _, opt := range p.uciOpts {
		if strings.EqualFold(opt.UciName(), optName) {
			if err := opt.Set(optValue); err != nil {
				return err
			}
			p.engine = search.NewEngineWithOptions(p.eval, p.log, p.options)
			return nil
		}
	}
	return fmt.Errorf("unknown option %q", optName)
}

func (p *Protocol) handlePosition(args []string) error {
	if len(args) == 0 {
		return errors.New("missing position arguments")
	}

	var movesAt = indexOf(args, "moves")
	var fen string
	switch args[0] {
	case "startpos":
		fen = chess.InitialPositionFen
	case "fen":
		if movesAt < 0 {
			fen = strings.Join(args[1:], " ")
		} else {
			fen = strings.Join(args[1:movesAt], " ")
		}
	default:
		return errors.New("unknown position subcommand")
	}

	var board, err = chess.NewBoardFromFEN(fen)
	if err != nil {
		return err
	}

	if movesAt >= 0 {
		for _, lan := range args[movesAt+1:] {
			var next, ok = board.DoMoveLAN(lan)
			if !ok {
				return fmt.Errorf("illegal move in position command: %s", lan)
			}
			board = next
		}
	}

	p.board = board
	return nil
}

func (p *Protocol) handleGo(args []string) error {
	var limits = parseLimits(args)
	var ctx, cancel = context.WithCancel(context.Background())
	p.cancel = cancel
	p.thinking = true
	p.output = make(chan search.Info, 4)
	p.done = make(chan search.Info, 1)

	var board = p.board
	var engine = p.engine

	go func() {
		var result = engine.IterativeDeepen(ctx, board, limits, func(info search.Info) {
			select {
			case p.output <- info:
			default:
			}
		})
		p.done <- result
		close(p.output)
		close(p.done)
	}()

	return nil
}

func parseLimits(args []string) (limits search.LimitsType) {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "wtime":
			i++
			limits.WhiteTime, _ = strconv.Atoi(args[i])
		case "btime":
			i++
			limits.BlackTime, _ = strconv.Atoi(args[i])
		case "winc":
			i++
			limits.WhiteIncrement, _ = strconv.Atoi(args[i])
		case "binc":
			i++
			limits.BlackIncrement, _ = strconv.Atoi(args[i])
		case "movestogo":
			i++
			limits.MovesToGo, _ = strconv.Atoi(args[i])
		case "depth":
			i++
			limits.Depth, _ = strconv.Atoi(args[i])
		case "movetime":
			i++
			limits.MoveTime, _ = strconv.Atoi(args[i])
		case "nodes":
			i++
			var n, _ = strconv.ParseInt(args[i], 10, 64)
			limits.Nodes = n
		case "infinite":
			limits.Infinite = true
		}
	}
	return limits
}

func indexOf(fields []string, value string) int {
	for i, f := range fields {
		if f == value {
			return i
		}
	}
	return -1
}

func infoToUci(info search.Info) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "info depth %d", info.Depth)
	if info.Score.Mate != 0 {
		fmt.Fprintf(&sb, " score mate %d", info.Score.Mate)
	} else {
		fmt.Fprintf(&sb, " score cp %d", info.Score.Centipawns)
	}
	var nps int64
	if info.Time > 0 {
		nps = info.Nodes * 1000 / info.Time
	}
	fmt.Fprintf(&sb, " nodes %d time %d nps %d hashfull %d", info.Nodes, info.Time, nps, info.HashFull)
	if len(info.MainLine) > 0 {
		sb.WriteString(" pv")
		for _, m := range info.MainLine {
			sb.WriteString(" ")
			sb.WriteString(m.String())
		}
	}
	return sb.String()
}
