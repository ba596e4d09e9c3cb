package main

import (
	"flag"
	"runtime"

	"github.com/xoto10/laser-chess-engine/internal/eval"
	"github.com/xoto10/laser-chess-engine/internal/logx"
	"github.com/xoto10/laser-chess-engine/internal/uci"
)

const (
	name   = "LaserCore"
	author = "the laser-chess-engine project"
)

func main() {
	flag.Parse()

	var logger = logx.New()
	logger.Info().
		Str("name", name).
		Str("goVersion", runtime.Version()).
		Str("goos", runtime.GOOS).
		Str("goarch", runtime.GOARCH).
		Int("numCPU", runtime.NumCPU()).
		Msg("starting")

	var searchLog = logx.SearchLogger{Logger: logger}
	var evaluator = eval.NewEvaluator()
	var protocol = uci.New(name, author, evaluator, searchLog)
	protocol.Run()
}
