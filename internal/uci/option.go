// Package uci implements the engine's UCI protocol front end: command
// parsing off stdin, setoption plumbing into an Options struct, and
// info/bestmove formatting to stdout.
package uci

import (
	"errors"
	"fmt"
	"strconv"
)

// Option is one UCI-visible tunable, reported by the "uci" command and
// mutated by "setoption".
type Option interface {
	UciName() string
	UciString() string
	Set(s string) error
}

type IntOption struct {
	Name  string
	Min   int
	Max   int
	Value *int
}

func (opt *IntOption) UciName() string { return opt.Name }

func (opt *IntOption) UciString() string {
	return fmt.Sprintf("option name %v type spin default %v min %v max %v",
		opt.Name, *opt.Value, opt.Min, opt.Max)
}

func (opt *IntOption) Set(s string) error {
	var v, err = strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v < opt.Min || v > opt.Max {
		return errors.New("argument out of range")
	}
	*opt.Value = v
	return nil
}
