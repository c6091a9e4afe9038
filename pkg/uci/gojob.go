package uci

import (
	"fmt"
	"strings"
)

// PosSpec selects how a GoJob describes the position to search.
type PosSpec int

const (
	// PosNone issues no position command.
	PosNone PosSpec = iota
	// PosStartpos searches from the standard starting position.
	PosStartpos
	// PosFen searches from an arbitrary FEN.
	PosFen
)

type optionPair struct {
	key   string
	value string
}

// GoJob configures one search: UCI options to set beforehand, the
// position, and the arguments of the go command. Engines are sensitive to
// option order, so pairs are rendered in insertion order; re-setting a
// key updates its value in place. A job is built once through the chained
// setters and consumed by a single Engine.Go call.
type GoJob struct {
	uciOptions []optionPair
	posSpec    PosSpec
	posFen     string
	posMoves   string
	goOptions  []optionPair
}

// NewGoJob returns an empty job: no options, no position.
func NewGoJob() *GoJob {
	return &GoJob{posSpec: PosNone}
}

// PosFen sets the position to the given FEN.
func (j *GoJob) PosFen(fen string) *GoJob {
	j.posSpec = PosFen
	j.posFen = fen
	return j
}

// PosStartpos sets the position to the standard starting position.
func (j *GoJob) PosStartpos() *GoJob {
	j.posSpec = PosStartpos
	return j
}

// PosMoves appends a move list to the position command.
func (j *GoJob) PosMoves(moves ...string) *GoJob {
	j.posMoves = strings.Join(moves, " ")
	return j
}

// UciOption records a setoption pair to issue before the search.
func (j *GoJob) UciOption(key string, value any) *GoJob {
	j.uciOptions = setPair(j.uciOptions, key, fmt.Sprint(value))
	return j
}

// GoOption records an argument pair for the go command.
func (j *GoJob) GoOption(key string, value any) *GoJob {
	j.goOptions = setPair(j.goOptions, key, fmt.Sprint(value))
	return j
}

// Tc renders a time control into the four clock arguments of the go
// command.
func (j *GoJob) Tc(tc Timecontrol) *GoJob {
	j.GoOption("wtime", tc.WTime)
	j.GoOption("winc", tc.WInc)
	j.GoOption("btime", tc.BTime)
	j.GoOption("binc", tc.BInc)
	return j
}

// positionCommand renders the position line, or false when the job sets
// no position.
func (j *GoJob) positionCommand() (string, bool) {
	moves := ""
	if j.posMoves != "" {
		moves = " moves " + j.posMoves
	}
	switch j.posSpec {
	case PosStartpos:
		return "position startpos" + moves, true
	case PosFen:
		return "position fen " + j.posFen + moves, true
	default:
		return "", false
	}
}

// goCommand renders the go line with the job's argument pairs in order.
func (j *GoJob) goCommand() string {
	cmd := "go"
	for _, opt := range j.goOptions {
		cmd += " " + opt.key + " " + opt.value
	}
	return cmd
}

func setPair(pairs []optionPair, key, value string) []optionPair {
	for i := range pairs {
		if pairs[i].key == key {
			pairs[i].value = value
			return pairs
		}
	}
	return append(pairs, optionPair{key: key, value: value})
}

// Timecontrol holds per-side remaining time and increment, in
// milliseconds.
type Timecontrol struct {
	WTime int
	WInc  int
	BTime int
	BInc  int
}

// DefaultTimecontrol is one minute for both sides, no increment.
func DefaultTimecontrol() Timecontrol {
	return Timecontrol{WTime: 60000, BTime: 60000}
}
