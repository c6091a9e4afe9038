// Package analysis decodes the "info" telemetry lines a UCI chess engine
// streams during search into a fixed-layout, serializable record.
//
// An Info value accumulates the most recently reported search state: each
// parsed line applies a partial update, touching only the fields that line
// names. Move and principal variation text live in bounded cells, so the
// record is a flat value with no interior pointers.
package analysis

// ScoreKind discriminates the two ways an engine reports a score.
type ScoreKind int

const (
	// ScoreCp is an evaluation in centipawns.
	ScoreCp ScoreKind = iota
	// ScoreMate is a mate in N moves, negative when getting mated.
	ScoreMate
)

// Score is an engine evaluation, either centipawns or mate distance.
type Score struct {
	Kind  ScoreKind
	Value int
}

// Cp builds a centipawn score.
func Cp(v int) Score { return Score{Kind: ScoreCp, Value: v} }

// Mate builds a mate-in-N score.
func Mate(v int) Score { return Score{Kind: ScoreMate, Value: v} }

// ScoreType records whether a reported score is exact or only a bound,
// as produced by alpha-beta cutoffs.
type ScoreType string

const (
	ScoreTypeExact      ScoreType = "Exact"
	ScoreTypeLowerbound ScoreType = "Lowerbound"
	ScoreTypeUpperbound ScoreType = "Upperbound"
)

// WDL holds the win/draw/loss counters some engines report.
type WDL struct {
	Win  uint64 `json:"win"`
	Draw uint64 `json:"draw"`
	Loss uint64 `json:"loss"`
}

// Info is the accumulator for one analysis session. Parse mutates it in
// place; fields not named on a line keep their previous values.
type Info struct {
	// Done is false while analysis is ongoing and is set by the embedding
	// application once it observes the matching bestmove. The parser
	// never touches it.
	Done bool

	bestmove MoveText
	ponder   MoveText
	pv       LineText
	currmove MoveText

	// Depth is the search depth in plies.
	Depth int
	// Seldepth is the selective search depth in plies.
	Seldepth int
	// Time is the time searched in milliseconds.
	Time int
	// Nodes is the number of nodes searched.
	Nodes uint64
	// Multipv is the 1-based multi-pv index of this line.
	Multipv int
	// Score is the latest reported evaluation.
	Score Score
	// Currmovenumber is the 1-based index of the move being searched.
	Currmovenumber int
	// Hashfull is the transposition table fill in permill.
	Hashfull int
	// Nps is nodes per second.
	Nps uint64
	// Tbhits is the number of tablebase hits.
	Tbhits uint64
	// Cpuload is the engine cpu usage in permill.
	Cpuload int
	// Scoretype qualifies Score as exact or a bound.
	Scoretype ScoreType
	// Wdl holds win/draw/loss counters.
	Wdl WDL
}

// NewInfo returns an empty record with an exact centipawn zero score.
func NewInfo() Info {
	return Info{
		Score:     Cp(0),
		Scoretype: ScoreTypeExact,
	}
}

// Bestmove returns the first PV move, or false if no PV was seen yet.
func (i Info) Bestmove() (string, bool) { return i.bestmove.Text() }

// Ponder returns the second PV move, or false if none was seen.
func (i Info) Ponder() (string, bool) { return i.ponder.Text() }

// PV returns the accumulated principal variation, trimmed to whole moves.
func (i Info) PV() (string, bool) { return i.pv.Text() }

// Currmove returns the move currently being searched, if reported.
func (i Info) Currmove() (string, bool) { return i.currmove.Text() }
