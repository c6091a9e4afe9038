package uci

import "testing"

func TestGoCommandKeepsInsertionOrder(t *testing.T) {
	job := NewGoJob().
		GoOption("depth", 12).
		GoOption("nodes", 500000).
		GoOption("movetime", 800)

	if got := job.goCommand(); got != "go depth 12 nodes 500000 movetime 800" {
		t.Fatalf("goCommand = %q", got)
	}
}

func TestGoOptionUpdatesInPlace(t *testing.T) {
	job := NewGoJob().
		GoOption("depth", 12).
		GoOption("movetime", 800).
		GoOption("depth", 20)

	if got := job.goCommand(); got != "go depth 20 movetime 800" {
		t.Fatalf("goCommand = %q", got)
	}
}

func TestPositionCommandVariants(t *testing.T) {
	if _, ok := NewGoJob().positionCommand(); ok {
		t.Fatal("empty job rendered a position command")
	}

	cmd, ok := NewGoJob().PosStartpos().positionCommand()
	if !ok || cmd != "position startpos" {
		t.Fatalf("startpos = %q, %v", cmd, ok)
	}

	cmd, _ = NewGoJob().PosStartpos().PosMoves("e2e4", "e7e5").positionCommand()
	if cmd != "position startpos moves e2e4 e7e5" {
		t.Fatalf("startpos+moves = %q", cmd)
	}

	const fen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	cmd, _ = NewGoJob().PosFen(fen).positionCommand()
	if cmd != "position fen "+fen {
		t.Fatalf("fen = %q", cmd)
	}

	cmd, _ = NewGoJob().PosFen(fen).PosMoves("g1f3").positionCommand()
	if cmd != "position fen "+fen+" moves g1f3" {
		t.Fatalf("fen+moves = %q", cmd)
	}
}

func TestTcRendersFourClockPairs(t *testing.T) {
	job := NewGoJob().Tc(Timecontrol{WTime: 30000, WInc: 2000, BTime: 28000, BInc: 2000})
	if got := job.goCommand(); got != "go wtime 30000 winc 2000 btime 28000 binc 2000" {
		t.Fatalf("goCommand = %q", got)
	}
}

func TestDefaultTimecontrol(t *testing.T) {
	tc := DefaultTimecontrol()
	if tc.WTime != 60000 || tc.BTime != 60000 || tc.WInc != 0 || tc.BInc != 0 {
		t.Fatalf("DefaultTimecontrol = %+v", tc)
	}
}
