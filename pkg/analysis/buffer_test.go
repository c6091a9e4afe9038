package analysis

import "testing"

func TestMoveTextRoundTrip(t *testing.T) {
	var m MoveText
	m.Set("e2e4")
	if got, ok := m.Text(); !ok || got != "e2e4" {
		t.Fatalf("Text() = %q, %v", got, ok)
	}
	if m.Len() != 4 {
		t.Fatalf("Len() = %d", m.Len())
	}

	m.Set("e7e8q")
	if got := m.String(); got != "e7e8q" {
		t.Fatalf("String() = %q", got)
	}
}

func TestMoveTextTruncatesSilently(t *testing.T) {
	m := MoveTextFrom("e7e8queen")
	if got := m.String(); got != "e7e8q" {
		t.Fatalf("truncated value = %q", got)
	}
}

func TestMoveTextEmptyIsAbsent(t *testing.T) {
	var m MoveText
	if _, ok := m.Text(); ok {
		t.Fatal("empty cell reported a value")
	}
	m.Set("e2e4")
	m.Reset()
	if _, ok := m.Text(); ok {
		t.Fatal("reset cell reported a value")
	}
}

func TestTrimLenAtTokenBoundary(t *testing.T) {
	const input = "e2e4 e7e5 g1f3 b8c6"

	n := trimLen(input, 9, ' ')
	if n != 9 {
		t.Fatalf("trimLen = %d, want 9", n)
	}
	if got := input[:n]; got != "e2e4 e7e5" {
		t.Fatalf("trimmed prefix = %q", got)
	}
}

func TestTrimLenKeepsFittingInput(t *testing.T) {
	if n := trimLen("e2e4", 9, ' '); n != 4 {
		t.Fatalf("trimLen = %d, want 4", n)
	}
	if n := trimLen("e2e4 e7e5", 9, ' '); n != 9 {
		t.Fatalf("trimLen = %d, want 9", n)
	}
}

func TestTrimLenNoBoundary(t *testing.T) {
	// A single oversized token has no separator boundary to cut at.
	if n := trimLen("aaaaaaaaaaaa", 9, ' '); n != 0 {
		t.Fatalf("trimLen = %d, want 0", n)
	}
}

func TestLineTextSetTrim(t *testing.T) {
	var l LineText
	l.SetTrim("e2e4 e7e5 g1f3", ' ')
	if got := l.String(); got != "e2e4 e7e5 g1f3" {
		t.Fatalf("fitting input modified: %q", got)
	}

	// 11 four-byte moves exceed the 50-byte capacity by one move.
	long := "a2a3 b2b3 c2c3 d2d3 e2e3 f2f3 g2g3 h2h3 a7a6 b7b6 c7c6"
	l.SetTrim(long, ' ')
	got := l.String()
	if got != long[:49] {
		t.Fatalf("trimmed value = %q", got)
	}
	if got[len(got)-1] == ' ' {
		t.Fatalf("trimmed value ends with separator: %q", got)
	}
}
