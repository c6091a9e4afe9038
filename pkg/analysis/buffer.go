package analysis

const (
	// uciMaxLength is the longest UCI move, e.g. "e7e8q".
	uciMaxLength = 5
	// uciTypicalLength is the typical UCI move length.
	uciTypicalLength = 4
	// maxPVMoves bounds how many principal variation moves are kept.
	maxPVMoves = 10
	// pvBuffSize is the PV storage size: moves plus joining separators.
	pvBuffSize = maxPVMoves * (uciTypicalLength + 1)
)

// MoveText is fixed-capacity storage for a single UCI move token.
// Values longer than the capacity are truncated silently.
type MoveText struct {
	n   int
	buf [uciMaxLength]byte
}

// LineText is fixed-capacity storage for a whitespace-joined move
// sequence such as a principal variation.
type LineText struct {
	n   int
	buf [pvBuffSize]byte
}

func storeBytes(dst []byte, s string) int {
	n := len(s)
	if n > len(dst) {
		n = len(dst)
	}
	copy(dst, s[:n])
	return n
}

// trimLen computes the retained length for SetTrim: the whole string when
// it fits, otherwise the longest prefix that ends exactly at a separator
// and does not exceed capacity. Zero when no such boundary exists.
func trimLen(s string, capacity int, sep byte) int {
	n := len(s)
	if n <= capacity {
		return n
	}
	for n > 0 {
		c := s[n-1]
		n--
		if c == sep && n <= capacity {
			break
		}
	}
	return n
}

// MoveTextFrom stores s into a new MoveText, truncating to capacity.
func MoveTextFrom(s string) MoveText {
	var m MoveText
	m.Set(s)
	return m
}

// Set copies s into the cell, truncating to capacity.
func (m *MoveText) Set(s string) {
	m.n = storeBytes(m.buf[:], s)
}

// Reset empties the cell.
func (m *MoveText) Reset() { m.n = 0 }

// Len reports the stored length in bytes.
func (m MoveText) Len() int { return m.n }

// Text returns the stored move, or false when nothing has been stored.
func (m MoveText) Text() (string, bool) {
	if m.n == 0 {
		return "", false
	}
	return string(m.buf[:m.n]), true
}

func (m MoveText) String() string { return string(m.buf[:m.n]) }

// LineTextFrom stores s into a new LineText, truncating to capacity.
func LineTextFrom(s string) LineText {
	var l LineText
	l.Set(s)
	return l
}

// Set copies s into the cell, truncating to capacity.
func (l *LineText) Set(s string) {
	l.n = storeBytes(l.buf[:], s)
}

// SetTrim stores the longest prefix of s that fits the capacity and ends
// exactly on a sep boundary, so a trailing token is never split. Input
// that already fits is stored whole.
func (l *LineText) SetTrim(s string, sep byte) {
	n := trimLen(s, len(l.buf), sep)
	l.n = n
	copy(l.buf[:], s[:n])
}

// Reset empties the cell.
func (l *LineText) Reset() { l.n = 0 }

// Len reports the stored length in bytes.
func (l LineText) Len() int { return l.n }

// Text returns the stored line, or false when nothing has been stored.
func (l LineText) Text() (string, bool) {
	if l.n == 0 {
		return "", false
	}
	return string(l.buf[:l.n]), true
}

func (l LineText) String() string { return string(l.buf[:l.n]) }
