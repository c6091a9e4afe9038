package analysis

import (
	"encoding/json"
	"fmt"
)

// SnapshotDisposition tags every serialized Info record.
const SnapshotDisposition = "AnalysisInfo"

// Snapshot is the plain transport shape of an Info record. Text fields
// are null when unset; the mapping is lossless for any record whose text
// fields were within capacity when stored.
type Snapshot struct {
	Disposition    string    `json:"disposition"`
	Done           bool      `json:"done"`
	Bestmove       *string   `json:"bestmove"`
	Ponder         *string   `json:"ponder"`
	Pv             *string   `json:"pv"`
	Depth          int       `json:"depth"`
	Seldepth       int       `json:"seldepth"`
	Time           int       `json:"time"`
	Nodes          uint64    `json:"nodes"`
	Multipv        int       `json:"multipv"`
	Score          Score     `json:"score"`
	Wdl            WDL       `json:"wdl"`
	Currmove       *string   `json:"currmove"`
	Currmovenumber int       `json:"currmovenumber"`
	Hashfull       int       `json:"hashfull"`
	Nps            uint64    `json:"nps"`
	Tbhits         uint64    `json:"tbhits"`
	Cpuload        int       `json:"cpuload"`
	Scoretype      ScoreType `json:"scoretype"`
}

// MarshalJSON encodes the score as a single-key tagged object,
// {"Cp": n} or {"Mate": n}.
func (s Score) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case ScoreMate:
		return json.Marshal(map[string]int{"Mate": s.Value})
	default:
		return json.Marshal(map[string]int{"Cp": s.Value})
	}
}

// UnmarshalJSON decodes the tagged score object.
func (s *Score) UnmarshalJSON(data []byte) error {
	var tagged map[string]int
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	if len(tagged) != 1 {
		return fmt.Errorf("score must carry exactly one of Cp or Mate")
	}
	for tag, v := range tagged {
		switch tag {
		case "Cp":
			*s = Cp(v)
		case "Mate":
			*s = Mate(v)
		default:
			return fmt.Errorf("unknown score tag %q", tag)
		}
	}
	return nil
}

// UnmarshalJSON rejects score type tags outside the known three.
func (t *ScoreType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch ScoreType(raw) {
	case ScoreTypeExact, ScoreTypeLowerbound, ScoreTypeUpperbound:
		*t = ScoreType(raw)
		return nil
	default:
		return fmt.Errorf("unknown score type %q", raw)
	}
}

// Snapshot maps the record onto its transport shape.
func (i Info) Snapshot() Snapshot {
	return Snapshot{
		Disposition:    SnapshotDisposition,
		Done:           i.Done,
		Bestmove:       optText(i.bestmove.Text()),
		Ponder:         optText(i.ponder.Text()),
		Pv:             optText(i.pv.Text()),
		Depth:          i.Depth,
		Seldepth:       i.Seldepth,
		Time:           i.Time,
		Nodes:          i.Nodes,
		Multipv:        i.Multipv,
		Score:          i.Score,
		Wdl:            i.Wdl,
		Currmove:       optText(i.currmove.Text()),
		Currmovenumber: i.Currmovenumber,
		Hashfull:       i.Hashfull,
		Nps:            i.Nps,
		Tbhits:         i.Tbhits,
		Cpuload:        i.Cpuload,
		Scoretype:      i.Scoretype,
	}
}

// InfoFromSnapshot rebuilds a record from its transport shape. Text
// longer than a cell's capacity is truncated, same as Set.
func InfoFromSnapshot(s Snapshot) Info {
	rec := Info{
		Done:           s.Done,
		Depth:          s.Depth,
		Seldepth:       s.Seldepth,
		Time:           s.Time,
		Nodes:          s.Nodes,
		Multipv:        s.Multipv,
		Score:          s.Score,
		Wdl:            s.Wdl,
		Currmovenumber: s.Currmovenumber,
		Hashfull:       s.Hashfull,
		Nps:            s.Nps,
		Tbhits:         s.Tbhits,
		Cpuload:        s.Cpuload,
		Scoretype:      s.Scoretype,
	}
	rec.bestmove = MoveTextFrom(deref(s.Bestmove))
	rec.ponder = MoveTextFrom(deref(s.Ponder))
	rec.pv = LineTextFrom(deref(s.Pv))
	rec.currmove = MoveTextFrom(deref(s.Currmove))
	return rec
}

// ToJSON serializes the record's snapshot.
func (i Info) ToJSON() ([]byte, error) {
	return json.Marshal(i.Snapshot())
}

// InfoFromJSON deserializes a snapshot produced by ToJSON. Malformed
// input yields an error and no partial result.
func InfoFromJSON(data []byte) (Info, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Info{}, fmt.Errorf("decode analysis snapshot: %w", err)
	}
	return InfoFromSnapshot(s), nil
}

func optText(s string, ok bool) *string {
	if !ok {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
