package analysis

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/marcusbuffett/uciengine/internal/config"
	"github.com/marcusbuffett/uciengine/internal/obslog"
)

// ParsingState identifies which token the info line parser expects next.
// It is carried by ParseNumberError so callers can tell which field a
// malformed number belonged to.
type ParsingState int

const (
	stateInfo ParsingState = iota
	stateKey
	stateUnknown
	stateDepth
	stateSeldepth
	stateTime
	stateNodes
	stateMultipv
	stateScore
	stateWdlWin
	stateWdlDraw
	stateWdlLoss
	stateScoreCp
	stateScoreMate
	stateCurrmove
	stateCurrmovenumber
	stateHashfull
	stateNps
	stateTbhits
	stateCpuload
	statePvBestmove
	statePvPonder
	statePvRest
)

var stateNames = map[ParsingState]string{
	stateInfo:           "Info",
	stateKey:            "Key",
	stateUnknown:        "Unknown",
	stateDepth:          "Depth",
	stateSeldepth:       "Seldepth",
	stateTime:           "Time",
	stateNodes:          "Nodes",
	stateMultipv:        "Multipv",
	stateScore:          "Score",
	stateWdlWin:         "WdlWin",
	stateWdlDraw:        "WdlDraw",
	stateWdlLoss:        "WdlLoss",
	stateScoreCp:        "ScoreCp",
	stateScoreMate:      "ScoreMate",
	stateCurrmove:       "Currmove",
	stateCurrmovenumber: "Currmovenumber",
	stateHashfull:       "Hashfull",
	stateNps:            "Nps",
	stateTbhits:         "Tbhits",
	stateCpuload:        "Cpuload",
	statePvBestmove:     "PvBestmove",
	statePvPonder:       "PvPonder",
	statePvRest:         "PvRest",
}

func (s ParsingState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Invalid"
}

// lineParser threads the current state and the line-local PV accumulator
// through the per-token dispatch.
type lineParser struct {
	rec          *Info
	ps           ParsingState
	pv           strings.Builder
	pvOn         bool
	allowUnknown bool
}

// Parse consumes one engine output line and applies a partial update to
// the record: only the fields named on the line change. Lines whose first
// token is not "info", and lines using the unsupported "string",
// "refutation" or "currline" keywords, are no-op successes. Fields decoded
// before a failure point stay applied.
func (i *Info) Parse(line string) error {
	p := lineParser{
		rec:          i,
		ps:           stateInfo,
		allowUnknown: config.AllowUnknownInfoKey(),
	}

	for _, token := range strings.Split(line, " ") {
		done, err := p.step(token)
		if err != nil {
			logParseError(err)
			return err
		}
		if done {
			return nil
		}
	}

	// Commit the accumulated PV on whole-move boundaries only.
	if p.pvOn {
		i.pv.SetTrim(p.pv.String(), ' ')
	}
	return nil
}

// step consumes one token, mutating the record as a side effect. It
// reports done=true when the rest of the line must be ignored.
func (p *lineParser) step(token string) (bool, error) {
	switch p.ps {
	case stateInfo:
		if token != "info" {
			// Not an info line.
			return true, nil
		}
		p.ps = stateKey
		return false, nil

	case stateKey:
		return p.stepKey(token)

	case stateScore:
		switch token {
		case "cp":
			p.ps = stateScoreCp
		case "mate":
			p.ps = stateScoreMate
		case "upperbound":
			p.rec.Scoretype = ScoreTypeUpperbound
		case "lowerbound":
			p.rec.Scoretype = ScoreTypeLowerbound
		default:
			return false, &InvalidScoreError{Token: token}
		}
		return false, nil

	case stateUnknown:
		// Skip the value of the unrecognized key and hope it only had one.
		obslog.L().Warn("unknown info key", zap.String("token", token))
		p.ps = stateKey
		return false, nil

	default:
		return false, p.stepValue(token)
	}
}

func (p *lineParser) stepKey(token string) (bool, error) {
	switch token {
	case "string", "refutation", "currline":
		// Unsupported extensions: accept the line, contribute nothing more.
		return true, nil
	case "lowerbound":
		p.rec.Scoretype = ScoreTypeLowerbound
	case "upperbound":
		p.rec.Scoretype = ScoreTypeUpperbound
	case "depth":
		p.ps = stateDepth
	case "seldepth":
		p.ps = stateSeldepth
	case "time":
		p.ps = stateTime
	case "nodes":
		p.ps = stateNodes
	case "multipv":
		p.ps = stateMultipv
	case "score":
		p.ps = stateScore
		p.rec.Scoretype = ScoreTypeExact
	case "wdl":
		p.ps = stateWdlWin
	case "currmove":
		p.ps = stateCurrmove
	case "currmovenumber":
		p.ps = stateCurrmovenumber
	case "hashfull":
		p.ps = stateHashfull
	case "nps":
		p.ps = stateNps
	case "tbhits":
		p.ps = stateTbhits
	case "cpuload":
		p.ps = stateCpuload
	case "pv":
		p.ps = statePvBestmove
	default:
		if !p.allowUnknown {
			return false, &InvalidKeyError{Token: token}
		}
		p.ps = stateUnknown
	}
	return false, nil
}

// stepValue handles every state that consumes a field value.
func (p *lineParser) stepValue(token string) error {
	keepState := false

	switch p.ps {
	case stateDepth:
		v, err := parseUint(token)
		if err != nil {
			return &ParseNumberError{State: p.ps, Token: token}
		}
		p.rec.Depth = v
	case stateSeldepth:
		v, err := parseUint(token)
		if err != nil {
			return &ParseNumberError{State: p.ps, Token: token}
		}
		p.rec.Seldepth = v
	case stateTime:
		v, err := parseUint(token)
		if err != nil {
			return &ParseNumberError{State: p.ps, Token: token}
		}
		p.rec.Time = v
	case stateNodes:
		v, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return &ParseNumberError{State: p.ps, Token: token}
		}
		p.rec.Nodes = v
	case stateMultipv:
		v, err := parseUint(token)
		if err != nil {
			return &ParseNumberError{State: p.ps, Token: token}
		}
		p.rec.Multipv = v
	case stateWdlWin:
		v, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return &ParseNumberError{State: p.ps, Token: token}
		}
		p.rec.Wdl.Win = v
		p.ps = stateWdlDraw
		keepState = true
	case stateWdlDraw:
		v, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return &ParseNumberError{State: p.ps, Token: token}
		}
		p.rec.Wdl.Draw = v
		p.ps = stateWdlLoss
		keepState = true
	case stateWdlLoss:
		v, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return &ParseNumberError{State: p.ps, Token: token}
		}
		p.rec.Wdl.Loss = v
	case stateScoreCp, stateScoreMate:
		// Engines place the bound word before or after the number.
		switch token {
		case "upperbound":
			p.rec.Scoretype = ScoreTypeUpperbound
			keepState = true
		case "lowerbound":
			p.rec.Scoretype = ScoreTypeLowerbound
			keepState = true
		default:
			v, err := strconv.ParseInt(token, 10, 32)
			if err != nil {
				return &ParseNumberError{State: p.ps, Token: token}
			}
			if p.ps == stateScoreCp {
				p.rec.Score = Cp(int(v))
			} else {
				p.rec.Score = Mate(int(v))
			}
		}
	case stateCurrmove:
		p.rec.currmove.Set(token)
	case stateCurrmovenumber:
		v, err := parseUint(token)
		if err != nil {
			return &ParseNumberError{State: p.ps, Token: token}
		}
		p.rec.Currmovenumber = v
	case stateHashfull:
		v, err := parseUint(token)
		if err != nil {
			return &ParseNumberError{State: p.ps, Token: token}
		}
		p.rec.Hashfull = v
	case stateNps:
		v, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return &ParseNumberError{State: p.ps, Token: token}
		}
		p.rec.Nps = v
	case stateTbhits:
		v, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return &ParseNumberError{State: p.ps, Token: token}
		}
		p.rec.Tbhits = v
	case stateCpuload:
		v, err := parseUint(token)
		if err != nil {
			return &ParseNumberError{State: p.ps, Token: token}
		}
		p.rec.Cpuload = v
	case statePvBestmove:
		p.pv.WriteString(token)
		p.rec.bestmove = MoveTextFrom(token)
		p.rec.ponder.Reset()
		p.pvOn = true
		p.ps = statePvPonder
	case statePvPonder:
		p.pv.WriteByte(' ')
		p.pv.WriteString(token)
		p.rec.ponder = MoveTextFrom(token)
		p.ps = statePvRest
	case statePvRest:
		p.pv.WriteByte(' ')
		p.pv.WriteString(token)
	}

	// Once the pv key was seen the state never returns to Key; everything
	// else hands control back unless a chained state claimed it.
	if !p.pvOn && !keepState {
		p.ps = stateKey
	}
	return nil
}

func parseUint(token string) (int, error) {
	v, err := strconv.ParseUint(token, 10, 63)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func logParseError(err error) {
	obslog.L().Error("info parse error", zap.Error(err))
}
