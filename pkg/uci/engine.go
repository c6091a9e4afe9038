// Package uci drives a UCI chess engine subprocess: it issues protocol
// commands over the engine's stdin and turns the engine's streamed output
// into a synchronous request/response contract for search requests.
//
// The protocol itself is strictly request/response, and so is the driver:
// a single logical caller owns one Engine and never issues a second Go
// before the first returned. Nothing enforces this with a lock; it is a
// usage contract.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/marcusbuffett/uciengine/internal/obslog"
)

const bestmovePrefix = "bestmove"

// GoResult carries the outcome of one search. Empty fields mean the
// engine reported no such move.
type GoResult struct {
	Bestmove string
	Ponder   string
}

// Engine owns one engine subprocess, its stdin pipe, and the hand-off
// channel fed by the background output reader.
type Engine struct {
	path        string
	cmd         *exec.Cmd
	stdin       io.WriteCloser
	rx          chan string
	logger      *zap.Logger
	lineHandler func(string)
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithLogger overrides the global logger for this engine.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithLineHandler installs a callback receiving every output line that is
// not a bestmove, typically to feed an analysis.Info parser. The handler
// runs on the reader goroutine and must not block.
func WithLineHandler(h func(line string)) Option {
	return func(e *Engine) { e.lineHandler = h }
}

// NewEngine spawns the engine binary at path with piped stdin/stdout and
// starts the exit supervisor and the output reader. The two run for the
// engine's lifetime and are never joined.
func NewEngine(path string, opts ...Option) (*Engine, error) {
	cmd := exec.Command(path)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("create stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		stdin.Close()
		return nil, fmt.Errorf("create stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		stdout.Close()
		return nil, fmt.Errorf("spawn uci engine %s: %w", path, err)
	}

	e := &Engine{
		path:   path,
		cmd:    cmd,
		stdin:  stdin,
		rx:     make(chan string, 1),
		logger: obslog.L(),
	}
	for _, opt := range opts {
		opt(e)
	}

	go e.superviseExit()
	go e.readStdout(bufio.NewScanner(stdout))

	e.logger.Info("spawned uci engine", zap.String("path", path))
	return e, nil
}

// superviseExit waits for the subprocess and logs its status. It never
// restarts the process.
func (e *Engine) superviseExit() {
	state, err := e.cmd.Process.Wait()
	if err != nil {
		e.logger.Warn("uci engine wait", zap.String("path", e.path), zap.Error(err))
		return
	}
	e.logger.Debug("uci engine exit", zap.String("path", e.path), zap.String("status", state.String()))
}

// readStdout drains engine output for the engine's lifetime, forwarding
// bestmove lines to the hand-off channel and logging everything else. The
// channel closes when the stream ends; an engine that dies silently
// leaves later Go calls blocking, which is surfaced here as a log line
// only.
func (e *Engine) readStdout(sc *bufio.Scanner) {
	defer close(e.rx)
	for sc.Scan() {
		line := sc.Text()
		if len(line) >= len(bestmovePrefix) && line[:len(bestmovePrefix)] == bestmovePrefix {
			e.rx <- line
			continue
		}
		e.logger.Info("uci engine out", zap.String("line", line))
		if e.lineHandler != nil {
			e.lineHandler(line)
		}
	}
	if err := sc.Err(); err != nil {
		e.logger.Warn("uci engine reader ended", zap.String("path", e.path), zap.Error(err))
	}
}

// IssueCommand writes one protocol line plus a trailing newline to the
// engine's stdin.
func (e *Engine) IssueCommand(command string) error {
	e.logger.Info("issuing uci command", zap.String("command", command))
	if _, err := io.WriteString(e.stdin, command+"\n"); err != nil {
		return fmt.Errorf("issue uci command %q: %w", command, err)
	}
	return nil
}

// Go issues the job's setoption pairs, its position command and the go
// command, then blocks until the engine reports a bestmove.
//
// There is no timeout and no cancellation: if the engine never answers,
// Go blocks forever. If the output stream ended before a bestmove
// arrived, both result fields come back empty with a nil error.
func (e *Engine) Go(job *GoJob) (GoResult, error) {
	for _, opt := range job.uciOptions {
		cmd := fmt.Sprintf("setoption name %s value %s", opt.key, opt.value)
		if err := e.IssueCommand(cmd); err != nil {
			return GoResult{}, err
		}
	}

	if posCmd, ok := job.positionCommand(); ok {
		if err := e.IssueCommand(posCmd); err != nil {
			return GoResult{}, err
		}
	}

	if err := e.IssueCommand(job.goCommand()); err != nil {
		return GoResult{}, err
	}

	line, ok := <-e.rx
	if !ok {
		// Reader gone before any bestmove; report an empty result.
		return GoResult{}, nil
	}

	parts := strings.Split(line, " ")
	var res GoResult
	if len(parts) > 1 {
		res.Bestmove = parts[1]
	}
	if len(parts) > 3 {
		res.Ponder = parts[3]
	}
	return res, nil
}

// Close drops the engine's stdin pipe, signalling end-of-stream to the
// subprocess. No quit command is sent; a well-behaved engine exits on
// its own.
func (e *Engine) Close() error {
	return e.stdin.Close()
}
