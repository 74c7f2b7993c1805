// Package algebra: pedagogical step recording.
// A Recorder is an optional side channel owned by the caller; operations
// append human-readable milestones to it and never consult it to make
// decisions.

package algebra

import (
	"time"

	"github.com/rs/zerolog"
)

// Stage classifies a step within an operation's lifecycle.
type Stage string

const (
	// StageStart opens an operation.
	StageStart Stage = "start"

	// StageStep is an intermediate milestone.
	StageStep Stage = "step"

	// StageEnd closes an operation.
	StageEnd Stage = "end"

	// StageError records a failure just before the trace closes.
	StageError Stage = "error"
)

// Step is one recorded milestone. State is a small string snapshot; there
// is no rigid schema beyond Op and Stage always being present.
type Step struct {
	Op    string
	Stage Stage
	Msg   string
	State map[string]string
	At    time.Time
}

// Recorder receives operation milestones. Implementations must be cheap;
// operations call them inline.
type Recorder interface {
	// Begin opens a named operation. An already-open operation is closed
	// implicitly first.
	Begin(op string)

	// Record appends an intermediate step with an optional state snapshot.
	Record(msg string, state map[string]string)

	// Fail appends an error-stage step with the failure message.
	Fail(msg string)

	// End closes the current operation, noting success or failure.
	End(ok bool)

	// Steps returns a copy of the collected history; sinks that only
	// stream may return nil.
	Steps() []Step
}

// Trace is the slice-backed Recorder: an append-only in-memory history.
// Not safe for concurrent use; a Trace belongs to a single operation call
// chain.
type Trace struct {
	op    string
	open  bool
	steps []Step
}

// NewTrace returns an empty Trace.
func NewTrace() *Trace {
	return &Trace{}
}

// Begin implements Recorder.
func (t *Trace) Begin(op string) {
	if t.open {
		t.append(StageEnd, "implicit close", nil)
	}
	t.op = op
	t.open = true
	t.append(StageStart, "begin", nil)
}

// Record implements Recorder.
func (t *Trace) Record(msg string, state map[string]string) {
	if !t.open {
		t.open = true
		t.append(StageStart, "implicit begin", nil)
	}
	t.append(StageStep, msg, state)
}

// Fail implements Recorder.
func (t *Trace) Fail(msg string) {
	t.append(StageError, msg, nil)
}

// End implements Recorder.
func (t *Trace) End(ok bool) {
	if !t.open {
		return
	}
	t.append(StageEnd, "end", map[string]string{"ok": boolString(ok)})
	t.open = false
	t.op = ""
}

// Steps implements Recorder, returning a copy of the history.
func (t *Trace) Steps() []Step {
	out := make([]Step, len(t.steps))
	copy(out, t.steps)

	return out
}

// Len reports the number of recorded steps.
func (t *Trace) Len() int { return len(t.steps) }

func (t *Trace) append(stage Stage, msg string, state map[string]string) {
	t.steps = append(t.steps, Step{
		Op:    t.op,
		Stage: stage,
		Msg:   msg,
		State: state,
		At:    time.Now().UTC(),
	})
}

// LogSink streams steps through a zerolog logger instead of collecting
// them. Useful for CLIs and servers that want live traces.
type LogSink struct {
	log zerolog.Logger
	op  string
}

// NewLogSink returns a Recorder writing structured events to log.
func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

// Begin implements Recorder.
func (s *LogSink) Begin(op string) {
	s.op = op
	s.log.Info().Str("op", op).Str("stage", string(StageStart)).Msg("begin")
}

// Record implements Recorder.
func (s *LogSink) Record(msg string, state map[string]string) {
	ev := s.log.Info().Str("op", s.op).Str("stage", string(StageStep))
	for k, v := range state {
		ev = ev.Str(k, v)
	}
	ev.Msg(msg)
}

// Fail implements Recorder.
func (s *LogSink) Fail(msg string) {
	s.log.Error().Str("op", s.op).Str("stage", string(StageError)).Msg(msg)
}

// End implements Recorder.
func (s *LogSink) End(ok bool) {
	s.log.Info().Str("op", s.op).Str("stage", string(StageEnd)).Bool("ok", ok).Msg("end")
}

// Steps implements Recorder; LogSink keeps no history.
func (s *LogSink) Steps() []Step { return nil }

func boolString(b bool) string {
	if b {
		return "true"
	}

	return "false"
}

// recorder wraps an optional Recorder so call sites never nil-check.
type recorder struct {
	r Recorder
}

func (w recorder) begin(op string) {
	if w.r != nil {
		w.r.Begin(op)
	}
}

func (w recorder) step(msg string, state map[string]string) {
	if w.r != nil {
		w.r.Record(msg, state)
	}
}

func (w recorder) fail(msg string) {
	if w.r != nil {
		w.r.Fail(msg)
	}
}

func (w recorder) end(ok bool) {
	if w.r != nil {
		w.r.End(ok)
	}
}

func (w recorder) steps() []Step {
	if w.r == nil {
		return nil
	}

	return w.r.Steps()
}
