package lookup

import (
	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/haukened/os-dns/internal/dns/domain"
)

// State is the lifecycle of one lookup task. A task moves from Queued to
// Running once, then terminates in exactly one of Succeeded or Failed; no
// other transition exists and no intermediate state is observable.
type State int32

// Task lifecycle states
const (
	StateQueued State = iota
	StateRunning
	StateSucceeded
	StateFailed
)

// String returns the textual representation of the State.
func (s State) String() string {
	switch s {
	case StateQueued:
		return "queued"
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the single terminal value of a task: either an ordered
// result sequence or an error, never both.
type Outcome struct {
	Records domain.LookupResult
	Err     error
}

// Task is one scheduled lookup. The outcome channel is buffered, so the
// task completes and delivers even when the caller stops waiting.
type Task struct {
	id    uuid.UUID
	name  string
	class domain.QueryClass
	qtype domain.QueryType
	state atomic.Int32
	done  chan Outcome
}

func newTask(name string, qclass domain.QueryClass, qtype domain.QueryType) *Task {
	return &Task{
		id:    uuid.New(),
		name:  name,
		class: qclass,
		qtype: qtype,
		done:  make(chan Outcome, 1),
	}
}

// ID returns the task's correlation id, used in log fields.
func (t *Task) ID() uuid.UUID {
	return t.id
}

// State returns the task's current lifecycle state. It is safe to call
// from any goroutine.
func (t *Task) State() State {
	return State(t.state.Load())
}

// Done returns the channel on which the task's single outcome is
// delivered. The channel is closed after the outcome is sent.
func (t *Task) Done() <-chan Outcome {
	return t.done
}

// finish records the terminal state and delivers the outcome exactly
// once. The buffered channel makes the send non-blocking, so an
// abandoned task still runs to completion.
func (t *Task) finish(out Outcome) {
	if out.Err != nil {
		t.state.Store(int32(StateFailed))
	} else {
		t.state.Store(int32(StateSucceeded))
	}
	t.done <- out
	close(t.done)
}
