// internal/runner/runner.go
package runner

import (
	"context"
	"sync"

	"github.com/nhath/querypad/internal/db"
	"github.com/nhath/querypad/internal/history"
)

// State is the coordinator's lifecycle phase for the current buffer.
type State int

const (
	Idle State = iota
	Pending
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Executor is the external collaborator that actually runs SQL against a
// backend. All failure modes (syntax, connectivity, permissions) surface
// identically as an error with a message.
type Executor interface {
	Execute(ctx context.Context, connectionID, sql string) (*db.QueryResult, error)
}

// Runner coordinates one query execution at a time: validates, invokes the
// executor, tracks state, and pushes successful non-blank submissions into
// the recall ring. It performs no retries.
type Runner struct {
	mu   sync.Mutex
	exec Executor
	ring *history.Ring

	state  State
	result *db.QueryResult
	errMsg string
}

// New builds a runner around an executor and a recall ring.
func New(exec Executor, ring *history.Ring) *Runner {
	return &Runner{exec: exec, ring: ring}
}

// Run executes sql on the given connection. An empty connectionID is a
// validation error reported synchronously; the executor is never invoked.
// A Run while another is pending is rejected with ErrBusy rather than
// queued or cancelled.
func (r *Runner) Run(ctx context.Context, connectionID, sql string) (*db.QueryResult, error) {
	if connectionID == "" {
		return nil, ErrNoConnection
	}

	r.mu.Lock()
	if r.state == Pending {
		r.mu.Unlock()
		return nil, ErrBusy
	}
	r.state = Pending
	r.mu.Unlock()

	result, err := r.exec.Execute(ctx, connectionID, sql)

	r.mu.Lock()
	defer r.mu.Unlock()

	if err != nil {
		r.state = Failed
		r.result = nil
		r.errMsg = executionMessage(err)
		return nil, &ExecutionError{Message: r.errMsg, Underlying: err}
	}

	r.state = Succeeded
	r.result = result
	r.errMsg = ""
	r.ring.Submit(sql)
	return result, nil
}

// Reset returns the runner to Idle so the next Run starts clean. Called by
// the UI once a result or error has been displayed.
func (r *Runner) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != Pending {
		r.state = Idle
	}
}

// State returns the current lifecycle phase.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Result returns the result of the last successful run, nil otherwise. The
// result is replaced wholesale on each run, never mutated in place.
func (r *Runner) Result() *db.QueryResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.result
}

// ErrorMessage returns the user-facing message of the last failed run.
func (r *Runner) ErrorMessage() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errMsg
}
