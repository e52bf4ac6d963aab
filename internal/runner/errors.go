// internal/runner/errors.go
package runner

import "errors"

// genericFailure is shown when the executor reports a failure without a
// usable message.
const genericFailure = "query execution failed"

// ErrNoConnection is the validation error for running a query with no
// connection selected. It is reported to the user directly and never
// reaches the executor.
var ErrNoConnection = errors.New("no connection selected")

// ErrBusy rejects a Run while a previous one is still pending.
var ErrBusy = errors.New("a query is already running")

// ExecutionError wraps an executor-reported failure. Message is passed
// through verbatim when available.
type ExecutionError struct {
	Message    string
	Underlying error
}

func (e *ExecutionError) Error() string { return e.Message }

func (e *ExecutionError) Unwrap() error { return e.Underlying }

func executionMessage(err error) string {
	if err == nil || err.Error() == "" {
		return genericFailure
	}
	return err.Error()
}
