package booking

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
)

// CommitError identifies the step at which a multi-step commit failed. The
// correlation id also lands on the booking row, so the reconcile sweep can
// find leftovers of a commit that died partway.
type CommitError struct {
	Step          string
	CorrelationID string
	Err           error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit failed at step %q (correlation_id=%s): %v", e.Step, e.CorrelationID, e.Err)
}

func (e *CommitError) Unwrap() error { return e.Err }
