package goreefcore

import (
	"context"
	"errors"
	"fmt"

	"github.com/reefdb/goreefcore/reefdx"
)

var (
	ErrDocumentNotFound      = reefdx.ErrDocNotFound
	ErrDocumentExists        = reefdx.ErrDocExists
	ErrCasMismatch           = reefdx.ErrCasMismatch
	ErrDocumentLocked        = reefdx.ErrDocLocked
	ErrValueTooLarge         = reefdx.ErrValueTooLarge
	ErrTemporaryFailure      = reefdx.ErrTmpFail
	ErrAuthenticationFailure = reefdx.ErrAuthError
)

var (
	// ErrInvalidArgument occurs when an operation is rejected before any I/O
	// because its arguments can never be valid.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCircuitBreakerOpen occurs when an operation is fast-failed because the
	// endpoint's circuit breaker is open.
	ErrCircuitBreakerOpen = errors.New("circuit breaker open")

	// ErrEndpointClosed occurs when an operation is attempted against an
	// endpoint that has been shut down.
	ErrEndpointClosed = errors.New("endpoint closed")

	// ErrDurabilityTimeout occurs when observe polling could not confirm the
	// requested durability before the deadline.  The mutation itself was
	// acknowledged and may still reach the requirement later.
	ErrDurabilityTimeout = errors.New("durability timeout")

	// ErrDurabilityAmbiguous occurs when the durability outcome of an
	// acknowledged mutation cannot be determined, such as after a partition
	// failover invalidates the mutation token.
	ErrDurabilityAmbiguous = errors.New("durability ambiguous")
)

type invalidArgumentError struct {
	Message string
}

func (e invalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Message)
}

func (e invalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

type illegalStateError struct {
	Message string
}

func (e illegalStateError) Error() string {
	return fmt.Sprintf("illegal state: %s", e.Message)
}

type contextualDeadline struct {
	Message string
}

func (e contextualDeadline) Error() string {
	return e.Message
}

func (e contextualDeadline) Unwrap() error {
	return context.DeadlineExceeded
}

type retrierDeadlineError struct {
	Cause      error
	RetryCause error
}

func (e retrierDeadlineError) Error() string {
	if e.RetryCause != nil {
		return fmt.Sprintf("timed out during retrying: %s (retry cause: %s)", e.Cause, e.RetryCause)
	}
	return fmt.Sprintf("timed out during retrying: %s", e.Cause)
}

func (e retrierDeadlineError) Unwrap() error {
	return e.Cause
}

// KvClientDispatchError wraps a failure to put a request on the wire; the
// operation was definitely not executed.
type KvClientDispatchError struct {
	Cause error
}

func (e KvClientDispatchError) Error() string {
	return fmt.Sprintf("dispatch error: %s", e.Cause)
}

func (e KvClientDispatchError) Unwrap() error {
	return e.Cause
}

// KvBucketError annotates an operation failure with the bucket it occurred
// against.
type KvBucketError struct {
	Cause      error
	BucketName string
}

func (e KvBucketError) Error() string {
	return fmt.Sprintf("%s (bucket: %s)", e.Cause, e.BucketName)
}

func (e KvBucketError) Unwrap() error {
	return e.Cause
}

// DurabilityError carries the context of a failed or ambiguous durability
// wait.
type DurabilityError struct {
	Cause        error
	VbucketID    uint16
	PersistSeqNo uint64
	TargetSeqNo  uint64
}

func (e DurabilityError) Error() string {
	return fmt.Sprintf("%s (vb: %d, persisted: %d, required: %d)",
		e.Cause, e.VbucketID, e.PersistSeqNo, e.TargetSeqNo)
}

func (e DurabilityError) Unwrap() error {
	return e.Cause
}
