package reefdx

import (
	"errors"
	"fmt"
)

var (
	// ErrDocNotFound occurs when an operation targets a document which does not exist.
	ErrDocNotFound = errors.New("document not found")

	// ErrDocExists occurs when an insert targets a document which already exists.
	ErrDocExists = errors.New("document exists")

	// ErrCasMismatch occurs when a CAS-guarded mutation observes a different CAS.
	ErrCasMismatch = errors.New("cas mismatch")

	// ErrDocLocked occurs when a mutation targets a locked document.
	ErrDocLocked = errors.New("document locked")

	// ErrValueTooLarge occurs when a mutation carries a value larger than the
	// server is willing to store.
	ErrValueTooLarge = errors.New("value too large")

	// ErrTmpFail occurs when the server is temporarily unable to service the request.
	ErrTmpFail = errors.New("temporary failure")

	// ErrBusy occurs when the server is too busy to service the request.
	ErrBusy = errors.New("server busy")

	// ErrAuthError occurs when the handshake credentials were rejected.
	ErrAuthError = errors.New("auth error")

	// ErrAccessError occurs when the authenticated user lacks permissions.
	ErrAccessError = errors.New("access error")

	// ErrNoBucketSelected occurs when an operation is performed before a bucket
	// has been selected on the connection.
	ErrNoBucketSelected = errors.New("no bucket selected")

	// ErrNotMyVbucket occurs when the target node is not authoritative for the
	// requested partition.
	ErrNotMyVbucket = errors.New("not my vbucket")

	// ErrUnknownBucketName occurs when a select-bucket names an unknown bucket.
	ErrUnknownBucketName = errors.New("unknown bucket name")

	// ErrUnknownCollectionID occurs when an operation names an unknown collection id.
	ErrUnknownCollectionID = errors.New("unknown collection id")

	// ErrCollectionsNotEnabled occurs when a collection id is specified but the
	// connection did not negotiate collections support.
	ErrCollectionsNotEnabled = errors.New("collections not enabled")

	// ErrDurabilityNotEnabled occurs when a durability level is requested but the
	// connection did not negotiate synchronous replication support.
	ErrDurabilityNotEnabled = errors.New("sync replication not enabled")

	// ErrDurabilityInvalidLevel occurs when an invalid durability level was requested.
	ErrDurabilityInvalidLevel = errors.New("invalid durability level")

	// ErrDurabilityImpossible occurs when the requested durability level can never
	// be satisfied by the current bucket topology.
	ErrDurabilityImpossible = errors.New("durability impossible")

	// ErrSyncWriteInProgress occurs when another durable write is pending on the key.
	ErrSyncWriteInProgress = errors.New("sync write in progress")

	// ErrSyncWriteAmbiguous occurs when a durable write timed out server-side and
	// its outcome is unknown.
	ErrSyncWriteAmbiguous = errors.New("sync write ambiguous")

	// ErrSyncWriteReCommitInProgress occurs when a durable write is being recommitted.
	ErrSyncWriteReCommitInProgress = errors.New("sync write recommit in progress")

	// ErrUnknownStatus is the catch-all for status codes this library has no
	// mapping for; the wrapping ServerError carries the raw status.
	ErrUnknownStatus = errors.New("unknown status")

	// ErrSubDocPathNotFound occurs when a sub-document path does not exist.
	ErrSubDocPathNotFound = errors.New("subdoc path not found")

	// ErrSubDocPathMismatch occurs when a sub-document path does not match the
	// document structure.
	ErrSubDocPathMismatch = errors.New("subdoc path mismatch")

	// ErrSubDocPathInvalid occurs when a sub-document path could not be parsed.
	ErrSubDocPathInvalid = errors.New("subdoc path invalid")

	// ErrSubDocPathTooBig occurs when a sub-document path is too big.
	ErrSubDocPathTooBig = errors.New("subdoc path too big")

	// ErrSubDocDocTooDeep occurs when the document is nested beyond depth limits.
	ErrSubDocDocTooDeep = errors.New("subdoc document too deep")

	// ErrSubDocCantInsert occurs when a sub-document value could not be inserted.
	ErrSubDocCantInsert = errors.New("subdoc cant insert")

	// ErrSubDocNotJSON occurs when the target document is not JSON.
	ErrSubDocNotJSON = errors.New("subdoc document not json")

	// ErrSubDocBadRange occurs when a sub-document value is outside the valid range.
	ErrSubDocBadRange = errors.New("subdoc bad range")

	// ErrSubDocBadDelta occurs when a sub-document counter delta is invalid.
	ErrSubDocBadDelta = errors.New("subdoc bad delta")

	// ErrSubDocPathExists occurs when a sub-document path unexpectedly exists.
	ErrSubDocPathExists = errors.New("subdoc path exists")

	// ErrSubDocValueTooDeep occurs when a sub-document value is nested too deeply.
	ErrSubDocValueTooDeep = errors.New("subdoc value too deep")

	// ErrSubDocInvalidCombo occurs when a multi-command operation contains
	// conflicting commands.
	ErrSubDocInvalidCombo = errors.New("subdoc invalid combo")

	// ErrSubDocMultiPathFailure occurs when one or more commands of a
	// multi-command operation failed; inspect the per-command results.
	ErrSubDocMultiPathFailure = errors.New("subdoc multi path failure")
)

var (
	// ErrDispatch occurs when a packet could not be written to the network; the
	// operation was definitely not sent.
	ErrDispatch = errors.New("dispatch error")

	// ErrClosedInFlight occurs when the channel closed while the operation was
	// still awaiting its response.
	ErrClosedInFlight = errors.New("connection closed in flight")

	// ErrRequestCancelled occurs when an in-flight operation was cancelled
	// before its response arrived.
	ErrRequestCancelled = errors.New("request cancelled")

	// ErrProtocol is the base error for protocol-level framing failures.  These
	// are fatal to the channel they occur on.
	ErrProtocol = errors.New("protocol error")
)

type protocolError struct {
	message string
}

func (e protocolError) Error() string {
	return "protocol error: " + e.message
}

func (e protocolError) Unwrap() error {
	return ErrProtocol
}

type requestCancelledError struct {
	cause error
}

func (e requestCancelledError) Error() string {
	return fmt.Sprintf("request cancelled: %s", e.cause)
}

func (e requestCancelledError) Unwrap() error {
	return e.cause
}

func (e requestCancelledError) Is(err error) bool {
	return err == ErrRequestCancelled
}

type dispatchError struct {
	cause error
}

func (e dispatchError) Error() string {
	return fmt.Sprintf("dispatch error: %s", e.cause)
}

func (e dispatchError) Unwrap() error {
	return e.cause
}

func (e dispatchError) Is(err error) bool {
	return err == ErrDispatch
}

// SubDocError indicates which command of a multi-command sub-document
// operation failed, and how.
type SubDocError struct {
	Cause   error
	OpIndex int
}

func (e SubDocError) Error() string {
	return fmt.Sprintf("subdoc operation error: %s (index: %d)", e.Cause, e.OpIndex)
}

func (e SubDocError) Unwrap() error {
	return e.Cause
}

// ServerError wraps one of the typed protocol errors together with the raw
// status that produced it and the opcode it occurred on.
type ServerError struct {
	Cause  error
	Status Status
	OpCode OpCode
}

func (e ServerError) Error() string {
	return fmt.Sprintf("server error: %s (status: %s, op: %s)", e.Cause, e.Status, e.OpCode)
}

func (e ServerError) Unwrap() error {
	return e.Cause
}
