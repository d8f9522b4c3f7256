package reefdx

import "encoding/hex"

// Status represents the status of a response packet.  The mapping from a
// status value to a typed error lives in a single place, OpsCore.decodeError,
// so that every status value resolves to exactly one outcome.
type Status uint16

const (
	// StatusSuccess indicates the operation completed successfully.
	StatusSuccess = Status(0x00)

	// StatusKeyNotFound occurs when an operation is performed on a key that does not exist.
	StatusKeyNotFound = Status(0x01)

	// StatusKeyExists occurs when an operation is performed on a key that already exists,
	// or when a CAS-guarded operation observes a different CAS.
	StatusKeyExists = Status(0x02)

	// StatusTooBig occurs when an operation attempts to store more data in a single
	// document than the server is willing to accept.
	StatusTooBig = Status(0x03)

	// StatusInvalidArgs occurs when the server receives invalid arguments for an operation.
	StatusInvalidArgs = Status(0x04)

	// StatusNotStored occurs when the server fails to store a key.
	StatusNotStored = Status(0x05)

	// StatusNotMyVBucket occurs when an operation is dispatched to a server which is
	// non-authoritative for a specific vbucket.
	StatusNotMyVBucket = Status(0x07)

	// StatusNoBucket occurs when no bucket was selected on a connection.
	StatusNoBucket = Status(0x08)

	// StatusLocked occurs when an operation fails due to the document being locked.
	StatusLocked = Status(0x09)

	// StatusAuthStale occurs when authentication credentials have become invalidated.
	StatusAuthStale = Status(0x1f)

	// StatusAuthError occurs when the authentication information provided was not valid.
	StatusAuthError = Status(0x20)

	// StatusAuthContinue occurs in multi-step authentication when more authentication
	// work needs to be performed in order to complete the authentication process.
	StatusAuthContinue = Status(0x21)

	// StatusAccessError occurs when the authenticated user lacks permission for
	// the requested operation.
	StatusAccessError = Status(0x24)

	// StatusUnknownCommand occurs when an unknown operation is sent to a server.
	StatusUnknownCommand = Status(0x81)

	// StatusOutOfMemory occurs when the server cannot service a request due to memory
	// limitations.
	StatusOutOfMemory = Status(0x82)

	// StatusNotSupported occurs when an operation is understood by the server, but that
	// operation is not supported on this server.
	StatusNotSupported = Status(0x83)

	// StatusInternalError occurs when internal errors prevent the server from processing
	// the request.
	StatusInternalError = Status(0x84)

	// StatusBusy occurs when the server is too busy to process the request right away.
	StatusBusy = Status(0x85)

	// StatusTmpFail occurs when a temporary failure is preventing the server from
	// processing the request.
	StatusTmpFail = Status(0x86)

	// StatusCollectionUnknown occurs when a collection cannot be found.
	StatusCollectionUnknown = Status(0x88)

	// StatusDurabilityInvalidLevel occurs when an invalid durability level was requested.
	StatusDurabilityInvalidLevel = Status(0xa0)

	// StatusDurabilityImpossible occurs when a request is performed with impossible
	// durability level requirements, such as replication to more replicas than the
	// bucket is configured with.
	StatusDurabilityImpossible = Status(0xa1)

	// StatusSyncWriteInProgress occurs when an attempt is made to write to a key that
	// has a durable write pending.
	StatusSyncWriteInProgress = Status(0xa2)

	// StatusSyncWriteAmbiguous occurs when a durable write does not complete in the
	// specified time and the result is ambiguous.
	StatusSyncWriteAmbiguous = Status(0xa3)

	// StatusSyncWriteReCommitInProgress occurs when a durable write is being recommitted.
	StatusSyncWriteReCommitInProgress = Status(0xa4)

	// StatusSubDocPathNotFound occurs when a sub-document operation targets a path
	// which does not exist in the specified document.
	StatusSubDocPathNotFound = Status(0xc0)

	// StatusSubDocPathMismatch occurs when a sub-document operation specifies a path
	// which does not match the document structure (field access on an array).
	StatusSubDocPathMismatch = Status(0xc1)

	// StatusSubDocPathInvalid occurs when a sub-document path could not be parsed.
	StatusSubDocPathInvalid = Status(0xc2)

	// StatusSubDocPathTooBig occurs when a sub-document path is too big.
	StatusSubDocPathTooBig = Status(0xc3)

	// StatusSubDocDocTooDeep occurs when an operation would cause a document to be
	// nested beyond the allowed depth limits.
	StatusSubDocDocTooDeep = Status(0xc4)

	// StatusSubDocCantInsert occurs when a sub-document operation could not insert.
	StatusSubDocCantInsert = Status(0xc5)

	// StatusSubDocNotJSON occurs when a sub-document operation is performed on a
	// document which is not JSON.
	StatusSubDocNotJSON = Status(0xc6)

	// StatusSubDocBadRange occurs when a sub-document operation is performed with
	// a bad range.
	StatusSubDocBadRange = Status(0xc7)

	// StatusSubDocBadDelta occurs when a sub-document counter operation is performed
	// and the specified delta is not valid.
	StatusSubDocBadDelta = Status(0xc8)

	// StatusSubDocPathExists occurs when a sub-document operation expects a path not
	// to exist, but the path was found in the document.
	StatusSubDocPathExists = Status(0xc9)

	// StatusSubDocValueTooDeep occurs when a sub-document operation specifies a value
	// which is deeper than the allowed depth limits.
	StatusSubDocValueTooDeep = Status(0xca)

	// StatusSubDocInvalidCombo occurs when a multi-command sub-document operation
	// contains commands which conflict with each other.
	StatusSubDocInvalidCombo = Status(0xcb)

	// StatusSubDocMultiPathFailure occurs when one or more commands within a
	// multi-command sub-document operation failed; the per-command results carry
	// the individual statuses.
	StatusSubDocMultiPathFailure = Status(0xcc)

	// StatusSubDocSuccessDeleted occurs when a sub-document operation succeeded
	// against a soft-deleted document.
	StatusSubDocSuccessDeleted = Status(0xcd)
)

// String returns the textual representation of this Status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusKeyNotFound:
		return "KeyNotFound"
	case StatusKeyExists:
		return "KeyExists"
	case StatusTooBig:
		return "TooBig"
	case StatusInvalidArgs:
		return "InvalidArgs"
	case StatusNotStored:
		return "NotStored"
	case StatusNotMyVBucket:
		return "NotMyVBucket"
	case StatusNoBucket:
		return "NoBucket"
	case StatusLocked:
		return "Locked"
	case StatusAuthStale:
		return "AuthStale"
	case StatusAuthError:
		return "AuthError"
	case StatusAuthContinue:
		return "AuthContinue"
	case StatusAccessError:
		return "AccessError"
	case StatusUnknownCommand:
		return "UnknownCommand"
	case StatusOutOfMemory:
		return "OutOfMemory"
	case StatusNotSupported:
		return "NotSupported"
	case StatusInternalError:
		return "InternalError"
	case StatusBusy:
		return "Busy"
	case StatusTmpFail:
		return "TmpFail"
	case StatusCollectionUnknown:
		return "CollectionUnknown"
	case StatusDurabilityInvalidLevel:
		return "DurabilityInvalidLevel"
	case StatusDurabilityImpossible:
		return "DurabilityImpossible"
	case StatusSyncWriteInProgress:
		return "SyncWriteInProgress"
	case StatusSyncWriteAmbiguous:
		return "SyncWriteAmbiguous"
	case StatusSyncWriteReCommitInProgress:
		return "SyncWriteReCommitInProgress"
	case StatusSubDocPathNotFound:
		return "SubDocPathNotFound"
	case StatusSubDocPathMismatch:
		return "SubDocPathMismatch"
	case StatusSubDocPathInvalid:
		return "SubDocPathInvalid"
	case StatusSubDocPathTooBig:
		return "SubDocPathTooBig"
	case StatusSubDocDocTooDeep:
		return "SubDocDocTooDeep"
	case StatusSubDocCantInsert:
		return "SubDocCantInsert"
	case StatusSubDocNotJSON:
		return "SubDocNotJSON"
	case StatusSubDocBadRange:
		return "SubDocBadRange"
	case StatusSubDocBadDelta:
		return "SubDocBadDelta"
	case StatusSubDocPathExists:
		return "SubDocPathExists"
	case StatusSubDocValueTooDeep:
		return "SubDocValueTooDeep"
	case StatusSubDocInvalidCombo:
		return "SubDocInvalidCombo"
	case StatusSubDocMultiPathFailure:
		return "SubDocMultiPathFailure"
	case StatusSubDocSuccessDeleted:
		return "SubDocSuccessDeleted"
	}
	return "x" + hex.EncodeToString([]byte{byte(s >> 8), byte(s)})
}
