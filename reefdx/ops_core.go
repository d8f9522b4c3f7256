package reefdx

import (
	"encoding/binary"
	"strings"
)

// OpsCore implements the connection-scoped operations used during bootstrap,
// along with the single, central mapping from response statuses to errors.
type OpsCore struct {
}

// decodeError is the one place a status becomes a typed error.  The mapping
// is total: statuses without a specific mapping fall through to
// ErrUnknownStatus so that no status is ever silently swallowed or crashes
// decode.
func (o OpsCore) decodeError(resp *Packet) error {
	var cause error
	switch resp.Status {
	case StatusKeyNotFound:
		cause = ErrDocNotFound
	case StatusKeyExists:
		cause = ErrDocExists
	case StatusTooBig:
		cause = ErrValueTooLarge
	case StatusLocked:
		cause = ErrDocLocked
	case StatusNotMyVBucket:
		cause = ErrNotMyVbucket
	case StatusNoBucket:
		cause = ErrNoBucketSelected
	case StatusAuthStale, StatusAuthError:
		cause = ErrAuthError
	case StatusAccessError:
		cause = ErrAccessError
	case StatusTmpFail, StatusOutOfMemory:
		cause = ErrTmpFail
	case StatusBusy:
		cause = ErrBusy
	case StatusCollectionUnknown:
		cause = ErrUnknownCollectionID
	case StatusDurabilityInvalidLevel:
		cause = ErrDurabilityInvalidLevel
	case StatusDurabilityImpossible:
		cause = ErrDurabilityImpossible
	case StatusSyncWriteInProgress:
		cause = ErrSyncWriteInProgress
	case StatusSyncWriteAmbiguous:
		cause = ErrSyncWriteAmbiguous
	case StatusSyncWriteReCommitInProgress:
		cause = ErrSyncWriteReCommitInProgress
	case StatusSubDocPathNotFound:
		cause = ErrSubDocPathNotFound
	case StatusSubDocPathMismatch:
		cause = ErrSubDocPathMismatch
	case StatusSubDocPathInvalid:
		cause = ErrSubDocPathInvalid
	case StatusSubDocPathTooBig:
		cause = ErrSubDocPathTooBig
	case StatusSubDocDocTooDeep:
		cause = ErrSubDocDocTooDeep
	case StatusSubDocCantInsert:
		cause = ErrSubDocCantInsert
	case StatusSubDocNotJSON:
		cause = ErrSubDocNotJSON
	case StatusSubDocBadRange:
		cause = ErrSubDocBadRange
	case StatusSubDocBadDelta:
		cause = ErrSubDocBadDelta
	case StatusSubDocPathExists:
		cause = ErrSubDocPathExists
	case StatusSubDocValueTooDeep:
		cause = ErrSubDocValueTooDeep
	case StatusSubDocInvalidCombo:
		cause = ErrSubDocInvalidCombo
	case StatusSubDocMultiPathFailure:
		cause = ErrSubDocMultiPathFailure
	default:
		cause = ErrUnknownStatus
	}

	return &ServerError{
		Cause:  cause,
		Status: resp.Status,
		OpCode: resp.OpCode,
	}
}

type HelloRequest struct {
	ClientName        []byte
	RequestedFeatures []HelloFeature
}

func (r HelloRequest) OpName() string { return OpCodeHello.String() }

type HelloResponse struct {
	EnabledFeatures []HelloFeature
}

func (o OpsCore) Hello(d Dispatcher, req *HelloRequest, cb func(*HelloResponse, error)) (PendingOp, error) {
	featureBytes := make([]byte, len(req.RequestedFeatures)*2)
	for featIdx, featCode := range req.RequestedFeatures {
		binary.BigEndian.PutUint16(featureBytes[featIdx*2:], uint16(featCode))
	}

	return d.Dispatch(&Packet{
		Magic:  MagicReq,
		OpCode: OpCodeHello,
		Key:    req.ClientName,
		Value:  featureBytes,
	}, func(resp *Packet, err error) bool {
		if err != nil {
			cb(nil, err)
			return false
		}

		if resp.Status != StatusSuccess {
			cb(nil, o.decodeError(resp))
			return false
		}

		if len(resp.Value)%2 != 0 {
			cb(nil, protocolError{"invalid hello features length"})
			return false
		}

		numFeats := len(resp.Value) / 2
		features := make([]HelloFeature, numFeats)
		for featIdx := range features {
			features[featIdx] = HelloFeature(binary.BigEndian.Uint16(resp.Value[featIdx*2:]))
		}

		cb(&HelloResponse{
			EnabledFeatures: features,
		}, nil)
		return false
	})
}

type SASLListMechsRequest struct {
}

func (r SASLListMechsRequest) OpName() string { return OpCodeSASLListMechs.String() }

type SASLListMechsResponse struct {
	AvailableMechs []string
}

func (o OpsCore) SASLListMechs(d Dispatcher, req *SASLListMechsRequest, cb func(*SASLListMechsResponse, error)) (PendingOp, error) {
	return d.Dispatch(&Packet{
		Magic:  MagicReq,
		OpCode: OpCodeSASLListMechs,
	}, func(resp *Packet, err error) bool {
		if err != nil {
			cb(nil, err)
			return false
		}

		if resp.Status != StatusSuccess {
			cb(nil, o.decodeError(resp))
			return false
		}

		cb(&SASLListMechsResponse{
			AvailableMechs: strings.Split(string(resp.Value), " "),
		}, nil)
		return false
	})
}

type SASLAuthRequest struct {
	Mechanism string
	Payload   []byte
}

func (r SASLAuthRequest) OpName() string { return OpCodeSASLAuth.String() }

type SASLAuthResponse struct {
	NeedsMoreSteps bool
	Payload        []byte
}

func (o OpsCore) SASLAuth(d Dispatcher, req *SASLAuthRequest, cb func(*SASLAuthResponse, error)) (PendingOp, error) {
	return d.Dispatch(&Packet{
		Magic:  MagicReq,
		OpCode: OpCodeSASLAuth,
		Key:    []byte(req.Mechanism),
		Value:  req.Payload,
	}, func(resp *Packet, err error) bool {
		if err != nil {
			cb(nil, err)
			return false
		}

		if resp.Status == StatusAuthContinue {
			cb(&SASLAuthResponse{
				NeedsMoreSteps: true,
				Payload:        resp.Value,
			}, nil)
			return false
		}

		if resp.Status != StatusSuccess {
			cb(nil, o.decodeError(resp))
			return false
		}

		cb(&SASLAuthResponse{
			NeedsMoreSteps: false,
			Payload:        resp.Value,
		}, nil)
		return false
	})
}

type SASLStepRequest struct {
	Mechanism string
	Payload   []byte
}

func (r SASLStepRequest) OpName() string { return OpCodeSASLStep.String() }

type SASLStepResponse struct {
	NeedsMoreSteps bool
	Payload        []byte
}

func (o OpsCore) SASLStep(d Dispatcher, req *SASLStepRequest, cb func(*SASLStepResponse, error)) (PendingOp, error) {
	return d.Dispatch(&Packet{
		Magic:  MagicReq,
		OpCode: OpCodeSASLStep,
		Key:    []byte(req.Mechanism),
		Value:  req.Payload,
	}, func(resp *Packet, err error) bool {
		if err != nil {
			cb(nil, err)
			return false
		}

		if resp.Status == StatusAuthContinue {
			cb(&SASLStepResponse{
				NeedsMoreSteps: true,
				Payload:        resp.Value,
			}, nil)
			return false
		}

		if resp.Status != StatusSuccess {
			cb(nil, o.decodeError(resp))
			return false
		}

		cb(&SASLStepResponse{
			NeedsMoreSteps: false,
			Payload:        resp.Value,
		}, nil)
		return false
	})
}

type SelectBucketRequest struct {
	BucketName string
}

func (r SelectBucketRequest) OpName() string { return OpCodeSelectBucket.String() }

func (o OpsCore) SelectBucket(d Dispatcher, req *SelectBucketRequest, cb func(error)) (PendingOp, error) {
	return d.Dispatch(&Packet{
		Magic:  MagicReq,
		OpCode: OpCodeSelectBucket,
		Key:    []byte(req.BucketName),
	}, func(resp *Packet, err error) bool {
		if err != nil {
			cb(err)
			return false
		}

		if resp.Status == StatusAccessError || resp.Status == StatusKeyNotFound {
			cb(ErrUnknownBucketName)
			return false
		}

		if resp.Status != StatusSuccess {
			cb(o.decodeError(resp))
			return false
		}

		cb(nil)
		return false
	})
}
