package reefdx

import (
	"encoding/binary"
	"time"
)

// OpRequest is implemented by all request types so higher layers can name
// the operation in logs and telemetry.
type OpRequest interface {
	OpName() string
}

// MutationToken identifies a write's position in a partition's replication
// log.  It can be handed to subsequent operations for consistency checks.
type MutationToken struct {
	VbID   uint16
	VbUuid uint64
	SeqNo  uint64
}

// OpsCrud implements the document-level operations.  The two feature flags
// mirror what was negotiated during HELLO; encoding a request that requires
// a feature the connection lacks fails before any network I/O.
type OpsCrud struct {
	CollectionsEnabled bool
	ExtFramesEnabled   bool
}

func (o OpsCrud) decodeError(resp *Packet) error {
	return OpsCore{}.decodeError(resp)
}

func (o OpsCrud) encodeCollectionAndKey(collectionID uint32, key []byte, buf []byte) ([]byte, error) {
	if !o.CollectionsEnabled {
		if collectionID != 0 {
			return nil, ErrCollectionsNotEnabled
		}

		// intentionally copied to the buffer so that key does not escape
		buf = append(buf, key...)
		return buf, nil
	}

	return AppendCollectionIDAndKey(collectionID, key, buf)
}

// encodeReqAndExtFrames produces the magic and framing extras for a mutation
// carrying durability requirements.
func (o OpsCrud) encodeReqExtFrames(
	durabilityLevel DurabilityLevel,
	durabilityTimeout time.Duration,
	buf []byte,
) (Magic, []byte, error) {
	var err error

	if durabilityLevel > 0 {
		if !o.ExtFramesEnabled {
			return 0, nil, ErrDurabilityNotEnabled
		}

		duraFrameBody, err := EncodeDurabilityExtFrame(durabilityLevel, durabilityTimeout)
		if err != nil {
			return 0, nil, err
		}

		buf, err = AppendExtFrame(ExtFrameCodeDurability, duraFrameBody, buf)
		if err != nil {
			return 0, nil, err
		}
	}

	if err != nil {
		return 0, nil, err
	}

	if len(buf) > 0 {
		return MagicReqExt, buf, nil
	}

	return MagicReq, nil, nil
}

func (o OpsCrud) decodeMutationTokenExtras(resp *Packet, vbID uint16) (MutationToken, error) {
	if len(resp.Extras) == 0 {
		return MutationToken{}, nil
	}

	if len(resp.Extras) != 16 {
		return MutationToken{}, protocolError{"bad mutation token extras length"}
	}

	return MutationToken{
		VbID:   vbID,
		VbUuid: binary.BigEndian.Uint64(resp.Extras[0:]),
		SeqNo:  binary.BigEndian.Uint64(resp.Extras[8:]),
	}, nil
}

type GetRequest struct {
	CollectionID uint32
	Key          []byte
	VbucketID    uint16
}

func (r GetRequest) OpName() string { return OpCodeGet.String() }

type GetResponse struct {
	Cas      uint64
	Flags    uint32
	Value    []byte
	Datatype uint8
}

func (o OpsCrud) Get(d Dispatcher, req *GetRequest, cb func(*GetResponse, error)) (PendingOp, error) {
	reqKey, err := o.encodeCollectionAndKey(req.CollectionID, req.Key, nil)
	if err != nil {
		return nil, err
	}

	return d.Dispatch(&Packet{
		Magic:     MagicReq,
		OpCode:    OpCodeGet,
		Key:       reqKey,
		VbucketID: req.VbucketID,
	}, func(resp *Packet, err error) bool {
		if err != nil {
			cb(nil, err)
			return false
		}

		if resp.Status != StatusSuccess {
			cb(nil, o.decodeError(resp))
			return false
		}

		if len(resp.Extras) != 4 {
			cb(nil, protocolError{"bad extras length"})
			return false
		}

		cb(&GetResponse{
			Cas:      resp.Cas,
			Flags:    binary.BigEndian.Uint32(resp.Extras[0:]),
			Value:    resp.Value,
			Datatype: resp.Datatype,
		}, nil)
		return false
	})
}

type AddRequest struct {
	CollectionID uint32
	Key          []byte
	VbucketID    uint16
	Flags        uint32
	Value        []byte
	Datatype     uint8
	Expiry       uint32

	DurabilityLevel        DurabilityLevel
	DurabilityLevelTimeout time.Duration
}

func (r AddRequest) OpName() string { return OpCodeAdd.String() }

type AddResponse struct {
	Cas           uint64
	MutationToken MutationToken
}

func (o OpsCrud) Add(d Dispatcher, req *AddRequest, cb func(*AddResponse, error)) (PendingOp, error) {
	magic, extFramesBuf, err := o.encodeReqExtFrames(req.DurabilityLevel, req.DurabilityLevelTimeout, nil)
	if err != nil {
		return nil, err
	}

	reqKey, err := o.encodeCollectionAndKey(req.CollectionID, req.Key, nil)
	if err != nil {
		return nil, err
	}

	extrasBuf := make([]byte, 8)
	binary.BigEndian.PutUint32(extrasBuf[0:], req.Flags)
	binary.BigEndian.PutUint32(extrasBuf[4:], req.Expiry)

	return d.Dispatch(&Packet{
		Magic:         magic,
		OpCode:        OpCodeAdd,
		Key:           reqKey,
		VbucketID:     req.VbucketID,
		FramingExtras: extFramesBuf,
		Extras:        extrasBuf,
		Value:         req.Value,
		Datatype:      req.Datatype,
	}, func(resp *Packet, err error) bool {
		if err != nil {
			cb(nil, err)
			return false
		}

		if resp.Status != StatusSuccess {
			cb(nil, o.decodeError(resp))
			return false
		}

		mutToken, err := o.decodeMutationTokenExtras(resp, req.VbucketID)
		if err != nil {
			cb(nil, err)
			return false
		}

		cb(&AddResponse{
			Cas:           resp.Cas,
			MutationToken: mutToken,
		}, nil)
		return false
	})
}

type SetRequest struct {
	CollectionID uint32
	Key          []byte
	VbucketID    uint16
	Flags        uint32
	Value        []byte
	Datatype     uint8
	Expiry       uint32
	Cas          uint64

	DurabilityLevel        DurabilityLevel
	DurabilityLevelTimeout time.Duration
}

func (r SetRequest) OpName() string { return OpCodeSet.String() }

type SetResponse struct {
	Cas           uint64
	MutationToken MutationToken
}

func (o OpsCrud) Set(d Dispatcher, req *SetRequest, cb func(*SetResponse, error)) (PendingOp, error) {
	magic, extFramesBuf, err := o.encodeReqExtFrames(req.DurabilityLevel, req.DurabilityLevelTimeout, nil)
	if err != nil {
		return nil, err
	}

	reqKey, err := o.encodeCollectionAndKey(req.CollectionID, req.Key, nil)
	if err != nil {
		return nil, err
	}

	extrasBuf := make([]byte, 8)
	binary.BigEndian.PutUint32(extrasBuf[0:], req.Flags)
	binary.BigEndian.PutUint32(extrasBuf[4:], req.Expiry)

	return d.Dispatch(&Packet{
		Magic:         magic,
		OpCode:        OpCodeSet,
		Key:           reqKey,
		VbucketID:     req.VbucketID,
		FramingExtras: extFramesBuf,
		Extras:        extrasBuf,
		Value:         req.Value,
		Datatype:      req.Datatype,
		Cas:           req.Cas,
	}, func(resp *Packet, err error) bool {
		if err != nil {
			cb(nil, err)
			return false
		}

		if resp.Status == StatusKeyExists && req.Cas != 0 {
			// a CAS-guarded set reports a conflicting write as KeyExists
			cb(nil, &ServerError{
				Cause:  ErrCasMismatch,
				Status: resp.Status,
				OpCode: resp.OpCode,
			})
			return false
		}

		if resp.Status != StatusSuccess {
			cb(nil, o.decodeError(resp))
			return false
		}

		mutToken, err := o.decodeMutationTokenExtras(resp, req.VbucketID)
		if err != nil {
			cb(nil, err)
			return false
		}

		cb(&SetResponse{
			Cas:           resp.Cas,
			MutationToken: mutToken,
		}, nil)
		return false
	})
}

type DeleteRequest struct {
	CollectionID uint32
	Key          []byte
	VbucketID    uint16
	Cas          uint64

	DurabilityLevel        DurabilityLevel
	DurabilityLevelTimeout time.Duration
}

func (r DeleteRequest) OpName() string { return OpCodeDelete.String() }

type DeleteResponse struct {
	Cas           uint64
	MutationToken MutationToken
}

func (o OpsCrud) Delete(d Dispatcher, req *DeleteRequest, cb func(*DeleteResponse, error)) (PendingOp, error) {
	magic, extFramesBuf, err := o.encodeReqExtFrames(req.DurabilityLevel, req.DurabilityLevelTimeout, nil)
	if err != nil {
		return nil, err
	}

	reqKey, err := o.encodeCollectionAndKey(req.CollectionID, req.Key, nil)
	if err != nil {
		return nil, err
	}

	return d.Dispatch(&Packet{
		Magic:         magic,
		OpCode:        OpCodeDelete,
		Key:           reqKey,
		VbucketID:     req.VbucketID,
		FramingExtras: extFramesBuf,
		Cas:           req.Cas,
	}, func(resp *Packet, err error) bool {
		if err != nil {
			cb(nil, err)
			return false
		}

		if resp.Status == StatusKeyExists && req.Cas != 0 {
			cb(nil, &ServerError{
				Cause:  ErrCasMismatch,
				Status: resp.Status,
				OpCode: resp.OpCode,
			})
			return false
		}

		if resp.Status != StatusSuccess {
			cb(nil, o.decodeError(resp))
			return false
		}

		mutToken, err := o.decodeMutationTokenExtras(resp, req.VbucketID)
		if err != nil {
			cb(nil, err)
			return false
		}

		cb(&DeleteResponse{
			Cas:           resp.Cas,
			MutationToken: mutToken,
		}, nil)
		return false
	})
}

type LookupInRequest struct {
	CollectionID uint32
	Key          []byte
	VbucketID    uint16
	Flags        SubdocDocFlag
	Ops          []LookupInOp
}

func (r LookupInRequest) OpName() string { return OpCodeSubDocMultiLookup.String() }

type LookupInResponse struct {
	Cas uint64
	Ops []SubDocResult

	// DocIsDeleted indicates the lookup succeeded against a soft-deleted
	// document.
	DocIsDeleted bool
}

func (o OpsCrud) LookupIn(d Dispatcher, req *LookupInRequest, cb func(*LookupInResponse, error)) (PendingOp, error) {
	reqKey, err := o.encodeCollectionAndKey(req.CollectionID, req.Key, nil)
	if err != nil {
		return nil, err
	}

	valueBuf, err := encodeLookupInOps(req.Ops)
	if err != nil {
		return nil, err
	}

	var extrasBuf []byte
	if req.Flags != 0 {
		extrasBuf = []byte{uint8(req.Flags)}
	}

	numOps := len(req.Ops)

	return d.Dispatch(&Packet{
		Magic:     MagicReq,
		OpCode:    OpCodeSubDocMultiLookup,
		Key:       reqKey,
		VbucketID: req.VbucketID,
		Extras:    extrasBuf,
		Value:     valueBuf,
	}, func(resp *Packet, err error) bool {
		if err != nil {
			cb(nil, err)
			return false
		}

		docIsDeleted := false
		switch resp.Status {
		case StatusSuccess, StatusSubDocMultiPathFailure:
			// per-command statuses carry the individual outcomes
		case StatusSubDocSuccessDeleted:
			docIsDeleted = true
		default:
			cb(nil, o.decodeError(resp))
			return false
		}

		results, err := decodeLookupInResults(resp, numOps)
		if err != nil {
			cb(nil, err)
			return false
		}

		cb(&LookupInResponse{
			Cas:          resp.Cas,
			Ops:          results,
			DocIsDeleted: docIsDeleted,
		}, nil)
		return false
	})
}

type MutateInRequest struct {
	CollectionID uint32
	Key          []byte
	VbucketID    uint16
	Flags        SubdocDocFlag
	Ops          []MutateInOp
	Expiry       uint32
	Cas          uint64

	DurabilityLevel        DurabilityLevel
	DurabilityLevelTimeout time.Duration
}

func (r MutateInRequest) OpName() string { return OpCodeSubDocMultiMutation.String() }

type MutateInResponse struct {
	Cas           uint64
	MutationToken MutationToken
	Ops           []SubDocResult
}

func (o OpsCrud) MutateIn(d Dispatcher, req *MutateInRequest, cb func(*MutateInResponse, error)) (PendingOp, error) {
	magic, extFramesBuf, err := o.encodeReqExtFrames(req.DurabilityLevel, req.DurabilityLevelTimeout, nil)
	if err != nil {
		return nil, err
	}

	reqKey, err := o.encodeCollectionAndKey(req.CollectionID, req.Key, nil)
	if err != nil {
		return nil, err
	}

	valueBuf, err := encodeMutateInOps(req.Ops)
	if err != nil {
		return nil, err
	}

	var extrasBuf []byte
	if req.Expiry != 0 {
		extrasBuf = binary.BigEndian.AppendUint32(extrasBuf, req.Expiry)
	}
	if req.Flags != 0 {
		extrasBuf = append(extrasBuf, uint8(req.Flags))
	}

	numOps := len(req.Ops)

	return d.Dispatch(&Packet{
		Magic:         magic,
		OpCode:        OpCodeSubDocMultiMutation,
		Key:           reqKey,
		VbucketID:     req.VbucketID,
		FramingExtras: extFramesBuf,
		Extras:        extrasBuf,
		Value:         valueBuf,
		Cas:           req.Cas,
	}, func(resp *Packet, err error) bool {
		if err != nil {
			cb(nil, err)
			return false
		}

		if resp.Status == StatusKeyExists && req.Cas != 0 {
			cb(nil, &ServerError{
				Cause:  ErrCasMismatch,
				Status: resp.Status,
				OpCode: resp.OpCode,
			})
			return false
		}

		if resp.Status == StatusSubDocMultiPathFailure {
			results, err := decodeMutateInResults(resp, numOps)
			if err != nil {
				cb(nil, err)
				return false
			}

			for opIdx, result := range results {
				if result.Err != nil {
					cb(nil, &SubDocError{
						Cause:   result.Err,
						OpIndex: opIdx,
					})
					return false
				}
			}

			cb(nil, protocolError{"multi path failure with no failed op"})
			return false
		}

		if resp.Status != StatusSuccess {
			cb(nil, o.decodeError(resp))
			return false
		}

		results, err := decodeMutateInResults(resp, numOps)
		if err != nil {
			cb(nil, err)
			return false
		}

		mutToken, err := o.decodeMutationTokenExtras(resp, req.VbucketID)
		if err != nil {
			cb(nil, err)
			return false
		}

		cb(&MutateInResponse{
			Cas:           resp.Cas,
			MutationToken: mutToken,
			Ops:           results,
		}, nil)
		return false
	})
}
