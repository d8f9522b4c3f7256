package reefdx

import (
	"encoding/binary"
)

// SubDocResult encapsulates the result of a single sub-document command
// within a multi-command operation.  Result i always corresponds to command
// i of the request; ordering is the positional contract of the protocol.
type SubDocResult struct {
	Err   error
	Value []byte
}

// LookupInOp defines a per-command structure to be passed to LookupIn
// for performing many sub-document lookups in one operation.
type LookupInOp struct {
	Op    LookupInOpType
	Flags SubdocOpFlag
	Path  []byte
}

// MutateInOp defines a per-command structure to be passed to MutateIn
// for performing many sub-document mutations in one operation.
type MutateInOp struct {
	Op    MutateInOpType
	Flags SubdocOpFlag
	Path  []byte
	Value []byte
}

// SubdocOpFlag specifies flags for a sub-document command.
type SubdocOpFlag uint8

const (
	// SubdocOpFlagNone indicates no special treatment for this command.
	SubdocOpFlagNone = SubdocOpFlag(0x00)

	// SubdocOpFlagMkDirP indicates that the path should be created if it does
	// not already exist.
	SubdocOpFlagMkDirP = SubdocOpFlag(0x01)

	// SubdocOpFlagXattrPath indicates that the path refers to an xattr rather
	// than the document body.
	SubdocOpFlagXattrPath = SubdocOpFlag(0x04)

	// SubdocOpFlagExpandMacros indicates that the value portion of a mutation
	// should have macros such as ${Mutation.CAS} expanded by the server.
	SubdocOpFlagExpandMacros = SubdocOpFlag(0x10)
)

// LookupInOpType specifies the type of a lookup command.
type LookupInOpType uint8

const (
	// LookupInOpTypeGet indicates the command is a sub-document `Get`.
	LookupInOpTypeGet = LookupInOpType(OpCodeSubDocGet)

	// LookupInOpTypeExists indicates the command is a sub-document `Exists`.
	LookupInOpTypeExists = LookupInOpType(OpCodeSubDocExists)

	// LookupInOpTypeGetCount indicates the command is a sub-document `GetCount`.
	LookupInOpTypeGetCount = LookupInOpType(OpCodeSubDocGetCount)
)

// MutateInOpType specifies the type of a mutation command.
type MutateInOpType uint8

const (
	// MutateInOpTypeDictAdd indicates the command is a sub-document `Add`.
	MutateInOpTypeDictAdd = MutateInOpType(OpCodeSubDocDictAdd)

	// MutateInOpTypeDictSet indicates the command is a sub-document `Set`.
	MutateInOpTypeDictSet = MutateInOpType(OpCodeSubDocDictSet)

	// MutateInOpTypeDelete indicates the command is a sub-document `Remove`.
	MutateInOpTypeDelete = MutateInOpType(OpCodeSubDocDelete)

	// MutateInOpTypeReplace indicates the command is a sub-document `Replace`.
	MutateInOpTypeReplace = MutateInOpType(OpCodeSubDocReplace)

	// MutateInOpTypeArrayPushLast indicates the command is a sub-document `ArrayPushLast`.
	MutateInOpTypeArrayPushLast = MutateInOpType(OpCodeSubDocArrayPushLast)

	// MutateInOpTypeArrayPushFirst indicates the command is a sub-document `ArrayPushFirst`.
	MutateInOpTypeArrayPushFirst = MutateInOpType(OpCodeSubDocArrayPushFirst)

	// MutateInOpTypeArrayInsert indicates the command is a sub-document `ArrayInsert`.
	MutateInOpTypeArrayInsert = MutateInOpType(OpCodeSubDocArrayInsert)

	// MutateInOpTypeArrayAddUnique indicates the command is a sub-document `ArrayAddUnique`.
	MutateInOpTypeArrayAddUnique = MutateInOpType(OpCodeSubDocArrayAddUnique)

	// MutateInOpTypeCounter indicates the command is a sub-document `Counter`.
	MutateInOpTypeCounter = MutateInOpType(OpCodeSubDocCounter)
)

// SubdocDocFlag specifies document-level flags for a sub-document operation.
type SubdocDocFlag uint8

const (
	// SubdocDocFlagNone indicates no special treatment for this operation.
	SubdocDocFlagNone = SubdocDocFlag(0x00)

	// SubdocDocFlagMkDoc indicates that the document should be created if it
	// does not already exist.
	SubdocDocFlagMkDoc = SubdocDocFlag(0x01)

	// SubdocDocFlagAddDoc indicates that this operation should be an add
	// rather than set.
	SubdocDocFlagAddDoc = SubdocDocFlag(0x02)
)

func encodeLookupInOps(ops []LookupInOp) ([]byte, error) {
	var valueBuf []byte
	for _, op := range ops {
		if len(op.Path) > 65535 {
			return nil, protocolError{"subdoc path too long to encode"}
		}

		valueBuf = append(valueBuf, uint8(op.Op), uint8(op.Flags))
		valueBuf = binary.BigEndian.AppendUint16(valueBuf, uint16(len(op.Path)))
		valueBuf = append(valueBuf, op.Path...)
	}

	return valueBuf, nil
}

func encodeMutateInOps(ops []MutateInOp) ([]byte, error) {
	var valueBuf []byte
	for _, op := range ops {
		if len(op.Path) > 65535 {
			return nil, protocolError{"subdoc path too long to encode"}
		}

		valueBuf = append(valueBuf, uint8(op.Op), uint8(op.Flags))
		valueBuf = binary.BigEndian.AppendUint16(valueBuf, uint16(len(op.Path)))
		valueBuf = binary.BigEndian.AppendUint32(valueBuf, uint32(len(op.Value)))
		valueBuf = append(valueBuf, op.Path...)
		valueBuf = append(valueBuf, op.Value...)
	}

	return valueBuf, nil
}

// decodeLookupInResults decodes the per-command results of a multi-lookup
// response.  The results appear on the wire in request order, so result i is
// paired with command i positionally.
func decodeLookupInResults(resp *Packet, numOps int) ([]SubDocResult, error) {
	results := make([]SubDocResult, numOps)
	respIter := 0
	for opIdx := 0; opIdx < numOps; opIdx++ {
		if len(resp.Value) < respIter+6 {
			return nil, protocolError{"truncated subdoc lookup response"}
		}

		resStatus := Status(binary.BigEndian.Uint16(resp.Value[respIter:]))
		resValueLen := int(binary.BigEndian.Uint32(resp.Value[respIter+2:]))

		if len(resp.Value) < respIter+6+resValueLen {
			return nil, protocolError{"truncated subdoc lookup response value"}
		}

		var resErr error
		if resStatus != StatusSuccess {
			resErr = OpsCore{}.decodeError(&Packet{
				Status: resStatus,
				OpCode: resp.OpCode,
			})
		}

		results[opIdx] = SubDocResult{
			Err:   resErr,
			Value: resp.Value[respIter+6 : respIter+6+resValueLen],
		}
		respIter += 6 + resValueLen
	}

	return results, nil
}

// decodeMutateInResults decodes the per-command results of a multi-mutation
// response.  Each wire result carries the index of the command it belongs
// to; only commands that produce a value (such as counters) appear on
// success, so the returned slice is always sized to the request and indexed
// positionally.
func decodeMutateInResults(resp *Packet, numOps int) ([]SubDocResult, error) {
	results := make([]SubDocResult, numOps)
	respIter := 0
	for respIter < len(resp.Value) {
		if len(resp.Value) < respIter+3 {
			return nil, protocolError{"truncated subdoc mutation response"}
		}

		opIndex := int(resp.Value[respIter])
		resStatus := Status(binary.BigEndian.Uint16(resp.Value[respIter+1:]))

		if opIndex >= numOps {
			return nil, protocolError{"subdoc mutation response index out of bounds"}
		}

		if resStatus == StatusSuccess {
			if len(resp.Value) < respIter+7 {
				return nil, protocolError{"truncated subdoc mutation response value"}
			}

			resValueLen := int(binary.BigEndian.Uint32(resp.Value[respIter+3:]))
			if len(resp.Value) < respIter+7+resValueLen {
				return nil, protocolError{"truncated subdoc mutation response value"}
			}

			results[opIndex] = SubDocResult{
				Value: resp.Value[respIter+7 : respIter+7+resValueLen],
			}
			respIter += 7 + resValueLen
		} else {
			results[opIndex] = SubDocResult{
				Err: OpsCore{}.decodeError(&Packet{
					Status: resStatus,
					OpCode: resp.OpCode,
				}),
			}
			respIter += 3
		}
	}

	return results, nil
}
