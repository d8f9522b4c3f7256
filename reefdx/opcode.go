package reefdx

import "encoding/hex"

// OpCode represents the specific command the packet is performing.
type OpCode uint8

// These constants provide predefined values for all the operations
// which are supported by this library.
const (
	OpCodeGet                  = OpCode(0x00)
	OpCodeSet                  = OpCode(0x01)
	OpCodeAdd                  = OpCode(0x02)
	OpCodeReplace              = OpCode(0x03)
	OpCodeDelete               = OpCode(0x04)
	OpCodeNoop                 = OpCode(0x0a)
	OpCodeHello                = OpCode(0x1f)
	OpCodeSASLListMechs        = OpCode(0x20)
	OpCodeSASLAuth             = OpCode(0x21)
	OpCodeSASLStep             = OpCode(0x22)
	OpCodeSelectBucket         = OpCode(0x89)
	OpCodeObserveSeqNo         = OpCode(0x91)
	OpCodeSubDocGet            = OpCode(0xc5)
	OpCodeSubDocExists         = OpCode(0xc6)
	OpCodeSubDocDictAdd        = OpCode(0xc7)
	OpCodeSubDocDictSet        = OpCode(0xc8)
	OpCodeSubDocDelete         = OpCode(0xc9)
	OpCodeSubDocReplace        = OpCode(0xca)
	OpCodeSubDocArrayPushLast  = OpCode(0xcb)
	OpCodeSubDocArrayPushFirst = OpCode(0xcc)
	OpCodeSubDocArrayInsert    = OpCode(0xcd)
	OpCodeSubDocArrayAddUnique = OpCode(0xce)
	OpCodeSubDocCounter        = OpCode(0xcf)
	OpCodeSubDocMultiLookup    = OpCode(0xd0)
	OpCodeSubDocMultiMutation  = OpCode(0xd1)
	OpCodeSubDocGetCount       = OpCode(0xd2)
)

// String returns the string representation of the OpCode.
func (command OpCode) String() string {
	switch command {
	case OpCodeGet:
		return "GET"
	case OpCodeSet:
		return "SET"
	case OpCodeAdd:
		return "ADD"
	case OpCodeReplace:
		return "REPLACE"
	case OpCodeDelete:
		return "DELETE"
	case OpCodeNoop:
		return "NOOP"
	case OpCodeHello:
		return "HELLO"
	case OpCodeSASLListMechs:
		return "SASLLISTMECHS"
	case OpCodeSASLAuth:
		return "SASLAUTH"
	case OpCodeSASLStep:
		return "SASLSTEP"
	case OpCodeSelectBucket:
		return "SELECTBUCKET"
	case OpCodeObserveSeqNo:
		return "OBSERVESEQNO"
	case OpCodeSubDocGet:
		return "SUBDOCGET"
	case OpCodeSubDocExists:
		return "SUBDOCEXISTS"
	case OpCodeSubDocDictAdd:
		return "SUBDOCDICTADD"
	case OpCodeSubDocDictSet:
		return "SUBDOCDICTSET"
	case OpCodeSubDocDelete:
		return "SUBDOCDELETE"
	case OpCodeSubDocReplace:
		return "SUBDOCREPLACE"
	case OpCodeSubDocArrayPushLast:
		return "SUBDOCARRAYPUSHLAST"
	case OpCodeSubDocArrayPushFirst:
		return "SUBDOCARRAYPUSHFIRST"
	case OpCodeSubDocArrayInsert:
		return "SUBDOCARRAYINSERT"
	case OpCodeSubDocArrayAddUnique:
		return "SUBDOCARRAYADDUNIQUE"
	case OpCodeSubDocCounter:
		return "SUBDOCCOUNTER"
	case OpCodeSubDocMultiLookup:
		return "SUBDOCMULTILOOKUP"
	case OpCodeSubDocMultiMutation:
		return "SUBDOCMULTIMUTATION"
	case OpCodeSubDocGetCount:
		return "SUBDOCGETCOUNT"
	}
	return "x" + hex.EncodeToString([]byte{byte(command)})
}
