package reefdx

// Packet represents a single frame of the reefd binary protocol.  The same
// structure is used for both requests and responses, distinguished by the
// magic.  The payload sections reference the underlying buffers directly and
// must be treated as immutable once the packet has been handed to a writer.
type Packet struct {
	Magic         Magic
	OpCode        OpCode
	Datatype      uint8
	VbucketID     uint16 // Only valid for Req-type packets
	Status        Status // Only valid for Res-type packets
	Opaque        uint32
	Cas           uint64
	Extras        []byte
	Key           []byte
	Value         []byte
	FramingExtras []byte // Only valid for Ext-type packets
}
