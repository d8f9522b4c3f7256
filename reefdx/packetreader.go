package reefdx

import (
	"encoding/binary"
	"io"
)

// PacketReader decodes packets from an io.Reader.  A short read from the
// underlying transport surfaces as the reader's io error ("need more bytes"
// on a streaming transport); a header whose declared section lengths do not
// fit the declared body length is a protocol violation and fatal to the
// channel.
type PacketReader struct {
	// heap-allocated header buffer, reused between packets since io.Read
	// causes the buffer to escape.  the payload is allocated per packet as it
	// always escapes through the *Packet anyways.
	readHeaderBuf []byte
}

func (pr *PacketReader) ReadPacket(r io.Reader, pak *Packet) error {
	if len(pr.readHeaderBuf) != packetHeaderLen {
		pr.readHeaderBuf = make([]byte, packetHeaderLen)
	}
	headerBuf := pr.readHeaderBuf

	_, err := io.ReadFull(r, headerBuf)
	if err != nil {
		return err
	}

	pak.Magic = Magic(headerBuf[0])
	pak.OpCode = OpCode(headerBuf[1])

	var extFramesLen int
	var keyLen int
	switch {
	case pak.Magic == MagicReq || pak.Magic == MagicRes:
		extFramesLen = 0
		keyLen = int(binary.BigEndian.Uint16(headerBuf[2:]))
	case pak.Magic == MagicReqExt || pak.Magic == MagicResExt:
		extFramesLen = int(headerBuf[2])
		keyLen = int(headerBuf[3])
	default:
		return protocolError{"invalid magic for key length decoding"}
	}

	extrasLen := int(headerBuf[4])

	pak.Datatype = headerBuf[5]

	if pak.Magic.IsRequest() {
		pak.VbucketID = binary.BigEndian.Uint16(headerBuf[6:])
		pak.Status = 0
	} else {
		pak.VbucketID = 0
		pak.Status = Status(binary.BigEndian.Uint16(headerBuf[6:]))
	}

	payloadLen := int(binary.BigEndian.Uint32(headerBuf[8:]))

	pak.Opaque = binary.BigEndian.Uint32(headerBuf[12:])

	pak.Cas = binary.BigEndian.Uint64(headerBuf[16:])

	valueLen := payloadLen - extFramesLen - extrasLen - keyLen
	if valueLen < 0 {
		return protocolError{"packet sections exceed declared body length"}
	}

	// the payload goes into a freshly allocated buffer since it escapes to
	// the heap through the Packet in all cases.
	payloadBuf := make([]byte, payloadLen)
	_, err = io.ReadFull(r, payloadBuf)
	if err != nil {
		return err
	}

	payloadPos := 0

	pak.FramingExtras = payloadBuf[payloadPos : payloadPos+extFramesLen]
	payloadPos += extFramesLen

	pak.Extras = payloadBuf[payloadPos : payloadPos+extrasLen]
	payloadPos += extrasLen

	pak.Key = payloadBuf[payloadPos : payloadPos+keyLen]
	payloadPos += keyLen

	pak.Value = payloadBuf[payloadPos : payloadPos+valueLen]

	return nil
}
