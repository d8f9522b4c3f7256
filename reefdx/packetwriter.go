package reefdx

import (
	"encoding/binary"
	"io"
	"math"
)

const packetHeaderLen = 24

// PacketWriter encodes packets onto an io.Writer.  Encoding is deterministic
// given the packet fields and never blocks on anything but the final Write.
type PacketWriter struct {
	// heap-allocated scratch buffer, reused between packets since io.Write
	// causes the buffer to escape regardless.
	writeBuf []byte
}

func (pw *PacketWriter) WritePacket(w io.Writer, pak *Packet) error {
	extFramesLen := len(pak.FramingExtras)
	extrasLen := len(pak.Extras)
	keyLen := len(pak.Key)
	valueLen := len(pak.Value)
	payloadLen := extFramesLen + extrasLen + keyLen + valueLen
	totalLen := packetHeaderLen + payloadLen

	// headerBuf never escapes this function, so it stays on the stack.
	headerBuf := make([]byte, packetHeaderLen)

	headerBuf[0] = uint8(pak.Magic)
	headerBuf[1] = uint8(pak.OpCode)

	switch {
	case pak.Magic == MagicReq || pak.Magic == MagicRes:
		if extFramesLen > 0 {
			return protocolError{"cannot use framing extras with non-ext packets"}
		}
		if keyLen > math.MaxUint16 {
			return protocolError{"key too long to encode"}
		}

		binary.BigEndian.PutUint16(headerBuf[2:], uint16(keyLen))
	case pak.Magic == MagicReqExt || pak.Magic == MagicResExt:
		if extFramesLen > math.MaxUint8 {
			return protocolError{"framing extras too long to encode"}
		}
		if keyLen > math.MaxUint8 {
			return protocolError{"key too long to encode"}
		}

		headerBuf[2] = uint8(extFramesLen)
		headerBuf[3] = uint8(keyLen)
	default:
		return protocolError{"invalid magic for key length encoding"}
	}

	if extrasLen > math.MaxUint8 {
		return protocolError{"extras too long to encode"}
	}
	headerBuf[4] = uint8(extrasLen)

	headerBuf[5] = pak.Datatype

	if pak.Magic.IsRequest() {
		if pak.Status != 0 {
			return protocolError{"cannot specify status in a request packet"}
		}

		binary.BigEndian.PutUint16(headerBuf[6:], pak.VbucketID)
	} else {
		if pak.VbucketID != 0 {
			return protocolError{"cannot specify vbucket in a response packet"}
		}

		binary.BigEndian.PutUint16(headerBuf[6:], uint16(pak.Status))
	}

	if uint64(payloadLen) > math.MaxUint32 {
		return protocolError{"packet too long to encode"}
	}
	binary.BigEndian.PutUint32(headerBuf[8:], uint32(payloadLen))

	binary.BigEndian.PutUint32(headerBuf[12:], pak.Opaque)

	binary.BigEndian.PutUint64(headerBuf[16:], pak.Cas)

	// grow the write buffer in a single step rather than incrementally
	// through appends.
	if cap(pw.writeBuf) < totalLen {
		pw.writeBuf = make([]byte, 0, totalLen)
	}

	pw.writeBuf = pw.writeBuf[:0]
	pw.writeBuf = append(pw.writeBuf, headerBuf...)
	pw.writeBuf = append(pw.writeBuf, pak.FramingExtras...)
	pw.writeBuf = append(pw.writeBuf, pak.Extras...)
	pw.writeBuf = append(pw.writeBuf, pak.Key...)
	pw.writeBuf = append(pw.writeBuf, pak.Value...)

	// Write guarantees err != nil when n < len, so n can be ignored.
	_, err := w.Write(pw.writeBuf)
	if err != nil {
		return err
	}

	return nil
}
