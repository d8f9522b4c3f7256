package reefdx

import (
	"time"
)

// ExtFrameCode identifies a flexible framing extras frame.
type ExtFrameCode uint16

const (
	// ExtFrameCodeDurability carries the durability requirements of a mutation.
	ExtFrameCodeDurability = ExtFrameCode(1)
)

// AppendExtFrame appends one framing extras frame to buf.  Codes and lengths
// up to 14 pack into a single header byte; larger values spill into an
// extension byte each.
func AppendExtFrame(frameCode ExtFrameCode, frameBody []byte, buf []byte) ([]byte, error) {
	frameLen := len(frameBody)

	buf = append(buf, 0)
	hdrBytePtr := &buf[len(buf)-1]

	if frameCode < 15 {
		*hdrBytePtr = *hdrBytePtr | (byte(frameCode&0xF) << 4)
	} else {
		if frameCode-15 >= 15 {
			return nil, protocolError{"extframe code too large to encode"}
		}

		*hdrBytePtr = *hdrBytePtr | 0xF0
		buf = append(buf, byte(frameCode-15))
	}

	if frameLen < 15 {
		*hdrBytePtr = *hdrBytePtr | byte(frameLen&0xF)
	} else {
		if frameLen-15 >= 15 {
			return nil, protocolError{"extframe len too large to encode"}
		}

		*hdrBytePtr = *hdrBytePtr | 0x0F
		buf = append(buf, byte(frameLen-15))
	}

	if len(frameBody) > 0 {
		buf = append(buf, frameBody...)
	}

	return buf, nil
}

// DecodeExtFrame decodes a single frame from the front of buf, returning the
// code, the body and the number of bytes consumed.
func DecodeExtFrame(buf []byte) (ExtFrameCode, []byte, int, error) {
	if len(buf) < 1 {
		return 0, nil, 0, protocolError{"framing extras protocol error"}
	}

	bufPos := 0

	frameHeader := buf[bufPos]
	frameCode := ExtFrameCode((frameHeader & 0xF0) >> 4)
	frameLen := uint(frameHeader & 0x0F)
	bufPos++

	if frameCode == 15 {
		if len(buf) < bufPos+1 {
			return 0, nil, 0, protocolError{"unexpected eof"}
		}

		frameCodeExt := buf[bufPos]
		frameCode = ExtFrameCode(15 + frameCodeExt)
		bufPos++
	}

	if frameLen == 15 {
		if len(buf) < bufPos+1 {
			return 0, nil, 0, protocolError{"unexpected eof"}
		}

		frameLenExt := buf[bufPos]
		frameLen = uint(15 + frameLenExt)
		bufPos++
	}

	intFrameLen := int(frameLen)
	if len(buf) < bufPos+intFrameLen {
		return 0, nil, 0, protocolError{"unexpected eof"}
	}

	frameBody := buf[bufPos : bufPos+intFrameLen]
	bufPos += intFrameLen

	return frameCode, frameBody, bufPos, nil
}

// IterExtFrames invokes cb for every frame in buf.
func IterExtFrames(buf []byte, cb func(ExtFrameCode, []byte)) error {
	for len(buf) > 0 {
		frameCode, frameBody, n, err := DecodeExtFrame(buf)
		if err != nil {
			return err
		}

		cb(frameCode, frameBody)

		buf = buf[n:]
	}

	return nil
}

// EncodeDurabilityExtFrame encodes a durability requirement frame body.
func EncodeDurabilityExtFrame(
	level DurabilityLevel,
	timeout time.Duration,
) ([]byte, error) {
	if level == 0 {
		return nil, protocolError{"cannot encode durability without a level"}
	}

	if timeout == 0 {
		return []byte{byte(level)}, nil
	}

	timeoutMillis := uint64(timeout / time.Millisecond)
	if timeoutMillis > 65535 {
		return nil, protocolError{"cannot encode durability timeout greater than 65535 milliseconds"}
	} else if timeoutMillis == 0 {
		timeoutMillis = 1
	}

	return []byte{
		byte(level),
		byte(timeoutMillis >> 8),
		byte(timeoutMillis),
	}, nil
}

// DecodeDurabilityExtFrame decodes a durability requirement frame body.
func DecodeDurabilityExtFrame(
	buf []byte,
) (DurabilityLevel, time.Duration, error) {
	if len(buf) == 1 {
		durabilityLevel := DurabilityLevel(buf[0])
		return durabilityLevel, 0, nil
	} else if len(buf) == 3 {
		durabilityLevel := DurabilityLevel(buf[0])
		timeoutMillis := uint64(buf[1])<<8 | uint64(buf[2])
		timeout := time.Duration(timeoutMillis) * time.Millisecond
		return durabilityLevel, timeout, nil
	}

	return 0, 0, protocolError{"invalid durability extframe length"}
}
