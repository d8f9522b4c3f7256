package reefdx

import (
	"encoding/binary"
)

type ObserveSeqNoRequest struct {
	VbucketID   uint16
	VbucketUUID uint64
}

func (r ObserveSeqNoRequest) OpName() string { return OpCodeObserveSeqNo.String() }

type ObserveSeqNoResponse struct {
	VbucketUUID  uint64
	CurrentSeqNo uint64
	PersistSeqNo uint64

	// DidFailover is set when the partition has moved to a new history branch
	// since the observed mutation was made.  OldVbucketUUID and LastSeqNo then
	// describe the abandoned branch.
	DidFailover    bool
	OldVbucketUUID uint64
	LastSeqNo      uint64
}

// ObserveSeqNo reports the persistence and replication progress of a
// partition relative to a previously obtained mutation token.
func (o OpsCrud) ObserveSeqNo(d Dispatcher, req *ObserveSeqNoRequest, cb func(*ObserveSeqNoResponse, error)) (PendingOp, error) {
	valueBuf := binary.BigEndian.AppendUint64(nil, req.VbucketUUID)

	return d.Dispatch(&Packet{
		Magic:     MagicReq,
		OpCode:    OpCodeObserveSeqNo,
		VbucketID: req.VbucketID,
		Value:     valueBuf,
	}, func(resp *Packet, err error) bool {
		if err != nil {
			cb(nil, err)
			return false
		}

		if resp.Status != StatusSuccess {
			cb(nil, o.decodeError(resp))
			return false
		}

		if len(resp.Value) < 1 {
			cb(nil, protocolError{"empty observe seqno response"})
			return false
		}

		formatType := resp.Value[0]
		switch formatType {
		case 0:
			// no failover
			if len(resp.Value) != 27 {
				cb(nil, protocolError{"bad observe seqno response length"})
				return false
			}

			cb(&ObserveSeqNoResponse{
				VbucketUUID:  binary.BigEndian.Uint64(resp.Value[3:]),
				PersistSeqNo: binary.BigEndian.Uint64(resp.Value[11:]),
				CurrentSeqNo: binary.BigEndian.Uint64(resp.Value[19:]),
			}, nil)
			return false
		case 1:
			// partition failed over since the token was issued
			if len(resp.Value) != 43 {
				cb(nil, protocolError{"bad observe seqno response length"})
				return false
			}

			cb(&ObserveSeqNoResponse{
				VbucketUUID:    binary.BigEndian.Uint64(resp.Value[3:]),
				PersistSeqNo:   binary.BigEndian.Uint64(resp.Value[11:]),
				CurrentSeqNo:   binary.BigEndian.Uint64(resp.Value[19:]),
				DidFailover:    true,
				OldVbucketUUID: binary.BigEndian.Uint64(resp.Value[27:]),
				LastSeqNo:      binary.BigEndian.Uint64(resp.Value[35:]),
			}, nil)
			return false
		default:
			cb(nil, protocolError{"unknown observe seqno response format"})
			return false
		}
	})
}
