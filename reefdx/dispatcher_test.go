package reefdx

import "time"

// testOpDispatcher records every dispatched packet and replies to each one
// synchronously through the Respond function.  A nil Respond leaves the
// operation pending forever.
type testOpDispatcher struct {
	Packets []*Packet
	Respond func(pak *Packet) (*Packet, error)
}

func (d *testOpDispatcher) Dispatch(pak *Packet, cb DispatchCallback) (PendingOp, error) {
	d.Packets = append(d.Packets, pak)

	if d.Respond != nil {
		resp, err := d.Respond(pak)
		cb(resp, err)
	}

	return pendingOpNoop{}, nil
}

func (d *testOpDispatcher) DispatchWithDeadline(pak *Packet, deadline time.Time, cb DispatchCallback) (PendingOp, error) {
	return d.Dispatch(pak, cb)
}
