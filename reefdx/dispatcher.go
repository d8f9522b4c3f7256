package reefdx

import "time"

// PendingOp represents an operation that has been dispatched and may still be
// in flight.  Cancel resolves the operation's callback with the provided
// error if, and only if, no other terminal event got there first.
type PendingOp interface {
	Cancel(err error) bool
}

// DispatchCallback is invoked with the response packet for a dispatched
// request, or with an error if the request terminated without one.  Exactly
// one of pak/err is set.  The return value indicates whether further packets
// are expected for the same opaque.
type DispatchCallback func(pak *Packet, err error) bool

// Dispatcher is the minimal interface the operation encoders require to put
// a packet on the wire and receive its correlated responses.
type Dispatcher interface {
	Dispatch(pak *Packet, handler DispatchCallback) (PendingOp, error)
	DispatchWithDeadline(pak *Packet, deadline time.Time, handler DispatchCallback) (PendingOp, error)
}
