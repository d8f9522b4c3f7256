package reefdx

import (
	"errors"
	"sync"
)

type multiPendingOp struct {
	lock      sync.Mutex
	ops       []PendingOp
	cancelErr error
}

func (op *multiPendingOp) Cancel(err error) bool {
	if err == nil {
		err = errors.New("unspecified cancellation error")
	}

	op.lock.Lock()
	op.cancelErr = err

	// ops cannot be added once cancelErr is set, so the existing list can be
	// referenced outside the lock for cancelling.
	ops := op.ops

	op.lock.Unlock()

	anyCancelled := false
	for _, o := range ops {
		if o.Cancel(err) {
			anyCancelled = true
		}
	}

	return anyCancelled
}

func (op *multiPendingOp) Add(opToAdd PendingOp) {
	op.lock.Lock()
	cancelErr := op.cancelErr
	if cancelErr != nil {
		op.lock.Unlock()
		opToAdd.Cancel(cancelErr)
		return
	}

	op.ops = append(op.ops, opToAdd)
	op.lock.Unlock()
}
