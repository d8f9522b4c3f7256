package reefdx

type pendingOpNoop struct {
}

func (p pendingOpNoop) Cancel(err error) bool {
	// there is nothing to cancel, so report that the cancellation failed and
	// let the caller wait for the callback which is already on its way.
	return false
}
