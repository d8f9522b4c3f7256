package goreefcore

import (
	"errors"
	"time"

	"github.com/reefdb/goreefcore/reefdx"
)

type RetryManagerDefault struct {
	calc BackoffCalculator
}

func NewRetryManagerDefault() *RetryManagerDefault {
	return &RetryManagerDefault{
		calc: ExponentialBackoff(10*time.Millisecond, 500*time.Millisecond, 2),
	}
}

func (m *RetryManagerDefault) NewRetryController() RetryController {
	return &retryControllerDefault{
		parent: m,
	}
}

type retryControllerDefault struct {
	parent     *RetryManagerDefault
	retryCount uint32
}

func (rc *retryControllerDefault) isRetriableError(err error) bool {
	return errors.Is(err, reefdx.ErrTmpFail) ||
		errors.Is(err, reefdx.ErrBusy) ||
		errors.Is(err, reefdx.ErrSyncWriteInProgress) ||
		errors.Is(err, reefdx.ErrSyncWriteReCommitInProgress)
}

func (rc *retryControllerDefault) ShouldRetry(err error) (time.Duration, bool) {
	if !rc.isRetriableError(err) {
		return 0, false
	}

	calc := rc.parent.calc

	// calculate the retry time for this attempt
	retryTime := calc(rc.retryCount)

	// increment the retry count
	rc.retryCount++

	return retryTime, true
}
