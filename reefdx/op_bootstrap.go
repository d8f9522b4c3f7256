package reefdx

import (
	"errors"
	"sync"
)

type OpBootstrapEncoder interface {
	Hello(Dispatcher, *HelloRequest, func(*HelloResponse, error)) (PendingOp, error)
	SASLAuth(Dispatcher, *SASLAuthRequest, func(*SASLAuthResponse, error)) (PendingOp, error)
	SelectBucket(Dispatcher, *SelectBucketRequest, func(error)) (PendingOp, error)
}

var _ OpBootstrapEncoder = (*OpsCore)(nil)

// OpBootstrap pipelines the standard bootstrap operations a channel performs
// before it accepts application requests: feature negotiation, PLAIN
// authentication and bucket selection.  All stages are dispatched up front;
// the server processes them in order even with unordered execution enabled.
// Authentication or selection failure fails the whole bootstrap, the channel
// never ends up partially authenticated.
type OpBootstrap struct {
	Encoder OpBootstrapEncoder
}

type BootstrapOptions struct {
	Hello        *HelloRequest
	Auth         *SaslAuthPlainOptions
	SelectBucket *SelectBucketRequest
}

type SaslAuthPlainOptions struct {
	Username string
	Password string
}

type BootstrapResult struct {
	Hello *HelloResponse
}

func (a OpBootstrap) Bootstrap(d Dispatcher, opts *BootstrapOptions, cb func(res *BootstrapResult, err error)) (PendingOp, error) {
	const (
		stageHello        = 0
		stageAuth         = 1
		stageSelectBucket = 2
		stageCallback     = 3
	)

	// stage callbacks can fire from the reader, the timeout sweep, or a
	// cancellation, so the stage counter and result are guarded.
	var lock sync.Mutex
	currentStage := stageHello
	result := &BootstrapResult{}

	maybeCallback := func() {
		if currentStage == stageHello && opts.Hello == nil {
			currentStage = stageAuth
		}
		if currentStage == stageAuth && opts.Auth == nil {
			currentStage = stageSelectBucket
		}
		if currentStage == stageSelectBucket && opts.SelectBucket == nil {
			currentStage = stageCallback
		}

		if currentStage == stageCallback {
			cb(result, nil)
		}
	}

	pendingOp := &multiPendingOp{}

	dispatchHello := func() error {
		if opts.Hello == nil {
			return nil
		}

		op, err := a.Encoder.Hello(d, opts.Hello, func(resp *HelloResponse, err error) {
			lock.Lock()
			defer lock.Unlock()

			if currentStage != stageHello {
				return
			}

			if err != nil {
				if a.isRequestCancelledError(err) {
					currentStage = stageCallback
					cb(nil, err)
					return
				}
				// a hello failure does not fail bootstrap, the result simply
				// carries no negotiated features.
				resp = nil
			}

			result.Hello = resp
			currentStage = stageAuth
			maybeCallback()
		})
		if err != nil {
			return err
		}
		pendingOp.Add(op)

		return nil
	}

	dispatchAuth := func() error {
		if opts.Auth == nil {
			return nil
		}

		op, err := OpSaslAuthPlain{
			Username: opts.Auth.Username,
			Password: opts.Auth.Password,
		}.Authenticate(a.Encoder, d, func(err error) {
			lock.Lock()
			defer lock.Unlock()

			if currentStage != stageAuth {
				return
			}

			if err != nil {
				currentStage = stageCallback
				cb(nil, err)
				return
			}

			currentStage = stageSelectBucket
			maybeCallback()
		})
		if err != nil {
			return err
		}
		pendingOp.Add(op)

		return nil
	}

	dispatchSelectBucket := func() error {
		if opts.SelectBucket == nil {
			return nil
		}

		op, err := a.Encoder.SelectBucket(d, opts.SelectBucket, func(err error) {
			lock.Lock()
			defer lock.Unlock()

			if currentStage != stageSelectBucket {
				return
			}

			if err != nil {
				currentStage = stageCallback
				cb(nil, err)
				return
			}

			currentStage = stageCallback
			maybeCallback()
		})
		if err != nil {
			return err
		}
		pendingOp.Add(op)

		return nil
	}

	// maybeCallback runs before any dispatches so an all-nil options object
	// resolves immediately without racing the reader goroutine.
	lock.Lock()
	maybeCallback()
	lock.Unlock()

	if err := dispatchHello(); err != nil {
		return nil, err
	}
	if err := dispatchAuth(); err != nil {
		pendingOp.Cancel(err)
		return nil, err
	}
	if err := dispatchSelectBucket(); err != nil {
		pendingOp.Cancel(err)
		return nil, err
	}

	return pendingOp, nil
}

func (a OpBootstrap) isRequestCancelledError(err error) bool {
	var cancelErr requestCancelledError
	return errors.As(err, &cancelErr)
}
