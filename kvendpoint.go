package goreefcore

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/reefdb/goreefcore/reefdx"
)

var (
	ErrEndpointStillConnecting = contextualDeadline{"still waiting for the endpoint connection"}
)

type NewKvClientFunc func(context.Context, *KvClientConfig, *KvClientOptions) (KvClient, error)

// KvEndpoint owns the single connection to one server address, transparently
// reconnecting when it drops and fast-failing dispatch while the endpoint's
// circuit breaker is open.
type KvEndpoint interface {
	GetClient(ctx context.Context) (KvClient, error)
	AllowsRequest() bool
	RecordRequestResult(err error)
	ResetCircuitBreaker()
	Address() string
	Close() error
}

type KvEndpointConfig struct {
	ClientConfig     KvClientConfig
	CircuitBreaker   CircuitBreakerConfig
	ReconnectBackoff BackoffCalculator
}

type KvEndpointOptions struct {
	Logger        *zap.Logger
	NewKvClient   NewKvClientFunc
	OrphanHandler func(*reefdx.Packet)
}

type kvEndpoint struct {
	logger           *zap.Logger
	address          string
	newKvClient      NewKvClientFunc
	orphanHandler    func(*reefdx.Packet)
	breaker          *circuitBreaker
	reconnectBackoff BackoffCalculator

	lock            sync.Mutex
	activeClient    KvClient
	connectErr      error
	needClientSigCh chan struct{}
	closed          bool
	closeSigCh      chan struct{}
}

var _ KvEndpoint = (*kvEndpoint)(nil)

func NewKvEndpoint(config *KvEndpointConfig, opts *KvEndpointOptions) (*kvEndpoint, error) {
	if config == nil {
		return nil, errors.New("must pass config")
	}
	if config.ClientConfig.Address == "" {
		return nil, invalidArgumentError{"endpoint address must be specified"}
	}
	if opts == nil {
		opts = &KvEndpointOptions{}
	}

	newKvClient := opts.NewKvClient
	if newKvClient == nil {
		newKvClient = func(ctx context.Context, config *KvClientConfig, opts *KvClientOptions) (KvClient, error) {
			return NewKvClient(ctx, config, opts)
		}
	}

	reconnectBackoff := config.ReconnectBackoff
	if reconnectBackoff == nil {
		reconnectBackoff = ExponentialBackoff(100*time.Millisecond, 10*time.Second, 2)
	}

	ep := &kvEndpoint{
		logger: loggerOrNop(opts.Logger).With(
			zap.String("endpoint", config.ClientConfig.Address),
		),
		address:          config.ClientConfig.Address,
		newKvClient:      newKvClient,
		orphanHandler:    opts.OrphanHandler,
		breaker:          newCircuitBreaker(config.CircuitBreaker),
		reconnectBackoff: reconnectBackoff,

		needClientSigCh: make(chan struct{}, 1),
		closeSigCh:      make(chan struct{}),
	}

	go ep.managerThread(config.ClientConfig)

	return ep, nil
}

func (ep *kvEndpoint) managerThread(config KvClientConfig) {
	var reconnectAttempts uint32

	for {
		ep.lock.Lock()
		if ep.closed {
			ep.lock.Unlock()
			return
		}
		ep.lock.Unlock()

		clientClosedCh := make(chan struct{})
		client, err := ep.connectOnce(config, clientClosedCh)
		if err != nil {
			waitTime := ep.reconnectBackoff(reconnectAttempts)
			reconnectAttempts++

			ep.logger.Debug("endpoint connect failed",
				zap.Error(err),
				zap.Duration("nextAttempt", waitTime))

			ep.lock.Lock()
			ep.connectErr = err
			ep.notifyClientWaitersLocked()
			ep.lock.Unlock()

			select {
			case <-time.After(waitTime):
			case <-ep.closeSigCh:
				return
			}
			continue
		}

		reconnectAttempts = 0

		ep.lock.Lock()
		if ep.closed {
			ep.lock.Unlock()
			_ = client.Close()
			return
		}
		ep.activeClient = client
		ep.connectErr = nil
		ep.notifyClientWaitersLocked()
		ep.lock.Unlock()

		ep.logger.Debug("endpoint connected")

		select {
		case <-clientClosedCh:
		case <-ep.closeSigCh:
			_ = client.Close()
			return
		}

		ep.logger.Debug("endpoint connection lost")

		// the channel reported closed, but the client still holds its socket
		_ = client.Close()

		ep.lock.Lock()
		ep.activeClient = nil
		ep.needClientSigCh = make(chan struct{}, 1)
		ep.lock.Unlock()
	}
}

func (ep *kvEndpoint) connectOnce(config KvClientConfig, clientClosedCh chan struct{}) (KvClient, error) {
	cancelCtx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()
	go func() {
		select {
		case <-ep.closeSigCh:
			cancelFn()
		case <-cancelCtx.Done():
		}
	}()

	var closeOnce sync.Once
	return ep.newKvClient(cancelCtx, &config, &KvClientOptions{
		Logger:        ep.logger,
		OrphanHandler: ep.orphanHandler,
		CloseHandler: func(err error) {
			closeOnce.Do(func() {
				close(clientClosedCh)
			})
		},
	})
}

func (ep *kvEndpoint) notifyClientWaitersLocked() {
	needClientSigCh := ep.needClientSigCh
	ep.needClientSigCh = nil

	if needClientSigCh != nil {
		close(needClientSigCh)
	}
}

// GetClient returns the endpoint's active client, waiting for the connection
// to establish if one is not available yet.  If the last connection attempt
// failed, the connect error is returned without waiting for the retry.
func (ep *kvEndpoint) GetClient(ctx context.Context) (KvClient, error) {
	for {
		ep.lock.Lock()

		if ep.closed {
			ep.lock.Unlock()
			return nil, ErrEndpointClosed
		}

		if ep.activeClient != nil {
			client := ep.activeClient
			ep.lock.Unlock()
			return client, nil
		}

		if ep.connectErr != nil {
			err := ep.connectErr
			ep.lock.Unlock()
			return nil, err
		}

		clientWaitCh := ep.needClientSigCh
		if clientWaitCh == nil {
			clientWaitCh = make(chan struct{}, 1)
			ep.needClientSigCh = clientWaitCh
		}

		ep.lock.Unlock()

		select {
		case <-clientWaitCh:
		case <-ep.closeSigCh:
			return nil, ErrEndpointClosed
		case <-ctx.Done():
			ctxErr := ctx.Err()
			if errors.Is(ctxErr, context.DeadlineExceeded) {
				return nil, ErrEndpointStillConnecting
			}
			return nil, ctxErr
		}
	}
}

func (ep *kvEndpoint) AllowsRequest() bool {
	return ep.breaker.AllowsRequest()
}

// RecordRequestResult classifies an operation outcome for the circuit
// breaker.  Only connection level failures trip the breaker; a server
// rejecting an individual document proves the endpoint is healthy.
func (ep *kvEndpoint) RecordRequestResult(err error) {
	if err == nil {
		ep.breaker.MarkSuccessful()
		return
	}

	if errors.Is(err, reefdx.ErrDispatch) ||
		errors.Is(err, reefdx.ErrClosedInFlight) ||
		errors.Is(err, context.DeadlineExceeded) {
		ep.breaker.MarkFailure()
		return
	}

	ep.breaker.MarkSuccessful()
}

func (ep *kvEndpoint) ResetCircuitBreaker() {
	ep.breaker.Reset()
}

func (ep *kvEndpoint) Address() string {
	return ep.address
}

func (ep *kvEndpoint) Close() error {
	ep.lock.Lock()
	if ep.closed {
		ep.lock.Unlock()
		return nil
	}
	ep.closed = true
	activeClient := ep.activeClient
	ep.activeClient = nil
	ep.notifyClientWaitersLocked()
	ep.lock.Unlock()

	close(ep.closeSigCh)

	if activeClient != nil {
		return activeClient.Close()
	}
	return nil
}

// OrchestrateEndpoint guards fn with the endpoint's circuit breaker and
// records the outcome, fast-failing with ErrCircuitBreakerOpen without
// touching the connection while the breaker is open.
func OrchestrateEndpoint[RespT any](
	ctx context.Context,
	ep KvEndpoint,
	fn func(client KvClient) (RespT, error),
) (RespT, error) {
	if !ep.AllowsRequest() {
		var emptyResp RespT
		return emptyResp, ErrCircuitBreakerOpen
	}

	client, err := ep.GetClient(ctx)
	if err != nil {
		ep.RecordRequestResult(err)
		var emptyResp RespT
		return emptyResp, err
	}

	res, err := fn(client)
	ep.RecordRequestResult(err)
	return res, err
}
