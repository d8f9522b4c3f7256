package goreefcore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/reefdb/goreefcore/reefdx"
)

// Agent is the composition root.  It owns the endpoint for its configured
// server and wires the operation components on top of it.
type Agent struct {
	logger *zap.Logger

	endpoint   KvEndpoint
	retries    RetryManager
	crud       *CrudComponent
	durability *DurabilityComponent
}

func CreateAgent(ctx context.Context, opts *AgentOptions) (*Agent, error) {
	if opts.SeedAddress == "" {
		return nil, invalidArgumentError{"seed address must be specified"}
	}

	logger := loggerOrNop(opts.Logger)
	logger = logger.With(
		zap.String("agentId", uuid.NewString()[:8]),
	)

	connectTimeout := opts.ConnectTimeout
	if connectTimeout == 0 {
		connectTimeout = 7 * time.Second
	}

	defaultTimeout := opts.DefaultTimeout
	if defaultTimeout == 0 {
		defaultTimeout = 2500 * time.Millisecond
	}

	endpoint, err := NewKvEndpoint(&KvEndpointConfig{
		ClientConfig: KvClientConfig{
			Address:        opts.SeedAddress,
			TlsConfig:      opts.TLSConfig,
			ClientName:     opts.ClientName,
			Authenticator:  opts.Authenticator,
			SelectedBucket: opts.BucketName,
		},
		CircuitBreaker: opts.CircuitBreaker,
	}, &KvEndpointOptions{
		Logger: logger,
		OrphanHandler: func(pak *reefdx.Packet) {
			logger.Debug("orphaned response",
				zap.Uint32("opaque", pak.Opaque),
				zap.String("opcode", pak.OpCode.String()))
		},
	})
	if err != nil {
		return nil, err
	}

	retries := NewRetryManagerDefault()
	compression := NewCompressionManagerDefault(opts.Compression)

	agent := &Agent{
		logger:   logger,
		endpoint: endpoint,
		retries:  retries,
		crud: NewCrudComponent(&CrudComponentOptions{
			Logger:         logger,
			Endpoint:       endpoint,
			Retries:        retries,
			Compression:    compression,
			DefaultTimeout: defaultTimeout,
		}),
		durability: NewDurabilityComponent(&DurabilityComponentOptions{
			Logger:         logger,
			Endpoint:       endpoint,
			PollInterval:   opts.DurabilityPollInterval,
			DefaultTimeout: defaultTimeout,
		}),
	}

	// block until the endpoint has connected and bootstrapped, so a bad
	// address or rejected credentials surface here rather than on the first
	// operation.
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if _, err := endpoint.GetClient(connectCtx); err != nil {
		_ = endpoint.Close()
		return nil, err
	}

	agent.logger.Debug("agent created",
		zap.String("address", opts.SeedAddress),
		zap.String("bucket", opts.BucketName))

	return agent, nil
}

// Close tears the agent down.  Every in-flight operation resolves with an
// error before this returns.
func (agent *Agent) Close() error {
	agent.logger.Debug("agent closing")
	return agent.endpoint.Close()
}
