package goreefcore

import (
	"context"
	"crypto/tls"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/reefdb/goreefcore/reefdx"
)

type GetReefdxClientFunc func(opts *reefdx.ClientOptions) ReefdxDispatcherCloser

type KvClientConfig struct {
	Address                string
	TlsConfig              *tls.Config
	ClientName             string
	Authenticator          Authenticator
	SelectedBucket         string
	DisableDefaultFeatures bool

	// DisableBootstrap provides a simple way to validate that all bootstrapping
	// is disabled on the client, mainly used for testing.
	DisableBootstrap bool
}

func (o KvClientConfig) Equals(b *KvClientConfig) bool {
	return o.Address == b.Address &&
		o.TlsConfig == b.TlsConfig &&
		o.ClientName == b.ClientName &&
		o.Authenticator == b.Authenticator &&
		o.SelectedBucket == b.SelectedBucket &&
		o.DisableDefaultFeatures == b.DisableDefaultFeatures &&
		o.DisableBootstrap == b.DisableBootstrap
}

type KvClientOptions struct {
	Logger           *zap.Logger
	NewReefdxClient  GetReefdxClientFunc
	OrphanHandler    func(*reefdx.Packet)
	CloseHandler     func(error)
	DisableTelemetry bool
}

type KvClientOps interface {
	Get(ctx context.Context, req *reefdx.GetRequest) (*reefdx.GetResponse, error)
	Add(ctx context.Context, req *reefdx.AddRequest) (*reefdx.AddResponse, error)
	Set(ctx context.Context, req *reefdx.SetRequest) (*reefdx.SetResponse, error)
	Delete(ctx context.Context, req *reefdx.DeleteRequest) (*reefdx.DeleteResponse, error)
	LookupIn(ctx context.Context, req *reefdx.LookupInRequest) (*reefdx.LookupInResponse, error)
	MutateIn(ctx context.Context, req *reefdx.MutateInRequest) (*reefdx.MutateInResponse, error)
	ObserveSeqNo(ctx context.Context, req *reefdx.ObserveSeqNoRequest) (*reefdx.ObserveSeqNoResponse, error)
	SelectBucket(ctx context.Context, req *reefdx.SelectBucketRequest) error
}

// KvClient implements a synchronous wrapper around a reefdx.Client.
type KvClient interface {
	HasFeature(feat reefdx.HelloFeature) bool
	Close() error

	LoadFactor() float64

	RemoteAddress() string

	KvClientOps
}

type ReefdxDispatcherCloser interface {
	reefdx.Dispatcher
	Close() error
}

type kvClient struct {
	logger *zap.Logger

	pendingOperations uint64
	cli               ReefdxDispatcherCloser

	lock          sync.Mutex
	currentConfig KvClientConfig

	supportedFeatures []reefdx.HelloFeature

	telemetryEnabled bool

	closed uint32
}

var _ KvClient = (*kvClient)(nil)

func NewKvClient(ctx context.Context, config *KvClientConfig, opts *KvClientOptions) (*kvClient, error) {
	logger := loggerOrNop(opts.Logger)
	// We namespace the client to improve debugging,
	logger = logger.With(
		zap.String("clientId", uuid.NewString()[:8]),
	)

	kvCli := &kvClient{
		currentConfig:    *config,
		logger:           logger,
		telemetryEnabled: !opts.DisableTelemetry,
	}

	logger.Debug("id assigned for " + config.Address)

	var requestedFeatures []reefdx.HelloFeature
	if !config.DisableDefaultFeatures {
		requestedFeatures = []reefdx.HelloFeature{
			reefdx.HelloFeatureDatatype,
			reefdx.HelloFeatureSeqNo,
			reefdx.HelloFeatureXattr,
			reefdx.HelloFeatureXerror,
			reefdx.HelloFeatureSelectBucket,
			reefdx.HelloFeatureSnappy,
			reefdx.HelloFeatureJSON,
			reefdx.HelloFeatureUnorderedExec,
			reefdx.HelloFeatureAltRequests,
			reefdx.HelloFeatureSyncReplication,
			reefdx.HelloFeatureCollections,
		}
	}

	var bootstrapHello *reefdx.HelloRequest
	if config.ClientName != "" || len(requestedFeatures) > 0 {
		bootstrapHello = &reefdx.HelloRequest{
			ClientName:        []byte(config.ClientName),
			RequestedFeatures: requestedFeatures,
		}
	}

	var bootstrapAuth *reefdx.SaslAuthPlainOptions
	if config.Authenticator != nil {
		username, password, err := config.Authenticator.GetCredentials(config.Address)
		if err != nil {
			return nil, err
		}

		bootstrapAuth = &reefdx.SaslAuthPlainOptions{
			Username: username,
			Password: password,
		}
	}

	var bootstrapSelectBucket *reefdx.SelectBucketRequest
	if config.SelectedBucket != "" {
		bootstrapSelectBucket = &reefdx.SelectBucketRequest{
			BucketName: config.SelectedBucket,
		}
	}

	shouldBootstrap := bootstrapHello != nil || bootstrapAuth != nil || bootstrapSelectBucket != nil

	if shouldBootstrap && config.DisableBootstrap {
		return nil, illegalStateError{"bootstrap was disabled but options requiring bootstrap were specified"}
	}

	reefdxClientOpts := &reefdx.ClientOptions{
		OrphanHandler: opts.OrphanHandler,
		CloseHandler:  opts.CloseHandler,
		Logger:        logger,
	}
	if opts.NewReefdxClient == nil {
		conn, err := reefdx.DialConn(ctx, config.Address, &reefdx.DialConnOptions{TLSConfig: config.TlsConfig})
		if err != nil {
			return nil, err
		}

		kvCli.cli = reefdx.NewClient(conn, reefdxClientOpts)
	} else {
		kvCli.cli = opts.NewReefdxClient(reefdxClientOpts)
	}

	if shouldBootstrap {
		kvCli.logger.Debug("bootstrapping")
		res, err := kvCli.bootstrap(ctx, &reefdx.BootstrapOptions{
			Hello:        bootstrapHello,
			Auth:         bootstrapAuth,
			SelectBucket: bootstrapSelectBucket,
		})
		if err != nil {
			kvCli.logger.Debug("bootstrap failed", zap.Error(err))
			if closeErr := kvCli.Close(); closeErr != nil {
				kvCli.logger.Debug("failed to close connection for KvClient", zap.Error(closeErr))
			}
			return nil, err
		}

		if res.Hello != nil {
			kvCli.supportedFeatures = res.Hello.EnabledFeatures
		}

		kvCli.logger.Debug("successfully bootstrapped new KvClient",
			zap.Any("features", kvCli.supportedFeatures))
	} else {
		kvCli.logger.Debug("skipped bootstrapping new KvClient")
	}

	return kvCli, nil
}

func (c *kvClient) HasFeature(feat reefdx.HelloFeature) bool {
	return slices.Contains(c.supportedFeatures, feat)
}

func (c *kvClient) Close() error {
	c.logger.Info("closing")
	if !atomic.CompareAndSwapUint32(&c.closed, 0, 1) {
		c.logger.Debug("already closed")
		return nil
	}

	return c.cli.Close()
}

func (c *kvClient) LoadFactor() float64 {
	return (float64)(atomic.LoadUint64(&c.pendingOperations))
}

func (c *kvClient) RemoteAddress() string {
	c.lock.Lock()
	addr := c.currentConfig.Address
	c.lock.Unlock()

	return addr
}

func (c *kvClient) SelectedBucket() string {
	c.lock.Lock()
	bucket := c.currentConfig.SelectedBucket
	c.lock.Unlock()

	return bucket
}
