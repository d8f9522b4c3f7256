package goreefcore

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/reefdb/goreefcore/reefdx"
)

// CrudComponent exposes the blocking per-document operation surface.  All
// calls validate their arguments before any I/O, apply the default timeout
// when the caller's context carries no deadline, and orchestrate retries
// of transient failures across the endpoint's circuit breaker.
type CrudComponent struct {
	logger         *zap.Logger
	endpoint       KvEndpoint
	retries        RetryManager
	compression    CompressionManager
	defaultTimeout time.Duration
}

type CrudComponentOptions struct {
	Logger         *zap.Logger
	Endpoint       KvEndpoint
	Retries        RetryManager
	Compression    CompressionManager
	DefaultTimeout time.Duration
}

func NewCrudComponent(opts *CrudComponentOptions) *CrudComponent {
	retries := opts.Retries
	if retries == nil {
		retries = NewRetryManagerDefault()
	}

	compression := opts.Compression
	if compression == nil {
		compression = NewCompressionManagerDefault(CompressionConfig{})
	}

	return &CrudComponent{
		logger:         loggerOrNop(opts.Logger),
		endpoint:       opts.Endpoint,
		retries:        retries,
		compression:    compression,
		defaultTimeout: opts.DefaultTimeout,
	}
}

// maybeApplyDefaultTimeout attaches the component's default timeout when the
// caller did not provide a deadline of their own.  The timeout is measured
// from operation start, so breaker and connect waits count against it.
func (cc *CrudComponent) maybeApplyDefaultTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); !ok && cc.defaultTimeout > 0 {
		return context.WithTimeout(ctx, cc.defaultTimeout)
	}
	return ctx, func() {}
}

// OrchestrateSimpleCrud runs fn against the endpoint's client, retrying
// transient failures and honoring the circuit breaker.
func OrchestrateSimpleCrud[RespT any](
	ctx context.Context,
	rs RetryManager,
	ep KvEndpoint,
	fn func(client KvClient) (RespT, error),
) (RespT, error) {
	return OrchestrateRetries(ctx, rs, func() (RespT, error) {
		return OrchestrateEndpoint(ctx, ep, fn)
	})
}

type GetOptions struct {
	Key          []byte
	CollectionID uint32
	VbucketID    uint16
}

type GetResult struct {
	Value    []byte
	Flags    uint32
	Datatype reefdx.DatatypeFlag
	Cas      uint64
}

// Get fetches a document.  Absence of the document is not an error, a nil
// result with a nil error is returned instead.
func (cc *CrudComponent) Get(ctx context.Context, opts *GetOptions) (*GetResult, error) {
	if len(opts.Key) == 0 {
		return nil, invalidArgumentError{"key must not be empty"}
	}

	ctx, cancel := cc.maybeApplyDefaultTimeout(ctx)
	defer cancel()

	return OrchestrateSimpleCrud(
		ctx, cc.retries, cc.endpoint,
		func(client KvClient) (*GetResult, error) {
			resp, err := client.Get(ctx, &reefdx.GetRequest{
				CollectionID: opts.CollectionID,
				Key:          opts.Key,
				VbucketID:    opts.VbucketID,
			})
			if err != nil {
				if errors.Is(err, reefdx.ErrDocNotFound) {
					return nil, nil
				}
				return nil, err
			}

			value, datatype, err := cc.compression.Decompress(
				reefdx.DatatypeFlag(resp.Datatype), resp.Value)
			if err != nil {
				return nil, err
			}

			return &GetResult{
				Value:    value,
				Flags:    resp.Flags,
				Datatype: datatype,
				Cas:      resp.Cas,
			}, nil
		})
}

type InsertOptions struct {
	Key          []byte
	Value        []byte
	Flags        uint32
	Datatype     reefdx.DatatypeFlag
	Expiry       uint32
	CollectionID uint32
	VbucketID    uint16

	DurabilityLevel        reefdx.DurabilityLevel
	DurabilityLevelTimeout time.Duration
}

type InsertResult struct {
	Cas           uint64
	MutationToken reefdx.MutationToken
}

// Insert creates a document, failing with ErrDocumentExists when the key is
// already present.
func (cc *CrudComponent) Insert(ctx context.Context, opts *InsertOptions) (*InsertResult, error) {
	if len(opts.Key) == 0 {
		return nil, invalidArgumentError{"key must not be empty"}
	}

	ctx, cancel := cc.maybeApplyDefaultTimeout(ctx)
	defer cancel()

	return OrchestrateSimpleCrud(
		ctx, cc.retries, cc.endpoint,
		func(client KvClient) (*InsertResult, error) {
			value, datatype, err := cc.compression.Compress(
				client.HasFeature(reefdx.HelloFeatureSnappy), opts.Datatype, opts.Value)
			if err != nil {
				return nil, err
			}

			resp, err := client.Add(ctx, &reefdx.AddRequest{
				CollectionID: opts.CollectionID,
				Key:          opts.Key,
				VbucketID:    opts.VbucketID,
				Flags:        opts.Flags,
				Value:        value,
				Datatype:     uint8(datatype),
				Expiry:       opts.Expiry,

				DurabilityLevel:        opts.DurabilityLevel,
				DurabilityLevelTimeout: opts.DurabilityLevelTimeout,
			})
			if err != nil {
				return nil, err
			}

			return &InsertResult{
				Cas:           resp.Cas,
				MutationToken: resp.MutationToken,
			}, nil
		})
}

type UpsertOptions struct {
	Key          []byte
	Value        []byte
	Flags        uint32
	Datatype     reefdx.DatatypeFlag
	Expiry       uint32
	Cas          uint64
	CollectionID uint32
	VbucketID    uint16

	DurabilityLevel        reefdx.DurabilityLevel
	DurabilityLevelTimeout time.Duration
}

type UpsertResult struct {
	Cas           uint64
	MutationToken reefdx.MutationToken
}

// Upsert stores a document whether or not it already exists.  A non-zero Cas
// makes the store conditional, failing with ErrCasMismatch when the document
// changed since the Cas was observed.
func (cc *CrudComponent) Upsert(ctx context.Context, opts *UpsertOptions) (*UpsertResult, error) {
	if len(opts.Key) == 0 {
		return nil, invalidArgumentError{"key must not be empty"}
	}

	ctx, cancel := cc.maybeApplyDefaultTimeout(ctx)
	defer cancel()

	return OrchestrateSimpleCrud(
		ctx, cc.retries, cc.endpoint,
		func(client KvClient) (*UpsertResult, error) {
			value, datatype, err := cc.compression.Compress(
				client.HasFeature(reefdx.HelloFeatureSnappy), opts.Datatype, opts.Value)
			if err != nil {
				return nil, err
			}

			resp, err := client.Set(ctx, &reefdx.SetRequest{
				CollectionID: opts.CollectionID,
				Key:          opts.Key,
				VbucketID:    opts.VbucketID,
				Flags:        opts.Flags,
				Value:        value,
				Datatype:     uint8(datatype),
				Expiry:       opts.Expiry,
				Cas:          opts.Cas,

				DurabilityLevel:        opts.DurabilityLevel,
				DurabilityLevelTimeout: opts.DurabilityLevelTimeout,
			})
			if err != nil {
				return nil, err
			}

			return &UpsertResult{
				Cas:           resp.Cas,
				MutationToken: resp.MutationToken,
			}, nil
		})
}

type RemoveOptions struct {
	Key          []byte
	Cas          uint64
	CollectionID uint32
	VbucketID    uint16

	DurabilityLevel        reefdx.DurabilityLevel
	DurabilityLevelTimeout time.Duration
}

type RemoveResult struct {
	Cas           uint64
	MutationToken reefdx.MutationToken
}

// Remove deletes a document.  Unlike Get, removing an absent document is an
// error, ErrDocumentNotFound is returned.
func (cc *CrudComponent) Remove(ctx context.Context, opts *RemoveOptions) (*RemoveResult, error) {
	if len(opts.Key) == 0 {
		return nil, invalidArgumentError{"key must not be empty"}
	}

	ctx, cancel := cc.maybeApplyDefaultTimeout(ctx)
	defer cancel()

	return OrchestrateSimpleCrud(
		ctx, cc.retries, cc.endpoint,
		func(client KvClient) (*RemoveResult, error) {
			resp, err := client.Delete(ctx, &reefdx.DeleteRequest{
				CollectionID: opts.CollectionID,
				Key:          opts.Key,
				VbucketID:    opts.VbucketID,
				Cas:          opts.Cas,

				DurabilityLevel:        opts.DurabilityLevel,
				DurabilityLevelTimeout: opts.DurabilityLevelTimeout,
			})
			if err != nil {
				return nil, err
			}

			return &RemoveResult{
				Cas:           resp.Cas,
				MutationToken: resp.MutationToken,
			}, nil
		})
}

type LookupInOptions struct {
	Key          []byte
	Ops          []reefdx.LookupInOp
	Flags        reefdx.SubdocDocFlag
	CollectionID uint32
	VbucketID    uint16
}

type LookupInResult struct {
	Cas          uint64
	Ops          []reefdx.SubDocResult
	DocIsDeleted bool
}

// LookupIn fetches individual paths within a document.  Per-path failures are
// reported in the result entries, the call as a whole only fails when the
// document is inaccessible.
func (cc *CrudComponent) LookupIn(ctx context.Context, opts *LookupInOptions) (*LookupInResult, error) {
	if len(opts.Key) == 0 {
		return nil, invalidArgumentError{"key must not be empty"}
	}
	if len(opts.Ops) == 0 {
		return nil, invalidArgumentError{"at least one lookup operation must be specified"}
	}

	ctx, cancel := cc.maybeApplyDefaultTimeout(ctx)
	defer cancel()

	return OrchestrateSimpleCrud(
		ctx, cc.retries, cc.endpoint,
		func(client KvClient) (*LookupInResult, error) {
			resp, err := client.LookupIn(ctx, &reefdx.LookupInRequest{
				CollectionID: opts.CollectionID,
				Key:          opts.Key,
				VbucketID:    opts.VbucketID,
				Flags:        opts.Flags,
				Ops:          opts.Ops,
			})
			if err != nil {
				return nil, err
			}

			return &LookupInResult{
				Cas:          resp.Cas,
				Ops:          resp.Ops,
				DocIsDeleted: resp.DocIsDeleted,
			}, nil
		})
}

type MutateInOptions struct {
	Key          []byte
	Ops          []reefdx.MutateInOp
	Flags        reefdx.SubdocDocFlag
	Expiry       uint32
	Cas          uint64
	CollectionID uint32
	VbucketID    uint16

	DurabilityLevel        reefdx.DurabilityLevel
	DurabilityLevelTimeout time.Duration
}

type MutateInResult struct {
	Cas           uint64
	MutationToken reefdx.MutationToken
	Ops           []reefdx.SubDocResult
}

// MutateIn applies a batch of path mutations atomically.  The first failing
// path fails the whole batch.
func (cc *CrudComponent) MutateIn(ctx context.Context, opts *MutateInOptions) (*MutateInResult, error) {
	if len(opts.Key) == 0 {
		return nil, invalidArgumentError{"key must not be empty"}
	}
	if len(opts.Ops) == 0 {
		return nil, invalidArgumentError{"at least one mutation operation must be specified"}
	}

	ctx, cancel := cc.maybeApplyDefaultTimeout(ctx)
	defer cancel()

	return OrchestrateSimpleCrud(
		ctx, cc.retries, cc.endpoint,
		func(client KvClient) (*MutateInResult, error) {
			resp, err := client.MutateIn(ctx, &reefdx.MutateInRequest{
				CollectionID: opts.CollectionID,
				Key:          opts.Key,
				VbucketID:    opts.VbucketID,
				Flags:        opts.Flags,
				Ops:          opts.Ops,
				Expiry:       opts.Expiry,
				Cas:          opts.Cas,

				DurabilityLevel:        opts.DurabilityLevel,
				DurabilityLevelTimeout: opts.DurabilityLevelTimeout,
			})
			if err != nil {
				return nil, err
			}

			return &MutateInResult{
				Cas:           resp.Cas,
				MutationToken: resp.MutationToken,
				Ops:           resp.Ops,
			}, nil
		})
}
