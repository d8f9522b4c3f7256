package goreefcore

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/reefdb/goreefcore/reefdx"
)

// DurabilityComponent confirms mutations have met persistence or replication
// requirements by polling the partition's observe sequence numbers.  It never
// re-runs a mutation; an unconfirmable outcome is reported as ambiguous.
type DurabilityComponent struct {
	logger         *zap.Logger
	endpoint       KvEndpoint
	pollInterval   time.Duration
	defaultTimeout time.Duration
}

type DurabilityComponentOptions struct {
	Logger         *zap.Logger
	Endpoint       KvEndpoint
	PollInterval   time.Duration
	DefaultTimeout time.Duration
}

func NewDurabilityComponent(opts *DurabilityComponentOptions) *DurabilityComponent {
	pollInterval := opts.PollInterval
	if pollInterval == 0 {
		pollInterval = 100 * time.Millisecond
	}

	return &DurabilityComponent{
		logger:         loggerOrNop(opts.Logger),
		endpoint:       opts.Endpoint,
		pollInterval:   pollInterval,
		defaultTimeout: opts.DefaultTimeout,
	}
}

type WaitForDurabilityOptions struct {
	// Token identifies the mutation whose durability is being confirmed.
	Token reefdx.MutationToken

	// RequirePersistence waits for the mutation to be persisted to disk on
	// the active node.
	RequirePersistence bool

	// RequireReplication waits for the mutation to be applied to the current
	// partition state, covering replica catch-up after a takeover.
	RequireReplication bool
}

// WaitForDurability blocks until the mutation identified by the token meets
// the requested requirements, the deadline elapses (ErrDurabilityTimeout) or
// a failover makes the outcome unknowable (ErrDurabilityAmbiguous).
func (dc *DurabilityComponent) WaitForDurability(ctx context.Context, opts *WaitForDurabilityOptions) error {
	if opts.Token.VbUuid == 0 {
		return invalidArgumentError{"mutation token must carry a partition uuid"}
	}
	if !opts.RequirePersistence && !opts.RequireReplication {
		return invalidArgumentError{"at least one durability requirement must be specified"}
	}

	if _, ok := ctx.Deadline(); !ok && dc.defaultTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, dc.defaultTimeout)
		defer cancel()
	}

	token := opts.Token

	for {
		resp, err := OrchestrateEndpoint(ctx, dc.endpoint,
			func(client KvClient) (*reefdx.ObserveSeqNoResponse, error) {
				return client.ObserveSeqNo(ctx, &reefdx.ObserveSeqNoRequest{
					VbucketID:   token.VbID,
					VbucketUUID: token.VbUuid,
				})
			})
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return DurabilityError{
					Cause:       ErrDurabilityTimeout,
					VbucketID:   token.VbID,
					TargetSeqNo: token.SeqNo,
				}
			}
			return err
		}

		if resp.DidFailover || resp.VbucketUUID != token.VbUuid {
			dc.logger.Debug("durability wait interrupted by failover",
				zap.Uint16("vbId", token.VbID),
				zap.Uint64("tokenUuid", token.VbUuid),
				zap.Uint64("currentUuid", resp.VbucketUUID))

			return DurabilityError{
				Cause:        ErrDurabilityAmbiguous,
				VbucketID:    token.VbID,
				PersistSeqNo: resp.PersistSeqNo,
				TargetSeqNo:  token.SeqNo,
			}
		}

		satisfied := true
		if opts.RequirePersistence && resp.PersistSeqNo < token.SeqNo {
			satisfied = false
		}
		if opts.RequireReplication && resp.CurrentSeqNo < token.SeqNo {
			satisfied = false
		}
		if satisfied {
			return nil
		}

		select {
		case <-time.After(dc.pollInterval):
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return DurabilityError{
					Cause:        ErrDurabilityTimeout,
					VbucketID:    token.VbID,
					PersistSeqNo: resp.PersistSeqNo,
					TargetSeqNo:  token.SeqNo,
				}
			}
			return ctx.Err()
		}
	}
}
