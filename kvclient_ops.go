package goreefcore

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/reefdb/goreefcore/reefdx"
)

type syncCrudResult struct {
	Result interface{}
	Err    error
}

type syncCrudResulter struct {
	Ch chan syncCrudResult
}

var syncCrudResulterPool sync.Pool

func allocSyncCrudResulter() *syncCrudResulter {
	resulter := syncCrudResulterPool.Get()
	if resulter == nil {
		return &syncCrudResulter{
			Ch: make(chan syncCrudResult, 1),
		}
	}
	return resulter.(*syncCrudResulter)
}
func releaseSyncCrudResulter(v *syncCrudResulter) {
	syncCrudResulterPool.Put(v)
}

// deadlineDispatcher forwards dispatches to the underlying client, attaching
// the deadline so the correlation table's sweep can fail the entry if the
// response never arrives.
type deadlineDispatcher struct {
	cli      ReefdxDispatcherCloser
	deadline time.Time
}

var _ reefdx.Dispatcher = (*deadlineDispatcher)(nil)

func (d *deadlineDispatcher) Dispatch(pak *reefdx.Packet, cb reefdx.DispatchCallback) (reefdx.PendingOp, error) {
	return d.cli.DispatchWithDeadline(pak, d.deadline, cb)
}

func (d *deadlineDispatcher) DispatchWithDeadline(pak *reefdx.Packet, deadline time.Time, cb reefdx.DispatchCallback) (reefdx.PendingOp, error) {
	return d.cli.DispatchWithDeadline(pak, deadline, cb)
}

func kvClient_SimpleCall[Encoder any, ReqT any, RespT any](
	ctx context.Context,
	c *kvClient,
	o Encoder,
	execFn func(o Encoder, d reefdx.Dispatcher, req ReqT, cb func(RespT, error)) (reefdx.PendingOp, error),
	req ReqT,
) (RespT, error) {
	var span trace.Span
	var stime time.Time
	opName, hasOpName := any(req).(interface{ OpName() string })
	if c.telemetryEnabled && hasOpName {
		stime = time.Now()
		ctx, span = tracer.Start(ctx, "reefdb/"+opName.OpName(),
			trace.WithSpanKind(trace.SpanKindClient))
	}

	var dispatcher reefdx.Dispatcher = c.cli
	if deadline, ok := ctx.Deadline(); ok {
		dispatcher = &deadlineDispatcher{cli: c.cli, deadline: deadline}
	}

	atomic.AddUint64(&c.pendingOperations, 1)
	resulter := allocSyncCrudResulter()

	pendingOp, err := execFn(o, dispatcher, req, func(resp RespT, err error) {
		resulter.Ch <- syncCrudResult{
			Result: resp,
			Err:    err,
		}
	})
	if err != nil {
		releaseSyncCrudResulter(resulter)
		atomic.AddUint64(&c.pendingOperations, ^uint64(0))
		kvClient_endTelem(ctx, c, span, stime, opName, err)

		var emptyResp RespT
		if errors.Is(err, reefdx.ErrDispatch) {
			return emptyResp, KvClientDispatchError{err}
		}
		return emptyResp, err
	}

	var res syncCrudResult
	select {
	case res = <-resulter.Ch:
	case <-ctx.Done():
		pendingOp.Cancel(ctx.Err())

		// the cancellation resolves the handler, with either the cancel error
		// or a response which won the race, so the channel always yields.
		res = <-resulter.Ch
	}

	releaseSyncCrudResulter(resulter)
	atomic.AddUint64(&c.pendingOperations, ^uint64(0))
	kvClient_endTelem(ctx, c, span, stime, opName, res.Err)

	if res.Err != nil {
		var emptyResp RespT
		return emptyResp, res.Err
	}

	return res.Result.(RespT), nil
}

func kvClient_endTelem(
	ctx context.Context,
	c *kvClient,
	span trace.Span,
	stime time.Time,
	opName interface{ OpName() string },
	err error,
) {
	if span == nil {
		return
	}

	if err != nil {
		span.RecordError(err)
	}
	span.End()

	// cancelled calls are not representative of the operation duration, so
	// they are excluded from the metric.
	if ctx.Err() != nil {
		return
	}

	host, port := hostPortFromAddr(c.RemoteAddress())

	dtimeSecs := float64(time.Since(stime)) / float64(time.Second)
	clientOpDurationMetric.Record(ctx, dtimeSecs,
		metric.WithAttributes(
			semconv.DBOperationName(opName.OpName()),
			semconv.DBNamespace(c.SelectedBucket()),
			semconv.ServerAddress(host),
			semconv.ServerPort(port),
		))
}

func kvClient_SimpleCoreCall[ReqT any, RespT any](
	ctx context.Context,
	c *kvClient,
	execFn func(o reefdx.OpsCore, d reefdx.Dispatcher, req ReqT, cb func(RespT, error)) (reefdx.PendingOp, error),
	req ReqT,
) (RespT, error) {
	return kvClient_SimpleCall(ctx, c, reefdx.OpsCore{}, execFn, req)
}

func kvClient_SimpleCrudCall[ReqT any, RespT any](
	ctx context.Context,
	c *kvClient,
	execFn func(o reefdx.OpsCrud, d reefdx.Dispatcher, req ReqT, cb func(RespT, error)) (reefdx.PendingOp, error),
	req ReqT,
) (RespT, error) {
	return kvClient_SimpleCall(ctx, c, reefdx.OpsCrud{
		ExtFramesEnabled:   c.HasFeature(reefdx.HelloFeatureAltRequests),
		CollectionsEnabled: c.HasFeature(reefdx.HelloFeatureCollections),
	}, execFn, req)
}

func (c *kvClient) bootstrap(ctx context.Context, opts *reefdx.BootstrapOptions) (*reefdx.BootstrapResult, error) {
	return kvClient_SimpleCall(ctx, c, reefdx.OpBootstrap{
		Encoder: reefdx.OpsCore{},
	}, reefdx.OpBootstrap.Bootstrap, opts)
}

func (c *kvClient) Get(ctx context.Context, req *reefdx.GetRequest) (*reefdx.GetResponse, error) {
	return kvClient_SimpleCrudCall(ctx, c, reefdx.OpsCrud.Get, req)
}

func (c *kvClient) Add(ctx context.Context, req *reefdx.AddRequest) (*reefdx.AddResponse, error) {
	return kvClient_SimpleCrudCall(ctx, c, reefdx.OpsCrud.Add, req)
}

func (c *kvClient) Set(ctx context.Context, req *reefdx.SetRequest) (*reefdx.SetResponse, error) {
	return kvClient_SimpleCrudCall(ctx, c, reefdx.OpsCrud.Set, req)
}

func (c *kvClient) Delete(ctx context.Context, req *reefdx.DeleteRequest) (*reefdx.DeleteResponse, error) {
	return kvClient_SimpleCrudCall(ctx, c, reefdx.OpsCrud.Delete, req)
}

func (c *kvClient) LookupIn(ctx context.Context, req *reefdx.LookupInRequest) (*reefdx.LookupInResponse, error) {
	return kvClient_SimpleCrudCall(ctx, c, reefdx.OpsCrud.LookupIn, req)
}

func (c *kvClient) MutateIn(ctx context.Context, req *reefdx.MutateInRequest) (*reefdx.MutateInResponse, error) {
	return kvClient_SimpleCrudCall(ctx, c, reefdx.OpsCrud.MutateIn, req)
}

func (c *kvClient) ObserveSeqNo(ctx context.Context, req *reefdx.ObserveSeqNoRequest) (*reefdx.ObserveSeqNoResponse, error) {
	return kvClient_SimpleCrudCall(ctx, c, reefdx.OpsCrud.ObserveSeqNo, req)
}

func (c *kvClient) SelectBucket(ctx context.Context, req *reefdx.SelectBucketRequest) error {
	_, err := kvClient_SimpleCall(ctx, c, reefdx.OpsCore{},
		func(o reefdx.OpsCore, d reefdx.Dispatcher, req *reefdx.SelectBucketRequest, cb func(struct{}, error)) (reefdx.PendingOp, error) {
			return o.SelectBucket(d, req, func(err error) {
				cb(struct{}{}, err)
			})
		}, req)
	return err
}
