package reefdx

import (
	"context"
	"net"
	"os"
	"time"

	"go.uber.org/zap"
)

var enablePacketLogging bool = os.Getenv("REEFDX_PACKET_LOGGING") != ""

const defaultTimeoutSweepInterval = 100 * time.Millisecond

// Client owns one connection channel: it assigns opaques, writes request
// frames, and runs the read loop which demultiplexes responses back to their
// registered handlers.  Responses are matched purely by opaque, never by
// arrival order, so pipelined requests may complete out of order.
type Client struct {
	conn          *Conn
	orphanHandler func(*Packet)
	closeHandler  func(error)
	logger        *zap.Logger

	opaqueMap *OpaqueMap

	sweepInterval time.Duration
	stopSweepCh   chan struct{}
}

var _ Dispatcher = (*Client)(nil)

type ClientOptions struct {
	// OrphanHandler receives responses whose opaque no longer has an entry
	// in the correlation table, such as a response racing a fired timeout.
	OrphanHandler func(*Packet)

	// CloseHandler is invoked once when the read loop terminates.
	CloseHandler func(error)

	// TimeoutSweepInterval bounds the scheduling slack between a request's
	// deadline elapsing and its handler being failed.
	TimeoutSweepInterval time.Duration

	Logger *zap.Logger
}

func NewClient(conn *Conn, opts *ClientOptions) *Client {
	if opts == nil {
		opts = &ClientOptions{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	sweepInterval := opts.TimeoutSweepInterval
	if sweepInterval == 0 {
		sweepInterval = defaultTimeoutSweepInterval
	}

	c := &Client{
		conn:          conn,
		orphanHandler: opts.OrphanHandler,
		closeHandler:  opts.CloseHandler,
		logger:        logger,

		opaqueMap: NewOpaqueMap(),

		sweepInterval: sweepInterval,
		stopSweepCh:   make(chan struct{}),
	}
	go c.run()
	go c.sweepTimeouts()

	return c
}

func (c *Client) run() {
	pak := &Packet{}
	var closeErr error
	for {
		err := c.conn.ReadPacket(pak)
		if err != nil {
			closeErr = err
			break
		}

		c.dispatchCallback(pak)
	}

	// nothing can resolve a response anymore: release the socket so late
	// writes fail instead of going onto the wire unanswered.
	_ = c.conn.Close()

	close(c.stopSweepCh)

	// the read loop is gone, nothing can resolve the remaining entries.
	c.opaqueMap.CancelAll(requestCancelledError{cause: ErrClosedInFlight})

	if c.closeHandler != nil {
		c.closeHandler(closeErr)
	}
}

func (c *Client) sweepTimeouts() {
	ticker := time.NewTicker(c.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			numExpired := c.opaqueMap.CancelExpired(now,
				requestCancelledError{cause: context.DeadlineExceeded})
			if numExpired > 0 {
				c.logger.Debug("timed out operations",
					zap.Int("numOperations", numExpired))
			}
		case <-c.stopSweepCh:
			return
		}
	}
}

func (c *Client) logPacket(dir string, pak *Packet) {
	c.logger.Debug(dir,
		zap.String("magic", pak.Magic.String()),
		zap.String("opcode", pak.OpCode.String()),
		zap.Uint8("datatype", pak.Datatype),
		zap.Uint16("vbucketID", pak.VbucketID),
		zap.String("status", pak.Status.String()),
		zap.Uint32("opaque", pak.Opaque),
		zap.Uint64("cas", pak.Cas),
		zap.Binary("extras", pak.Extras),
		zap.Binary("key", pak.Key),
		zap.Binary("value", pak.Value),
		zap.Binary("framingExtras", pak.FramingExtras),
	)
}

func (c *Client) dispatchCallback(pak *Packet) {
	if enablePacketLogging {
		c.logPacket("read packet", pak)
	}

	_, wasInvoked := c.opaqueMap.Invoke(pak.Opaque, pak, nil)
	if !wasInvoked {
		// an unknown opaque is not fatal, it covers duplicate or stray frames
		// and responses which lost the race against their timeout.
		if c.orphanHandler != nil {
			c.orphanHandler(pak)
			return
		}

		c.logger.Debug("dropped orphaned response",
			zap.Uint32("opaque", pak.Opaque),
			zap.String("opcode", pak.OpCode.String()))
	}
}

func (c *Client) cancelOp(opaqueID uint32, err error) bool {
	_, wasInvoked := c.opaqueMap.Invoke(opaqueID, nil, requestCancelledError{cause: err})
	if wasInvoked {
		c.logger.Debug("cancelled operation",
			zap.Uint32("opaque", opaqueID))
	}
	return wasInvoked
}

// Close tears down the connection.  The read loop notices and fails every
// still-pending entry, so no completion is ever silently dropped.
func (c *Client) Close() error {
	c.logger.Debug("closing")
	return c.conn.Close()
}

// Dispatch writes a request packet and registers its handler without a
// deadline.  Note that the handler can be invoked before Dispatch returns,
// due to races between this function returning and the read loop receiving
// responses.  Callers are guaranteed to either receive callbacks OR receive
// an error from this call, never both.
func (c *Client) Dispatch(pak *Packet, handler DispatchCallback) (PendingOp, error) {
	return c.DispatchWithDeadline(pak, time.Time{}, handler)
}

// DispatchWithDeadline writes a request packet and registers its handler in
// the correlation table with the provided deadline.  If the deadline elapses
// before a response arrives, the handler is failed with a cancellation error
// wrapping context.DeadlineExceeded.
func (c *Client) DispatchWithDeadline(pak *Packet, deadline time.Time, handler DispatchCallback) (PendingOp, error) {
	opaqueID, err := c.opaqueMap.Register(handler, deadline)
	if err != nil {
		// the channel already closed, the handler was never registered
		return nil, dispatchError{cause: err}
	}
	pak.Opaque = opaqueID

	if enablePacketLogging {
		c.logPacket("writing packet", pak)
	}

	err = c.conn.WritePacket(pak)
	if err != nil {
		c.logger.Debug("failed to write packet",
			zap.Error(err),
			zap.Uint32("opaque", opaqueID),
			zap.String("opcode", pak.OpCode.String()))

		if !c.opaqueMap.Invalidate(opaqueID) {
			// the entry already resolved, somebody cancelled us while the
			// write was in progress.  the callback has been invoked with an
			// error by them, so the write is reported as successful here.
			return pendingOpNoop{}, nil
		}

		return nil, dispatchError{cause: err}
	}

	return clientPendingOp{
		client:   c,
		opaqueID: opaqueID,
	}, nil
}

func (c *Client) LocalAddr() net.Addr {
	return c.conn.LocalAddr()
}

func (c *Client) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}
