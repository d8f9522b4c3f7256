package reefdx

import (
	"bufio"
	"context"
	"crypto/tls"
	"net"
	"sync"
)

// Conn is a single full-duplex connection to one reefd node.  Writes are
// serialized internally; reads are expected to come from a single reader
// goroutine (the owning Client's run loop).
type Conn struct {
	conn   net.Conn
	reader *bufio.Reader

	writeLock    sync.Mutex
	writer       *bufio.Writer
	packetWriter PacketWriter

	packetReader PacketReader
}

type DialConnOptions struct {
	TLSConfig *tls.Config
	Dialer    *net.Dialer
}

// DialConn opens a connection to the address, optionally with TLS.  The
// context bounds only the dial itself.
func DialConn(ctx context.Context, address string, opts *DialConnOptions) (*Conn, error) {
	if opts == nil {
		opts = &DialConnOptions{}
	}

	dialer := opts.Dialer
	if dialer == nil {
		dialer = &net.Dialer{}
	}

	var netConn net.Conn
	var err error
	if opts.TLSConfig == nil {
		netConn, err = dialer.DialContext(ctx, "tcp", address)
	} else {
		tlsDialer := &tls.Dialer{
			NetDialer: dialer,
			Config:    opts.TLSConfig,
		}
		netConn, err = tlsDialer.DialContext(ctx, "tcp", address)
	}
	if err != nil {
		return nil, err
	}

	return NewConn(netConn), nil
}

// NewConn wraps an established net.Conn.  Useful for tests which drive the
// protocol over an in-memory pipe.
func NewConn(netConn net.Conn) *Conn {
	return &Conn{
		conn:   netConn,
		reader: bufio.NewReader(netConn),
		writer: bufio.NewWriter(netConn),
	}
}

func (c *Conn) WritePacket(pak *Packet) error {
	c.writeLock.Lock()
	defer c.writeLock.Unlock()

	err := c.packetWriter.WritePacket(c.writer, pak)
	if err != nil {
		return err
	}

	return c.writer.Flush()
}

func (c *Conn) ReadPacket(pak *Packet) error {
	return c.packetReader.ReadPacket(c.reader, pak)
}

func (c *Conn) Close() error {
	return c.conn.Close()
}

func (c *Conn) LocalAddr() net.Addr {
	return c.conn.LocalAddr()
}

func (c *Conn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}
