package goreefcore

import (
	"crypto/tls"
	"time"

	"go.uber.org/zap"
)

type AgentOptions struct {
	Logger *zap.Logger

	// SeedAddress is the host:port of the server this agent connects to.
	SeedAddress string

	TLSConfig     *tls.Config
	Authenticator Authenticator
	BucketName    string

	// ClientName is announced to the server during feature negotiation and
	// shows up in server-side connection listings.
	ClientName string

	// ConnectTimeout bounds the initial connection and bootstrap.  Zero
	// selects a default of 7s.
	ConnectTimeout time.Duration

	// DefaultTimeout applies to operations whose context carries no deadline
	// of its own.  Zero selects a default of 2.5s.
	DefaultTimeout time.Duration

	// DurabilityPollInterval bounds how often observe polls are issued while
	// waiting for a durability requirement.  Zero selects a default of 100ms.
	DurabilityPollInterval time.Duration

	CircuitBreaker CircuitBreakerConfig

	Compression CompressionConfig
}
