package goreefcore

import (
	"net"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	meter = otel.Meter("github.com/reefdb/goreefcore",
		metric.WithInstrumentationVersion(buildVersion))

	tracer = otel.Tracer("github.com/reefdb/goreefcore",
		trace.WithInstrumentationVersion(buildVersion))
)

var (
	// clientOpDurationMetric tracks the wall-clock duration of individual
	// key-value operations against an endpoint.
	clientOpDurationMetric, _ = meter.Float64Histogram("db.client.operation.duration",
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10))
)

// hostPortFromAddr breaks a dial address into the host and numeric port for
// telemetry attributes.  An address without a usable port maps to port zero.
func hostPortFromAddr(addr string) (string, int) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return addr, 0
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return host, 0
	}

	return host, port
}
