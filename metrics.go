package secretmanager

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/secretmanager/apierror"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    calls   *prometheus.CounterVec
//	    latency *prometheus.HistogramVec
//	}
//
//	func (p *PrometheusCollector) RecordCall(method string, duration time.Duration, err error) {
//	    p.calls.WithLabelValues(method).Inc()
//	    p.latency.WithLabelValues(method).Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordCall is called after each RPC with its method name (e.g.
	// "GetSecret"), the total time taken and the returned error.
	RecordCall(method string, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCall(string, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CallCount            atomic.Int64
	CallErrors           atomic.Int64
	CallTotalNanos       atomic.Int64
	SerializationErrors  atomic.Int64
	AuthenticationErrors atomic.Int64
	TransportErrors      atomic.Int64
	RemoteProtocolErrors atomic.Int64
	OtherErrors          atomic.Int64
}

// RecordCall implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCall(_ string, duration time.Duration, err error) {
	b.CallCount.Add(1)
	b.CallTotalNanos.Add(duration.Nanoseconds())
	if err == nil {
		return
	}
	b.CallErrors.Add(1)

	kind, _ := apierror.KindOf(err)
	switch kind {
	case apierror.KindSerialization:
		b.SerializationErrors.Add(1)
	case apierror.KindAuthentication:
		b.AuthenticationErrors.Add(1)
	case apierror.KindTransport:
		b.TransportErrors.Add(1)
	case apierror.KindRemoteProtocol:
		b.RemoteProtocolErrors.Add(1)
	default:
		b.OtherErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		CallCount:            b.CallCount.Load(),
		CallErrors:           b.CallErrors.Load(),
		CallAvgNanos:         b.getAvgCallNanos(),
		SerializationErrors:  b.SerializationErrors.Load(),
		AuthenticationErrors: b.AuthenticationErrors.Load(),
		TransportErrors:      b.TransportErrors.Load(),
		RemoteProtocolErrors: b.RemoteProtocolErrors.Load(),
		OtherErrors:          b.OtherErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgCallNanos() int64 {
	count := b.CallCount.Load()
	if count == 0 {
		return 0
	}
	return b.CallTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CallCount            int64
	CallErrors           int64
	CallAvgNanos         int64
	SerializationErrors  int64
	AuthenticationErrors int64
	TransportErrors      int64
	RemoteProtocolErrors int64
	OtherErrors          int64
}
