package secretmanager

import (
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/hupe1980/secretmanager/codec"
)

// DefaultEndpoint is the Secret Manager REST endpoint.
const DefaultEndpoint = "https://secretmanager.googleapis.com"

type options struct {
	codec            codec.Codec
	metricsCollector MetricsCollector
	logger           *Logger
	limiter          *rate.Limiter
	tokenProvider    TokenProvider
	userAgent        string
	endpoint         string

	// err records an invalid option; New reports it.
	err error
}

// Option configures a Client.
type Option func(*options)

// WithCodec configures the codec used for request and response bodies.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCodecName selects a built-in codec by name ("json" or "go-json").
// New fails with ErrUnknownCodec for any other name.
func WithCodecName(name string) Option {
	return func(o *options) {
		c, ok := codec.ByName(name)
		if !ok {
			o.err = fmt.Errorf("%w: %q", ErrUnknownCodec, name)
			return
		}
		o.codec = c
	}
}

// WithMetricsCollector configures a metrics collector for monitoring calls.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &secretmanager.BasicMetricsCollector{}
//	client, _ := secretmanager.New(transport, secretmanager.WithMetricsCollector(metrics))
//	// ... use client ...
//	stats := metrics.GetStats()
//	fmt.Printf("Calls: %d, Avg latency: %dns\n", stats.CallCount, stats.CallAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for calls.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := secretmanager.NewJSONLogger(slog.LevelDebug)
//	client, _ := secretmanager.New(transport, secretmanager.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithRateLimiter paces calls through l. A call waits for a token before
// acquiring credentials; a wait cut short by the context fails with
// apierror.KindTransport.
//
// Example allowing 10 calls per second with bursts of 5:
//
//	secretmanager.WithRateLimiter(rate.NewLimiter(10, 5))
func WithRateLimiter(l *rate.Limiter) Option {
	return func(o *options) {
		o.limiter = l
	}
}

// WithTokenProvider configures the source of bearer tokens. Without one,
// requests carry no Authorization header.
func WithTokenProvider(tp TokenProvider) Option {
	return func(o *options) {
		o.tokenProvider = tp
	}
}

// WithUserAgent sets the User-Agent header of every request.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		o.userAgent = ua
	}
}

// WithEndpoint overrides DefaultEndpoint, for example to target an emulator.
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:            codec.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		userAgent:        "secretmanager-go",
		endpoint:         DefaultEndpoint,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
