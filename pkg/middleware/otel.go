package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for outlet applications.
const defaultTracerName = "outlet"

// OTelConfig configures the OpenTelemetry wrapper.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "outlet").
	TracerName string

	// IncludeLocation includes the location string in span attributes.
	// Locations can carry identifiers - disabled by default.
	IncludeLocation bool

	// Filter determines which resolutions to trace.
	// Return true to trace, false to skip. If nil, all are traced.
	Filter func(location string) bool

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry wrapper.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithIncludeLocation enables including the location in span attributes.
func WithIncludeLocation(include bool) OTelOption {
	return func(c *OTelConfig) {
		c.IncludeLocation = include
	}
}

// WithResolveFilter sets a filter function for resolutions.
func WithResolveFilter(filter func(location string) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// defaultOTelConfig returns the default OpenTelemetry configuration.
func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName:      defaultTracerName,
		IncludeLocation: false,
	}
}

// OpenTelemetry creates a wrapper that traces every resolution.
//
// Each resolution produces one span named "outlet.resolve" carrying the
// active index and, when enabled, the location string. The tracer comes
// from the global OpenTelemetry tracer provider; configure it in main()
// before resolving:
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
func OpenTelemetry(opts ...OTelOption) func(Resolver) Resolver {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Resolve tracer from global provider
	config.tracer = otel.Tracer(config.TracerName)

	return func(next Resolver) Resolver {
		return ResolverFunc(func(location string, defaultIndex int) int {
			if config.Filter != nil && !config.Filter(location) {
				return next.Resolve(location, defaultIndex)
			}

			_, span := config.tracer.Start(
				context.Background(),
				"outlet.resolve",
				trace.WithSpanKind(trace.SpanKindInternal),
			)
			defer span.End()

			active := next.Resolve(location, defaultIndex)

			attrs := []attribute.KeyValue{
				attribute.Int("outlet.active_index", active),
				attribute.Bool("outlet.matched", active != defaultIndex),
			}
			if config.IncludeLocation {
				attrs = append(attrs, attribute.String("outlet.location", location))
			}
			span.SetAttributes(attrs...)

			return active
		})
	}
}
