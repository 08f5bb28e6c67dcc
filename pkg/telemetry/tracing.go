package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lumen-ui/lumen/pkg/dom"
	"github.com/lumen-ui/lumen/pkg/patch"
)

const defaultTracerName = "lumen"

// TracingConfig configures trace emission.
type TracingConfig struct {
	// TracerProvider is the OpenTelemetry tracer provider.
	// Default: the global provider.
	TracerProvider trace.TracerProvider

	// TracerName names the tracer (default: "lumen").
	TracerName string
}

// TracingOption configures the tracer setup.
type TracingOption func(*TracingConfig)

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) TracingOption {
	return func(c *TracingConfig) {
		c.TracerProvider = tp
	}
}

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracingOption {
	return func(c *TracingConfig) {
		c.TracerName = name
	}
}

// Tracer wraps patch application in OpenTelemetry spans.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer builds a Tracer from the global (or configured) provider.
func NewTracer(opts ...TracingOption) *Tracer {
	config := TracingConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	if config.TracerProvider != nil {
		return &Tracer{tracer: config.TracerProvider.Tracer(config.TracerName)}
	}
	return &Tracer{tracer: otel.Tracer(config.TracerName)}
}

// Patch applies new onto old through p inside a span. The span records
// the root tag and the number of patch operations applied.
func (t *Tracer) Patch(ctx context.Context, p *patch.Patcher, old, new *dom.Node) {
	_, span := t.tracer.Start(ctx, "lumen.patch",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("lumen.patch.root_tag", tagOf(old)),
		),
	)
	defer span.End()

	var ops int
	p.ApplyWith(old, new, func(op patch.Op, tag string) {
		ops++
	})

	span.SetAttributes(attribute.Int("lumen.patch.ops", ops))
	span.SetStatus(codes.Ok, "")
}

func tagOf(n *dom.Node) string {
	if n == nil {
		return ""
	}
	return n.Tag
}
