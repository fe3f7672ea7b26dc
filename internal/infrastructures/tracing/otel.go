package tracing

import (
	"fmt"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

const (
	defaultCollector = "http://localhost:14268/api/traces"
	collectorPath    = "/api/traces"
)

// InitTracer installs the global tracer provider and the W3C propagators.
// An empty collector keeps spans in-process without exporting them.
func InitTracer(serviceName, collector string) (*tracesdk.TracerProvider, error) {
	opts := []tracesdk.TracerProviderOption{
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		)),
	}

	if strings.TrimSpace(collector) != "" {
		endpoint, err := CollectorEndpoint(collector)
		if err != nil {
			return nil, err
		}
		exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(endpoint)))
		if err != nil {
			return nil, fmt.Errorf("create jaeger exporter: %w", err)
		}
		opts = append(opts, tracesdk.WithBatcher(exp))
	}

	tp := tracesdk.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// CollectorEndpoint expands "host", "host:port" or a base URL into the jaeger
// HTTP collector URL. An existing path prefix is kept.
func CollectorEndpoint(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultCollector, nil
	}
	if !strings.Contains(value, "://") {
		value = "http://" + value
	}

	u, err := url.Parse(value)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid jaeger collector %q", value)
	}
	if !strings.HasSuffix(u.Path, collectorPath) {
		u.Path = strings.TrimSuffix(u.Path, "/") + collectorPath
	}
	return u.String(), nil
}
