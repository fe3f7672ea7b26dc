package grpcapp

import (
	"context"
	"fmt"
	"net"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// PlannerService is the health service name reported next to the overall ("") status.
const PlannerService = "travelagentic.Planner"

// App exposes grpc.health.v1 and reflection so orchestrators can probe the
// brief server without going through HTTP.
type App struct {
	log        *zap.Logger
	gRPCServer *grpc.Server
	health     *health.Server
	addr       string
}

func New(log *zap.Logger, host string, port int) *App {
	if log == nil {
		log = zap.NewNop()
	}

	gRPCServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			observeInterceptor(log),
			recoveryInterceptor(log),
		),
		grpc.ChainStreamInterceptor(
			streamRecoveryInterceptor(log),
		),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(gRPCServer, healthServer)
	reflection.Register(gRPCServer)

	app := &App{
		log:        log,
		gRPCServer: gRPCServer,
		health:     healthServer,
		addr:       fmt.Sprintf("%s:%d", host, port),
	}
	app.SetServing(true)

	return app
}

// SetServing flips both the overall and the planner health status.
func (a *App) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	a.health.SetServingStatus("", st)
	a.health.SetServingStatus(PlannerService, st)
}

func (a *App) Run() error {
	const op = "grpcapp.Run"

	l, err := net.Listen("tcp", a.addr)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return a.Serve(l)
}

// Serve blocks on an already bound listener.
func (a *App) Serve(l net.Listener) error {
	const op = "grpcapp.Serve"

	a.log.Info("gRPC health server started", zap.String("addr", l.Addr().String()))

	if err := a.gRPCServer.Serve(l); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Stop reports NOT_SERVING to watchers before draining connections.
func (a *App) Stop() {
	a.log.Info("stopping gRPC health server", zap.String("addr", a.addr))
	a.health.Shutdown()
	a.gRPCServer.GracefulStop()
}

// observeInterceptor continues the caller's trace from incoming metadata and
// records the resulting gRPC code on both the span and the log line.
func observeInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	tracer := otel.Tracer("travelagentic/grpc")

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		ctx = extractTrace(ctx)
		ctx, span := tracer.Start(ctx, info.FullMethod,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attribute.String("rpc.system", "grpc")),
		)
		defer span.End()

		resp, err := handler(ctx, req)

		code := status.Code(err)
		span.SetAttributes(attribute.Int("rpc.grpc.status_code", int(code)))
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, code.String())
			log.Warn("gRPC request failed", append(fields, zap.Error(err))...)
			return resp, err
		}

		log.Debug("gRPC request", fields...)
		return resp, nil
	}
}

func extractTrace(ctx context.Context) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ctx
	}
	return otel.GetTextMapPropagator().Extract(ctx, incomingMD(md))
}

// incomingMD is a read-only propagation.TextMapCarrier over request metadata.
type incomingMD metadata.MD

func (m incomingMD) Get(key string) string {
	if v := metadata.MD(m).Get(key); len(v) > 0 {
		return v[0]
	}
	return ""
}

func (incomingMD) Set(string, string) {}

func (m incomingMD) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func recoveryInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer recoverAsInternal(log, info.FullMethod, &err)
		return handler(ctx, req)
	}
}

func streamRecoveryInterceptor(log *zap.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
		defer recoverAsInternal(log, info.FullMethod, &err)
		return handler(srv, ss)
	}
}

// recoverAsInternal must be deferred directly by the interceptor.
func recoverAsInternal(log *zap.Logger, method string, err *error) {
	if r := recover(); r != nil {
		log.Error("panic recovered", zap.Any("panic", r), zap.String("method", method))
		*err = status.Error(codes.Internal, "internal error")
	}
}
