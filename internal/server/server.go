// internal/server/server.go
package server

import (
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	todov1 "github.com/hijjiri/todo-grpc/api/todo/v1"
	grpcadapter "github.com/hijjiri/todo-grpc/internal/interface/grpc"
)

// ヘルスチェックは認証無しで通す
const healthMethodPrefix = "/grpc.health.v1.Health/"

type Options struct {
	RequestTimeout time.Duration

	// nil なら認証しない
	Validator grpcadapter.TokenValidator

	// nil ならメトリクスを取らない
	Metrics *grpcadapter.Metrics

	// otelgrpc の stats handler を付けるか
	Tracing bool
}

// New は interceptor チェーンを組んだ gRPC サーバを作り、TodoService と Health を登録する。
// 順番: recovery → request-id → metrics → logging → timeout → auth → handler
func New(logger *zap.Logger, opts Options, todo todov1.TodoServiceServer, healthSrv *health.Server) *grpc.Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	unary := []grpc.UnaryServerInterceptor{
		grpcadapter.NewRecoveryUnaryInterceptor(logger),
		grpcadapter.NewRequestIDUnaryInterceptor(),
	}
	stream := []grpc.StreamServerInterceptor{
		grpcadapter.NewRecoveryStreamInterceptor(logger),
		grpcadapter.NewRequestIDStreamInterceptor(),
	}

	if opts.Metrics != nil {
		unary = append(unary, opts.Metrics.UnaryInterceptor())
		stream = append(stream, opts.Metrics.StreamInterceptor())
	}

	unary = append(unary,
		grpcadapter.NewLoggingUnaryInterceptor(logger),
		grpcadapter.NewTimeoutUnaryInterceptor(logger, opts.RequestTimeout),
	)
	stream = append(stream, grpcadapter.NewLoggingStreamInterceptor(logger))

	if opts.Validator != nil {
		unary = append(unary, grpcadapter.NewAuthUnaryInterceptor(logger, opts.Validator, healthMethodPrefix))
		stream = append(stream, grpcadapter.NewAuthStreamInterceptor(logger, opts.Validator, healthMethodPrefix))
	}

	serverOpts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(unary...),
		grpc.ChainStreamInterceptor(stream...),
	}
	if opts.Tracing {
		serverOpts = append(serverOpts, grpc.StatsHandler(otelgrpc.NewServerHandler()))
	}

	s := grpc.NewServer(serverOpts...)
	todov1.RegisterTodoServiceServer(s, todo)
	if healthSrv != nil {
		healthpb.RegisterHealthServer(s, healthSrv)
	}
	return s
}
