package grpcadapter

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewLoggingUnaryInterceptor logs unary RPCs with method, code, duration, request_id and user_id(あれば).
func NewLoggingUnaryInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		start := time.Now()

		resp, err := handler(ctx, req)

		logRPC(logger, ctx, "gRPC unary request", info.FullMethod, time.Since(start), err)
		return resp, err
	}
}

// NewLoggingStreamInterceptor logs stream RPCs the same way.
func NewLoggingStreamInterceptor(logger *zap.Logger) grpc.StreamServerInterceptor {
	return func(
		srv any,
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		start := time.Now()

		err := handler(srv, ss)

		logRPC(logger, ss.Context(), "gRPC stream request", info.FullMethod, time.Since(start), err)
		return err
	}
}

func logRPC(logger *zap.Logger, ctx context.Context, msg, method string, d time.Duration, err error) {
	code := status.Code(err)
	fields := requestFields(ctx,
		zap.String("method", method),
		zap.String("code", code.String()),
		zap.Duration("duration", d),
	)

	switch code {
	case codes.OK:
		logger.Info(msg, fields...)
	case codes.InvalidArgument, codes.NotFound, codes.AlreadyExists, codes.Unauthenticated, codes.Canceled:
		// クライアント起因は warn に留める
		logger.Warn(msg, append(fields, zap.Error(err))...)
	default:
		logger.Error(msg, append(fields, zap.Error(err))...)
	}
}
