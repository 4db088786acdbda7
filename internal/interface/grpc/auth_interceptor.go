package grpcadapter

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/hijjiri/todo-grpc/internal/auth"
)

// TokenValidator は bearer token を検証して subject（ユーザーID相当）を返す
type TokenValidator interface {
	ValidateToken(raw string) (string, error)
}

// Unary 用の認証インターセプタ。
// skipMethods（FullMethod のプレフィックス）に当たる RPC は素通し（ヘルスチェック用）。
func NewAuthUnaryInterceptor(
	logger *zap.Logger,
	validator TokenValidator,
	skipMethods ...string,
) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if skipped(info.FullMethod, skipMethods) {
			return handler(ctx, req)
		}

		newCtx, err := authenticate(ctx, logger, validator)
		if err != nil {
			return nil, err
		}
		return handler(newCtx, req)
	}
}

// Stream 用の認証インターセプタ
func NewAuthStreamInterceptor(
	logger *zap.Logger,
	validator TokenValidator,
	skipMethods ...string,
) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if skipped(info.FullMethod, skipMethods) {
			return handler(srv, ss)
		}

		newCtx, err := authenticate(ss.Context(), logger, validator)
		if err != nil {
			return err
		}
		return handler(srv, &wrappedStream{ServerStream: ss, ctx: newCtx})
	}
}

func skipped(method string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(method, p) {
			return true
		}
	}
	return false
}

func authenticate(ctx context.Context, logger *zap.Logger, validator TokenValidator) (context.Context, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing metadata")
	}

	values := md.Get("authorization")
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing authorization header")
	}

	raw := strings.TrimSpace(values[0])
	// "Bearer xxx" 形式ならプレフィックスを剥がす
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		raw = strings.TrimSpace(raw[len("bearer "):])
	}

	sub, err := validator.ValidateToken(raw)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}
		logger.Error("authenticator error", zap.Error(err))
		return nil, status.Error(codes.Internal, "auth internal error")
	}

	return WithUserID(ctx, sub), nil
}
