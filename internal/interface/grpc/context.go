package grpcadapter

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const (
	ctxKeyUserID    ctxKey = "user-id"
	ctxKeyRequestID ctxKey = "request-id"
)

// ----- user_id -----

// WithUserID は userID を context に埋め込む
func WithUserID(ctx context.Context, userID string) context.Context {
	if userID == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKeyUserID, userID)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(ctxKeyUserID).(string)
	return s, ok
}

// ----- request_id -----

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, rid)
}

func RequestIDFromContext(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(ctxKeyRequestID).(string)
	return s, ok
}

// requestFields は ctx にある request_id / user_id をログ用フィールドにする
func requestFields(ctx context.Context, fields ...zap.Field) []zap.Field {
	if rid, ok := RequestIDFromContext(ctx); ok {
		fields = append(fields, zap.String("request_id", rid))
	}
	if uid, ok := UserIDFromContext(ctx); ok {
		fields = append(fields, zap.String("user_id", uid))
	}
	return fields
}
