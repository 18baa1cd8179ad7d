package middleware

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const RequestIDKey ctxKey = "request_id"

const requestIDHeader = "x-request-id"

// RequestID returns the id assigned by Logging, or "" outside an RPC.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Logging tags each call with a request id (taken from x-request-id
// metadata when the caller sent one) and logs method, code and duration.
func Logging(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		id := incomingRequestID(ctx)
		if id == "" {
			id = uuid.NewString()
		}
		ctx = context.WithValue(ctx, RequestIDKey, id)
		_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDHeader, id))

		start := time.Now()
		resp, err := next(ctx, req)
		code := status.Code(err)

		fields := []zap.Field{
			zap.String("request_id", id),
			zap.String("method", info.FullMethod),
			zap.Stringer("code", code),
			zap.Duration("duration", time.Since(start)),
		}
		switch code {
		case codes.OK:
			log.Info("rpc", fields...)
		case codes.Internal, codes.Unknown, codes.DataLoss, codes.Unavailable:
			log.Error("rpc", append(fields, zap.Error(err))...)
		default:
			log.Warn("rpc", append(fields, zap.Error(err))...)
		}
		return resp, err
	}
}

func incomingRequestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if vals := md.Get(requestIDHeader); len(vals) > 0 {
		return vals[0]
	}
	return ""
}
