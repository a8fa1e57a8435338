package grpc

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const traceIDMetadataKey = "x-trace-id"

// UnaryInterceptor attaches a request-scoped logger carrying trace_id to
// the context and writes one access log line per call, mirroring the HTTP
// trace ID and logging middlewares.
func (h *Handler) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		var traceID string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(traceIDMetadataKey); len(values) > 0 {
				traceID = values[0]
			}
		}
		traceID = h.idGenerator.Resolve(traceID)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx = l.WithContext(ctx)
		_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDMetadataKey, traceID))

		start := time.Now()
		resp, err := handler(ctx, req)

		l.Info().
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Send()

		return resp, err
	}
}
