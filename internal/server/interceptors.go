package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/tobi-adeyemi/extractflow/internal/common"
)

// RequestLogInterceptor tags each request with an ID and logs its outcome.
func RequestLogInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := uuid.NewString()
		ctx = common.WithRequestID(ctx, requestID)

		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		if err != nil {
			logger.Warn("rpc failed",
				"method", info.FullMethod,
				"request_id", requestID,
				"code", status.Code(err).String(),
				"elapsed_ms", elapsed.Milliseconds(),
				"error", err,
			)
			return resp, err
		}
		logger.Info("rpc handled",
			"method", info.FullMethod,
			"request_id", requestID,
			"elapsed_ms", elapsed.Milliseconds(),
		)
		return resp, nil
	}
}
