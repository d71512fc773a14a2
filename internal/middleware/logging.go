package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/metrics"
)

// LoggingInterceptor logs every RPC with its procedure, user, duration and
// error code, and records the duration histogram.
func LoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			// Runs inside the auth interceptor, so the user is known here.
			userID := GetUserID(ctx)
			elapsed := time.Since(start)
			code := "ok"

			if err != nil {
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					code = connectErr.Code().String()
					logger.WarnContext(ctx, "RPC error",
						"procedure", procedure,
						"code", code,
						"error", connectErr.Message(),
						"user_id", userID,
						"duration_ms", elapsed.Milliseconds(),
					)
				} else {
					code = connect.CodeUnknown.String()
					logger.ErrorContext(ctx, "RPC error",
						"procedure", procedure,
						"error", err,
						"user_id", userID,
						"duration_ms", elapsed.Milliseconds(),
					)
				}
			} else {
				logger.InfoContext(ctx, "RPC ok",
					"procedure", procedure,
					"user_id", userID,
					"duration_ms", elapsed.Milliseconds(),
				)
			}

			metrics.RPCDuration.WithLabelValues(procedure, code).Observe(elapsed.Seconds())
			return resp, err
		}
	}
}
