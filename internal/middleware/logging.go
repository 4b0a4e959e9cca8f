package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// LoggingInterceptor logs every unary RPC with its procedure, caller, duration
// and, on failure, the connect code. Client errors log at WARN, the rest at ERROR.
func LoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			c := &caller{userID: GetUserID(ctx)}

			resp, err := next(context.WithValue(ctx, callerKey, c), req)

			attrs := []any{
				"procedure", req.Spec().Procedure,
				"user_id", c.userID, // empty if unauthenticated
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if reqID := chimw.GetReqID(ctx); reqID != "" {
				attrs = append(attrs, "request_id", reqID)
			}

			if err == nil {
				logger.Info("RPC ok", attrs...)
				return resp, nil
			}

			var connectErr *connect.Error
			if errors.As(err, &connectErr) && connectErr.Code() != connect.CodeInternal && connectErr.Code() != connect.CodeUnknown {
				logger.Warn("RPC error", append(attrs, "code", connectErr.Code().String(), "error", connectErr.Message())...)
			} else {
				logger.Error("RPC error", append(attrs, "error", err)...)
			}
			return resp, err
		}
	}
}
