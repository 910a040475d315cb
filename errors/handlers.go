package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// LogError logs an error with its context. Client errors are logged at warn
// level, everything else at error level. A nil logger falls back to
// DefaultLogger.
func LogError(logger *zap.Logger, err error, requestID string) {
	if logger == nil {
		logger = DefaultLogger
	}

	var plannerErr *PlannerError
	if As(err, &plannerErr) {
		fields := []zap.Field{
			zap.String("error_type", string(plannerErr.Type)),
			zap.String("message", plannerErr.Message),
			zap.Int("code", plannerErr.Code),
			zap.String("request_id", requestID),
			zap.Any("details", plannerErr.Details),
		}
		if cause := plannerErr.Unwrap(); cause != nil {
			fields = append(fields, zap.NamedError("cause", cause))
		}
		if plannerErr.Code < http.StatusInternalServerError {
			logger.Warn("request error", fields...)
			return
		}
		logger.Error("request error", fields...)
		return
	}

	logger.Error("unexpected error",
		zap.Error(err),
		zap.String("request_id", requestID),
	)
}
