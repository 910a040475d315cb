package middleware

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	LoggerKey    contextKey = "logger"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// UnmatchedRoute labels requests that matched no route pattern.
const UnmatchedRoute = "unmatched"
