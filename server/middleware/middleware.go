package middleware

import (
	"net/http"
	"time"
)

// ResponseTimeHeader reports how long the handler took.
const ResponseTimeHeader = "X-Response-Time"

type timedWriter struct {
	http.ResponseWriter
	start       time.Time
	wroteHeader bool
}

func (w *timedWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		w.Header().Set(ResponseTimeHeader, time.Since(w.start).String())
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *timedWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// RequestTimer measures request processing time. The header is set when the
// status line is written, or after the handler returns if it never wrote.
func RequestTimer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := &timedWriter{ResponseWriter: w, start: time.Now()}
		next.ServeHTTP(tw, r)
		if !tw.wroteHeader {
			w.Header().Set(ResponseTimeHeader, time.Since(tw.start).String())
		}
	})
}

// CORS adds Cross-Origin Resource Sharing headers to every response. It
// never answers a request itself, so method checks stay with the routes.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, X-Request-ID")

		next.ServeHTTP(w, r)
	})
}
