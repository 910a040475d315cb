// Package routing wires the HTTP routes of the travel planner onto a chi
// router: the /ask/ API, the static pages, health and metrics.
package routing

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/teilomillet/travelplanner/errors"
	"github.com/teilomillet/travelplanner/server/metrics"
	"github.com/teilomillet/travelplanner/server/middleware"
	"go.uber.org/zap"
)

// Route maps a path to a named handler. A route without Methods accepts
// every method and leaves method checks to the handler.
type Route struct {
	Path    string
	Handler string
	Methods []string
}

// DefaultRoutes is the route table of the service.
var DefaultRoutes = []Route{
	{Path: "/ask/", Handler: "ask"},
	{Path: "/index/", Handler: "index", Methods: []string{http.MethodGet}},
	{Path: "/destinations/", Handler: "destinations", Methods: []string{http.MethodGet}},
	{Path: "/guides/", Handler: "guides", Methods: []string{http.MethodGet}},
	{Path: "/testimonials/", Handler: "testimonials", Methods: []string{http.MethodGet}},
	{Path: "/help/", Handler: "help", Methods: []string{http.MethodGet}},
}

// Router handles HTTP routing for the service.
type Router struct {
	router   chi.Router              // Chi router instance for HTTP routing
	handlers map[string]http.Handler // Map of handler names to implementations
	logger   *zap.Logger
}

// NewRouter creates a router with the global middleware stack and the given
// routes. Metrics are optional; with nil metrics /metrics is not served.
func NewRouter(routes []Route, handlers map[string]http.Handler, m *metrics.Metrics, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Router{
		router:   chi.NewRouter(),
		handlers: handlers,
		logger:   logger,
	}

	// Add global middleware stack. Recovery sits inside Logging and metrics
	// so recovered panics are logged and counted as 500s.
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.RequestTimer)
	r.router.Use(middleware.Logging(logger))
	if m != nil {
		r.router.Use(middleware.PrometheusMetrics(m))
	}
	r.router.Use(middleware.Recovery(logger))
	r.router.Use(middleware.CORS)
	r.router.Use(chimw.GetHead)

	r.router.NotFound(notFound)
	r.router.MethodNotAllowed(methodNotAllowed)

	r.setupRoutes(routes)

	r.router.Get("/", http.RedirectHandler("/index/", http.StatusFound).ServeHTTP)
	r.router.Get("/health", healthCheck)
	if m != nil {
		RegisterMetricsRoutes(r.router, m)
	}

	return r
}

// setupRoutes registers every route whose handler is known.
func (r *Router) setupRoutes(routes []Route) {
	for _, route := range routes {
		handler, ok := r.handlers[route.Handler]
		if !ok {
			r.logger.Error("handler not found",
				zap.String("handler", route.Handler),
				zap.String("path", route.Path),
			)
			continue
		}

		if len(route.Methods) == 0 {
			r.router.Handle(route.Path, handler)
			continue
		}
		for _, method := range route.Methods {
			r.router.Method(method, route.Path, handler)
		}
	}
}

func healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func notFound(w http.ResponseWriter, req *http.Request) {
	errors.WriteError(w, errors.NewNotFoundError(middleware.GetRequestID(req.Context()), req.URL.Path))
}

func methodNotAllowed(w http.ResponseWriter, req *http.Request) {
	errors.WriteError(w, errors.NewMethodNotAllowedError(middleware.GetRequestID(req.Context()), req.Method))
}

// ServeHTTP implements the http.Handler interface.
// Delegates request handling to the underlying Chi router.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
