package routes

import (
	"net/http"

	"github.com/majisafi/waterdelivery/backend/internal/api/handlers"
	"github.com/majisafi/waterdelivery/backend/internal/api/middleware"
	"github.com/majisafi/waterdelivery/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	orderHandler    *handlers.OrderHandler
	feedbackHandler *handlers.FeedbackHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	orderHandler *handlers.OrderHandler,
	feedbackHandler *handlers.FeedbackHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		orderHandler:    orderHandler,
		feedbackHandler: feedbackHandler,

		metrics: metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Order endpoints
	r.mux.HandleFunc("POST /order", r.orderHandler.CreateOrder)
	r.mux.HandleFunc("GET /order", r.orderHandler.ListOrders)

	// Feedback endpoints
	r.mux.HandleFunc("POST /feedback", r.feedbackHandler.SubmitFeedback)
	r.mux.HandleFunc("GET /feedback", r.feedbackHandler.ListFeedbacks)
	r.mux.HandleFunc("GET /feedback/{id}", r.feedbackHandler.GetFeedback)

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so error responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
