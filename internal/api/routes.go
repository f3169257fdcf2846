package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/ignite/recommendations-email-client/internal/pkg/httputil"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterOptions configures the cross-cutting middleware.
type RouterOptions struct {
	AllowedOrigins []string
	// RequestsPerMinute per client IP on /v1 routes; 0 disables limiting.
	RequestsPerMinute int
}

// SetupRoutes configures all API routes.
func SetupRoutes(h *Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	// Server identity header
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Server-Binary", "cmd/server")
			next.ServeHTTP(w, req)
		})
	})

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Retry-After"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) { httputil.NotFound(w) })
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) { httputil.MethodNotAllowed(w) })

	r.Get("/health", h.HealthCheck)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		if opts.RequestsPerMinute > 0 {
			r.Use(rateLimit(opts.RequestsPerMinute))
		}

		r.Get("/enums", h.Enums)
		r.Post("/ccp/decode", h.DecodeCCP)

		r.Route("/urls", func(r chi.Router) {
			r.Post("/kohls-cash", h.KohlsCash)
			r.Post("/shipment", h.Shipment)
			r.Post("/bopus/pre-pickup", h.PrePickup)
			r.Post("/bopus/post-pickup", h.PostPickup)
		})
	})

	return r
}
