package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// RouterOptions configures the middleware stack
type RouterOptions struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
	// RateLimit is the sustained requests per second; zero disables limiting.
	RateLimit float64
	Burst     int
}

// NewRouter wires the routes and middleware
func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	if opts.RequestTimeout == 0 {
		opts.RequestTimeout = 30 * time.Second
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(opts.RequestTimeout))

	// CORS: any client (the iPhone app included) may call the API
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		r.Use(RateLimit(rate.NewLimiter(rate.Limit(opts.RateLimit), burst)))
	}

	// Routes
	r.Get("/", h.Home)
	r.Get("/health", h.HealthCheck)
	r.Get("/predict_one", h.PredictOne)
	r.Post("/predict_fixtures", h.PredictFixtures)

	return r
}
