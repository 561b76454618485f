package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/feedbacklens/feedbacklens-go/internal/middleware"
	"github.com/feedbacklens/feedbacklens-go/internal/service"
)

// RouterDeps is everything the HTTP layer needs.
type RouterDeps struct {
	Logger zerolog.Logger

	Auth     *service.AuthService
	Feedback *service.FeedbackService
	Admin    *service.AdminService

	DB    Pinger
	Model ModelStatus

	JWTSecret     string
	DashboardAuth bool

	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int

	// Metrics is served on /metrics when set.
	Metrics http.Handler
}

// NewRouter wires middleware and routes.
func NewRouter(d RouterDeps) chi.Router {
	authHandler := NewAuthHandler(d.Auth)
	feedbackHandler := NewFeedbackHandler(d.Feedback)
	adminHandler := NewAdminHandler(d.Admin)
	systemHandler := NewSystemHandler(d.DB, d.Model)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(hlog.NewHandler(d.Logger))
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Metrics)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", systemHandler.HandleHome)
	r.Get("/api/health", systemHandler.HandleHealth)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(d.RateLimitRPS, d.RateLimitBurst))
		r.Post("/signup", authHandler.HandleSignup)
		r.Post("/signin", authHandler.HandleSignin)
		r.Post("/admin/login", adminHandler.HandleLogin)
	})

	r.Post("/feedback", feedbackHandler.HandleSubmit)
	r.Post("/predict", feedbackHandler.HandlePredict)

	r.Group(func(r chi.Router) {
		if d.DashboardAuth {
			r.Use(middleware.AdminAuth(d.JWTSecret))
		}
		r.Get("/admin/dashboard", feedbackHandler.HandleDashboard)
	})

	return r
}
