package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/feedbacklens/feedbacklens-go/internal/classifier"
	"github.com/feedbacklens/feedbacklens-go/internal/config"
	"github.com/feedbacklens/feedbacklens-go/internal/handler"
	"github.com/feedbacklens/feedbacklens-go/internal/logging"
	"github.com/feedbacklens/feedbacklens-go/internal/metrics"
	"github.com/feedbacklens/feedbacklens-go/internal/nlp"
	"github.com/feedbacklens/feedbacklens-go/internal/repository"
	"github.com/feedbacklens/feedbacklens-go/internal/service"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLogger := logging.New("", "")
		bootLogger.Fatal().Err(err).Msg("invalid configuration")
	}

	logger := logging.New(cfg.Env, cfg.LogLevel)
	if envErr != nil {
		logger.Warn().Msg("no .env file found, using environment variables")
	}

	metrics.MustRegister(prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := repository.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		logger.Fatal().Err(err).Msg("schema migration failed")
	}
	logger.Info().Str("dialect", string(db.Dialect())).Msg("database ready")

	clf, err := classifier.Load(cfg.VectorizerPath, cfg.ModelPath)
	if err != nil {
		logger.Error().Err(err).
			Str("model", cfg.ModelPath).
			Str("vectorizer", cfg.VectorizerPath).
			Msg("error loading models; /feedback and /predict will fail")
		clf = classifier.Unavailable(err)
	} else {
		logger.Info().Strs("labels", clf.Labels()).Msg("models loaded successfully")
	}
	metrics.SetModelLoaded(clf.Ready())

	normalizer, err := nlp.NewEnglishNormalizer()
	if err != nil {
		logger.Fatal().Err(err).Msg("loading normalizer")
	}

	if !cfg.AdminConfigured() {
		logger.Warn().Msg("ADMIN_USERNAME/ADMIN_PASSWORD not set; admin login is disabled")
	}

	router := handler.NewRouter(handler.RouterDeps{
		Logger:             logger,
		Auth:               service.NewAuthService(repository.NewUserRepository(db), cfg.JWTSecret, cfg.JWTExpiry),
		Feedback:           service.NewFeedbackService(repository.NewFeedbackRepository(db), normalizer, clf),
		Admin:              service.NewAdminService(cfg.Admin.Username, cfg.Admin.Password, cfg.JWTSecret, cfg.JWTExpiry),
		DB:                 db,
		Model:              clf,
		JWTSecret:          cfg.JWTSecret,
		DashboardAuth:      cfg.Admin.DashboardAuth,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:       cfg.RateLimit.RPS,
		RateLimitBurst:     cfg.RateLimit.Burst,
		Metrics:            promhttp.Handler(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      35 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("server error")
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server forced shutdown")
		os.Exit(1)
	}

	logger.Info().Msg("server stopped")
}
