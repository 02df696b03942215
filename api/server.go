package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rpupo63/ai-portfolio-site/auth"
	"github.com/rpupo63/ai-portfolio-site/config"
	"github.com/rpupo63/ai-portfolio-site/database"
	"github.com/rpupo63/ai-portfolio-site/services"
	"github.com/rpupo63/ai-portfolio-site/views"
	"github.com/rs/zerolog/log"
)

// Dependencies are built once in main and shared by every request.
type Dependencies struct {
	Database      database.Database
	Authenticator *auth.Authenticator
	Renderer      *views.Renderer
	Notifier      *services.ContactNotifier
}

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(c map[string]string, deps Dependencies) (Server, error) {
	if deps.Authenticator == nil || deps.Renderer == nil {
		return Server{}, fmt.Errorf("api: authenticator and renderer are required")
	}

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port)

	startupTime := time.Now()

	router := newRouter(deps, withConfig(c), withStartupTime(startupTime))

	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 30)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 30)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 120)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
	registry    *prometheus.Registry
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func withRegistry(registry *prometheus.Registry) func(*router) {
	return func(r *router) {
		r.registry = registry
	}
}

func newRouter(deps Dependencies, opts ...func(*router)) *chi.Mux {
	router := router{startupTime: time.Now()}
	for _, opt := range opts {
		opt(&router)
	}
	if router.registry == nil {
		router.registry = prometheus.NewRegistry()
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	metrics := newHTTPMetrics(router.registry)
	chiRouter.Use(metrics.instrument)

	acceptedOrigins := config.GetStringSlice(router.config, "ACCEPTED_ORIGINS")
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins))
	chiRouter.Use(corsMiddleware(acceptedOrigins))

	handlers := initializeHandlers(deps, config.IsProduction(router.config), router.startupTime)
	authMiddleware := newAuthMiddleware(deps.Authenticator)

	chiRouter.Method(http.MethodGet, "/metrics", metrics.handler)
	setupRoutes(chiRouter, handlers, authMiddleware)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msgf("HttpServer gracefully shut down after %s uptime", time.Since(s.startupTime).Round(time.Second))
	}
}
