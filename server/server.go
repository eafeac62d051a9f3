// Package server exposes the Briefly REST API: assistant Q&A, daily
// digest, goal tracking, news briefings, auth, and calendar connections.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/brieflyhq/briefly/pkg/config"
	"github.com/brieflyhq/briefly/pkg/db"
	"github.com/brieflyhq/briefly/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/assistant.go -pkg mocks -skip-ensure -fmt goimports . Assistant
//go:generate moq -out mocks/responder.go -pkg mocks -skip-ensure -fmt goimports . Responder
//go:generate moq -out mocks/news.go -pkg mocks -skip-ensure -fmt goimports . NewsService
//go:generate moq -out mocks/tracker.go -pkg mocks -skip-ensure -fmt goimports . GoalTracker
//go:generate moq -out mocks/digest.go -pkg mocks -skip-ensure -fmt goimports . DigestComposer

// defaultUserID serves anonymous callers without a session
const defaultUserID = "default-user"

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	store     Store
	assistant Assistant
	responder Responder
	news      NewsService
	tracker   GoalTracker
	digest    DigestComposer
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Store interface for persistence operations
type Store interface {
	CreateUser(ctx context.Context, user *db.User) error
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CreateSession(ctx context.Context, userID string, ttl time.Duration, userAgent, ipAddress string) (string, error)
	GetSession(ctx context.Context, id string) (*db.SessionWithUser, error)
	DeleteSession(ctx context.Context, id string) error
	GetPreferences(ctx context.Context, userID string) (*db.Preferences, error)
	UpsertPreferences(ctx context.Context, prefs *db.Preferences) error
	UpdateLocation(ctx context.Context, userID, location string) error
	UpdateGoalState(ctx context.Context, userID, goals, progress string) error
	SaveCalendarConnection(ctx context.Context, conn *db.CalendarConnection) error
	GetCalendarConnection(ctx context.Context, userID string) (*db.CalendarConnection, error)
	DeleteCalendarConnections(ctx context.Context, userID string) error
}

// Assistant interface for the LLM-backed question answering
type Assistant interface {
	Enabled() bool
	Answer(ctx context.Context, question string) (string, error)
}

// Responder interface for the rule-based fallback answers
type Responder interface {
	Respond(question string) string
}

// NewsService interface for briefing operations
type NewsService interface {
	ByCategory(categories []string, maxStories int) domain.Briefing
	Local(location string, radiusKm int) domain.Briefing
	PersonalizedBriefing(ctx context.Context, prefs domain.Preferences, style domain.BriefingStyle) domain.Result[domain.Briefing]
}

// GoalTracker interface for success tracking operations
type GoalTracker interface {
	SetGoal(userID, goal string, deadline *time.Time)
	LogProgress(userID, achievement string)
	Insights(userID string, events []domain.CalendarEvent) domain.Insights
	ExportState(userID string) (goal, progress string)
	ImportState(userID, goal, progress string)
}

// DigestComposer interface for daily digest composition
type DigestComposer interface {
	Compose(userCtx domain.UserContext) domain.Digest
	ComposeSimple() domain.Digest
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetAuthConfig() (sessionTTL, cleanupInterval time.Duration)
	GetCalendarConfig() config.CalendarConfig
}

// New initializes a new server instance
func New(cfg ConfigProvider, store Store, assistant Assistant, responder Responder,
	news NewsService, tracker GoalTracker, digest DigestComposer, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		store:     store,
		assistant: assistant,
		responder: responder,
		news:      news,
		tracker:   tracker,
		digest:    digest,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("briefly", "brieflyhq", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
	s.router.Use(s.sessionMiddleware)
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.HandleFunc("GET /{$}", s.indexHandler)

	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /ask", s.askHandler)

		r.HandleFunc("GET /digest", s.digestHandler)
		r.HandleFunc("GET /digest/basic", s.digestBasicHandler)
		r.HandleFunc("POST /digest/goal", s.setGoalHandler)
		r.HandleFunc("POST /digest/progress", s.logProgressHandler)
		r.HandleFunc("GET /digest/insights", s.insightsHandler)

		r.HandleFunc("GET /news", s.newsHandler)
		r.HandleFunc("GET /news/local", s.localNewsHandler)
		r.HandleFunc("GET /news/briefing", s.briefingHandler)

		r.HandleFunc("POST /location", s.setLocationHandler)
		r.HandleFunc("GET /preferences", s.getPreferencesHandler)
		r.HandleFunc("PUT /preferences", s.updatePreferencesHandler)

		r.HandleFunc("POST /auth/login", s.loginHandler)
		r.HandleFunc("POST /auth/logout", s.logoutHandler)

		r.HandleFunc("GET /calendar/auth", s.calendarAuthHandler)
		r.HandleFunc("GET /calendar/callback", s.calendarCallbackHandler)
		r.HandleFunc("GET /calendar/status", s.calendarStatusHandler)
		r.HandleFunc("POST /calendar/disconnect", s.calendarDisconnectHandler)
	})
}

// indexHandler lists available endpoints
func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"name":    "Briefly",
		"version": s.version,
		"endpoints": []string{
			"GET /api/v1/status",
			"POST /api/v1/ask",
			"GET /api/v1/digest",
			"GET /api/v1/digest/basic",
			"POST /api/v1/digest/goal",
			"POST /api/v1/digest/progress",
			"GET /api/v1/digest/insights",
			"GET /api/v1/news",
			"GET /api/v1/news/local",
			"GET /api/v1/news/briefing",
			"POST /api/v1/location",
			"GET /api/v1/preferences",
			"PUT /api/v1/preferences",
			"POST /api/v1/auth/login",
			"POST /api/v1/auth/logout",
			"GET /api/v1/calendar/auth",
			"GET /api/v1/calendar/callback",
			"GET /api/v1/calendar/status",
			"POST /api/v1/calendar/disconnect",
		},
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
