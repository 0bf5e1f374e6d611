package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/internest/internest-backend/internal/catalog"
	"github.com/internest/internest-backend/internal/db"
	"github.com/internest/internest-backend/internal/server/ratelimit"
	"github.com/internest/internest-backend/internal/types"
)

// PreferenceStore is the persistence contract consumed by the preference
// handlers. *db.DB satisfies it; tests substitute fakes.
type PreferenceStore interface {
	SavePreference(ctx context.Context, input db.PreferenceInput) (int64, error)
	GetPreferenceBySession(ctx context.Context, sessionID string) (*db.Preference, error)
	ListPreferences(ctx context.Context, opts db.ListPreferencesOptions) ([]db.Preference, int, error)
	UpdatePreference(ctx context.Context, id int64, update db.PreferenceUpdate) (bool, error)
	DeletePreference(ctx context.Context, id int64) (bool, error)
	GetPreferenceStats(ctx context.Context) (*db.StatsOverview, error)
}

// SearchLogStore is the write-only audit sink for catalog searches.
type SearchLogStore interface {
	InsertSearchLog(ctx context.Context, input db.SearchLogInput) error
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	prefs       PreferenceStore
	searchLogs  SearchLogStore
	catalog     []catalog.Internship
	rateLimiter *ratelimit.Limiter
	devMode     bool
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	DevMode     bool
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	// Connect to database
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.EnsureSchema(context.Background()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	s := &Server{
		db:         database,
		prefs:      database,
		searchLogs: database,
		catalog:    catalog.Default(),
		devMode:    cfg.DevMode,
	}

	// Initialize rate limiter
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	mux := s.routes()

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRequestID(s.withRateLimit(s.withLogging(s.withCORS(mux)))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request mux.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Catalog endpoints
	mux.HandleFunc("GET /internships", s.handleListInternships)
	mux.HandleFunc("GET /internships/{id}", s.handleGetInternship)

	// Preference endpoints
	mux.HandleFunc("POST /preferences", s.handleSavePreference)
	mux.HandleFunc("GET /preferences", s.handleListPreferences)
	mux.HandleFunc("GET /preferences/{sessionId}", s.handleGetPreferenceBySession)
	mux.HandleFunc("PUT /preferences/{id}", s.handleUpdatePreference)
	mux.HandleFunc("DELETE /preferences/{id}", s.handleDeletePreference)

	// Statistics and export endpoints. These are more specific than
	// /preferences/{sessionId} (three segments vs two), so the ServeMux
	// routes them without conflict.
	mux.HandleFunc("GET /preferences/stats/overview", s.handleGetStats)
	mux.HandleFunc("GET /preferences/admin/all", s.handleAdminExport)

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Session-Id")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Rate limiting keys on the transport peer, not X-Forwarded-For
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withRequestID tags every request with an id for log correlation, keeping
// a caller-supplied X-Request-Id when present.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s request_id=%s", r.Method, r.URL.Path, r.RemoteAddr, w.Header().Get("X-Request-Id"))
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// envelope is the uniform response shape.
type envelope struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message,omitempty"`
	Data       any                `json:"data,omitempty"`
	Errors     []types.FieldError `json:"errors,omitempty"`
	Error      string             `json:"error,omitempty"`
	Pagination any                `json:"pagination,omitempty"`
	Filters    any                `json:"filters,omitempty"`
	Count      *int               `json:"count,omitempty"`
	Format     string             `json:"format,omitempty"`
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// respondError translates a typed error into the envelope shape. failMessage
// is the operation-specific message carried on storage failures.
func (s *Server) respondError(w http.ResponseWriter, err error, failMessage string) {
	status := HTTPStatus(err)

	switch e := err.(type) {
	case *ErrValidation:
		s.jsonResponse(w, status, envelope{
			Success: false,
			Message: "Validation errors",
			Errors:  e.Fields,
		})
	case *ErrNotFound:
		s.jsonResponse(w, status, envelope{Success: false, Message: e.Error()})
	default:
		// Storage and aggregation failures; detail only in development mode
		log.Printf("Request failed: %v", err)
		detail := "Internal server error"
		if s.devMode {
			detail = err.Error()
		}
		s.jsonResponse(w, status, envelope{
			Success: false,
			Message: failMessage,
			Error:   detail,
		})
	}
}

// parseQueryInt parses an integer query parameter with a default. A value
// that is not a valid integer or violates [min, max] yields a field error;
// max <= 0 means no upper bound.
func parseQueryInt(q url.Values, key string, defaultValue, min, max int) (int, *types.FieldError) {
	valStr := q.Get(key)
	if valStr == "" {
		return defaultValue, nil
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, &types.FieldError{Field: key, Message: "must be an integer"}
	}
	if val < min {
		return 0, &types.FieldError{Field: key, Message: fmt.Sprintf("must be >= %d", min)}
	}
	if max > 0 && val > max {
		return 0, &types.FieldError{Field: key, Message: fmt.Sprintf("must be <= %d", max)}
	}
	return val, nil
}

// extractClientID extracts the client identifier used for rate limiting.
func (s *Server) extractClientID(r *http.Request) string {
	// Get IP from RemoteAddr (format: "IP:port")
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If parsing fails, use the whole RemoteAddr
		return r.RemoteAddr
	}
	return ip
}

// clientIP is the best-effort caller address stored with preference and
// search log rows. X-Forwarded-For wins when present.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
