// internal/httpserver/server.go
//
// HTTP surface for the wordhint solver.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Solve endpoint: POST /solve (token-gated when API_TOKEN_SECRET is set).
//   - JSON 404 for easier debugging.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled.
//   - The token gate verifies an HS256 JWT bearer token. With no secret
//     configured the API is open (dev mode).
//   - The handler is a thin adapter over solver.SolveLine; the server
//     keeps no per-request or cross-request solver state.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/nlowes/wordhint/internal/constraint"
	"github.com/nlowes/wordhint/internal/solver"
)

// Server bundles the router; the solver itself is stateless.
type Server struct {
	r *chi.Mux
}

// New constructs a Server, installs middleware, and registers routes.
func New() *Server {
	s := &Server{r: chi.NewRouter()}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordhint","endpoints":["/health","POST /solve"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Solve endpoint — gated only when a token secret is configured.
	s.r.With(requireToken()).Post("/solve", s.handleSolve)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireToken enforces a valid HS256 JWT bearer token when
// API_TOKEN_SECRET is set. With no secret configured it passes every
// request through untouched.
func requireToken() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			secret := os.Getenv("API_TOKEN_SECRET")
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}
			tok := bearerToken(r)
			if tok == "" {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			parsed, err := jwt.Parse(tok, func(t *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !parsed.Valid {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts a bearer token from the Authorization header.
func bearerToken(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// ------------------------------ SOLVE --------------------------------------

// solveReq/Res payloads for POST /solve.
type solveReq struct {
	Line string `json:"line"` // raw constraint line, e.g. "hg3 ly15"
}
type solveRes struct {
	Patterns []string `json:"patterns"`
	Count    int      `json:"count"`
}

// handleSolve parses the submitted line and returns every consistent
// pattern. Parse failures are 400s carrying the error text; an empty
// solution set is a normal 200 with an empty array.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	patterns, err := solver.SolveLine(req.Line)
	if err != nil {
		writeSolveError(w, err)
		return
	}
	res := solveRes{Patterns: make([]string, 0, len(patterns)), Count: len(patterns)}
	for _, p := range patterns {
		res.Patterns = append(res.Patterns, p.String())
	}
	_ = json.NewEncoder(w).Encode(res)
}

// writeSolveError maps parse/generation errors onto a 400 with a stable
// machine-readable code plus the human-readable detail.
func writeSolveError(w http.ResponseWriter, err error) {
	code := "invalid_input"
	switch {
	case errors.Is(err, constraint.ErrMalformedToken):
		code = "malformed_token"
	case errors.Is(err, constraint.ErrUnrecognizedKind):
		code = "unrecognized_kind"
	case errors.Is(err, constraint.ErrInvalidGreenPattern):
		code = "invalid_green_pattern"
	case errors.Is(err, constraint.ErrInvalidYellowSlot):
		code = "invalid_yellow_slot"
	case errors.Is(err, constraint.ErrMalformedYellowPattern):
		code = "malformed_yellow_pattern"
	case errors.Is(err, solver.ErrConflictingGreen):
		code = "conflicting_green_constraint"
	}
	log.Debug().Err(err).Str("code", code).Msg("solve rejected")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code, "detail": err.Error()})
}
