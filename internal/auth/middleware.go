package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// Scopes used by the wellness service.
const (
	ScopeCatalogRead = "catalog:read"
	ScopePlansWrite  = "plans:write"
)

// Skipper allows callers to bypass authentication for specific requests.
type Skipper func(r *http.Request) bool

// ScopeResolver names the scope a request needs. An empty result means any valid token is enough.
type ScopeResolver func(r *http.Request) string

// Middleware provides HTTP middleware for bearer-token validation.
type Middleware struct {
	Config  Config
	Skipper Skipper
	Scope   ScopeResolver
}

// NewMiddleware constructs middleware that leaves probes and metrics open,
// requires plans:write for writes and catalog:read for everything else.
func NewMiddleware(cfg Config) Middleware {
	return Middleware{
		Config: cfg,
		Skipper: func(r *http.Request) bool {
			return r.URL.Path == "/healthz" || r.URL.Path == "/metrics" || r.Method == http.MethodOptions
		},
		Scope: func(r *http.Request) string {
			if r.Method == http.MethodPost {
				return ScopePlansWrite
			}
			return ScopeCatalogRead
		},
	}
}

// Wrap wraps an http.Handler with authentication.
func (m Middleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.Skipper != nil && m.Skipper(r) {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.parseRequest(r)
		if err != nil {
			detail := ErrInvalidToken.Error()
			if errors.Is(err, ErrMissingToken) {
				detail = ErrMissingToken.Error()
			}
			writeError(w, http.StatusUnauthorized, "unauthorized", detail)
			return
		}
		if m.Scope != nil {
			if scope := m.Scope(r); scope != "" && !claims.HasScope(scope) {
				writeError(w, http.StatusForbidden, "forbidden", "scope "+scope+" required")
				return
			}
		}
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

func (m Middleware) parseRequest(r *http.Request) (*Claims, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, ErrMissingToken
	}
	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return nil, ErrInvalidToken
	}
	return Parse(header[len("Bearer "):], m.Config)
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"type": code, "detail": detail})
}
