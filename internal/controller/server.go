package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/YairBetsalel/tutor-path-finder/internal/auth"
	"github.com/YairBetsalel/tutor-path-finder/internal/model"
)

// Server is the HTTP surface over the services.
type Server struct {
	accounts  *AccountHandlers
	sessions  *SessionHandlers
	calendar  *CalendarHandlers
	bonds     *BondHandlers
	tutors    *TutorHandlers
	ratings   *RatingHandlers
	jwtSecret string
	jwtIssuer string
	logger    *zap.Logger
}

type Deps struct {
	Accounts  AccountService
	Sessions  SessionService
	Calendar  CalendarService
	Bonds     BondService
	Tutors    TutorService
	Ratings   RatingService
	JWTSecret string
	JWTIssuer string
	Logger    *zap.Logger
}

func NewServer(deps Deps) *Server {
	return &Server{
		accounts:  &AccountHandlers{service: deps.Accounts, logger: deps.Logger},
		sessions:  &SessionHandlers{service: deps.Sessions},
		calendar:  &CalendarHandlers{service: deps.Calendar},
		bonds:     &BondHandlers{service: deps.Bonds},
		tutors:    &TutorHandlers{service: deps.Tutors},
		ratings:   &RatingHandlers{service: deps.Ratings},
		jwtSecret: deps.JWTSecret,
		jwtIssuer: deps.JWTIssuer,
		logger:    deps.Logger,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/auth/register", s.accounts.handleRegister)
	r.Post("/auth/login", s.accounts.handleLogin)
	r.Post("/auth/refresh", s.accounts.handleRefresh)
	r.With(s.authMiddleware).Post("/auth/logout", s.accounts.handleLogout)

	r.With(s.authMiddleware).Get("/me", s.sessions.handleMe)

	r.With(s.authMiddleware).Get("/calendar/{year}/{month}", s.calendar.handleMonth)
	r.With(s.authMiddleware).Get("/calendar/{year}/{month}/image.png", s.calendar.handleMonthImage)
	r.With(s.authMiddleware, s.requireRole(model.RoleTutor)).Post("/availability", s.calendar.handleAddAvailability)

	r.With(s.authMiddleware).Get("/tutors", s.tutors.handleDirectory)
	r.With(s.authMiddleware, s.requireRole(model.RoleTutor)).Put("/tutors/me", s.tutors.handleUpsertProfile)
	r.With(s.authMiddleware).Get("/tutors/{tutorId}", s.tutors.handleGet)

	r.With(s.authMiddleware, s.requireRole(model.RoleParent)).Post("/bond-requests", s.bonds.handleRequest)
	r.With(s.authMiddleware, s.requireRole(model.RoleParent)).Get("/bond-requests", s.bonds.handleParentRequests)
	r.With(s.authMiddleware, s.requireRole(model.RoleStudent)).Get("/bond-requests/pending", s.bonds.handlePending)
	r.With(s.authMiddleware, s.requireRole(model.RoleStudent)).Post("/bond-requests/{requestId}/approve", s.bonds.handleApprove)
	r.With(s.authMiddleware, s.requireRole(model.RoleStudent)).Post("/bond-requests/{requestId}/deny", s.bonds.handleDeny)
	r.With(s.authMiddleware, s.requireRole(model.RoleParent)).Get("/children", s.bonds.handleChildren)

	r.With(s.authMiddleware).Get("/children/{studentId}/metrics", s.ratings.handleMetrics)
	r.With(s.authMiddleware).Get("/children/{studentId}/ratings", s.ratings.handleRatings)
	r.With(s.authMiddleware, s.requireRole(model.RoleAdmin)).Post("/ratings", s.ratings.handleRate)

	r.Get("/qualifications/{subject}", s.tutors.handleQualifications)

	return r
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			writeError(w, http.StatusUnauthorized, "missing_token")
			return
		}

		claims, err := auth.ParseToken(s.jwtSecret, s.jwtIssuer, token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) requireRole(role model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := claimsFromContext(r.Context())
			if claims == nil || (claims.Role != role && claims.Role != model.RoleAdmin) {
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type claimsKey struct{}

func claimsFromContext(ctx context.Context) *auth.Claims {
	value := ctx.Value(claimsKey{})
	claims, _ := value.(*auth.Claims)
	return claims
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

var validate = validator.New()

func decodeJSON(r *http.Request, out interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return err
	}
	return validate.Struct(out)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
