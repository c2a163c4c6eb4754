// Package api exposes the HTTP surface: rounds, strokes, scorecards,
// leaderboards, golfers, and course reference reads.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	courseservice "github.com/Shore-Tour-Club/golf-tracker/app/modules/course/application"
	coursedb "github.com/Shore-Tour-Club/golf-tracker/app/modules/course/infrastructure/repositories"
	golferservice "github.com/Shore-Tour-Club/golf-tracker/app/modules/golfer/application"
	golferdb "github.com/Shore-Tour-Club/golf-tracker/app/modules/golfer/infrastructure/repositories"
	leaderboardservice "github.com/Shore-Tour-Club/golf-tracker/app/modules/leaderboard/application"
	roundservice "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/application"
	rounddb "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/infrastructure/repositories"
	scoreservice "github.com/Shore-Tour-Club/golf-tracker/app/modules/score/application"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/attr"
)

// Server holds the module services the HTTP handlers delegate to.
type Server struct {
	rounds       roundservice.Service
	scores       scoreservice.Service
	leaderboards leaderboardservice.Service
	golfers      golferservice.Service
	courses      courseservice.Service
	logger       *slog.Logger
	auth         *Authenticator
	limiter      *ipRateLimiter
}

// NewServer creates a Server. A nil authenticator disables bearer-token
// resolution; handlers then require explicit golfer IDs.
func NewServer(
	rounds roundservice.Service,
	scores scoreservice.Service,
	leaderboards leaderboardservice.Service,
	golfers golferservice.Service,
	courses courseservice.Service,
	logger *slog.Logger,
	auth *Authenticator,
) *Server {
	return &Server{
		rounds:       rounds,
		scores:       scores,
		leaderboards: leaderboards,
		golfers:      golfers,
		courses:      courses,
		logger:       logger,
		auth:         auth,
		limiter:      newIPRateLimiter(10, 30),
	}
}

// Router assembles the chi router with the standard middleware stack.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(s.limiter.middleware)
	if s.auth != nil {
		r.Use(s.auth.Middleware)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/rounds", s.handleStartRound)
		r.Post("/rounds/{roundID}/submit", s.handleSubmitRound)
		r.Get("/rounds/{roundID}/scores", s.handleGetRoundScores)
		r.Get("/rounds/{roundID}/leaderboard", s.handleGetLeaderboard)
		r.Post("/rounds/{roundID}/leaderboard/recompute", s.handleRecomputeLeaderboard)
		r.Get("/rounds/{roundID}/leaderboard/chart.png", s.handleLeaderboardChart)
		r.Get("/rounds/{roundID}/leaderboard/export.xlsx", s.handleLeaderboardExport)

		r.Post("/round-courses/{roundCourseID}/strokes", s.handleRecordStroke)
		r.Get("/round-courses/{roundCourseID}/scorecards/{golferID}", s.handleGetScorecard)
		r.Get("/round-courses/{roundCourseID}/scorecards/{golferID}/export.xlsx", s.handleScorecardExport)

		r.Post("/golfers", s.handleCreateGolfer)
		r.Get("/golfers/{golferID}", s.handleGetGolfer)
		r.Patch("/golfers/{golferID}", s.handleUpdateGolfer)
		r.Delete("/golfers/{golferID}", s.handleDeleteGolfer)
		r.Get("/clubs/{clubID}/golfers", s.handleListClubGolfers)

		r.Get("/courses", s.handleSearchCourses)
		r.Get("/courses/{courseID}/tees", s.handleListTees)
		r.Get("/courses/{courseID}/holes", s.handleListHoles)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			s.logger.Error("Failed to encode response", attr.Error(err))
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, errorResponse{Error: msg})
}

// serviceError maps domain errors onto HTTP statuses. Unknown errors are
// treated as internal and their detail withheld from the client.
func (s *Server) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, rounddb.ErrRoundNotFound),
		errors.Is(err, rounddb.ErrRoundCourseNotFound),
		errors.Is(err, golferdb.ErrGolferNotFound),
		errors.Is(err, coursedb.ErrCourseNotFound),
		errors.Is(err, leaderboardservice.ErrLeaderboardNotFound):
		s.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, rounddb.ErrDuplicateHoleEntry),
		errors.Is(err, rounddb.ErrRoundFinalized),
		errors.Is(err, golferdb.ErrUsernameTaken):
		s.respondError(w, http.StatusConflict, err.Error())
	default:
		s.logger.Error("Internal error serving request", attr.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
