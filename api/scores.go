package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// handleGetRoundScores computes the per-segment scores for a round on demand.
// Unlike the leaderboard, the response keeps one row per golfer per course
// segment rather than summing across segments.
func (s *Server) handleGetRoundScores(w http.ResponseWriter, r *http.Request) {
	roundID, err := sharedtypes.ParseRoundID(chi.URLParam(r, "roundID"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid round ID")
		return
	}

	playType, aggregates, err := s.rounds.GolferRoundAggregates(r.Context(), roundID)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	result, err := s.scores.ComputeRoundScores(r.Context(), roundID, playType, aggregates)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if result.IsFailure() {
		s.respondJSON(w, failureStatus(result.Failure.Reason), result.Failure)
		return
	}
	s.respondJSON(w, http.StatusOK, result.Success)
}
