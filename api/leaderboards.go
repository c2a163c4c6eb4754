package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	leaderboardservice "github.com/Shore-Tour-Club/golf-tracker/app/modules/leaderboard/application"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/attr"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// leaderboardFailureStatus maps leaderboard failure reasons onto statuses.
// A missing board, or a recompute of a round with no recorded strokes, is
// 404; everything else is a validation failure.
func leaderboardFailureStatus(reason string) int {
	switch reason {
	case leaderboardservice.ErrLeaderboardNotFound.Error(), leaderboardservice.ErrNoAggregates.Error():
		return http.StatusNotFound
	default:
		return http.StatusUnprocessableEntity
	}
}

// leaderboardPlayType reads the play_type query parameter, defaulting to
// stroke play when omitted.
func leaderboardPlayType(r *http.Request) sharedtypes.PlayType {
	if v := r.URL.Query().Get("play_type"); v != "" {
		return sharedtypes.PlayType(v)
	}
	return sharedtypes.PlayTypeStroke
}

func (s *Server) handleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	roundID, err := sharedtypes.ParseRoundID(chi.URLParam(r, "roundID"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid round ID")
		return
	}

	result, err := s.leaderboards.GetLeaderboard(r.Context(), roundID, leaderboardPlayType(r))
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if result.IsFailure() {
		s.respondJSON(w, leaderboardFailureStatus(result.Failure.Reason), result.Failure)
		return
	}
	s.respondJSON(w, http.StatusOK, result.Success)
}

func (s *Server) handleRecomputeLeaderboard(w http.ResponseWriter, r *http.Request) {
	roundID, err := sharedtypes.ParseRoundID(chi.URLParam(r, "roundID"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid round ID")
		return
	}

	result, err := s.leaderboards.Recompute(r.Context(), roundID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if result.IsFailure() {
		s.respondJSON(w, leaderboardFailureStatus(result.Failure.Reason), result.Failure)
		return
	}
	s.respondJSON(w, http.StatusOK, result.Success)
}

func (s *Server) handleLeaderboardChart(w http.ResponseWriter, r *http.Request) {
	roundID, err := sharedtypes.ParseRoundID(chi.URLParam(r, "roundID"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid round ID")
		return
	}

	png, err := s.leaderboards.RenderChart(r.Context(), roundID, leaderboardPlayType(r))
	if err != nil {
		s.serviceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		s.logger.Error("Failed to write chart response", attr.Error(err))
	}
}

func (s *Server) handleLeaderboardExport(w http.ResponseWriter, r *http.Request) {
	roundID, err := sharedtypes.ParseRoundID(chi.URLParam(r, "roundID"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid round ID")
		return
	}

	workbook, err := s.leaderboards.ExportWorkbook(r.Context(), roundID, leaderboardPlayType(r))
	if err != nil {
		s.serviceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="leaderboard-`+roundID.String()+`.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(workbook); err != nil {
		s.logger.Error("Failed to write workbook response", attr.Error(err))
	}
}
