package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	roundservice "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/application"
	rounddb "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/infrastructure/repositories"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/attr"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// failureStatus picks the HTTP status for a business failure reason. The
// services report storage conflicts and missing rows as failure payloads, so
// the reasons are matched back against the sentinel errors here.
func failureStatus(reason string) int {
	switch reason {
	case rounddb.ErrRoundNotFound.Error(), rounddb.ErrRoundCourseNotFound.Error():
		return http.StatusNotFound
	case rounddb.ErrDuplicateHoleEntry.Error(), rounddb.ErrRoundFinalized.Error():
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}

func (s *Server) handleStartRound(w http.ResponseWriter, r *http.Request) {
	var input roundservice.StartRoundInput
	if err := decodeBody(r, &input); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if input.CreatedBy == "" {
		if golferID, ok := GolferFromContext(r.Context()); ok {
			input.CreatedBy = golferID
		}
	}

	result, err := s.rounds.StartRound(r.Context(), input)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if result.IsFailure() {
		s.respondJSON(w, failureStatus(result.Failure.Reason), result.Failure)
		return
	}
	s.respondJSON(w, http.StatusCreated, result.Success)
}

func (s *Server) handleSubmitRound(w http.ResponseWriter, r *http.Request) {
	roundID, err := sharedtypes.ParseRoundID(chi.URLParam(r, "roundID"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid round ID")
		return
	}

	submittedBy, _ := GolferFromContext(r.Context())

	result, err := s.rounds.SubmitRound(r.Context(), roundID, submittedBy)
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

func (s *Server) handleRecordStroke(w http.ResponseWriter, r *http.Request) {
	roundCourseID, err := sharedtypes.ParseRoundCourseID(chi.URLParam(r, "roundCourseID"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid round course ID")
		return
	}

	var input roundservice.RecordStrokeInput
	if err := decodeBody(r, &input); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	input.RoundCourseID = roundCourseID

	result, err := s.rounds.RecordStroke(r.Context(), input)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if result.IsFailure() {
		s.respondJSON(w, failureStatus(result.Failure.Reason), result.Failure)
		return
	}
	s.respondJSON(w, http.StatusCreated, result.Success)
}

func (s *Server) handleGetScorecard(w http.ResponseWriter, r *http.Request) {
	roundCourseID, err := sharedtypes.ParseRoundCourseID(chi.URLParam(r, "roundCourseID"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid round course ID")
		return
	}
	golferID := sharedtypes.GolferID(chi.URLParam(r, "golferID"))

	result, err := s.rounds.GetScorecard(r.Context(), roundCourseID, golferID)
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

func (s *Server) handleScorecardExport(w http.ResponseWriter, r *http.Request) {
	roundCourseID, err := sharedtypes.ParseRoundCourseID(chi.URLParam(r, "roundCourseID"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid round course ID")
		return
	}
	golferID := sharedtypes.GolferID(chi.URLParam(r, "golferID"))

	workbook, err := s.rounds.ExportScorecard(r.Context(), roundCourseID, golferID)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="scorecard-`+golferID.String()+`.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(workbook); err != nil {
		s.logger.Error("Failed to write workbook response", attr.Error(err))
	}
}
