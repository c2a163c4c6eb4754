package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	golferservice "github.com/Shore-Tour-Club/golf-tracker/app/modules/golfer/application"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

func (s *Server) handleCreateGolfer(w http.ResponseWriter, r *http.Request) {
	var input golferservice.CreateGolferInput
	if err := decodeBody(r, &input); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	golfer, err := s.golfers.CreateGolfer(r.Context(), input)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, golfer)
}

func (s *Server) handleGetGolfer(w http.ResponseWriter, r *http.Request) {
	golferID := sharedtypes.GolferID(chi.URLParam(r, "golferID"))

	golfer, err := s.golfers.GetGolfer(r.Context(), golferID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, golfer)
}

func (s *Server) handleUpdateGolfer(w http.ResponseWriter, r *http.Request) {
	golferID := sharedtypes.GolferID(chi.URLParam(r, "golferID"))

	var input golferservice.UpdateGolferInput
	if err := decodeBody(r, &input); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	golfer, err := s.golfers.UpdateGolfer(r.Context(), golferID, input)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, golfer)
}

func (s *Server) handleDeleteGolfer(w http.ResponseWriter, r *http.Request) {
	golferID := sharedtypes.GolferID(chi.URLParam(r, "golferID"))

	if err := s.golfers.DeleteGolfer(r.Context(), golferID); err != nil {
		s.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListClubGolfers(w http.ResponseWriter, r *http.Request) {
	clubID, err := parseInt64Param(r, "clubID")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid club ID")
		return
	}

	golfers, err := s.golfers.ListClubGolfers(r.Context(), clubID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, golfers)
}
