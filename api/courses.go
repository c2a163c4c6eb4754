package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func parseInt64Param(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func (s *Server) handleSearchCourses(w http.ResponseWriter, r *http.Request) {
	var clubID int64
	if v := r.URL.Query().Get("club_id"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "invalid club_id")
			return
		}
		clubID = parsed
	}

	courses, err := s.courses.SearchCourses(r.Context(), clubID, r.URL.Query().Get("q"))
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, courses)
}

func (s *Server) handleListTees(w http.ResponseWriter, r *http.Request) {
	courseID, err := parseInt64Param(r, "courseID")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	tees, err := s.courses.ListTees(r.Context(), courseID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, tees)
}

func (s *Server) handleListHoles(w http.ResponseWriter, r *http.Request) {
	courseID, err := parseInt64Param(r, "courseID")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	holes, err := s.courses.ListHoles(r.Context(), courseID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, holes)
}
