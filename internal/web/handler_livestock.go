package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vbonduro/verdearido/internal/domain"
)

func (s *Server) handleListAnimalGroups(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.AnimalGroups(r.Context()))
}

func (s *Server) handleCreateAnimalGroup(w http.ResponseWriter, r *http.Request) {
	var in domain.NewAnimalGroup
	if err := decode(r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	g, err := s.service.AddAnimalGroup(r.Context(), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

func (s *Server) handleGetAnimalGroup(w http.ResponseWriter, r *http.Request) {
	g, err := s.service.AnimalGroup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleUpdateAnimalGroup(w http.ResponseWriter, r *http.Request) {
	var patch domain.AnimalGroupPatch
	if err := decode(r, &patch); err != nil {
		s.fail(w, r, err)
		return
	}
	g, err := s.service.UpdateAnimalGroup(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleDeleteAnimalGroup(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteAnimalGroup(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := s.service.Goals(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, goals)
}
