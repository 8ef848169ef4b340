package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vbonduro/verdearido/internal/domain"
)

func (s *Server) handleListTerrains(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Terrains(r.Context()))
}

func (s *Server) handleCreateTerrain(w http.ResponseWriter, r *http.Request) {
	var in domain.NewTerrain
	if err := decode(r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	t, err := s.service.AddTerrain(r.Context(), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

type carLookupRequest struct {
	CARNumber string `json:"car_number" validate:"max=100"`
	Protocol  string `json:"protocol" validate:"max=100"`
}

func (s *Server) handleLookupCAR(w http.ResponseWriter, r *http.Request) {
	var req carLookupRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	rec, err := s.service.LookupCAR(r.Context(), req.CARNumber, req.Protocol)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

type currentTerrainRequest struct {
	TerrainID string `json:"terrain_id"`
}

func (s *Server) handleSetCurrentTerrain(w http.ResponseWriter, r *http.Request) {
	var req currentTerrainRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.service.SetCurrentTerrain(r.Context(), req.TerrainID); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetCurrentTerrain(w http.ResponseWriter, r *http.Request) {
	t, err := s.service.CurrentTerrain(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleGetTerrain(w http.ResponseWriter, r *http.Request) {
	t, err := s.service.Terrain(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleUpdateTerrain(w http.ResponseWriter, r *http.Request) {
	var patch domain.TerrainPatch
	if err := decode(r, &patch); err != nil {
		s.fail(w, r, err)
		return
	}
	t, err := s.service.UpdateTerrain(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleDeleteTerrain(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteTerrain(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListTerrainTalhoes(w http.ResponseWriter, r *http.Request) {
	talhoes, err := s.service.TalhoesByTerrain(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, talhoes)
}

func (s *Server) handleListTalhoes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Talhoes(r.Context()))
}

func (s *Server) handleCreateTalhao(w http.ResponseWriter, r *http.Request) {
	var in domain.NewTalhao
	if err := decode(r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	h, err := s.service.AddTalhao(r.Context(), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h)
}

func (s *Server) handleGetTalhao(w http.ResponseWriter, r *http.Request) {
	h, err := s.service.Talhao(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h)
}

func (s *Server) handleUpdateTalhao(w http.ResponseWriter, r *http.Request) {
	var patch domain.TalhaoPatch
	if err := decode(r, &patch); err != nil {
		s.fail(w, r, err)
		return
	}
	h, err := s.service.UpdateTalhao(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h)
}

func (s *Server) handleDeleteTalhao(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteTalhao(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateFragment(w http.ResponseWriter, r *http.Request) {
	var in domain.NewFragment
	if err := decode(r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	f, err := s.service.AddFragment(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

func (s *Server) handleUpdateFragment(w http.ResponseWriter, r *http.Request) {
	var patch domain.FragmentPatch
	if err := decode(r, &patch); err != nil {
		s.fail(w, r, err)
		return
	}
	f, err := s.service.UpdateFragment(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "fid"), patch)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (s *Server) handleDeleteFragment(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteFragment(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "fid")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
