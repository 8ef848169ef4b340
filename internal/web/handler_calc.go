package web

import (
	"net/http"
)

type plantingRequest struct {
	TalhaoID   string `json:"talhao_id" validate:"required"`
	FragmentID string `json:"fragment_id"`
}

func (s *Server) handlePlanting(w http.ResponseWriter, r *http.Request) {
	var req plantingRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := s.service.Planting(r.Context(), req.TalhaoID, req.FragmentID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type dietRequest struct {
	GroupID string  `json:"group_id" validate:"required"`
	Goal    string  `json:"goal" validate:"max=50"`
	Target  float64 `json:"target" validate:"gte=0,lte=1000"`
}

func (s *Server) handleDiet(w http.ResponseWriter, r *http.Request) {
	var req dietRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := s.service.Diet(r.Context(), req.GroupID, req.Goal, req.Target)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type grazingRequest struct {
	TalhaoID    string   `json:"talhao_id" validate:"required"`
	GroupID     string   `json:"group_id" validate:"required"`
	Supplements []string `json:"supplements" validate:"max=20"`
}

func (s *Server) handleGrazing(w http.ResponseWriter, r *http.Request) {
	var req grazingRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := s.service.Grazing(r.Context(), req.TalhaoID, req.GroupID, req.Supplements)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handlePartners lists partners. Repeated "service" parameters match any of
// them; "region" restricts the list; "group=region" groups the result.
func (s *Server) handlePartners(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("group") == "region" {
		writeJSON(w, http.StatusOK, s.service.PartnersByRegion(r.Context()))
		return
	}
	writeJSON(w, http.StatusOK, s.service.Partners(r.Context(), q["service"], q.Get("region")))
}
