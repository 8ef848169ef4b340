package web

import (
	"net/http"

	"github.com/vbonduro/verdearido/internal/domain"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.service.Login(r.Context())
	writeJSON(w, http.StatusOK, map[string]bool{"logged_in": true})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.service.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Summary(r.Context()))
}

func (s *Server) handleGetProducer(w http.ResponseWriter, r *http.Request) {
	p, err := s.service.Producer(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// producerRequest accepts a formatted CPF; the service strips punctuation
// before the stored record is validated.
type producerRequest struct {
	CPF     string `json:"cpf" validate:"required"`
	Name    string `json:"name" validate:"required,max=200"`
	Address string `json:"address" validate:"max=300"`
	City    string `json:"city" validate:"max=100"`
	State   string `json:"state" validate:"omitempty,len=2"`
}

func (s *Server) handlePutProducer(w http.ResponseWriter, r *http.Request) {
	var req producerRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	p, err := s.service.SetProducer(r.Context(), domain.Producer{
		CPF:     req.CPF,
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type producerLookupRequest struct {
	CPF string `json:"cpf" validate:"required"`
}

func (s *Server) handleLookupProducer(w http.ResponseWriter, r *http.Request) {
	var req producerLookupRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	p, err := s.service.LookupProducer(r.Context(), req.CPF)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
