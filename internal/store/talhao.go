package store

import (
	"fmt"

	"github.com/vbonduro/verdearido/internal/domain"
	"github.com/vbonduro/verdearido/internal/validate"
)

// AddTalhao appends a talhão to an existing terrain. The talhão starts with
// no fragments.
func (s *Store) AddTalhao(in domain.NewTalhao) (domain.Talhao, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Talhao{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ti := s.terrainIndex(in.TerrainID)
	if ti < 0 {
		return domain.Talhao{}, fmt.Errorf("terrain %s: %w", in.TerrainID, domain.ErrNotFound)
	}
	terrain := s.state.terrains[ti]
	if in.Area > terrain.Area {
		return domain.Talhao{}, fmt.Errorf("talhão area %.2f ha over terrain %.2f ha: %w", in.Area, terrain.Area, domain.ErrAreaExceeded)
	}
	for _, h := range s.state.talhoes {
		if h.TerrainID == in.TerrainID && sameName(h.Name, in.Name) {
			return domain.Talhao{}, fmt.Errorf("talhão %q: %w", in.Name, domain.ErrDuplicateName)
		}
	}

	h := domain.Talhao{
		ID:             s.newID(),
		TerrainID:      in.TerrainID,
		Name:           in.Name,
		Area:           in.Area,
		SoilType:       in.SoilType,
		SoilTypeManual: in.SoilTypeManual,
		Fragments:      []domain.Fragment{},
		Planted:        in.Planted,
		CreatedAt:      s.now(),
	}
	s.state.talhoes = append(s.state.talhoes, h)
	return cloneTalhao(h), nil
}

// UpdateTalhao merges the non-nil patch fields into the talhão. An unknown
// id is a no-op.
func (s *Store) UpdateTalhao(id string, patch domain.TalhaoPatch) error {
	if err := validate.Struct(patch); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.talhaoIndex(id)
	if i < 0 {
		return nil
	}
	h := cloneTalhao(s.state.talhoes[i])

	if patch.Name != nil {
		for _, other := range s.state.talhoes {
			if other.ID != id && other.TerrainID == h.TerrainID && sameName(other.Name, *patch.Name) {
				return fmt.Errorf("talhão %q: %w", *patch.Name, domain.ErrDuplicateName)
			}
		}
		h.Name = *patch.Name
	}
	if patch.Area != nil {
		h.Area = *patch.Area
		if ti := s.terrainIndex(h.TerrainID); ti >= 0 && h.Area > s.state.terrains[ti].Area {
			return fmt.Errorf("talhão area %.2f ha over terrain %.2f ha: %w", h.Area, s.state.terrains[ti].Area, domain.ErrAreaExceeded)
		}
		for _, f := range h.Fragments {
			if f.Area > h.Area {
				return fmt.Errorf("fragment %q needs %.2f ha: %w", f.Name, f.Area, domain.ErrAreaExceeded)
			}
		}
	}
	if patch.SoilType != nil {
		h.SoilType = *patch.SoilType
	}
	if patch.SoilTypeManual != nil {
		h.SoilTypeManual = *patch.SoilTypeManual
	}
	if patch.Planted != nil {
		h.Planted = *patch.Planted
	}

	s.state.talhoes[i] = h
	return nil
}

func (s *Store) DeleteTalhao(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	talhoes := s.state.talhoes[:0]
	for _, h := range s.state.talhoes {
		if h.ID != id {
			talhoes = append(talhoes, h)
		}
	}
	s.state.talhoes = talhoes
}

func (s *Store) Talhao(id string) (domain.Talhao, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.talhaoIndex(id)
	if i < 0 {
		return domain.Talhao{}, false
	}
	return cloneTalhao(s.state.talhoes[i]), true
}

func (s *Store) Talhoes() []domain.Talhao {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Talhao, 0, len(s.state.talhoes))
	for _, h := range s.state.talhoes {
		out = append(out, cloneTalhao(h))
	}
	return out
}

func (s *Store) TalhoesByTerrain(terrainID string) []domain.Talhao {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Talhao, 0)
	for _, h := range s.state.talhoes {
		if h.TerrainID == terrainID {
			out = append(out, cloneTalhao(h))
		}
	}
	return out
}

// AddFragment appends a fragment to the talhão's ordered fragment list.
func (s *Store) AddFragment(talhaoID string, in domain.NewFragment) (domain.Fragment, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Fragment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.talhaoIndex(talhaoID)
	if i < 0 {
		return domain.Fragment{}, fmt.Errorf("talhão %s: %w", talhaoID, domain.ErrNotFound)
	}
	h := &s.state.talhoes[i]
	if in.Area > h.Area {
		return domain.Fragment{}, fmt.Errorf("fragment area %.2f ha over talhão %.2f ha: %w", in.Area, h.Area, domain.ErrAreaExceeded)
	}

	f := domain.Fragment{
		ID:     s.newID(),
		Name:   in.Name,
		Area:   in.Area,
		Status: in.Status,
	}
	h.Fragments = append(h.Fragments, f)
	return f, nil
}

// UpdateFragment merges the non-nil patch fields into the fragment. An
// unknown talhão or fragment id is a no-op.
func (s *Store) UpdateFragment(talhaoID, fragmentID string, patch domain.FragmentPatch) error {
	if err := validate.Struct(patch); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.talhaoIndex(talhaoID)
	if i < 0 {
		return nil
	}
	h := &s.state.talhoes[i]
	for j := range h.Fragments {
		if h.Fragments[j].ID != fragmentID {
			continue
		}
		f := h.Fragments[j]
		if patch.Name != nil {
			f.Name = *patch.Name
		}
		if patch.Area != nil {
			if *patch.Area > h.Area {
				return fmt.Errorf("fragment area %.2f ha over talhão %.2f ha: %w", *patch.Area, h.Area, domain.ErrAreaExceeded)
			}
			f.Area = *patch.Area
		}
		if patch.Status != nil {
			f.Status = *patch.Status
		}
		h.Fragments[j] = f
		return nil
	}
	return nil
}

func (s *Store) DeleteFragment(talhaoID, fragmentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.talhaoIndex(talhaoID)
	if i < 0 {
		return
	}
	h := &s.state.talhoes[i]
	fragments := make([]domain.Fragment, 0, len(h.Fragments))
	for _, f := range h.Fragments {
		if f.ID != fragmentID {
			fragments = append(fragments, f)
		}
	}
	h.Fragments = fragments
}

// talhaoIndex must be called with s.mu held.
func (s *Store) talhaoIndex(id string) int {
	for i, h := range s.state.talhoes {
		if h.ID == id {
			return i
		}
	}
	return -1
}
