package store

import (
	"fmt"

	"github.com/vbonduro/verdearido/internal/domain"
	"github.com/vbonduro/verdearido/internal/validate"
)

// AddTerrain appends a new terrain and makes it the current selection.
func (s *Store) AddTerrain(in domain.NewTerrain) (domain.Terrain, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Terrain{}, err
	}
	if in.CARArea != nil && in.Area > *in.CARArea {
		return domain.Terrain{}, fmt.Errorf("terrain area %.2f ha over registered %.2f ha: %w", in.Area, *in.CARArea, domain.ErrAreaExceeded)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.state.terrains {
		if sameName(t.Name, in.Name) {
			return domain.Terrain{}, fmt.Errorf("terrain %q: %w", in.Name, domain.ErrDuplicateName)
		}
	}

	t := cloneTerrain(domain.Terrain{
		ID:            s.newID(),
		Name:          in.Name,
		Area:          in.Area,
		CARArea:       in.CARArea,
		MappingMethod: in.MappingMethod,
		Coordinates:   in.Coordinates,
		CreatedAt:     s.now(),
	})
	s.state.terrains = append(s.state.terrains, t)
	s.state.currentTerrainID = t.ID
	return cloneTerrain(t), nil
}

// UpdateTerrain merges the non-nil patch fields into the terrain. An unknown
// id is a no-op.
func (s *Store) UpdateTerrain(id string, patch domain.TerrainPatch) error {
	if err := validate.Struct(patch); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.terrainIndex(id)
	if i < 0 {
		return nil
	}
	t := cloneTerrain(s.state.terrains[i])

	if patch.Name != nil {
		for _, other := range s.state.terrains {
			if other.ID != id && sameName(other.Name, *patch.Name) {
				return fmt.Errorf("terrain %q: %w", *patch.Name, domain.ErrDuplicateName)
			}
		}
		t.Name = *patch.Name
	}
	if patch.Area != nil {
		t.Area = *patch.Area
	}
	switch {
	case patch.CARArea == nil:
	case *patch.CARArea == 0:
		t.CARArea = nil
	default:
		a := *patch.CARArea
		t.CARArea = &a
	}
	if patch.MappingMethod != nil {
		t.MappingMethod = *patch.MappingMethod
	}
	if patch.Coordinates != nil {
		t.Coordinates = append([]domain.Coordinate(nil), patch.Coordinates...)
	}

	if t.CARArea != nil && t.Area > *t.CARArea {
		return fmt.Errorf("terrain area %.2f ha over registered %.2f ha: %w", t.Area, *t.CARArea, domain.ErrAreaExceeded)
	}
	for _, h := range s.state.talhoes {
		if h.TerrainID == id && h.Area > t.Area {
			return fmt.Errorf("talhão %q needs %.2f ha: %w", h.Name, h.Area, domain.ErrAreaExceeded)
		}
	}

	s.state.terrains[i] = t
	return nil
}

// DeleteTerrain removes the terrain, every talhão that references it, and the
// current selection if it pointed at the terrain.
func (s *Store) DeleteTerrain(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	terrains := s.state.terrains[:0]
	for _, t := range s.state.terrains {
		if t.ID != id {
			terrains = append(terrains, t)
		}
	}
	s.state.terrains = terrains

	talhoes := s.state.talhoes[:0]
	for _, h := range s.state.talhoes {
		if h.TerrainID != id {
			talhoes = append(talhoes, h)
		}
	}
	s.state.talhoes = talhoes

	if s.state.currentTerrainID == id {
		s.state.currentTerrainID = ""
	}
}

func (s *Store) Terrain(id string) (domain.Terrain, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.terrainIndex(id)
	if i < 0 {
		return domain.Terrain{}, false
	}
	return cloneTerrain(s.state.terrains[i]), true
}

func (s *Store) Terrains() []domain.Terrain {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Terrain, 0, len(s.state.terrains))
	for _, t := range s.state.terrains {
		out = append(out, cloneTerrain(t))
	}
	return out
}

// terrainIndex must be called with s.mu held.
func (s *Store) terrainIndex(id string) int {
	for i, t := range s.state.terrains {
		if t.ID == id {
			return i
		}
	}
	return -1
}
