package service

import (
	"context"
	"fmt"

	"github.com/vbonduro/verdearido/internal/domain"
)

func (s *FarmService) Terrains(_ context.Context) []domain.Terrain {
	return s.store.Terrains()
}

func (s *FarmService) Terrain(_ context.Context, id string) (domain.Terrain, error) {
	t, ok := s.store.Terrain(id)
	if !ok {
		return domain.Terrain{}, fmt.Errorf("terrain %s: %w", id, domain.ErrNotFound)
	}
	return t, nil
}

func (s *FarmService) AddTerrain(_ context.Context, in domain.NewTerrain) (domain.Terrain, error) {
	t, err := s.store.AddTerrain(in)
	if err != nil {
		return domain.Terrain{}, fmt.Errorf("failed to add terrain: %w", err)
	}
	s.logger.Info("terrain added", "terrain_id", t.ID, "name", t.Name, "area", t.Area, "mapping_method", t.MappingMethod)
	return t, nil
}

// UpdateTerrain applies patch and returns the merged terrain. Unlike the
// store, it reports an unknown id as domain.ErrNotFound.
func (s *FarmService) UpdateTerrain(ctx context.Context, id string, patch domain.TerrainPatch) (domain.Terrain, error) {
	if _, err := s.Terrain(ctx, id); err != nil {
		return domain.Terrain{}, err
	}
	if err := s.store.UpdateTerrain(id, patch); err != nil {
		return domain.Terrain{}, fmt.Errorf("failed to update terrain: %w", err)
	}
	s.logger.Info("terrain updated", "terrain_id", id)
	return s.Terrain(ctx, id)
}

// DeleteTerrain removes the terrain and every talhão under it.
func (s *FarmService) DeleteTerrain(ctx context.Context, id string) error {
	if _, err := s.Terrain(ctx, id); err != nil {
		return err
	}
	dropped := len(s.store.TalhoesByTerrain(id))
	s.store.DeleteTerrain(id)
	s.logger.Info("terrain deleted", "terrain_id", id, "talhoes_removed", dropped)
	return nil
}

// SetCurrentTerrain selects the terrain the home screen works on. An empty
// id clears the selection.
func (s *FarmService) SetCurrentTerrain(_ context.Context, id string) error {
	if err := s.store.SetCurrentTerrain(id); err != nil {
		return fmt.Errorf("terrain %s: %w", id, err)
	}
	s.logger.Debug("current terrain selected", "terrain_id", id)
	return nil
}

func (s *FarmService) CurrentTerrain(ctx context.Context) (domain.Terrain, error) {
	id, ok := s.store.CurrentTerrainID()
	if !ok {
		return domain.Terrain{}, fmt.Errorf("current terrain: %w", domain.ErrNotFound)
	}
	return s.Terrain(ctx, id)
}

func (s *FarmService) Talhoes(_ context.Context) []domain.Talhao {
	return s.store.Talhoes()
}

func (s *FarmService) TalhoesByTerrain(ctx context.Context, terrainID string) ([]domain.Talhao, error) {
	if _, err := s.Terrain(ctx, terrainID); err != nil {
		return nil, err
	}
	return s.store.TalhoesByTerrain(terrainID), nil
}

func (s *FarmService) Talhao(_ context.Context, id string) (domain.Talhao, error) {
	h, ok := s.store.Talhao(id)
	if !ok {
		return domain.Talhao{}, fmt.Errorf("talhão %s: %w", id, domain.ErrNotFound)
	}
	return h, nil
}

func (s *FarmService) AddTalhao(_ context.Context, in domain.NewTalhao) (domain.Talhao, error) {
	h, err := s.store.AddTalhao(in)
	if err != nil {
		return domain.Talhao{}, fmt.Errorf("failed to add talhão: %w", err)
	}
	s.logger.Info("talhão added", "talhao_id", h.ID, "terrain_id", h.TerrainID, "name", h.Name, "area", h.Area)
	return h, nil
}

func (s *FarmService) UpdateTalhao(ctx context.Context, id string, patch domain.TalhaoPatch) (domain.Talhao, error) {
	if _, err := s.Talhao(ctx, id); err != nil {
		return domain.Talhao{}, err
	}
	if err := s.store.UpdateTalhao(id, patch); err != nil {
		return domain.Talhao{}, fmt.Errorf("failed to update talhão: %w", err)
	}
	s.logger.Info("talhão updated", "talhao_id", id)
	return s.Talhao(ctx, id)
}

func (s *FarmService) DeleteTalhao(ctx context.Context, id string) error {
	if _, err := s.Talhao(ctx, id); err != nil {
		return err
	}
	s.store.DeleteTalhao(id)
	s.logger.Info("talhão deleted", "talhao_id", id)
	return nil
}

func (s *FarmService) AddFragment(_ context.Context, talhaoID string, in domain.NewFragment) (domain.Fragment, error) {
	f, err := s.store.AddFragment(talhaoID, in)
	if err != nil {
		return domain.Fragment{}, fmt.Errorf("failed to add fragment: %w", err)
	}
	s.logger.Info("fragment added", "talhao_id", talhaoID, "fragment_id", f.ID, "area", f.Area)
	return f, nil
}

func (s *FarmService) UpdateFragment(ctx context.Context, talhaoID, fragmentID string, patch domain.FragmentPatch) (domain.Fragment, error) {
	if _, err := s.fragment(ctx, talhaoID, fragmentID); err != nil {
		return domain.Fragment{}, err
	}
	if err := s.store.UpdateFragment(talhaoID, fragmentID, patch); err != nil {
		return domain.Fragment{}, fmt.Errorf("failed to update fragment: %w", err)
	}
	s.logger.Info("fragment updated", "talhao_id", talhaoID, "fragment_id", fragmentID)
	return s.fragment(ctx, talhaoID, fragmentID)
}

func (s *FarmService) DeleteFragment(ctx context.Context, talhaoID, fragmentID string) error {
	if _, err := s.fragment(ctx, talhaoID, fragmentID); err != nil {
		return err
	}
	s.store.DeleteFragment(talhaoID, fragmentID)
	s.logger.Info("fragment deleted", "talhao_id", talhaoID, "fragment_id", fragmentID)
	return nil
}

func (s *FarmService) fragment(ctx context.Context, talhaoID, fragmentID string) (domain.Fragment, error) {
	h, err := s.Talhao(ctx, talhaoID)
	if err != nil {
		return domain.Fragment{}, err
	}
	f, ok := h.Fragment(fragmentID)
	if !ok {
		return domain.Fragment{}, fmt.Errorf("fragment %s: %w", fragmentID, domain.ErrNotFound)
	}
	return f, nil
}
