package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vbonduro/verdearido/internal/calc"
	"github.com/vbonduro/verdearido/internal/domain"
)

func (s *FarmService) AnimalGroups(_ context.Context) []domain.AnimalGroup {
	return s.store.AnimalGroups()
}

func (s *FarmService) AnimalGroup(_ context.Context, id string) (domain.AnimalGroup, error) {
	g, ok := s.store.AnimalGroup(id)
	if !ok {
		return domain.AnimalGroup{}, fmt.Errorf("animal group %s: %w", id, domain.ErrNotFound)
	}
	return g, nil
}

func (s *FarmService) AddAnimalGroup(_ context.Context, in domain.NewAnimalGroup) (domain.AnimalGroup, error) {
	g, err := s.store.AddAnimalGroup(in)
	if err != nil {
		return domain.AnimalGroup{}, fmt.Errorf("failed to add animal group: %w", err)
	}
	s.logger.Info("animal group added", "group_id", g.ID, "name", g.Name, "species", g.Species, "quantity", g.Quantity)
	return g, nil
}

func (s *FarmService) UpdateAnimalGroup(ctx context.Context, id string, patch domain.AnimalGroupPatch) (domain.AnimalGroup, error) {
	if _, err := s.AnimalGroup(ctx, id); err != nil {
		return domain.AnimalGroup{}, err
	}
	if err := s.store.UpdateAnimalGroup(id, patch); err != nil {
		return domain.AnimalGroup{}, fmt.Errorf("failed to update animal group: %w", err)
	}
	s.logger.Info("animal group updated", "group_id", id)
	return s.AnimalGroup(ctx, id)
}

func (s *FarmService) DeleteAnimalGroup(ctx context.Context, id string) error {
	if _, err := s.AnimalGroup(ctx, id); err != nil {
		return err
	}
	s.store.DeleteAnimalGroup(id)
	s.logger.Info("animal group deleted", "group_id", id)
	return nil
}

// Goals lists the diet goals offered to a group.
func (s *FarmService) Goals(ctx context.Context, groupID string) ([]calc.Goal, error) {
	g, err := s.AnimalGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return calc.GoalsFor(g.Purpose), nil
}

func (s *FarmService) Planting(ctx context.Context, talhaoID, fragmentID string) (res calc.PlantingResult, err error) {
	defer func(start time.Time) { s.observe(ctx, "planting", start, err) }(time.Now())

	res, err = calc.Planting(s.store.Snapshot(), talhaoID, fragmentID)
	if err != nil {
		s.logger.Warn("planting calculation failed", "talhao_id", talhaoID, "error", err)
		return calc.PlantingResult{}, err
	}
	s.logger.Info("planting calculated", "talhao_id", talhaoID, "fragment_id", res.FragmentID, "units", res.Units)
	return res, nil
}

// Diet formulates a ration. The production target is taken from the goal id
// when it carries one ("leite_20", "gmd_1_5"), else from target.
func (s *FarmService) Diet(ctx context.Context, groupID, goal string, target float64) (res calc.DietResult, err error) {
	defer func(start time.Time) { s.observe(ctx, "diet", start, err) }(time.Now())

	res, err = calc.Diet(s.store.Snapshot(), groupID, goal, calc.ResolveTarget(goal, target))
	if err != nil {
		s.logger.Warn("diet calculation failed", "group_id", groupID, "error", err)
		return calc.DietResult{}, err
	}
	s.logger.Info("diet calculated", "group_id", groupID, "goal", goal, "target", res.Target, "ration", res.Ration, "pads", res.Pads)
	return res, nil
}

func (s *FarmService) Grazing(ctx context.Context, talhaoID, groupID string, supplements []string) (res calc.GrazingResult, err error) {
	defer func(start time.Time) { s.observe(ctx, "grazing", start, err) }(time.Now())

	res, err = calc.Grazing(s.store.Snapshot(), talhaoID, groupID, supplements)
	if err != nil {
		s.logger.Warn("grazing calculation failed", "talhao_id", talhaoID, "group_id", groupID, "error", err)
		return calc.GrazingResult{}, err
	}
	s.logger.Info("grazing calculated", "talhao_id", talhaoID, "group_id", groupID, "occupation_days", res.OccupationDays)
	return res, nil
}
