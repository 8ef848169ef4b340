package store

import (
	"fmt"

	"github.com/vbonduro/verdearido/internal/domain"
	"github.com/vbonduro/verdearido/internal/validate"
)

func (s *Store) AddAnimalGroup(in domain.NewAnimalGroup) (domain.AnimalGroup, error) {
	if err := validate.Struct(in); err != nil {
		return domain.AnimalGroup{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.state.animalGroups {
		if sameName(g.Name, in.Name) {
			return domain.AnimalGroup{}, fmt.Errorf("animal group %q: %w", in.Name, domain.ErrDuplicateName)
		}
	}

	g := domain.AnimalGroup{
		ID:            s.newID(),
		Name:          in.Name,
		Species:       in.Species,
		Breed:         in.Breed,
		Quantity:      in.Quantity,
		AverageWeight: in.AverageWeight,
		Purpose:       in.Purpose,
		CreatedAt:     s.now(),
	}
	s.state.animalGroups = append(s.state.animalGroups, g)
	return g, nil
}

// UpdateAnimalGroup merges the non-nil patch fields into the group. An
// unknown id is a no-op.
func (s *Store) UpdateAnimalGroup(id string, patch domain.AnimalGroupPatch) error {
	if err := validate.Struct(patch); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.animalGroupIndex(id)
	if i < 0 {
		return nil
	}
	g := s.state.animalGroups[i]

	if patch.Name != nil {
		for _, other := range s.state.animalGroups {
			if other.ID != id && sameName(other.Name, *patch.Name) {
				return fmt.Errorf("animal group %q: %w", *patch.Name, domain.ErrDuplicateName)
			}
		}
		g.Name = *patch.Name
	}
	if patch.Species != nil {
		g.Species = *patch.Species
	}
	if patch.Breed != nil {
		g.Breed = *patch.Breed
	}
	if patch.Quantity != nil {
		g.Quantity = *patch.Quantity
	}
	if patch.AverageWeight != nil {
		g.AverageWeight = *patch.AverageWeight
	}
	if patch.Purpose != nil {
		g.Purpose = *patch.Purpose
	}

	s.state.animalGroups[i] = g
	return nil
}

func (s *Store) DeleteAnimalGroup(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := s.state.animalGroups[:0]
	for _, g := range s.state.animalGroups {
		if g.ID != id {
			groups = append(groups, g)
		}
	}
	s.state.animalGroups = groups
}

func (s *Store) AnimalGroup(id string) (domain.AnimalGroup, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.animalGroupIndex(id)
	if i < 0 {
		return domain.AnimalGroup{}, false
	}
	return s.state.animalGroups[i], true
}

func (s *Store) AnimalGroups() []domain.AnimalGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]domain.AnimalGroup, 0, len(s.state.animalGroups)), s.state.animalGroups...)
}

// animalGroupIndex must be called with s.mu held.
func (s *Store) animalGroupIndex(id string) int {
	for i, g := range s.state.animalGroups {
		if g.ID == id {
			return i
		}
	}
	return -1
}
