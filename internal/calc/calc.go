// Package calc holds the planting, diet and grazing calculators. Every
// calculator is a pure function over a read-only view of the farm state; none
// of them mutates the store.
package calc

import (
	"fmt"

	"github.com/vbonduro/verdearido/internal/domain"
)

// Source is the read-only view the calculators resolve ids against.
// store.Snapshot satisfies it.
type Source interface {
	Talhao(id string) (domain.Talhao, bool)
	AnimalGroup(id string) (domain.AnimalGroup, bool)
}

func talhao(src Source, id string) (domain.Talhao, error) {
	h, ok := src.Talhao(id)
	if !ok {
		return domain.Talhao{}, fmt.Errorf("talhão %s: %w", id, domain.ErrNotFound)
	}
	return h, nil
}

func animalGroup(src Source, id string) (domain.AnimalGroup, error) {
	g, ok := src.AnimalGroup(id)
	if !ok {
		return domain.AnimalGroup{}, fmt.Errorf("animal group %s: %w", id, domain.ErrNotFound)
	}
	return g, nil
}
