package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/verdearido/internal/calc"
	"github.com/vbonduro/verdearido/internal/domain"
)

func addGroup(t *testing.T, svc *FarmService, name string, purpose domain.Purpose, quantity int, weight float64) domain.AnimalGroup {
	t.Helper()
	g, err := svc.AddAnimalGroup(context.Background(), domain.NewAnimalGroup{
		Name:          name,
		Species:       domain.SpeciesBovine,
		Breed:         "girolando",
		Quantity:      quantity,
		AverageWeight: weight,
		Purpose:       purpose,
	})
	require.NoError(t, err)
	return g
}

func TestAnimalGroupCRUD(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	g := addGroup(t, svc, "Vacas", domain.PurposeDairy, 10, 450)

	updated, err := svc.UpdateAnimalGroup(ctx, g.ID, domain.AnimalGroupPatch{Quantity: ptr(12)})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.Quantity)

	_, err = svc.UpdateAnimalGroup(ctx, "missing", domain.AnimalGroupPatch{Quantity: ptr(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, svc.DeleteAnimalGroup(ctx, g.ID))
	assert.ErrorIs(t, svc.DeleteAnimalGroup(ctx, g.ID), domain.ErrNotFound)
}

func TestGoals(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	dairy := addGroup(t, svc, "Vacas", domain.PurposeDairy, 10, 450)
	fat := addGroup(t, svc, "Garrotes", domain.PurposeFattening, 10, 400)

	goals, err := svc.Goals(ctx, dairy.ID)
	require.NoError(t, err)
	assert.Len(t, goals, 6)

	goals, err = svc.Goals(ctx, fat.ID)
	require.NoError(t, err)
	assert.Len(t, goals, 3)

	_, err = svc.Goals(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDietResolvesTargetFromGoal(t *testing.T) {
	svc, m := newTestService(t)
	g := addGroup(t, svc, "Vacas", domain.PurposeDairy, 10, 450)

	res, err := svc.Diet(context.Background(), g.ID, "leite_20", 0)
	require.NoError(t, err)
	assert.Equal(t, 20.0, res.Target)
	assert.Equal(t, 60.0, res.Ration)
	assert.Equal(t, 24, res.Pads)

	res, err = svc.Diet(context.Background(), g.ID, "mantenca", 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Target)

	assert.Contains(t, scrapeMetrics(t, m), `verdearido_operations_total{op="diet",outcome="success"} 2`)
}

func TestCalculationsDoNotMutate(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()
	terrain := addTerrain(t, svc, "Sítio", 5)
	h := addTalhao(t, svc, terrain.ID, "Pasto", 2)
	g := addGroup(t, svc, "Rebanho", domain.PurposeBreeding, 10, 450)
	before := svc.Summary(ctx)

	planting, err := svc.Planting(ctx, h.ID, "")
	require.NoError(t, err)
	assert.Equal(t, calc.PlantingUnits(2), planting.Units)

	grazing, err := svc.Grazing(ctx, h.ID, g.ID, []string{"sal_mineral"})
	require.NoError(t, err)
	assert.Equal(t, 7, grazing.OccupationDays)
	assert.Equal(t, 5.0, grazing.StockingRate)

	_, err = svc.Grazing(ctx, h.ID, "missing", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.Diet(ctx, "missing", "", 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, before, svc.Summary(ctx))
	body := scrapeMetrics(t, m)
	assert.Contains(t, body, `verdearido_operations_total{op="grazing",outcome="error"} 1`)
	assert.Contains(t, body, `verdearido_operations_total{op="planting",outcome="success"} 1`)
}
