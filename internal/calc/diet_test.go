package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/verdearido/internal/domain"
)

func dietSource() fakeSource {
	return newSource(nil, []domain.AnimalGroup{
		{ID: "dairy", Name: "Vacas", Species: domain.SpeciesBovine, Quantity: 10, AverageWeight: 450, Purpose: domain.PurposeDairy},
		{ID: "fat", Name: "Garrotes", Species: domain.SpeciesBovine, Quantity: 20, AverageWeight: 400, Purpose: domain.PurposeFattening},
		{ID: "rearing", Name: "Novilhas", Species: domain.SpeciesBovine, Quantity: 5, AverageWeight: 300, Purpose: domain.PurposeRearing},
	})
}

func TestDietDairy(t *testing.T) {
	got, err := Diet(dietSource(), "dairy", "leite_20", 20)
	require.NoError(t, err)

	requireEqual(t, DietResult{
		GroupID: "dairy",
		Purpose: domain.PurposeDairy,
		Goal:    "leite_20",
		Target:  20,
		Ration:  60,
		Pads:    24,
		Supplements: []Supplement{
			{Name: "Resíduo de Cervejaria", Quantity: 9, Alternatives: []SupplementAlternative{
				{Name: "Farelo de Soja", Quantity: 6},
				{Name: "Torta de Algodão", Quantity: 7.2},
			}},
			{Name: "Casca de Soja", Quantity: 6, Alternatives: []SupplementAlternative{
				{Name: "Milho Moído", Quantity: 4.8},
				{Name: "Farelo de Trigo", Quantity: 6.6},
			}},
			{Name: "Sal Mineral", Quantity: 0.08, Alternatives: []SupplementAlternative{}},
		},
	}, got)
}

func TestDietFattening(t *testing.T) {
	got, err := Diet(dietSource(), "fat", "gmd_1", 1)
	require.NoError(t, err)

	assert.InDelta(t, 11.2, got.Ration, 1e-9)
	assert.Equal(t, 5, got.Pads)
	assert.Equal(t, "gmd_1", got.Goal)
}

func TestDietDefaultPurposeUsesBaseIntake(t *testing.T) {
	got, err := Diet(dietSource(), "rearing", "mantenca", 1)
	require.NoError(t, err)

	// 300 × 0.03 × 0.7
	assert.InDelta(t, 6.3, got.Ration, 1e-9)
	assert.Equal(t, 3, got.Pads)
}

func TestDietTargetIgnoredOutsideDairy(t *testing.T) {
	low, err := Diet(dietSource(), "fat", "gmd_1", 1)
	require.NoError(t, err)
	high, err := Diet(dietSource(), "fat", "gmd_1_5", 1.5)
	require.NoError(t, err)

	assert.Equal(t, low.Ration, high.Ration)
}

func TestDietMineralIsFixed(t *testing.T) {
	for _, id := range []string{"dairy", "fat", "rearing"} {
		got, err := Diet(dietSource(), id, "", 15)
		require.NoError(t, err)
		require.Len(t, got.Supplements, 3)
		assert.Equal(t, 0.08, got.Supplements[2].Quantity)
		assert.Empty(t, got.Supplements[2].Alternatives)
	}
}

func TestDietUnknownGroup(t *testing.T) {
	_, err := Diet(dietSource(), "missing", "leite_15", 15)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDietIsIdempotent(t *testing.T) {
	src := dietSource()
	first, err := Diet(src, "fat", "gmd_1", 1)
	require.NoError(t, err)
	second, err := Diet(src, "fat", "gmd_1", 1)
	require.NoError(t, err)
	requireEqual(t, first, second)
}

func TestPads(t *testing.T) {
	assert.Equal(t, 0, Pads(0))
	assert.Equal(t, 1, Pads(0.1))
	assert.Equal(t, 1, Pads(2.5))
	assert.Equal(t, 2, Pads(2.51))
}

func TestGoalsFor(t *testing.T) {
	all := GoalsFor(domain.PurposeDairy)
	assert.Len(t, all, 6)

	fattening := GoalsFor(domain.PurposeFattening)
	ids := make([]string, 0, len(fattening))
	for _, g := range fattening {
		ids = append(ids, g.ID)
	}
	assert.Equal(t, []string{"gmd_1", "gmd_1_5", "mantenca"}, ids)
}

func TestResolveTarget(t *testing.T) {
	cases := []struct {
		goal     string
		explicit float64
		want     float64
	}{
		{"leite_20", 0, 20},
		{"leite_15", 99, 15},
		{"gmd_1", 0, 1},
		{"gmd_1_5", 0, 1.5},
		{"mantenca", 0, 1},
		{"mantenca", 3.5, 3.5},
		{"", 12, 12},
		{"leite_x", 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.goal, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveTarget(tc.goal, tc.explicit))
		})
	}
}
