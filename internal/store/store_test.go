package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/verdearido/internal/domain"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// sequentialIDs returns "id-1", "id-2", ... in call order.
func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(
		WithIDGenerator(sequentialIDs()),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func mustAddTerrain(t *testing.T, s *Store, name string, area float64) domain.Terrain {
	t.Helper()
	terrain, err := s.AddTerrain(domain.NewTerrain{Name: name, Area: area, MappingMethod: domain.MappingManual})
	require.NoError(t, err)
	return terrain
}

func mustAddTalhao(t *testing.T, s *Store, terrainID, name string, area float64) domain.Talhao {
	t.Helper()
	h, err := s.AddTalhao(domain.NewTalhao{TerrainID: terrainID, Name: name, Area: area, SoilType: domain.SoilSandy})
	require.NoError(t, err)
	return h
}

func mustAddGroup(t *testing.T, s *Store, name string) domain.AnimalGroup {
	t.Helper()
	g, err := s.AddAnimalGroup(domain.NewAnimalGroup{
		Name:          name,
		Species:       domain.SpeciesCaprine,
		Breed:         "moxoto",
		Quantity:      12,
		AverageWeight: 40,
		Purpose:       domain.PurposeDairy,
	})
	require.NoError(t, err)
	return g
}

func TestLoginLogout(t *testing.T) {
	s := newTestStore(t)
	assert.False(t, s.LoggedIn())

	s.Login()
	assert.True(t, s.LoggedIn())

	s.Logout()
	assert.False(t, s.LoggedIn())
}

func TestLogoutResetsState(t *testing.T) {
	s := newTestStore(t)
	s.Login()
	require.NoError(t, s.SetProducer(domain.Producer{CPF: "12345678901", Name: "José da Silva Santos", State: "PE"}))
	terrain := mustAddTerrain(t, s, "Fazenda Boa Vista", 10)
	mustAddTalhao(t, s, terrain.ID, "Talhão 1", 2)
	mustAddGroup(t, s, "Cabras leiteiras")

	s.Logout()

	snap := s.Snapshot()
	assert.False(t, snap.LoggedIn)
	assert.Nil(t, snap.Producer)
	assert.Empty(t, snap.Terrains)
	assert.Empty(t, snap.Talhoes)
	assert.Empty(t, snap.AnimalGroups)
	assert.Empty(t, snap.CurrentTerrainID)
}

func TestSetProducerReplaces(t *testing.T) {
	s := newTestStore(t)

	_, ok := s.Producer()
	assert.False(t, ok)

	require.NoError(t, s.SetProducer(domain.Producer{CPF: "12345678901", Name: "José", City: "Petrolina", State: "PE"}))
	require.NoError(t, s.SetProducer(domain.Producer{CPF: "10987654321", Name: "Maria"}))

	p, ok := s.Producer()
	require.True(t, ok)
	assert.Equal(t, domain.Producer{CPF: "10987654321", Name: "Maria"}, p)
}

func TestSetProducerRejectsMalformedCPF(t *testing.T) {
	s := newTestStore(t)

	err := s.SetProducer(domain.Producer{CPF: "123.456.789-01", Name: "José"})
	assert.ErrorIs(t, err, domain.ErrInvalid)

	_, ok := s.Producer()
	assert.False(t, ok)
}

func TestSnapshotIsDetached(t *testing.T) {
	s := newTestStore(t)
	terrain := mustAddTerrain(t, s, "Sítio", 5)
	h := mustAddTalhao(t, s, terrain.ID, "Baixio", 1)
	_, err := s.AddFragment(h.ID, domain.NewFragment{Name: "F1", Area: 0.5, Status: domain.FragmentAvailable})
	require.NoError(t, err)

	snap := s.Snapshot()
	snap.Talhoes[0].Fragments[0].Name = "changed"
	snap.Terrains[0].Name = "changed"

	stored, ok := s.Talhao(h.ID)
	require.True(t, ok)
	assert.Equal(t, "F1", stored.Fragments[0].Name)
	storedTerrain, _ := s.Terrain(terrain.ID)
	assert.Equal(t, "Sítio", storedTerrain.Name)
}

func TestSnapshotLookups(t *testing.T) {
	s := newTestStore(t)
	terrain := mustAddTerrain(t, s, "Sítio", 5)
	h := mustAddTalhao(t, s, terrain.ID, "Baixio", 1)
	g := mustAddGroup(t, s, "Rebanho")

	snap := s.Snapshot()

	_, ok := snap.Terrain(terrain.ID)
	assert.True(t, ok)
	_, ok = snap.Talhao(h.ID)
	assert.True(t, ok)
	_, ok = snap.AnimalGroup(g.ID)
	assert.True(t, ok)
	_, ok = snap.Talhao("missing")
	assert.False(t, ok)
}

func TestSetCurrentTerrain(t *testing.T) {
	s := newTestStore(t)
	first := mustAddTerrain(t, s, "A", 1)
	second := mustAddTerrain(t, s, "B", 1)

	id, ok := s.CurrentTerrainID()
	require.True(t, ok)
	assert.Equal(t, second.ID, id, "adding a terrain selects it")

	require.NoError(t, s.SetCurrentTerrain(first.ID))
	id, _ = s.CurrentTerrainID()
	assert.Equal(t, first.ID, id)

	assert.ErrorIs(t, s.SetCurrentTerrain("missing"), domain.ErrNotFound)

	require.NoError(t, s.SetCurrentTerrain(""))
	_, ok = s.CurrentTerrainID()
	assert.False(t, ok)
}

func TestDefaultIDsAreUnique(t *testing.T) {
	s := New()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		g, err := s.AddAnimalGroup(domain.NewAnimalGroup{
			Name:          fmt.Sprintf("Grupo %d", i),
			Species:       domain.SpeciesOvine,
			Breed:         "santa_ines",
			Quantity:      1,
			AverageWeight: 30,
			Purpose:       domain.PurposeRearing,
		})
		require.NoError(t, err)
		assert.False(t, seen[g.ID], "duplicate id %s", g.ID)
		seen[g.ID] = true
	}
}
