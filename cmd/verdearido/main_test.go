package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/verdearido/internal/calc"
	"github.com/vbonduro/verdearido/internal/domain"
	"github.com/vbonduro/verdearido/internal/partners"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCalcPlanting(t *testing.T) {
	out, err := execute(t, "calc", "planting", "--area", "1")
	require.NoError(t, err)

	var res calc.PlantingResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 10000, res.Units)
	assert.Equal(t, domain.SoilSandy, res.Fertilization.SoilType)
}

func TestCalcPlantingRejectsNonPositiveArea(t *testing.T) {
	_, err := execute(t, "calc", "planting", "--area", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalid)
}

func TestCalcPlantingRequiresArea(t *testing.T) {
	_, err := execute(t, "calc", "planting")
	assert.Error(t, err)
}

func TestCalcDiet(t *testing.T) {
	out, err := execute(t, "calc", "diet", "--purpose", "leite", "--weight", "450", "--goal", "leite_20")
	require.NoError(t, err)

	var res calc.DietResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 20.0, res.Target)
	assert.Equal(t, 60.0, res.Ration)
	assert.Equal(t, 24, res.Pads)
}

func TestCalcDietUnknownPurpose(t *testing.T) {
	_, err := execute(t, "calc", "diet", "--purpose", "tração", "--weight", "450")
	assert.ErrorIs(t, err, domain.ErrInvalid)
}

func TestCalcGrazing(t *testing.T) {
	out, err := execute(t, "calc", "grazing",
		"--area", "2", "--weight", "450", "--quantity", "10",
		"--supplement", "milho", "--supplement", "ureia")
	require.NoError(t, err)

	var res calc.GrazingResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 7, res.OccupationDays)
	assert.Equal(t, 5.0, res.StockingRate)
	assert.Equal(t, []string{"Milho Moído", "ureia"}, res.SupplementNames)
}

func TestCalcGrazingExtremeFigures(t *testing.T) {
	_, err := execute(t, "calc", "grazing", "--area", "1000000000000", "--weight", "450", "--quantity", "1")
	assert.ErrorIs(t, err, domain.ErrInvalid)

	out, err := execute(t, "calc", "grazing", "--area", "2", "--weight", "0.000001", "--quantity", "1")
	require.NoError(t, err)
	var res calc.GrazingResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, calc.MaxOccupation, res.OccupationDays)
}

func TestPartnersCommand(t *testing.T) {
	out, err := execute(t, "partners", "--service", "venda_palmas")
	require.NoError(t, err)

	var got []partners.Partner
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	ids := make([]string, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"palma_vendas", "venda_palmas_norte"}, ids)
}

func TestPartnersByRegion(t *testing.T) {
	out, err := execute(t, "partners", "--by-region")
	require.NoError(t, err)

	var groups []partners.RegionGroup
	require.NoError(t, json.Unmarshal([]byte(out), &groups))
	require.Len(t, groups, 5)
	assert.Equal(t, "Nordeste", groups[0].Region)
	assert.Len(t, groups[0].Partners, 2)
}
