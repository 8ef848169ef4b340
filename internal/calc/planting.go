package calc

import (
	"math"

	"github.com/vbonduro/verdearido/internal/domain"
)

const (
	// InRowSpacing is the distance between raquetes within a row, in meters.
	InRowSpacing = 0.5
	// BetweenRowSpacing is the distance between rows, in meters.
	BetweenRowSpacing = 2.0

	squareMetersPerHectare = 10_000
)

type PlantingResult struct {
	TalhaoID          string             `json:"talhao_id,omitempty"`
	FragmentID        string             `json:"fragment_id,omitempty"`
	Area              float64            `json:"area"`
	Units             int                `json:"units"`
	InRowSpacing      float64            `json:"in_row_spacing"`
	BetweenRowSpacing float64            `json:"between_row_spacing"`
	Fertilization     FertilizationGuide `json:"fertilization"`
}

// PlantingUnits returns how many raquetes fit in areaHa, laid out as a square
// plot at the fixed row spacings. Counts beyond math.MaxInt saturate.
func PlantingUnits(areaHa float64) int {
	side := math.Sqrt(areaHa * squareMetersPerHectare)
	rows := math.Floor(side / BetweenRowSpacing)
	perRow := math.Floor(side / InRowSpacing)
	units := rows * perRow
	switch {
	case math.IsNaN(units) || units <= 0:
		return 0
	case units >= math.MaxInt:
		return math.MaxInt
	}
	return int(units)
}

// PlantingForArea runs the planting formula on a bare area with the sandy
// soil guide.
func PlantingForArea(areaHa float64) PlantingResult {
	return PlantingResult{
		Area:              areaHa,
		Units:             PlantingUnits(areaHa),
		InRowSpacing:      InRowSpacing,
		BetweenRowSpacing: BetweenRowSpacing,
		Fertilization:     Fertilization(domain.SoilSandy, ""),
	}
}

// Planting computes the raquete count for a talhão, or for one of its
// fragments when fragmentID names one. A fragment id the talhão does not own
// falls back to the talhão's own area.
func Planting(src Source, talhaoID, fragmentID string) (PlantingResult, error) {
	h, err := talhao(src, talhaoID)
	if err != nil {
		return PlantingResult{}, err
	}

	res := PlantingForArea(h.Area)
	res.TalhaoID = h.ID
	res.Fertilization = Fertilization(h.SoilType, h.SoilTypeManual)

	if fragmentID != "" {
		if f, ok := h.Fragment(fragmentID); ok {
			res.FragmentID = f.ID
			res.Area = f.Area
			res.Units = PlantingUnits(f.Area)
		}
	}
	return res, nil
}
