package calc

import (
	"math"

	"github.com/vbonduro/verdearido/internal/domain"
)

const (
	// RaqueteKg is the fresh-matter mass of one forage pad.
	RaqueteKg = 2.5

	forageKgPerLiter  = 3.0
	fatteningDMIntake = 0.04
	baseDMIntake      = 0.03
	forageDMShare     = 0.7
	mineralKgPerDay   = 0.08
)

type SupplementAlternative struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

// Supplement is one line of the daily supplement schedule, in kg per animal.
type Supplement struct {
	Name         string                  `json:"name"`
	Quantity     float64                 `json:"quantity"`
	Alternatives []SupplementAlternative `json:"alternatives"`
}

type DietResult struct {
	GroupID     string         `json:"group_id,omitempty"`
	Purpose     domain.Purpose `json:"purpose"`
	Goal        string         `json:"goal"`
	Target      float64        `json:"target"`
	Ration      float64        `json:"ration"`
	Pads        int            `json:"pads"`
	Supplements []Supplement   `json:"supplements"`
}

// DailyRation returns the forage ration in kg of fresh matter per animal per
// day. Dairy groups are fed by milk target (liters/day); everything else by
// live weight.
func DailyRation(purpose domain.Purpose, averageWeight, target float64) float64 {
	switch purpose {
	case domain.PurposeDairy:
		return target * forageKgPerLiter
	case domain.PurposeFattening:
		return averageWeight * fatteningDMIntake * forageDMShare
	default:
		return averageWeight * baseDMIntake * forageDMShare
	}
}

// Pads converts a ration to whole forage pads, rounding up.
func Pads(ration float64) int {
	return int(math.Ceil(ration / RaqueteKg))
}

// Supplements returns the fixed supplement schedule scaled to a ration.
func Supplements(ration float64) []Supplement {
	return []Supplement{
		{
			Name:     "Resíduo de Cervejaria",
			Quantity: ration * 0.15,
			Alternatives: []SupplementAlternative{
				{Name: "Farelo de Soja", Quantity: ration * 0.10},
				{Name: "Torta de Algodão", Quantity: ration * 0.12},
			},
		},
		{
			Name:     "Casca de Soja",
			Quantity: ration * 0.10,
			Alternatives: []SupplementAlternative{
				{Name: "Milho Moído", Quantity: ration * 0.08},
				{Name: "Farelo de Trigo", Quantity: ration * 0.11},
			},
		},
		{
			Name:         "Sal Mineral",
			Quantity:     mineralKgPerDay,
			Alternatives: []SupplementAlternative{},
		},
	}
}

// DietFor runs the diet formula without a stored group.
func DietFor(purpose domain.Purpose, averageWeight float64, goal string, target float64) DietResult {
	ration := DailyRation(purpose, averageWeight, target)
	return DietResult{
		Purpose:     purpose,
		Goal:        goal,
		Target:      target,
		Ration:      ration,
		Pads:        Pads(ration),
		Supplements: Supplements(ration),
	}
}

// Diet formulates the daily ration for a stored animal group. The goal label
// is echoed; target is used as given (see ResolveTarget).
func Diet(src Source, groupID, goal string, target float64) (DietResult, error) {
	g, err := animalGroup(src, groupID)
	if err != nil {
		return DietResult{}, err
	}
	res := DietFor(g.Purpose, g.AverageWeight, goal, target)
	res.GroupID = g.ID
	return res, nil
}
