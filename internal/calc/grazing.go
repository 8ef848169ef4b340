package calc

import "math"

// ForagePalma is the only forage type the grazing calculator supports.
const ForagePalma = "palma"

const (
	// RestDays is how long a paddock rests between occupations.
	RestDays = 30
	// MaxOccupation caps the days a group stays on one paddock.
	MaxOccupation = 7
)

const (
	palmaMassPerHa  = 60_000.0
	usableFraction  = 0.5
	intakeFraction  = 0.025
	animalUnitKg    = 450.0
	defaultMinerals = "capim_nativo"
)

type SupplementOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var supplementOptions = []SupplementOption{
	{ID: "residuo_cervejaria", Name: "Resíduo de Cervejaria"},
	{ID: "farelo_soja", Name: "Farelo de Soja"},
	{ID: "torta_algodao", Name: "Torta de Algodão"},
	{ID: "milho", Name: "Milho Moído"},
	{ID: "sal_mineral", Name: "Sal Mineral"},
}

var mineralRecommendations = map[string]string{
	"buffel":       "Sal Mineral com alto teor de Fósforo (8-10%) - Capim Buffel é deficiente em P",
	"brachiaria":   "Sal Mineral padrão (6-8% P) + Cobre e Zinco - Atenção à fotossensibilização",
	"andropogon":   "Sal Mineral com boa relação Ca:P + Enxofre",
	"capim_nativo": "Sal Mineral completo com micronutrientes - Forragem variável",
}

// SupplementOptions lists the supplements a grazing plan can include.
func SupplementOptions() []SupplementOption {
	return append([]SupplementOption(nil), supplementOptions...)
}

// SupplementName returns the display name for a supplement id, or the id
// itself when it is not in the catalogue.
func SupplementName(id string) string {
	for _, o := range supplementOptions {
		if o.ID == id {
			return o.Name
		}
	}
	return id
}

// MineralRecommendation returns the mineral salt advice for a forage type.
// Forages without their own entry get the native-grass advice.
func MineralRecommendation(forage string) string {
	if r, ok := mineralRecommendations[forage]; ok {
		return r
	}
	return mineralRecommendations[defaultMinerals]
}

type GrazingResult struct {
	TalhaoID              string   `json:"talhao_id,omitempty"`
	GroupID               string   `json:"group_id,omitempty"`
	Forage                string   `json:"forage"`
	OccupationDays        int      `json:"occupation_days"`
	RestDays              int      `json:"rest_days"`
	DailyIntake           float64  `json:"daily_intake"`
	StockingRate          float64  `json:"stocking_rate"`
	MineralRecommendation string   `json:"mineral_recommendation"`
	Supplements           []string `json:"supplements"`
	SupplementNames       []string `json:"supplement_names"`
}

// GrazingFor runs the rotation formula on bare figures. areaHa, averageWeight
// and quantity must be positive.
func GrazingFor(areaHa, averageWeight float64, quantity int, supplements []string) GrazingResult {
	intake := averageWeight * intakeFraction
	groupConsumption := intake * float64(quantity)
	available := palmaMassPerHa * areaHa * usableFraction

	days := occupationDays(available, groupConsumption)

	ids := append([]string{}, supplements...)
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, SupplementName(id))
	}

	return GrazingResult{
		Forage:                ForagePalma,
		OccupationDays:        days,
		RestDays:              RestDays,
		DailyIntake:           intake,
		StockingRate:          float64(quantity) * averageWeight / animalUnitKg / areaHa,
		MineralRecommendation: MineralRecommendation(ForagePalma),
		Supplements:           ids,
		SupplementNames:       names,
	}
}

// occupationDays is the whole days the forage lasts, capped at MaxOccupation.
// The cap applies before the int conversion so huge or infinite ratios stay
// in range.
func occupationDays(available, consumption float64) int {
	days := math.Floor(available / consumption)
	if math.IsNaN(days) || days < 0 {
		return 0
	}
	return int(math.Min(days, MaxOccupation))
}

// Grazing plans the paddock rotation of an animal group on a talhão. The
// supplement ids are echoed without validation.
func Grazing(src Source, talhaoID, groupID string, supplements []string) (GrazingResult, error) {
	h, err := talhao(src, talhaoID)
	if err != nil {
		return GrazingResult{}, err
	}
	g, err := animalGroup(src, groupID)
	if err != nil {
		return GrazingResult{}, err
	}
	res := GrazingFor(h.Area, g.AverageWeight, g.Quantity, supplements)
	res.TalhaoID = h.ID
	res.GroupID = g.ID
	return res, nil
}
