package calc

import (
	"strconv"
	"strings"

	"github.com/vbonduro/verdearido/internal/domain"
)

type Goal struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var goals = []Goal{
	{ID: "leite_15", Label: "Produção de 15L de leite/dia"},
	{ID: "leite_20", Label: "Produção de 20L de leite/dia"},
	{ID: "leite_25", Label: "Produção de 25L de leite/dia"},
	{ID: "gmd_1", Label: "Ganho de 1,0 kg/dia"},
	{ID: "gmd_1_5", Label: "Ganho de 1,5 kg/dia"},
	{ID: "mantenca", Label: "Manutenção"},
}

const (
	milkGoalPrefix = "leite_"
	gainGoalPrefix = "gmd_"
)

// GoalsFor lists the goals offered to a group. Fattening groups get no milk
// goals.
func GoalsFor(purpose domain.Purpose) []Goal {
	out := make([]Goal, 0, len(goals))
	for _, g := range goals {
		if purpose == domain.PurposeFattening && strings.HasPrefix(g.ID, milkGoalPrefix) {
			continue
		}
		out = append(out, g)
	}
	return out
}

// ResolveTarget derives the production target from a goal id: "leite_20"
// is 20 liters/day and "gmd_1_5" is 1.5 kg/day. Goals that carry no number
// use explicit when it is positive, and 1 otherwise.
func ResolveTarget(goal string, explicit float64) float64 {
	if v := parseGoal(goal); v > 0 {
		return v
	}
	if explicit > 0 {
		return explicit
	}
	return 1
}

func parseGoal(goal string) float64 {
	switch {
	case strings.HasPrefix(goal, milkGoalPrefix):
		num, _, _ := strings.Cut(strings.TrimPrefix(goal, milkGoalPrefix), "_")
		v, err := strconv.Atoi(num)
		if err != nil {
			return 0
		}
		return float64(v)
	case strings.HasPrefix(goal, gainGoalPrefix):
		num := strings.Replace(strings.TrimPrefix(goal, gainGoalPrefix), "_", ".", 1)
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0
		}
		return v
	}
	return 0
}
