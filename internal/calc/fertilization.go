package calc

import "github.com/vbonduro/verdearido/internal/domain"

type FertilizationGuide struct {
	SoilType    domain.SoilType `json:"soil_type"`
	Fertilizer  string          `json:"fertilizer"`
	Method      string          `json:"method"`
	GeneralTips string          `json:"general_tips"`
}

const fertilizationTip = "A palma forrageira se adapta bem a solos pobres, mas responde muito bem à adubação orgânica. Priorize sempre o esterco bem curtido."

var fertilizationGuides = map[domain.SoilType]struct{ fertilizer, method string }{
	domain.SoilSandy: {
		fertilizer: "NPK 10-10-10 + Matéria Orgânica (esterco bovino ou caprino). Recomenda-se aplicar 2-3 kg de esterco por metro linear de sulco.",
		method:     "Solo arenoso drena muito rápido. Faça sulcos de 30cm de profundidade. Aplique o adubo orgânico no fundo do sulco, cubra com 5cm de terra e plante a raquete deitada com 2/3 enterrada.",
	},
	domain.SoilClay: {
		fertilizer: "Calcário para correção de pH + NPK 04-14-08. O solo argiloso retém mais nutrientes.",
		method:     "Solo argiloso retém água. Faça camalhões (leirões) de 20-30cm para evitar encharcamento. Plante no topo do camalhão com a raquete inclinada a 45°.",
	},
	domain.SoilSilty: {
		fertilizer: "NPK 10-10-10 balanceado + Micronutrientes (Zinco e Boro).",
		method:     "Solo equilibrado. Sulcos de 25cm são suficientes. Plante com a raquete levemente inclinada para facilitar a drenagem.",
	},
	domain.SoilHumic: {
		fertilizer: "Menor necessidade de adubação orgânica. Aplicar apenas NPK 04-14-08 para fósforo e potássio.",
		method:     "Solo rico em matéria orgânica. Cuidado com excesso de nitrogênio. Sulcos rasos de 20cm. Boa drenagem natural.",
	},
	domain.SoilCalcareo: {
		fertilizer: "Evitar calagem. Aplicar Gesso agrícola + NPK com maior teor de Fósforo (04-30-10).",
		method:     "Solo alcalino. Fazer sulcos normais de 25cm. Monitorar pH e aplicar gesso se necessário para melhorar a estrutura.",
	},
}

// Fertilization returns the fertilizer and planting-method guide for a soil
// type. A manual soil description or an unknown type gets the sandy guide.
func Fertilization(soil domain.SoilType, manual string) FertilizationGuide {
	g, ok := fertilizationGuides[soil]
	if manual != "" || !ok {
		soil = domain.SoilSandy
		g = fertilizationGuides[soil]
	}
	return FertilizationGuide{
		SoilType:    soil,
		Fertilizer:  g.fertilizer,
		Method:      g.method,
		GeneralTips: fertilizationTip,
	}
}
