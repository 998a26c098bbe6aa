// Package classifying implementa as regras puras de classificação de risco e
// agregação do índice de qualidade do ar.
package classifying

import (
	"github.com/airqsat/airq-sat-api/internal/domain"
)

// Classify mapeia o valor medido de um poluente para um nível de risco.
// Apenas o NO₂ tem faixas definidas; qualquer outro código retorna Bom até
// que as regras dos demais poluentes sejam definidas.
func Classify(pollutantCode string, value float64) domain.RiskLevel {
	if pollutantCode == domain.PollutantNO2Code {
		switch {
		case value < 10:
			return domain.RiskGood
		case value < 40:
			return domain.RiskModerate
		case value < 100:
			return domain.RiskPoor
		default:
			return domain.RiskVeryPoor
		}
	}

	return domain.RiskGood
}

// Aggregate reduz as leituras classificadas ao nível de risco mais severo e
// ao AQI fixo correspondente. Uma lista vazia reduz para (Bom, 50).
func Aggregate(pollutants []domain.Pollutant) (domain.RiskLevel, int) {
	worst := domain.RiskGood

	for _, p := range pollutants {
		if p.RiskLevel.MoreSevereThan(worst) {
			worst = p.RiskLevel
		}
	}

	return worst, worst.AQI()
}
