// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// RiskLevel representa o nível ordinal de risco de um poluente ou de uma região
type RiskLevel string

const (
	RiskGood     RiskLevel = "Bom"
	RiskModerate RiskLevel = "Moderado"
	RiskPoor     RiskLevel = "Ruim"
	RiskVeryPoor RiskLevel = "Muito Ruim"
	RiskTerrible RiskLevel = "Péssimo"
)

// severityOrder define a ordem total de severidade, do menos ao mais severo.
// RiskTerrible faz parte da ordem mas nenhuma regra de classificação o produz.
var severityOrder = []RiskLevel{
	RiskGood,
	RiskModerate,
	RiskPoor,
	RiskVeryPoor,
	RiskTerrible,
}

// aqiByLevel mapeia cada nível de risco para o seu índice de qualidade do ar
var aqiByLevel = map[RiskLevel]int{
	RiskGood:     50,
	RiskModerate: 100,
	RiskPoor:     150,
	RiskVeryPoor: 200,
	RiskTerrible: 300,
}

// Severity retorna a posição do nível na ordem total de severidade.
// Níveis desconhecidos contam como o menos severo.
func (r RiskLevel) Severity() int {
	for i, level := range severityOrder {
		if level == r {
			return i
		}
	}
	return 0
}

// AQI retorna o índice de qualidade do ar fixo associado ao nível
func (r RiskLevel) AQI() int {
	if aqi, ok := aqiByLevel[r]; ok {
		return aqi
	}
	return aqiByLevel[RiskGood]
}

// MoreSevereThan indica se o nível é estritamente mais severo que o outro
func (r RiskLevel) MoreSevereThan(other RiskLevel) bool {
	return r.Severity() > other.Severity()
}
