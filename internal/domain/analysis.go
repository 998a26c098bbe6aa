package domain

// Region é uma área geográfica cadastrada quando uma análise é submetida.
// Imutável após a criação e nunca removida.
type Region struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
}

// Pollutant é a leitura classificada de um poluente dentro de uma análise
type Pollutant struct {
	Name      string    `json:"nome"`
	Formula   string    `json:"formula"`
	Value     float64   `json:"valor"`
	Unit      string    `json:"unidade"`
	RiskLevel RiskLevel `json:"nivel_risco"`
}

// AnalysisRecord é o registro de qualidade do ar de uma região. Existe no
// máximo um registro por id de região; novas análises sobrescrevem o anterior.
type AnalysisRecord struct {
	RegionName  string      `json:"nome_regiao"`
	LastUpdated string      `json:"ultima_atualizacao"`
	Source      string      `json:"satelite"`
	OverallAQI  int         `json:"aqi_geral"`
	OverallRisk RiskLevel   `json:"nivel_risco"`
	Pollutants  []Pollutant `json:"poluentes"`
}

// Constantes do poluente NO₂, o único com regra de classificação definida
const (
	PollutantNO2Code    = "NO₂"
	PollutantNO2Name    = "Dióxido de Nitrogênio"
	PollutantNO2Unit    = "μmol/m²"
	DefaultSourceManual = "Manual"
)
