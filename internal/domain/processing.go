package domain

// AutomatedAnalysisParams são os parâmetros espaciais e temporais enviados
// para o processamento remoto de dados de satélite
type AutomatedAnalysisParams struct {
	RegionName string  `json:"nome_regiao"`
	West       float64 `json:"west"`
	South      float64 `json:"south"`
	East       float64 `json:"east"`
	North      float64 `json:"north"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
}
