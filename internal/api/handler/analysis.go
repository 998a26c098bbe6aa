package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/airqsat/airq-sat-api/internal/domain"
	"github.com/airqsat/airq-sat-api/internal/usecases/analyzing"
	"github.com/airqsat/airq-sat-api/pkg/apiErrors"
	"github.com/airqsat/airq-sat-api/pkg/log"
)

// novaAnaliseRequest aceita o valor do poluente como número ou string, já que
// o formulário do frontend envia os campos como texto
type novaAnaliseRequest struct {
	NomeRegiao string      `json:"nome_regiao"`
	NO2        interface{} `json:"no2"`
	Satelite   string      `json:"satelite"`
}

type novaAnaliseResponse struct {
	Status     string        `json:"status"`
	Mensagem   string        `json:"mensagem"`
	NovaRegiao domain.Region `json:"nova_regiao"`
}

func CreateManualAnalysis(service analyzing.AnalysisService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var body novaAnaliseRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			logger.WithError(err).Warn("nova_analise: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido.")
			return
		}

		if body.NomeRegiao == "" {
			logger.Warn("nova_analise: nome_regiao ausente")
			apiErrors.WriteError(w, apiErrors.ErrMissingParameter, "Nome da região é obrigatório.")
			return
		}

		no2, err := parseMeasurement(body.NO2)
		if err != nil {
			logger.WithFields(log.Fields{
				"nome_regiao": body.NomeRegiao,
				"no2":         body.NO2,
			}).Warn("nova_analise: valor de no2 inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Valor de 'no2' inválido.")
			return
		}

		region, record, err := service.CreateManualAnalysis(analyzing.ManualAnalysisInput{
			RegionName: body.NomeRegiao,
			Source:     body.Satelite,
			NO2:        no2,
		})
		if err != nil {
			logger.WithError(err).WithField("nome_regiao", body.NomeRegiao).
				Error("nova_analise: erro ao salvar a análise")
			apiErrors.WriteError(w, apiErrors.ErrUnexpectedFailure, "Erro ao salvar a análise.")
			return
		}

		logger.WithFields(log.Fields{
			"regiao_id":   region.ID,
			"nivel_risco": record.OverallRisk,
			"aqi_geral":   record.OverallAQI,
		}).Info("nova_analise: análise salva")

		writeJSON(w, http.StatusCreated, novaAnaliseResponse{
			Status:     "sucesso",
			Mensagem:   "Análise salva.",
			NovaRegiao: *region,
		})
	})
}

// parseMeasurement converte o valor bruto do formulário para float64.
// Valores ausentes contam como zero.
func parseMeasurement(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case nil:
		return 0, nil
	case float64:
		return v, nil
	case string:
		if v == "" {
			return 0, nil
		}
		return strconv.ParseFloat(v, 64)
	default:
		return 0, fmt.Errorf("tipo de medição não suportado: %T", raw)
	}
}
