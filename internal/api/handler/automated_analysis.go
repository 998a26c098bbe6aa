package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/airqsat/airq-sat-api/internal/domain"
	"github.com/airqsat/airq-sat-api/internal/usecases/processing"
	"github.com/airqsat/airq-sat-api/pkg/apiErrors"
	"github.com/airqsat/airq-sat-api/pkg/log"
)

type automatedAnalysisResponse struct {
	Status   string `json:"status"`
	Mensagem string `json:"mensagem"`
	JobID    string `json:"job_id"`
}

func TriggerAutomatedAnalysis(service processing.Processor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var params domain.AutomatedAnalysisParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			logger.WithError(err).Warn("automated_analysis: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido.")
			return
		}

		jobID, err := service.TriggerAutomatedAnalysis(r.Context(), params)
		if err != nil {
			if errors.Is(err, processing.ErrConfigurationMissing) {
				logger.Warn("automated_analysis: credenciais não configuradas")
				apiErrors.WriteError(w, apiErrors.ErrConfigurationMissing,
					"As credenciais do Copernicus não estão configuradas. Por favor, vá para a aba de Configurações.")
				return
			}

			logger.WithError(err).WithField("nome_regiao", params.RegionName).
				Error("automated_analysis: falha na submissão do job")
			apiErrors.WriteError(w, apiErrors.ErrUnexpectedFailure,
				fmt.Sprintf("Falha ao iniciar a tarefa de análise automática: %v", err))
			return
		}

		writeJSON(w, http.StatusAccepted, automatedAnalysisResponse{
			Status:   "sucesso",
			Mensagem: fmt.Sprintf("Análise automática para '%s' foi iniciada.", params.RegionName),
			JobID:    jobID,
		})
	})
}
