package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/airqsat/airq-sat-api/internal/usecases/analyzing"
	"github.com/airqsat/airq-sat-api/pkg/apiErrors"
	"github.com/airqsat/airq-sat-api/pkg/log"
)

func GetAirQuality(service analyzing.AnalysisService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		regiaoID := r.URL.Query().Get("regiao_id")
		if regiaoID == "" {
			logger.Warn("qualidade_ar: parâmetro regiao_id ausente")
			apiErrors.WriteError(w, apiErrors.ErrMissingParameter, "Parâmetro 'regiao_id' obrigatório.")
			return
		}

		record, err := service.GetAirQuality(regiaoID)
		if err != nil {
			if errors.Is(err, analyzing.ErrRegionNotFound) {
				logger.WithField("regiao_id", regiaoID).Warn("qualidade_ar: região desconhecida")
				apiErrors.WriteError(w, apiErrors.ErrNotFound,
					fmt.Sprintf("Dados para '%s' não encontrados.", regiaoID))
				return
			}

			logger.WithError(err).WithField("regiao_id", regiaoID).
				Error("qualidade_ar: erro ao consultar os dados")
			apiErrors.WriteError(w, apiErrors.ErrUnexpectedFailure, "Erro ao consultar os dados da região.")
			return
		}

		writeJSON(w, http.StatusOK, record)
	})
}
