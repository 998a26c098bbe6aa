package handler

import (
	"net/http"

	"github.com/airqsat/airq-sat-api/internal/domain"
	"github.com/airqsat/airq-sat-api/internal/usecases/analyzing"
	"github.com/airqsat/airq-sat-api/pkg/apiErrors"
	"github.com/airqsat/airq-sat-api/pkg/log"
)

func ListRegions(service analyzing.AnalysisService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		regions, err := service.ListRegions()
		if err != nil {
			logger.WithError(err).Error("regioes: erro ao listar as regiões")
			apiErrors.WriteError(w, apiErrors.ErrUnexpectedFailure, "Erro ao listar as regiões.")
			return
		}

		if regions == nil {
			regions = []domain.Region{}
		}

		writeJSON(w, http.StatusOK, regions)
	})
}
