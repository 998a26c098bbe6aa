package handler

import (
	"net/http"

	"github.com/airqsat/airq-sat-api/internal/domain"
	"github.com/airqsat/airq-sat-api/internal/usecases/configuring"
	"github.com/airqsat/airq-sat-api/pkg/apiErrors"
	"github.com/airqsat/airq-sat-api/pkg/log"
)

func GetSettings(service configuring.SettingsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		settings, err := service.GetSettings()
		if err != nil {
			logger.WithError(err).Error("config: erro ao obter as configurações")
			apiErrors.WriteError(w, apiErrors.ErrUnexpectedFailure, "Erro ao obter as configurações.")
			return
		}

		writeJSON(w, http.StatusOK, settings)
	})
}

func UpdateSettings(service configuring.SettingsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		// Campos ausentes no corpo ficam como string vazia; o documento é
		// sobrescrito por inteiro
		var settings domain.Settings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			logger.WithError(err).Warn("config: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido.")
			return
		}

		if err := service.ReplaceSettings(settings); err != nil {
			logger.WithError(err).Error("config: erro ao salvar as configurações")
			apiErrors.WriteError(w, apiErrors.ErrUnexpectedFailure, "Erro ao salvar as configurações.")
			return
		}

		logger.Info("config: configurações atualizadas")

		writeJSON(w, http.StatusOK, statusResponse{
			Status:   "sucesso",
			Mensagem: "Configurações salvas.",
		})
	})
}
