package handler

import (
	"net/http"
	"time"

	"github.com/airqsat/airq-sat-api/pkg/log"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(time.Now().String())); err != nil {
			log.L.WithError(err).Warn("Erro ao responder ao healthcheck")
		}
	})
}
