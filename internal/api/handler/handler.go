// Package handler traduz a superfície HTTP da API para os casos de uso
package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/airqsat/airq-sat-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON serializa o corpo da resposta com o status informado
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao serializar a resposta")
	}
}

// statusResponse é o corpo padrão das respostas de mutação bem-sucedidas
type statusResponse struct {
	Status   string `json:"status"`
	Mensagem string `json:"mensagem"`
}
