package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de validação (400)
	ErrMissingParameter     = "VAL_001" // Parâmetro obrigatório ausente
	ErrInvalidFormat        = "VAL_002" // Formato de dados inválido
	ErrConfigurationMissing = "VAL_003" // Credenciais externas não configuradas

	// Erros de recurso (404)
	ErrNotFound = "RES_001" // Recurso não encontrado

	// Erros do servidor (500)
	ErrUnexpectedFailure = "SRV_001" // Falha inesperada no processamento
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrMissingParameter:     http.StatusBadRequest,
	ErrInvalidFormat:        http.StatusBadRequest,
	ErrConfigurationMissing: http.StatusBadRequest,
	ErrNotFound:             http.StatusNotFound,
	ErrUnexpectedFailure:    http.StatusInternalServerError,
}

// ErrorResponse é o corpo JSON de erro exposto pela API
type ErrorResponse struct {
	Erro string `json:"erro"`
}

// StatusFor retorna o status HTTP associado a um código de erro
func StatusFor(code string) int {
	if status, exists := httpStatusMap[code]; exists {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(ErrorResponse{Erro: message})
}
