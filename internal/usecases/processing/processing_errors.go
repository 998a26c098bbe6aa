package processing

import "errors"

// Erros específicos para o contexto de processamento remoto
var (
	// As três credenciais do Copernicus precisam estar configuradas
	ErrConfigurationMissing = errors.New("as credenciais do Copernicus não estão configuradas")

	// Falha inesperada durante a submissão do job
	ErrJobSubmission = errors.New("falha ao iniciar a tarefa de análise automática")
)
