package analyzing

import "errors"

// Erros específicos para o contexto de análises
var (
	// Erros de validação
	ErrRegionNameRequired = errors.New("nome da região é obrigatório")

	// Erros de consulta
	ErrRegionNotFound = errors.New("dados da região não encontrados")

	// Erros de persistência
	ErrSaveAnalysis = errors.New("erro ao salvar a análise")
)
