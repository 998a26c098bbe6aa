package openeoclient

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/airqsat/airq-sat-api/pkg/utils"
)

// Connect abre uma sessão simulada com o backend openEO.
// A integração real faria: connection = openeo.connect(backendURL).
func (c *SimulatedClient) Connect(ctx context.Context, backendURL string) (string, error) {
	sessionID, err := utils.GenerateSessionID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar o id da sessão: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"backend_url": backendURL,
		"session_id":  sessionID,
	}).Info("Conexão com o openEO (simulada) estabelecida")

	return sessionID, nil
}

// AuthenticateOIDC autentica a sessão simulada.
// A integração real faria: connection.authenticate_oidc(client_id, client_secret, provider_id).
func (c *SimulatedClient) AuthenticateOIDC(ctx context.Context, sessionID, clientID, clientSecret, providerID string) error {
	logrus.WithFields(logrus.Fields{
		"session_id":  sessionID,
		"client_id":   clientID,
		"provider_id": providerID,
	}).Info("Autenticação com o openEO (simulada) bem-sucedida")

	return nil
}

// LoadCollection registra o carregamento simulado da coleção de satélite.
// A integração real faria: connection.load_collection(collection, spatial_extent, temporal_extent, bands).
func (c *SimulatedClient) LoadCollection(ctx context.Context, sessionID, collection string, spatial SpatialExtent, temporal TemporalExtent, bands []string) error {
	logrus.WithFields(logrus.Fields{
		"session_id": sessionID,
		"collection": collection,
		"bands":      bands,
		"extent":     utils.PrettyJson(spatial),
		"period":     fmt.Sprintf("%s a %s", temporal.StartDate, temporal.EndDate),
	}).Info("Coleção de satélite (simulada) carregada")

	return nil
}

// ReduceDimension registra a etapa simulada de redução do cubo de dados.
// A integração real faria: datacube.reduce_dimension(dimension, reducer).
func (c *SimulatedClient) ReduceDimension(ctx context.Context, sessionID, dimension, reducer string) error {
	logrus.WithFields(logrus.Fields{
		"session_id": sessionID,
		"dimension":  dimension,
		"reducer":    reducer,
	}).Info("Processo de redução de dimensão (simulado) adicionado")

	return nil
}

// ExecuteBatch sintetiza o id do job a partir do relógio, no lugar do id que
// o backend real retornaria em datacube.execute_batch(title).
func (c *SimulatedClient) ExecuteBatch(ctx context.Context, sessionID, title string) (string, error) {
	jobID := fmt.Sprintf("job_%d", c.clock.Now().Unix())

	logrus.WithFields(logrus.Fields{
		"session_id": sessionID,
		"title":      title,
		"job_id":     jobID,
	}).Info("Job em lote (simulado) iniciado")

	return jobID, nil
}
