// Package openeo integra a aplicação com o serviço de processamento de dados
// de satélite. A implementação atual simula o fluxo completo de submissão.
package openeo

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/airqsat/airq-sat-api/infrastructure/integrator/openeo/openeoclient"
	"github.com/airqsat/airq-sat-api/internal/domain"
)

// JobSubmitter é a capacidade de submeter um job de análise remota. Uma
// implementação real pode substituir a simulada sem tocar nos handlers.
type JobSubmitter interface {
	SubmitBatchJob(ctx context.Context, params domain.AutomatedAnalysisParams, settings domain.Settings) (string, error)
}

type Integrator struct {
	client openeoclient.Client
}

func New(client openeoclient.Client) JobSubmitter {
	return &Integrator{
		client: client,
	}
}

// SubmitBatchJob executa a sequência openEO na ordem da integração real:
// conectar, autenticar, carregar a coleção Sentinel-5P, reduzir a dimensão
// temporal pela média e iniciar o job em lote.
func (i *Integrator) SubmitBatchJob(ctx context.Context, params domain.AutomatedAnalysisParams, settings domain.Settings) (string, error) {
	sessionID, err := i.client.Connect(ctx, settings.OpenEOURL)
	if err != nil {
		return "", errors.Wrap(err, "erro ao conectar ao openEO")
	}

	if err := i.client.AuthenticateOIDC(ctx, sessionID, settings.ClientID, settings.ClientSecret, "egi"); err != nil {
		return "", errors.Wrap(err, "erro ao autenticar no openEO")
	}

	spatial := openeoclient.SpatialExtent{
		West:  params.West,
		South: params.South,
		East:  params.East,
		North: params.North,
	}
	temporal := openeoclient.TemporalExtent{
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
	}

	err = i.client.LoadCollection(ctx, sessionID, "SENTINEL_5P_L2", spatial, temporal, []string{"NO2_column_number_density"})
	if err != nil {
		return "", errors.Wrap(err, "erro ao carregar a coleção Sentinel-5P")
	}

	if err := i.client.ReduceDimension(ctx, sessionID, "t", "mean"); err != nil {
		return "", errors.Wrap(err, "erro ao adicionar a redução de dimensão")
	}

	title := fmt.Sprintf("AirQ-SAT Analysis for %s", params.RegionName)
	jobID, err := i.client.ExecuteBatch(ctx, sessionID, title)
	if err != nil {
		return "", errors.Wrap(err, "erro ao iniciar o job em lote")
	}

	return jobID, nil
}
