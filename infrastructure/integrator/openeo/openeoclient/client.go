package openeoclient

import (
	"context"

	"github.com/jonboulle/clockwork"
)

// SpatialExtent delimita a área de interesse da coleção de satélite
type SpatialExtent struct {
	West  float64 `json:"west"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	North float64 `json:"north"`
}

// TemporalExtent delimita o intervalo de datas da coleção
type TemporalExtent struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Client expõe a sequência de chamadas do fluxo de processamento openEO:
// conectar, autenticar, carregar a coleção, reduzir e submeter o job em lote.
type Client interface {
	Connect(ctx context.Context, backendURL string) (string, error)
	AuthenticateOIDC(ctx context.Context, sessionID, clientID, clientSecret, providerID string) error
	LoadCollection(ctx context.Context, sessionID, collection string, spatial SpatialExtent, temporal TemporalExtent, bands []string) error
	ReduceDimension(ctx context.Context, sessionID, dimension, reducer string) error
	ExecuteBatch(ctx context.Context, sessionID, title string) (string, error)
}

// SimulatedClient imita o fluxo openEO sem realizar chamadas remotas.
// Cada passo apenas registra o que a integração real executaria.
type SimulatedClient struct {
	clock clockwork.Clock
}

func NewSimulatedClient(clock clockwork.Clock) Client {
	return &SimulatedClient{
		clock: clock,
	}
}
