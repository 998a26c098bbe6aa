// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/airqsat/airq-sat-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// database é o documento de dados persistido em disco
type database struct {
	Regioes          []domain.Region                  `json:"regioes"`
	DadosQualidadeAr map[string]domain.AnalysisRecord `json:"dados_qualidade_ar"`
}

// DataStore mantém em memória os dois documentos JSON da aplicação e os
// reescreve por inteiro a cada mutação. Todo acesso passa por um RWMutex;
// escritas em disco usam arquivo temporário seguido de rename.
type DataStore struct {
	mu           sync.RWMutex
	dataFile     string
	settingsFile string
	data         database
	settings     domain.Settings
}

// NewDataStore carrega os documentos do disco. Arquivos ausentes ou com JSON
// inválido são substituídos pela estrutura vazia padrão.
func NewDataStore(dataFile, settingsFile string) *DataStore {
	store := &DataStore{
		dataFile:     dataFile,
		settingsFile: settingsFile,
		data: database{
			Regioes:          []domain.Region{},
			DadosQualidadeAr: map[string]domain.AnalysisRecord{},
		},
	}

	if err := loadJSON(dataFile, &store.data); err != nil {
		logrus.WithError(err).WithField("file", dataFile).
			Warn("Arquivo de dados ilegível, iniciando com estrutura vazia")
		store.data = database{
			Regioes:          []domain.Region{},
			DadosQualidadeAr: map[string]domain.AnalysisRecord{},
		}
	}

	if err := loadJSON(settingsFile, &store.settings); err != nil {
		logrus.WithError(err).WithField("file", settingsFile).
			Warn("Arquivo de configurações ilegível, iniciando com configurações vazias")
		store.settings = domain.Settings{}
	}

	return store
}

// ListRegions retorna uma cópia da sequência ordenada de regiões
func (s *DataStore) ListRegions() []domain.Region {
	s.mu.RLock()
	defer s.mu.RUnlock()

	regions := make([]domain.Region, len(s.data.Regioes))
	copy(regions, s.data.Regioes)
	return regions
}

// GetAnalysis retorna o registro de qualidade do ar de uma região, se existir
func (s *DataStore) GetAnalysis(regionID string) (domain.AnalysisRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.data.DadosQualidadeAr[regionID]
	return record, ok
}

// SaveAnalysis anexa a região à lista e sobrescreve o registro sob o id,
// persistindo o documento de dados inteiro em uma única escrita.
func (s *DataStore) SaveAnalysis(region domain.Region, record domain.AnalysisRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Regioes = append(s.data.Regioes, region)
	s.data.DadosQualidadeAr[region.ID] = record

	if err := writeJSONAtomic(s.dataFile, s.data); err != nil {
		return errors.Wrap(err, "erro ao persistir o documento de dados")
	}

	return nil
}

// GetSettings retorna as configurações externas atuais
func (s *DataStore) GetSettings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings
}

// ReplaceSettings sobrescreve as configurações por inteiro e persiste
func (s *DataStore) ReplaceSettings(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = settings

	if err := writeJSONAtomic(s.settingsFile, s.settings); err != nil {
		return errors.Wrap(err, "erro ao persistir o documento de configurações")
	}

	return nil
}

// BackupData grava uma cópia datada do documento de dados no diretório
// informado e retorna o caminho do arquivo gerado.
func (s *DataStore) BackupData(dir string, now time.Time) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "erro ao criar o diretório de backup")
	}

	name := fmt.Sprintf("dados-%s.json", now.Format("20060102-150405"))
	path := filepath.Join(dir, name)

	if err := writeJSONAtomic(path, s.data); err != nil {
		return "", errors.Wrap(err, "erro ao gravar o backup do documento de dados")
	}

	return path, nil
}

// loadJSON carrega um documento JSON do disco para o destino informado
func loadJSON(path string, dest any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "erro ao ler %s", path)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return errors.Wrapf(err, "erro ao decodificar %s", path)
	}

	return nil
}

// writeJSONAtomic serializa o valor e o grava via arquivo temporário no mesmo
// diretório, trocando pelo destino com rename para evitar escritas parciais.
func writeJSONAtomic(path string, value any) error {
	raw, err := json.MarshalIndent(value, "", "    ")
	if err != nil {
		return errors.Wrap(err, "erro ao serializar o documento")
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "erro ao criar arquivo temporário")
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(err, "erro ao gravar arquivo temporário")
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "erro ao fechar arquivo temporário")
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "erro ao substituir o documento")
	}

	return nil
}
