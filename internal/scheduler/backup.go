// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/airqsat/airq-sat-api/infrastructure/repository"
	"github.com/airqsat/airq-sat-api/internal/config"
)

// BackupService grava cópias periódicas do documento de dados em disco
type BackupService struct {
	scheduler           *gocron.Scheduler
	store               *repository.DataStore
	clock               clockwork.Clock
	config              config.Backup
	backupRunning       bool
	backupMutex         sync.Mutex
	lastBackupStartedAt time.Time
	lastBackupPath      string
}

func NewBackupService(store *repository.DataStore, clock clockwork.Clock, cfg *config.Config) *BackupService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.Backup.CronSchedule,
		"backup_dir":    cfg.Backup.Dir,
	}).Info("Configuração do agendador de backups carregada")

	return &BackupService{
		scheduler: scheduler,
		store:     store,
		clock:     clock,
		config:    cfg.Backup,
	}
}

func (s *BackupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de backup do documento de dados desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de backup do documento de dados")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunBackup(); err != nil {
			logrus.WithError(err).Error("Erro no backup do documento de dados")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o backup do documento de dados: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de backup")
		s.scheduler.Stop()
	}()

	return nil
}

// RunBackup executa um backup imediato, ignorando chamadas sobrepostas
func (s *BackupService) RunBackup() error {
	s.backupMutex.Lock()
	defer s.backupMutex.Unlock()

	if s.backupRunning {
		logrus.Warn("Backup do documento de dados já está em execução")
		return nil
	}

	s.backupRunning = true
	s.lastBackupStartedAt = s.clock.Now()
	defer func() {
		s.backupRunning = false
	}()

	path, err := s.store.BackupData(s.config.Dir, s.clock.Now())
	if err != nil {
		return err
	}

	s.lastBackupPath = path

	logrus.WithField("path", path).Info("Backup do documento de dados concluído")

	return nil
}

// LastBackupPath retorna o caminho do último backup concluído
func (s *BackupService) LastBackupPath() string {
	s.backupMutex.Lock()
	defer s.backupMutex.Unlock()

	return s.lastBackupPath
}
