// Package scheduler contains the background jobs that keep derived data
// fresh, currently the sentiment annotation cache.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-insights-api/internal/config"
	"github.com/vfg2006/sales-insights-api/internal/usecases/sentiment"
)

type SentimentSyncConfig struct {
	CronSchedule string
	Enabled      bool
}

// SyncStatus is the externally visible state of the job, exposed through the
// cron status endpoint.
type SyncStatus struct {
	Running         bool       `json:"running"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	LastWritten     int        `json:"last_written"`
	LastError       string     `json:"last_error,omitempty"`
}

// SentimentSyncService periodically classifies feedback that has no cached
// annotation for the current model version.
type SentimentSyncService struct {
	scheduler  *gocron.Scheduler
	sentiments *sentiment.Service
	config     SentimentSyncConfig

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastWritten         int
	lastError           error
}

func NewSentimentSyncService(
	sentiments *sentiment.Service,
	cfg *config.Config,
) *SentimentSyncService {
	syncConfig := SentimentSyncConfig{
		CronSchedule: cfg.SentimentSync.CronSchedule,
		Enabled:      cfg.SentimentSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("sentiment sync scheduler configuration loaded")

	return &SentimentSyncService{
		scheduler:  scheduler,
		sentiments: sentiments,
		config:     syncConfig,
	}
}

func (s *SentimentSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("sentiment sync cron disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting sentiment sync cron")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunSync(ctx); err != nil {
			logrus.WithError(err).Error("sentiment sync run failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule sentiment sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping sentiment sync cron")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSync refreshes the annotation cache once. Safe to call from the cron
// trigger and the manual endpoint; overlapping runs are skipped. The mutex
// only guards the state flags, never the refresh itself, so Status stays
// responsive during a run.
func (s *SentimentSyncService) RunSync(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("sentiment sync already running")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.Info("starting sentiment cache refresh")

	written, err := s.sentiments.RefreshCache(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastWritten = written
	s.lastError = err
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).WithField("written", written).Warn("sentiment cache refresh finished with errors")
		return err
	}

	logrus.WithField("written", written).Info("sentiment cache refresh finished")
	return nil
}

func (s *SentimentSyncService) Status() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SyncStatus{
		Running:     s.syncRunning,
		LastWritten: s.lastWritten,
	}

	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastStartedAt = &startedAt
	}
	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastCompletedAt = &completedAt
	}
	if s.lastError != nil {
		status.LastError = s.lastError.Error()
	}

	return status
}
