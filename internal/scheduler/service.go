package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/reddit-mcp/reddit-mcp-server/internal/config"
	"github.com/reddit-mcp/reddit-mcp-server/internal/monitoring"
)

// Service handles scheduling of periodic housekeeping jobs
type Service struct {
	config            *config.Config
	monitoringService *monitoring.Service
	sessions          monitoring.SessionSource
	cron              *cron.Cron
}

// NewService creates a new scheduler service
func NewService(cfg *config.Config, monitoringService *monitoring.Service, sessions monitoring.SessionSource) *Service {
	return &Service{
		config:            cfg,
		monitoringService: monitoringService,
		sessions:          sessions,
		cron:              cron.New(cron.WithSeconds()),
	}
}

// Start registers the configured jobs and starts the cron runner. Jobs with
// an empty schedule are skipped.
func (s *Service) Start() error {
	jobs := 0

	if s.config.MetricsLogSchedule != "" {
		_, err := s.cron.AddFunc(s.config.MetricsLogSchedule, func() {
			s.monitoringService.LogSummary()
		})
		if err != nil {
			return err
		}
		jobs++
	}

	if s.config.SessionCheckSchedule != "" {
		_, err := s.cron.AddFunc(s.config.SessionCheckSchedule, func() {
			logrus.Info("Starting scheduled Reddit session check")
			if err := s.monitoringService.CheckSession(context.Background(), s.sessions); err != nil {
				logrus.Errorf("Scheduled session check failed: %v", err)
			}
		})
		if err != nil {
			return err
		}
		jobs++
	}

	s.cron.Start()
	logrus.Infof("Scheduler started with %d job(s)", jobs)
	return nil
}

// Entries reports how many jobs are registered.
func (s *Service) Entries() int {
	return len(s.cron.Entries())
}

// Stop stops the scheduler
func (s *Service) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
		logrus.Info("Scheduler stopped")
	}
}
