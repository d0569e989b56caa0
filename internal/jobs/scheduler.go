package jobs

import (
	"log"

	"github.com/TajHussain7/AutoMetrics-Dashboard-sub000/internal/serviceiface"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
)

type CronService struct {
	config map[string]interface{}
	pool   *pgxpool.Pool
	runner *cron.Cron
}

func NewCronService(cfg map[string]interface{}, pool *pgxpool.Pool) serviceiface.Service {
	return &CronService{config: cfg, pool: pool}
}

func (s *CronService) Name() string {
	return "cron"
}

func (s *CronService) Start() error {
	retentionCfg := NewDefaultRetentionConfig()
	if s.config != nil {
		if schedule, ok := s.config["retention_schedule"].(string); ok && schedule != "" {
			retentionCfg.Schedule = schedule
		}
		if days, ok := s.config["retention_days"].(int); ok && days > 0 {
			retentionCfg.RetentionDays = days
		}
		if tz, ok := s.config["timezone"].(string); ok && tz != "" {
			retentionCfg.TimeZone = tz
		}
	}

	runner, err := RunRetentionScheduler(retentionCfg, s.pool)
	if err != nil {
		return err
	}
	s.runner = runner
	log.Println("Cron service started, session retention scheduled")
	return nil
}

func (s *CronService) Stop() error {
	if s.runner != nil {
		s.runner.Stop()
	}
	return nil
}
