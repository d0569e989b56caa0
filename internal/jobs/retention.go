package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/TajHussain7/AutoMetrics-Dashboard-sub000/api/constants"
	"github.com/TajHussain7/AutoMetrics-Dashboard-sub000/api/ledger"
	"github.com/TajHussain7/AutoMetrics-Dashboard-sub000/internal/config"
	"github.com/TajHussain7/AutoMetrics-Dashboard-sub000/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
)

// RetentionConfig controls the scheduled purge of aged ingestion sessions.
type RetentionConfig struct {
	Schedule      string
	RetentionDays int
	TimeZone      string
}

func NewDefaultRetentionConfig() RetentionConfig {
	return RetentionConfig{
		Schedule:      config.DefaultRetentionSchedule,
		RetentionDays: config.DefaultRetentionDays,
		TimeZone:      config.DefaultTimeZone,
	}
}

// RunRetentionScheduler registers the purge job with a cron runner and
// starts it. Sessions older than the retention window are deleted together
// with their staged records.
func RunRetentionScheduler(cfg RetentionConfig, pool *pgxpool.Pool) (*cron.Cron, error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid retention timezone %q: %w", cfg.TimeZone, err)
	}
	store := ledger.NewStore(pool)

	c := cron.New(cron.WithLocation(loc))
	_, err = c.AddFunc(cfg.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		cutoff := time.Now().In(loc).AddDate(0, 0, -cfg.RetentionDays)
		purged, err := store.PurgeSessionsBefore(ctx, cutoff)
		if err != nil {
			logger.GlobalLogger.LogAudit(fmt.Sprintf("Session retention purge failed: %v", err))
			return
		}
		logger.GlobalLogger.LogAudit(fmt.Sprintf("Session retention purge removed %d sessions older than %s",
			purged, cutoff.Format(constants.DateFormat)))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule retention job: %w", err)
	}
	c.Start()
	return c, nil
}
