package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/in-nis/bogyul-back/internal/records"
)

const purgeTimeout = time.Minute

// StartJobs schedules the retention purge. It returns nil when retention
// is disabled; callers stop the returned scheduler on shutdown.
func StartJobs(spec string, keep time.Duration, svc *records.Service, log *zap.Logger) (*cron.Cron, error) {
	if keep <= 0 {
		log.Info("record retention disabled")
		return nil, nil
	}

	c := cron.New()
	_, err := c.AddFunc(spec, purgeJob(svc, keep, log))
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Info("retention job scheduled", zap.String("spec", spec), zap.Duration("keep", keep))
	return c, nil
}

func purgeJob(svc *records.Service, keep time.Duration, log *zap.Logger) func() {
	return func() {
		log.Info("Running retention purge job...")

		ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
		defer cancel()

		n, err := svc.Purge(ctx, keep)
		if err != nil {
			log.Error("❌ Failed to purge records", zap.Error(err))
			return
		}
		log.Info("✅ Purged old records", zap.Int64("count", n))
	}
}
