package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/katsuchip/functions/internal/model"
)

type CleanupService interface {
	RunScheduledCleanup(ctx context.Context) (*model.CleanupResult, error)
}

type Scheduler struct {
	cron    *cron.Cron
	service CleanupService
	timeout time.Duration
	lg      *zap.SugaredLogger
}

// New создаёт планировщик очистки. timezone - имя из базы IANA, например Asia/Jakarta.
func New(service CleanupService, schedule, timezone string, timeout time.Duration, lg *zap.SugaredLogger) (*Scheduler, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load location %s: %w", timezone, err)
	}

	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(location)),
		service: service,
		timeout: timeout,
		lg:      lg,
	}

	if _, err := s.cron.AddFunc(schedule, s.runCleanup); err != nil {
		return nil, fmt.Errorf("invalid cleanup schedule %q: %w", schedule, err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.lg.Infof("cleanup scheduler started, next run at %s", s.cron.Entries()[0].Next)
}

// Stop останавливает планировщик и ждёт завершения запущенной очистки или отмены ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()

	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) runCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()

	result, err := s.service.RunScheduledCleanup(ctx)
	if err != nil {
		s.lg.Errorf("scheduled cleanup failed: %v", err)
		return
	}

	s.lg.Infof("scheduled cleanup: %s, deleted %d, cutoff %s, took %s",
		result.Message, result.DeletedCount, result.CutoffDate, time.Since(start))
}
