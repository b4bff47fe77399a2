package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const warmTimeout = 2 * time.Minute

// Warmer pre-populates the profile page cache.
type Warmer interface {
	Warm(ctx context.Context, pages int) error
}

// Service runs cache warming on a cron schedule.
type Service struct {
	warmer   Warmer
	schedule string
	pages    int
	cron     *cron.Cron
}

func NewService(warmer Warmer, schedule string, pages int) *Service {
	return &Service{
		warmer:   warmer,
		schedule: schedule,
		pages:    pages,
		cron:     cron.New(),
	}
}

// Enabled reports whether there is anything to schedule.
func (s *Service) Enabled() bool {
	return s.schedule != "" && s.pages > 0
}

// Start registers the warming job and starts the cron loop. A disabled
// service starts nothing and returns nil.
func (s *Service) Start() error {
	if !s.Enabled() {
		logrus.Info("Cache warming disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.schedule, s.RunOnce); err != nil {
		return fmt.Errorf("invalid warm schedule %q: %w", s.schedule, err)
	}

	s.cron.Start()
	logrus.WithFields(logrus.Fields{
		"schedule": s.schedule,
		"pages":    s.pages,
	}).Info("Scheduler started")
	return nil
}

// RunOnce warms the cache immediately.
func (s *Service) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), warmTimeout)
	defer cancel()

	start := time.Now()
	if err := s.warmer.Warm(ctx, s.pages); err != nil {
		logrus.WithError(err).Error("Cache warming failed")
		return
	}
	logrus.WithFields(logrus.Fields{
		"pages":    s.pages,
		"duration": time.Since(start).String(),
	}).Debug("Cache warmed")
}

// Stop waits for a running job to finish.
func (s *Service) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	logrus.Info("Scheduler stopped")
}
