// Package scheduler runs the periodic keepalive ping that keeps the hosted
// database project from idling out.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const keepaliveTimeout = 30 * time.Second

// Pinger is satisfied by service.HealthService.
type Pinger interface {
	Keepalive(ctx context.Context) error
}

type KeepaliveScheduler struct {
	cronEngine *cron.Cron
	pinger     Pinger
	spec       string
	logger     zerolog.Logger
}

func NewKeepaliveScheduler(pinger Pinger, spec string, logger zerolog.Logger) *KeepaliveScheduler {
	return &KeepaliveScheduler{
		cronEngine: cron.New(cron.WithLocation(time.UTC)),
		pinger:     pinger,
		spec:       spec,
		logger:     logger.With().Str("component", "keepalive_scheduler").Logger(),
	}
}

// Start registers the job and starts the cron engine.
func (s *KeepaliveScheduler) Start() error {
	if _, err := s.cronEngine.AddFunc(s.spec, s.run); err != nil {
		return fmt.Errorf("invalid keepalive schedule %q: %w", s.spec, err)
	}
	s.cronEngine.Start()
	s.logger.Info().Str("spec", s.spec).Msg("keepalive scheduler started")
	return nil
}

func (s *KeepaliveScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), keepaliveTimeout)
	defer cancel()

	if err := s.pinger.Keepalive(ctx); err != nil {
		s.logger.Error().Err(err).Msg("keepalive ping failed")
		return
	}
	s.logger.Debug().Msg("keepalive ping ok")
}

// Stop waits for a running ping to finish.
func (s *KeepaliveScheduler) Stop() {
	<-s.cronEngine.Stop().Done()
	s.logger.Info().Msg("keepalive scheduler stopped")
}
