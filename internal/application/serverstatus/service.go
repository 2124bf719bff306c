// Package serverstatus serves the cached Minecraft server snapshot and
// refreshes it on demand.
package serverstatus

import (
	"context"
	"time"

	domain "leafsmp/internal/domain/serverstatus"
	"leafsmp/internal/shared/biztime"
	"leafsmp/internal/shared/errors"
	"leafsmp/internal/shared/logger"
)

// Metrics counts refresh outcomes ("success", "fallback").
type Metrics interface {
	StatusRefreshed(outcome string)
}

type Target struct {
	Host    string
	Port    int
	Timeout time.Duration
}

type Service struct {
	provider domain.Provider
	store    domain.SnapshotStore
	target   Target
	metrics  Metrics
	clock    biztime.Clock
	logger   logger.Interface
}

func NewService(
	provider domain.Provider,
	store domain.SnapshotStore,
	target Target,
	metrics Metrics,
	logger logger.Interface,
) *Service {
	if target.Timeout <= 0 {
		target.Timeout = 5 * time.Second
	}
	return &Service{
		provider: provider,
		store:    store,
		target:   target,
		metrics:  metrics,
		clock:    biztime.NowUTC,
		logger:   logger,
	}
}

// WithClock replaces the time source used for LastChecked.
func (s *Service) WithClock(clock biztime.Clock) *Service {
	s.clock = clock
	return s
}

// Seed stores the default snapshot unless one already exists.
func (s *Service) Seed(ctx context.Context) error {
	current, err := s.store.Get(ctx)
	if err != nil {
		return err
	}
	if current != nil {
		return nil
	}
	return s.store.Set(ctx, domain.DefaultSnapshot(s.target.Host, s.target.Port, s.clock()))
}

// Get returns the cached snapshot without contacting the provider.
func (s *Service) Get(ctx context.Context) (*domain.Snapshot, error) {
	snapshot, err := s.store.Get(ctx)
	if err != nil {
		s.logger.Errorw("failed to read server status", "error", err)
		return nil, err
	}
	if snapshot == nil {
		return nil, errors.NewNotFoundError("Server status not found")
	}
	return snapshot, nil
}

// Refresh asks the provider for a fresh snapshot. It never fails: on any
// provider or store problem it returns the last known snapshot, or the seed
// default when there is none.
func (s *Service) Refresh(ctx context.Context) *domain.Snapshot {
	lookupCtx, cancel := context.WithTimeout(ctx, s.target.Timeout)
	defer cancel()

	fresh, err := s.provider.Lookup(lookupCtx, s.target.Host, s.target.Port)
	if err != nil {
		s.logger.Warnw("server status lookup failed, serving cached snapshot",
			"host", s.target.Host,
			"port", s.target.Port,
			"error", err,
		)
		s.count("fallback")
		return s.fallback(ctx)
	}

	fresh.IP = s.target.Host
	fresh.Port = s.target.Port
	fresh.LastChecked = s.clock().UTC()

	if err := s.store.Set(ctx, fresh); err != nil {
		s.logger.Warnw("failed to store server status", "error", err)
	}
	s.count("success")
	return fresh.Clone()
}

func (s *Service) fallback(ctx context.Context) *domain.Snapshot {
	cached, err := s.store.Get(ctx)
	if err != nil {
		s.logger.Warnw("failed to read cached server status", "error", err)
	}
	if cached == nil {
		return domain.DefaultSnapshot(s.target.Host, s.target.Port, s.clock())
	}
	return cached
}

func (s *Service) count(outcome string) {
	if s.metrics != nil {
		s.metrics.StatusRefreshed(outcome)
	}
}
